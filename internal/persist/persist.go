// Package persist gives callers of the core engine a crash-safe way to
// checkpoint a fitted RuleList between Step calls. Persistence is the
// caller's responsibility, not the engine's; this package is that
// caller-side helper, never imported by the core engine itself.
//
// Wraps github.com/natefinch/atomic: write-then-rename so a reader never
// observes a half-written file.
package persist

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/natefinch/atomic"
)

// Save atomically writes v as indented JSON to path.
func Save(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(b))
}

// Load reads and unmarshals the JSON document at path into v.
func Load(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
