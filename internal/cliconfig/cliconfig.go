// Package cliconfig loads cmd/corels's optional hyperparameter file,
// .corels.hujson: read the file, run it through hujson.Standardize to
// strip comments/trailing commas, then json.Unmarshal the result.
package cliconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Config holds the search hyperparameters a .corels.hujson file may set.
// Nil/zero fields mean "not set in the file"; cmd/corels fills in its own
// flag-derived defaults for anything left unset.
type Config struct {
	C            *float64 `json:"c,omitempty"`
	MaxCard      *int     `json:"max_card,omitempty"`
	MinSupport   *float64 `json:"min_support,omitempty"`
	Policy       string   `json:"policy,omitempty"`
	MapType      string   `json:"map_type,omitempty"`
	Ablation     *int     `json:"ablation,omitempty"`
	NIter        *int     `json:"n_iter,omitempty"`
	MinorEnabled *bool    `json:"minor_enabled,omitempty"`
}

// Load reads and parses path. A missing file is not an error: it returns a
// zero Config so the CLI's own defaults apply.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC in %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config JSON in %s: %w", path, err)
	}
	return cfg, nil
}
