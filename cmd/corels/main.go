// Command corels fits a certifiably optimal rule list against a
// pre-binarized dataset and prints the resulting rule list and its
// training accuracy. Binarizing raw categorical data into the
// {feature_names, X, y} JSON shape this command reads is left to an
// upstream step.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/corels-go/corels"
	"github.com/corels-go/corels/internal/cliconfig"
	"github.com/corels-go/corels/internal/persist"
)

// dataset mirrors the JSON shape a caller is expected to produce once
// upstream (e.g. pandas.get_dummies) instead of at CLI runtime.
type dataset struct {
	FeatureNames   []string  `json:"feature_names"`
	PredictionName string    `json:"prediction_name"`
	X              [][]uint8 `json:"x"`
	Y              []uint8   `json:"y"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	flagSet := flag.NewFlagSet("corels", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		fmt.Fprintln(errOut, "Usage: corels --data <path.json> [options]")
		flagSet.PrintDefaults()
	}

	dataPath := flagSet.String("data", "", "path to a {feature_names, prediction_name, x, y} JSON dataset")
	configPath := flagSet.String("config", ".corels.hujson", "optional JSONC hyperparameter file")
	c := flagSet.Float64("c", 0.01, "regularization parameter penalizing rule-list length")
	maxCard := flagSet.Int("max-card", 2, "maximum antecedent cardinality to mine")
	minSupport := flagSet.Float64("min-support", 0.01, "minimum fraction of samples an antecedent must capture")
	policy := flagSet.String("policy", "lower_bound", "queue policy: bfs|dfs|lower_bound|objective|curious")
	mapType := flagSet.String("map-type", "prefix", "cache canonicalization: prefix|captured|none")
	ablation := flagSet.Int("ablation", 0, "0=all bounds, 1=disable support bound, 2=disable lookahead bound")
	minor := flagSet.Bool("minority-bound", false, "enable the minority/identical-points bound")
	nIter := flagSet.Int("n-iter", 1_000_000, "maximum number of node expansions")
	budget := flagSet.Int("step-budget", 10_000, "expansions per Step call")
	checkpoint := flagSet.String("checkpoint", "", "optional path to persist the fitted rule list")
	verbose := flagSet.Bool("verbose", false, "log progress to stderr")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *dataPath == "" {
		flagSet.Usage()
		return 2
	}

	fileCfg, err := cliconfig.Load(*configPath)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	applyFileConfig(fileCfg, flagSet, c, maxCard, minSupport, policy, mapType, ablation, nIter, minor)

	ds, err := loadDataset(*dataPath)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	pol, err := parsePolicy(*policy)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	mt, err := parseMapType(*mapType)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	logger := corels.NopLogger()
	if *verbose {
		logger = &corels.Logger{W: errOut, Channels: corels.ChanProgress | corels.ChanRule}
	}

	engine := corels.NewEngine(logger)
	y := [2][]uint8{invertLabels(ds.Y), ds.Y}
	predictionName := ds.PredictionName
	if predictionName == "" {
		predictionName = "label"
	}

	_, warnings, err := engine.Begin(ds.X, y, ds.FeatureNames, corels.Config{
		MaxCard:        *maxCard,
		MinSupport:     *minSupport,
		C:              *c,
		Policy:         pol,
		MapType:        mt,
		Ablation:       *ablation,
		MinorEnabled:   *minor,
		NIter:          *nIter,
		FeatureNames:   ds.FeatureNames,
		PredictionName: predictionName,
	})
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	for _, w := range warnings {
		fmt.Fprintln(errOut, "warning:", w.Message)
	}

	for {
		more, err := engine.Step(*budget)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
		if !more {
			break
		}
	}

	rl, err := engine.Finish(false)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	fmt.Fprintln(out, rl.String())
	score, err := rl.Score(ds.X, ds.Y)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	fmt.Fprintf(out, "training accuracy: %.4f\n", score)

	if *checkpoint != "" {
		if err := persist.Save(*checkpoint, rl); err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
	}

	return 0
}

func applyFileConfig(fc cliconfig.Config, flagSet *flag.FlagSet, c *float64, maxCard *int, minSupport *float64, policy, mapType *string, ablation, nIter *int, minor *bool) {
	if fc.C != nil && !flagSet.Changed("c") {
		*c = *fc.C
	}
	if fc.MaxCard != nil && !flagSet.Changed("max-card") {
		*maxCard = *fc.MaxCard
	}
	if fc.MinSupport != nil && !flagSet.Changed("min-support") {
		*minSupport = *fc.MinSupport
	}
	if fc.Policy != "" && !flagSet.Changed("policy") {
		*policy = fc.Policy
	}
	if fc.MapType != "" && !flagSet.Changed("map-type") {
		*mapType = fc.MapType
	}
	if fc.Ablation != nil && !flagSet.Changed("ablation") {
		*ablation = *fc.Ablation
	}
	if fc.NIter != nil && !flagSet.Changed("n-iter") {
		*nIter = *fc.NIter
	}
	if fc.MinorEnabled != nil && !flagSet.Changed("minority-bound") {
		*minor = *fc.MinorEnabled
	}
}

func loadDataset(path string) (dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return dataset{}, err
	}
	var ds dataset
	if err := json.Unmarshal(b, &ds); err != nil {
		return dataset{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ds, nil
}

func invertLabels(y []uint8) []uint8 {
	out := make([]uint8, len(y))
	for i, v := range y {
		if v == 0 {
			out[i] = 1
		}
	}
	return out
}

func parsePolicy(s string) (corels.Policy, error) {
	switch s {
	case "bfs":
		return corels.Bfs, nil
	case "dfs":
		return corels.Dfs, nil
	case "lower_bound":
		return corels.LowerBound, nil
	case "objective":
		return corels.Objective, nil
	case "curious":
		return corels.Curious, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", s)
	}
}

func parseMapType(s string) (corels.MapType, error) {
	switch s {
	case "prefix":
		return corels.MapPrefix, nil
	case "captured":
		return corels.MapCaptured, nil
	case "none":
		return corels.MapNone, nil
	default:
		return 0, fmt.Errorf("unknown map-type %q", s)
	}
}
