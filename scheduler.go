// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package corels

import (
	"fmt"

	"github.com/corels-go/corels/internal/bitvec"
)

// Config holds the hyperparameters accepted by Begin.
type Config struct {
	MaxCard      int
	MinSupport   float64
	C            float64
	Policy       Policy
	MapType      MapType
	Ablation     int
	MinorEnabled bool
	NIter        int

	FeatureNames   []string
	PredictionName string
}

// Engine is the branch-and-bound search scheduler: a begin/step/finish/
// predict state machine. It owns the cache, the priority queue and the
// incumbent for the lifetime of one search.
type Engine struct {
	logger *Logger

	rs        *RuleSet
	cache     *PrefixCache
	queue     *PriorityQueue
	pool      *bitvec.Pool
	oracle    *MinorityOracle
	incumbent *Incumbent
	cfg       Config

	featureCount    int
	totalExpansions int
	began           bool
	result          *RuleList
}

// NewEngine constructs an Engine that writes diagnostics to logger (nil is
// equivalent to NopLogger()).
func NewEngine(logger *Logger) *Engine {
	if logger == nil {
		logger = NopLogger()
	}
	return &Engine{logger: logger}
}

// validateBegin enforces Begin's input constraints. On failure the
// Engine's state is left exactly as it was before the call.
func validateBegin(x [][]uint8, y [2][]uint8, featureNames []string, cfg Config) error {
	if len(y[0]) == 0 {
		return invalid(ErrShapeMismatch, "n_samples", 0)
	}
	n := len(y[0])
	if len(y[1]) != n {
		return invalid(ErrShapeMismatch, "len(Y[1])", len(y[1]))
	}
	if len(x) != n {
		return invalid(ErrShapeMismatch, "len(X)", len(x))
	}
	if n == 0 {
		return invalid(ErrShapeMismatch, "n_samples", 0)
	}
	numFeatures := len(x[0])
	for i, row := range x {
		if len(row) != numFeatures {
			return invalid(ErrShapeMismatch, fmt.Sprintf("len(X[%d])", i), len(row))
		}
	}
	if len(featureNames) != numFeatures {
		return invalid(ErrShapeMismatch, "len(feature_names)", len(featureNames))
	}
	if cfg.MaxCard < 1 {
		return invalid(ErrOutOfRange, "max_card", cfg.MaxCard)
	}
	if cfg.MaxCard > numFeatures {
		return invalid(ErrShapeMismatch, "max_card", cfg.MaxCard)
	}
	if cfg.MinSupport < 0 || cfg.MinSupport > 0.5 {
		return invalid(ErrOutOfRange, "min_support", cfg.MinSupport)
	}
	if cfg.C < 0 || cfg.C > 1 {
		return invalid(ErrOutOfRange, "c", cfg.C)
	}
	if cfg.Ablation < 0 || cfg.Ablation > 2 {
		return invalid(ErrOutOfRange, "ablation", cfg.Ablation)
	}
	switch cfg.Policy {
	case Bfs, Dfs, LowerBound, Objective, Curious:
	default:
		return invalid(ErrBadEnum, "policy", cfg.Policy)
	}
	switch cfg.MapType {
	case MapPrefix, MapCaptured, MapNone:
	default:
		return invalid(ErrBadEnum, "map_type", cfg.MapType)
	}
	return nil
}

func regularizerWarnings(c float64, n, ones int) []Warning {
	var warnings []Warning
	if c < 1.0/float64(n) {
		warnings = append(warnings, Warning{fmt.Sprintf(
			"regularization parameter should not be less than 1/n_samples = %v", 1.0/float64(n))})
	}
	bound := float64(minCount(ones, n-ones)) / float64(n)
	if c > bound {
		warnings = append(warnings, Warning{fmt.Sprintf(
			"regularization parameter should not be greater than min(negative,positive)/n_samples = %v", bound)})
	}
	return warnings
}

// Begin validates inputs, mines binary antecedents, and initializes the
// search with the empty prefix as the first incumbent.
func (e *Engine) Begin(x [][]uint8, y [2][]uint8, featureNames []string, cfg Config) (bool, []Warning, error) {
	if err := validateBegin(x, y, featureNames, cfg); err != nil {
		return false, nil, err
	}

	n := len(y[0])
	ones := 0
	for _, v := range y[1] {
		if v != 0 {
			ones++
		}
	}
	warnings := regularizerWarnings(cfg.C, n, ones)

	l0 := bitvec.New(n)
	l1 := bitvec.New(n)
	for i := 0; i < n; i++ {
		if y[0][i] != 0 {
			l0.Set(i)
		}
		if y[1][i] != 0 {
			l1.Set(i)
		}
	}

	rules := mineBinaryRules(x, n, len(featureNames), cfg.MaxCard, cfg.MinSupport, e.logger)

	rs := NewRuleSet(rules, l0, l1)
	for _, r := range rules {
		dumpSamples(e.logger, rs, r)
	}

	pool := bitvec.NewPool(n)
	cache := NewPrefixCache(cfg.MapType, pool)
	queue := NewPriorityQueue(cfg.Policy, n)

	rootNC := pool.Get()
	rootNC.SetAll()
	n0, n1 := rs.LabelCounts(rootNC)
	defaultPred := majorityLabel(n0, n1)
	root := &Summary{
		Clauses:     nil,
		LowerBound:  0,
		Objective:   float64(minCount(n0, n1)) / float64(n),
		NotCaptured: rootNC,
		DefaultPred: defaultPred,
		seq:         cache.NextSeq(),
	}
	cache.InsertRoot(root)
	queue.Add(root)

	e.rs = rs
	e.cache = cache
	e.queue = queue
	e.pool = pool
	e.incumbent = NewIncumbent(root)
	e.cfg = cfg
	e.featureCount = len(featureNames)
	e.totalExpansions = 0
	e.began = true
	e.result = nil

	if cfg.MinorEnabled {
		e.oracle = NewMinorityOracle(rs)
	} else {
		e.oracle = nil
	}

	e.logger.logf(ChanProgress, "begin: %d samples, %d features, %d rules mined, initial objective=%.6f\n",
		n, len(featureNames), rs.NumRules(), root.Objective)

	return true, warnings, nil
}

// Step runs up to budget expansions of the search frontier.
func (e *Engine) Step(budget int) (more bool, err error) {
	if !e.began {
		return false, ErrNotFitted
	}

	defer func() {
		if r := recover(); r != nil {
			err = ErrResource
			more = true
		}
	}()

	expansions := 0
	for e.queue.Len() > 0 && expansions < budget && e.totalExpansions < e.cfg.NIter {
		node, ok := e.queue.PopNonDeleted()
		if !ok {
			break
		}
		if node.Deleted {
			continue
		}
		if lengthBoundReject(node.LowerBound, e.cfg.C, e.incumbent.Objective()) {
			expansions++
			e.totalExpansions++
			continue
		}

		e.expand(node)

		expansions++
		e.totalExpansions++
	}

	more = e.queue.Len() > 0 && e.totalExpansions < e.cfg.NIter
	e.logger.logf(ChanProgress, "step: %d expansions so far, incumbent objective=%.6f, queue=%d\n",
		e.totalExpansions, e.incumbent.Objective(), e.queue.Len())
	return more, nil
}

// expand is the body of the scheduler's main-loop pop/expand step: try
// extending node by every antecedent not already in it, running each
// candidate through the pruning bounds before inserting survivors into the
// cache and queue.
func (e *Engine) expand(node *Summary) {
	lastID := node.LastAntecedentID()
	n := e.rs.N()

	for a := 0; a < e.rs.NumRules(); a++ {
		if node.containsAntecedent(a) {
			continue
		}
		if e.cache.Variant() != MapNone && a <= lastID {
			continue
		}
		rule := e.rs.Rule(a)
		if node.groupConflict(e.rs, rule.GroupID) {
			continue
		}

		cap := e.pool.Get()
		e.rs.Capture(a, node.NotCaptured, cap)
		capCount := cap.Popcount()

		if float64(capCount)/float64(n) < e.cfg.MinSupport {
			e.pool.Put(cap)
			continue
		}
		if e.cfg.Ablation != 1 && supportBoundReject(capCount, n, e.cfg.C) {
			e.pool.Put(cap)
			continue
		}

		n0, n1 := e.rs.LabelCounts(cap)
		if accurateSupportBoundReject(n0, n1, n, e.cfg.C, e.incumbent.Objective(), node.LowerBound) {
			e.pool.Put(cap)
			continue
		}

		childB := lowerBound(node.LowerBound, n0, n1, n, e.cfg.C)
		if e.cfg.Ablation != 2 && lookaheadBoundReject(childB, e.cfg.C, e.incumbent.Objective()) {
			e.pool.Put(cap)
			continue
		}

		nc := e.pool.Get()
		e.rs.NotCaptured(node.NotCaptured, cap, nc)
		e.pool.Put(cap)

		if e.oracle != nil {
			mb := e.oracle.Bound(nc)
			if minorityBoundReject(childB, mb, e.incumbent.Objective()) {
				e.pool.Put(nc)
				continue
			}
		}

		n0NC, n1NC := e.rs.LabelCounts(nc)
		childObj := objective(childB, n0NC, n1NC, n)
		pred := majorityLabel(n0, n1)
		defaultPred := majorityLabel(n0NC, n1NC)

		child := &Summary{
			Clauses:     append(append([]Clause(nil), node.Clauses...), Clause{AntecedentID: a, Prediction: pred}),
			LowerBound:  childB,
			Objective:   childObj,
			NotCaptured: nc,
			Parent:      node,
			DefaultPred: defaultPred,
		}
		child.seq = e.cache.NextSeq()

		key := e.cache.Key(child)
		accepted, evicted := e.cache.TryInsert(key, child)
		if !accepted {
			e.pool.Put(nc)
			continue
		}
		if evicted != nil {
			e.pool.Put(evicted.NotCaptured)
		}
		e.queue.Add(child)

		if childObj < e.incumbent.Objective() {
			e.incumbent.Update(child)
			e.logger.logf(ChanRule, "new incumbent: length=%d objective=%.6f\n", child.Len(), childObj)
		}
	}
}

// Finish finalizes the search and returns the incumbent as a RuleList. It
// may be called with early=true at any point, e.g. after a
// caller-initiated cancellation; the returned list is simply whatever the
// incumbent currently is.
func (e *Engine) Finish(early bool) (*RuleList, error) {
	if !e.began {
		return nil, ErrNotFitted
	}
	if early {
		e.logger.logf(ChanProgress, "finish(early=true): returning possibly suboptimal incumbent\n")
	}
	rl := toRuleList(e.rs, e.cfg.FeatureNames, e.cfg.PredictionName, e.incumbent.Summary())
	e.result = rl
	return rl, nil
}

// Predict evaluates the stored rule list; x's row width must match
// fit-time feature count.
func (e *Engine) Predict(x [][]uint8) ([]uint8, error) {
	if e.result == nil {
		return nil, ErrNotFitted
	}
	if len(x) > 0 && len(x[0]) != e.featureCount {
		return nil, invalid(ErrShapeMismatch, "predict feature width", len(x[0]))
	}
	return e.result.Predict(x)
}
