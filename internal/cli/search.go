// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dstoeckel/ball/molgraph"
	"github.com/dstoeckel/ball/vf2"
)

// Result is the outcome of one query/target search.
type Result struct {
	Query    string                `json:"query" yaml:"query"`
	Target   string                `json:"target" yaml:"target"`
	Mode     string                `json:"mode" yaml:"mode"`
	Found    bool                  `json:"found" yaml:"found"`
	Size     int                   `json:"size" yaml:"size"`
	Count    int                   `json:"count" yaml:"count"`
	TimedOut bool                  `json:"timed_out,omitempty" yaml:"timed_out,omitempty"`
	Elapsed  string                `json:"elapsed" yaml:"elapsed"`
	Matches  [][]molgraph.AtomPair `json:"matches" yaml:"matches"`
	Stats    vf2.Stats             `json:"stats" yaml:"stats"`
}

// cancelPrune returns a prune predicate that polls ctx every progressEvery
// states and stays true once ctx is done or past its deadline, plus a
// function reporting whether it ever fired.
func cancelPrune(ctx context.Context) (prune func(*vf2.State) bool, fired func() bool) {
	deadline, hasDeadline := ctx.Deadline()
	var n int
	var done bool
	prune = func(*vf2.State) bool {
		if done {
			return true
		}
		n++
		if n%progressEvery == 0 {
			done = ctx.Err() != nil || (hasDeadline && !time.Now().Before(deadline))
		}
		return done
	}

	return prune, func() bool { return done }
}

// runSearch matches q against t under cfg. Parent cancellation is returned
// as ctx's error; hitting cfg.Timeout yields a partial result with TimedOut.
func runSearch(ctx context.Context, logger *log.Logger, cfg Config, q, t *molgraph.Molecule) (Result, error) {
	kind, err := vf2.ParseKind(cfg.Mode)
	if err != nil {
		return Result{}, err
	}
	qg, err := q.Graph()
	if err != nil {
		return Result{}, err
	}
	tg, err := t.Graph()
	if err != nil {
		return Result{}, err
	}

	sctx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	stateOpts := molgraph.StateOptions()
	if cfg.Induced {
		stateOpts = append(stateOpts, vf2.WithInduced())
	}
	var counters vf2.Counters
	prune, pruned := cancelPrune(sctx)
	opts := []vf2.Option{
		vf2.WithLogger(logger),
		vf2.WithHooks(&counters),
		vf2.WithPrune(prune),
	}

	res := Result{Query: q.Name, Target: t.Name, Mode: kind.String()}
	var found []vf2.Mapping
	start := time.Now()
	err = vf2.Search(kind, qg, tg, cfg.Sort, stateOpts, func(s *vf2.State) error {
		switch {
		case kind == vf2.KindMCS:
			if m := vf2.Maximize(s, opts...); len(m) > 0 {
				found = append(found, m)
			}
		case cfg.All:
			res.Count = vf2.MatchAll(s, func(m vf2.Mapping) bool {
				found = append(found, m)
				return cfg.Limit > 0 && len(found) >= cfg.Limit
			}, opts...)
		default:
			if m, ok := vf2.Match(s, opts...); ok {
				found = append(found, m)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s vs %s: %w", q.Name, t.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res.TimedOut = pruned()
	res.Elapsed = time.Since(start).Round(time.Microsecond).String()
	res.Stats = counters.Snapshot()

	res.Count = max(res.Count, len(found))
	res.Found = res.Count > 0
	res.Matches = make([][]molgraph.AtomPair, 0, len(found))
	for _, m := range found {
		pairs, err := molgraph.Bijection(q, t, m)
		if err != nil {
			return Result{}, err
		}
		res.Matches = append(res.Matches, pairs)
		res.Size = max(res.Size, len(pairs))
	}

	logger.Debug("search done", "query", q.Name, "target", t.Name,
		"found", res.Found, "states", res.Stats.States, "timed_out", res.TimedOut)

	return res, nil
}
