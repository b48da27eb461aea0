// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"log/slog"

	"cogentcore.org/colorio/base/errors"
	"cogentcore.org/colorio/base/minmax"
	"cogentcore.org/colorio/base/randx"
	"cogentcore.org/colorio/cs"
)

// Result is the outcome of [Run].
type Result struct {

	// Global is the result of the global phase.
	Global AnnealResult

	// X is the final parameter vector, and F its objective value.
	X []float64
	F float64

	// Params are the final parameters.
	Params cs.Params

	// Report holds the unweighted score of every term
	// for the final parameters, if they give a valid space.
	Report []TermScore
}

// Run minimizes the objective over the TestLab parameters: a global
// annealing search over the configured box, followed by a local
// refinement from the best point found. If rnd is nil, a source
// seeded with [Config.Seed] is used. Failure of the local phase is
// logged and leaves the result of the global phase.
func Run(obj *Objective, cfg *Config, rnd randx.Rand) (*Result, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = randx.NewSysRand(cfg.Seed)
	}

	bounds := minmax.Box(cs.NumParams, cfg.Lower, cfg.Upper)
	ac := cfg.Anneal
	ac.MaxIter = cfg.MaxIter
	slog.Info("fit: global search", "terms", len(obj.Terms), "maxIter", ac.MaxIter, "lower", cfg.Lower, "upper", cfg.Upper)
	g := Anneal(obj.Func, bounds, ac, rnd)
	slog.Info("fit: intermediate residual", "f", g.F, "iterations", g.Iterations, "evals", g.FunEvals, "restarts", g.Restarts)

	x, fx, err := Refine(obj.Func, g.X, cfg.localMaxIter())
	if err != nil {
		slog.Warn("fit: local refinement stopped early", "err", err)
	}
	slog.Info("fit: final residual", "f", fx)

	p, err := cs.ParamsFromVector(x)
	if err != nil {
		return nil, err
	}
	res := &Result{Global: g, X: x, F: fx, Params: p}
	if c, err := cs.NewTestLab(p); err == nil {
		res.Report = errors.Log1(obj.Report(c))
	}
	return res, nil
}
