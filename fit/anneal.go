// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/colorio/base/minmax"
	"cogentcore.org/colorio/base/randx"
)

// AnnealConfig holds the parameters of generalized simulated annealing
// (Tsallis and Stariolo 1996, Xiang et al. 1997).
type AnnealConfig struct {

	// MaxIter is the maximum number of temperature steps.
	MaxIter int

	// MaxFunEvals is the maximum number of function evaluations.
	MaxFunEvals int

	// InitialTemp is the temperature at the start and after each restart.
	InitialTemp float64

	// RestartTempRatio restarts the annealing from a random point when
	// the temperature falls below InitialTemp * RestartTempRatio.
	RestartTempRatio float64

	// Visit is the parameter qv of the visiting distribution (1 < qv < 3);
	// larger values give longer jumps.
	Visit float64

	// Accept is the parameter qa of the acceptance probability;
	// smaller values make accepting uphill moves less likely.
	Accept float64
}

// Defaults sets the default parameters.
func (ac *AnnealConfig) Defaults() {
	ac.MaxIter = 1000
	ac.MaxFunEvals = 10_000_000
	ac.InitialTemp = 5230
	ac.RestartTempRatio = 2e-5
	ac.Visit = 2.62
	ac.Accept = -5
}

// AnnealResult is the outcome of [Anneal].
type AnnealResult struct {

	// X is the best point found, and F its function value.
	X []float64
	F float64

	Iterations int
	FunEvals   int
	Restarts   int
}

// tailLimit bounds the visiting steps, which are heavy tailed.
const tailLimit = 1e8

// annealer holds the state of one [Anneal] run.
type annealer struct {
	AnnealConfig
	f      func(x []float64) float64
	bounds []minmax.F64
	rnd    randx.Rand

	x, xNew []float64
	e       float64
	res     AnnealResult
}

// Anneal minimizes f over the box given by bounds with generalized
// simulated annealing. Each temperature step runs a Markov chain
// of len(bounds) moves of all coordinates followed by len(bounds) moves
// of single coordinates. Moves leaving the box re-enter it through the
// opposite side. f must not return NaN; see [Guard].
func Anneal(f func(x []float64) float64, bounds []minmax.F64, ac AnnealConfig, rnd randx.Rand) AnnealResult {
	an := &annealer{AnnealConfig: ac, f: f, bounds: bounds, rnd: rnd}
	an.run()
	return an.res
}

func (an *annealer) eval(x []float64) float64 {
	an.res.FunEvals++
	return an.f(x)
}

func (an *annealer) done() bool {
	return an.res.Iterations >= an.MaxIter || an.res.FunEvals >= an.MaxFunEvals
}

// reset starts from a uniformly random point in the box.
func (an *annealer) reset() {
	for i := range an.x {
		an.x[i] = randx.UniformGen(an.bounds[i].Min, an.bounds[i].Max, an.rnd)
	}
	an.e = an.eval(an.x)
	an.update(an.x, an.e)
}

// update records x as the best point if e improves on it.
func (an *annealer) update(x []float64, e float64) {
	if an.res.X == nil || e < an.res.F {
		an.res.X = slices.Clone(x)
		an.res.F = e
	}
}

func (an *annealer) run() {
	n := len(an.bounds)
	an.x = make([]float64, n)
	an.xNew = make([]float64, n)
	an.reset()

	qv := an.Visit
	t1 := math.Expm1((qv - 1) * math.Ln2)
	restartTemp := an.InitialTemp * an.RestartTempRatio
	for !an.done() {
		for step := 0; !an.done(); step++ {
			s := float64(step) + 2
			t2 := math.Expm1((qv - 1) * math.Log(s))
			temp := an.InitialTemp * t1 / t2
			an.res.Iterations++
			if temp < restartTemp {
				an.res.Restarts++
				slog.Debug("fit: annealing restart", "iteration", an.res.Iterations, "best", an.res.F)
				an.reset()
				break
			}
			an.chain(temp, temp/float64(step+1))
		}
	}
}

// visit returns a visiting step at the given temperature.
func (an *annealer) visit(temp float64) float64 {
	v := randx.TsallisGen(temp, an.Visit, an.rnd)
	switch {
	case v > tailLimit:
		v = tailLimit * an.rnd.Float64()
	case v < -tailLimit:
		v = -tailLimit * an.rnd.Float64()
	}
	return v
}

// chain runs the Markov chain of one temperature step.
func (an *annealer) chain(temp, tempStep float64) {
	n := len(an.x)
	for j := 0; j < 2*n; j++ {
		if an.done() {
			return
		}
		copy(an.xNew, an.x)
		if j < n {
			for i := range an.xNew {
				an.xNew[i] = an.bounds[i].WrapValue(an.x[i] + an.visit(temp))
			}
		} else {
			i := j - n
			an.xNew[i] = an.bounds[i].WrapValue(an.x[i] + an.visit(temp))
		}
		e := an.eval(an.xNew)
		if e < an.e || an.accept(e, tempStep) {
			an.x, an.xNew = an.xNew, an.x
			an.e = e
			an.update(an.x, e)
		}
	}
}

// accept returns whether an uphill move to energy e is accepted,
// with the generalized Metropolis probability.
func (an *annealer) accept(e, tempStep float64) bool {
	qa := an.Accept
	pqvTemp := 1 - (1-qa)*(e-an.e)/tempStep
	if pqvTemp <= 0 {
		return false
	}
	pqv := math.Exp(math.Log(pqvTemp) / (1 - qa))
	return an.rnd.Float64() <= pqv
}
