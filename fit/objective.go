// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"log/slog"
	"math"

	"cogentcore.org/colorio/base/errors"
	"cogentcore.org/colorio/cs"
	"cogentcore.org/colorio/dataset"
	"cogentcore.org/colorio/stress"
)

// DefaultPenalty is the objective value of candidates that cannot be evaluated.
const DefaultPenalty = 1e10

// Guard returns v, or penalty if v is NaN or infinite.
// It is the only place where invalid results are replaced.
func Guard(v, penalty float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return penalty
	}
	return v
}

// Term is one dataset of an [Objective].
type Term struct {

	// Name is used for reporting.
	Name string

	// Weight is the relative weight of the term.
	Weight float64

	// PerGroup scores the dataset by the generalized mean of the
	// per-group STRESS values instead of the overall STRESS.
	PerGroup bool

	// Order is the order of the generalized mean for PerGroup terms,
	// e.g., 3 for the cubic mean or +Inf for the maximum.
	Order float64

	Dataset *dataset.Dataset
}

// Score returns the STRESS of the term for the given space.
func (t *Term) Score(c cs.ColorSpace) (float64, error) {
	if !t.PerGroup {
		return stress.STRESS(c, t.Dataset)
	}
	gs, err := stress.GroupSTRESS(c, t.Dataset)
	if err != nil {
		return math.NaN(), err
	}
	return stress.GeneralizedMean(gs, t.Order), nil
}

// Objective is the function minimized over [cs.Params].
type Objective struct {
	Terms []Term

	// CombineOrder is the order of the generalized mean of the
	// weighted term scores; zero means 1, the arithmetic mean.
	CombineOrder float64

	// Penalty is the value of candidates that cannot be evaluated;
	// zero means [DefaultPenalty].
	Penalty float64
}

// Validate returns an error if the objective cannot be evaluated
// for any parameters.
func (o *Objective) Validate() error {
	if len(o.Terms) == 0 {
		return errors.New("fit: objective has no terms")
	}
	var sum float64
	for _, t := range o.Terms {
		if t.Weight < 0 {
			return fmt.Errorf("fit: term %q has negative weight %g", t.Name, t.Weight)
		}
		if t.Dataset == nil {
			return fmt.Errorf("fit: term %q has no dataset", t.Name)
		}
		sum += t.Weight
	}
	if sum <= 0 {
		return errors.New("fit: term weights sum to zero")
	}
	return nil
}

func (o *Objective) penalty() float64 {
	if o.Penalty == 0 {
		return DefaultPenalty
	}
	return o.Penalty
}

// Eval returns the objective value of the TestLab space with parameters p.
// It never returns NaN: invalid parameters (such as singular matrices)
// and failed or undefined scores give the penalty.
func (o *Objective) Eval(p cs.Params) float64 {
	c, err := cs.NewTestLab(p)
	if err != nil {
		slog.Debug("fit: invalid parameters", "err", err)
		return o.penalty()
	}
	return Guard(o.EvalSpace(c), o.penalty())
}

// EvalSpace returns the unguarded objective value of any color space:
// the generalized mean of the weighted term scores, with the weights
// normalized to sum to one. Errors give NaN.
func (o *Objective) EvalSpace(c cs.ColorSpace) float64 {
	var wsum float64
	for _, t := range o.Terms {
		wsum += t.Weight
	}
	vals := make([]float64, len(o.Terms))
	for i := range o.Terms {
		t := &o.Terms[i]
		s, err := t.Score(c)
		if err != nil {
			slog.Debug("fit: term evaluation failed", "term", t.Name, "err", err)
			return math.NaN()
		}
		vals[i] = t.Weight / wsum * s
	}
	order := o.CombineOrder
	if order == 0 {
		order = 1
	}
	return stress.GeneralizedMean(vals, order)
}

// Func returns the objective value for the flat parameter vector x,
// as expected by general purpose minimizers. Vectors of the wrong
// length give the penalty.
func (o *Objective) Func(x []float64) float64 {
	p, err := cs.ParamsFromVector(x)
	if err != nil {
		slog.Debug("fit: invalid parameter vector", "err", err)
		return o.penalty()
	}
	return o.Eval(p)
}

// TermScore is the score of one term in a [Report].
type TermScore struct {
	Name  string
	Score float64
}

// Report returns the unweighted score of every term for the given space.
func (o *Objective) Report(c cs.ColorSpace) ([]TermScore, error) {
	res := make([]TermScore, len(o.Terms))
	for i := range o.Terms {
		t := &o.Terms[i]
		s, err := t.Score(c)
		if err != nil {
			return nil, fmt.Errorf("fit: term %q: %w", t.Name, err)
		}
		res[i] = TermScore{Name: t.Name, Score: s}
	}
	return res, nil
}
