// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// Refine minimizes f locally with BFGS, starting from x0, using
// central finite difference gradients. It runs at most maxIter
// iterations; if maxIter <= 0, x0 is returned unchanged. When the
// search fails (for example in a line search near a penalized region)
// the best point seen so far is returned together with the error.
// The returned point is never worse than x0.
func Refine(f func(x []float64) float64, x0 []float64, maxIter int) ([]float64, float64, error) {
	f0 := f(x0)
	if maxIter <= 0 {
		return slices.Clone(x0), f0, nil
	}
	fds := &fd.Settings{Formula: fd.Central}
	problem := optimize.Problem{
		Func: f,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, f, x, fds)
		},
	}
	settings := &optimize.Settings{
		GradientThreshold: 1e-8,
		MajorIterations:   maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 20,
		},
	}
	res, err := optimize.Minimize(problem, slices.Clone(x0), settings, &optimize.BFGS{})
	if err != nil {
		err = fmt.Errorf("fit: local refinement: %w", err)
	}
	if res == nil || res.F > f0 {
		return slices.Clone(x0), f0, err
	}
	return res.X, res.F, err
}
