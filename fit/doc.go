// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit searches for the parameters of a [cs.TestLab] space that best
// predict the perceived distances of a set of reference datasets.
//
// The [Objective] combines the weighted STRESS values of several datasets
// into a single value, which is minimized over the 19 parameters in two
// phases: a generalized simulated annealing over a bounded box ([Anneal]),
// followed by a local BFGS refinement from the best point found ([Refine]).
// Candidates that cannot be evaluated never abort the search: they score
// a large penalty instead ([Guard]).
package fit
