// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
// Supports wrapping values into the range.
type F64 struct {
	Min float64
	Max float64
}

// Box returns n identical ranges [mn, mx], e.g., the search box
// of an optimizer with the same bounds in every dimension.
func Box(n int, mn, mx float64) []F64 {
	b := make([]F64, n)
	for i := range b {
		b[i].Set(mn, mx)
	}
	return b
}

// Set sets the min and max values
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// Range returns Max - Min
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// WrapValue maps given value periodically into the [Min, Max) range,
// so that leaving through one side re-enters through the other.
// Note: a NaN or Inf becomes a NaN.
func (mr *F64) WrapValue(val float64) float64 {
	r := mr.Range()
	if r <= 0 {
		return mr.Min
	}
	a := math.Mod(val-mr.Min, r)
	if a < 0 {
		a += r
	}
	return mr.Min + a
}
