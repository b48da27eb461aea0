// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam

// Surround holds the surround-dependent parameters of the models:
// the exponential nonlinearity C, the degree-of-adaptation
// factor F and the chromatic induction factor Nc.
type Surround struct {
	C  float64
	F  float64
	Nc float64
}

// The standard surrounds.
var (
	SurroundAverage = Surround{C: 0.69, F: 1.0, Nc: 1.0}
	SurroundDim     = Surround{C: 0.59, F: 0.9, Nc: 0.9}
	SurroundDark    = Surround{C: 0.525, F: 0.8, Nc: 0.8}
)

// SurroundFromC returns the surround for the given exponential
// nonlinearity c, interpolating F and Nc linearly between the
// standard surrounds (and clamping outside of dark..average).
func SurroundFromC(c float64) Surround {
	switch {
	case c <= SurroundDark.C:
		return Surround{C: c, F: SurroundDark.F, Nc: SurroundDark.Nc}
	case c >= SurroundAverage.C:
		return Surround{C: c, F: SurroundAverage.F, Nc: SurroundAverage.Nc}
	}
	lo, hi := SurroundDark, SurroundDim
	if c > SurroundDim.C {
		lo, hi = SurroundDim, SurroundAverage
	}
	f := (c - lo.C) / (hi.C - lo.C)
	return Surround{
		C:  c,
		F:  lo.F + f*(hi.F-lo.F),
		Nc: lo.Nc + f*(hi.Nc-lo.Nc),
	}
}
