// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"fmt"
	"math"

	"cogentcore.org/colorio/cie"
	"cogentcore.org/colorio/mat3"
)

// RLABConfig holds the viewing condition options of [RLAB].
type RLABConfig struct {

	// Whitepoint is the 100-based tristimulus value of the adopted white.
	Whitepoint mat3.Vec3

	// Yn is the absolute luminance of the adapting stimulus in cd/m^2.
	Yn float64

	// D is the degree of discounting of the illuminant (0-1).
	D float64

	// Sigma is the exponent of the surround:
	// 1/2.3 average, 1/2.9 dim, 1/3.5 dark.
	Sigma float64
}

// Defaults sets a D65 white of 318.31 cd/m^2 in an average surround.
func (rc *RLABConfig) Defaults() {
	rc.Whitepoint = cie.WhiteD65
	rc.Yn = 318.31
	rc.D = 0
	rc.Sigma = 1 / 2.3
}

// RLAB is the RLAB space of Fairchild (1996).
type RLAB struct {
	Config RLABConfig

	// transform from XYZ to the reference viewing conditions, and inverse
	ref, refInv mat3.Mat3
}

// NewRLAB returns the RLAB space for the given viewing conditions.
func NewRLAB(rc RLABConfig) (*RLAB, error) {
	if rc.Sigma <= 0 {
		return nil, fmt.Errorf("cs: RLAB sigma must be positive, got %g", rc.Sigma)
	}
	hpe := mat3.Mat3{
		{0.3897, 0.6890, -0.0787},
		{-0.2298, 1.1834, 0.0464},
		{0.0, 0.0, 1.0},
	}
	r := mat3.Mat3{
		{1.9569, -1.1882, 0.2313},
		{0.3612, 0.6388, 0.0},
		{0.0, 0.0, 1.0},
	}
	lmsN := hpe.MulVec(rc.Whitepoint)
	lE := lmsN.Scale(3 / lmsN.Sum())
	yn3 := math.Cbrt(rc.Yn)
	var a mat3.Vec3
	for i := 0; i < 3; i++ {
		p := (1 + yn3 + lE[i]) / (1 + yn3 + 1/lE[i])
		a[i] = (p + rc.D*(1-p)) / lmsN[i]
	}
	ref := r.Mul(hpe.Scale(a))
	refInv, err := ref.Inverse()
	if err != nil {
		return nil, fmt.Errorf("cs: RLAB viewing conditions: %w", err)
	}
	return &RLAB{Config: rc, ref: ref, refInv: refInv}, nil
}

func (c *RLAB) Name() string { return "RLAB" }
func (c *RLAB) Labels() [3]string { return [3]string{"L_R", "a_R", "b_R"} }
func (c *RLAB) K0() int { return 0 }
func (c *RLAB) IsOriginWellDefined() bool { return true }

func (c *RLAB) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	sigma := c.Config.Sigma
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 {
		s := signedPow(c.ref.MulVec(v), sigma)
		return mat3.Vec3{100 * s[1], 430 * (s[0] - s[1]), 170 * (s[1] - s[2])}
	}), nil
}

func (c *RLAB) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	sigma := c.Config.Sigma
	return transform(coords, func(v mat3.Vec3) mat3.Vec3 {
		ys := v[0] / 100
		s := mat3.Vec3{v[1]/430 + ys, ys, ys - v[2]/170}
		return c.refInv.MulVec(signedPow(s, 1/sigma))
	}), nil
}
