// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"math"

	"cogentcore.org/colorio/base/errors"
	"cogentcore.org/colorio/mat3"
)

// JzAzBz constants of Safdar et al. (2017).
const (
	jzB  = 1.15
	jzG  = 0.66
	jzC1 = 3424.0 / 4096
	jzC2 = 2413.0 / 128
	jzC3 = 2392.0 / 128
	jzN  = 2610.0 / 16384
	jzP  = 1.7 * 2523.0 / 32
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11
)

var (
	jzM1 = mat3.Mat3{
		{0.41478972, 0.579999, 0.0146480},
		{-0.2015100, 1.120649, 0.0531008},
		{-0.0166008, 0.264800, 0.6684799},
	}
	jzM2 = mat3.Mat3{
		{0.5, 0.5, 0},
		{3.524000, -4.066708, 0.542708},
		{0.199076, 1.096799, -1.295875},
	}
)

// JzAzBz is the space of Safdar et al. (2017) for high dynamic
// range content. The XYZ input is interpreted as absolute luminance
// in cd/m^2 after multiplication with the scale.
type JzAzBz struct {
	scale float64

	m1Inv, m2Inv mat3.Mat3
}

// NewJzAzBz returns the JzAzBz space where an XYZ100 value of 1
// corresponds to scale cd/m^2.
func NewJzAzBz(scale float64) *JzAzBz {
	return &JzAzBz{
		scale: scale,
		m1Inv: errors.Must1(jzM1.Inverse()),
		m2Inv: errors.Must1(jzM2.Inverse()),
	}
}

func (c *JzAzBz) Name() string { return "JzAzBz" }
func (c *JzAzBz) Labels() [3]string { return [3]string{"J_z", "a_z", "b_z"} }
func (c *JzAzBz) K0() int { return 0 }
func (c *JzAzBz) IsOriginWellDefined() bool { return true }

// pq is the perceptual quantizer curve applied to the cone responses.
func pq(x float64) float64 {
	xp := math.Pow(x/10000, jzN)
	return math.Pow((jzC1+jzC2*xp)/(1+jzC3*xp), jzP)
}

// pqInv is the inverse of pq.
func pqInv(x float64) float64 {
	xp := math.Pow(x, 1/jzP)
	return 10000 * math.Pow((jzC1-xp)/(jzC3*xp-jzC2), 1/jzN)
}

func (c *JzAzBz) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 {
		x, y, z := v[0]*c.scale, v[1]*c.scale, v[2]*c.scale
		xp := jzB*x - (jzB-1)*z
		yp := jzG*y - (jzG-1)*x
		lms := jzM1.MulVec(mat3.Vec3{xp, yp, z})
		lmsp := mat3.Vec3{pq(lms[0]), pq(lms[1]), pq(lms[2])}
		iab := jzM2.MulVec(lmsp)
		jz := (1+jzD)*iab[0]/(1+jzD*iab[0]) - jzD0
		return mat3.Vec3{jz, iab[1], iab[2]}
	}), nil
}

func (c *JzAzBz) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(coords, func(v mat3.Vec3) mat3.Vec3 {
		jz := v[0] + jzD0
		iz := jz / (1 + jzD - jzD*jz)
		lmsp := c.m2Inv.MulVec(mat3.Vec3{iz, v[1], v[2]})
		lms := mat3.Vec3{pqInv(lmsp[0]), pqInv(lmsp[1]), pqInv(lmsp[2])}
		xyzp := c.m1Inv.MulVec(lms)
		z := xyzp[2]
		x := (xyzp[0] + (jzB-1)*z) / jzB
		y := (xyzp[1] + (jzG-1)*x) / jzG
		return mat3.Vec3{x / c.scale, y / c.scale, z / c.scale}
	}), nil
}
