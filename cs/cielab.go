// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"cogentcore.org/colorio/cie"
	"cogentcore.org/colorio/mat3"
)

// CIELUV is the CIE 1976 L*u*v* space relative to a whitepoint.
type CIELUV struct {
	whitepoint mat3.Vec3

	// chromaticity u', v' of the whitepoint
	un, vn float64
}

// NewCIELUV returns the CIELUV space for the given 100-based whitepoint,
// such as [cie.WhiteD65].
func NewCIELUV(whitepoint mat3.Vec3) *CIELUV {
	c := &CIELUV{whitepoint: whitepoint}
	c.un, c.vn = uvPrime(whitepoint)
	return c
}

// uvPrime returns the CIE 1976 UCS chromaticity u', v' of xyz.
func uvPrime(xyz mat3.Vec3) (u, v float64) {
	p := xyz[0] + 15*xyz[1] + 3*xyz[2]
	return 4 * xyz[0] / p, 9 * xyz[1] / p
}

func (c *CIELUV) Name() string { return "CIELUV" }
func (c *CIELUV) Labels() [3]string { return [3]string{"L*", "u*", "v*"} }
func (c *CIELUV) K0() int { return 0 }
func (c *CIELUV) IsOriginWellDefined() bool { return false }

// Whitepoint returns the whitepoint of the space.
func (c *CIELUV) Whitepoint() mat3.Vec3 { return c.whitepoint }

func (c *CIELUV) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 {
		l := cie.LightnessFromY(v[1] / c.whitepoint[1])
		u, vp := uvPrime(v)
		return mat3.Vec3{l, 13 * l * (u - c.un), 13 * l * (vp - c.vn)}
	}), nil
}

func (c *CIELUV) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(coords, func(v mat3.Vec3) mat3.Vec3 {
		l := v[0]
		u := v[1]/(13*l) + c.un
		vp := v[2]/(13*l) + c.vn
		y := c.whitepoint[1] * cie.YFromLightness(l)
		return mat3.Vec3{y * 9 * u / (4 * vp), y, y * (12 - 3*u - 20*vp) / (4 * vp)}
	}), nil
}

// CIELAB is the CIE 1976 L*a*b* space relative to a whitepoint.
type CIELAB struct {
	whitepoint mat3.Vec3
}

// NewCIELAB returns the CIELAB space for the given 100-based whitepoint.
func NewCIELAB(whitepoint mat3.Vec3) *CIELAB {
	return &CIELAB{whitepoint: whitepoint}
}

func (c *CIELAB) Name() string { return "CIELAB" }
func (c *CIELAB) Labels() [3]string { return [3]string{"L*", "a*", "b*"} }
func (c *CIELAB) K0() int { return 0 }
func (c *CIELAB) IsOriginWellDefined() bool { return true }

// Whitepoint returns the whitepoint of the space.
func (c *CIELAB) Whitepoint() mat3.Vec3 { return c.whitepoint }

func (c *CIELAB) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 {
		fx := cie.LabCompress(v[0] / c.whitepoint[0])
		fy := cie.LabCompress(v[1] / c.whitepoint[1])
		fz := cie.LabCompress(v[2] / c.whitepoint[2])
		return mat3.Vec3{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
	}), nil
}

func (c *CIELAB) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(coords, func(v mat3.Vec3) mat3.Vec3 {
		fy := (v[0] + 16) / 116
		fx := fy + v[1]/500
		fz := fy - v[2]/200
		return mat3.Vec3{
			c.whitepoint[0] * cie.LabUncompress(fx),
			c.whitepoint[1] * cie.LabUncompress(fy),
			c.whitepoint[2] * cie.LabUncompress(fz),
		}
	}), nil
}
