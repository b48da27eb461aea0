// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// labDelta is the junction 6/29 of the cube-root and linear
	// segments of the CIE lightness curve.
	labDelta = 6.0 / 29.0

	labDelta3 = labDelta * labDelta * labDelta
)

// LabCompress is the CIELAB compression function f(t):
// the cube root above (6/29)^3, and the linear segment
// t / (3 (6/29)^2) + 4/29 below, joined with matching slope.
func LabCompress(t float64) float64 {
	if t > labDelta3 {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// LabUncompress is the inverse of [LabCompress].
func LabUncompress(f float64) float64 {
	if f > labDelta {
		return f * f * f
	}
	return 3 * labDelta * labDelta * (f - 4.0/29.0)
}

// LightnessFromY returns the CIE lightness L* (0-100) for the relative
// luminance t = Y / Yn: 116 cbrt(t) - 16 above (6/29)^3 and
// t / (3/29)^3 below, so that the curve has no vertical tangent at black.
func LightnessFromY(t float64) float64 {
	if t > labDelta3 {
		return 116*math.Cbrt(t) - 16
	}
	return t / ((labDelta / 2) * (labDelta / 2) * (labDelta / 2))
}

// YFromLightness is the inverse of [LightnessFromY], with the
// segments meeting at L* = 8.
func YFromLightness(l float64) float64 {
	if l > 8 {
		f := (l + 16) / 116
		return f * f * f
	}
	return l * (3.0 / 29.0) * (3.0 / 29.0) * (3.0 / 29.0)
}

