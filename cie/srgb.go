// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"

	"cogentcore.org/colorio/mat3"
	"github.com/lucasb-eyer/go-colorful"
)

// SRGBLinToXYZ is the matrix from linear sRGB (Rec. 709 primaries, D65)
// to 1-based XYZ, as given in IEC 61966-2-1.
var SRGBLinToXYZ = mat3.Mat3{
	{0.4124, 0.3576, 0.1805},
	{0.2126, 0.7152, 0.0722},
	{0.0193, 0.1192, 0.9505},
}

// SRGBToLinearComp converts an sRGB gamma-encoded component
// (0-1 range) to linear.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear component to
// sRGB gamma encoding (0-1 range).
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToXYZ100 converts gamma-encoded sRGB values (0-1 range)
// to 100-based XYZ.
func SRGBToXYZ100(r, g, b float64) mat3.Vec3 {
	lin := mat3.Vec3{SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)}
	return SRGBLinToXYZ.MulVec(lin).Scale(100)
}

// XYZ100ToSRGB converts 100-based XYZ to gamma-encoded sRGB values.
// Out-of-gamut colors give components outside the 0-1 range.
func XYZ100ToSRGB(xyz mat3.Vec3) (r, g, b float64, err error) {
	inv, err := SRGBLinToXYZ.Inverse()
	if err != nil {
		return
	}
	lin := inv.MulVec(xyz.Scale(0.01))
	r = signed(SRGBFromLinearComp, lin[0])
	g = signed(SRGBFromLinearComp, lin[1])
	b = signed(SRGBFromLinearComp, lin[2])
	return
}

func signed(f func(float64) float64, v float64) float64 {
	if v < 0 {
		return -f(-v)
	}
	return f(v)
}

// HexToXYZ100 converts a hex sRGB color string such as "#ff8800"
// to 100-based XYZ.
func HexToXYZ100(hex string) (mat3.Vec3, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return mat3.Vec3{}, fmt.Errorf("cie: %w", err)
	}
	return SRGBToXYZ100(c.R, c.G, c.B), nil
}
