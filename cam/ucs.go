// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam

import (
	"fmt"
	"math"

	"cogentcore.org/colorio/mat3"
)

// Variant is one of the uniform color spaces derived from an
// appearance model (Luo, Cui and Li 2006).
type Variant int32

const (
	// UCS is the uniform color space for all color differences.
	UCS Variant = iota

	// LCD is tuned for large color differences.
	LCD

	// SCD is tuned for small color differences.
	SCD
)

// Coefficients holds the K_L, c1 and c2 coefficients of a [Variant].
type Coefficients struct {
	KL float64
	C1 float64
	C2 float64
}

var variantCoefficients = [...]Coefficients{
	UCS: {KL: 1.0, C1: 0.007, C2: 0.0228},
	LCD: {KL: 0.77, C1: 0.007, C2: 0.0053},
	SCD: {KL: 1.24, C1: 0.007, C2: 0.0363},
}

var variantNames = [...]string{UCS: "UCS", LCD: "LCD", SCD: "SCD"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int32(v))
	}
	return variantNames[v]
}

// Coefficients returns the coefficients of the variant.
func (v Variant) Coefficients() Coefficients {
	return variantCoefficients[v]
}

// FromXYZ100 returns the J', a', b' coordinates of the given
// 100-based XYZ value in the variant's space under view vw.
func (v Variant) FromXYZ100(vw *View, xyz mat3.Vec3) mat3.Vec3 {
	co := variantCoefficients[v]
	ap := vw.FromXYZ100(xyz)
	jp := (1 + 100*co.C1) * ap.Lightness / (1 + co.C1*ap.Lightness)
	mp := math.Log1p(co.C2*ap.Colorfulness) / co.C2
	hr := ap.Hue * math.Pi / 180
	return mat3.Vec3{jp / co.KL, mp * math.Cos(hr), mp * math.Sin(hr)}
}

// ToXYZ100 is the inverse of [Variant.FromXYZ100].
func (v Variant) ToXYZ100(vw *View, jab mat3.Vec3) mat3.Vec3 {
	co := variantCoefficients[v]
	jp := jab[0] * co.KL
	j := jp / (1 - (jp-100)*co.C1)
	mp := math.Hypot(jab[1], jab[2])
	m := math.Expm1(co.C2*mp) / co.C2
	h := math.Atan2(jab[2], jab[1]) * 180 / math.Pi
	return vw.ToXYZ100FromJCh(j, m/vw.FLRoot, h)
}
