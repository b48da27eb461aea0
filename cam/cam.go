// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cam

import (
	"math"

	"cogentcore.org/colorio/mat3"
)

// Appearance represents a point in a color appearance model along
// six dimensions representing the perceived hue, colorfulness and
// brightness, calibrated to actual human subjective judgments.
type Appearance struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees
	Hue float64

	// chroma (C) is the colorfulness relative to the brightness of the white
	Chroma float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to its own brightness
	Saturation float64

	// brightness (Q) is the apparent amount of light from the color
	Brightness float64

	// lightness (J) is the brightness relative to a reference white
	Lightness float64
}

// FromXYZ100 returns the appearance correlates of the given
// 100-based XYZ value under the view.
func (vw *View) FromXYZ100(xyz mat3.Vec3) Appearance {
	rgb := vw.cat.MulVec(xyz)
	rgbA := vw.adapt(vw.cone.MulVec(vw.DRGB.Mul(rgb)))

	// redness-greenness and yellowness-blueness opponent channels
	a := rgbA[0] - 12*rgbA[1]/11 + rgbA[2]/11
	b := (rgbA[0] + rgbA[1] - 2*rgbA[2]) / 9

	hr := math.Atan2(b, a)
	hue := math.Mod(hr*180/math.Pi+360, 360)

	ac := vw.achromatic(rgbA)
	sc := vw.Surround
	j := 100 * math.Pow(ac/vw.AW, sc.C*vw.Z)
	q := (4 / sc.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot

	et := eccentricity(hr)
	t := (50000.0 / 13 * sc.Nc * vw.NCB * et * math.Hypot(a, b)) / (rgbA[0] + rgbA[1] + 21*rgbA[2]/20)
	chroma := math.Pow(t, 0.9) * math.Sqrt(j/100) * vw.chromaFactor
	m := chroma * vw.FLRoot
	s := 100 * math.Sqrt(m/q)

	return Appearance{
		Hue:          hue,
		Chroma:       chroma,
		Colorfulness: m,
		Saturation:   s,
		Brightness:   q,
		Lightness:    j,
	}
}

// eccentricity returns the eccentricity factor e_t for the hue
// angle h in radians.
func eccentricity(h float64) float64 {
	return 0.25 * (math.Cos(h+2) + 3.8)
}

// ToXYZ100FromJCh returns the 100-based XYZ value of the color
// with the given lightness J, chroma C and hue h in degrees.
// J = 0 gives NaN values, as the hue is then undefined.
func (vw *View) ToXYZ100FromJCh(j, c, h float64) mat3.Vec3 {
	hr := h * math.Pi / 180
	sc := vw.Surround

	t := math.Pow(c/(math.Sqrt(j/100)*vw.chromaFactor), 1/0.9)
	et := eccentricity(hr)
	ac := vw.AW * math.Pow(j/100, 1/(sc.C*vw.Z))

	p1 := 50000.0 / 13 * sc.Nc * vw.NCB * et
	p2 := ac/vw.NBB + 0.305
	cosh, sinh := math.Cos(hr), math.Sin(hr)

	gamma := 23 * p2 * t / (23*p1 + 11*t*cosh + 108*t*sinh)
	a := gamma * cosh
	b := gamma * sinh

	rgbA := mat3.Vec3{
		(460*p2 + 451*a + 288*b) / 1403,
		(460*p2 - 891*a - 261*b) / 1403,
		(460*p2 - 220*a - 6300*b) / 1403,
	}
	rgbC := vw.coneInv.MulVec(vw.unadapt(rgbA))
	return vw.catInv.MulVec(rgbC.Div(vw.DRGB))
}
