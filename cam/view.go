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
	"fmt"
	"math"

	"cogentcore.org/colorio/cie"
	"cogentcore.org/colorio/mat3"
)

// Model selects the color appearance model.
type Model int32

const (
	// CAM02 is CIECAM02 (Moroney, Fairchild, Hunt et al. 2002).
	CAM02 Model = iota

	// CAM16 is CAM16 (Li, Li, Wang et al. 2017).
	CAM16
)

func (m Model) String() string {
	switch m {
	case CAM02:
		return "CAM02"
	case CAM16:
		return "CAM16"
	}
	return fmt.Sprintf("Model(%d)", int32(m))
}

// Chromatic adaptation and cone space matrices.
var (
	CAT02 = mat3.Mat3{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}

	CAT16 = mat3.Mat3{
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	}

	// HPE is the Hunt-Pointer-Estevez cone space used by CIECAM02.
	HPE = mat3.Mat3{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0, 0, 1},
	}
)

// ViewConfig holds the named viewing condition options of a [View].
type ViewConfig struct {

	// Whitepoint is the 100-based tristimulus value of the adopted white.
	Whitepoint mat3.Vec3

	// C is the exponential nonlinearity of the surround:
	// 0.69 average, 0.59 dim, 0.525 dark.
	C float64

	// Yb is the relative luminance of the background (0-100).
	Yb float64

	// LA is the adapting field luminance in cd/m^2.
	LA float64

	// Discount sets the degree of adaptation to 1 (discounting the illuminant)
	// instead of computing it from LA and the surround.
	Discount bool
}

// Defaults sets the viewing conditions used by the color difference
// studies: D65, average surround, Yb = 20 and LA = 64 / pi / 5.
func (vc *ViewConfig) Defaults() {
	vc.Whitepoint = cie.WhiteD65
	vc.C = SurroundAverage.C
	vc.Yb = 20
	vc.LA = 64 / math.Pi / 5
	vc.Discount = false
}

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. All values are computed
// once by [NewView] and never change.
type View struct {
	Model  Model
	Config ViewConfig

	Surround Surround

	// degree of adaptation
	D float64

	// luminance-level adaptation factor
	FL float64

	// FL to the 1/4 power
	FLRoot float64

	// ratio of background to white luminance
	N float64

	// base exponential nonlinearity
	Z float64

	// luminance level induction factors
	NBB, NCB float64

	// cone responses to the white point, adjusted for discounting
	DRGB mat3.Vec3

	// achromatic response of the white
	AW float64

	// precomputed factor (1.64 - 0.29^N)^0.73 of the chroma
	chromaFactor float64

	cat, catInv   mat3.Mat3
	cone, coneInv mat3.Mat3
}

// NewView returns the view for the given model and viewing conditions.
func NewView(model Model, vc ViewConfig) (*View, error) {
	if vc.Whitepoint.HasNegative() || vc.Whitepoint[1] <= 0 {
		return nil, fmt.Errorf("cam: invalid whitepoint %v", vc.Whitepoint)
	}
	if vc.Yb <= 0 {
		return nil, fmt.Errorf("cam: background luminance Yb must be positive, got %g", vc.Yb)
	}
	if vc.LA < 0 {
		return nil, fmt.Errorf("cam: adapting luminance LA must be non-negative, got %g", vc.LA)
	}
	if vc.C <= 0 {
		return nil, fmt.Errorf("cam: surround c must be positive, got %g", vc.C)
	}
	vw := &View{Model: model, Config: vc, Surround: SurroundFromC(vc.C)}
	switch model {
	case CAM02:
		vw.cat = CAT02
		vw.cone = HPE
	case CAM16:
		vw.cat = CAT16
		vw.cone = mat3.Identity()
	default:
		return nil, fmt.Errorf("cam: unknown model %v", model)
	}
	var err error
	if vw.catInv, err = vw.cat.Inverse(); err != nil {
		return nil, err
	}
	if model == CAM02 {
		hpeInv, err := HPE.Inverse()
		if err != nil {
			return nil, err
		}
		// the HPE step works on the adapted CAT02 responses mapped back to XYZ
		vw.cone = HPE.Mul(vw.catInv)
		vw.coneInv = vw.cat.Mul(hpeInv)
	} else {
		vw.coneInv = mat3.Identity()
	}
	vw.update()
	return vw, nil
}

// NewStdView returns the view of the given model under the
// [ViewConfig.Defaults] viewing conditions.
func NewStdView(model Model) *View {
	var vc ViewConfig
	vc.Defaults()
	vw, err := NewView(model, vc)
	if err != nil {
		panic(err)
	}
	return vw
}

func (vw *View) update() {
	vc := &vw.Config
	la := vc.LA

	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.FL = k4*la + 0.1*k4F*k4F*math.Cbrt(5*la)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	if vc.Discount {
		vw.D = 1
	} else {
		vw.D = vw.Surround.F * (1 - (1/3.6)*math.Exp((-la-42)/92))
		// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
		vw.D = min(1, max(0, vw.D))
	}

	wp := vc.Whitepoint
	vw.N = vc.Yb / wp[1]
	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math.Sqrt(vw.N)
	vw.NBB = 0.725 / math.Pow(vw.N, 0.2)
	vw.NCB = vw.NBB
	vw.chromaFactor = math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)

	rgbW := vw.cat.MulVec(wp)
	for i := 0; i < 3; i++ {
		vw.DRGB[i] = vw.D*wp[1]/rgbW[i] + 1 - vw.D
	}
	rgbA := vw.adapt(vw.cone.MulVec(vw.DRGB.Mul(rgbW)))
	vw.AW = vw.achromatic(rgbA)
}

// adapt applies the post-adaptation response compression,
// including the 0.1 noise offset.
func (vw *View) adapt(rgb mat3.Vec3) mat3.Vec3 {
	var ra mat3.Vec3
	for i, v := range rgb {
		x := math.Pow(vw.FL*math.Abs(v)/100, 0.42)
		ra[i] = math.Copysign(400*x/(x+27.13), v) + 0.1
	}
	return ra
}

// unadapt is the inverse of adapt.
func (vw *View) unadapt(ra mat3.Vec3) mat3.Vec3 {
	var rgb mat3.Vec3
	for i, v := range ra {
		v -= 0.1
		av := math.Abs(v)
		rgb[i] = math.Copysign((100/vw.FL)*math.Pow(27.13*av/(400-av), 1/0.42), v)
	}
	return rgb
}

// achromatic returns the achromatic response A of adapted responses.
func (vw *View) achromatic(ra mat3.Vec3) float64 {
	return (2*ra[0] + ra[1] + ra[2]/20 - 0.305) * vw.NBB
}
