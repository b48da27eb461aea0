// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"cogentcore.org/colorio/cam"
	"cogentcore.org/colorio/mat3"
)

// CAMUCS is one of the uniform color spaces built on the CIECAM02
// or CAM16 appearance models, such as CAM16-UCS.
type CAMUCS struct {
	View    *cam.View
	Variant cam.Variant
}

// NewCAMUCS returns the uniform space of the given model and variant
// under the given viewing conditions.
func NewCAMUCS(model cam.Model, variant cam.Variant, vc cam.ViewConfig) (*CAMUCS, error) {
	vw, err := cam.NewView(model, vc)
	if err != nil {
		return nil, err
	}
	return &CAMUCS{View: vw, Variant: variant}, nil
}

func (c *CAMUCS) Name() string { return c.View.Model.String() + "-" + c.Variant.String() }
func (c *CAMUCS) Labels() [3]string { return [3]string{"J'", "a'", "b'"} }
func (c *CAMUCS) K0() int { return 0 }
func (c *CAMUCS) IsOriginWellDefined() bool { return false }

func (c *CAMUCS) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 {
		return c.Variant.FromXYZ100(c.View, v)
	}), nil
}

func (c *CAMUCS) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(coords, func(v mat3.Vec3) mat3.Vec3 {
		return c.Variant.ToXYZ100(c.View, v)
	}), nil
}
