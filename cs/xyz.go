// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"fmt"

	"cogentcore.org/colorio/mat3"
)

// XYZ is the CIE 1931 XYZ space itself, with values
// in either the 0-100 or the 0-1 range.
type XYZ struct {
	scale float64
}

// NewXYZ returns the XYZ space with the given scale,
// which must be 100 (identity) or 1.
func NewXYZ(scale float64) (*XYZ, error) {
	if scale != 1 && scale != 100 {
		return nil, fmt.Errorf("cs: XYZ scale must be 1 or 100, got %g", scale)
	}
	return &XYZ{scale: scale}, nil
}

func (c *XYZ) Name() string {
	if c.scale == 1 {
		return "XYZ1"
	}
	return "XYZ"
}

func (c *XYZ) Labels() [3]string { return [3]string{"X", "Y", "Z"} }
func (c *XYZ) K0() int { return 1 }
func (c *XYZ) IsOriginWellDefined() bool { return true }

func (c *XYZ) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	s := c.scale / 100
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 { return v.Scale(s) }), nil
}

func (c *XYZ) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	s := 100 / c.scale
	return transform(coords, func(v mat3.Vec3) mat3.Vec3 { return v.Scale(s) }), nil
}
