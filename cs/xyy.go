// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"fmt"

	"cogentcore.org/colorio/mat3"
)

// XYY is the CIE xyY space: the chromaticity coordinates x and y
// together with the luminance Y.
type XYY struct {
	yScale float64
}

// NewXYY returns the xyY space. With yScale 100 the luminance is
// kept in the 0-100 range, with yScale 1 it is divided by 100.
func NewXYY(yScale float64) (*XYY, error) {
	if yScale != 1 && yScale != 100 {
		return nil, fmt.Errorf("cs: xyY luminance scale must be 1 or 100, got %g", yScale)
	}
	return &XYY{yScale: yScale}, nil
}

func (c *XYY) Name() string {
	if c.yScale == 1 {
		return "xyY1"
	}
	return "xyY"
}

func (c *XYY) Labels() [3]string { return [3]string{"x", "y", "Y"} }
func (c *XYY) K0() int { return 2 }
func (c *XYY) IsOriginWellDefined() bool { return false }

func (c *XYY) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	if err := checkNonNegative(c.Name(), "Negative XYZ100 value", xyz); err != nil {
		return nil, err
	}
	s := c.yScale / 100
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 {
		sum := v.Sum()
		return mat3.Vec3{v[0] / sum, v[1] / sum, v[1] * s}
	}), nil
}

func (c *XYY) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	if err := checkNonNegative(c.Name(), "Negative xyY value", coords); err != nil {
		return nil, err
	}
	s := 100 / c.yScale
	return transform(coords, func(v mat3.Vec3) mat3.Vec3 {
		x, y, yy := v[0], v[1], v[2]*s
		return mat3.Vec3{yy / y * x, yy, yy / y * (1 - x - y)}
	}), nil
}
