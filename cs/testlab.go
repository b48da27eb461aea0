// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"fmt"
	"math"

	"cogentcore.org/colorio/mat3"
)

// NumParams is the length of the flat parameter vector of [Params].
const NumParams = 19

// Params are the free parameters of a [TestLab] space.
type Params struct {

	// Power is the exponent applied between the two linear maps.
	Power float64

	// Linear1 maps XYZ to the space in which the power is applied.
	Linear1 mat3.Mat3

	// Linear2 maps the powered values to the final coordinates.
	Linear2 mat3.Mat3
}

// IdentityParams returns the parameters of the identity transform.
func IdentityParams() Params {
	return Params{Power: 1, Linear1: mat3.Identity(), Linear2: mat3.Identity()}
}

// ParamsFromVector returns the parameters stored in the flat vector x:
// the power followed by the row-major entries of Linear1 and Linear2.
func ParamsFromVector(x []float64) (Params, error) {
	if len(x) != NumParams {
		return Params{}, fmt.Errorf("cs: parameter vector must have %d entries, got %d", NumParams, len(x))
	}
	p := Params{Power: x[0]}
	var err error
	if p.Linear1, err = mat3.FromSlice(x[1:10]); err != nil {
		return p, err
	}
	if p.Linear2, err = mat3.FromSlice(x[10:19]); err != nil {
		return p, err
	}
	return p, nil
}

// Vector returns the flat vector of the parameters, the inverse of
// [ParamsFromVector].
func (p Params) Vector() []float64 {
	x := make([]float64, 0, NumParams)
	x = append(x, p.Power)
	x = append(x, p.Linear1.Flat()...)
	return append(x, p.Linear2.Flat()...)
}

// TestLab is a parametric space with coordinates Linear2 (Linear1 xyz)^Power,
// where the power is applied componentwise. It is the candidate space
// of the optimizer: negative values raised to a non-integer power give NaN
// coordinates, which the objective then penalizes.
type TestLab struct {
	params Params

	inv1, inv2 mat3.Mat3
}

// NewTestLab returns the TestLab space with the given parameters.
// It returns an error for singular matrices or a zero power.
func NewTestLab(p Params) (*TestLab, error) {
	if p.Power == 0 || math.IsNaN(p.Power) || math.IsInf(p.Power, 0) {
		return nil, fmt.Errorf("cs: TestLab power must be finite and non-zero, got %g", p.Power)
	}
	inv1, err := p.Linear1.Inverse()
	if err != nil {
		return nil, fmt.Errorf("cs: TestLab Linear1: %w", err)
	}
	inv2, err := p.Linear2.Inverse()
	if err != nil {
		return nil, fmt.Errorf("cs: TestLab Linear2: %w", err)
	}
	return &TestLab{params: p, inv1: inv1, inv2: inv2}, nil
}

// Params returns the parameters of the space.
func (c *TestLab) Params() Params { return c.params }

func (c *TestLab) Name() string { return "TestLab" }
func (c *TestLab) Labels() [3]string { return [3]string{"L", "a", "b"} }
func (c *TestLab) K0() int { return 0 }
func (c *TestLab) IsOriginWellDefined() bool { return c.params.Power > 0 }

func (c *TestLab) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	p := c.params
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 {
		return p.Linear2.MulVec(p.Linear1.MulVec(v).Pow(p.Power))
	}), nil
}

func (c *TestLab) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	ip := 1 / c.params.Power
	return transform(coords, func(v mat3.Vec3) mat3.Vec3 {
		return c.inv1.MulVec(c.inv2.MulVec(v).Pow(ip))
	}), nil
}
