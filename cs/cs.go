// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cs provides color spaces that convert batches of 100-based
// XYZ tristimulus values to and from their own coordinates.
//
// All color spaces are immutable values implementing [ColorSpace].
// Domain violations (such as negative inputs to [XYY]) abort a
// conversion with a [*DomainError]. Numerical singularities (such as the
// black point of [CIELUV]) are not checked: NaN and Inf values simply
// propagate, and [ColorSpace.IsOriginWellDefined] reports whether the
// origin is affected.
package cs

import (
	"fmt"

	"cogentcore.org/colorio/base/errors"
	"cogentcore.org/colorio/mat3"
)

// ColorSpace is a color space with a forward and an inverse transform
// between 100-based XYZ values and its own coordinates.
type ColorSpace interface {

	// Name returns the display name of the color space.
	Name() string

	// Labels returns the names of the three coordinate axes.
	Labels() [3]string

	// K0 returns the index of the lightness-like axis.
	K0() int

	// IsOriginWellDefined returns whether the coordinates of the
	// XYZ origin (black) are numerically defined.
	IsOriginWellDefined() bool

	// FromXYZ100 converts 100-based XYZ values to coordinates of the space.
	// The returned slice is newly allocated.
	FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error)

	// ToXYZ100 converts coordinates of the space to 100-based XYZ values.
	// The returned slice is newly allocated.
	ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error)
}

// ErrDomain is matched by every [DomainError].
var ErrDomain = errors.New("domain error")

// DomainError is returned when an input violates the precondition
// of a transform, such as negative values for [XYY].
type DomainError struct {

	// Space is the name of the color space.
	Space string

	// Index is the index of the offending sample in the batch.
	Index int

	// Msg describes the violation.
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (sample %d)", e.Space, e.Msg, e.Index)
}

// Is reports whether target is [ErrDomain].
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// transform applies f to each value of vs, returning a new slice.
func transform(vs []mat3.Vec3, f func(v mat3.Vec3) mat3.Vec3) []mat3.Vec3 {
	res := make([]mat3.Vec3, len(vs))
	for i, v := range vs {
		res[i] = f(v)
	}
	return res
}

// checkNonNegative returns a [*DomainError] with the given message
// for the first value of vs with a negative component.
func checkNonNegative(space, msg string, vs []mat3.Vec3) error {
	for i, v := range vs {
		if v.HasNegative() {
			return &DomainError{Space: space, Index: i, Msg: msg}
		}
	}
	return nil
}

// Reorder returns the labels of c and a copy of coords with the axes
// rotated so that the lightness-like axis [ColorSpace.K0] comes last,
// which is the conventional order for 3D plots.
func Reorder(c ColorSpace, coords []mat3.Vec3) ([3]string, []mat3.Vec3) {
	shift := 2 - c.K0()
	var labels [3]string
	for i, l := range c.Labels() {
		labels[(i+shift)%3] = l
	}
	res := transform(coords, func(v mat3.Vec3) mat3.Vec3 {
		var r mat3.Vec3
		for i, x := range v {
			r[(i+shift)%3] = x
		}
		return r
	})
	return labels, res
}
