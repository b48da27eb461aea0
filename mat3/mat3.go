// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat3 provides the 3-vectors and 3x3 matrices that the
// color space transforms are written in, with inversion through gonum.
package mat3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vec3 is a 3-vector, e.g., a tristimulus value or a color coordinate triple.
type Vec3 [3]float64

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// FromSlice returns the matrix with the given 9 values in row-major order.
func FromSlice(vals []float64) (Mat3, error) {
	var m Mat3
	if len(vals) != 9 {
		return m, fmt.Errorf("mat3: expected 9 values, got %d", len(vals))
	}
	for i := 0; i < 3; i++ {
		copy(m[i][:], vals[3*i:3*i+3])
	}
	return m, nil
}

// Flat returns the 9 values in row-major order.
func (m Mat3) Flat() []float64 {
	f := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		f = append(f, m[i][:]...)
	}
	return f
}

// MulVec returns m v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var c Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return c
}

// Scale returns m with row i scaled by s[i], i.e., diag(s) m.
func (m Mat3) Scale(s Vec3) Mat3 {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] *= s[i]
		}
	}
	return m
}

func (m Mat3) dense() *mat.Dense {
	return mat.NewDense(3, 3, m.Flat())
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return mat.Det(m.dense())
}

// Inverse returns the inverse of m. It returns an error if m is singular
// or too ill-conditioned to invert, and also if it contains NaN or Inf.
func (m Mat3) Inverse() (Mat3, error) {
	var inv Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return inv, fmt.Errorf("mat3: cannot invert matrix with non-finite entry %v", m[i][j])
			}
		}
	}
	var d mat.Dense
	if err := d.Inverse(m.dense()); err != nil {
		return inv, fmt.Errorf("mat3: %w", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = d.At(i, j)
		}
	}
	return inv, nil
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Dot returns the inner product of a and b.
func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Norm returns the Euclidean length of a.
func (a Vec3) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}

// Dist returns the Euclidean distance between a and b.
func (a Vec3) Dist(b Vec3) float64 {
	return a.Sub(b).Norm()
}

// Scale returns s a.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{s * a[0], s * a[1], s * a[2]}
}

// Mul returns the elementwise product of a and b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Div returns the elementwise quotient a / b.
func (a Vec3) Div(b Vec3) Vec3 {
	return Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// Pow raises each element to the power p; negative elements
// with a non-integer p give NaN, as with [math.Pow].
func (a Vec3) Pow(p float64) Vec3 {
	return Vec3{math.Pow(a[0], p), math.Pow(a[1], p), math.Pow(a[2], p)}
}

// Cbrt returns the elementwise, sign-preserving cube root.
func (a Vec3) Cbrt() Vec3 {
	return Vec3{math.Cbrt(a[0]), math.Cbrt(a[1]), math.Cbrt(a[2])}
}

// Sum returns a[0] + a[1] + a[2].
func (a Vec3) Sum() float64 {
	return a[0] + a[1] + a[2]
}

// HasNegative reports whether any element is negative.
func (a Vec3) HasNegative() bool {
	return a[0] < 0 || a[1] < 0 || a[2] < 0
}
