// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3

import (
	"math"
	"testing"

	"cogentcore.org/colorio/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Flat())

	_, err = FromSlice([]float64{1, 2})
	assert.Error(t, err)
}

func TestMul(t *testing.T) {
	m := Mat3{{2, 0, 0}, {0, 3, 0}, {1, 0, 1}}
	assert.Equal(t, Vec3{2, 6, 4}, m.MulVec(Vec3{1, 2, 3}))
	assert.Equal(t, m, m.Mul(Identity()))
	assert.Equal(t, m, Identity().Mul(m))
	assert.Equal(t, Mat3{{4, 0, 0}, {0, 9, 0}, {3, 0, 1}}, m.Mul(m))
	assert.Equal(t, Mat3{{2, 0, 0}, {0, 6, 0}, {3, 0, 3}}, m.Scale(Vec3{1, 2, 3}))
}

func TestInverse(t *testing.T) {
	m := Mat3{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	inv, err := m.Inverse()
	require.NoError(t, err)
	id := m.Mul(inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			tolassert.EqualTol(t, want, id[i][j], 1e-12)
		}
	}
	tolassert.EqualTol(t, 1.0, m.Det()*inv.Det(), 1e-12)

	_, err = Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Inverse()
	assert.Error(t, err)
	_, err = Mat3{{math.NaN(), 0, 0}, {0, 1, 0}, {0, 0, 1}}.Inverse()
	assert.Error(t, err)
}

func TestVec3(t *testing.T) {
	a := Vec3{3, 4, 0}
	assert.Equal(t, 5.0, a.Norm())
	assert.Equal(t, 5.0, a.Dist(Vec3{}))
	assert.Equal(t, Vec3{6, 8, 0}, a.Scale(2))
	assert.Equal(t, 7.0, a.Sum())
	c := Vec3{-8, 27, 0}.Cbrt()
	tolassert.EqualTol(t, -2.0, c[0], 1e-15)
	tolassert.EqualTol(t, 3.0, c[1], 1e-15)
	assert.Equal(t, 0.0, c[2])
	p := Vec3{-1, 4, 9}.Pow(0.5)
	assert.True(t, math.IsNaN(p[0]))
	assert.Equal(t, 2.0, p[1])
	assert.True(t, Vec3{0, -1e-9, 2}.HasNegative())
	assert.False(t, Vec3{0, 0, 0}.HasNegative())
	assert.Equal(t, Vec3{3, 8, 0}, a.Mul(Vec3{1, 2, 3}))
	assert.Equal(t, Vec3{3, 2, 0}, a.Div(Vec3{1, 2, 3}))
}
