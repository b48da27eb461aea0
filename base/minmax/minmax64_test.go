// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"cogentcore.org/colorio/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	var mr F64
	mr.Set(-2, 4)
	assert.Equal(t, F64{-2, 4}, mr)
	assert.Equal(t, 6.0, mr.Range())
	empty := F64{-2, -2}
	assert.Equal(t, -2.0, empty.WrapValue(5))
}

func TestWrapValue(t *testing.T) {
	mr := F64{-3, 3}
	tolassert.Equal(t, 1.0, mr.WrapValue(1))
	tolassert.Equal(t, -2.0, mr.WrapValue(4))
	tolassert.Equal(t, 2.0, mr.WrapValue(-4))
	tolassert.Equal(t, -3.0, mr.WrapValue(3))
	tolassert.Equal(t, 0.5, mr.WrapValue(12.5))
	assert.True(t, math.IsNaN(mr.WrapValue(math.Inf(1))))
}

func TestBox(t *testing.T) {
	b := Box(19, -3, 3)
	assert.Len(t, b, 19)
	for _, r := range b {
		assert.Equal(t, F64{-3, 3}, r)
	}
}
