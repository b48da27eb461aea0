// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"
)

func TestEqual(t *testing.T) {
	Equal(t, 1.0, 1.00001)
	Equal(t, float32(2.5), float32(2.50009))
	EqualTol(t, 10.0, 10.4, 0.5)
	EqualRel(t, 1e6, 1e6+0.5, 1e-6)
	EqualSlice(t, []float64{1, 2, 3}, []float64{1, 2.00001, 3}, 0.001)
}

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestNotEqual(t *testing.T) {
	mt := &recorder{}
	if Equal(mt, 1.0, 1.1) {
		t.Error("expected 1.0 and 1.1 to differ with the default tolerance")
	}
	if EqualSlice(mt, []float64{1, 2}, []float64{1}, 0.1) {
		t.Error("expected a length mismatch to fail")
	}
	if !mt.failed {
		t.Error("expected the recorder to see failures")
	}
}
