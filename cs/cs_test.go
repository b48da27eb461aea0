// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"math"
	"testing"

	"cogentcore.org/colorio/base/errors"
	"cogentcore.org/colorio/base/randx"
	"cogentcore.org/colorio/base/tolassert"
	"cogentcore.org/colorio/cie"
	"cogentcore.org/colorio/mat3"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testXYZ = []mat3.Vec3{
	{20.654, 12.197, 5.136},
	{41.24, 21.26, 1.93},
	{35.76, 71.52, 11.92},
	{18.05, 7.22, 95.05},
	{50, 50, 50},
	{95.047, 100, 108.883},
	{5, 6, 7},
	{60.1, 30.4, 70.8},
}

func expectVecs(t *testing.T, expected, actual []mat3.Vec3, rel float64, msgAndArgs ...any) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		for k := 0; k < 3; k++ {
			tolassert.EqualRel(t, expected[i][k], actual[i][k], rel, msgAndArgs...)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range Names() {
		c, err := New(name)
		require.NoError(t, err, name)
		coords, err := c.FromXYZ100(testXYZ)
		require.NoError(t, err, name)
		back, err := c.ToXYZ100(coords)
		require.NoError(t, err, name)
		expectVecs(t, testXYZ, back, 1e-9, name)
	}
}

func TestTestLabRoundTrip(t *testing.T) {
	p := Params{
		Power:   0.4,
		Linear1: mat3.Mat3{{0.4, 0.7, -0.08}, {-0.23, 1.15, 0.06}, {0, 0, 0.92}},
		Linear2: mat3.Mat3{{0.4, 0.4, 0.2}, {4.4, -4.8, 0.4}, {0.8, 0.36, -1.16}},
	}
	c, err := NewTestLab(p)
	require.NoError(t, err)
	coords, err := c.FromXYZ100(testXYZ)
	require.NoError(t, err)
	back, err := c.ToXYZ100(coords)
	require.NoError(t, err)
	expectVecs(t, testXYZ, back, 1e-9)
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		name   string
		labels [3]string
		k0     int
		origin bool
	}{
		{"XYZ", [3]string{"X", "Y", "Z"}, 1, true},
		{"xyY", [3]string{"x", "y", "Y"}, 2, false},
		{"CIELUV", [3]string{"L*", "u*", "v*"}, 0, false},
		{"CIELAB", [3]string{"L*", "a*", "b*"}, 0, true},
		{"CAM16-UCS", [3]string{"J'", "a'", "b'"}, 0, false},
		{"OSA-UCS", [3]string{"L", "g", "j"}, 0, false},
		{"IPT", [3]string{"I", "P", "T"}, 0, true},
		{"OKLAB", [3]string{"L", "a", "b"}, 0, true},
	}
	for _, test := range tests {
		c, err := New(test.name)
		require.NoError(t, err)
		assert.Equal(t, test.name, c.Name())
		assert.Equal(t, test.labels, c.Labels(), test.name)
		assert.Equal(t, test.k0, c.K0(), test.name)
		assert.Equal(t, test.origin, c.IsOriginWellDefined(), test.name)
	}
}

func TestXYY(t *testing.T) {
	c, err := NewXYY(100)
	require.NoError(t, err)
	// sRGB red primary
	res, err := c.FromXYZ100([]mat3.Vec3{{41.24, 21.26, 1.93}})
	require.NoError(t, err)
	tolassert.EqualTol(t, 41.24/64.43, res[0][0], 1e-12)
	tolassert.EqualTol(t, 21.26/64.43, res[0][1], 1e-12)
	tolassert.EqualTol(t, 0.64007, res[0][0], 1e-5)
	tolassert.EqualTol(t, 0.32997, res[0][1], 1e-5)
	tolassert.EqualTol(t, 21.26, res[0][2], 1e-3)

	c1, err := NewXYY(1)
	require.NoError(t, err)
	assert.Equal(t, "xyY1", c1.Name())
	res1, err := c1.FromXYZ100([]mat3.Vec3{{41.24, 21.26, 1.93}})
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.2126, res1[0][2], 1e-12)

	_, err = NewXYY(10)
	assert.Error(t, err)
}

func TestXYYDomain(t *testing.T) {
	c, err := NewXYY(100)
	require.NoError(t, err)

	_, err = c.FromXYZ100([]mat3.Vec3{{1, 2, 3}, {1, -0.5, 3}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDomain))
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Index)
	assert.Equal(t, "Negative XYZ100 value", de.Msg)
	assert.Equal(t, "xyY", de.Space)

	_, err = c.ToXYZ100([]mat3.Vec3{{-0.1, 0.3, 20}})
	require.Error(t, err)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "Negative xyY value", de.Msg)
	assert.Equal(t, 0, de.Index)
}

func TestCIELUVWhite(t *testing.T) {
	c := NewCIELUV(cie.WhiteD65)
	res, err := c.FromXYZ100([]mat3.Vec3{cie.WhiteD65})
	require.NoError(t, err)
	tolassert.EqualTol(t, 100.0, res[0][0], 1e-6)
	tolassert.EqualTol(t, 0.0, res[0][1], 1e-6)
	tolassert.EqualTol(t, 0.0, res[0][2], 1e-6)
}

func TestCIELUVOrigin(t *testing.T) {
	c := NewCIELUV(cie.WhiteD65)
	res, err := c.FromXYZ100([]mat3.Vec3{{0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res[0][0])
	assert.True(t, math.IsNaN(res[0][1]))

	// the inverse divides by L
	back, err := c.ToXYZ100([]mat3.Vec3{{0, 0, 0}})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(back[0][0]))
}

func TestColorfulOracle(t *testing.T) {
	wref := [3]float64{0.95047, 1.0, 1.08883}
	luv := NewCIELUV(cie.WhiteD65)
	lab := NewCIELAB(cie.WhiteD65)
	xyy, err := NewXYY(1)
	require.NoError(t, err)

	luvs, err := luv.FromXYZ100(testXYZ)
	require.NoError(t, err)
	labs, err := lab.FromXYZ100(testXYZ)
	require.NoError(t, err)
	xyys, err := xyy.FromXYZ100(testXYZ)
	require.NoError(t, err)

	for i, v := range testXYZ {
		x, y, z := v[0]/100, v[1]/100, v[2]/100

		l, u, vv := colorful.XyzToLuvWhiteRef(x, y, z, wref)
		tolassert.EqualTol(t, 100*l, luvs[i][0], 1e-9)
		tolassert.EqualTol(t, 100*u, luvs[i][1], 1e-9)
		tolassert.EqualTol(t, 100*vv, luvs[i][2], 1e-9)

		l, a, b := colorful.XyzToLabWhiteRef(x, y, z, wref)
		tolassert.EqualTol(t, 100*l, labs[i][0], 1e-9)
		tolassert.EqualTol(t, 100*a, labs[i][1], 1e-9)
		tolassert.EqualTol(t, 100*b, labs[i][2], 1e-9)

		cx, cy, cY := colorful.XyzToXyy(x, y, z)
		tolassert.EqualTol(t, cx, xyys[i][0], 1e-12)
		tolassert.EqualTol(t, cy, xyys[i][1], 1e-12)
		tolassert.EqualTol(t, cY, xyys[i][2], 1e-12)
	}
}

func TestWhites(t *testing.T) {
	white := []mat3.Vec3{cie.WhiteD65}

	ipt := NewIPT(0.43)
	res, err := ipt.FromXYZ100(white)
	require.NoError(t, err)
	tolassert.EqualTol(t, 100.0, res[0][0], 0.05)
	tolassert.EqualTol(t, 0.0, res[0][1], 0.05)
	tolassert.EqualTol(t, 0.0, res[0][2], 0.05)

	ok := NewOKLAB()
	res, err = ok.FromXYZ100(white)
	require.NoError(t, err)
	tolassert.EqualTol(t, 1.0, res[0][0], 1e-3)
	tolassert.EqualTol(t, 0.0, res[0][1], 1e-3)
	tolassert.EqualTol(t, 0.0, res[0][2], 1e-3)

	c16, err := New("CAM16-UCS")
	require.NoError(t, err)
	res, err = c16.FromXYZ100(white)
	require.NoError(t, err)
	tolassert.EqualTol(t, 100.0, res[0][0], 1e-9)

	// black stays at zero lightness
	jz := NewJzAzBz(1)
	res, err = jz.FromXYZ100([]mat3.Vec3{{0, 0, 0}})
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.0, res[0][0], 1e-12)
}

func TestCAMLightnessScale(t *testing.T) {
	// J' is divided by K_L, so the LCD and SCD lightness of white differ
	white := []mat3.Vec3{cie.WhiteD65}
	for _, name := range []string{"CAM02-LCD", "CAM02-SCD"} {
		c, err := New(name)
		require.NoError(t, err)
		res, err := c.FromXYZ100(white)
		require.NoError(t, err)
		kl := c.(*CAMUCS).Variant.Coefficients().KL
		tolassert.EqualTol(t, 100/kl, res[0][0], 1e-9, name)
	}
}

func TestOsaUcsLightness(t *testing.T) {
	c := NewOsaUcs()
	// around Y0 = 30 the lightness equation has a vertical tangent
	in := []mat3.Vec3{{28, 30, 31}, {27.5, 29.2, 33}}
	coords, err := c.FromXYZ100(in)
	require.NoError(t, err)
	back, err := c.ToXYZ100(coords)
	require.NoError(t, err)
	expectVecs(t, in, back, 1e-9)
}

func TestOsaUcsDomain(t *testing.T) {
	c := NewOsaUcs()

	var in []mat3.Vec3
	for _, r := range []float64{0.1, 0.4, 0.7, 1} {
		for _, g := range []float64{0.1, 0.4, 0.7, 1} {
			for _, b := range []float64{0.1, 0.4, 0.7, 1} {
				in = append(in, cie.SRGBToXYZ100(r, g, b))
			}
		}
	}
	coords, err := c.FromXYZ100(in)
	require.NoError(t, err)
	back, err := c.ToXYZ100(coords)
	require.NoError(t, err)
	expectVecs(t, in, back, 1e-9)

	// chromaticity x = 0.1, y = 0.89 is outside the spectral locus,
	// and its coordinates have no unique nonnegative preimage
	coords, err = c.FromXYZ100([]mat3.Vec3{{5.618, 50, 0.5618}})
	require.NoError(t, err)
	back, err = c.ToXYZ100(coords)
	require.NoError(t, err)
	for k := 0; k < 3; k++ {
		assert.True(t, math.IsNaN(back[0][k]))
	}

	// any other result is a round trip
	rnd := randx.NewSysRand(5)
	in = make([]mat3.Vec3, 500)
	for i := range in {
		for k := 0; k < 3; k++ {
			in[i][k] = randx.UniformGen(0.01, 100, rnd)
		}
	}
	coords, err = c.FromXYZ100(in)
	require.NoError(t, err)
	back, err = c.ToXYZ100(coords)
	require.NoError(t, err)
	for i := range in {
		if math.IsNaN(back[i][0]) {
			continue
		}
		for k := 0; k < 3; k++ {
			tolassert.EqualRel(t, in[i][k], back[i][k], 1e-9, i)
		}
	}
}

func TestTestLabIdentity(t *testing.T) {
	c, err := NewTestLab(IdentityParams())
	require.NoError(t, err)
	res, err := c.FromXYZ100(testXYZ)
	require.NoError(t, err)
	expectVecs(t, testXYZ, res, 1e-15)
}

func TestTestLabErrors(t *testing.T) {
	p := IdentityParams()
	p.Linear1 = mat3.Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	_, err := NewTestLab(p)
	assert.Error(t, err)

	p = IdentityParams()
	p.Power = 0
	_, err = NewTestLab(p)
	assert.Error(t, err)

	// negative bases with a fractional power give NaN, not an error
	p = IdentityParams()
	p.Power = 0.5
	p.Linear1 = mat3.Mat3{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	c, err := NewTestLab(p)
	require.NoError(t, err)
	res, err := c.FromXYZ100([]mat3.Vec3{{1, 1, 1}})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res[0][0]))
}

func TestParams(t *testing.T) {
	x := make([]float64, NumParams)
	for i := range x {
		x[i] = float64(i) * 0.1
	}
	p, err := ParamsFromVector(x)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Power)
	assert.Equal(t, 0.1, p.Linear1[0][0])
	assert.Equal(t, x[12], p.Linear2[0][2])
	assert.Equal(t, x, p.Vector())

	_, err = ParamsFromVector(x[:18])
	assert.Error(t, err)
	_, err = ParamsFromVector(append(x, 1))
	assert.Error(t, err)
}

func TestReorder(t *testing.T) {
	lab := NewCIELAB(cie.WhiteD65)
	labels, res := Reorder(lab, []mat3.Vec3{{50, 10, -20}})
	assert.Equal(t, [3]string{"a*", "b*", "L*"}, labels)
	assert.Equal(t, mat3.Vec3{10, -20, 50}, res[0])

	xyz, err := NewXYZ(100)
	require.NoError(t, err)
	labels, res = Reorder(xyz, []mat3.Vec3{{1, 2, 3}})
	assert.Equal(t, [3]string{"Z", "X", "Y"}, labels)
	assert.Equal(t, mat3.Vec3{3, 1, 2}, res[0])
}

func TestNew(t *testing.T) {
	c, err := New("cam02-scd")
	require.NoError(t, err)
	assert.Equal(t, "CAM02-SCD", c.Name())

	_, err = New("HSV")
	assert.Error(t, err)
	assert.Contains(t, Names(), "JzAzBz")
}

func TestNewWithWhitepoint(t *testing.T) {
	d50, err := cie.Whitepoint("d50")
	require.NoError(t, err)
	for _, name := range []string{"CIELAB", "CIELUV"} {
		c, err := NewWithWhitepoint(name, d50)
		require.NoError(t, err)
		res, err := c.FromXYZ100([]mat3.Vec3{d50})
		require.NoError(t, err)
		expectVecs(t, []mat3.Vec3{{100, 0, 0}}, res, 1e-12, name)
	}

	c, err := NewWithWhitepoint("cam16-ucs", d50)
	require.NoError(t, err)
	assert.Equal(t, d50, c.(*CAMUCS).View.Config.Whitepoint)
	res, err := c.FromXYZ100([]mat3.Vec3{d50})
	require.NoError(t, err)
	tolassert.EqualTol(t, 100.0, res[0][0], 1e-9)

	c, err = NewWithWhitepoint("RLAB", d50)
	require.NoError(t, err)
	assert.Equal(t, d50, c.(*RLAB).Config.Whitepoint)

	// D65 relative colors of a D50 white are not neutral
	lab, err := New("CIELAB")
	require.NoError(t, err)
	res, err = lab.FromXYZ100([]mat3.Vec3{d50})
	require.NoError(t, err)
	assert.Greater(t, math.Abs(res[0][2]), 1.0)

	_, err = NewWithWhitepoint("HSV", d50)
	assert.Error(t, err)
}
