// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"math"

	"cogentcore.org/colorio/base/errors"
	"cogentcore.org/colorio/mat3"
)

// signedPow returns sign(x) |x|^p for each component.
func signedPow(v mat3.Vec3, p float64) mat3.Vec3 {
	var r mat3.Vec3
	for i, x := range v {
		r[i] = math.Copysign(math.Pow(math.Abs(x), p), x)
	}
	return r
}

// opponent is a space of the form M2 f(M1 xyz s) t, where f is a
// componentwise nonlinearity: the structure shared by IPT and OKLAB.
type opponent struct {
	m1, m1Inv mat3.Mat3
	m2, m2Inv mat3.Mat3

	// input and output scale factors
	in, out float64

	f, fInv func(x mat3.Vec3) mat3.Vec3
}

func newOpponent(m1, m2 mat3.Mat3, in, out float64, f, fInv func(x mat3.Vec3) mat3.Vec3) opponent {
	return opponent{
		m1: m1, m1Inv: errors.Must1(m1.Inverse()),
		m2: m2, m2Inv: errors.Must1(m2.Inverse()),
		in: in, out: out,
		f: f, fInv: fInv,
	}
}

func (o *opponent) from(v mat3.Vec3) mat3.Vec3 {
	return o.m2.MulVec(o.f(o.m1.MulVec(v.Scale(o.in)))).Scale(o.out)
}

func (o *opponent) to(v mat3.Vec3) mat3.Vec3 {
	return o.m1Inv.MulVec(o.fInv(o.m2Inv.MulVec(v.Scale(1 / o.out)))).Scale(1 / o.in)
}

// IPT is the IPT space of Ebner and Fairchild (1998), with the
// coordinates scaled to 0-100.
type IPT struct {
	opponent
}

// NewIPT returns the IPT space with the given cone response exponent
// (0.43 in the original publication).
func NewIPT(exponent float64) *IPT {
	m1 := mat3.Mat3{
		{0.4002, 0.7075, -0.0807},
		{-0.2280, 1.1500, 0.0612},
		{0.0, 0.0, 0.9184},
	}
	m2 := mat3.Mat3{
		{0.4000, 0.4000, 0.2000},
		{4.4550, -4.8510, 0.3960},
		{0.8056, 0.3572, -1.1628},
	}
	f := func(v mat3.Vec3) mat3.Vec3 { return signedPow(v, exponent) }
	fInv := func(v mat3.Vec3) mat3.Vec3 { return signedPow(v, 1/exponent) }
	return &IPT{opponent: newOpponent(m1, m2, 0.01, 100, f, fInv)}
}

func (c *IPT) Name() string { return "IPT" }
func (c *IPT) Labels() [3]string { return [3]string{"I", "P", "T"} }
func (c *IPT) K0() int { return 0 }
func (c *IPT) IsOriginWellDefined() bool { return true }

func (c *IPT) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(xyz, c.from), nil
}

func (c *IPT) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(coords, c.to), nil
}

// OKLAB is the Oklab space of Björn Ottosson (2020), with
// lightness in the 0-1 range.
type OKLAB struct {
	opponent
}

// NewOKLAB returns the OKLAB space.
func NewOKLAB() *OKLAB {
	m1 := mat3.Mat3{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
	m2 := mat3.Mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	cube := func(v mat3.Vec3) mat3.Vec3 { return v.Mul(v).Mul(v) }
	return &OKLAB{opponent: newOpponent(m1, m2, 0.01, 1, mat3.Vec3.Cbrt, cube)}
}

func (c *OKLAB) Name() string { return "OKLAB" }
func (c *OKLAB) Labels() [3]string { return [3]string{"L", "a", "b"} }
func (c *OKLAB) K0() int { return 0 }
func (c *OKLAB) IsOriginWellDefined() bool { return true }

func (c *OKLAB) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(xyz, c.from), nil
}

func (c *OKLAB) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(coords, c.to), nil
}
