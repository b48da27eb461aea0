// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"math"

	"cogentcore.org/colorio/base/errors"
	"cogentcore.org/colorio/mat3"
)

// OsaUcs is the Optical Society of America uniform color scale
// (MacAdam 1974), with the lightness and chroma formulas of
// Cao et al. (2013).
type OsaUcs struct {
	mInv mat3.Mat3
}

var osaM = mat3.Mat3{
	{0.799, 0.4194, -0.1648},
	{-0.4493, 1.3265, 0.0927},
	{-0.1149, 0.3394, 0.717},
}

// NewOsaUcs returns the OSA-UCS space.
func NewOsaUcs() *OsaUcs {
	return &OsaUcs{mInv: errors.Must1(osaM.Inverse())}
}

func (c *OsaUcs) Name() string { return "OSA-UCS" }
func (c *OsaUcs) Labels() [3]string { return [3]string{"L", "g", "j"} }
func (c *OsaUcs) K0() int { return 0 }
func (c *OsaUcs) IsOriginWellDefined() bool { return false }

// osaK is the chromaticity dependent luminance factor K(x, y),
// with its partial derivatives.
func osaK(x, y float64) (k, dx, dy float64) {
	k = 4.4934*x*x + 4.3034*y*y - 4.276*x*y - 1.3744*x - 2.5643*y + 1.8103
	dx = 2*4.4934*x - 4.276*y - 1.3744
	dy = 2*4.3034*y - 4.276*x - 2.5643
	return
}

// osaLightness returns L' as a function of t = cbrt(Y0),
// with its derivative.
func osaLightness(t float64) (lp, dlp float64) {
	u := math.Cbrt(t*t*t - 30)
	return 5.9 * (t - 2.0/3 + 0.042*u), 5.9 * (1 + 0.042*t*t/(u*u))
}

func (c *OsaUcs) FromXYZ100(xyz []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(xyz, func(v mat3.Vec3) mat3.Vec3 {
		sum := v.Sum()
		k, _, _ := osaK(v[0]/sum, v[1]/sum)
		t := math.Cbrt(v[1] * k)
		lp, _ := osaLightness(t)
		l := (lp - 14.3993) / math.Sqrt2
		cc := lp / (5.9 * (t - 2.0/3))
		a := osaM.MulVec(v).Cbrt()
		g := cc * (-13.7*a[0] + 17.7*a[1] - 4*a[2])
		j := cc * (1.7*a[0] + 8*a[1] - 9.7*a[2])
		return mat3.Vec3{l, g, j}
	}), nil
}

// ToXYZ100 inverts the transform numerically. The lightness equation is
// solved for cbrt(Y0) first. Then, as g and j only fix the cube roots of
// the cone responses up to a common offset s, s is solved for such that
// the luminance matches Y0. That equation can have up to three solutions,
// of which only one has nonnegative XYZ for the coordinates of physical
// colors. Coordinates without exactly one such solution, as can happen
// for colors outside the spectral locus, give NaN.
func (c *OsaUcs) ToXYZ100(coords []mat3.Vec3) ([]mat3.Vec3, error) {
	return transform(coords, c.toXYZ100), nil
}

func (c *OsaUcs) toXYZ100(v mat3.Vec3) mat3.Vec3 {
	nan := math.NaN()
	lp := v[0]*math.Sqrt2 + 14.3993
	t := solveIncreasing(func(t float64) (float64, float64) {
		f, df := osaLightness(t)
		return f - lp, df
	}, lp/5.9+2.0/3)
	y0 := t * t * t
	cc := lp / (5.9 * (t - 2.0/3))

	// particular solution with a[2] = 0
	gc, jc := v[1]/cc, v[2]/cc
	det := -13.7*8 - 17.7*1.7
	ap := mat3.Vec3{(8*gc - 17.7*jc) / det, (-13.7*jc - 1.7*gc) / det, 0}

	xyzAt := func(s float64) (xyz, dxyz mat3.Vec3) {
		var rgb, drgb mat3.Vec3
		for i := 0; i < 3; i++ {
			w := ap[i] + s
			rgb[i] = w * w * w
			drgb[i] = 3 * w * w
		}
		return c.mInv.MulVec(rgb), c.mInv.MulVec(drgb)
	}
	f := func(s float64) (float64, float64) {
		xyz, dxyz := xyzAt(s)
		sum, dsum := xyz.Sum(), dxyz.Sum()
		x, y := xyz[0]/sum, xyz[1]/sum
		dx := (dxyz[0]*sum - xyz[0]*dsum) / (sum * sum)
		dy := (dxyz[1]*sum - xyz[1]*dsum) / (sum * sum)
		k, kx, ky := osaK(x, y)
		return xyz[1]*k - y0, dxyz[1]*k + xyz[1]*(kx*dx+ky*dy)
	}

	// f(s) times the squared XYZ sum is a polynomial of degree 9 in s,
	// which brackets all solutions within its root bound.
	var xyzPoly [3]poly
	for i := 0; i < 3; i++ {
		a := ap[i]
		cube := poly{a * a * a, 3 * a * a, 3 * a, 1}
		for r := 0; r < 3; r++ {
			xyzPoly[r] = xyzPoly[r].add(c.mInv[r][i], cube)
		}
	}
	px, py := xyzPoly[0], xyzPoly[1]
	sum := px.add(1, py).add(1, xyzPoly[2])
	k := poly(nil).add(4.4934, px.mul(px)).add(4.3034, py.mul(py)).add(-4.276, px.mul(py)).
		add(-1.3744, px.mul(sum)).add(-2.5643, py.mul(sum)).add(1.8103, sum.mul(sum))
	p := py.mul(k).add(-y0, sum.mul(sum))

	const steps = 512
	r := p.rootBound()
	res := mat3.Vec3{nan, nan, nan}
	n := 0
	lo, plo := -r, p.eval(-r)
	for i := 1; i <= steps; i++ {
		hi := -r + 2*r*float64(i)/steps
		phi := p.eval(hi)
		if (plo > 0) != (phi > 0) {
			xyz, _ := xyzAt(refineRoot(f, lo, hi))
			// nonnegative up to rounding, for inputs on the boundary
			if total := xyz.Sum(); min(xyz[0], xyz[1], xyz[2]) >= -1e-12*math.Abs(total) {
				n++
				res = xyz
			}
		}
		lo, plo = hi, phi
	}
	if n != 1 {
		return mat3.Vec3{nan, nan, nan}
	}
	return res
}

// solveIncreasing returns the root of the increasing function f near x0,
// where f returns the function value and its derivative. It brackets the
// root first, and then refines it with [refineRoot].
// NaN is returned when no root is found.
func solveIncreasing(f func(x float64) (float64, float64), x0 float64) float64 {
	y, _ := f(x0)
	switch {
	case math.IsNaN(y):
		return math.NaN()
	case y == 0:
		return x0
	}
	lo, hi := x0, x0
	step := 0.5 * math.Max(1, math.Abs(x0))
	found := false
	for iter := 0; iter < 200; iter++ {
		if y < 0 {
			lo = hi
			hi += step
			y, _ = f(hi)
			found = y >= 0
		} else {
			hi = lo
			lo -= step
			y, _ = f(lo)
			found = y <= 0
		}
		if found {
			break
		}
		if math.IsNaN(y) {
			return math.NaN()
		}
		step *= 2
	}
	if !found {
		return math.NaN()
	}
	return refineRoot(f, lo, hi)
}

// refineRoot returns a root of f between a and b, where f(a) and f(b)
// differ in sign, using Newton steps that fall back to bisection when
// they leave the bracket.
func refineRoot(f func(x float64) (float64, float64), a, b float64) float64 {
	// f(lo) <= 0 <= f(hi), with lo > hi for a decreasing f
	lo, hi := a, b
	if y, _ := f(a); y > 0 {
		lo, hi = b, a
	}
	x := 0.5 * (lo + hi)
	for iter := 0; iter < 200; iter++ {
		y, dy := f(x)
		if y == 0 {
			return x
		}
		if y < 0 {
			lo = x
		} else {
			hi = x
		}
		nx := x - y/dy
		if math.IsInf(dy, 0) || !(nx > min(lo, hi) && nx < max(lo, hi)) {
			nx = 0.5 * (lo + hi)
		}
		if math.Abs(nx-x) <= 1e-15*math.Max(1, math.Abs(x)) {
			return nx
		}
		x = nx
	}
	return x
}

// poly is a polynomial, with the coefficients in increasing order.
type poly []float64

// add returns p + c q.
func (p poly) add(c float64, q poly) poly {
	r := make(poly, max(len(p), len(q)))
	copy(r, p)
	for i, v := range q {
		r[i] += c * v
	}
	return r
}

// mul returns p q.
func (p poly) mul(q poly) poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make(poly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			r[i+j] += a * b
		}
	}
	return r
}

func (p poly) eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// rootBound returns the Fujiwara bound on the magnitude of the roots.
func (p poly) rootBound() float64 {
	n := len(p) - 1
	var b float64
	for i := 1; i <= n; i++ {
		b = max(b, math.Pow(math.Abs(p[n-i]/p[n]), 1/float64(i)))
	}
	return 2 * b
}
