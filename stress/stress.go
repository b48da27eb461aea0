// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stress measures how well the distances in a color space
// predict the perceived distances of a reference dataset.
//
// The central statistic is STRESS (standardized residual sum of squares):
// the perceived distances d are fit to the distances delta in the color
// space by the least squares factor alpha = d.delta / d.d, and the
// residual sqrt(|alpha d - delta|^2 / |delta|^2) is scaled to 0-100.
// As alpha absorbs any scale, the result does not depend on the units
// of the color space. Lower values are better.
//
// Missing distances (NaN) are dropped. When no pair remains, or all
// candidate distances are zero, the result is NaN; this is not an error.
package stress

import (
	"math"

	"cogentcore.org/colorio/cs"
	"cogentcore.org/colorio/dataset"
)

// Distances returns the Euclidean distances in the given space
// between the samples of each pair of the group.
func Distances(c cs.ColorSpace, g *dataset.Group) ([]float64, error) {
	coords, err := c.FromXYZ100(g.XYZ100)
	if err != nil {
		return nil, err
	}
	delta := make([]float64, len(g.Pairs))
	for i, p := range g.Pairs {
		delta[i] = coords[p[0]].Dist(coords[p[1]])
	}
	return delta, nil
}

// Residual returns the scale invariant residual between the reference
// distances d and the candidate distances delta, using only the pairs
// where neither is NaN. It returns NaN if no pair remains or all
// remaining delta are zero.
func Residual(d, delta []float64) float64 {
	var dd, ddelta, deltadelta float64
	n := 0
	for i := range d {
		if math.IsNaN(d[i]) || math.IsNaN(delta[i]) {
			continue
		}
		dd += d[i] * d[i]
		ddelta += d[i] * delta[i]
		deltadelta += delta[i] * delta[i]
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	alpha := ddelta / dd
	var ss float64
	for i := range d {
		if math.IsNaN(d[i]) || math.IsNaN(delta[i]) {
			continue
		}
		r := alpha*d[i] - delta[i]
		ss += r * r
	}
	return math.Sqrt(ss / deltadelta)
}

// DatasetResidual returns the [Residual] over the pairs of all groups of ds.
func DatasetResidual(c cs.ColorSpace, ds *dataset.Dataset) (float64, error) {
	n := ds.NumPairs()
	d := make([]float64, 0, n)
	delta := make([]float64, 0, n)
	for gi := range ds.Groups {
		g := &ds.Groups[gi]
		gd, err := Distances(c, g)
		if err != nil {
			return math.NaN(), err
		}
		d = append(d, g.Distances...)
		delta = append(delta, gd...)
	}
	return Residual(d, delta), nil
}

// STRESS returns 100 times the [DatasetResidual] of c on ds.
func STRESS(c cs.ColorSpace, ds *dataset.Dataset) (float64, error) {
	r, err := DatasetResidual(c, ds)
	return 100 * r, err
}

// GroupSTRESS returns the STRESS of c for each group of ds separately,
// for datasets that report residuals per hue or per direction.
func GroupSTRESS(c cs.ColorSpace, ds *dataset.Dataset) ([]float64, error) {
	res := make([]float64, len(ds.Groups))
	for gi := range ds.Groups {
		g := &ds.Groups[gi]
		delta, err := Distances(c, g)
		if err != nil {
			return nil, err
		}
		res[gi] = 100 * Residual(g.Distances, delta)
	}
	return res, nil
}

// GeneralizedMean returns the generalized mean of order p of the absolute
// values of vals: the geometric mean for p = 0, the maximum for p = +Inf,
// and (sum |v|^p / n)^(1/p) otherwise. NaN values propagate.
func GeneralizedMean(vals []float64, p float64) float64 {
	n := float64(len(vals))
	if len(vals) == 0 {
		return math.NaN()
	}
	switch {
	case p == 0:
		var sl float64
		for _, v := range vals {
			sl += math.Log(math.Abs(v))
		}
		return math.Exp(sl / n)
	case math.IsInf(p, 1):
		mx := math.Inf(-1)
		for _, v := range vals {
			av := math.Abs(v)
			if math.IsNaN(av) {
				return av
			}
			mx = max(mx, av)
		}
		return mx
	}
	var s float64
	for _, v := range vals {
		s += math.Pow(math.Abs(v), p)
	}
	return math.Pow(s/n, 1/p)
}
