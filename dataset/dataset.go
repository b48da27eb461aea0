// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides reference datasets of perceived color
// differences: samples, the pairs of samples that were compared,
// and the perceived distance of each pair.
//
// A [Dataset] is immutable once constructed, and is shared by reference
// between all evaluations; there is no package level cache.
package dataset

import (
	"fmt"
	"math"

	"cogentcore.org/colorio/mat3"
)

// Group is a set of samples with compared pairs, such as the tiles
// of one color center in an experiment.
type Group struct {

	// Name of the group, e.g., "grey".
	Name string

	// XYZ100 are the 100-based XYZ values of the samples.
	XYZ100 []mat3.Vec3

	// Pairs are the indexes into XYZ100 of the compared samples.
	Pairs [][2]int

	// Distances are the perceived distances of the Pairs.
	// Missing values are NaN.
	Distances []float64
}

// Dataset is a named collection of groups.
type Dataset struct {
	Name string

	// Reference is the publication the data is taken from.
	Reference string

	Groups []Group
}

// New returns a new dataset with the given groups after validating
// that every pair refers to existing samples and has a distance.
func New(name string, groups ...Group) (*Dataset, error) {
	ds := &Dataset{Name: name, Groups: groups}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Validate returns an error if the dataset is inconsistent.
func (ds *Dataset) Validate() error {
	if len(ds.Groups) == 0 {
		return fmt.Errorf("dataset %q: no groups", ds.Name)
	}
	for gi := range ds.Groups {
		g := &ds.Groups[gi]
		if len(g.Pairs) != len(g.Distances) {
			return fmt.Errorf("dataset %q group %q: %d pairs but %d distances", ds.Name, g.Name, len(g.Pairs), len(g.Distances))
		}
		n := len(g.XYZ100)
		for i, p := range g.Pairs {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
				return fmt.Errorf("dataset %q group %q: pair %d %v out of range for %d samples", ds.Name, g.Name, i, p, n)
			}
		}
	}
	return nil
}

// NumPairs returns the total number of pairs over all groups.
func (ds *Dataset) NumPairs() int {
	n := 0
	for _, g := range ds.Groups {
		n += len(g.Pairs)
	}
	return n
}

// NumValid returns the number of pairs with a known distance.
func (ds *Dataset) NumValid() int {
	n := 0
	for _, g := range ds.Groups {
		for _, d := range g.Distances {
			if !math.IsNaN(d) {
				n++
			}
		}
	}
	return n
}
