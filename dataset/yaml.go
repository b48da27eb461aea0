// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"cogentcore.org/colorio/cs"
	"cogentcore.org/colorio/mat3"
	"gopkg.in/yaml.v3"
)

// yamlGroup is the file format of a [Group]. The samples are given
// either as xyz100 or as xyy100 values. Missing distances are
// written as .nan or null.
type yamlGroup struct {
	Name      string      `yaml:"name"`
	XYZ100    []mat3.Vec3 `yaml:"xyz100,omitempty"`
	XYY100    []mat3.Vec3 `yaml:"xyy100,omitempty"`
	Pairs     [][2]int    `yaml:"pairs"`
	Distances []*float64  `yaml:"distances"`
}

type yamlDataset struct {
	Name      string      `yaml:"name"`
	Reference string      `yaml:"reference,omitempty"`
	Groups    []yamlGroup `yaml:"groups"`
}

// Read reads a dataset in YAML format from r.
func Read(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var yd yamlDataset
	if err := dec.Decode(&yd); err != nil {
		return nil, fmt.Errorf("dataset: parsing YAML: %w", err)
	}
	ds := &Dataset{Name: yd.Name, Reference: yd.Reference}
	for _, yg := range yd.Groups {
		g, err := yg.group()
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", yd.Name, err)
		}
		ds.Groups = append(ds.Groups, g)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (yg *yamlGroup) group() (Group, error) {
	g := Group{Name: yg.Name, Pairs: yg.Pairs}
	switch {
	case len(yg.XYZ100) > 0 && len(yg.XYY100) > 0:
		return g, fmt.Errorf("group %q: both xyz100 and xyy100 given", yg.Name)
	case len(yg.XYY100) > 0:
		xyy, err := cs.NewXYY(100)
		if err != nil {
			return g, err
		}
		g.XYZ100, err = xyy.ToXYZ100(yg.XYY100)
		if err != nil {
			return g, fmt.Errorf("group %q: %w", yg.Name, err)
		}
	default:
		g.XYZ100 = yg.XYZ100
	}
	g.Distances = make([]float64, len(yg.Distances))
	for i, d := range yg.Distances {
		if d == nil {
			g.Distances[i] = math.NaN()
		} else {
			g.Distances[i] = *d
		}
	}
	return g, nil
}

// Open reads the dataset in YAML format from the given file in fsys.
func Open(fsys fs.FS, path string) (*Dataset, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// OpenFile reads the dataset in YAML format from the given file.
func OpenFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
