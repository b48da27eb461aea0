// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/colorio/base/iox/tomlx"
	"cogentcore.org/colorio/dataset"
)

// TermConfig is the configuration of one [Term].
type TermConfig struct {

	// Name of the term; defaults to the dataset name.
	Name string

	// File is the dataset YAML file, relative to the config file.
	File string

	// Weight is the relative weight of the term.
	Weight float64

	// PerGroup scores by the generalized mean of the per-group STRESS.
	PerGroup bool

	// Order of the generalized mean for PerGroup terms:
	// 0 is the geometric mean and inf the maximum.
	Order float64
}

// Config is the configuration of [Run], typically read from a TOML file.
type Config struct {

	// MaxIter bounds the iterations of both the global and the local phase.
	// With 0, the global phase evaluates a single random point and
	// the local phase is skipped.
	MaxIter int

	// LocalMaxIter overrides MaxIter for the local phase if positive.
	LocalMaxIter int

	// Lower and Upper bound every parameter in the global phase.
	Lower float64
	Upper float64

	// Seed of the random number generator.
	Seed int64

	// Penalty is the objective value of invalid candidates.
	Penalty float64

	// CombineOrder is the order of the generalized mean of the weighted terms.
	CombineOrder float64

	// Anneal holds the parameters of the global phase;
	// its MaxIter is replaced by the MaxIter above.
	Anneal AnnealConfig

	// Terms are the datasets of the objective.
	Terms []TermConfig
}

// Defaults sets the default configuration, without terms.
func (c *Config) Defaults() {
	c.MaxIter = 1000
	c.LocalMaxIter = 0
	c.Lower = -3
	c.Upper = 3
	c.Seed = 1
	c.Penalty = DefaultPenalty
	c.CombineOrder = 1
	c.Anneal.Defaults()
}

// Validate returns an error for inconsistent settings.
func (c *Config) Validate() error {
	if !(c.Lower < c.Upper) {
		return fmt.Errorf("fit: Lower %g must be less than Upper %g", c.Lower, c.Upper)
	}
	if c.MaxIter < 0 {
		return fmt.Errorf("fit: MaxIter must not be negative, got %d", c.MaxIter)
	}
	if a := c.Anneal.Visit; !(a > 1 && a < 3) {
		return fmt.Errorf("fit: Anneal.Visit must be in (1, 3), got %g", a)
	}
	if c.Anneal.InitialTemp <= 0 {
		return fmt.Errorf("fit: Anneal.InitialTemp must be positive, got %g", c.Anneal.InitialTemp)
	}
	return nil
}

// OpenConfig returns the [Config.Defaults] overridden by the given TOML
// files in order, so that later files override settings of earlier ones.
func OpenConfig(filenames ...string) (*Config, error) {
	c := &Config{}
	c.Defaults()
	if err := tomlx.OpenFiles(c, filenames...); err != nil {
		return nil, fmt.Errorf("fit: reading config: %w", err)
	}
	return c, c.Validate()
}

// LoadTerms loads the datasets of the configured terms, resolving
// relative file names against dir.
func (c *Config) LoadTerms(dir string) ([]Term, error) {
	terms := make([]Term, len(c.Terms))
	for i, tc := range c.Terms {
		fn := tc.File
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(dir, fn)
		}
		ds, err := dataset.OpenFile(fn)
		if err != nil {
			return nil, fmt.Errorf("fit: term %d: %w", i, err)
		}
		name := tc.Name
		if name == "" {
			name = ds.Name
		}
		terms[i] = Term{Name: name, Weight: tc.Weight, PerGroup: tc.PerGroup, Order: tc.Order, Dataset: ds}
	}
	return terms, nil
}

// Objective returns the objective of the given terms with the
// configured combination and penalty.
func (c *Config) Objective(terms []Term) *Objective {
	return &Objective{Terms: terms, CombineOrder: c.CombineOrder, Penalty: c.Penalty}
}

// localMaxIter returns the iteration limit of the local phase.
func (c *Config) localMaxIter() int {
	if c.LocalMaxIter > 0 {
		return c.LocalMaxIter
	}
	return c.MaxIter
}
