// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/colorio/cs"
	"cogentcore.org/colorio/fit"
	"cogentcore.org/colorio/mat3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"-q"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSpaces(t *testing.T) {
	out, err := run(t, "spaces")
	require.NoError(t, err)
	for _, name := range cs.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "L*, a*, b*")
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "cielab", "95.047", "100", "108.883")
	require.NoError(t, err)
	assert.Equal(t, "L*\t100\na*\t0\nb*\t0\n", out)

	out, err = run(t, "convert", "--inverse", "XYZ1", "0.5", "0.25", "1")
	require.NoError(t, err)
	assert.Equal(t, "X\t50\nY\t25\nZ\t100\n", out)

	out, err = run(t, "convert", "--hex", "#ffffff", "OKLAB")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "L\t"))

	// negative coordinates are values, not flags
	out, err = run(t, "convert", "--inverse", "CIELAB", "50", "10", "-10")
	require.NoError(t, err)
	lab, err := cs.New("CIELAB")
	require.NoError(t, err)
	xyz, err := lab.ToXYZ100([]mat3.Vec3{{50, 10, -10}})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("X\t%.6g\nY\t%.6g\nZ\t%.6g\n", xyz[0][0], xyz[0][1], xyz[0][2]), out)

	out, err = run(t, "convert", "--inverse", "OSA-UCS", "-2", "-3.5", "-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "X\t"))

	_, err = run(t, "convert", "CIELAB", "--inverse", "50", "10", "-10")
	assert.Error(t, err)

	_, err = run(t, "convert", "xyY", "-1", "2", "3")
	assert.ErrorIs(t, err, cs.ErrDomain)

	_, err = run(t, "convert", "nope", "1", "2", "3")
	assert.Error(t, err)

	_, err = run(t, "convert", "XYZ", "1", "2")
	assert.Error(t, err)

	_, err = run(t, "convert", "XYZ", "1", "x", "3")
	assert.Error(t, err)
}

func TestConvertOptions(t *testing.T) {
	out, err := run(t, "convert", "-w", "d50", "CIELAB", "96.422", "100", "82.521")
	require.NoError(t, err)
	assert.Equal(t, "L*\t100\na*\t0\nb*\t0\n", out)

	out, err = run(t, "convert", "--lightness-last", "CIELAB", "95.047", "100", "108.883")
	require.NoError(t, err)
	assert.Equal(t, "a*\t0\nb*\t0\nL*\t100\n", out)

	out, err = run(t, "convert", "--srgb", "--hex", "#ff8800", "XYZ")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	var r, g, b float64
	_, err = fmt.Sscanf(lines[3], "sRGB\t%g %g %g", &r, &g, &b)
	require.NoError(t, err)
	assert.InDelta(t, 1, r, 1e-4)
	assert.InDelta(t, 0x88/255.0, g, 1e-4)
	assert.InDelta(t, 0, b, 1e-4)

	_, err = run(t, "convert", "-w", "D99", "CIELAB", "1", "2", "3")
	assert.Error(t, err)

	_, err = run(t, "convert", "--inverse", "--lightness-last", "CIELAB", "50", "0", "0")
	assert.Error(t, err)
}

func TestStress(t *testing.T) {
	out, err := run(t, "stress", "-s", "CIELAB,XYZ", "../../dataset/testdata/sample.yaml")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Sample")
	assert.True(t, strings.HasPrefix(lines[1], "CIELAB"))
	assert.True(t, strings.HasPrefix(lines[2], "XYZ"))

	_, err = run(t, "stress", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestWriteConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "optimize.toml")
	_, err := run(t, "optimize", "--write-config", fn)
	require.NoError(t, err)

	cfg, err := fit.OpenConfig(fn)
	require.NoError(t, err)
	def := &fit.Config{}
	def.Defaults()
	assert.Equal(t, def.MaxIter, cfg.MaxIter)
	assert.Equal(t, def.Anneal, cfg.Anneal)
	require.Len(t, cfg.Terms, 1)
	assert.Equal(t, "dataset.yaml", cfg.Terms[0].File)
}

func TestOptimize(t *testing.T) {
	out, err := run(t, "optimize", "--maxiter", "3", "../../fit/testdata/optimize.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "residual")
	assert.Contains(t, out, "power")

	out, err = run(t, "optimize", "../../fit/testdata/optimize.toml", "../../fit/testdata/override.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "tiles by group")

	_, err = run(t, "optimize")
	assert.Error(t, err)
}
