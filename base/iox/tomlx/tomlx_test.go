// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Value float64
	Tags  []string
}

func TestReadWrite(t *testing.T) {
	in := testStruct{Name: "a", Value: 2.5, Tags: []string{"x", "y"}}
	var buf bytes.Buffer
	require.NoError(t, Write(&in, &buf))

	var out testStruct
	require.NoError(t, Read(&out, &buf))
	assert.Equal(t, in, out)

	err := Read(&out, strings.NewReader("Other = 3\n"))
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.toml")
	in := testStruct{Name: "b", Value: -1, Tags: []string{"z"}}
	require.NoError(t, Save(&in, fn))

	var out testStruct
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)

	over := filepath.Join(t.TempDir(), "over.toml")
	require.NoError(t, Save(&testStruct{Name: "c", Value: 4}, over))
	require.NoError(t, OpenFiles(&out, fn, over))
	assert.Equal(t, "c", out.Name)

	assert.Error(t, OpenFiles(&out, fn, "missing.toml"))
}
