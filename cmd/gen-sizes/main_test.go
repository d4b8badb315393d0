// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bpowers/sizedbit/internal/sizegen"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stderr.String(), err
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flags_gen.go")

	logs, err := execute(t, "-o", path, "-p", "flags", "--max", "16", "--widths", "8,16", "-v")
	require.NoError(t, err)
	require.Contains(t, logs, "rendered sizes")
	require.Contains(t, logs, "wrote")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := sizegen.Render(sizegen.Config{Package: "flags", Max: 16, Widths: []int{8, 16}})
	require.NoError(t, err)
	require.Equal(t, expected, got)

	// no temp files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestGenerateDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sizes_gen.go")

	logs, err := execute(t, "--output", path)
	require.NoError(t, err)
	require.Empty(t, logs)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := sizegen.Render(sizegen.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestGenerateInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sizes_gen.go")

	_, err := execute(t, "-o", path, "--widths", "16,8")
	require.Error(t, err)
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// the bitset package needs every default width
	_, err = execute(t, "-o", path, "--widths", "8,16")
	require.ErrorContains(t, err, "requires width 32")
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	_, err = execute(t, "-o", path, "extra-arg")
	require.Error(t, err)
}
