package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/snapshot"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestPrimesNext(t *testing.T) {
	out, err := run(t, "primes", "next", "1000")
	require.NoError(t, err)
	require.Equal(t, "1103\n", out)

	_, err = run(t, "primes", "next", "--", "-1")
	require.ErrorIs(t, err, errs.ErrNegativeMin)

	_, err = run(t, "primes", "next", "abc")
	require.Error(t, err)
}

func TestPrimesGrow(t *testing.T) {
	out, err := run(t, "primes", "grow", "3", "--steps", "4")
	require.NoError(t, err)
	require.Equal(t, "7\n17\n37\n89\n", out)

	out, err = run(t, "primes", "grow", "1073741824", "-n", "1")
	require.NoError(t, err)
	require.Equal(t, "2146435069\n", out)
}

func TestPrimesCheck(t *testing.T) {
	out, err := run(t, "primes", "check")
	require.NoError(t, err)

	var r tableReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, 72, r.Entries)
	require.Equal(t, 3, r.Smallest)
	require.Equal(t, 7199369, r.Largest)
	require.True(t, r.Ascending)
	require.True(t, r.AllPrime)
	require.True(t, r.HashPrimeSafe)
	require.True(t, r.MaxIsPrime)
	require.Empty(t, r.Failures)
}

func TestFastMod(t *testing.T) {
	out, err := run(t, "fastmod", "12345", "1103")
	require.NoError(t, err)
	require.Contains(t, out, "result: 212\n")

	_, err = run(t, "fastmod", "1", "0")
	require.Error(t, err)
}

func TestWidths(t *testing.T) {
	out, err := run(t, "widths")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "511 widths from 16 to 4096 bytes (default 16):\n16 24 32 "))

	out, err = run(t, "widths", "--bytes", "24")
	require.NoError(t, err)
	require.Equal(t, "24 bytes: 3 longs, 6 ints\n", out)

	_, err = run(t, "widths", "--bytes", "20")
	require.ErrorIs(t, err, errs.ErrInvalidWidth)
}

func TestDictAndInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cells.snap")

	out, err := run(t, "dict", "500", "--out", path, "-c", "s2")
	require.NoError(t, err)

	var r dictReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, 500, r.Stats.Len)
	require.Equal(t, 919, r.Stats.Buckets)
	require.Equal(t, path, r.Output)
	require.Positive(t, r.Bytes)

	out, err = run(t, "inspect", path)
	require.NoError(t, err)

	var info struct {
		KeyWidth   int  `yaml:"key_width"`
		ValueWidth int  `yaml:"value_width"`
		Count      int  `yaml:"count"`
		Native     bool `yaml:"native"`
		Payload    struct {
			Algorithm    string `yaml:"algorithm"`
			OriginalSize int64  `yaml:"original_size"`
		} `yaml:"payload"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	require.Equal(t, 16, info.KeyWidth)
	require.Equal(t, 16, info.ValueWidth)
	require.Equal(t, 500, info.Count)
	require.True(t, info.Native)
	require.Equal(t, "S2", info.Payload.Algorithm)
	require.Equal(t, int64(500*32), info.Payload.OriginalSize)
}

func TestDict_Errors(t *testing.T) {
	_, err := run(t, "dict", "10", "-c", "brotli")
	require.Error(t, err)

	_, err = run(t, "dict", "10", "--capacity", "-1")
	require.ErrorIs(t, err, errs.ErrInvalidCapacity)

	_, err = run(t, "dict", "--", "-3")
	require.Error(t, err)
}

func TestInspect_Errors(t *testing.T) {
	_, err := run(t, "inspect", filepath.Join(t.TempDir(), "missing.snap"))
	require.Error(t, err)

	cells, err := fillCells(10)
	require.NoError(t, err)
	data, err := snapshot.Encode(cells)
	require.NoError(t, err)
	data[0] ^= 0xF0
	bad := filepath.Join(t.TempDir(), "bad.snap")
	require.NoError(t, os.WriteFile(bad, data, 0o644))

	_, err = run(t, "inspect", bad)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}
