// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFileXML(t *testing.T) {
	p, err := OpenFile("testdata/aspen.xml")
	require.NoError(t, err)
	assert.Equal(t, "quaking_aspen", p.Name)
	assert.Equal(t, float32(0.015), p.Ratio)
	assert.Equal(t, 5, p.Lobes)
	require.Len(t, p.Levels, 2)
	assert.Equal(t, 5, p.Levels[1].CurveRes)
	assert.Equal(t, float32(-40), p.Levels[1].Curve)
	assert.Equal(t, 1, p.Levels[1].Level)
	assert.Equal(t, DefaultMeshPoints(1, 0.5), p.Levels[1].MeshPoints)
}

func TestOpenFileTOML(t *testing.T) {
	p, err := OpenFile("testdata/helix.toml")
	require.NoError(t, err)
	assert.Equal(t, "corkscrew", p.Name)
	assert.Equal(t, int64(7), p.Seed)
	require.Len(t, p.Levels, 1)
	lp := p.Level(0)
	assert.True(t, lp.IsHelical())
	assert.Equal(t, 4, lp.CurveRes)
	assert.Equal(t, 8, lp.MeshPoints)
}

func TestOpenFileYAML(t *testing.T) {
	p, err := OpenFile("testdata/palm.yaml")
	require.NoError(t, err)
	assert.Equal(t, "palm", p.Name)
	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, float32(0.3), p.Flare)
	require.Len(t, p.Levels, 1)
	lp := p.Level(0)
	assert.True(t, lp.IsPeriodic())
	assert.Equal(t, 6, lp.CurveRes)
	assert.Equal(t, float32(-10), lp.CurveBack)
}

func TestOpenFileErrors(t *testing.T) {
	_, err := OpenFile("testdata/params.json")
	assert.ErrorContains(t, err, "unsupported")

	_, err = OpenFile("testdata/missing.toml")
	assert.Error(t, err)

	fn := filepath.Join(t.TempDir(), "flat.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[[Levels]]\nCurveV = -90\n"), 0o644))
	_, err = OpenFile(fn)
	assert.ErrorContains(t, err, "helix angle")
}

func TestClosestName(t *testing.T) {
	nm, ok := closestName("Flar")
	assert.True(t, ok)
	assert.Equal(t, "Flare", nm)
	nm, ok = closestName("1CurvRes")
	assert.True(t, ok)
	assert.Equal(t, "1CurveRes", nm)

	_, ok = closestName("Shape")
	assert.False(t, ok)
	_, ok = closestName("LeafShape")
	assert.False(t, ok)
	// known names whose level is not present are not misspellings
	_, ok = closestName("3Length")
	assert.False(t, ok)
}

func TestSaveTOML(t *testing.T) {
	p := NewParams()
	p.Name = "saved"
	p.Seed = 99
	p.SetNumLevels(2)
	p.Levels[1].CurveV = -15

	var b bytes.Buffer
	require.NoError(t, p.WriteTOML(&b))
	assert.Contains(t, b.String(), "Seed = 99")

	fn := filepath.Join(t.TempDir(), "saved.toml")
	require.NoError(t, p.Save(fn))
	lp, err := OpenFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "saved", lp.Name)
	assert.Equal(t, int64(99), lp.Seed)
	require.Len(t, lp.Levels, 2)
	assert.Equal(t, float32(-15), lp.Levels[1].CurveV)
	assert.Equal(t, p.Levels[0].Taper, lp.Levels[0].Taper)
}
