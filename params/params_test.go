// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	p := NewParams()
	assert.Equal(t, int64(13), p.Seed)
	assert.Equal(t, float32(13), p.Scale)
	assert.Equal(t, float32(0.6), p.Flare)
	assert.Equal(t, 5, p.Lobes)
	require.Len(t, p.Levels, 1)
	lp := p.Level(0)
	require.NotNil(t, lp)
	assert.Equal(t, 3, lp.CurveRes)
	assert.Equal(t, float32(20), lp.CurveV)
	assert.Nil(t, p.Level(1))
	assert.Nil(t, p.Level(-1))

	p.Update()
	assert.Equal(t, DefaultMeshPoints(0, p.Smooth), p.Levels[0].MeshPoints)
	assert.NoError(t, p.Validate())
}

func TestDefaultMeshPoints(t *testing.T) {
	assert.Equal(t, 4, DefaultMeshPoints(0, 0))
	assert.Equal(t, 16, DefaultMeshPoints(0, 1))
	assert.Equal(t, 3, DefaultMeshPoints(3, 0))
	assert.Greater(t, DefaultMeshPoints(0, 0.5), DefaultMeshPoints(2, 0.5))
}

func TestLevelShapes(t *testing.T) {
	lp := NewLevelParams(1)
	assert.Equal(t, 1, lp.Level)
	assert.False(t, lp.IsHelical())
	lp.CurveV = -10
	assert.True(t, lp.IsHelical())

	lp.Taper = 1
	assert.False(t, lp.HasSphericalEnd())
	lp.Taper = 1.5
	assert.True(t, lp.HasSphericalEnd())
	lp.Taper = 2
	assert.True(t, lp.HasSphericalEnd())
	assert.False(t, lp.IsPeriodic())
	lp.Taper = 2.5
	assert.False(t, lp.HasSphericalEnd())
	assert.True(t, lp.IsPeriodic())
}

func TestLobesEnabled(t *testing.T) {
	p := NewParams()
	assert.True(t, p.LobesEnabled(0))
	assert.False(t, p.LobesEnabled(1))
	p.Lobes = 0
	assert.False(t, p.LobesEnabled(0))
	p.ScaleV0 = 0.1
	assert.True(t, p.LobesEnabled(0))
}

func TestValidate(t *testing.T) {
	p := NewParams()
	p.Scale = 0
	p.Smooth = 2
	p.Levels[0].CurveRes = 0
	p.Levels[0].Taper = 4
	err := p.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "Scale must be positive")
	assert.Contains(t, msg, "Smooth")
	assert.Contains(t, msg, "level 0")
	assert.Contains(t, msg, "CurveRes")
	assert.Contains(t, msg, "Taper")

	p = NewParams()
	p.Levels = nil
	assert.ErrorContains(t, p.Validate(), "at least one level")

	p = NewParams()
	p.Levels[0].CurveV = -90
	assert.ErrorContains(t, p.Validate(), "helix angle")
	p.Levels[0].CurveV = -89
	assert.NoError(t, p.Validate())
}

func TestSetNumLevels(t *testing.T) {
	p := NewParams()
	p.SetNumLevels(3)
	require.Len(t, p.Levels, 3)
	assert.Equal(t, 2, p.Levels[2].Level)
	p.SetNumLevels(10)
	assert.Len(t, p.Levels, MaxLevels)
	p.SetNumLevels(0)
	assert.Len(t, p.Levels, 1)
}

func TestRandomDeterministic(t *testing.T) {
	p := NewParams()
	a := p.NewRandom(1)
	b := p.NewRandom(1)
	c := p.NewRandom(2)
	same := true
	for range 20 {
		va, vb, vc := a.Uniform(-1, 1), b.Uniform(-1, 1), c.Uniform(-1, 1)
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, float32(-1))
		assert.Less(t, va, float32(1))
		if va != vc {
			same = false
		}
	}
	assert.False(t, same, "distinct streams must differ")
}

func TestRandomVaried(t *testing.T) {
	r := NewRandom(5)
	for range 50 {
		v := r.Varied(10, 2)
		assert.GreaterOrEqual(t, v, float32(8))
		assert.Less(t, v, float32(12))
	}
	assert.Equal(t, float32(3), r.Varied(3, 0))
}

func TestReadXML(t *testing.T) {
	const doc = `<arbaro><species name="test">
	<param name="Levels" value="2"/>
	<param name="Flare" value="1.5"/>
	<param name="0ScaleV" value="0.2"/>
	<param name="1CurveV" value="-15"/>
	<param name="9Length" value="2"/>
	<param name="Leaves" value="25"/>
	</species></arbaro>`
	p := NewParams()
	require.NoError(t, p.ReadXML(strings.NewReader(doc)))
	assert.Equal(t, "test", p.Name)
	assert.Equal(t, float32(1.5), p.Flare)
	assert.Equal(t, float32(0.2), p.ScaleV0)
	require.Len(t, p.Levels, 2)
	assert.Equal(t, float32(-15), p.Levels[1].CurveV)

	err := p.ReadXML(strings.NewReader(`<arbaro><species><param name="Flare" value="wide"/></species></arbaro>`))
	assert.ErrorContains(t, err, "Flare")
}
