// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prim

import (
	"errors"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	ls := &List{}
	require.NoError(t, ls.AddCone(Cone{From: math32.Vec3(0, 0, 0), FromRadius: 1, To: math32.Vec3(0, 0, 4), ToRadius: 0.5}))
	require.NoError(t, ls.AddSphere(Sphere{Center: math32.Vec3(0, 0, 4), Radius: 0.5}))
	require.NoError(t, ls.AddCone(Cone{From: math32.Vec3(0, 0, 4), FromRadius: 0.5, To: math32.Vec3(0, 0, 6), ToRadius: 0}))

	assert.Equal(t, 3, ls.Len())
	assert.Len(t, ls.Cones(), 2)
	assert.Len(t, ls.Spheres(), 1)
	assert.Equal(t, float32(4), ls.Cones()[0].Length())

	bb := ls.BBox()
	assert.Equal(t, math32.Vec3(-1, -1, -1), bb.Min)
	assert.Equal(t, math32.Vec3(1, 1, 6), bb.Max)

	cp := &List{}
	require.NoError(t, ls.EmitTo(cp))
	assert.Equal(t, ls.Prims, cp.Prims)
}

type failSink struct {
	List
	failAfter int
}

var errFull = errors.New("sink full")

func (fs *failSink) AddCone(c Cone) error {
	if fs.Len() >= fs.failAfter {
		return errFull
	}
	return fs.List.AddCone(c)
}

func TestEmitToError(t *testing.T) {
	ls := &List{}
	for i := range 3 {
		ls.AddCone(Cone{To: math32.Vec3(0, 0, float32(i+1)), FromRadius: 1, ToRadius: 1})
	}
	fs := &failSink{failAfter: 2}
	assert.ErrorIs(t, ls.EmitTo(fs), errFull)
	assert.Equal(t, 2, fs.Len())
}
