// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package povray

import (
	"bytes"
	"errors"
	"testing"

	"cogentcore.org/arbaro/prim"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	assert.Equal(t, "0.5", Float(0.5))
	assert.Equal(t, "1", Float(1))
	assert.Equal(t, "0", Float(0))
	assert.Equal(t, "0", Float(-0.000001))
	assert.Equal(t, "-2.25", Float(-2.25))
	assert.Equal(t, "0.33333", Float(1.0/3))
	assert.Equal(t, "0.0001", Float(0.0001))
}

func TestVector(t *testing.T) {
	assert.Equal(t, "<1,3,2>", Vector(math32.Vec3(1, 2, 3)))
	assert.Equal(t, "<0,0.5,-1>", Vector(math32.Vec3(0, -1, 0.5)))
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "trunk", Identifier("trunk"))
	assert.Equal(t, "stem_1", Identifier("stem-1"))
	assert.Equal(t, "_3d", Identifier("3d"))
	assert.Equal(t, "_", Identifier(""))
}

func testPrims() *prim.List {
	ls := &prim.List{}
	ls.AddCone(prim.Cone{From: math32.Vec3(0, 0, 0), FromRadius: 0.5, To: math32.Vec3(0, 0, 2), ToRadius: 0.25})
	ls.AddSphere(prim.Sphere{Center: math32.Vec3(0, 0, 2), Radius: 0.2499})
	return ls
}

func TestWriteUnion(t *testing.T) {
	var b bytes.Buffer
	pw := NewWriter(&b)
	require.NoError(t, pw.WriteUnion("stem-1", 1, testPrims().EmitTo))
	require.NoError(t, pw.Flush())
	want := `    #declare stem_1 = union {
      cone   { <0,0,0>, 0.5, <0,2,0>, 0.25 }
      sphere { <0,2,0>, 0.2499 }
    }
`
	assert.Equal(t, want, b.String())
}

func TestWriterIndent(t *testing.T) {
	var b bytes.Buffer
	pw := NewWriter(&b)
	require.NoError(t, pw.AddSphere(prim.Sphere{Radius: 1}))
	pw.Level = 2
	require.NoError(t, pw.AddSphere(prim.Sphere{Radius: 1}))
	require.NoError(t, pw.Flush())
	assert.Equal(t, "    sphere { <0,0,0>, 1 }\n        sphere { <0,0,0>, 1 }\n", b.String())
}

func TestWriteUnionError(t *testing.T) {
	var b bytes.Buffer
	pw := NewWriter(&b)
	errEmit := errors.New("emit failed")
	err := pw.WriteUnion("trunk", 0, func(sink prim.Sink) error { return errEmit })
	assert.ErrorIs(t, err, errEmit)
}
