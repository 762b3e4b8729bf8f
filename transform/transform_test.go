// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualVector(t *testing.T, vt, va math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol)
	tolassert.EqualTol(t, vt.Z, va.Z, standardTol)
}

func TestIdentity(t *testing.T) {
	tr := Identity()
	pt := math32.Vec3(1, 2, 3)
	assert.Equal(t, pt, tr.Apply(pt))
	tolAssertEqualVector(t, math32.Vec3(0, 0, 1), tr.AxisZ())

	var zero Transform
	tolAssertEqualVector(t, pt, zero.Apply(pt))
	tolAssertEqualVector(t, math32.Vec3(0, 0, 1), zero.AxisZ())
}

func TestTranslate(t *testing.T) {
	tr := Identity().Translate(math32.Vec3(1, 1, 0))
	tolAssertEqualVector(t, math32.Vec3(1, 1, 0), tr.Origin())
	tolAssertEqualVector(t, math32.Vec3(1, 1, 2), tr.Apply(math32.Vec3(0, 0, 2)))

	mv := tr.MoveOnAxis(0, 0, 5, 2)
	tolAssertEqualVector(t, math32.Vec3(1, 1, 2), mv.Origin())
	// value semantics
	tolAssertEqualVector(t, math32.Vec3(1, 1, 0), tr.Origin())
}

func TestRotate(t *testing.T) {
	tr := Identity().RotateX(90)
	tolAssertEqualVector(t, math32.Vec3(0, -1, 0), tr.AxisZ())
	tolAssertEqualVector(t, math32.Vec3(0, 0, 1), tr.ApplyRotation(math32.Vec3(0, 1, 0)))
	tolAssertEqualVector(t, math32.Vec3(0, -2, 0), tr.Apply(math32.Vec3(0, 0, 2)))

	// spinning around the own growth axis keeps that axis
	sp := tr.RotateZ(37)
	tolAssertEqualVector(t, tr.AxisZ(), sp.AxisZ())

	// local rotations compose in frame order
	tr2 := Identity().RotateZ(90).RotateX(90)
	tolAssertEqualVector(t, math32.Vec3(1, 0, 0), tr2.AxisZ())

	tolAssertEqualVector(t, math32.Vec3(0, -1, 0), tr.ApplyRotation(math32.Vec3(0, 0, 1)))
}

func TestMoveOnRotatedAxis(t *testing.T) {
	tr := Identity().RotateX(90).MoveOnAxis(0, 0, 1, 3)
	tolAssertEqualVector(t, math32.Vec3(0, -3, 0), tr.Origin())
	assert.Contains(t, tr.String(), "pos:")
}
