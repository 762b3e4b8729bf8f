// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform provides the rigid local frame used to place
// stems and segments: a position plus a rotation quaternion.
package transform

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Transform is a rigid transformation: points are first rotated by
// Quat and then translated by Pos. The local Z axis is the growth
// direction of whatever the frame is attached to.
// Transform is a value type; all methods return new values.
type Transform struct {

	// position of the frame origin
	Pos math32.Vector3

	// rotation of the frame, as a Quat
	Quat math32.Quat
}

// Identity returns the identity transformation.
func Identity() Transform {
	tr := Transform{}
	tr.Quat.SetIdentity()
	return tr
}

// New returns a transformation with the given position and rotation.
func New(pos math32.Vector3, quat math32.Quat) Transform {
	return Transform{Pos: pos, Quat: quat}
}

// rotation returns Quat, treating the zero value as identity.
func (tr Transform) rotation() math32.Quat {
	if tr.Quat.IsNil() {
		tr.Quat.SetIdentity()
	}
	return tr.Quat
}

// Origin returns the position of the frame origin.
func (tr Transform) Origin() math32.Vector3 {
	return tr.Pos
}

// AxisZ returns the local Z axis in world coordinates.
func (tr Transform) AxisZ() math32.Vector3 {
	return tr.ApplyRotation(math32.Vec3(0, 0, 1))
}

// Apply maps the local point v into world coordinates.
func (tr Transform) Apply(v math32.Vector3) math32.Vector3 {
	return tr.ApplyRotation(v).Add(tr.Pos)
}

// ApplyRotation maps the local direction v into world coordinates,
// without the translation.
func (tr Transform) ApplyRotation(v math32.Vector3) math32.Vector3 {
	return v.MulQuat(tr.rotation())
}

// Translate returns the transformation moved by the world vector delta.
func (tr Transform) Translate(delta math32.Vector3) Transform {
	tr.Pos = tr.Pos.Add(delta)
	return tr
}

// MoveOnAxis returns the transformation moved the specified distance
// along the given local axis. The axis is normalized prior to applying
// the distance.
func (tr Transform) MoveOnAxis(x, y, z, dist float32) Transform {
	return tr.Translate(tr.ApplyRotation(math32.Vec3(x, y, z).Normal()).MulScalar(dist))
}

// RotateOnAxis returns the transformation rotated around the given
// local axis by angle degrees. The origin does not move.
func (tr Transform) RotateOnAxis(x, y, z, angle float32) Transform {
	q := tr.rotation()
	tr.Quat = q.Mul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle)))
	return tr
}

// RotateX returns the transformation rotated around its local X axis
// by angle degrees. This is how stems bend.
func (tr Transform) RotateX(angle float32) Transform {
	return tr.RotateOnAxis(1, 0, 0, angle)
}

// RotateZ returns the transformation rotated around its local Z axis
// by angle degrees. This spins a frame around its own growth direction.
func (tr Transform) RotateZ(angle float32) Transform {
	return tr.RotateOnAxis(0, 0, 1, angle)
}

// String returns the origin and local Z axis, for debugging output.
func (tr Transform) String() string {
	z := tr.AxisZ()
	return fmt.Sprintf("pos: (%g, %g, %g) z: (%g, %g, %g)", tr.Pos.X, tr.Pos.Y, tr.Pos.Z, z.X, z.Y, z.Z)
}
