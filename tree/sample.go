// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "cogentcore.org/core/math32"

// Sample is one point of a subdivided segment: a position on the
// stem axis and the stem radius there.
type Sample struct {
	Pos    math32.Vector3
	Radius float32
}

// MinRadius is the radius below which a cross-section collapses to a
// single cap point.
const MinRadius = 1e-6

// sphereInset shrinks joining spheres so that they do not
// z-fight with the cones they join.
const sphereInset = 1e-4
