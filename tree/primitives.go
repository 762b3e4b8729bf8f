// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"cogentcore.org/arbaro/prim"
	"cogentcore.org/core/math32"
)

// Primitives emits the segment as renderer primitives: a truncated
// cone between each pair of adjacent samples. Helical segments also
// get a sphere at each interior sample, to fill the gaps where the
// cones meet at an angle. A sphere closes the segment end unless the
// segment ends its stem with a plain taper. Spheres that the inset
// would shrink to nothing are left out.
func (sg *Segment) Primitives(sink prim.Sink) error {
	n := len(sg.samples)
	if n == 0 {
		return fmt.Errorf("tree.Segment.Primitives: segment %d has not been made", sg.Index)
	}
	helical := sg.IsHelical()
	for i := 0; i < n-1; i++ {
		s1 := sg.samples[i]
		s2 := sg.samples[i+1]
		err := sink.AddCone(prim.Cone{From: s1.Pos, FromRadius: s1.Radius, To: s2.Pos, ToRadius: s2.Radius})
		if err != nil {
			return err
		}
		if helical && i < n-2 {
			if err := addJoint(sink, s2.Pos, s2.Radius); err != nil {
				return err
			}
		}
	}
	if !sg.IsLastInStem() || sg.Level.HasSphericalEnd() {
		return addJoint(sink, sg.EndPoint(), sg.EndRadius)
	}
	return nil
}

// addJoint adds a sphere of radius r, less the inset, at center.
func addJoint(sink prim.Sink, center math32.Vector3, r float32) error {
	if r <= sphereInset {
		return nil
	}
	return sink.AddSphere(prim.Sphere{Center: center, Radius: r - sphereInset})
}
