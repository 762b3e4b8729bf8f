// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"cogentcore.org/arbaro/mesh"
	"cogentcore.org/arbaro/params"
)

// AddToMesh adds the cross-sections of the segment to the mesh part of
// its stem. Segments of a stem must be added in order to the same part.
//
// The first segment added to an empty part starts it with a cap point,
// whose normal points back along the segment, and a full ring at the
// first sample. Every later sample adds a ring. The last segment of a
// stem closes the part with a tip cap point when its end radius is not
// already zero, and the final section gets a normal along the segment.
// A nil rnd uses the parameters' stream for the segment index.
func (sg *Segment) AddToMesh(part *mesh.Part, rnd *params.Random) error {
	if len(sg.samples) == 0 {
		return fmt.Errorf("tree.Segment.AddToMesh: segment %d has not been made", sg.Index)
	}
	if rnd == nil {
		rnd = sg.Params.NewRandom(sg.Index)
	}
	if part.IsEmpty() {
		ss := sg.samples[0]
		// the trunk base sits on the ground
		base := sg.IsFirstInStem() && sg.Level.Level == 0
		cp := sg.section(ss.Pos, 0, base, rnd)
		cp.SetNormal(sg.Axis().MulScalar(-1))
		part.AddSection(cp)
		part.AddSection(sg.section(ss.Pos, ss.Radius, base, rnd))
	}
	for _, ss := range sg.samples[1:] {
		part.AddSection(sg.section(ss.Pos, ss.Radius, false, rnd))
	}
	if sg.IsLastInStem() {
		if sg.EndRadius > MinRadius {
			part.AddSection(sg.section(sg.EndPoint(), 0, false, rnd))
		}
		part.Last().SetNormal(sg.Axis())
	}
	return nil
}
