// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"cogentcore.org/arbaro/mesh"
	"cogentcore.org/arbaro/params"
	"cogentcore.org/arbaro/transform"
	"cogentcore.org/core/math32"
)

// LobeShape is the radial shaping of trunk cross-sections.
type LobeShape struct {

	// whether lobes and radius jitter are applied at all
	Enabled bool

	// number of lobes around the circumference
	Lobes int

	// depth of the lobes, as a fraction of the radius
	Depth float32

	// maximum random variation of each point radius, divided by the
	// number of samples of the segment
	ScaleV float32
}

// NewLobeShape returns the lobe shape of cross-sections at the given
// level of a tree with the given parameters.
func NewLobeShape(par *params.Params, level int) LobeShape {
	return LobeShape{
		Enabled: par.LobesEnabled(level),
		Lobes:   par.Lobes,
		Depth:   par.LobeDepth,
		ScaleV:  par.ScaleV0,
	}
}

// SectionOptions are the inputs of [BuildSection] besides the
// position and radius.
type SectionOptions struct {

	// number of points of a full ring
	Points int

	// lobe shaping
	Lobes LobeShape

	// number of samples of the segment, which damps the radius jitter
	NumSamples int

	// marks the section as the ground-level base of the trunk; its
	// points are placed by the frame like any other
	Base bool

	// source of the radius jitter when lobes are enabled; nil uses a
	// stream seeded with 0
	Rand *params.Random
}

// BuildSection returns the cross-section ring of a stem at pos with the
// given radius, in the segment frame translated to pos. A radius below
// [MinRadius] gives a single cap point. Otherwise the ring has
// opts.Points points in angle-ascending order starting at 0 degrees.
func BuildSection(pos math32.Vector3, radius float32, frame transform.Transform, opts *SectionOptions) *mesh.Section {
	trf := frame.Translate(pos.Sub(frame.Origin()))
	if radius < MinRadius {
		sc := mesh.NewSection(1)
		sc.Base = opts.Base
		sc.AddPoint(trf.Apply(math32.Vector3{}))
		return sc
	}
	n := max(opts.Points, 1)
	sc := mesh.NewSection(n)
	sc.Base = opts.Base
	lb := opts.Lobes
	rnd := opts.Rand
	if lb.Enabled && rnd == nil {
		rnd = params.NewRandom(0)
	}
	for i := 0; i < n; i++ {
		angle := float32(i) * 360 / float32(n)
		// keep points off the lobe extrema, which would crease the surface
		if lb.Enabled && lb.Lobes != 0 {
			angle -= 10 / float32(lb.Lobes)
		}
		a := math32.DegToRad(angle)
		pt := math32.Vec3(math32.Cos(a), math32.Sin(a), 0)
		if lb.Enabled {
			rad := radius * (1 + rnd.Uniform(-lb.ScaleV, lb.ScaleV)/float32(max(opts.NumSamples, 1)))
			pt = pt.MulScalar(rad * (1 + lb.Depth*math32.Cos(float32(lb.Lobes)*a)))
		} else {
			pt = pt.MulScalar(radius)
		}
		sc.AddPoint(trf.Apply(pt))
	}
	return sc
}

// section returns the cross-section of this segment at pos.
func (sg *Segment) section(pos math32.Vector3, radius float32, base bool, rnd *params.Random) *mesh.Section {
	pts := sg.Level.MeshPoints
	if pts <= 0 {
		pts = params.DefaultMeshPoints(sg.Level.Level, sg.Params.Smooth)
	}
	return BuildSection(pos, radius, sg.Frame, &SectionOptions{
		Points:     pts,
		Lobes:      NewLobeShape(sg.Params, sg.Level.Level),
		NumSamples: len(sg.samples),
		Base:       base,
		Rand:       rnd,
	})
}
