// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prim defines the renderer primitives a stem can be drawn
// with directly (truncated cones joined by spheres) and the [Sink]
// interface that receives them.
package prim

import (
	"cogentcore.org/core/math32"
)

// Primitive is a [Cone] or a [Sphere].
type Primitive interface {
	// BBox returns the bounding box of the primitive.
	BBox() math32.Box3

	// EmitTo sends the primitive to the given sink.
	EmitTo(sink Sink) error
}

// Sink receives primitives. Formatting and output are up to the sink.
type Sink interface {
	AddCone(c Cone) error
	AddSphere(s Sphere) error
}

// Cone is a truncated cone between two circular ends.
type Cone struct {

	// center of the base
	From math32.Vector3

	// radius at From
	FromRadius float32

	// center of the top
	To math32.Vector3

	// radius at To
	ToRadius float32
}

// BBox returns a box containing both end spheres of the cone.
func (c Cone) BBox() math32.Box3 {
	bb := sphereBox(c.From, c.FromRadius)
	bb.ExpandByBox(sphereBox(c.To, c.ToRadius))
	return bb
}

// EmitTo sends the cone to the sink.
func (c Cone) EmitTo(sink Sink) error {
	return sink.AddCone(c)
}

// Length returns the distance between the cone ends.
func (c Cone) Length() float32 {
	return c.To.Sub(c.From).Length()
}

// Sphere is a sphere.
type Sphere struct {
	Center math32.Vector3
	Radius float32
}

// BBox returns the bounding box of the sphere.
func (s Sphere) BBox() math32.Box3 {
	return sphereBox(s.Center, s.Radius)
}

// EmitTo sends the sphere to the sink.
func (s Sphere) EmitTo(sink Sink) error {
	return sink.AddSphere(s)
}

func sphereBox(c math32.Vector3, r float32) math32.Box3 {
	r = math32.Abs(r)
	rv := math32.Vec3(r, r, r)
	bb := math32.Box3{}
	bb.SetEmpty()
	bb.ExpandByPoint(c.Sub(rv))
	bb.ExpandByPoint(c.Add(rv))
	return bb
}

// List is a [Sink] that records primitives in order.
type List struct {
	Prims []Primitive
}

// AddCone records a cone.
func (ls *List) AddCone(c Cone) error {
	ls.Prims = append(ls.Prims, c)
	return nil
}

// AddSphere records a sphere.
func (ls *List) AddSphere(s Sphere) error {
	ls.Prims = append(ls.Prims, s)
	return nil
}

// Len returns the number of recorded primitives.
func (ls *List) Len() int {
	return len(ls.Prims)
}

// Cones returns the recorded cones, in order.
func (ls *List) Cones() []Cone {
	var cs []Cone
	for _, p := range ls.Prims {
		if c, ok := p.(Cone); ok {
			cs = append(cs, c)
		}
	}
	return cs
}

// Spheres returns the recorded spheres, in order.
func (ls *List) Spheres() []Sphere {
	var ss []Sphere
	for _, p := range ls.Prims {
		if s, ok := p.(Sphere); ok {
			ss = append(ss, s)
		}
	}
	return ss
}

// BBox returns the bounding box of all recorded primitives.
func (ls *List) BBox() math32.Box3 {
	bb := math32.Box3{}
	bb.SetEmpty()
	for _, p := range ls.Prims {
		bb.ExpandByBox(p.BBox())
	}
	return bb
}

// EmitTo replays the recorded primitives into the given sink,
// stopping at the first error.
func (ls *List) EmitTo(sink Sink) error {
	for _, p := range ls.Prims {
		if err := p.EmitTo(sink); err != nil {
			return err
		}
	}
	return nil
}
