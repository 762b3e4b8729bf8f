// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh collects the cross-section rings of stems. A stem
// becomes a [Part]: an ordered list of [Section]s, each a ring of
// points around the stem surface, with single-point caps at the ends.
// Triangulating adjacent rings is left to the consumer.
package mesh

import (
	"cogentcore.org/core/math32"
)

// Section is one ring of points around a stem at one position along it.
// A section with a single point is a cap.
type Section struct {

	// points of the ring, in angle-ascending order
	Points []math32.Vector3

	// normal direction hint for all points of the section; only valid if HasNormal
	Normal math32.Vector3

	// whether Normal is set
	HasNormal bool

	// whether this section sits at the base of the trunk, touching the ground
	Base bool
}

// NewSection returns a new empty section with room for n points.
func NewSection(n int) *Section {
	return &Section{Points: make([]math32.Vector3, 0, n)}
}

// AddPoint adds a point to the ring.
func (sc *Section) AddPoint(pt math32.Vector3) {
	sc.Points = append(sc.Points, pt)
}

// Len returns the number of points.
func (sc *Section) Len() int {
	return len(sc.Points)
}

// IsCap returns whether this section is a single cap point.
func (sc *Section) IsCap() bool {
	return len(sc.Points) == 1
}

// SetNormal sets the normal direction hint for the section points.
func (sc *Section) SetNormal(n math32.Vector3) {
	sc.Normal = n
	sc.HasNormal = true
}

// Center returns the mean of the ring points.
func (sc *Section) Center() math32.Vector3 {
	var c math32.Vector3
	if len(sc.Points) == 0 {
		return c
	}
	for _, pt := range sc.Points {
		c = c.Add(pt)
	}
	return c.DivScalar(float32(len(sc.Points)))
}

// Part is the mesh of one stem: its sections from base to tip.
type Part struct {

	// name of the part, typically identifying the stem
	Name string

	// branching level of the stem
	Level int

	// sections from base to tip
	Sections []*Section
}

// NewPart returns a new empty part.
func NewPart(name string, level int) *Part {
	return &Part{Name: name, Level: level}
}

// AddSection appends a section.
func (pt *Part) AddSection(sc *Section) {
	pt.Sections = append(pt.Sections, sc)
}

// Len returns the number of sections.
func (pt *Part) Len() int {
	return len(pt.Sections)
}

// IsEmpty returns whether no section has been added yet.
func (pt *Part) IsEmpty() bool {
	return len(pt.Sections) == 0
}

// First returns the first section, or nil if the part is empty.
func (pt *Part) First() *Section {
	if len(pt.Sections) == 0 {
		return nil
	}
	return pt.Sections[0]
}

// Last returns the last section, or nil if the part is empty.
func (pt *Part) Last() *Section {
	if len(pt.Sections) == 0 {
		return nil
	}
	return pt.Sections[len(pt.Sections)-1]
}

// NumPoints returns the total number of points over all sections.
func (pt *Part) NumPoints() int {
	n := 0
	for _, sc := range pt.Sections {
		n += sc.Len()
	}
	return n
}

// BBox returns the bounding box of all points.
func (pt *Part) BBox() math32.Box3 {
	bb := math32.Box3{}
	bb.SetEmpty()
	for _, sc := range pt.Sections {
		for _, p := range sc.Points {
			bb.ExpandByPoint(p)
		}
	}
	return bb
}

// Mesh is a set of parts, one per stem.
type Mesh struct {
	Parts []*Part
}

// NewPart adds a new empty part to the mesh and returns it.
func (ms *Mesh) NewPart(name string, level int) *Part {
	pt := NewPart(name, level)
	ms.Parts = append(ms.Parts, pt)
	return pt
}

// NumSections returns the total number of sections over all parts.
func (ms *Mesh) NumSections() int {
	n := 0
	for _, pt := range ms.Parts {
		n += pt.Len()
	}
	return n
}

// NumPoints returns the total number of points over all parts.
func (ms *Mesh) NumPoints() int {
	n := 0
	for _, pt := range ms.Parts {
		n += pt.NumPoints()
	}
	return n
}

// BBox returns the bounding box of all parts.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.Box3{}
	bb.SetEmpty()
	for _, pt := range ms.Parts {
		if pt.IsEmpty() {
			continue
		}
		bb.ExpandByBox(pt.BBox())
	}
	return bb
}
