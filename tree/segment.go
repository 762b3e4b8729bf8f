// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"cogentcore.org/arbaro/params"
	"cogentcore.org/arbaro/transform"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	cmath "github.com/chewxy/math32"
)

// Radiuser is the radius profile of a stem.
type Radiuser interface {
	// StemRadius returns the stem radius at distance h from the stem
	// base. It must be deterministic for a given stem.
	StemRadius(h float32) float32
}

// RadiusFunc adapts a function to a [Radiuser].
type RadiusFunc func(h float32) float32

// StemRadius calls rf(h).
func (rf RadiusFunc) StemRadius(h float32) float32 { return rf(h) }

// Segment is one linear span of a stem. It is subdivided into samples
// once by [Segment.Make], and read-only afterwards.
type Segment struct {

	// position of the segment among the segments of its stem, from 0
	Index int

	// stem radius at the segment start
	StartRadius float32

	// stem radius at the segment end
	EndRadius float32

	// length of the segment; all segments of a stem have the same length
	Length float32

	// local frame of the segment: the origin is the start point and
	// the Z axis is the uncurved segment direction
	Frame transform.Transform

	// parameters of the stem level
	Level *params.LevelParams

	// parameters of the tree
	Params *params.Params

	// radius profile of the owning stem
	stem Radiuser

	// how the segment is subdivided, chosen at construction
	sub subdivider

	// samples from start to end, set once by Make
	samples []Sample
}

// NewSegment returns a new segment of a stem with the given geometry.
// It returns an error for non-positive or non-finite lengths, negative
// or non-finite radii, and helical levels that cannot form a helix.
func NewSegment(par *params.Params, lpar *params.LevelParams, stem Radiuser, index int, frame transform.Transform, startRadius, endRadius, length float32) (*Segment, error) {
	if par == nil || lpar == nil || stem == nil {
		return nil, errors.New("tree.NewSegment: params, level params and stem are required")
	}
	if index < 0 {
		return nil, fmt.Errorf("tree.NewSegment: negative index %d", index)
	}
	if !isFinite(length) || length <= 0 {
		return nil, fmt.Errorf("tree.NewSegment: segment %d: length must be positive and finite, got %g", index, length)
	}
	if !isFinite(startRadius) || !isFinite(endRadius) || startRadius < 0 || endRadius < 0 {
		return nil, fmt.Errorf("tree.NewSegment: segment %d: radii must be non-negative and finite, got %g, %g", index, startRadius, endRadius)
	}
	if lpar.IsHelical() && math32.Abs(lpar.CurveV) >= 90 {
		return nil, fmt.Errorf("tree.NewSegment: segment %d: helix angle must be below 90 degrees, got %g", index, -lpar.CurveV)
	}
	sg := &Segment{
		Index:       index,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Length:      length,
		Frame:       frame,
		Level:       lpar,
		Params:      par,
		stem:        stem,
	}
	sg.sub = newSubdivider(sg)
	return sg, nil
}

// Make subdivides the segment into samples. It must be called exactly
// once, before any other use of the segment.
func (sg *Segment) Make() error {
	if sg.samples != nil {
		return fmt.Errorf("tree.Segment.Make: segment %d is already made", sg.Index)
	}
	logx.PrintlnDebug("tree: segment", sg.Index, "level", sg.Level.Level, "subdivision:", sg.sub.Kind())
	if sg.Length < MinRadius {
		sg.samples = []Sample{
			{Pos: sg.StartPoint(), Radius: sg.StartRadius},
			{Pos: sg.EndPoint(), Radius: sg.EndRadius},
		}
		return nil
	}
	ss, err := sg.sub.subdivide(sg)
	if err != nil {
		return err
	}
	sg.samples = ss
	return nil
}

// Subdivision returns how the segment is subdivided.
func (sg *Segment) Subdivision() Subdivisions {
	return sg.sub.Kind()
}

// IsHelical returns whether the segment winds as a helix.
func (sg *Segment) IsHelical() bool {
	return sg.sub.Kind() == Helical
}

// Samples returns the samples of the segment. The returned slice must
// not be modified.
func (sg *Segment) Samples() []Sample {
	return sg.samples
}

// NumSamples returns the number of samples.
func (sg *Segment) NumSamples() int {
	return len(sg.samples)
}

// Sample returns the sample at the given index.
func (sg *Segment) Sample(i int) Sample {
	return sg.samples[i]
}

// StartPoint returns the position of the segment start.
func (sg *Segment) StartPoint() math32.Vector3 {
	return sg.Frame.Origin()
}

// EndPoint returns the position of the segment end on its straight axis.
func (sg *Segment) EndPoint() math32.Vector3 {
	return sg.axisPoint(sg.Length)
}

// Axis returns the direction of the segment, its local Z axis.
func (sg *Segment) Axis() math32.Vector3 {
	return sg.Frame.AxisZ()
}

// IsFirstInStem returns whether this is the first segment of its stem.
func (sg *Segment) IsFirstInStem() bool {
	return sg.Index == 0
}

// IsLastInStem returns whether this is the last segment of its stem.
func (sg *Segment) IsLastInStem() bool {
	return sg.Index == sg.Level.CurveRes-1
}

// axisPoint returns the point at distance pos from the start along
// the straight segment axis.
func (sg *Segment) axisPoint(pos float32) math32.Vector3 {
	return sg.StartPoint().Add(sg.Axis().MulScalar(pos))
}

// radiusAt returns the stem radius at distance pos from the segment
// start. The stem radius is defined over the whole stem, so the
// offset is made absolute from the stem base.
func (sg *Segment) radiusAt(pos float32) (float32, error) {
	h := float32(sg.Index)*sg.Length + pos
	rad := sg.stem.StemRadius(h)
	if !isFinite(rad) {
		return 0, fmt.Errorf("tree: segment %d: stem radius at %g is not finite: %g", sg.Index, h, rad)
	}
	return rad, nil
}

// AttachmentFrame returns where a child stem with the given frame
// grows out of this segment, at the fraction where in [0, 1] of the
// segment length. For straight segments the child moves along the
// axis; for helical segments it moves onto the helix, interpolated
// between the two samples around where.
func (sg *Segment) AttachmentFrame(child transform.Transform, where float32) transform.Transform {
	where = math32.Clamp(where, 0, 1)
	n := len(sg.samples)
	if !sg.IsHelical() || n < 2 {
		return child.Translate(sg.Axis().MulScalar(where * sg.Length))
	}
	f := where * float32(n-1)
	i := min(max(int(math32.Floor(f)), 0), n-2)
	p1 := sg.samples[i].Pos
	p2 := sg.samples[i+1].Pos
	pos := p1.Add(p2.Sub(p1).MulScalar(f - float32(i)))
	return child.Translate(pos.Sub(sg.StartPoint()))
}

func isFinite(v float32) bool {
	return !cmath.IsNaN(v) && !cmath.IsInf(v, 0)
}
