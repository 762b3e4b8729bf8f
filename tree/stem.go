// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"context"
	"fmt"

	"cogentcore.org/arbaro/mesh"
	"cogentcore.org/arbaro/params"
	"cogentcore.org/arbaro/prim"
	"cogentcore.org/arbaro/transform"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"golang.org/x/sync/errgroup"
)

// Stem is one continuous stem: a chain of equal-length segments,
// bent by the curvature of its level, with a radius profile over its
// whole length. A Stem does not spawn child stems; [Stem.SubstemFrame]
// gives the frames at which a caller can root them.
type Stem struct {

	// name of the stem, used for its mesh part
	Name string

	// parameters of the tree
	Params *params.Params

	// parameters of the stem level
	Level *params.LevelParams

	// frame at the stem base; the stem grows along its Z axis
	Frame transform.Transform

	// total length of the stem
	Length float32

	// radius at the stem base, before flare
	BaseRadius float32

	// random stream of this stem
	rand *params.Random

	// segments from base to tip, set by Make
	segments []*Segment
}

// NewStem returns a new stem of the given level. rnd is the random
// stream of the stem; each stem must have its own for reproducible
// output. Call [Stem.Make] to build the segments.
func NewStem(par *params.Params, level int, frame transform.Transform, length, baseRadius float32, rnd *params.Random) (*Stem, error) {
	if par == nil {
		return nil, errors.New("tree.NewStem: params are required")
	}
	lp := par.Level(level)
	if lp == nil {
		return nil, fmt.Errorf("tree.NewStem: no parameters for level %d", level)
	}
	if lp.CurveRes < 1 {
		return nil, fmt.Errorf("tree.NewStem: level %d: CurveRes must be at least 1, got %d", level, lp.CurveRes)
	}
	if !isFinite(length) || length <= 0 {
		return nil, fmt.Errorf("tree.NewStem: length must be positive and finite, got %g", length)
	}
	if !isFinite(baseRadius) || baseRadius < 0 {
		return nil, fmt.Errorf("tree.NewStem: base radius must be non-negative and finite, got %g", baseRadius)
	}
	if rnd == nil {
		rnd = par.NewRandom(0)
	}
	st := &Stem{
		Name:       fmt.Sprintf("stem-%d", level),
		Params:     par,
		Level:      lp,
		Frame:      frame,
		Length:     length,
		BaseRadius: baseRadius,
		rand:       rnd,
	}
	return st, nil
}

// NewTrunk returns the trunk of a tree with the given parameters,
// rooted at the origin and growing along Z. Its length is the varied
// tree scale times the varied level 0 length, and its base radius is
// the length times Ratio times the varied Scale0.
func NewTrunk(par *params.Params, rnd *params.Random) (*Stem, error) {
	lp := par.Level(0)
	if lp == nil {
		return nil, errors.New("tree.NewTrunk: no parameters for level 0")
	}
	if rnd == nil {
		rnd = par.NewRandom(0)
	}
	scale := rnd.Varied(par.Scale, par.ScaleV)
	length := rnd.Varied(lp.Length, lp.LengthV) * scale
	radius := length * par.Ratio * rnd.Varied(par.Scale0, par.ScaleV0)
	st, err := NewStem(par, 0, transform.Identity(), length, radius, rnd)
	if err != nil {
		return nil, err
	}
	st.Name = "trunk"
	return st, nil
}

// SegmentLength returns the length of each segment.
func (st *Stem) SegmentLength() float32 {
	return st.Length / float32(st.Level.CurveRes)
}

// Segments returns the segments of the stem, from base to tip.
func (st *Stem) Segments() []*Segment {
	return st.segments
}

// StemRadius returns the radius of the stem at distance h from its base.
//
// The taper shape follows Weber and Penn: Taper in [0, 1] narrows the
// stem linearly to (1-Taper) of the base radius, (1, 2] rounds off the
// tip as a sphere, and (2, 3] makes the radius vary periodically. The
// trunk additionally flares out near the ground.
func (st *Stem) StemRadius(h float32) float32 {
	lp := st.Level
	z := math32.Min(h/st.Length, 1)
	var unitTaper float32
	switch {
	case lp.Taper <= 1:
		unitTaper = lp.Taper
	case lp.Taper <= 2:
		unitTaper = 2 - lp.Taper
	}
	taper := st.BaseRadius * (1 - unitTaper*z)
	radius := taper
	if lp.Taper > 1 && taper > 0 {
		z2 := (1 - z) * st.Length
		depth := float32(1)
		if lp.Taper >= 2 && z2 >= taper {
			depth = lp.Taper - 2
		}
		z3 := z2
		if lp.Taper >= 2 {
			z3 = math32.Abs(z2 - 2*taper*math32.Floor(z2/(2*taper)+0.5))
		}
		if lp.Taper < 2 && z3 >= taper {
			radius = taper
		} else {
			d := z3 - taper
			radius = (1-depth)*taper + depth*math32.Sqrt(math32.Max(taper*taper-d*d, 0))
		}
	}
	if lp.Level == 0 {
		y := math32.Max(0, 1-8*z)
		radius *= st.Params.Flare*(math32.Pow(100, y)-1)/100 + 1
	}
	return radius
}

// Make builds and subdivides the segments of the stem. Each segment
// starts where the previous one ended, bent by the level curvature.
func (st *Stem) Make() error {
	if st.segments != nil {
		return fmt.Errorf("tree.Stem.Make: stem %q is already made", st.Name)
	}
	lp := st.Level
	segLen := st.SegmentLength()
	frame := st.Frame
	segs := make([]*Segment, 0, lp.CurveRes)
	for i := range lp.CurveRes {
		if i > 0 {
			frame = st.bend(frame, i)
		}
		r1 := st.StemRadius(float32(i) * segLen)
		r2 := st.StemRadius(float32(i+1) * segLen)
		sg, err := NewSegment(st.Params, lp, st, i, frame, r1, r2, segLen)
		if err != nil {
			return fmt.Errorf("stem %q: %w", st.Name, err)
		}
		if err := sg.Make(); err != nil {
			return fmt.Errorf("stem %q: %w", st.Name, err)
		}
		segs = append(segs, sg)
		// the next segment continues from the end of this one, which
		// for a helix is the end of the helix
		next := sg.EndPoint()
		if sg.IsHelical() {
			next = sg.samples[len(sg.samples)-1].Pos
		}
		frame = frame.Translate(next.Sub(frame.Origin()))
	}
	st.segments = segs
	return nil
}

// MakeAll makes the given stems concurrently and returns the first
// error. Stems must not share a random stream.
func MakeAll(ctx context.Context, stems ...*Stem) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, st := range stems {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return st.Make()
		})
	}
	return g.Wait()
}

// bend returns the frame of segment i, rotated from the frame of the
// previous segment by the level curvature. With CurveBack set, the
// first half of the stem bends by Curve and the second half by
// CurveBack. CurveV adds random variation; helical stems do not bend.
func (st *Stem) bend(frame transform.Transform, i int) transform.Transform {
	lp := st.Level
	if lp.IsHelical() {
		return frame
	}
	n := float32(lp.CurveRes)
	var delta float32
	switch {
	case lp.CurveBack == 0:
		delta = lp.Curve / n
	case i < (lp.CurveRes+1)/2:
		delta = lp.Curve * 2 / n
	default:
		delta = lp.CurveBack * 2 / n
	}
	delta += st.rand.Uniform(-lp.CurveV, lp.CurveV) / n
	return frame.RotateX(delta)
}

// NewPart returns a new mesh part for the stem.
func (st *Stem) NewPart() *mesh.Part {
	return mesh.NewPart(st.Name, st.Level.Level)
}

// AddToMesh adds the sections of all segments to the given part,
// which is normally empty.
func (st *Stem) AddToMesh(part *mesh.Part) error {
	if st.segments == nil {
		return fmt.Errorf("tree.Stem.AddToMesh: stem %q has not been made", st.Name)
	}
	for _, sg := range st.segments {
		if err := sg.AddToMesh(part, st.rand); err != nil {
			return err
		}
	}
	return nil
}

// Primitives emits all segments as renderer primitives.
func (st *Stem) Primitives(sink prim.Sink) error {
	if st.segments == nil {
		return fmt.Errorf("tree.Stem.Primitives: stem %q has not been made", st.Name)
	}
	for _, sg := range st.segments {
		if err := sg.Primitives(sink); err != nil {
			return err
		}
	}
	return nil
}

// SubstemFrame returns the frame at which a child stem rooted at
// distance offset from the stem base starts, oriented like the
// segment it grows from. offset is clamped to [0, Length].
func (st *Stem) SubstemFrame(offset float32) (transform.Transform, error) {
	if len(st.segments) == 0 {
		return transform.Transform{}, fmt.Errorf("tree.Stem.SubstemFrame: stem %q has not been made", st.Name)
	}
	offset = math32.Clamp(offset, 0, st.Length)
	segLen := st.SegmentLength()
	i := min(int(offset/segLen), len(st.segments)-1)
	sg := st.segments[i]
	where := (offset - float32(i)*segLen) / segLen
	return sg.AttachmentFrame(sg.Frame, where), nil
}
