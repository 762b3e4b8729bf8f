// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
)

//go:generate core generate

// Subdivisions are the ways a segment is broken into samples.
type Subdivisions int32 //enums:enum

const (
	// Uniform places samples at the two ends of the segment.
	Uniform Subdivisions = iota

	// Helical winds the samples around the segment axis in one full turn.
	Helical

	// SphericalEnd halves the remaining distance to the tip with each
	// sample, to round off the last segment of a stem.
	SphericalEnd

	// PeriodicTaper places many evenly spaced samples to follow an
	// oscillating radius.
	PeriodicTaper

	// Flare doubles the distance from the base with each sample, to
	// resolve the widening of the trunk base.
	Flare
)

// Sample counts of the subdivisions.
const (
	HelixCount         = 10
	SphericalEndCount  = 10
	PeriodicTaperCount = 20
	FlareCount         = 10
)

// subdivider breaks a segment into samples.
type subdivider interface {
	// Kind returns which subdivision this is.
	Kind() Subdivisions

	// subdivide returns the samples of the segment, in order from
	// the segment start.
	subdivide(sg *Segment) ([]Sample, error)
}

// newSubdivider selects the subdivision for a segment. The first
// matching rule wins: helix, spherical end, periodic taper, flare,
// and otherwise uniform.
func newSubdivider(sg *Segment) subdivider {
	lp := sg.Level
	switch {
	case lp.IsHelical():
		return &helix{count: HelixCount, angle: math32.DegToRad(math32.Abs(lp.CurveV))}
	case lp.HasSphericalEnd() && sg.IsLastInStem():
		return &sphericalEnd{count: SphericalEndCount}
	case lp.IsPeriodic():
		return &linear{kind: PeriodicTaper, count: PeriodicTaperCount}
	case lp.Level == 0 && sg.Index == 0 && sg.Params.Flare != 0:
		return &flare{count: FlareCount}
	}
	return &linear{kind: Uniform, count: 1}
}

// linear places count+1 evenly spaced samples along the axis.
type linear struct {
	kind  Subdivisions
	count int
}

func (ln *linear) Kind() Subdivisions { return ln.kind }

func (ln *linear) subdivide(sg *Segment) ([]Sample, error) {
	ss := make([]Sample, 0, ln.count+1)
	for i := 0; i <= ln.count; i++ {
		pos := float32(i) * sg.Length / float32(ln.count)
		rad, err := sg.radiusAt(pos)
		if err != nil {
			return nil, err
		}
		ss = append(ss, Sample{Pos: sg.axisPoint(pos), Radius: rad})
	}
	return ss, nil
}

// sphericalEnd halves the remaining distance to the tip with each
// sample, and ends exactly at the tip with the segment end radius.
type sphericalEnd struct {
	count int
}

func (se *sphericalEnd) Kind() Subdivisions { return SphericalEnd }

func (se *sphericalEnd) subdivide(sg *Segment) ([]Sample, error) {
	ss := make([]Sample, 0, se.count+1)
	for i := 0; i < se.count; i++ {
		pos := sg.Length - sg.Length/math32.Pow(2, float32(i))
		rad, err := sg.radiusAt(pos)
		if err != nil {
			return nil, err
		}
		ss = append(ss, Sample{Pos: sg.axisPoint(pos), Radius: rad})
	}
	// the declared end radius, not the radius function, so the tip
	// matches the stem exactly
	ss = append(ss, Sample{Pos: sg.EndPoint(), Radius: sg.EndRadius})
	return ss, nil
}

// flare starts exactly at the base with the segment start radius and
// doubles the distance from the base with each following sample.
type flare struct {
	count int
}

func (fl *flare) Kind() Subdivisions { return Flare }

func (fl *flare) subdivide(sg *Segment) ([]Sample, error) {
	ss := make([]Sample, 0, fl.count+1)
	ss = append(ss, Sample{Pos: sg.StartPoint(), Radius: sg.StartRadius})
	for i := fl.count - 1; i >= 0; i-- {
		pos := sg.Length / math32.Pow(2, float32(i))
		rad, err := sg.radiusAt(pos)
		if err != nil {
			return nil, err
		}
		ss = append(ss, Sample{Pos: sg.axisPoint(pos), Radius: rad})
	}
	return ss, nil
}

// helix winds the samples one full turn around the segment axis.
// angle is the deviation of the helix from the axis, in radians.
type helix struct {
	count int
	angle float32
}

func (hx *helix) Kind() Subdivisions { return Helical }

// Radius returns the radius of the helix for a segment of the given
// length: one turn over length with a pitch angle of hx.angle.
func (hx *helix) Radius(length float32) float32 {
	c := math32.Cos(hx.angle)
	return length / (2 * math32.Pi) * math32.Sqrt(1/(c*c)-1)
}

func (hx *helix) subdivide(sg *Segment) ([]Sample, error) {
	hr := hx.Radius(sg.Length)
	logx.PrintfDebug("tree: helix segment %d: angle: %g length: %g radius: %g\n", sg.Index, hx.angle, sg.Length, hr)
	ss := make([]Sample, 0, hx.count+1)
	for i := 0; i <= hx.count; i++ {
		a := 2 * math32.Pi * float32(i) / float32(hx.count)
		z := float32(i) * sg.Length / float32(hx.count)
		// shifted by -hr so that the helix starts at the segment start
		local := math32.Vec3(hr*math32.Cos(a)-hr, hr*math32.Sin(a), z)
		rad, err := sg.radiusAt(z)
		if err != nil {
			return nil, err
		}
		ss = append(ss, Sample{Pos: sg.Frame.Apply(local), Radius: rad})
	}
	return ss, nil
}
