// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params holds the tree-wide and per-level parameters that
// shape stem geometry, along with their defaults, validation, file
// loading, and the deterministic random streams used by stems.
package params

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// MaxLevels is the maximum number of branching levels.
const MaxLevels = 4

// Params are the tree-wide parameters. Per-level values live in Levels.
type Params struct {

	// name of the species these parameters describe
	Name string

	// seed of the random streams; the same seed always gives the same tree
	Seed int64 `default:"13"`

	// overall tree scale: the trunk length is Scale * Levels[0].Length
	Scale float32 `default:"13" min:"0"`

	// variation of Scale
	ScaleV float32 `default:"3" min:"0"`

	// trunk radius scale (Arbaro 0Scale)
	Scale0 float32 `default:"1" min:"0"`

	// variation of the trunk radius (Arbaro 0ScaleV); it also jitters
	// the points of trunk cross-sections
	ScaleV0 float32 `default:"0" min:"0"`

	// ratio of trunk radius to trunk length
	Ratio float32 `default:"0.015" min:"0"`

	// exaggerated widening of the trunk base
	Flare float32 `default:"0.6"`

	// number of lobes of the trunk cross-section
	Lobes int `default:"5" min:"0"`

	// depth of the trunk lobes, as a fraction of the radius
	LobeDepth float32 `default:"0.07" min:"0"`

	// smoothness of the mesh in [0, 1]; used to derive
	// LevelParams.MeshPoints when it is not set
	Smooth float32 `default:"0.5" min:"0" max:"1"`

	// per-level parameters, trunk first
	Levels []LevelParams
}

// LevelParams are the parameters of one branching level.
type LevelParams struct {

	// branching level: 0 is the trunk
	Level int

	// relative stem length (Arbaro nLength)
	Length float32 `default:"1" min:"0"`

	// variation of Length
	LengthV float32 `default:"0" min:"0"`

	// taper shape: 0..1 conical, 1..2 spherical end, 2..3 periodic
	Taper float32 `default:"1" min:"0" max:"3"`

	// number of segments of each stem (Arbaro nCurveRes)
	CurveRes int `default:"3" min:"1"`

	// total curvature of a stem, in degrees
	Curve float32 `default:"0"`

	// curvature of the upper half of a stem, in degrees; zero means
	// the whole stem curves by Curve
	CurveBack float32 `default:"0"`

	// curvature variation in degrees; a negative value makes
	// segments corkscrew as helices with that angular deviation
	CurveV float32 `default:"20"`

	// number of points per cross-section ring; zero derives it from
	// Params.Smooth
	MeshPoints int `default:"0" min:"0"`
}

// NewParams returns Params with default values and a single trunk level.
func NewParams() *Params {
	p := &Params{}
	p.Defaults()
	return p
}

// Defaults sets all values to their defaults, with one trunk level.
func (p *Params) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(p))
	p.Levels = []LevelParams{NewLevelParams(0)}
}

// NewLevelParams returns default LevelParams for the given level.
func NewLevelParams(level int) LevelParams {
	lp := LevelParams{}
	errors.Log(reflectx.SetFromDefaultTags(&lp))
	lp.Level = level
	return lp
}

// Level returns the parameters of the given level, or nil if
// there is no such level.
func (p *Params) Level(level int) *LevelParams {
	if level < 0 || level >= len(p.Levels) {
		return nil
	}
	return &p.Levels[level]
}

// LobesEnabled returns whether cross-sections at the given level are
// lobed and jittered. Only the trunk is.
func (p *Params) LobesEnabled(level int) bool {
	return level == 0 && (p.Lobes != 0 || p.ScaleV0 != 0)
}

// Update fills derived values: level indexes and MeshPoints derived
// from Smooth. It is called after loading.
func (p *Params) Update() {
	for i := range p.Levels {
		lp := &p.Levels[i]
		lp.Level = i
		if lp.MeshPoints <= 0 {
			lp.MeshPoints = DefaultMeshPoints(i, p.Smooth)
		}
	}
}

// DefaultMeshPoints returns the number of ring points for the given
// level and smoothness. Finer levels get fewer points; the result is
// never below 3.
func DefaultMeshPoints(level int, smooth float32) int {
	n := int(float32(MaxLevels-level) * (1 + 3*smooth))
	return max(n, 3)
}

// Validate returns all problems with the parameters, joined.
func (p *Params) Validate() error {
	var errs []error
	if len(p.Levels) == 0 {
		errs = append(errs, errors.New("params: at least one level is required"))
	}
	if len(p.Levels) > MaxLevels {
		errs = append(errs, fmt.Errorf("params: %d levels exceeds the maximum of %d", len(p.Levels), MaxLevels))
	}
	if p.Scale <= 0 {
		errs = append(errs, fmt.Errorf("params: Scale must be positive, got %g", p.Scale))
	}
	if p.ScaleV < 0 || p.ScaleV >= p.Scale {
		errs = append(errs, fmt.Errorf("params: ScaleV must be in [0, Scale), got %g", p.ScaleV))
	}
	if p.Ratio <= 0 {
		errs = append(errs, fmt.Errorf("params: Ratio must be positive, got %g", p.Ratio))
	}
	if p.Scale0 <= 0 {
		errs = append(errs, fmt.Errorf("params: Scale0 must be positive, got %g", p.Scale0))
	}
	if p.ScaleV0 < 0 {
		errs = append(errs, fmt.Errorf("params: ScaleV0 must not be negative, got %g", p.ScaleV0))
	}
	if p.Lobes < 0 {
		errs = append(errs, fmt.Errorf("params: Lobes must not be negative, got %d", p.Lobes))
	}
	if p.LobeDepth < 0 {
		errs = append(errs, fmt.Errorf("params: LobeDepth must not be negative, got %g", p.LobeDepth))
	}
	if p.Smooth < 0 || p.Smooth > 1 {
		errs = append(errs, fmt.Errorf("params: Smooth must be in [0, 1], got %g", p.Smooth))
	}
	for i := range p.Levels {
		if err := p.Levels[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("level %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Validate returns all problems with the level parameters, joined.
func (lp *LevelParams) Validate() error {
	var errs []error
	if lp.Length <= 0 {
		errs = append(errs, fmt.Errorf("Length must be positive, got %g", lp.Length))
	}
	if lp.LengthV < 0 || lp.LengthV >= lp.Length {
		errs = append(errs, fmt.Errorf("LengthV must be in [0, Length), got %g", lp.LengthV))
	}
	if lp.Taper < 0 || lp.Taper > 3 {
		errs = append(errs, fmt.Errorf("Taper must be in [0, 3], got %g", lp.Taper))
	}
	if lp.CurveRes < 1 {
		errs = append(errs, fmt.Errorf("CurveRes must be at least 1, got %d", lp.CurveRes))
	}
	if lp.MeshPoints < 0 {
		errs = append(errs, fmt.Errorf("MeshPoints must not be negative, got %d", lp.MeshPoints))
	}
	if lp.CurveV <= -90 {
		errs = append(errs, fmt.Errorf("helix angle -CurveV must be below 90 degrees, got %g", -lp.CurveV))
	}
	return errors.Join(errs...)
}

// IsHelical returns whether stems of this level corkscrew.
func (lp *LevelParams) IsHelical() bool {
	return lp.CurveV < 0
}

// HasSphericalEnd returns whether the taper rounds off stem tips.
func (lp *LevelParams) HasSphericalEnd() bool {
	return lp.Taper > 1 && lp.Taper <= 2
}

// IsPeriodic returns whether the taper varies periodically.
func (lp *LevelParams) IsPeriodic() bool {
	return lp.Taper > 2
}
