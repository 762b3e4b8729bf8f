// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/base/reflectx"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// OpenFile opens parameters from the given file, choosing the format
// from its extension: .toml, .yaml / .yml, or .xml (Arbaro species
// files). Values not present in the file keep their defaults.
// The result is updated and validated.
func OpenFile(filename string) (*Params, error) {
	p := NewParams()
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = p.Open(filename)
	case ".yaml", ".yml":
		err = p.OpenYAML(filename)
	case ".xml":
		err = p.OpenXML(filename)
	default:
		return nil, fmt.Errorf("params: unsupported file type %q", filename)
	}
	if err != nil {
		return nil, err
	}
	p.Update()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("params: invalid parameters in %q: %w", filename, err)
	}
	return p, nil
}

// Open reads the parameters from the given TOML file.
func (p *Params) Open(filename string) error {
	return errors.Log(tomlx.Open(p, filename))
}

// Save writes the parameters to the given TOML file.
func (p *Params) Save(filename string) error {
	return errors.Log(tomlx.Save(p, filename))
}

// WriteTOML writes the parameters as TOML.
func (p *Params) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).SetIndentTables(true).Encode(p)
}

// OpenYAML reads the parameters from the given YAML file.
func (p *Params) OpenYAML(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer f.Close()
	return errors.Log(p.ReadYAML(f))
}

// ReadYAML reads the parameters from YAML.
func (p *Params) ReadYAML(r io.Reader) error {
	d := yaml.NewDecoder(r)
	if err := d.Decode(p); err != nil && err != io.EOF {
		return fmt.Errorf("params: decoding YAML: %w", err)
	}
	return nil
}

// OpenXML reads the parameters from the given Arbaro species XML file.
func (p *Params) OpenXML(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer f.Close()
	return errors.Log(p.ReadXML(f))
}

// arbaroFile is the layout of an Arbaro species file:
//
//	<arbaro><species name=".."><param name=".." value=".."/>...</species></arbaro>
type arbaroFile struct {
	XMLName xml.Name `xml:"arbaro"`
	Species struct {
		Name   string `xml:"name,attr"`
		Params []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:"value,attr"`
		} `xml:"param"`
	} `xml:"species"`
}

// ReadXML reads the parameters from an Arbaro species XML document.
// Arbaro parameters that do not shape stem geometry (leaves, pruning,
// attraction and so on) are ignored.
func (p *Params) ReadXML(r io.Reader) error {
	var af arbaroFile
	if err := xml.NewDecoder(r).Decode(&af); err != nil {
		return fmt.Errorf("params: decoding XML: %w", err)
	}
	if af.Species.Name != "" {
		p.Name = af.Species.Name
	}
	var errs []error
	// Levels first, so that level params have somewhere to go
	for _, pr := range af.Species.Params {
		if pr.Name != "Levels" {
			continue
		}
		var n int
		if err := reflectx.SetRobust(&n, pr.Value); err != nil {
			return fmt.Errorf("params: Levels: %w", err)
		}
		p.SetNumLevels(n)
	}
	for _, pr := range af.Species.Params {
		if pr.Name == "Levels" {
			continue
		}
		ptr := p.arbaroField(pr.Name)
		if ptr == nil {
			if sug, ok := closestName(pr.Name); ok {
				slog.Warn("params: unknown Arbaro parameter", "name", pr.Name, "closest", sug)
			} else {
				logx.PrintlnDebug("params: ignoring Arbaro parameter", pr.Name)
			}
			continue
		}
		if err := reflectx.SetRobust(ptr, pr.Value); err != nil {
			errs = append(errs, fmt.Errorf("params: %s: %w", pr.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetNumLevels sets the number of levels, keeping existing levels
// and adding default ones as needed. It is clamped to [1, MaxLevels].
func (p *Params) SetNumLevels(n int) {
	n = min(max(n, 1), MaxLevels)
	if n <= len(p.Levels) {
		p.Levels = p.Levels[:n]
		return
	}
	for i := len(p.Levels); i < n; i++ {
		p.Levels = append(p.Levels, NewLevelParams(i))
	}
}

// arbaroField returns a pointer to the field for the given Arbaro
// parameter name, or nil if it is not one this package uses.
// Level parameters are prefixed by their level digit (0Length, 1CurveV);
// 0Scale and 0ScaleV are trunk parameters of the tree as a whole.
func (p *Params) arbaroField(name string) any {
	switch name {
	case "Scale":
		return &p.Scale
	case "ScaleV":
		return &p.ScaleV
	case "0Scale":
		return &p.Scale0
	case "0ScaleV":
		return &p.ScaleV0
	case "Ratio":
		return &p.Ratio
	case "Flare":
		return &p.Flare
	case "Lobes":
		return &p.Lobes
	case "LobeDepth":
		return &p.LobeDepth
	case "Smooth":
		return &p.Smooth
	case "Seed", "RandomSeed":
		return &p.Seed
	}
	if len(name) < 2 || name[0] < '0' || name[0] > '9' {
		return nil
	}
	lp := p.Level(int(name[0] - '0'))
	if lp == nil {
		return nil
	}
	switch name[1:] {
	case "Length":
		return &lp.Length
	case "LengthV":
		return &lp.LengthV
	case "Taper":
		return &lp.Taper
	case "CurveRes":
		return &lp.CurveRes
	case "Curve":
		return &lp.Curve
	case "CurveBack":
		return &lp.CurveBack
	case "CurveV":
		return &lp.CurveV
	case "MeshPoints":
		return &lp.MeshPoints
	}
	return nil
}

// Arbaro parameter names read by [Params.ReadXML]; level names are
// prefixed by their level digit.
var (
	treeNames  = []string{"Levels", "Scale", "ScaleV", "0Scale", "0ScaleV", "Ratio", "Flare", "Lobes", "LobeDepth", "Smooth", "Seed", "RandomSeed"}
	levelNames = []string{"Length", "LengthV", "Taper", "CurveRes", "Curve", "CurveBack", "CurveV", "MeshPoints"}
)

// suggestSimilarity is the minimum similarity of a misspelled name.
const suggestSimilarity = 0.75

// closestName returns the known parameter name most similar to name,
// and whether it is close enough to be a likely misspelling of it.
// A name that is itself known is not a misspelling.
func closestName(name string) (string, bool) {
	cands := slices.Clone(treeNames)
	for lev := range MaxLevels {
		for _, nm := range levelNames {
			cands = append(cands, fmt.Sprintf("%d%s", lev, nm))
		}
	}
	if slices.Contains(cands, name) {
		return "", false
	}
	metric := metrics.NewLevenshtein()
	best, score := "", 0.0
	for _, cand := range cands {
		if s := strutil.Similarity(name, cand, metric); s > score {
			best, score = cand, s
		}
	}
	return best, score >= suggestSimilarity
}
