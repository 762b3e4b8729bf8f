// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/arbaro/mesh"
	"cogentcore.org/arbaro/params"
	"cogentcore.org/arbaro/povray"
	"cogentcore.org/arbaro/preview"
	"cogentcore.org/arbaro/prim"
	"cogentcore.org/arbaro/transform"
	"cogentcore.org/arbaro/tree"
	"cogentcore.org/core/base/errors"
	"github.com/mitchellh/go-homedir"
)

// Gen builds the trunks and writes them in the configured format.
func Gen(c *Config) error { //cli:cmd -root
	if c.Watch {
		return watch(c)
	}
	return generate(c)
}

func generate(c *Config) error {
	par, stems, err := build(c)
	if err != nil {
		return err
	}
	output, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	switch c.Format {
	case POVRay:
		lists, perr := primitives(stems)
		if perr != nil {
			return perr
		}
		err = writeTo(output, func(w io.Writer) error {
			pw := povray.NewWriter(w)
			for i, st := range stems {
				if err := pw.WriteUnion(unionName(par, st), st.Level.Level, lists[i].EmitTo); err != nil {
					return err
				}
			}
			return pw.Flush()
		})
	case Rings:
		ms := &mesh.Mesh{}
		for _, st := range stems {
			if err := st.AddToMesh(ms.NewPart(st.Name, st.Level.Level)); err != nil {
				return err
			}
		}
		err = writeTo(output, func(w io.Writer) error {
			_, err := ms.WriteTo(w)
			return err
		})
	case PNG:
		if output == "" {
			return errors.New("arbaro: PNG output requires an output file")
		}
		lists, perr := primitives(stems)
		if perr != nil {
			return perr
		}
		cv := preview.NewCanvas(c.PNG.Width, c.PNG.Height)
		cv.Color = c.PNG.Color
		cv.Background = c.PNG.Background
		cv.Thumbnail = c.PNG.Thumbnail
		for _, ls := range lists {
			if err := ls.EmitTo(cv); err != nil {
				return err
			}
		}
		err = writeTo(output, cv.EncodePNG)
	default:
		return fmt.Errorf("arbaro: unknown format %v", c.Format)
	}
	if err != nil {
		return err
	}
	slog.Info("arbaro: generated", "name", par.Name, "format", c.Format, "stems", len(stems), "output", output)
	return nil
}

// primitives returns the primitives of each stem.
func primitives(stems []*tree.Stem) ([]*prim.List, error) {
	lists := make([]*prim.List, len(stems))
	for i, st := range stems {
		lists[i] = &prim.List{}
		if err := st.Primitives(lists[i]); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

// Info builds the trunks and prints statistics about their segments,
// meshes and primitives.
func Info(c *Config) error {
	_, stems, err := build(c)
	if err != nil {
		return err
	}
	ms := &mesh.Mesh{}
	for _, st := range stems {
		if err := printInfo(os.Stdout, st, ms.NewPart(st.Name, st.Level.Level)); err != nil {
			return err
		}
	}
	return printTotals(os.Stdout, ms)
}

// Export writes the effective parameters, after loading and
// overrides, as TOML. It converts Arbaro XML species files.
func Export(c *Config) error {
	par, err := loadParams(c)
	if err != nil {
		return err
	}
	output, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	if output != "" {
		return par.Save(output)
	}
	return par.WriteTOML(os.Stdout)
}

// printInfo adds the stem to part and prints its statistics.
func printInfo(w io.Writer, st *tree.Stem, part *mesh.Part) error {
	if err := st.AddToMesh(part); err != nil {
		return err
	}
	ls := &prim.List{}
	if err := st.Primitives(ls); err != nil {
		return err
	}
	var length float32
	for _, c := range ls.Cones() {
		length += c.Length()
	}
	bb := part.BBox()
	fmt.Fprintf(w, "stem %s level %d length %g base radius %g\n", st.Name, st.Level.Level, st.Length, st.BaseRadius)
	for _, sg := range st.Segments() {
		ss := sg.Samples()
		fmt.Fprintf(w, "segment %d %v samples %d radius %g..%g end %v\n", sg.Index, sg.Subdivision(), len(ss), sg.StartRadius, sg.EndRadius, ss[len(ss)-1].Pos)
	}
	caps := 0
	for _, sc := range part.Sections {
		if sc.IsCap() {
			caps++
		}
	}
	fmt.Fprintf(w, "mesh sections %d points %d caps %d base %v\n", part.Len(), part.NumPoints(), caps, part.First().Center())
	fmt.Fprintf(w, "bounds %v %v\n", bb.Min, bb.Max)
	_, err := fmt.Fprintf(w, "primitives cones %d spheres %d cone length %g\n", len(ls.Cones()), len(ls.Spheres()), length)
	return err
}

// printTotals prints the totals over all parts of the mesh.
func printTotals(w io.Writer, ms *mesh.Mesh) error {
	bb := ms.BBox()
	_, err := fmt.Fprintf(w, "total parts %d sections %d points %d bounds %v %v\n", len(ms.Parts), ms.NumSections(), ms.NumPoints(), bb.Min, bb.Max)
	return err
}

// unionName returns the POV-Ray name of the stem, prefixed by the
// species name when there is one.
func unionName(par *params.Params, st *tree.Stem) string {
	if par.Name == "" {
		return st.Name
	}
	return par.Name + "_" + st.Name
}

// loadParams loads the parameters and applies the overrides.
func loadParams(c *Config) (*params.Params, error) {
	par := params.NewParams()
	if c.Params != "" {
		fn, err := homedir.Expand(c.Params)
		if err != nil {
			return nil, err
		}
		par, err = params.OpenFile(fn)
		if err != nil {
			return nil, err
		}
	}
	if c.Seed != 0 {
		par.Seed = c.Seed
	}
	return par, par.Validate()
}

// variantSpin is the turn of each trunk variant about its own axis
// relative to the previous one, in degrees: the golden angle.
const variantSpin = 137.5

// build loads the parameters and makes the trunk variants. Variant i
// draws from random stream i, stands Scale/2 * i along X and is turned
// by i * variantSpin about its axis.
func build(c *Config) (*params.Params, []*tree.Stem, error) {
	par, err := loadParams(c)
	if err != nil {
		return nil, nil, err
	}
	n := max(c.Variants, 1)
	stems := make([]*tree.Stem, n)
	for i := range n {
		st, err := tree.NewTrunk(par, par.NewRandom(i))
		if err != nil {
			return nil, nil, err
		}
		if i > 0 {
			st.Name = fmt.Sprintf("%s_%d", st.Name, i)
			st.Frame = transform.Identity().MoveOnAxis(1, 0, 0, float32(i)*par.Scale/2).RotateZ(float32(i) * variantSpin)
		}
		stems[i] = st
	}
	if err := tree.MakeAll(context.Background(), stems...); err != nil {
		return nil, nil, err
	}
	slog.Debug("arbaro: built trunks", "name", par.Name, "count", n)
	return par, stems, nil
}

// writeTo calls write with the named file, or standard output when
// the name is empty.
func writeTo(filename string, write func(w io.Writer) error) error {
	if filename == "" {
		return write(os.Stdout)
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = write(fp)
	return errors.Join(err, fp.Close())
}
