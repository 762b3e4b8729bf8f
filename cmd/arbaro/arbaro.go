// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command arbaro builds the trunk of a tree from Arbaro parameters and
// writes it as POV-Ray primitives, a ring dump, or a PNG side view.
package main

import (
	"cogentcore.org/core/cli"
)

//go:generate core generate

// Formats are the output formats of the arbaro command.
type Formats int32 //enums:enum

const (
	// POVRay writes cone and sphere statements in a POV-Ray union.
	POVRay Formats = iota

	// Rings writes the cross-section rings of the stem mesh as text.
	Rings

	// PNG renders a side view of the stem.
	PNG
)

// Config is the configuration of the arbaro command.
type Config struct {

	// Params is the parameter file to load (.toml, .yaml, .yml or .xml).
	// The default parameters are used when it is empty.
	Params string `posarg:"0" required:"-"`

	// Output is the output file. POV-Ray, ring and parameter output go
	// to standard output when it is empty; PNG output requires it.
	Output string `flag:"o,output"`

	// Format is the output format.
	Format Formats `flag:"f,format"`

	// Seed overrides the seed of the parameters when it is non-zero.
	Seed int64

	// Variants is the number of trunks to build, each from its own
	// random stream and placed side by side along X.
	Variants int `default:"1" min:"1"`

	// Watch regenerates the output whenever the parameter file changes.
	Watch bool `cmd:"gen" flag:"w,watch"`

	// PNG output options.
	PNG PNGConfig `cmd:"gen"`
}

// PNGConfig are the options of PNG output.
type PNGConfig struct {

	// Width is the width of the image in pixels.
	Width int `default:"512"`

	// Height is the height of the image in pixels.
	Height int `default:"512"`

	// Color is the stem color: a CSS color name or a #rrggbb hex string.
	Color string `default:"sienna"`

	// Background is the background color.
	Background string `default:"white"`

	// Thumbnail, when positive, scales the image down so that its
	// larger side is at most this many pixels.
	Thumbnail int `min:"0"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("arbaro", "Arbaro builds the trunk of a tree from Arbaro parameters.")
	cli.Run(opts, &Config{}, Gen, Info, Export)
}
