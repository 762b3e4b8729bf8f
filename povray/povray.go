// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package povray writes stem primitives as POV-Ray scene description
// code. POV-Ray is y-up, so the y and z coordinates are swapped on
// output.
package povray

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/arbaro/prim"
	"cogentcore.org/core/base/indent"
	"cogentcore.org/core/math32"
)

// Writer writes primitives as POV-Ray cone and sphere statements.
// It implements [prim.Sink]. Call [Writer.Flush] when done.
type Writer struct {

	// branching level of the primitives being written, which sets
	// their indentation
	Level int

	bw *bufio.Writer
}

// NewWriter returns a new Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// indentWidth is the number of spaces per indentation step.
const indentWidth = 2

func (pw *Writer) prefix() string {
	return indent.Spaces(pw.Level+2, indentWidth)
}

// AddCone writes a cone statement.
func (pw *Writer) AddCone(c prim.Cone) error {
	_, err := fmt.Fprintf(pw.bw, "%scone   { %s, %s, %s, %s }\n", pw.prefix(),
		Vector(c.From), Float(c.FromRadius), Vector(c.To), Float(c.ToRadius))
	return err
}

// AddSphere writes a sphere statement.
func (pw *Writer) AddSphere(s prim.Sphere) error {
	_, err := fmt.Fprintf(pw.bw, "%ssphere { %s, %s }\n", pw.prefix(), Vector(s.Center), Float(s.Radius))
	return err
}

// WriteUnion writes the primitives emitted by emit as a named union
// at the given level:
//
//	  #declare name = union {
//	    cone   { ... }
//	  }
func (pw *Writer) WriteUnion(name string, level int, emit func(sink prim.Sink) error) error {
	pw.Level = level
	hdr := indent.Spaces(level+1, indentWidth)
	if _, err := fmt.Fprintf(pw.bw, "%s#declare %s = union {\n", hdr, Identifier(name)); err != nil {
		return err
	}
	if err := emit(pw); err != nil {
		return fmt.Errorf("povray: union %q: %w", name, err)
	}
	_, err := fmt.Fprintf(pw.bw, "%s}\n", hdr)
	return err
}

// Flush writes any buffered output to the underlying writer.
func (pw *Writer) Flush() error {
	return pw.bw.Flush()
}

// Float formats v with at most five decimals and no trailing zeros.
func Float(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', 5, 32)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Vector formats v as a POV-Ray vector, swapping y and z.
func Vector(v math32.Vector3) string {
	return "<" + Float(v.X) + "," + Float(v.Z) + "," + Float(v.Y) + ">"
}

// Identifier returns name as a valid POV-Ray identifier: letters,
// digits and underscores, not starting with a digit.
func Identifier(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
