// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"

	"cogentcore.org/core/math32"
)

// countWriter counts the bytes written through it.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes a plain text listing of the part: one line per
// section with its point count and normal hint, followed by its
// points. The format is stable, for diffing generated geometry.
func (pt *Part) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	bw := bufio.NewWriter(cw)
	fmt.Fprintf(bw, "part %q level %d sections %d points %d\n", pt.Name, pt.Level, pt.Len(), pt.NumPoints())
	for i, sc := range pt.Sections {
		fmt.Fprintf(bw, "section %d points %d", i, sc.Len())
		if sc.HasNormal {
			fmt.Fprintf(bw, " normal %s", formatVector(sc.Normal))
		}
		if sc.Base {
			fmt.Fprint(bw, " base")
		}
		fmt.Fprintln(bw)
		for _, p := range sc.Points {
			fmt.Fprintf(bw, "  %s\n", formatVector(p))
		}
	}
	err := bw.Flush()
	return cw.n, err
}

// WriteTo writes all parts of the mesh, see [Part.WriteTo].
func (ms *Mesh) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, pt := range ms.Parts {
		n, err := pt.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func formatVector(v math32.Vector3) string {
	return fmt.Sprintf("%.5f %.5f %.5f", v.X, v.Y, v.Z)
}
