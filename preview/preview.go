// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview rasterizes stem primitives into a side view image,
// looking along the Y axis onto the X/Z plane with Z up.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"cogentcore.org/arbaro/prim"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/transform"
	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Canvas collects primitives and renders them as a side view.
// It implements [prim.Sink].
type Canvas struct {

	// size of the image in pixels
	Width, Height int

	// margin around the primitives, as a fraction of the image size
	Margin float32

	// fill color of the stem: a CSS color name or a #rrggbb hex string
	Color string

	// background color: a CSS color name or a #rrggbb hex string
	Background string

	// if positive, EncodePNG scales the image down so that its larger
	// side is at most this many pixels
	Thumbnail int

	prims prim.List
}

// NewCanvas returns a new Canvas of the given size with default colors.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, Margin: 0.05, Color: "sienna", Background: "white"}
}

// AddCone adds a cone to the side view.
func (cv *Canvas) AddCone(c prim.Cone) error {
	return cv.prims.AddCone(c)
}

// AddSphere adds a sphere to the side view.
func (cv *Canvas) AddSphere(s prim.Sphere) error {
	return cv.prims.AddSphere(s)
}

// Len returns the number of collected primitives.
func (cv *Canvas) Len() int {
	return cv.prims.Len()
}

// view maps the X/Z plane onto pixels, keeping the aspect ratio.
type view struct {
	scale  float32
	origin math32.Vector2
	height float32
}

func (vw *view) point(v math32.Vector3) (float64, float64) {
	x := (v.X - vw.origin.X) * vw.scale
	y := vw.height - (v.Z-vw.origin.Y)*vw.scale
	return float64(x), float64(y)
}

func (cv *Canvas) view() *view {
	bb := cv.prims.BBox()
	w, h := float32(cv.Width), float32(cv.Height)
	size := math32.Vec2(bb.Max.X-bb.Min.X, bb.Max.Z-bb.Min.Z)
	avail := math32.Vec2(w*(1-2*cv.Margin), h*(1-2*cv.Margin))
	scale := float32(1)
	if size.X > 0 || size.Y > 0 {
		scale = math32.Min(avail.X/math32.Max(size.X, 1e-6), avail.Y/math32.Max(size.Y, 1e-6))
	}
	// center the primitives
	orig := math32.Vec2(bb.Min.X, bb.Min.Z)
	orig.X -= (w/scale - size.X) / 2
	orig.Y -= (h/scale - size.Y) / 2
	return &view{scale: scale, origin: orig, height: h}
}

// Draw renders the collected primitives into a new context.
// The caller must Close the returned context.
func (cv *Canvas) Draw() (*gg.Context, error) {
	if cv.Width <= 0 || cv.Height <= 0 {
		return nil, errors.New("preview: image size must be positive")
	}
	fg, err := ParseColor(cv.Color)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(cv.Background)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(cv.Width, cv.Height)
	dc.ClearWithColor(gg.FromColor(bg))
	if cv.prims.Len() == 0 {
		return dc, nil
	}
	vw := cv.view()
	dc.SetColor(fg)
	for _, c := range cv.prims.Cones() {
		if err := vw.drawCone(dc, c); err != nil {
			dc.Close()
			return nil, err
		}
	}
	for _, s := range cv.prims.Spheres() {
		x, y := vw.point(s.Center)
		dc.DrawCircle(x, y, float64(s.Radius*vw.scale))
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

// drawCone draws the outline of a cone seen from the side: a
// trapezoid across the projected axis, or a disc when the cone
// points at the viewer.
func (vw *view) drawCone(dc *gg.Context, c prim.Cone) error {
	from := math32.Vec2(c.From.X, c.From.Z)
	to := math32.Vec2(c.To.X, c.To.Z)
	dir := to.Sub(from)
	if dir.Length() < 1e-6 {
		x, y := vw.point(c.From)
		dc.DrawCircle(x, y, float64(math32.Max(c.FromRadius, c.ToRadius)*vw.scale))
		return dc.Fill()
	}
	n := math32.Vec2(-dir.Y, dir.X).Normal()
	corners := []math32.Vector3{
		math32.Vec3(from.X+n.X*c.FromRadius, 0, from.Y+n.Y*c.FromRadius),
		math32.Vec3(to.X+n.X*c.ToRadius, 0, to.Y+n.Y*c.ToRadius),
		math32.Vec3(to.X-n.X*c.ToRadius, 0, to.Y-n.Y*c.ToRadius),
		math32.Vec3(from.X-n.X*c.FromRadius, 0, from.Y-n.Y*c.FromRadius),
	}
	for i, p := range corners {
		x, y := vw.point(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	return dc.Fill()
}

// ParseColor returns the color with the given CSS name, or given as a
// #rgb or #rrggbb hex string.
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		return gg.Hex(s).Color(), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("preview: unknown color %q", s)
}

// Image renders the collected primitives and returns the image.
func (cv *Canvas) Image() (image.Image, error) {
	dc, err := cv.Draw()
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders the collected primitives and writes them as PNG,
// scaled down to [Canvas.Thumbnail] when it is set.
func (cv *Canvas) EncodePNG(w io.Writer) error {
	if cv.Thumbnail > 0 {
		img, err := cv.ScaledImage(cv.Thumbnail)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	}
	dc, err := cv.Draw()
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// ScaledImage renders the collected primitives and scales the image
// so that its larger side is at most maxSize pixels.
func (cv *Canvas) ScaledImage(maxSize int) (image.Image, error) {
	if maxSize <= 0 {
		return nil, errors.New("preview: image size must be positive")
	}
	img, err := cv.Image()
	if err != nil {
		return nil, err
	}
	sz := img.Bounds().Size()
	var tsz image.Point
	if sz.X > sz.Y {
		tsz = image.Pt(maxSize, max(sz.Y*maxSize/sz.X, 1))
	} else {
		tsz = image.Pt(max(sz.X*maxSize/sz.Y, 1), maxSize)
	}
	if tsz.X >= sz.X {
		return img, nil
	}
	return transform.Resize(img, tsz.X, tsz.Y, transform.Linear), nil
}
