// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"cogentcore.org/arbaro/prim"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isWhite(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestEmpty(t *testing.T) {
	cv := NewCanvas(40, 30)
	img, err := cv.Image()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
	assert.True(t, isWhite(img, 20, 15))

	cv.Width = 0
	_, err = cv.Image()
	assert.Error(t, err)
}

func TestCone(t *testing.T) {
	cv := NewCanvas(100, 100)
	require.NoError(t, cv.AddCone(prim.Cone{From: math32.Vec3(0, 0, 0), FromRadius: 1, To: math32.Vec3(0, 0, 10), ToRadius: 0.5}))
	require.NoError(t, cv.AddSphere(prim.Sphere{Center: math32.Vec3(0, 0, 10), Radius: 0.5}))
	assert.Equal(t, 2, cv.Len())

	img, err := cv.Image()
	require.NoError(t, err)
	// the stem runs up the middle of the image
	assert.False(t, isWhite(img, 50, 46))
	assert.True(t, isWhite(img, 2, 2))
	assert.True(t, isWhite(img, 97, 50))
}

func TestConeTowardViewer(t *testing.T) {
	cv := NewCanvas(50, 50)
	require.NoError(t, cv.AddCone(prim.Cone{From: math32.Vec3(0, 0, 0), FromRadius: 1, To: math32.Vec3(0, 3, 0), ToRadius: 1}))
	img, err := cv.Image()
	require.NoError(t, err)
	assert.False(t, isWhite(img, 25, 25))
}

func TestEncodePNG(t *testing.T) {
	cv := NewCanvas(64, 48)
	require.NoError(t, cv.AddCone(prim.Cone{From: math32.Vec3(0, 0, 0), FromRadius: 1, To: math32.Vec3(1, 0, 5), ToRadius: 0.2}))
	var b bytes.Buffer
	require.NoError(t, cv.EncodePNG(&b))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("White")
	require.NoError(t, err)
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})

	c, err = ParseColor("#ff0000")
	require.NoError(t, err)
	r, g, b, _ = c.RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})

	_, err = ParseColor("barky")
	assert.Error(t, err)

	cv := NewCanvas(10, 10)
	cv.Color = "barky"
	_, err = cv.Image()
	assert.Error(t, err)
}

func TestScaledImage(t *testing.T) {
	cv := NewCanvas(200, 100)
	require.NoError(t, cv.AddSphere(prim.Sphere{Radius: 1}))
	img, err := cv.ScaledImage(50)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 25), img.Bounds())

	img, err = cv.ScaledImage(400)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 100), img.Bounds())

	_, err = cv.ScaledImage(0)
	assert.Error(t, err)
}

func TestEncodeThumbnail(t *testing.T) {
	cv := NewCanvas(200, 100)
	cv.Thumbnail = 50
	require.NoError(t, cv.AddCone(prim.Cone{From: math32.Vec3(0, 0, 0), FromRadius: 1, To: math32.Vec3(0, 0, 5), ToRadius: 0.5}))
	var b bytes.Buffer
	require.NoError(t, cv.EncodePNG(&b))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 25), img.Bounds())
	assert.False(t, isWhite(img, 25, 12))
}
