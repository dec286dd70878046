// seehuhn.de/go/gauge - instrument cluster gauge renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas provides an RGBA drawing surface with a user coordinate
// system centered on the image, the way a plotting library sets up a
// figure with equal aspect ratio.
//
// Line widths, marker sizes and font sizes are given in points
// (1/72 inch) and scale with the resolution. Positions and radii are given
// in user units.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge/raster"
)

// Options describes the size and coordinate system of a canvas.
type Options struct {
	SizeInches float64 // width and height of the square image
	DPI        float64 // resolution in pixels per inch

	// Extent is the distance, in user units, from the center of the image
	// to each of its edges.
	Extent float64

	Background color.Color // nil means white
}

// Canvas is a square RGBA image with a centered user coordinate system,
// x pointing right and y pointing up.
type Canvas struct {
	img   *image.RGBA
	ras   *raster.Rasterizer
	dpi   float64
	scale float64 // pixels per user unit
	faces map[faceKey]font.Face
}

// New allocates a canvas and fills it with the background color.
func New(opts Options) (*Canvas, error) {
	if opts.SizeInches <= 0 || opts.DPI <= 0 {
		return nil, errors.Errorf("invalid canvas size %gin at %g dpi", opts.SizeInches, opts.DPI)
	}
	if opts.Extent <= 0 {
		return nil, errors.Errorf("invalid canvas extent %g", opts.Extent)
	}

	size := int(math.Round(opts.SizeInches * opts.DPI))
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	r, g, b, a := bg.RGBA()
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = uint8(r >> 8)
		img.Pix[i+1] = uint8(g >> 8)
		img.Pix[i+2] = uint8(b >> 8)
		img.Pix[i+3] = uint8(a >> 8)
	}

	half := float64(size) / 2
	scale := half / opts.Extent
	ras := raster.NewRasterizer(rect.Rect{URx: float64(size), URy: float64(size)})
	ras.CTM = matrix.Matrix{scale, 0, 0, -scale, half, half}

	c := &Canvas{
		img:   img,
		ras:   ras,
		dpi:   opts.DPI,
		scale: scale,
		faces: make(map[faceKey]font.Face),
	}
	return c, nil
}

// Image returns the underlying image. The canvas keeps drawing into it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Points converts a length in points into user units.
func (c *Canvas) Points(pt float64) float64 {
	return pt * c.dpi / 72 / c.scale
}

// ToDevice maps a point in user space to pixel coordinates.
func (c *Canvas) ToDevice(p vec.Vec2) (x, y float64) {
	m := c.ras.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

// painter returns an emit callback which composites col, with the given
// opacity, over the image. The opacity is clamped to [0, 1].
func (c *Canvas) painter(col color.Color, alpha float64) raster.EmitFunc {
	r, g, b, a := col.RGBA()
	src := [4]float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff}
	opacity := float32(min(max(alpha, 0), 1))

	return func(y, xMin int, coverage []float32) {
		row := c.img.Pix[y*c.img.Stride+4*xMin:]
		for i, cov := range coverage {
			k := cov * opacity
			if k <= 0 {
				continue
			}
			px := row[4*i : 4*i+4]
			keep := 1 - src[3]*k
			for j := range 4 {
				v := 255*src[j]*k + float32(px[j])*keep
				px[j] = uint8(min(max(v+0.5, 0), 255))
			}
		}
	}
}
