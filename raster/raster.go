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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Paths are given in user space and mapped to device space by the CTM.
// Coverage is computed exactly for the flattened polygon: every edge
// deposits its signed vertical extent ("cover") and the part of each pixel
// lying to its right ("area") into per-row buffers, and a left-to-right
// prefix sum turns these into the fraction of each pixel inside the shape.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row, starting at column xMin.
// The coverage slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasterizer turns fill and stroke operations into coverage rows.
// Buffers are kept between calls, so a single Rasterizer should be reused
// for all paths drawn onto one surface.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon which replaces it.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap selects the shape drawn at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join selects the shape drawn where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the
	// stroke width. Longer miters are drawn as bevels.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// device space bounding box of edges
	hasBox       bool
	boxX0, boxX1 float64
	boxY0, boxY1 float64

	pts   []vec.Vec2 // flattened vertices of the current subpath
	poly  []vec.Vec2 // scratch polygon for stroke pieces
	drawn bool       // current subpath has a drawing command
}

// NewRasterizer returns a Rasterizer for the given clip rectangle,
// with PDF default values for all stroke parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// FillRule decides which points are inside a self-overlapping path.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p path.Path, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// Fill fills p using the given rule. Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p path.Path, rule FillRule, emit EmitFunc) {
	r.resetEdges()
	r.flatten(p, func(pts []vec.Vec2, _ bool) {
		r.addPolygon(pts)
	})
	r.scan(rule, emit)
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.hasBox = false
}

// addPolygon adds the closed polygon through pts.
func (r *Rasterizer) addPolygon(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.addEdge(pts[i-1], pts[i])
	}
	r.addEdge(pts[len(pts)-1], pts[0])
}

// addEdge adds the user space segment a-b.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.hasBox {
		r.boxX0, r.boxX1 = min(x0, x1), max(x0, x1)
		r.boxY0, r.boxY1 = min(y0, y1), max(y0, y1)
		r.hasBox = true
		return
	}
	r.boxX0 = min(r.boxX0, x0, x1)
	r.boxX1 = max(r.boxX1, x0, x1)
	r.boxY0 = min(r.boxY0, y0, y1)
	r.boxY1 = max(r.boxY1, y0, y1)
}

// scan converts the collected edges into coverage rows.
func (r *Rasterizer) scan(rule FillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.boxX0)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.boxX1))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.boxY0)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.boxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		rowTop, rowBot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].top() < rowBot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= rowTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == NonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate deposits the part of e inside pixel row y.
// It reports whether anything was deposited.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.top())
	bot := min(float64(y+1), e.bottom())
	if bot <= top {
		return false
	}

	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	lo, hi := min(xa, xb), max(xa, xb)
	first := int(math.Floor(lo))
	last := int(math.Floor(hi))
	dy := bot - top

	if first >= xMax {
		return false
	}
	if first == last || last < xMin {
		r.deposit(first, dir*float32(dy), (lo+hi)/2, xMin, xMax)
		return true
	}

	// split at pixel column boundaries
	slope := dy / (hi - lo)
	for col := first; col <= last && col < xMax; col++ {
		xl := max(lo, float64(col))
		xr := min(hi, float64(col+1))
		if xr <= xl {
			continue
		}
		r.deposit(col, dir*float32((xr-xl)*slope), (xl+xr)/2, xMin, xMax)
	}
	return true
}

// deposit adds a piece of edge with vertical extent c, crossing pixel
// column col at horizontal position xMid.
func (r *Rasterizer) deposit(col int, c float32, xMid float64, xMin, xMax int) {
	if col < xMin {
		// everything to the right of the clip edge is covered
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if col >= xMax {
		return
	}
	i := col - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-(xMid-float64(col)))
}

// integrateNonZero turns cover/area into coverage, in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns cover/area into coverage, in place in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips zero coverage from both ends of row.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript: joins sharper than
	// about 11.5 degrees are beveled.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent, in device
	// pixels, of an edge which contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroke segment in user space.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the cross product of unit tangents below
	// which two segments are treated as collinear.
	collinearityThreshold = 1e-6
)
