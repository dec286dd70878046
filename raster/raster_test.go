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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// polyline builds a path through the given points.
func polyline(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, pt := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{pt}) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// grid collects emitted coverage into a dense w×h array.
type grid struct {
	w, h int
	pix  []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	copy(g.pix[y*g.w+xMin:], coverage)
}

func (g *grid) at(x, y int) float32 {
	return g.pix[y*g.w+x]
}

func (g *grid) total() float64 {
	var sum float64
	for _, c := range g.pix {
		sum += float64(c)
	}
	return sum
}

func clipRect(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	g := newGrid(10, 1)
	r := NewRasterizer(clipRect(10, 1))
	r.FillNonZero(polyline(true, pt(0, 0), pt(10, 0), pt(10, 1)), g.emit)

	const epsilon = 1e-6
	for x := range 10 {
		want := float32(2*x+1) / 20
		if got := g.at(x, 0); math.Abs(float64(got-want)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, want, got)
		}
	}
}

func TestFillSquare(t *testing.T) {
	g := newGrid(8, 8)
	r := NewRasterizer(clipRect(8, 8))
	r.FillNonZero(polyline(true, pt(2, 2), pt(6, 2), pt(6, 6), pt(2, 6)), g.emit)

	for y := range 8 {
		for x := range 8 {
			var want float32
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 1
			}
			if got := g.at(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestFillRules(t *testing.T) {
	ring := func(yield func(path.Command, []vec.Vec2) bool) {
		outer := polyline(true, pt(0, 0), pt(8, 0), pt(8, 8), pt(0, 8))
		inner := polyline(true, pt(2, 2), pt(6, 2), pt(6, 6), pt(2, 6))
		for cmd, pts := range outer {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range inner {
			if !yield(cmd, pts) {
				return
			}
		}
	}

	cases := []struct {
		rule FillRule
		hole float32
	}{
		{NonZero, 1},
		{EvenOdd, 0},
	}
	for _, tc := range cases {
		g := newGrid(8, 8)
		r := NewRasterizer(clipRect(8, 8))
		r.Fill(ring, tc.rule, g.emit)
		if got := g.at(4, 4); got != tc.hole {
			t.Errorf("rule %d: center coverage %g, want %g", tc.rule, got, tc.hole)
		}
		if got := g.at(1, 1); got != 1 {
			t.Errorf("rule %d: ring coverage %g, want 1", tc.rule, got)
		}
	}
}

func TestFillClippedLeft(t *testing.T) {
	g := newGrid(4, 2)
	r := NewRasterizer(clipRect(4, 2))
	r.FillNonZero(polyline(true, pt(-5, 0), pt(3, 0), pt(3, 2), pt(-5, 2)), g.emit)

	for y := range 2 {
		for x := range 4 {
			want := float32(1)
			if x == 3 {
				want = 0
			}
			if got := g.at(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestFillCTM(t *testing.T) {
	// unit square scaled by 4 and moved to (2,2), y axis flipped
	g := newGrid(8, 8)
	r := NewRasterizer(clipRect(8, 8))
	r.CTM = matrix.Matrix{4, 0, 0, -4, 2, 6}
	r.FillNonZero(polyline(true, pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)), g.emit)

	if got := g.total(); math.Abs(got-16) > 1e-4 {
		t.Errorf("total coverage %g, want 16", got)
	}
	if got := g.at(2, 2); got != 1 {
		t.Errorf("pixel (2,2): got %g, want 1", got)
	}
}

func TestFillCircleArea(t *testing.T) {
	const k = 0.5522847498
	cx, cy, rad := 16.0, 16.0, 10.0
	circle := func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+rad, cy)}) {
			return
		}
		corners := [][3]vec.Vec2{
			{pt(cx+rad, cy+k*rad), pt(cx+k*rad, cy+rad), pt(cx, cy+rad)},
			{pt(cx-k*rad, cy+rad), pt(cx-rad, cy+k*rad), pt(cx-rad, cy)},
			{pt(cx-rad, cy-k*rad), pt(cx-k*rad, cy-rad), pt(cx, cy-rad)},
			{pt(cx+k*rad, cy-rad), pt(cx+rad, cy-k*rad), pt(cx+rad, cy)},
		}
		for _, c := range corners {
			if !yield(path.CmdCubeTo, c[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}

	g := newGrid(32, 32)
	r := NewRasterizer(clipRect(32, 32))
	r.Flatness = 0.05
	r.FillNonZero(circle, g.emit)

	want := math.Pi * rad * rad
	if got := g.total(); math.Abs(got-want)/want > 0.01 {
		t.Errorf("circle area %g, want %g", got, want)
	}
}
