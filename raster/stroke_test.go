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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func TestStrokeCaps(t *testing.T) {
	// a horizontal line of length 16, stroked with width 4
	line := polyline(false, pt(8, 8), pt(24, 8))
	const body = 16 * 4

	cases := []struct {
		cap      graphics.LineCapStyle
		min, max float64
	}{
		{graphics.LineCapButt, body, body},
		{graphics.LineCapSquare, body + 16, body + 16},
		// round caps are flattened, so they lose a little area
		{graphics.LineCapRound, body + 0.85*4*math.Pi, body + 4*math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			g := newGrid(32, 16)
			r := NewRasterizer(clipRect(32, 16))
			r.Width = 4
			r.Cap = tc.cap
			r.Stroke(line, g.emit)

			got := g.total()
			if got < tc.min-1e-3 || got > tc.max+1e-3 {
				t.Errorf("total coverage %g, want in [%g, %g]", got, tc.min, tc.max)
			}
		})
	}
}

func TestStrokeSquareJoins(t *testing.T) {
	square := polyline(true, pt(4, 4), pt(12, 4), pt(12, 12), pt(4, 12))

	cases := []struct {
		join graphics.LineJoinStyle
		want float64
	}{
		// outer 10×10 minus inner 6×6
		{graphics.LineJoinMiter, 64},
		// each corner loses half a pixel
		{graphics.LineJoinBevel, 62},
	}
	for _, tc := range cases {
		t.Run(tc.join.String(), func(t *testing.T) {
			g := newGrid(16, 16)
			r := NewRasterizer(clipRect(16, 16))
			r.Width = 2
			r.Join = tc.join
			r.Stroke(square, g.emit)

			if got := g.total(); math.Abs(got-tc.want) > 1e-3 {
				t.Errorf("total coverage %g, want %g", got, tc.want)
			}
			if got := g.at(8, 8); got != 0 {
				t.Errorf("inside of the square is painted: %g", got)
			}
			if got := g.at(8, 4); got != 1 {
				t.Errorf("stroke pixel (8,4): got %g, want 1", got)
			}
		})
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	// a very sharp corner; the miter would be far longer than the limit
	sharp := polyline(false, pt(2, 10), pt(30, 12), pt(2, 14))

	g := newGrid(40, 24)
	r := NewRasterizer(clipRect(40, 24))
	r.Width = 2
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = 2
	r.Stroke(sharp, g.emit)

	for x := 33; x < 40; x++ {
		for y := range 24 {
			if got := g.at(x, y); got != 0 {
				t.Fatalf("miter not clipped: pixel (%d,%d) = %g", x, y, got)
			}
		}
	}
}

func TestStrokeDot(t *testing.T) {
	dot := func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(8, 8)}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{pt(8, 8)})
	}

	for _, style := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound} {
		g := newGrid(16, 16)
		r := NewRasterizer(clipRect(16, 16))
		r.Width = 6
		r.Cap = style
		r.Stroke(dot, g.emit)

		got := g.total()
		if style == graphics.LineCapRound {
			want := 9 * math.Pi
			if got < 0.85*want || got > want {
				t.Errorf("round dot area %g, want about %g", got, want)
			}
		} else if got != 0 {
			t.Errorf("butt dot painted %g pixels", got)
		}
	}
}

func TestStrokeMoveOnly(t *testing.T) {
	moveOnly := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdMoveTo, []vec.Vec2{pt(8, 8)})
	}

	g := newGrid(16, 16)
	r := NewRasterizer(clipRect(16, 16))
	r.Width = 6
	r.Cap = graphics.LineCapRound
	r.Stroke(moveOnly, g.emit)
	if got := g.total(); got != 0 {
		t.Errorf("lone MoveTo painted %g pixels", got)
	}
}
