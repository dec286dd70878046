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

package canvas

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke describes how lines are drawn.
type Stroke struct {
	Color color.Color
	Width float64 // in points
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
}

func (c *Canvas) setStroke(s Stroke) {
	c.ras.Width = c.Points(s.Width)
	c.ras.Cap = s.Cap
	c.ras.Join = s.Join
}

// Line draws the segment from p0 to p1.
func (c *Canvas) Line(p0, p1 vec.Vec2, s Stroke) {
	var b pathBuilder
	b.moveTo(p0)
	b.lineTo(p1)

	c.setStroke(s)
	c.ras.Stroke(b.path(), c.painter(s.Color, 1))
}

// Circle draws the outline of a circle.
func (c *Canvas) Circle(center vec.Vec2, radius float64, s Stroke) {
	var b pathBuilder
	b.arc(center, radius, 0, 2*math.Pi)
	b.close()

	c.setStroke(s)
	c.ras.Stroke(b.path(), c.painter(s.Color, 1))
}

// Dot draws a filled circle with the given diameter in points,
// like a plot marker.
func (c *Canvas) Dot(center vec.Vec2, diameter float64, col color.Color) {
	var b pathBuilder
	b.arc(center, c.Points(diameter)/2, 0, 2*math.Pi)
	b.close()

	c.ras.FillNonZero(b.path(), c.painter(col, 1))
}

// Wedge fills the part of a ring between the angles theta1 and theta2,
// given in degrees and measured counter-clockwise from the positive x axis.
// The ring has outer radius r and extends inwards by width. If width is
// zero or at least r, the wedge is a full pie slice.
//
// The wedge is swept counter-clockwise from theta1 to theta2, so callers
// normally pass theta1 <= theta2. Alpha values outside [0, 1] are clamped.
func (c *Canvas) Wedge(center vec.Vec2, r, width, theta1, theta2 float64, col color.Color, alpha float64) {
	a1 := theta1 * math.Pi / 180
	a2 := theta2 * math.Pi / 180

	var b pathBuilder
	b.arc(center, r, a1, a2)
	if width <= 0 || width >= r {
		b.lineTo(center)
	} else {
		b.arc(center, r-width, a2, a1)
	}
	b.close()

	c.ras.FillNonZero(b.path(), c.painter(col, alpha))
}

// pathBuilder collects path commands for the rasterizer.
type pathBuilder struct {
	cmds []path.Command
	args [][]vec.Vec2
}

func (b *pathBuilder) add(cmd path.Command, pts ...vec.Vec2) {
	b.cmds = append(b.cmds, cmd)
	b.args = append(b.args, pts)
}

func (b *pathBuilder) moveTo(p vec.Vec2) { b.add(path.CmdMoveTo, p) }
func (b *pathBuilder) lineTo(p vec.Vec2) { b.add(path.CmdLineTo, p) }
func (b *pathBuilder) close()            { b.add(path.CmdClose) }

// arc appends a circular arc from angle a1 to a2 (radians), made of cubic
// Bézier curves spanning at most 90 degrees each. The arc starts a new
// subpath if the builder is empty and is connected by a line otherwise.
func (b *pathBuilder) arc(center vec.Vec2, r, a1, a2 float64) {
	at := func(a float64) vec.Vec2 {
		return vec.Vec2{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	tangent := func(a float64) vec.Vec2 {
		return vec.Vec2{X: -math.Sin(a), Y: math.Cos(a)}
	}

	if len(b.cmds) == 0 {
		b.moveTo(at(a1))
	} else {
		b.lineTo(at(a1))
	}

	n := max(1, int(math.Ceil(math.Abs(a2-a1)/(math.Pi/2)-1e-9)))
	step := (a2 - a1) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r
	for i := range n {
		s := a1 + float64(i)*step
		e := s + step
		p0, p3 := at(s), at(e)
		b.add(path.CmdCubeTo,
			p0.Add(tangent(s).Mul(k)),
			p3.Sub(tangent(e).Mul(k)),
			p3)
	}
}

func (b *pathBuilder) path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, cmd := range b.cmds {
			if !yield(cmd, b.args[i]) {
				return
			}
		}
	}
}
