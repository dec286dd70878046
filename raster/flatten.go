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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// flatten walks p and calls fn once for every subpath which contains at
// least one drawing command. The vertices passed to fn are in user space,
// with curves replaced by line segments. The slice is reused after fn
// returns.
func (r *Rasterizer) flatten(p path.Path, fn func(pts []vec.Vec2, closed bool)) {
	r.pts = r.pts[:0]
	r.drawn = false

	flush := func(closed bool) {
		if r.drawn && len(r.pts) > 0 {
			fn(r.pts, closed)
		}
		r.pts = r.pts[:0]
		r.drawn = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			r.pts = append(r.pts, pts[0])

		case path.CmdLineTo:
			if len(r.pts) == 0 {
				continue
			}
			r.drawn = true
			r.pts = append(r.pts, pts[0])

		case path.CmdQuadTo:
			if len(r.pts) == 0 {
				continue
			}
			r.drawn = true
			r.flattenQuadratic(r.pts[len(r.pts)-1], pts[0], pts[1])

		case path.CmdCubeTo:
			if len(r.pts) == 0 {
				continue
			}
			r.drawn = true
			r.flattenCubic(r.pts[len(r.pts)-1], pts[0], pts[1], pts[2])

		case path.CmdClose:
			if len(r.pts) == 0 {
				continue
			}
			start := r.pts[0]
			flush(true)
			// drawing may continue from the start of the closed subpath
			r.pts = append(r.pts, start)
		}
	}
	flush(false)
}

// toDevice applies the linear part of the CTM, for tolerance checks.
func (r *Rasterizer) toDevice(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic appends the end points of a polygonal approximation
// of the quadratic Bézier curve p0, p1, p2 to r.pts.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// the deviation from the chord is bounded by |p0 - 2p1 + p2| / 4
	dev := r.toDevice(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		r.pts = append(r.pts, p0.Mul(s*s).Add(p1.Mul(2*s*t)).Add(p2.Mul(t*t)))
	}
}

// flattenCubic appends the end points of a polygonal approximation of the
// cubic Bézier curve p0, p1, p2, p3 to r.pts. The number of segments
// follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.toDevice(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.toDevice(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(n, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.pts = append(r.pts, pt)
	}
}
