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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
//
// The stroke is assembled from simple pieces: one quadrilateral per
// segment, one polygon per join and one per cap. All pieces are given the
// same orientation and filled together with the nonzero rule, so that
// overlaps are painted once.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.resetEdges()
	d := r.Width / 2
	r.flatten(p, func(pts []vec.Vec2, closed bool) {
		r.strokeSubpath(pts, closed, d)
	})
	r.scan(NonZero, emit)
}

// strokeSubpath adds the pieces for one flattened subpath.
// The vertex slice is modified.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	// drop zero-length segments
	v := pts[:1]
	for _, pt := range pts[1:] {
		if pt.Sub(v[len(v)-1]).Length() >= zeroLengthThreshold {
			v = append(v, pt)
		}
	}
	if closed && len(v) > 2 && v[len(v)-1].Sub(v[0]).Length() < zeroLengthThreshold {
		v = v[:len(v)-1]
	}

	if len(v) < 2 {
		// a subpath without direction only shows up with round caps
		if r.Cap == graphics.LineCapRound {
			r.poly = r.poly[:0]
			r.addArc(v[0], d, vec.Vec2{X: 1}, 2*math.Pi)
			r.addPiece()
		}
		return
	}

	n := len(v) - 1 // number of segments
	if closed {
		n++
	}
	seg := func(i int) (a, b vec.Vec2) {
		return v[i%len(v)], v[(i+1)%len(v)]
	}

	for i := range n {
		a, b := seg(i)
		t := unit(b.Sub(a))
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.poly = append(r.poly[:0], a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
		r.addPiece()
	}

	// joins between consecutive segments
	for i := range n {
		if !closed && i == n-1 {
			break
		}
		a, b := seg(i)
		_, c := seg(i + 1)
		r.addJoin(b, unit(b.Sub(a)), unit(c.Sub(b)), d)
	}

	if !closed {
		a, b := seg(0)
		r.addCap(a, unit(a.Sub(b)), d)
		a, b = seg(n - 1)
		r.addCap(b, unit(b.Sub(a)), d)
	}
}

// addJoin adds the join at corner P between segments with unit tangents
// t1 (incoming) and t2 (outgoing).
func (r *Rasterizer) addJoin(P, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	// the join fills the gap on the outer side of the turn
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)
	turn := math.Atan2(cross, dot)

	r.poly = append(r.poly[:0], P, P.Add(n1.Mul(d)))
	switch r.Join {
	case graphics.LineJoinRound:
		r.poly = r.poly[:1]
		r.addArc(P, d, n1, turn)
	case graphics.LineJoinMiter:
		ratio := 1 / math.Cos(turn/2)
		if ratio <= r.MiterLimit && !math.IsInf(ratio, 0) {
			tip := unit(n1.Add(n2)).Mul(d * ratio)
			r.poly = append(r.poly, P.Add(tip))
		}
		r.poly = append(r.poly, P.Add(n2.Mul(d)))
	default: // bevel
		r.poly = append(r.poly, P.Add(n2.Mul(d)))
	}
	r.addPiece()
}

// addCap adds the cap at end point P, where t is the unit tangent
// pointing away from the line.
func (r *Rasterizer) addCap(P, t vec.Vec2, d float64) {
	nrm := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := t.Mul(d)
		r.poly = append(r.poly[:0],
			P.Add(nrm.Mul(d)),
			P.Add(nrm.Mul(d)).Add(ext),
			P.Sub(nrm.Mul(d)).Add(ext),
			P.Sub(nrm.Mul(d)))
		r.addPiece()
	case graphics.LineCapRound:
		// half circle from -nrm through t to nrm
		r.poly = r.poly[:0]
		r.addArc(P, d, nrm.Mul(-1), math.Pi)
		r.addPiece()
	}
}

// addArc appends points on the circle around center, starting in
// direction dir (a unit vector) and turning by sweep radians
// (positive is counter-clockwise).
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64) {
	devRadius := max(
		r.toDevice(vec.Vec2{X: radius}).Length(),
		r.toDevice(vec.Vec2{Y: radius}).Length())

	// a chord over angle θ deviates from the arc by radius*(1-cos(θ/2))
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(math.Abs(sweep)/step)))
	}
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		u := vec.Vec2{X: dir.X*cos - dir.Y*sin, Y: dir.X*sin + dir.Y*cos}
		r.poly = append(r.poly, center.Add(u.Mul(radius)))
	}
}

// addPiece adds r.poly as a closed polygon, oriented clockwise in user
// space.
func (r *Rasterizer) addPiece() {
	if len(r.poly) < 3 {
		return
	}
	var area float64
	prev := r.poly[len(r.poly)-1]
	for _, pt := range r.poly {
		area += prev.X*pt.Y - pt.X*prev.Y
		prev = pt
	}
	if area > 0 {
		slices.Reverse(r.poly)
	}
	r.addPolygon(r.poly)
}

func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}
