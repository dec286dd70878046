package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkRasterizerBand benchmarks filling a gauge band: an annular
// sector of 240 degrees, as used for warning zones.
func BenchmarkRasterizerBand(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := clipRect(size, size)
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			band := makeBand(c, c, 0.45*float64(size), 0.35*float64(size))

			b.ReportAllocs()
			for b.Loop() {
				r.FillNonZero(band, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorBand benchmarks x/image/vector on the same shape.
func BenchmarkVectorBand(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float64(size) / 2
			var pts []vec.Vec2
			for _, p := range makeBand(c, c, 0.45*float64(size), 0.35*float64(size)) {
				pts = append(pts, p...)
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				for _, p := range pts[1:] {
					r.LineTo(float32(p.X), float32(p.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeBand returns the outline of an annular sector as a polygon path.
func makeBand(cx, cy, outer, inner float64) path.Path {
	const steps = 64
	from, to := -30*math.Pi/180, 210*math.Pi/180
	var pts []vec.Vec2
	for i := 0; i <= steps; i++ {
		a := from + (to-from)*float64(i)/steps
		pts = append(pts, vec.Vec2{X: cx + outer*math.Cos(a), Y: cy - outer*math.Sin(a)})
	}
	for i := steps; i >= 0; i-- {
		a := from + (to-from)*float64(i)/steps
		pts = append(pts, vec.Vec2{X: cx + inner*math.Cos(a), Y: cy - inner*math.Sin(a)})
	}
	return polyline(true, pts...)
}
