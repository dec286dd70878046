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

package gauge

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/gauge/canvas"
)

// Render draws the gauge described by cfg.
//
// Elements are drawn in three layers: first the bezel and the zone bands,
// then the tick marks and the hub, and finally all text.
func Render(cfg *Config) (*image.RGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ticks, err := cfg.Ticks()
	if err != nil {
		return nil, err
	}

	// Validate has checked all colors, so mustColor cannot fail below.
	var bg color.Color
	if cfg.Canvas.Background != "" {
		bg = mustColor(cfg.Canvas.Background)
	}
	c, err := canvas.New(canvas.Options{
		SizeInches: cfg.Canvas.SizeInches,
		DPI:        cfg.Canvas.DPI,
		Extent:     cfg.Canvas.Extent,
		Background: bg,
	})
	if err != nil {
		return nil, err
	}
	center := vec.Vec2{}

	c.Circle(center, cfg.Bezel.Radius, canvas.Stroke{
		Color: mustColor(cfg.Bezel.Color),
		Width: cfg.Bezel.Width,
	})
	band := cfg.ZoneBand
	for _, z := range cfg.Zones {
		theta1, theta2 := z.Angles(cfg.Scale)
		c.Wedge(center, band.Outer*zoneOverhang, band.Outer-band.Inner,
			theta1, theta2, mustColor(z.Color), z.Alpha)
	}

	for _, t := range ticks {
		c.Line(polar(t.Inner, t.Angle), polar(t.Outer, t.Angle), canvas.Stroke{
			Color: mustColor(t.Color),
			Width: t.Width,
			Cap:   graphics.LineCapSquare,
		})
	}
	c.Dot(center, cfg.Hub.Diameter(), mustColor(cfg.Hub.Color))

	labelFont := canvas.Font{Size: cfg.Labels.Size, Style: canvas.Regular}
	labelColor := mustColor(cfg.Labels.Color)
	for _, t := range ticks {
		if t.Label == "" {
			continue
		}
		err := c.Text(polar(cfg.Labels.Radius, t.Angle), t.Label, labelFont, labelColor)
		if err != nil {
			return nil, err
		}
	}
	for _, text := range []Caption{cfg.Title, cfg.Units} {
		style, err := parseFontStyle(text.Style)
		if err != nil {
			return nil, err
		}
		err = c.Text(vec.Vec2{Y: text.Y}, text.Text,
			canvas.Font{Size: text.Size, Style: style}, mustColor(text.Color))
		if err != nil {
			return nil, err
		}
	}

	return c.Image(), nil
}

// polar returns the point at radius r and angle theta (degrees).
func polar(r, theta float64) vec.Vec2 {
	a := theta * math.Pi / 180
	return vec.Vec2{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

func mustColor(name string) color.NRGBA {
	col, err := canvas.ParseColor(name)
	if err != nil {
		panic(err)
	}
	return col
}
