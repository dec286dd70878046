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

// Package gauge renders instrument cluster dials (speedometer, boost gauge,
// tachometer) from a declarative configuration.
//
// A dial consists of radial tick marks, value labels placed along the
// ticks, semi-transparent zone bands marking value ranges, a center hub,
// an outer bezel and two lines of text. All geometry is given in dial
// units, where the tick marks end at radius 1. Line widths and font sizes
// are given in points.
package gauge

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/gauge/canvas"
)

// Config describes a single gauge. Rendering never modifies a Config.
type Config struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`

	Canvas CanvasSettings `yaml:"canvas"`
	Scale  Scale          `yaml:"scale"`

	TickSets []TickSet  `yaml:"ticks"`
	Labels   LabelStyle `yaml:"labels"`
	Zones    []Zone     `yaml:"zones,omitempty"`
	ZoneBand ZoneBand   `yaml:"zone_band"`
	Hub      Hub        `yaml:"hub"`
	Bezel    Bezel      `yaml:"bezel"`
	Title    Caption    `yaml:"title"`
	Units    Caption    `yaml:"units"`
}

// CanvasSettings gives the size of the output image and the part of the
// dial plane it shows.
type CanvasSettings struct {
	SizeInches float64 `yaml:"size_inches"`
	DPI        float64 `yaml:"dpi"`
	Extent     float64 `yaml:"extent"` // dial units from the center to the image edge
	Background string  `yaml:"background,omitempty"`
}

// TickSet is a class of tick marks sharing one appearance, for example
// the major, minor or red-line ticks of a dial.
//
// Tick positions are given either as Values, which are mapped through the
// gauge's Scale, or directly as Angles in degrees.
type TickSet struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values,omitempty"`
	Angles []float64 `yaml:"angles,omitempty"`
	Inner  float64   `yaml:"inner"`
	Outer  float64   `yaml:"outer"`
	Color  string    `yaml:"color"`
	Width  float64   `yaml:"width"`

	// If Label is set, each tick is labeled with its formatted value.
	// Labels gives explicit label text instead, one per tick.
	Label  bool     `yaml:"label,omitempty"`
	Labels []string `yaml:"labels,omitempty"`
}

func (ts *TickSet) count() int {
	if ts.Angles != nil {
		return len(ts.Angles)
	}
	return len(ts.Values)
}

// LabelStyle controls the value labels of all tick sets.
type LabelStyle struct {
	Radius float64 `yaml:"radius"`
	Size   float64 `yaml:"size"`
	Format string  `yaml:"format,omitempty"`
	Color  string  `yaml:"color"`
}

// Zone is a colored band highlighting the value range between From and To.
// The order of From and To does not matter.
type Zone struct {
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Color string  `yaml:"color"`
	Alpha float64 `yaml:"alpha"` // opacity in [0, 1]
}

// UnmarshalYAML decodes a zone. A zone without an alpha value is opaque.
func (z *Zone) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			key := value.Content[i]
			switch key.Value {
			case "from", "to", "color", "alpha":
			default:
				return errors.Errorf("line %d: unknown zone field %q", key.Line, key.Value)
			}
		}
	}

	type plain Zone
	p := plain{Alpha: 1}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*z = Zone(p)
	return nil
}

// Angles returns the angular extent of the zone, with theta1 <= theta2.
func (z Zone) Angles(s Scale) (theta1, theta2 float64) {
	theta1 = s.Angle(z.From)
	theta2 = s.Angle(z.To)
	if theta1 > theta2 {
		theta1, theta2 = theta2, theta1
	}
	return theta1, theta2
}

// ZoneBand is the radial extent of the zone bands. The band is drawn
// slightly beyond Outer, so that it covers the ends of the tick marks.
type ZoneBand struct {
	Inner float64 `yaml:"inner"`
	Outer float64 `yaml:"outer"`
}

// zoneOverhang scales the outer radius of zone bands.
const zoneOverhang = 1.01

// Hub is the marker at the center of the dial. Its outline is stroked
// with EdgeWidth in the same color, so the drawn diameter is
// Size + EdgeWidth.
type Hub struct {
	Size      float64 `yaml:"size"` // diameter in points
	EdgeWidth float64 `yaml:"edge_width,omitempty"`
	Color     string  `yaml:"color"`
}

// Diameter returns the outer diameter of the hub in points.
func (h Hub) Diameter() float64 {
	return h.Size + h.EdgeWidth
}

// Bezel is the circle around the dial.
type Bezel struct {
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Color  string  `yaml:"color"`
}

// Caption is a line of text centered at (0, Y).
type Caption struct {
	Text  string  `yaml:"text"`
	Y     float64 `yaml:"y"`
	Size  float64 `yaml:"size"`
	Style string  `yaml:"style,omitempty"` // "regular" or "bold-italic"
	Color string  `yaml:"color"`
}

func parseFontStyle(s string) (canvas.FontStyle, error) {
	switch strings.ToLower(s) {
	case "", "regular":
		return canvas.Regular, nil
	case "bold-italic", "bolditalic":
		return canvas.BoldItalic, nil
	default:
		return 0, errors.Errorf("unknown font style %q", s)
	}
}

// Tick is a single tick mark, ready for drawing.
type Tick struct {
	Set   string  // name of the tick set
	Angle float64 // degrees
	Inner float64
	Outer float64
	Color string
	Width float64 // points
	Label string  // empty for unlabeled ticks
}

// Ticks lists the tick marks of the gauge, in tick set order.
func (c *Config) Ticks() ([]Tick, error) {
	var res []Tick
	for i := range c.TickSets {
		ts := &c.TickSets[i]
		n := ts.count()
		if ts.Labels != nil && len(ts.Labels) != n {
			return nil, errors.Errorf("tick set %q: %d labels for %d ticks",
				ts.Name, len(ts.Labels), n)
		}

		for j := range n {
			tick := Tick{
				Set:   ts.Name,
				Inner: ts.Inner,
				Outer: ts.Outer,
				Color: ts.Color,
				Width: ts.Width,
			}
			if ts.Angles != nil {
				tick.Angle = ts.Angles[j]
			} else {
				tick.Angle = c.Scale.Angle(ts.Values[j])
			}

			switch {
			case ts.Labels != nil:
				tick.Label = ts.Labels[j]
			case ts.Label && ts.Angles != nil:
				tick.Label = FormatLabel(c.Scale.Value(ts.Angles[j]), c.Labels.Format)
			case ts.Label:
				tick.Label = FormatLabel(ts.Values[j], c.Labels.Format)
			}
			res = append(res, tick)
		}
	}
	return res, nil
}

// Validate checks the configuration for errors which would prevent
// rendering. Parameter ranges are not checked: a value outside the
// domain of the scale is drawn wherever the mapping puts it.
func (c *Config) Validate() error {
	if err := c.Scale.Validate(); err != nil {
		return errors.Wrapf(err, "gauge %q", c.Name)
	}

	cs := c.Canvas
	if cs.SizeInches <= 0 || cs.DPI <= 0 || cs.Extent <= 0 {
		return errors.Errorf("gauge %q: invalid canvas %gin at %g dpi, extent %g",
			c.Name, cs.SizeInches, cs.DPI, cs.Extent)
	}

	colors := []string{c.Labels.Color, c.Hub.Color, c.Bezel.Color, c.Title.Color, c.Units.Color}
	if cs.Background != "" {
		colors = append(colors, cs.Background)
	}

	for i := range c.TickSets {
		ts := &c.TickSets[i]
		if ts.Values != nil && ts.Angles != nil {
			return errors.Errorf("gauge %q: tick set %q has both values and angles",
				c.Name, ts.Name)
		}
		colors = append(colors, ts.Color)
	}
	if _, err := c.Ticks(); err != nil {
		return errors.Wrapf(err, "gauge %q", c.Name)
	}
	for i, z := range c.Zones {
		if z.Alpha < 0 || z.Alpha > 1 {
			return errors.Errorf("gauge %q: zone %d: alpha %g outside [0, 1]",
				c.Name, i+1, z.Alpha)
		}
		colors = append(colors, z.Color)
	}

	for _, col := range colors {
		if _, err := canvas.ParseColor(col); err != nil {
			return errors.Wrapf(err, "gauge %q", c.Name)
		}
	}

	for _, text := range []Caption{c.Title, c.Units} {
		if _, err := parseFontStyle(text.Style); err != nil {
			return errors.Wrapf(err, "gauge %q", c.Name)
		}
	}
	return nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	res := *c
	res.TickSets = make([]TickSet, len(c.TickSets))
	for i, ts := range c.TickSets {
		ts.Values = slices.Clone(ts.Values)
		ts.Angles = slices.Clone(ts.Angles)
		ts.Labels = slices.Clone(ts.Labels)
		res.TickSets[i] = ts
	}
	res.Zones = slices.Clone(c.Zones)
	return &res
}
