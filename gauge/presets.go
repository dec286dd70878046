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
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrUnknownPreset is returned by Preset for names without a built-in
// configuration.
var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string]func() *Config{
	"tachometer":       func() *Config { return tachometer("tachometer", majorWidth) },
	"tachometer-fixed": func() *Config { return tachometer("tachometer-fixed", 3.0) },
	"boost":            boost,
	"speedometer":      speedometer,
}

// Defaults lists the presets rendered when no gauge is selected
// explicitly.
var Defaults = []string{"speedometer", "boost", "tachometer"}

// Preset returns a fresh copy of the named built-in configuration.
func Preset(name string) (*Config, error) {
	mk, ok := presets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPreset, "%q", name)
	}
	return mk(), nil
}

// PresetNames returns the names of all built-in configurations in
// alphabetical order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Shared dial geometry, in dial units and points.
const (
	majorWidth = 3.0
	minorWidth = 1.0
	tickOuter  = 1.0
	minorInner = 0.88

	// markerEdge is the outline width of the hub marker, in points.
	markerEdge = 1.0
)

func defaultCanvas() CanvasSettings {
	return CanvasSettings{SizeInches: 6, DPI: 300, Extent: 1.49}
}

func defaultBezel() Bezel {
	return Bezel{Radius: 1.04, Width: 1, Color: "lightgray"}
}

func title(text string) Caption {
	return Caption{Text: text, Y: 0.25, Size: 20, Style: "bold-italic", Color: "black"}
}

func units(text string) Caption {
	return Caption{Text: text, Y: -0.2, Size: 14, Color: "black"}
}

// span returns n evenly spaced values from lo to hi.
func span(n int, lo, hi float64) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// tachometer is an engine speed dial from 0 to 9000 r/min with a red line
// at 7000. The two tachometer variants differ only in how the width of the
// red ticks is specified.
func tachometer(name string, redWidth float64) *Config {
	const majorInner = 0.8
	return &Config{
		Name:   name,
		Output: "tachometer.png",
		Canvas: defaultCanvas(),
		Scale:  Scale{StartAngle: 210, EndAngle: -30, Min: 0, Max: 9, Steps: 10},
		TickSets: []TickSet{
			{
				Name:   "major",
				Values: span(10, 0, 9),
				Inner:  majorInner,
				Outer:  tickOuter,
				Color:  "black",
				Width:  majorWidth,
				Label:  true,
			},
			{
				Name:   "minor",
				Values: span(9, 0.5, 8.5),
				Inner:  minorInner,
				Outer:  tickOuter,
				Color:  "dimgray",
				Width:  minorWidth,
			},
			{
				Name:   "red",
				Values: []float64{7, 8, 9},
				Inner:  majorInner,
				Outer:  tickOuter,
				Color:  "red",
				Width:  redWidth,
			},
		},
		Labels: LabelStyle{Radius: 0.7, Size: 14, Format: "%.0f", Color: "black"},
		Zones: []Zone{
			{From: 7, To: 9, Color: "red", Alpha: 0.5},
			{From: 5, To: 7, Color: "gold", Alpha: 0.5},
		},
		ZoneBand: ZoneBand{Inner: majorInner, Outer: tickOuter},
		Hub:      Hub{Size: 4, EdgeWidth: markerEdge, Color: "black"},
		Bezel:    defaultBezel(),
		Title:    title("Engine"),
		Units:    units("×1000 r/min"),
	}
}

// boost is a turbo boost pressure dial from -1 to 2 bar.
func boost() *Config {
	const majorInner = 0.82

	var major, minor []float64
	for _, v := range span(31, -1, 2) {
		if int(math.Round(v*10))%5 == 0 {
			major = append(major, v)
		} else {
			minor = append(minor, v)
		}
	}

	return &Config{
		Name:   "boost",
		Output: "boostmeter.png",
		Canvas: defaultCanvas(),
		Scale:  Scale{StartAngle: 270, EndAngle: 0, Min: -1, Max: 2},
		TickSets: []TickSet{
			{
				Name:   "major",
				Values: major,
				Inner:  majorInner,
				Outer:  tickOuter,
				Color:  "black",
				Width:  majorWidth,
				Label:  true,
			},
			{
				Name:   "minor",
				Values: minor,
				Inner:  minorInner,
				Outer:  tickOuter,
				Color:  "dimgray",
				Width:  minorWidth,
			},
		},
		Labels: LabelStyle{Radius: 0.7, Size: 12, Format: "%.1f", Color: "black"},
		Zones: []Zone{
			{From: 0, To: 1, Color: "gold", Alpha: 0.5},
			{From: 2, To: 1, Color: "red", Alpha: 0.5},
		},
		ZoneBand: ZoneBand{Inner: majorInner, Outer: tickOuter},
		Hub:      Hub{Size: 4, EdgeWidth: markerEdge, Color: "black"},
		Bezel:    defaultBezel(),
		Title:    title("BOOST"),
		Units:    units("bar"),
	}
}

// speedometer is a road speed dial from 0 to 240 km/h. Its scale counts
// tick positions: even positions carry the labels 20, 40, ..., 240 and odd
// positions are minor ticks. The zero mark sits 15 degrees before the
// first position, off the regular spacing.
func speedometer() *Config {
	const (
		majorInner = 0.83
		start      = 187.5
	)

	var labels []string
	for v := 20; v <= 240; v += 20 {
		labels = append(labels, strconv.Itoa(v))
	}

	return &Config{
		Name:   "speedometer",
		Output: "spdeter.png",
		Canvas: defaultCanvas(),
		Scale:  Scale{StartAngle: start, EndAngle: -22.5, Min: 0, Max: 22, Steps: 23},
		TickSets: []TickSet{
			{
				Name:   "major",
				Values: span(12, 0, 22),
				Inner:  majorInner,
				Outer:  tickOuter,
				Color:  "black",
				Width:  majorWidth,
				Labels: labels,
			},
			{
				Name:   "minor",
				Values: span(11, 1, 21),
				Inner:  minorInner,
				Outer:  tickOuter,
				Color:  "dimgray",
				Width:  1.5,
			},
			{
				Name:   "zero",
				Angles: []float64{start + 15},
				Inner:  majorInner,
				Outer:  tickOuter,
				Color:  "black",
				Width:  majorWidth,
				Labels: []string{"0"},
			},
		},
		Labels:   LabelStyle{Radius: 0.735, Size: 14, Color: "black"},
		ZoneBand: ZoneBand{Inner: majorInner, Outer: tickOuter},
		Hub:      Hub{Size: 6, EdgeWidth: markerEdge, Color: "black"},
		Bezel:    defaultBezel(),
		Title:    title("Speed"),
		Units:    units("km/h"),
	}
}
