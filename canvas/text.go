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
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
)

// FontStyle selects one of the built-in typefaces.
type FontStyle int

const (
	Regular FontStyle = iota
	BoldItalic
)

func (s FontStyle) String() string {
	switch s {
	case Regular:
		return "regular"
	case BoldItalic:
		return "bold italic"
	default:
		return "FontStyle(?)"
	}
}

// Font selects a typeface and a size in points.
type Font struct {
	Size  float64
	Style FontStyle
}

type faceKey struct {
	size  float64
	style FontStyle
}

var parsedFonts = sync.OnceValues(func() (map[FontStyle]*opentype.Font, error) {
	res := make(map[FontStyle]*opentype.Font)
	for style, data := range map[FontStyle][]byte{
		Regular:    goregular.TTF,
		BoldItalic: gobolditalic.TTF,
	} {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s font", style)
		}
		res[style] = f
	}
	return res, nil
})

func (c *Canvas) face(f Font) (font.Face, error) {
	key := faceKey{size: f.Size, style: f.Style}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}

	fonts, err := parsedFonts()
	if err != nil {
		return nil, err
	}
	otf, ok := fonts[f.Style]
	if !ok {
		return nil, errors.Errorf("unsupported font style %d", f.Style)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     c.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating font face")
	}
	c.faces[key] = face
	return face, nil
}

// Text draws s so that the bounding box of its glyphs is centered on pos.
func (c *Canvas) Text(pos vec.Vec2, s string, f Font, col color.Color) error {
	if s == "" {
		return nil
	}
	face, err := c.face(f)
	if err != nil {
		return err
	}

	bounds, _ := font.BoundString(face, s)
	midX := (bounds.Min.X + bounds.Max.X) / 2
	midY := (bounds.Min.Y + bounds.Max.Y) / 2

	x, y := c.ToDevice(pos)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x*64)) - midX,
			Y: fixed.Int26_6(math.Round(y*64)) - midY,
		},
	}
	d.DrawString(s)
	return nil
}
