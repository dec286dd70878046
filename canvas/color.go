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
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned for color names which are neither SVG color
// keywords nor hex triplets.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor accepts an SVG color keyword like "dimgray" or "gold",
// or a hex triplet like "#ff8000" or "#f80".
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(ErrUnknownColor, "color %q", s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	c, ok := colornames.Map[name]
	if !ok {
		return color.NRGBA{}, errors.Wrapf(ErrUnknownColor, "color %q", s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
}
