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
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// zeroTolerance decides which tick values print as zero.
const zeroTolerance = 1e-8

// DefaultLabelFormat is used when a configuration does not set a format.
const DefaultLabelFormat = "%g"

// FormatLabel formats a tick value for display. Values within 1e-8 of
// zero print as zero, so that ticks computed by interpolation never show
// up as "-0.0".
func FormatLabel(v float64, format string) string {
	if format == "" {
		format = DefaultLabelFormat
	}
	if scalar.EqualWithinAbs(v, 0, zeroTolerance) {
		v = 0
	}
	return fmt.Sprintf(format, v)
}
