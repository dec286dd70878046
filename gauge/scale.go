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
	"github.com/pkg/errors"
)

// Scale maps gauge values to angles on the dial. Angles are in degrees,
// measured counter-clockwise from the positive x axis. Values increase
// clockwise when StartAngle > EndAngle.
//
// If Steps is zero, the scale is continuous and maps Min to StartAngle and
// Max to EndAngle. Otherwise the dial is divided into Steps evenly spaced
// positions numbered 0, 1, ..., Steps-1, and a value v is placed at
// position v. In this case Min and Max only describe the domain.
type Scale struct {
	StartAngle float64 `yaml:"start_angle"`
	EndAngle   float64 `yaml:"end_angle"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Steps      int     `yaml:"steps,omitempty"`
}

// Angle returns the dial angle for value v. Values outside the domain are
// extrapolated.
func (s Scale) Angle(v float64) float64 {
	if s.Steps > 1 {
		return s.StartAngle - v*s.unit()
	}
	return s.StartAngle - (v-s.Min)/(s.Max-s.Min)*s.sweep()
}

// Value is the inverse of Angle.
func (s Scale) Value(angle float64) float64 {
	if s.Steps > 1 {
		return (s.StartAngle - angle) / s.unit()
	}
	return s.Min + (s.StartAngle-angle)/s.sweep()*(s.Max-s.Min)
}

func (s Scale) sweep() float64 {
	return s.StartAngle - s.EndAngle
}

// unit is the angle between neighboring positions of a discrete scale.
func (s Scale) unit() float64 {
	return s.sweep() / float64(s.Steps-1)
}

// Validate checks that the mapping is invertible.
func (s Scale) Validate() error {
	switch {
	case s.Steps < 0 || s.Steps == 1:
		return errors.Errorf("scale: invalid number of steps %d", s.Steps)
	case s.Steps == 0 && s.Max == s.Min:
		return errors.Errorf("scale: empty domain [%g, %g]", s.Min, s.Max)
	case s.StartAngle == s.EndAngle:
		return errors.Errorf("scale: start and end angle are both %g", s.StartAngle)
	}
	return nil
}
