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

// Package definition reads and writes gauge configurations as YAML.
//
// A definition file either describes a gauge completely, or names a
// built-in preset as its base and lists only the fields which differ:
//
//	base: tachometer
//	name: diesel
//	output: diesel.png
//	scale: {start_angle: 210, end_angle: -30, min: 0, max: 5, steps: 6}
//
// Lists such as ticks and zones replace the list of the base as a whole.
package definition

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/gauge/gauge"
)

type file struct {
	Base         string `yaml:"base,omitempty"`
	gauge.Config `yaml:",inline"`
}

// Load reads a gauge definition from the named file. If the definition
// does not set a name, the file name without extension is used. The
// output file name defaults to the gauge name with a ".png" extension.
func Load(fname string) (*gauge.Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "reading gauge definition")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", fname)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	}
	if cfg.Output == "" {
		cfg.Output = cfg.Name + ".png"
	}
	return cfg, nil
}

// Parse decodes a gauge definition. Unknown fields are errors.
func Parse(data []byte) (*gauge.Config, error) {
	var head struct {
		Base   string `yaml:"base"`
		Name   string `yaml:"name"`
		Output string `yaml:"output"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(err, "decoding gauge definition")
	}

	def := &file{}
	if head.Base != "" {
		base, err := gauge.Preset(head.Base)
		if err != nil {
			return nil, err
		}
		def.Config = *base
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(def); err == io.EOF {
		return nil, errors.New("empty gauge definition")
	} else if err != nil {
		return nil, errors.Wrap(err, "decoding gauge definition")
	}

	if head.Output == "" && head.Name != "" {
		def.Output = head.Name + ".png"
	}
	return &def.Config, nil
}

// Marshal encodes cfg as a complete gauge definition.
func Marshal(cfg *gauge.Config) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "encoding gauge definition")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding gauge definition")
	}
	return buf.Bytes(), nil
}
