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

// Package config holds the settings of the gauge command, as opposed to
// the description of individual gauges.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"seehuhn.de/go/gauge/gauge"
)

// Config is the application configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Viewer ViewerConfig `mapstructure:"viewer"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls where and how images are written.
// Zero values for DPI and SizeInches keep the settings of each gauge.
type OutputConfig struct {
	Dir        string  `mapstructure:"dir"`
	DPI        float64 `mapstructure:"dpi"`
	SizeInches float64 `mapstructure:"size_inches"`
}

// ViewerConfig controls the preview window. The window is shown after
// every run which renders gauges, unless Enabled is false.
type ViewerConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	WindowSize int  `mapstructure:"window_size"` // pixels
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
}

// Load reads the configuration from an optional file gauge.yaml, searched
// in the current directory and in ~/.config/gauge, and from environment
// variables of the form GAUGE_<SECTION>_<KEY>, e.g. GAUGE_OUTPUT_DIR.
// Environment variables take precedence over the file.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("gauge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "gauge"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
	}
	return unmarshal(v)
}

// LoadFromFile reads the configuration from the given file. Environment
// variables still take precedence.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GAUGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.dpi", 0)
	v.SetDefault("output.size_inches", 0)

	v.SetDefault("viewer.enabled", true)
	v.SetDefault("viewer.window_size", 720)

	v.SetDefault("log.level", "info")
}

// Apply overrides the canvas settings of a gauge.
func (o OutputConfig) Apply(cfg *gauge.Config) {
	if o.DPI > 0 {
		cfg.Canvas.DPI = o.DPI
	}
	if o.SizeInches > 0 {
		cfg.Canvas.SizeInches = o.SizeInches
	}
}

// Path returns the location of an output file.
func (o OutputConfig) Path(fname string) string {
	if filepath.IsAbs(fname) || o.Dir == "" {
		return fname
	}
	return filepath.Join(o.Dir, fname)
}
