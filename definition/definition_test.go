package definition

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"seehuhn.de/go/gauge/gauge"
)

func TestPresetsRoundTrip(t *testing.T) {
	for _, name := range gauge.PresetNames() {
		t.Run(name, func(t *testing.T) {
			want, err := gauge.Preset(name)
			if err != nil {
				t.Fatal(err)
			}
			data, err := Marshal(want)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Parse(data)
			if err != nil {
				t.Fatalf("%v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip changed the configuration:\n%s", spew.Sdump(got))
			}
		})
	}
}

func TestBaseOverride(t *testing.T) {
	src := `
base: tachometer
name: diesel
scale:
  max: 5
  steps: 6
zones:
  - {from: 4, to: 5, color: red, alpha: 0.5}
title:
  text: Diesel
`
	cfg, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Name != "diesel" || cfg.Output != "diesel.png" {
		t.Errorf("name %q, output %q", cfg.Name, cfg.Output)
	}
	// fields of the base survive partial overrides
	if cfg.Scale.StartAngle != 210 || cfg.Scale.EndAngle != -30 || cfg.Scale.Steps != 6 {
		t.Errorf("scale %+v", cfg.Scale)
	}
	if cfg.Title.Text != "Diesel" || cfg.Title.Size != 20 || cfg.Title.Style != "bold-italic" {
		t.Errorf("title %+v", cfg.Title)
	}
	// lists are replaced
	if len(cfg.Zones) != 1 || cfg.Zones[0].From != 4 {
		t.Errorf("zones %+v", cfg.Zones)
	}
	if len(cfg.TickSets) != 3 {
		t.Errorf("%d tick sets, want 3 from the base", len(cfg.TickSets))
	}

	// the preset itself is untouched
	base, _ := gauge.Preset("tachometer")
	if base.Scale.Steps != 10 || len(base.Zones) != 2 {
		t.Error("override modified the preset")
	}
}

func TestZoneAlphaDefault(t *testing.T) {
	src := `
base: boost
zones:
  - {from: 1, to: 2, color: red}
  - {from: 0, to: 1, color: gold, alpha: 0.25}
`
	cfg, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Zones) != 2 {
		t.Fatalf("zones %+v", cfg.Zones)
	}
	if cfg.Zones[0].Alpha != 1 {
		t.Errorf("zone without alpha: got %g, want 1", cfg.Zones[0].Alpha)
	}
	if cfg.Zones[1].Alpha != 0.25 {
		t.Errorf("zone alpha: got %g, want 0.25", cfg.Zones[1].Alpha)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		is   error
	}{
		{"empty", "", nil},
		{"unknown base", "base: oil-pressure\n", gauge.ErrUnknownPreset},
		{"unknown field", "base: boost\nneedle: red\n", nil},
		{"bad type", "scale: {min: low}\n", nil},
		{"unknown zone field", "base: boost\nzones: [{from: 0, to: 1, colour: red}]\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Errorf("got %v, want %v", err, tc.is)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "oil.yaml")
	src := `
base: boost
title: {text: OIL}
units: {text: bar}
`
	if err := os.WriteFile(fname, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	// the base provides the name
	if cfg.Name != "boost" || cfg.Output != "boostmeter.png" {
		t.Errorf("name %q, output %q", cfg.Name, cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading gauge definition") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoadNameFromFile(t *testing.T) {
	cfg, err := gauge.Preset("speedometer")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Name = ""
	cfg.Output = ""
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}

	fname := filepath.Join(t.TempDir(), "kmh.yaml")
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "kmh" || got.Output != "kmh.png" {
		t.Errorf("name %q, output %q", got.Name, got.Output)
	}
}
