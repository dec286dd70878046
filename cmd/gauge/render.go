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

package main

import (
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/gauge/definition"
	"seehuhn.de/go/gauge/gauge"
	"seehuhn.de/go/gauge/viewer"
)

type renderOptions struct {
	output string // overrides the output file of a single gauge
	show   bool
	noShow bool
}

// showWindow reports whether the rendered gauges are shown in the viewer.
// The window is on by default; viewer.enabled=false in the configuration
// turns it off, and the command line flags override both.
func (a *app) showWindow(opts renderOptions) bool {
	if opts.noShow {
		return false
	}
	return opts.show || a.cfg.Viewer.Enabled
}

func (a *app) newRenderCmd() *cobra.Command {
	var (
		files []string
		opts  renderOptions
	)
	cmd := &cobra.Command{
		Use:   "render [preset...]",
		Short: "Render built-in gauges or gauge definition files",
		Long: `Render built-in gauges or gauge definition files.

Without arguments or definition files, the default gauges are rendered.
Use "gauge presets" to list the built-in gauges.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfgs []*gauge.Config
			for _, name := range args {
				cfg, err := gauge.Preset(name)
				if err != nil {
					return err
				}
				cfgs = append(cfgs, cfg)
			}
			for _, fname := range files {
				cfg, err := definition.Load(fname)
				if err != nil {
					return err
				}
				cfgs = append(cfgs, cfg)
			}
			if len(cfgs) == 0 {
				return a.renderPresets(gauge.Defaults, opts)
			}
			return a.render(cfgs, opts)
		},
	}
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "gauge definition file (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, for a single gauge")
	cmd.Flags().BoolVar(&opts.show, "show", false, "show the gauges in a window, even if viewer.enabled is false")
	cmd.Flags().BoolVar(&opts.noShow, "no-show", false, "do not open the viewer window")
	cmd.MarkFlagsMutuallyExclusive("show", "no-show")
	return cmd
}

func (a *app) renderPresets(names []string, opts renderOptions) error {
	cfgs := make([]*gauge.Config, len(names))
	for i, name := range names {
		cfg, err := gauge.Preset(name)
		if err != nil {
			return err
		}
		cfgs[i] = cfg
	}
	return a.render(cfgs, opts)
}

func (a *app) render(cfgs []*gauge.Config, opts renderOptions) error {
	if opts.output != "" && len(cfgs) != 1 {
		return errors.Errorf("--output needs exactly one gauge, got %d", len(cfgs))
	}
	show := a.showWindow(opts)

	var pages []viewer.Page
	for _, cfg := range cfgs {
		a.cfg.Output.Apply(cfg)
		if e := log.Debug(); e.Enabled() {
			e.Str("gauge", cfg.Name).Msg("configuration:\n" + spew.Sdump(cfg))
		}

		start := time.Now()
		img, err := gauge.Render(cfg)
		if err != nil {
			return err
		}

		fname := a.cfg.Output.Path(cfg.Output)
		if opts.output != "" {
			fname = opts.output
		}
		n, err := gauge.Save(img, fname, cfg.Canvas.DPI)
		if err != nil {
			return errors.Wrapf(err, "gauge %q", cfg.Name)
		}

		log.Info().
			Str("gauge", cfg.Name).
			Str("file", fname).
			Str("size", humanize.Bytes(uint64(n))).
			Dur("took", time.Since(start)).
			Msg("rendered")

		if show {
			pages = append(pages, viewer.Page{Title: cfg.Title.Text, Image: img})
		}
	}

	if len(pages) > 0 {
		if err := viewer.Show(pages, a.cfg.Viewer.WindowSize); err != nil {
			return errors.Wrap(err, "showing gauges")
		}
	}
	return nil
}
