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

// Command gauge renders instrument cluster gauges as PNG images.
//
// Without arguments, the speedometer, boost gauge and tachometer are
// written to spdeter.png, boostmeter.png and tachometer.png.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/gauge/definition"
	"seehuhn.de/go/gauge/gauge"
	"seehuhn.de/go/gauge/internal/config"
)

// set via -ldflags
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	cfg *config.Config
	out io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{out: os.Stdout}
	var opts renderOptions

	root := &cobra.Command{
		Use:           "gauge",
		Short:         "Render instrument cluster gauges",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderPresets(gauge.Defaults, opts)
		},
	}
	root.Flags().BoolVar(&opts.noShow, "no-show", false, "do not open the viewer window")
	root.PersistentFlags().String("config", "", "config file (default: ./gauge.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		a.newRenderCmd(),
		a.newPresetsCmd(),
		a.newDumpCmd(),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()

	var err error
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		a.cfg, err = config.LoadFromFile(configFile)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	level := a.cfg.Log.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level = override
	}
	return setupLogging(level, cmd.ErrOrStderr())
}

func setupLogging(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return errors.Errorf("unknown log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})

	log.Debug().
		Str("loglevel", zerolog.GlobalLevel().String()).
		Str("version", version).
		Msg("starting gauge")
	return nil
}

func (a *app) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in gauges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range gauge.PresetNames() {
				cfg, err := gauge.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%-18s %s\n", name, cfg.Output)
			}
			return nil
		},
	}
}

func (a *app) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <preset>",
		Short: "Print a built-in gauge as a YAML definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gauge.Preset(args[0])
			if err != nil {
				return err
			}
			data, err := definition.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gauge %s\n", version)
		},
	}
}
