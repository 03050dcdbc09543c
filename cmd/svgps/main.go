// seehuhn.de/go/svgps - plotter path simplification
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

// Svgps converts SVG drawings into command files for a pen plotter, and
// renders command files for inspection.
//
// Usage:
//
//	svgps generate [--autocut] [--polish] [--precision P] [--onlystroked] INPUT.svg OUTPUT.svgcom
//	svgps render [--stroke COLOUR] [--stroke-width W] [--scale S] INPUT.svgcom OUTPUT.{svg,pdf,png}
//
// Both commands accept --config FILE to read default settings from a TOML
// file, and --verbose to log progress on stderr.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"seehuhn.de/go/svgps"
	"seehuhn.de/go/svgps/config"
)

func main() {
	err := newRootCmd(os.Stderr).Execute()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err, in red if w is a colour terminal.
func reportError(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	msg := out.String("svgps: " + err.Error()).Foreground(out.Color("1"))
	fmt.Fprintln(w, msg)
}

// options holds the state shared by all sub-commands.
type options struct {
	configFile string
	verbose    bool
	stderr     io.Writer

	cfg *config.Config
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	opt := &options{stderr: stderr}

	root := &cobra.Command{
		Use:   "svgps",
		Short: "Convert SVG drawings into pen plotter paths",

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opt.setup()
		},
	}
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opt.configFile, "config", "", "read settings from a TOML `file`")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(newGenerateCmd(opt), newRenderCmd(opt))
	return root
}

// setup installs the logger and loads the configuration.
func (opt *options) setup() error {
	level := slog.LevelWarn
	if opt.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(opt.stderr, &slog.HandlerOptions{Level: level})
	svgps.SetLogger(slog.New(handler))

	if opt.configFile == "" {
		opt.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(opt.configFile)
	if err != nil {
		return &ReadError{Path: opt.configFile, Err: err}
	}
	opt.cfg = cfg
	svgps.Logger().Debug("loaded configuration", "file", opt.configFile)
	return nil
}
