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

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/svgps"
	"seehuhn.de/go/svgps/config"
	"seehuhn.de/go/svgps/svgcom"
	"seehuhn.de/go/svgps/svgdoc"
)

func newGenerateCmd(opt *options) *cobra.Command {
	var autocut, polish, onlyStroked bool
	var precision float64

	cmd := &cobra.Command{
		Use:   "generate INPUT OUTPUT",
		Short: "Convert an SVG file into a plotter command file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := opt.cfg.Generate
			flags := cmd.Flags()
			if flags.Changed("autocut") {
				g.Autocut = autocut
			}
			if flags.Changed("polish") {
				g.Polish = polish
			}
			if flags.Changed("onlystroked") {
				g.OnlyStroked = onlyStroked
			}
			if flags.Changed("precision") {
				if !(precision > 0) {
					return fmt.Errorf("invalid precision %g", precision)
				}
				g.Precision = precision
			}
			return generate(args[0], args[1], g)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&autocut, "autocut", false, "remove path parts hidden under filled shapes")
	flags.BoolVar(&polish, "polish", false, "join paths which continue each other")
	flags.BoolVar(&onlyStroked, "onlystroked", false, "ignore shapes without a stroke")
	flags.Float64Var(&precision, "precision", svgps.DefaultTolerance, "curve flattening tolerance for intersection tests")
	return cmd
}

func generate(inName, outName string, g config.Generate) error {
	log := svgps.Logger()

	data, err := readFile(inName)
	if err != nil {
		return err
	}
	doc, err := svgdoc.ParseWithOptions(bytes.NewReader(data), svgdoc.Options{OnlyStroked: g.OnlyStroked})
	if err != nil {
		return err
	}
	log.Info("generate: read SVG", "file", inName, "shapes", len(doc.Shapes),
		"width", doc.Width, "height", doc.Height)

	paths := svgps.NewPaths(doc.Shapes)
	if g.Autocut {
		paths = svgps.NewCuller(g.Precision).Cull(paths)
	}
	if g.Polish {
		paths = svgps.Polish(paths)
	}

	out := svgcom.FromPaths(paths, doc.Width, doc.Height)
	err = writeFile(outName, writeTo(func(fd *os.File) error {
		_, err := out.WriteTo(fd)
		return err
	}))
	if err != nil {
		return err
	}
	log.Info("generate: wrote command file", "file", outName,
		"paths", len(paths), "commands", len(out.Data.Cmds))
	return nil
}
