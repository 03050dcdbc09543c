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
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/svgps"
	"seehuhn.de/go/svgps/config"
	"seehuhn.de/go/svgps/plot"
	"seehuhn.de/go/svgps/svgcom"
)

func newRenderCmd(opt *options) *cobra.Command {
	var stroke string
	var strokeWidth, scale float64

	cmd := &cobra.Command{
		Use:   "render INPUT OUTPUT",
		Short: "Draw a plotter command file as SVG, PDF or PNG",
		Long: `Draw a plotter command file as SVG, PDF or PNG.

The output format is chosen by the extension of the output file name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := opt.cfg.Render
			flags := cmd.Flags()
			if flags.Changed("stroke") {
				r.Stroke = stroke
			}
			if flags.Changed("stroke-width") {
				r.StrokeWidth = strokeWidth
			}
			if flags.Changed("scale") {
				r.Scale = scale
			}
			return render(args[0], args[1], r)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&stroke, "stroke", "#000000", "pen `colour`")
	flags.Float64Var(&strokeWidth, "stroke-width", 1, "pen width in document units")
	flags.Float64Var(&scale, "scale", 1, "pixels per document unit for PNG output")
	return cmd
}

func render(inName, outName string, r config.Render) error {
	cfg := &config.Config{Generate: config.Default().Generate, Render: r}
	if err := cfg.Validate(); err != nil {
		return err
	}
	style, err := cfg.Style()
	if err != nil {
		return err
	}
	format, err := plot.FormatOf(outName)
	if err != nil {
		return &WriteError{Path: outName, Err: err}
	}

	data, err := readFile(inName)
	if err != nil {
		return err
	}
	doc, err := svgcom.Parse(string(data))
	if err != nil {
		return err
	}
	svgps.Logger().Info("render: read command file", "file", inName,
		"commands", len(doc.Data.Cmds), "width", doc.Width, "height", doc.Height)

	var fill func(string) error
	switch format {
	case plot.SVG:
		fill = writeTo(func(fd *os.File) error {
			return plot.WriteSVG(fd, doc, style)
		})
	case plot.PNG:
		fill = writeTo(func(fd *os.File) error {
			w := bufio.NewWriter(fd)
			err := plot.WritePNG(w, doc, style, r.Scale)
			if err != nil {
				return err
			}
			return w.Flush()
		})
	case plot.PDF:
		fill = func(tmpName string) error {
			return plot.WritePDF(tmpName, doc, style)
		}
	default:
		panic(fmt.Sprintf("unexpected format %s", format))
	}
	err = writeFile(outName, fill)
	if err != nil {
		return err
	}
	svgps.Logger().Info("render: wrote output", "file", outName, "format", format)
	return nil
}
