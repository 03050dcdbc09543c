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

// Package config holds the settings of the svgps command line tool.
//
// Settings are read from a TOML file.  Every field has a default, so that
// a configuration file only needs to list the values which differ:
//
//	[generate]
//	autocut = true
//	precision = 0.1
//
//	[render]
//	stroke = "#003366"
//	stroke-width = 0.5
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/svgps"
	"seehuhn.de/go/svgps/plot"
)

// Config collects the settings for all sub-commands.
type Config struct {
	Generate Generate `toml:"generate"`
	Render   Render   `toml:"render"`
}

// Generate holds the settings for converting SVG files to command files.
type Generate struct {
	// Autocut enables the removal of hidden path parts.
	Autocut bool `toml:"autocut"`

	// Polish joins paths which continue each other.
	Polish bool `toml:"polish"`

	// OnlyStroked ignores shapes without a stroke.
	OnlyStroked bool `toml:"only-stroked"`

	// Precision is the flattening tolerance used for the intersection
	// tests, in document units.
	Precision float64 `toml:"precision"`
}

// Render holds the settings for drawing command files.
type Render struct {
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke-width"`

	// Scale gives the number of pixels per document unit for PNG output.
	Scale float64 `toml:"scale"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Generate: Generate{
			Precision: svgps.DefaultTolerance,
		},
		Render: Render{
			Stroke:      "#000000",
			StrokeWidth: 1,
			Scale:       1,
		},
	}
}

// Load reads a configuration file.  Values missing from the file keep
// their defaults.
func Load(fname string) (*Config, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	c, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Decode reads configuration settings in TOML format.  Unknown keys are an
// error.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	err := dec.Decode(c)
	if err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, errors.New(strict.String())
		}
		return nil, err
	}
	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Encode writes the configuration in TOML format.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	if !(c.Generate.Precision > 0) {
		return fmt.Errorf("generate.precision must be positive, not %g", c.Generate.Precision)
	}
	if !(c.Render.StrokeWidth > 0) {
		return fmt.Errorf("render.stroke-width must be positive, not %g", c.Render.StrokeWidth)
	}
	if !(c.Render.Scale > 0) {
		return fmt.Errorf("render.scale must be positive, not %g", c.Render.Scale)
	}
	if _, err := plot.ParseColor(c.Render.Stroke); err != nil {
		return fmt.Errorf("render.stroke: %w", err)
	}
	return nil
}

// Style returns the pen style given by the render settings.
func (c *Config) Style() (plot.Style, error) {
	col, err := plot.ParseColor(c.Render.Stroke)
	if err != nil {
		return plot.Style{}, err
	}
	return plot.Style{Color: col, Width: c.Render.StrokeWidth}, nil
}
