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
	"fmt"
	"os"
	"path/filepath"
)

// ReadError reports a failure to read an input file.
type ReadError struct {
	Path string
	Err  error
}

func (err *ReadError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", err.Path, err.Err)
}

func (err *ReadError) Unwrap() error {
	return err.Err
}

// WriteError reports a failure to write an output file.
type WriteError struct {
	Path string
	Err  error
}

func (err *WriteError) Error() string {
	return fmt.Sprintf("cannot write %q: %v", err.Path, err.Err)
}

func (err *WriteError) Unwrap() error {
	return err.Err
}

func readFile(fname string) ([]byte, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, &ReadError{Path: fname, Err: err}
	}
	return data, nil
}

// writeFile creates fname by calling fill with the name of a temporary
// file in the same directory.  The temporary file is renamed to fname if
// fill succeeds, and removed otherwise.
func writeFile(fname string, fill func(tmpName string) error) error {
	dir, base := filepath.Split(fname)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return &WriteError{Path: fname, Err: err}
	}
	tmpName := tmp.Name()
	tmp.Close()

	err = fill(tmpName)
	if err == nil {
		err = os.Chmod(tmpName, 0o644)
	}
	if err == nil {
		err = os.Rename(tmpName, fname)
	}
	if err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: fname, Err: err}
	}
	return nil
}

// writeTo is a helper for writeFile, for output generated by a function
// which writes to an open file.
func writeTo(write func(*os.File) error) func(string) error {
	return func(tmpName string) error {
		fd, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_TRUNC, 0)
		if err != nil {
			return err
		}
		err = write(fd)
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
		return err
	}
}
