/*
 * write.go, part of vasptools.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

package vasp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//Write validates s and writes it in POSCAR layout to the file name, which
//is created or truncated. Nothing is written if the structure fails Check.
func Write(name string, s *Structure) error {
	if err := s.Check(); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := Encode(w, s); err != nil {
		return err
	}
	return w.Flush()
}

//Encode writes s in POSCAR layout to w. The comment line is sanitized so
//that stray control characters in a parent file cannot corrupt the fixed
//line layout of the output.
func Encode(w io.Writer, s *Structure) error {
	if _, err := fmt.Fprintf(w, "%s\n", SanitizeComment(s.Comment)); err != nil {
		return err
	}
	fmt.Fprintf(w, "%19.14f\n", s.Scale)
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, " %21.16f %21.16f %21.16f\n", s.Lattice.At(i, 0), s.Lattice.At(i, 1), s.Lattice.At(i, 2))
	}
	for _, sp := range s.Species {
		fmt.Fprintf(w, " %4s", sp.Symbol)
	}
	fmt.Fprintln(w)
	for _, sp := range s.Species {
		fmt.Fprintf(w, " %4d", sp.Count)
	}
	fmt.Fprintln(w)
	if s.Selective {
		fmt.Fprintln(w, "Selective dynamics")
	}
	if s.Cartesian {
		fmt.Fprintln(w, "Cartesian")
	} else {
		fmt.Fprintln(w, "Direct")
	}
	rows, _ := s.Coords.Dims()
	for i := 0; i < rows; i++ {
		if _, err := fmt.Fprintf(w, " %19.16f %19.16f %19.16f", s.Coords.At(i, 0), s.Coords.At(i, 1), s.Coords.At(i, 2)); err != nil {
			return err
		}
		if s.RowTails != nil && s.RowTails[i] != "" {
			fmt.Fprintf(w, "  %s", s.RowTails[i])
		}
		fmt.Fprintln(w)
	}
	return nil
}

//SanitizeComment strips characters that would break the one-line comment
//field: newlines, carriage returns and other control characters.
func SanitizeComment(c string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, c)
}
