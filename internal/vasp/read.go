/*
 * read.go, part of vasptools.
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
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"
)

//Read opens and parses a POSCAR/CONTCAR file. The whole file is validated
//before the structure is returned; a structure that fails Check is never
//handed to the caller.
func Read(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

//Parse reads one structure in POSCAR/CONTCAR layout from r.
//The layout is fixed: comment, scale, 3 lattice vectors, symbols, counts,
//an optional "Selective dynamics" marker, the coordinate mode and one
//coordinate line per atom. Anything after the three coordinate fields of a
//line is preserved as the row tail.
func Parse(r io.Reader) (*Structure, error) {
	sc := bufio.NewScanner(r)
	lineno := 0
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("line %d: %w: unexpected end of file", lineno+1, ErrMalformed)
		}
		lineno++
		return sc.Text(), nil
	}

	s := new(Structure)
	var err error
	if s.Comment, err = next(); err != nil {
		return nil, err
	}
	line, err := next()
	if err != nil {
		return nil, err
	}
	s.Scale, err = strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w: bad scale factor %q", lineno, ErrMalformed, strings.TrimSpace(line))
	}
	lat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		if line, err = next(); err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: %w: lattice vector needs 3 components", lineno, ErrMalformed)
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: bad lattice component %q", lineno, ErrMalformed, fields[j])
			}
			lat = append(lat, v)
		}
	}
	s.Lattice = mat.NewDense(3, 3, lat)

	if line, err = next(); err != nil {
		return nil, err
	}
	symbols := strings.Fields(line)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("line %d: %w: empty element symbol line", lineno, ErrMalformed)
	}
	for _, sym := range symbols {
		if !alphabetic(sym) {
			return nil, fmt.Errorf("line %d: %w: element symbol line contains non-letter characters (%q); VASP 4 files without a symbol line are not supported", lineno, ErrMalformed, sym)
		}
	}
	if line, err = next(); err != nil {
		return nil, err
	}
	counts := strings.Fields(line)
	if len(counts) != len(symbols) {
		return nil, fmt.Errorf("line %d: %w: %d element symbols but %d counts", lineno, ErrMalformed, len(symbols), len(counts))
	}
	s.Species = make([]Species, len(symbols))
	for i, c := range counts {
		n, err := strconv.Atoi(c)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad atom count %q", lineno, ErrMalformed, c)
		}
		s.Species[i] = Species{Symbol: symbols[i], Count: n}
	}

	if line, err = next(); err != nil {
		return nil, err
	}
	if t := strings.TrimSpace(line); t != "" && (t[0] == 'S' || t[0] == 's') {
		s.Selective = true
		if line, err = next(); err != nil {
			return nil, err
		}
	}
	mode := strings.TrimSpace(line)
	if mode == "" {
		return nil, fmt.Errorf("line %d: %w: empty coordinate mode line", lineno, ErrMalformed)
	}
	switch mode[0] {
	case 'D', 'd':
		s.Cartesian = false
	case 'C', 'c', 'K', 'k':
		s.Cartesian = true
	default:
		return nil, fmt.Errorf("line %d: %w: unrecognized coordinate mode %q", lineno, ErrMalformed, mode)
	}

	natoms := s.NAtoms()
	coords := make([]float64, 0, natoms*3)
	tails := make([]string, 0, natoms)
	anytail := false
	for i := 0; i < natoms; i++ {
		if line, err = next(); err != nil {
			return nil, fmt.Errorf("%w: header counts add up to %d atoms but only %d coordinate lines found", ErrMalformed, natoms, i)
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: %w: coordinate line needs 3 components", lineno, ErrMalformed)
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: bad coordinate %q", lineno, ErrMalformed, fields[j])
			}
			coords = append(coords, v)
		}
		tail := strings.Join(fields[3:], " ")
		if tail != "" {
			anytail = true
		}
		tails = append(tails, tail)
	}
	s.Coords = mat.NewDense(natoms, 3, coords)
	if anytail {
		s.RowTails = tails
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

//ReadSymbols returns the element symbols from the header symbol line (the
//6th line) of a POSCAR/CONTCAR file, without parsing the rest of the file.
//The line must contain only letters and spaces.
func ReadSymbols(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	var line string
	for i := 0; i < 6; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%s: %w: file has fewer than 6 lines", name, ErrMalformed)
		}
		line = sc.Text()
	}
	symbols := strings.Fields(line)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%s: %w: empty element symbol line", name, ErrMalformed)
	}
	for _, sym := range symbols {
		if !alphabetic(sym) {
			return nil, fmt.Errorf("%s: %w: element symbol line contains non-letter characters (%q)", name, ErrMalformed, sym)
		}
	}
	return symbols, nil
}

func alphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
