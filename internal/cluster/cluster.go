/*
 * cluster.go, part of vasptools.
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

package cluster

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/saa-lab/vasptools/internal/vasp"
)

//Subset builds a new structure from the atoms of parent with the given
//1-based indices, which must be sorted ascending. The element header is
//recomputed by run-length encoding the subset's symbol sequence, which
//keeps the coordinate rows grouped exactly as the header declares.
func Subset(parent *vasp.Structure, indices []int) (*vasp.Structure, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("cluster: empty atom selection")
	}
	n := parent.NAtoms()
	s := new(vasp.Structure)
	s.Comment = parent.Comment
	s.Scale = parent.Scale
	s.Lattice = mat.DenseCopyOf(parent.Lattice)
	s.Selective = parent.Selective
	s.Cartesian = parent.Cartesian

	coords := make([]float64, 0, len(indices)*3)
	var tails []string
	for _, idx := range indices {
		if idx < 1 || idx > n {
			return nil, fmt.Errorf("cluster: atom index %d exceeds the %d atoms of the parent structure", idx, n)
		}
		sym, err := parent.SymbolOf(idx - 1)
		if err != nil {
			return nil, err
		}
		if len(s.Species) == 0 || s.Species[len(s.Species)-1].Symbol != sym {
			s.Species = append(s.Species, vasp.Species{Symbol: sym, Count: 1})
		} else {
			s.Species[len(s.Species)-1].Count++
		}
		coords = append(coords, parent.Coords.RawRowView(idx-1)...)
		if parent.RowTails != nil {
			tails = append(tails, parent.RowTails[idx-1])
		}
	}
	s.Coords = mat.NewDense(len(indices), 3, coords)
	s.RowTails = tails
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

//FileName encodes a monomer combination (0-based member indices) into the
//output name, 1-based, so different combinations never collide:
//POSCAR_3, POSCAR_1_2, POSCAR_1_2_4.
func FileName(members []int) string {
	parts := make([]string, len(members)+1)
	parts[0] = "POSCAR"
	for i, m := range members {
		parts[i+1] = strconv.Itoa(m + 1)
	}
	return strings.Join(parts, "_")
}

//Generate writes one structure file per size-order combination of the
//monomers into dir and returns the file names written. With order 0 it
//reproduces the classic many-body input set: every monomer and every pair.
//Nothing is written until the parent, the monomers and the order have all
//been validated.
func Generate(parent *vasp.Structure, monomers []Monomer, order int, dir string) ([]string, error) {
	if err := parent.Check(); err != nil {
		return nil, err
	}
	n := len(monomers)
	if n == 0 {
		return nil, fmt.Errorf("cluster: no monomers to combine")
	}
	if order < 0 || order > n {
		return nil, fmt.Errorf("cluster: body order %d out of range for %d monomers", order, n)
	}
	var sets [][]int
	if order == 0 {
		sets = append(sets, combin.Combinations(n, 1)...)
		if n >= 2 {
			sets = append(sets, combin.Combinations(n, 2)...)
		}
	} else {
		sets = combin.Combinations(n, order)
	}
	//Build every output structure before writing any file, so a bad
	//combination cannot leave a partial set behind.
	structures := make([]*vasp.Structure, len(sets))
	names := make([]string, len(sets))
	for i, members := range sets {
		s, err := Subset(parent, merge(monomers, members))
		if err != nil {
			return nil, err
		}
		structures[i] = s
		names[i] = filepath.Join(dir, FileName(members))
	}
	for i, s := range structures {
		if err := vasp.Write(names[i], s); err != nil {
			return nil, err
		}
	}
	return names, nil
}
