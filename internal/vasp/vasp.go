/*
 * vasp.go, part of vasptools.
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

//Package vasp provides the data model for VASP structure files (POSCAR/CONTCAR)
//and facilities for reading and writing them. Coordinates are kept in a
//gonum Dense matrix with one row per atom, so geometric manipulations can
//be done with ordinary matrix operations.
package vasp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Species pairs one element symbol of the header with its atom count.
//The order of Species in a Structure matches the grouping order of the
//coordinate rows.
type Species struct {
	Symbol string
	Count  int
}

//Structure holds one POSCAR/CONTCAR structure: the comment line, the scaled
//lattice, the element header and the atomic coordinates. Coords has one row
//per atom, grouped contiguously by element in header order. RowTails keeps
//whatever followed the three coordinate fields on each line (selective
//dynamics flags, typically) so it can be written back verbatim.
type Structure struct {
	Comment   string
	Scale     float64
	Lattice   *mat.Dense //3x3, one lattice vector per row, unscaled
	Species   []Species
	Selective bool
	Cartesian bool
	Coords    *mat.Dense //NAtoms x 3
	RowTails  []string
}

//NAtoms returns the number of atoms in the structure, as given by the
//header counts.
func (s *Structure) NAtoms() int {
	n := 0
	for _, sp := range s.Species {
		n += sp.Count
	}
	return n
}

//Symbols returns the element symbols of the header, in order.
func (s *Structure) Symbols() []string {
	syms := make([]string, len(s.Species))
	for i, sp := range s.Species {
		syms[i] = sp.Symbol
	}
	return syms
}

//SymbolOf returns the element symbol of the atom with the (0-based) index i,
//resolved from the cumulative header counts.
func (s *Structure) SymbolOf(i int) (string, error) {
	if i < 0 {
		return "", fmt.Errorf("vasp: atom index %d out of range", i)
	}
	sum := 0
	for _, sp := range s.Species {
		sum += sp.Count
		if i < sum {
			return sp.Symbol, nil
		}
	}
	return "", fmt.Errorf("vasp: atom index %d out of range (%d atoms)", i, sum)
}

//ScaledLattice returns the lattice matrix with the scale factor applied.
func (s *Structure) ScaledLattice() *mat.Dense {
	l := mat.NewDense(3, 3, nil)
	l.Scale(s.Scale, s.Lattice)
	return l
}

//CartCoord returns the cartesian position of atom i as a 3-element slice.
//For direct-mode structures the fractional coordinates are run through the
//scaled lattice.
func (s *Structure) CartCoord(i int) []float64 {
	row := s.Coords.RawRowView(i)
	if s.Cartesian {
		return []float64{row[0], row[1], row[2]}
	}
	l := s.ScaledLattice()
	cart := make([]float64, 3)
	for j := 0; j < 3; j++ {
		cart[j] = row[0]*l.At(0, j) + row[1]*l.At(1, j) + row[2]*l.At(2, j)
	}
	return cart
}

//FracCoord converts a cartesian position to fractional coordinates of this
//structure's scaled lattice. It returns an error if the lattice is singular.
func (s *Structure) FracCoord(cart []float64) ([]float64, error) {
	var inv mat.Dense
	if err := inv.Inverse(s.ScaledLattice()); err != nil {
		return nil, fmt.Errorf("vasp: singular lattice: %w", err)
	}
	frac := make([]float64, 3)
	for j := 0; j < 3; j++ {
		frac[j] = cart[0]*inv.At(0, j) + cart[1]*inv.At(1, j) + cart[2]*inv.At(2, j)
	}
	return frac, nil
}

//Check verifies the structural invariants: symbol and count lines of the
//same length, positive counts, and as many coordinate rows as the counts
//add up to.
func (s *Structure) Check() error {
	if len(s.Species) == 0 {
		return fmt.Errorf("vasp: %w: no element species in header", ErrMalformed)
	}
	for _, sp := range s.Species {
		if sp.Count <= 0 {
			return fmt.Errorf("vasp: %w: non-positive count %d for element %s", ErrMalformed, sp.Count, sp.Symbol)
		}
	}
	rows, cols := s.Coords.Dims()
	if cols != 3 {
		return fmt.Errorf("vasp: %w: coordinate matrix has %d columns", ErrMalformed, cols)
	}
	if rows != s.NAtoms() {
		return fmt.Errorf("vasp: %w: header counts add up to %d atoms but %d coordinate lines found", ErrMalformed, s.NAtoms(), rows)
	}
	if len(s.RowTails) != 0 && len(s.RowTails) != rows {
		return fmt.Errorf("vasp: %w: %d coordinate tails for %d atoms", ErrMalformed, len(s.RowTails), rows)
	}
	return nil
}

//InsertAtom adds one atom of the given element, with the given coordinate
//row (in the structure's own mode), keeping the header/grouping invariant:
//the row goes at the end of the element's existing group, or a new species
//entry is appended at the end of the header. tail is the text written after
//the coordinates (selective dynamics flags); when empty and the structure
//carries tails, "T T T" is used.
func (s *Structure) InsertAtom(symbol string, coord []float64, tail string) {
	pos := s.NAtoms() //insertion row
	spIdx := -1
	cum := 0
	for i, sp := range s.Species {
		cum += sp.Count
		if sp.Symbol == symbol {
			spIdx = i
			pos = cum
		}
	}
	if spIdx >= 0 {
		s.Species[spIdx].Count++
	} else {
		s.Species = append(s.Species, Species{Symbol: symbol, Count: 1})
	}
	rows, _ := s.Coords.Dims()
	data := make([]float64, 0, (rows+1)*3)
	for i := 0; i < pos; i++ {
		data = append(data, s.Coords.RawRowView(i)...)
	}
	data = append(data, coord[0], coord[1], coord[2])
	for i := pos; i < rows; i++ {
		data = append(data, s.Coords.RawRowView(i)...)
	}
	s.Coords = mat.NewDense(rows+1, 3, data)
	if s.RowTails != nil {
		if tail == "" {
			tail = "T T T"
		}
		tails := make([]string, 0, rows+1)
		tails = append(tails, s.RowTails[:pos]...)
		tails = append(tails, tail)
		tails = append(tails, s.RowTails[pos:]...)
		s.RowTails = tails
	}
}

//Copy returns a deep copy of the structure.
func (s *Structure) Copy() *Structure {
	n := new(Structure)
	n.Comment = s.Comment
	n.Scale = s.Scale
	n.Selective = s.Selective
	n.Cartesian = s.Cartesian
	n.Lattice = mat.DenseCopyOf(s.Lattice)
	n.Coords = mat.DenseCopyOf(s.Coords)
	n.Species = make([]Species, len(s.Species))
	copy(n.Species, s.Species)
	if s.RowTails != nil {
		n.RowTails = make([]string, len(s.RowTails))
		copy(n.RowTails, s.RowTails)
	}
	return n
}
