/*
 * place.go, part of vasptools.
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

package adsorbate

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/saa-lab/vasptools/internal/vasp"
)

//Direction selects how the placement axis is obtained.
type Direction int

const (
	//DirectionZ places along the fixed cartesian z axis.
	DirectionZ Direction = iota
	//DirectionNormal places along the unit normal of the a,b lattice
	//plane, oriented away from the surface (positive z component).
	DirectionNormal
)

//Options configures one placement.
type Options struct {
	Distance    float64   //Angstrom between dopant and anchor
	Direction   Direction //placement axis
	DopantIndex int       //1-based explicit dopant atom; 0 finds it by element count
	Logger      *zap.Logger
}

//FindDopant locates the dopant site of a single-atom alloy: the atom whose
//element occurs exactly once in the structure. It returns the 0-based atom
//index and the element symbol. Zero or several single-count elements is an
//error reporting how many candidates were found.
func FindDopant(s *vasp.Structure) (int, string, error) {
	totals := make(map[string]int)
	for _, sp := range s.Species {
		totals[sp.Symbol] += sp.Count
	}
	var unique []string
	for _, sp := range s.Species {
		if totals[sp.Symbol] == 1 {
			unique = append(unique, sp.Symbol)
		}
	}
	if len(unique) != 1 {
		return 0, "", fmt.Errorf("adsorbate: structure needs exactly one single-count element to mark the dopant site, found %d", len(unique))
	}
	sym := unique[0]
	offset := 0
	for _, sp := range s.Species {
		if sp.Symbol == sym {
			return offset, sym, nil
		}
		offset += sp.Count
	}
	//unreachable: unique came from Species
	return 0, "", fmt.Errorf("adsorbate: dopant element %s not found", sym)
}

//axis returns the unit placement direction for the structure.
func axis(s *vasp.Structure, d Direction) ([]float64, error) {
	if d == DirectionZ {
		return []float64{0, 0, 1}, nil
	}
	l := s.ScaledLattice()
	a := l.RawRowView(0)
	b := l.RawRowView(1)
	n := cross(a, b)
	norm := floats.Norm(n, 2)
	if norm == 0 {
		return nil, fmt.Errorf("adsorbate: lattice vectors a and b are collinear, surface normal undefined")
	}
	floats.Scale(1/norm, n)
	if n[2] < 0 { //point away from the slab
		floats.Scale(-1, n)
	}
	return n, nil
}

func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

//rotatorToNewZ builds the rotation that carries the +z axis onto the unit
//vector d (Rodrigues form). Template offsets are defined with +z along the
//placement axis, so applying this operator tilts the rigid unit with the
//axis.
func rotatorToNewZ(d []float64) *mat.Dense {
	k := cross([]float64{0, 0, 1}, d)
	s := floats.Norm(k, 2)
	c := d[2]
	if s < 1e-12 {
		if c > 0 {
			return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
		}
		//d is -z: half turn around x
		return mat.NewDense(3, 3, []float64{1, 0, 0, 0, -1, 0, 0, 0, -1})
	}
	floats.Scale(1/s, k)
	kx, ky, kz := k[0], k[1], k[2]
	v := 1 - c
	return mat.NewDense(3, 3, []float64{
		c + kx*kx*v, kx*ky*v - kz*s, kx*kz*v + ky*s,
		ky*kx*v + kz*s, c + ky*ky*v, ky*kz*v - kx*s,
		kz*kx*v - ky*s, kz*ky*v + kx*s, c + kz*kz*v,
	})
}

//Place returns a copy of s with the adsorbate t added at
//dopant + Distance*axis, the template offsets rotated onto the axis. The
//element header is merged (existing species counts incremented, new species
//appended) and coordinate rows are inserted in the matching group, so the
//result satisfies the same invariants as the input. The input structure is
//not modified.
func Place(s *vasp.Structure, t Template, opts Options) (*vasp.Structure, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	if opts.Distance < 0 {
		return nil, fmt.Errorf("adsorbate: negative placement distance %g", opts.Distance)
	}
	var idx int
	var sym string
	if opts.DopantIndex > 0 {
		if opts.DopantIndex > s.NAtoms() {
			return nil, fmt.Errorf("adsorbate: dopant index %d exceeds the %d atoms of the structure", opts.DopantIndex, s.NAtoms())
		}
		idx = opts.DopantIndex - 1
		var err error
		if sym, err = s.SymbolOf(idx); err != nil {
			return nil, err
		}
	} else {
		var err error
		if idx, sym, err = FindDopant(s); err != nil {
			return nil, err
		}
	}
	dir, err := axis(s, opts.Direction)
	if err != nil {
		return nil, err
	}
	dopant := s.CartCoord(idx)
	anchor := make([]float64, 3)
	copy(anchor, dopant)
	floats.AddScaled(anchor, opts.Distance, dir)
	log.Info("placing adsorbate",
		zap.String("adsorbate", t.Name),
		zap.String("dopant", sym),
		zap.Int("dopantIndex", idx+1),
		zap.Float64("distance", opts.Distance),
		zap.Float64s("anchor", anchor))

	rot := rotatorToNewZ(dir)
	out := s.Copy()
	for _, a := range t.Atoms {
		off := mat.NewVecDense(3, []float64{a.Offset[0], a.Offset[1], a.Offset[2]})
		var rotated mat.VecDense
		rotated.MulVec(rot, off)
		cart := []float64{
			anchor[0] + rotated.AtVec(0),
			anchor[1] + rotated.AtVec(1),
			anchor[2] + rotated.AtVec(2),
		}
		coord := cart
		if !s.Cartesian {
			if coord, err = s.FracCoord(cart); err != nil {
				return nil, err
			}
		}
		out.InsertAtom(a.Symbol, coord, "")
	}
	if err := out.Check(); err != nil {
		return nil, err
	}
	return out, nil
}
