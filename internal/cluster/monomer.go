/*
 * monomer.go, part of vasptools.
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

//Package cluster generates the monomer and cluster structure files of a
//many-body expansion: given a parent structure and a partition of its atoms
//into monomers, it emits one POSCAR per requested combination of monomers.
package cluster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

//A Monomer is a set of 1-based atom indices into the parent structure,
//kept sorted ascending so that the parent's element grouping survives
//subsetting.
type Monomer []int

//ParseMonomers reads monomer definitions, one per line, each line a
//comma-separated list of 1-based atom indices into a parent structure with
//natoms atoms. Indices may not repeat, within a monomer or across monomers,
//and must lie in [1, natoms]. Atoms claimed by no monomer are gathered into
//one implicit trailing monomer, so the returned set always covers the
//parent.
func ParseMonomers(r io.Reader, natoms int) ([]Monomer, error) {
	var monomers []Monomer
	seen := make(map[int]bool, natoms)
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var m Monomer
		for _, field := range strings.Split(line, ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("monomers line %d: bad atom index %q", lineno, strings.TrimSpace(field))
			}
			if idx < 1 || idx > natoms {
				return nil, fmt.Errorf("monomers line %d: atom index %d exceeds the %d atoms of the parent structure", lineno, idx, natoms)
			}
			if seen[idx] {
				return nil, fmt.Errorf("monomers line %d: atom index %d is repeated", lineno, idx)
			}
			seen[idx] = true
			m = append(m, idx)
		}
		sort.Ints(m)
		monomers = append(monomers, m)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(monomers) == 0 {
		return nil, fmt.Errorf("monomers file defines no monomers")
	}
	var missing Monomer
	for i := 1; i <= natoms; i++ {
		if !seen[i] {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		monomers = append(monomers, missing)
	}
	return monomers, nil
}

//ReadMonomers is the file-opening convenience around ParseMonomers.
func ReadMonomers(name string, natoms int) ([]Monomer, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ParseMonomers(f, natoms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

//merge returns the sorted union of the member monomers' atom indices.
//Monomers are disjoint by construction, so no deduplication is needed.
func merge(monomers []Monomer, members []int) []int {
	var out []int
	for _, i := range members {
		out = append(out, monomers[i]...)
	}
	sort.Ints(out)
	return out
}
