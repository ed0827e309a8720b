/*
 * template.go, part of vasptools.
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

//Package adsorbate places small adsorbate molecules onto single-atom-alloy
//slabs, anchored above the dopant site at a requested distance.
package adsorbate

import (
	"fmt"
	"sort"
	"strings"
)

//TemplateAtom is one atom of a rigid adsorbate template: an element symbol
//and its offset, in Angstrom, from the anchor point. The local frame has
//+z pointing away from the surface.
type TemplateAtom struct {
	Symbol string
	Offset [3]float64
}

//Template is the fixed internal geometry of a named adsorbate. Templates
//are placed as rigid units; no optimization or collision checking is done.
type Template struct {
	Name  string
	Atoms []TemplateAtom
}

//The internal geometries are configuration constants. CO and CH3 use the
//classic placement values (1.2 A C-O bond along z; methyl H ring 0.5 A
//above the carbon); OH and H2O use standard gas-phase geometry (0.97 A
//O-H; 0.9572 A O-H with a 104.5 degree angle).
var templates = map[string]Template{
	"h": {Name: "H", Atoms: []TemplateAtom{
		{Symbol: "H", Offset: [3]float64{0, 0, 0}},
	}},
	"co": {Name: "CO", Atoms: []TemplateAtom{
		{Symbol: "C", Offset: [3]float64{0, 0, 0}},
		{Symbol: "O", Offset: [3]float64{0, 0, 1.2}},
	}},
	"oh": {Name: "OH", Atoms: []TemplateAtom{
		{Symbol: "O", Offset: [3]float64{0, 0, 0}},
		{Symbol: "H", Offset: [3]float64{0, 0, 0.97}},
	}},
	"h2o": {Name: "H2O", Atoms: []TemplateAtom{
		{Symbol: "O", Offset: [3]float64{0, 0, 0}},
		{Symbol: "H", Offset: [3]float64{0.7572, 0, 0.5865}},
		{Symbol: "H", Offset: [3]float64{-0.7572, 0, 0.5865}},
	}},
	"ch3": {Name: "CH3", Atoms: []TemplateAtom{
		{Symbol: "C", Offset: [3]float64{0, 0, 0}},
		{Symbol: "H", Offset: [3]float64{1, 0, 0.5}},
		{Symbol: "H", Offset: [3]float64{-0.5, 0.866, 0.5}},
		{Symbol: "H", Offset: [3]float64{-0.5, -0.866, 0.5}},
	}},
}

//Lookup resolves an adsorbate type, case-insensitively. "me" is accepted
//as an alias for the methyl group.
func Lookup(name string) (Template, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "me" {
		key = "ch3"
	}
	t, ok := templates[key]
	if !ok {
		return Template{}, fmt.Errorf("adsorbate: unknown adsorbate type %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

//Names returns the known adsorbate names, sorted.
func Names() []string {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.Name)
	}
	sort.Strings(out)
	return out
}
