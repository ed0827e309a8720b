/*
 * errors.go, part of vasptools.
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

import "errors"

//Sentinel errors for the failure classes the tools distinguish. They are
//always wrapped with file and line context; test code and callers match
//them with errors.Is.
var (
	//ErrMalformed marks a structure file whose header and coordinate
	//sections disagree, or whose fixed line layout is broken.
	ErrMalformed = errors.New("malformed structure file")
)
