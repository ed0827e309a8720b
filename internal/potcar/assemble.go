/*
 * assemble.go, part of vasptools.
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

package potcar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/saa-lab/vasptools/internal/vasp"
)

//Options configures one POTCAR assembly run.
type Options struct {
	Structure string //structure file; empty picks POSCAR, then CONTCAR
	Library   string //root of the PAW potential library
	Setting   int    //PAW setting, 1-based
	Output    string //output file, default POTCAR
	Append    bool   //concatenate onto an existing output instead of backing it up
	Logger    *zap.Logger
}

//block is one resolved pseudopotential source, located before any output
//is written.
type block struct {
	element string
	name    string //PAW potential directory name
	path    string
	gzipped bool
}

//FindStructure returns the structure file to read elements from: POSCAR if
//present in dir, otherwise CONTCAR.
func FindStructure(dir string) (string, error) {
	for _, name := range []string{"POSCAR", "CONTCAR"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("potcar: neither POSCAR nor CONTCAR found in %s", dir)
}

//locate finds the POTCAR block file for one potential name under the
//library root. Libraries frequently ship the blocks gzipped, so POTCAR.gz
//is accepted when the plain file is absent.
func locate(library, name string) (string, bool, error) {
	plain := filepath.Join(library, name, "POTCAR")
	if _, err := os.Stat(plain); err == nil {
		return plain, false, nil
	}
	gz := plain + ".gz"
	if _, err := os.Stat(gz); err == nil {
		return gz, true, nil
	}
	return "", false, fmt.Errorf("potcar: PAW potential %s not found under %s", name, library)
}

//Assemble builds a POTCAR from the element header of a structure file,
//appending one pseudopotential block per element in header order. Every
//block is resolved and located before a single byte is written, so a
//missing potential never leaves a partial output. It returns the potential
//names appended, in order.
func Assemble(opts Options) ([]string, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if !ValidSetting(opts.Setting) {
		return nil, fmt.Errorf("potcar: unknown PAW setting %d (valid: 1-%d)", opts.Setting, NSettings)
	}
	if fi, err := os.Stat(opts.Library); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("potcar: PAW library %s is not a directory", opts.Library)
	}
	structure := opts.Structure
	if structure == "" {
		var err error
		if structure, err = FindStructure("."); err != nil {
			return nil, err
		}
	}
	elements, err := vasp.ReadSymbols(structure)
	if err != nil {
		return nil, err
	}
	log.Info("assembling POTCAR",
		zap.String("structure", structure),
		zap.Strings("elements", elements),
		zap.Int("setting", opts.Setting),
		zap.String("policy", SettingDescriptions[opts.Setting-1]))

	blocks := make([]block, len(elements))
	for i, el := range elements {
		name, err := Resolve(el, opts.Setting)
		if err != nil {
			return nil, err
		}
		path, gzipped, err := locate(opts.Library, name)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", el, err)
		}
		blocks[i] = block{element: el, name: name, path: path, gzipped: gzipped}
	}

	output := opts.Output
	if output == "" {
		output = "POTCAR"
	}
	if !opts.Append {
		backup, err := vasp.Backup(output, "_old_")
		if err != nil {
			return nil, err
		}
		if backup != "" {
			log.Info("renamed existing POTCAR", zap.String("backup", backup))
		}
	}
	out, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	names := make([]string, len(blocks))
	for i, b := range blocks {
		if err := appendBlock(out, b); err != nil {
			return nil, err
		}
		log.Info("appended PAW potential", zap.String("element", b.element), zap.String("potential", b.name))
		names[i] = b.name
	}
	return names, nil
}

func appendBlock(w io.Writer, b block) error {
	f, err := os.Open(b.path)
	if err != nil {
		return err
	}
	defer f.Close()
	var r io.Reader = f
	if b.gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("potcar: %s: %w", b.path, err)
		}
		defer gz.Close()
		r = gz
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("potcar: appending %s: %w", b.path, err)
	}
	return nil
}
