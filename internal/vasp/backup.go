/*
 * backup.go, part of vasptools.
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
	"fmt"
	"os"
	"time"
)

//Timestamp returns t formatted down to the millisecond, filesystem-safe,
//for use as a backup file suffix.
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%s-%03d", t.Format("2006-01-02_15-04-05"), t.Nanosecond()/1e6)
}

//Backup renames path out of the way by appending sep and a millisecond
//timestamp, returning the new name. A missing file is not an error; the
//returned name is empty in that case.
func Backup(path, sep string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	backup := path + sep + Timestamp(time.Now())
	if err := os.Rename(path, backup); err != nil {
		return "", err
	}
	return backup, nil
}
