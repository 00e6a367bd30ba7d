/*
 * errors.go, part of gomultipole.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cube

import (
	"fmt"

	multipole "github.com/rmera/gomultipole"
)

//Error is the error type for cube file problems.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	kind     error
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("cube error: %s", err.message)
	}
	return fmt.Sprintf("cube file %s error: %s", err.filename, err.message)
}

//Decorate returns the decoration slice with deco appended. As the receiver is a value,
//the caller needs to store the returned slice if the error is to keep it.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated with the error, if any.
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error, always "cube".
func (err Error) Format() string { return "cube" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error, usually multipole.ErrInvalidDistribution.
func (err Error) Unwrap() error { return err.kind }

func errDecorate(err error, caller string) error {
	if e, ok := err.(multipole.Error); ok {
		e.Decorate(caller)
	}
	return err
}
