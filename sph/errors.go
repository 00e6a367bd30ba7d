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

package sph

import "fmt"

//Error is the error type of the package. It fulfills multipole.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
	kind     error
}

func (err Error) Error() string {
	return fmt.Sprintf("sph: %s", err.message)
}

//Decorate adds the dec string to the decoration slice of the error and returns the slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//Unwrap gives the kind of the error, so errors.Is works.
func (err Error) Unwrap() error { return err.kind }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Kind is a class of errors, to be used with errors.Is
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	//ErrUndefinedAngle is the kind of error for directions given by a zero-length vector.
	ErrUndefinedAngle = Kind("undefined angle")

	ErrBadIndex          = PanicMsg("goMultipole/sph: l must be non-negative and |m| <= l")
	ErrNegativeFactorial = PanicMsg("goMultipole/sph: factorial of a negative number")
	ErrDomain            = PanicMsg("goMultipole/sph: argument outside [-1,1]")
)

func checkLM(l, m int) {
	if l < 0 || m > l || m < -l {
		panic(ErrBadIndex)
	}
}
