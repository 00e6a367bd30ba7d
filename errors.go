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

package multipole

import (
	"fmt"
	"strings"

	"github.com/rmera/gomultipole/sph"
)

//Kind is a class of errors. Use errors.Is to check whether an error returned
//by this package is of a given Kind.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	//ErrInvalidDistribution: malformed descriptor, mismatched grid shapes, non-uniform grids or an empty list of charges.
	ErrInvalidDistribution = Kind("invalid charge distribution")
	//ErrInvalidOrder: negative truncation order, or an order too small for the requested quantity.
	ErrInvalidOrder = Kind("invalid truncation order")
	//ErrInvalidMoments: an incomplete or inconsistent table of moments.
	ErrInvalidMoments = Kind("invalid multipole moments")
	//ErrSingularEvaluation: evaluation at the expansion origin, or at a non-finite point.
	ErrSingularEvaluation = Kind("singular evaluation point")
	//ErrUndefinedAngle: a direction was requested for a zero-length vector.
	ErrUndefinedAngle = sph.ErrUndefinedAngle
)

//MultipoleError is the error type of the package. It implements Error.
type MultipoleError struct {
	message  string
	deco     []string
	critical bool
	kind     error
}

func newError(kind error, caller, format string, args ...interface{}) *MultipoleError {
	return &MultipoleError{message: fmt.Sprintf(format, args...), deco: []string{caller}, critical: true, kind: kind}
}

//Error returns a string with an error message.
func (err *MultipoleError) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("multipole: %s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("multipole: %s: %s (%s)", err.kind, err.message, strings.Join(err.deco, " < "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *MultipoleError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err *MultipoleError) Critical() bool { return err.critical }

//Unwrap returns the Kind of the error.
func (err *MultipoleError) Unwrap() error { return err.kind }

//errDecorate decorates the error with the caller's name before returning it,
//if the error implements Error. Other errors are returned as they are.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use MultipoleError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrIndexOutOfRange = PanicMsg("goMultipole: (l,m) out of range")
	ErrFieldShape      = PanicMsg("goMultipole: field index out of range")
)
