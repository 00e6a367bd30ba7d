/*
 * options.go, part of gomultipole.
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
	"runtime"

	"go.uber.org/zap"
)

//Options holds the settings for the calculation and evaluation of a multipole expansion.
//The zero value is not usable, use DefaultOptions.
type Options struct {
	cpus    int
	units   Units
	imagTol float64
	logger  *zap.Logger
}

//DefaultOptions returns an Options with the default values: as many goroutines as
//logical CPUs, Gaussian units, a relative tolerance of 1e-9 for the imaginary residual
//of the potential and a logger that discards everything.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	ret.units = Gaussian
	ret.imagTol = 1e-9
	ret.logger = zap.NewNop()
	return ret
}

//Cpus returns the current number of goroutines to be used
//in concurrent calculations, and sets it, if a valid value is given.
func (O *Options) Cpus(cpus ...int) int {
	ret := O.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		O.cpus = cpus[0]
	}
	return ret
}

//Units returns the current unit convention and sets it, if a value is given.
func (O *Options) Units(units ...Units) Units {
	ret := O.units
	if len(units) > 0 {
		O.units = units[0]
	}
	return ret
}

//ImagTolerance returns the relative size of the imaginary part of the potential
//above which a warning is logged, and sets it, if a valid value is given.
func (O *Options) ImagTolerance(tol ...float64) float64 {
	ret := O.imagTol
	if len(tol) > 0 && tol[0] > 0 {
		O.imagTol = tol[0]
	}
	return ret
}

//Logger returns the current logger, and sets it, if a non-nil value is given.
func (O *Options) Logger(logger ...*zap.Logger) *zap.Logger {
	ret := O.logger
	if len(logger) > 0 && logger[0] != nil {
		O.logger = logger[0]
	}
	return ret
}

//pickOptions returns a copy of the first non-nil options given, or the defaults.
//Copying means that later changes to the caller's Options don't affect
//expansions already built.
func pickOptions(options []*Options) Options {
	if len(options) > 0 && options[0] != nil {
		ret := *options[0]
		if ret.logger == nil {
			ret.logger = zap.NewNop()
		}
		if ret.cpus < 1 {
			ret.cpus = 1
		}
		if ret.imagTol <= 0 {
			ret.imagTol = 1e-9
		}
		return ret
	}
	return *DefaultOptions()
}
