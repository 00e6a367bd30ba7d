/*
 * units.go, part of gomultipole.
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
	"math"
	"strings"
)

//Epsilon0 is the vacuum permittivity in F/m (CODATA 2018).
const Epsilon0 = 8.8541878128e-12

//Units is the unit convention for the potential. It only scales the potential,
//the multipole moments are the same for every convention.
type Units int

const (
	//Gaussian units: charges in statcoulomb, distances in cm, potential in statvolt.
	//Also the natural choice for atomic units (charges in e, distances in bohr, potential in hartree/e).
	Gaussian Units = iota
	//SI units: charges in coulomb, distances in m, potential in volt.
	SI
)

//Prefactor returns the constant that multiplies the whole potential:
//1 for Gaussian units and 1/(4 Pi epsilon_0) for SI.
func (u Units) Prefactor() float64 {
	switch u {
	case SI:
		return 1 / (4 * math.Pi * Epsilon0)
	default:
		return 1
	}
}

func (u Units) String() string {
	switch u {
	case Gaussian:
		return "gaussian"
	case SI:
		return "si"
	default:
		return fmt.Sprintf("Units(%d)", int(u))
	}
}

//ParseUnits returns the Units named by s ("gaussian" or "si", case insensitive).
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaussian", "cgs", "":
		return Gaussian, nil
	case "si":
		return SI, nil
	}
	return Gaussian, fmt.Errorf("multipole: unknown unit convention %q", s)
}
