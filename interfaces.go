/*
 * interfaces.go, part of gomultipole.
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

//Distribution is a charge distribution that can be expanded in multipoles.
//It is implemented only by *Discrete and *Continuous, in this package.
type Distribution interface {
	//Len returns the number of point charges or grid cells.
	Len() int

	//TotalCharge returns the sum of all the charges, or the integral of the density.
	TotalCharge() float64

	//Extent returns the largest distance from the origin of any charge or
	//grid cell with a non-zero charge. The expansion is only valid beyond it.
	Extent() float64

	//adapter returns the charges as (weight, r, theta, phi) tuples. The
	//slice is shared and must not be modified.
	adapter() ([]contribution, error)
}

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
	Critical() bool
}
