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

package cube

//Conversions
const (
	A2Bohr = 1.889725989
	Bohr2A = 1 / 1.889725989
)

//ToBohr converts a cube given in angstrom to atomic units, in place. Distances are
//multiplied by A2Bohr and the values, taken as densities, divided by A2Bohr^3,
//so the integrated charge doesn't change. Cubes already in bohr are not modified.
func (C *Cube) ToBohr() {
	if !C.Angstrom {
		return
	}
	for i := range C.Origin {
		C.Origin[i] *= A2Bohr
		C.Step[i] *= A2Bohr
	}
	for i := range C.Atoms {
		for j := range C.Atoms[i].XYZ {
			C.Atoms[i].XYZ[j] *= A2Bohr
		}
	}
	if C.Data != nil {
		v := A2Bohr * A2Bohr * A2Bohr
		d := C.Data.RawData()
		for i := range d {
			d[i] /= v
		}
	}
	C.Angstrom = false
}
