/*
 * doc.go, part of gomultipole.
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

/*Package sph evaluates complex spherical harmonics Y_{l,m}(theta, phi).

The harmonics are orthonormal over the unit sphere and include the Condon-Shortley
phase, so that

	Y_{l,m}(theta, phi) = (-1)^m sqrt((2l+1)/(4 Pi) (l-m)!/(l+m)!) P_l^m(cos theta) e^{i m phi}

for m >= 0, and Y_{l,-m} = (-1)^m conj(Y_{l,m}). Here theta is the polar angle, measured
from the Z axis, and phi the azimuthal angle, measured from the X axis.

The evaluation uses a recurrence on the normalized associated Legendre functions,
so no factorial is ever formed explicitly, and the values stay well within
float64 range for l in the hundreds. The closed form above, with log-factorials,
is available through Norm and Legendre for small l.*/
package sph
