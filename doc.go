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

/*Package multipole is the main package of the goMultipole library. It computes the
electrostatic potential of a charge distribution with a truncated multipole
(spherical harmonic) expansion around the origin, and evaluates that potential at
points outside the distribution.



	**goMultipole Capabilities**


    Charge distributions given as a set of point charges (Discrete) or as a
	density sampled on a regular, axis-aligned 3D grid (Continuous).

    Multipole moments q_{l,m} up to any truncation order lmax, computed
	concurrently. The moment table can be enumerated, serialized to JSON and
	used to rebuild the expansion later.

    Evaluation of the expanded potential, for single points or, concurrently,
	for sets of points given as a v3.Matrix. The contribution of each order l
	can be obtained separately, to assess the convergence of the expansion.

    Gaussian and SI unit conventions.

    Reading density grids from (optionally compressed) Gaussian cube files
	(package cube), reading charge distributions from JSON (package mpjson) and
	plotting potential profiles (package mpplot).


The conventions are

	q_{l,m} = sum_i q_i r_i^l conj(Y_{l,m}(theta_i, phi_i))

	Phi(r, theta, phi) = k sum_{l=0}^{lmax} sum_{m=-l}^{l} 4Pi/(2l+1) q_{l,m} Y_{l,m}(theta, phi) / r^{l+1}

where the Y_{l,m} are the orthonormal spherical harmonics with the Condon-Shortley phase
(package sph), and k is 1 in Gaussian units and 1/(4 Pi epsilon_0) in SI units.
For a continuous distribution the sum becomes a Riemann sum over the grid cells,
with rho*dV in place of q_i.

The expansion is centered at the origin of the coordinate frame. Calculate never
recenters a distribution; use the Centered or Translate methods of the distributions for that.
The expanded potential is only meaningful for points farther from the origin than
every charge in the distribution (see Expansion.Valid).*/
package multipole
