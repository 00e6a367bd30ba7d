/*
 * adapter.go, part of gomultipole.
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
	"math"

	v3 "github.com/rmera/gomultipole/v3"
)

//contribution is one point charge or grid cell, as seen from the expansion origin.
//For a grid cell, w is rho*dV. If r is 0, theta and phi are meaningless and
//the contribution only counts for l=0.
type contribution struct {
	w     float64
	r     float64
	theta float64
	phi   float64
}

func (c contribution) atOrigin() bool {
	return c.r == 0
}

//discreteContributions converts the point charges to spherical coordinates. Zero charges are
//skipped. It also returns the total charge and the extent of the distribution.
func discreteContributions(charges []float64, coords *v3.Matrix) ([]contribution, float64, float64) {
	ret := make([]contribution, 0, len(charges))
	var total, extent float64
	for i, q := range charges {
		total += q
		if q == 0 {
			continue
		}
		r, theta, phi := coords.VecSpherical(i)
		extent = math.Max(extent, r)
		ret = append(ret, contribution{w: q, r: r, theta: theta, phi: phi})
	}
	return ret, total, extent
}

//continuousContributions converts the cells of the grid to spherical coordinates, with
//weight rho*dv. Empty cells are skipped. It also returns the total charge and the extent.
func continuousContributions(rho *Field, xs, ys, zs []float64, dv float64) ([]contribution, float64, float64) {
	ret := make([]contribution, 0, rho.Len()/2)
	var total, extent float64
	p := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				w := rho.data[p] * dv
				p++
				total += w
				if w == 0 {
					continue
				}
				r, theta, phi := v3.Spherical(x, y, z)
				extent = math.Max(extent, r)
				ret = append(ret, contribution{w: w, r: r, theta: theta, phi: phi})
			}
		}
	}
	return ret, total, extent
}
