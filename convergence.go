/*
 * convergence.go, part of gomultipole.
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
	"gonum.org/v1/gonum/stat"
)

//Convergence returns, for each order l of the expansion, the root mean square over the
//points in p of the relative change of the potential when the order l term is added,
//|term_l|/|sum_{l'<=l} term_l'|. The l=0 element is always 1, unless the monopole term
//vanishes. Values that don't decrease with l mean that the expansion is not converged at
//those points (or that they are inside the distribution). At least one point is needed.
func Convergence(E *Expansion, p *v3.Matrix) ([]float64, error) {
	if p == nil || p.Dense == nil {
		return nil, newError(ErrInvalidDistribution, "Convergence", "no points given")
	}
	if r, c := p.Dims(); r == 0 || c != 3 {
		return nil, newError(ErrInvalidDistribution, "Convergence", "no points given")
	}
	lmax := E.LMax()
	n := p.NVecs()
	rel := make([][]float64, lmax+1)
	for l := range rel {
		rel[l] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		v := p.Vec(i)
		terms, err := E.Terms(v[0], v[1], v[2])
		if err != nil {
			return nil, errDecorate(err, "Convergence")
		}
		var partial float64
		for l, t := range terms {
			partial += t
			d := math.Abs(t)
			if partial != 0 {
				d /= math.Abs(partial)
			}
			rel[l][i] = d * d
		}
	}
	ret := make([]float64, lmax+1)
	for l, sq := range rel {
		ret[l] = math.Sqrt(stat.Mean(sq, nil))
	}
	return ret, nil
}
