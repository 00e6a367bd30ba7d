/*
 * calculator.go, part of gomultipole.
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
	"time"

	"github.com/rmera/gomultipole/sph"
	"go.uber.org/zap"
)

var y00 = 1 / math.Sqrt(4*math.Pi)

//Calculate returns the table of multipole moments
//
//	q_{l,m} = sum_i w_i r_i^l conj(Y_{l,m}(theta_i, phi_i))
//
//for 0<=l<=lmax, where the sum runs over the point charges of a Discrete distribution
//(w_i is the charge) or over the cells of a Continuous one (w_i is rho*dV). Charges or cells
//at the origin only contribute to q_{0,0}. Only the moments with m>=0 are summed, the rest
//are obtained from q_{l,-m}=(-1)^m conj(q_{l,m}), which holds for any real distribution.
//
//The sum is split among Options.Cpus() goroutines, and the partial sums are
//added in a fixed order, so the result only depends on the number of goroutines used.
func Calculate(d Distribution, lmax int, options ...*Options) (*Moments, error) {
	O := pickOptions(options)
	if lmax < 0 {
		return nil, newError(ErrInvalidOrder, "Calculate", "negative truncation order %d", lmax)
	}
	if d == nil {
		return nil, newError(ErrInvalidDistribution, "Calculate", "nil distribution")
	}
	contrib, err := d.adapter()
	if err != nil {
		return nil, errDecorate(err, "Calculate")
	}
	start := time.Now()
	cpus := O.cpus
	if cpus > len(contrib) {
		cpus = len(contrib)
	}
	M := newMoments(lmax)
	if cpus < 1 { //every charge was zero
		return M, nil
	}
	chunk := (len(contrib) + cpus - 1) / cpus
	results := make([]chan []complex128, 0, cpus)
	for i := 0; i < len(contrib); i += chunk {
		end := i + chunk
		if end > len(contrib) {
			end = len(contrib)
		}
		res := make(chan []complex128, 1)
		results = append(results, res)
		go func(c []contribution, res chan<- []complex128) {
			partial := make([]complex128, sph.Len(lmax))
			accumulate(c, lmax, partial)
			res <- partial
		}(contrib[i:end], res)
	}
	//The partial sums are collected in the order the chunks were created.
	for _, res := range results {
		partial := <-res
		for i, v := range partial {
			M.q[i] += v
		}
	}
	fillNegativeOrders(M)
	O.logger.Debug("multipole moments calculated",
		zap.Int("lmax", lmax),
		zap.Int("contributions", len(contrib)),
		zap.Int("goroutines", len(results)),
		zap.Duration("elapsed", time.Since(start)))
	return M, nil
}

//accumulate adds the m>=0 moments of the contributions in c to dst.
func accumulate(c []contribution, lmax int, dst []complex128) {
	T := sph.NewTable(lmax)
	y := T.Values()
	for _, v := range c {
		if v.atOrigin() {
			//r^l is zero for every l>0, and Y_{0,0} doesn't depend on the direction.
			dst[0] += complex(v.w*y00, 0)
			continue
		}
		T.Fill(v.theta, v.phi)
		wrl := v.w
		for l := 0; l <= lmax; l++ {
			for m := 0; m <= l; m++ {
				i := sph.Index(l, m)
				//w r^l conj(Y)
				dst[i] += complex(wrl*real(y[i]), -wrl*imag(y[i]))
			}
			wrl *= v.r
		}
	}
}

//fillNegativeOrders sets q_{l,-m}=(-1)^m conj(q_{l,m}) for m>0
func fillNegativeOrders(M *Moments) {
	for l := 1; l <= M.lmax; l++ {
		for m := 1; m <= l; m++ {
			q := M.q[sph.Index(l, m)]
			if m%2 == 0 {
				M.q[sph.Index(l, -m)] = complex(real(q), -imag(q))
			} else {
				M.q[sph.Index(l, -m)] = complex(-real(q), imag(q))
			}
		}
	}
}
