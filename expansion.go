/*
 * expansion.go, part of gomultipole.
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
	"math/cmplx"

	"github.com/rmera/gomultipole/sph"
	v3 "github.com/rmera/gomultipole/v3"
	"go.uber.org/zap"
)

//Expansion is a truncated multipole expansion of the potential of a charge distribution.
//It holds the moment table, which is never modified, so an Expansion can be used
//from several goroutines at the same time.
type Expansion struct {
	moments *Moments
	extent  float64
	opts    Options
	pref    []float64 //k*4Pi/(2l+1) for each l
}

//New calculates the multipole moments of d up to lmax and returns the corresponding expansion.
//All the errors in the distribution or the order are reported here, so the expansion
//returned can be evaluated at any point except the origin.
func New(d Distribution, lmax int, options ...*Options) (*Expansion, error) {
	M, err := Calculate(d, lmax, options...)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	E, err := FromMoments(M, options...)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	E.extent = d.Extent()
	return E, nil
}

//FromMoments returns the expansion for a precomputed table of moments. As the distribution
//is not known, the extent of the expansion is taken as 0 (see WithExtent).
func FromMoments(M *Moments, options ...*Options) (*Expansion, error) {
	if M == nil || len(M.q) != sph.Len(M.lmax) {
		return nil, newError(ErrInvalidMoments, "FromMoments", "nil or uninitialized moments")
	}
	E := new(Expansion)
	E.moments = M
	E.opts = pickOptions(options)
	k := E.opts.units.Prefactor()
	E.pref = make([]float64, M.lmax+1)
	for l := range E.pref {
		E.pref[l] = k * 4 * math.Pi / float64(2*l+1)
	}
	return E, nil
}

//WithExtent returns a copy of E with its extent set to r, for expansions built
//from moments of a distribution whose extent is known. Negative values are taken as 0.
func (E *Expansion) WithExtent(r float64) *Expansion {
	ret := *E
	ret.extent = math.Max(r, 0)
	return &ret
}

//Moments returns the table of moments of the expansion.
func (E *Expansion) Moments() *Moments {
	return E.moments
}

//LMax returns the truncation order.
func (E *Expansion) LMax() int {
	return E.moments.lmax
}

//Units returns the unit convention used for the potential.
func (E *Expansion) Units() Units {
	return E.opts.units
}

//Extent returns the distance from the origin to the farthest charge of the distribution.
func (E *Expansion) Extent() float64 {
	return E.extent
}

//Valid returns true if the point is farther from the origin than every charge
//in the distribution, i.e., if the expansion converges to the real potential there.
func (E *Expansion) Valid(x, y, z float64) bool {
	r, _, _ := v3.Spherical(x, y, z)
	return r > E.extent
}

//Potential returns the value of the expanded potential at x,y,z:
//
//	Phi = k sum_{l=0}^{lmax} sum_{m=-l}^{l} 4Pi/(2l+1) q_{l,m} Y_{l,m}(theta, phi) / r^{l+1}
//
//The sum is real for any real distribution, so only its real part is returned.
//If the imaginary part is not negligible a warning is logged.
//It returns an error if the point is the origin, or the result is not finite.
func (E *Expansion) Potential(x, y, z float64) (float64, error) {
	T := sph.NewTable(E.moments.lmax)
	v, err := E.terms(T, x, y, z, nil)
	if err != nil {
		return 0, errDecorate(err, "Potential")
	}
	return v, nil
}

//Func returns the potential as a function of x, y and z.
func (E *Expansion) Func() func(x, y, z float64) (float64, error) {
	return E.Potential
}

//PotentialVec returns the potential at the point given by the ith vector of p.
func (E *Expansion) PotentialVec(p *v3.Matrix, i int) (float64, error) {
	v := p.Vec(i)
	ret, err := E.Potential(v[0], v[1], v[2])
	if err != nil {
		return 0, errDecorate(err, "PotentialVec")
	}
	return ret, nil
}

//Terms returns the contribution of each order l, 0<=l<=lmax, to the potential at x,y,z.
//The potential is the sum of all the terms.
func (E *Expansion) Terms(x, y, z float64) ([]float64, error) {
	T := sph.NewTable(E.moments.lmax)
	ret := make([]float64, E.moments.lmax+1)
	_, err := E.terms(T, x, y, z, ret)
	if err != nil {
		return nil, errDecorate(err, "Terms")
	}
	return ret, nil
}

//Potentials returns the potential at each of the points in p. The points are
//split among Options.Cpus() goroutines. If the potential can't be computed
//at some point, the first such error (by point index) is returned.
func (E *Expansion) Potentials(p *v3.Matrix) ([]float64, error) {
	n := p.NVecs()
	ret := make([]float64, n)
	cpus := E.opts.cpus
	if cpus > n {
		cpus = n
	}
	if cpus < 1 {
		return ret, nil
	}
	chunk := (n + cpus - 1) / cpus
	errs := make([]chan error, 0, cpus)
	for i := 0; i < n; i += chunk {
		end := i + chunk
		if end > n {
			end = n
		}
		echan := make(chan error, 1)
		errs = append(errs, echan)
		go func(first, last int, echan chan<- error) {
			T := sph.NewTable(E.moments.lmax)
			for j := first; j < last; j++ {
				v := p.Vec(j)
				val, err := E.terms(T, v[0], v[1], v[2], nil)
				if err != nil {
					err = errDecorate(err, "Potentials")
					echan <- err
					return
				}
				ret[j] = val
			}
			echan <- nil
		}(i, end, echan)
	}
	var err error
	for _, echan := range errs {
		if e := <-echan; e != nil && err == nil {
			err = e
		}
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}

//terms evaluates the expansion at x,y,z using the table T. If dst is not nil, the
//contribution of each l is stored in it.
func (E *Expansion) terms(T *sph.Table, x, y, z float64, dst []float64) (float64, error) {
	for _, c := range [3]float64{x, y, z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return 0, newError(ErrSingularEvaluation, "terms", "non-finite point (%g, %g, %g)", x, y, z)
		}
	}
	r, theta, phi := v3.Spherical(x, y, z)
	if r == 0 {
		return 0, newError(ErrSingularEvaluation, "terms", "the potential is not defined at the expansion origin")
	}
	T.Fill(theta, phi)
	Y := T.Values()
	q := E.moments.q
	var total complex128
	var magnitude float64
	invr := 1 / r
	rl1 := invr //1/r^(l+1)
	for l := 0; l <= E.moments.lmax; l++ {
		var s complex128
		for m := -l; m <= l; m++ {
			i := sph.Index(l, m)
			t := q[i] * Y[i]
			s += t
			magnitude += E.pref[l] * rl1 * cmplx.Abs(t)
		}
		s *= complex(E.pref[l]*rl1, 0)
		if dst != nil {
			dst[l] = real(s)
		}
		total += s
		rl1 *= invr
	}
	ret := real(total)
	if math.IsNaN(ret) || math.IsInf(ret, 0) {
		return 0, newError(ErrSingularEvaluation, "terms", "non-finite potential at (%g, %g, %g), r=%g", x, y, z, r)
	}
	if math.Abs(imag(total)) > E.opts.imagTol*magnitude {
		E.opts.logger.Warn("non-negligible imaginary part in the expanded potential",
			zap.Float64("x", x), zap.Float64("y", y), zap.Float64("z", z),
			zap.Float64("real", ret), zap.Float64("imag", imag(total)))
	}
	return ret, nil
}
