/*
 * ylm.go, part of gomultipole.
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

package sph

import (
	"math"
	"math/cmplx"

	v3 "github.com/rmera/gomultipole/v3"
)

//Index returns the position of the (l,m) pair in a slice holding
//all the harmonics up to some lmax>=l, ordered by l and then m, from -l to l.
func Index(l, m int) int {
	return l*l + l + m
}

//Len returns the number of (l,m) pairs with l<=lmax
func Len(lmax int) int {
	return (lmax + 1) * (lmax + 1)
}

//Y returns the spherical harmonic Y_{l,m}(theta,phi). It panics if l<0 or |m|>l.
func Y(l, m int, theta, phi float64) complex128 {
	checkLM(l, m)
	am := m
	if m < 0 {
		am = -m
	}
	p := NormalizedLegendre(l, am, math.Cos(theta))
	//for theta in [0,Pi] sin(theta)>=0, but we don't want to
	//demand that from the caller.
	if math.Sin(theta) < 0 && am%2 != 0 {
		p = -p
	}
	s, c := math.Sincos(float64(am) * phi)
	y := complex(p*c, p*s)
	if m < 0 {
		y = cmplx.Conj(y)
		if am%2 != 0 {
			y = -y
		}
	}
	return y
}

//YVec returns Y_{l,m} for the direction of the vector x,y,z. It returns an error
//if the vector has zero length, since its direction is not defined.
func YVec(l, m int, x, y, z float64) (complex128, error) {
	r, theta, phi := v3.Spherical(x, y, z)
	if r == 0 {
		return 0, Error{"direction of a zero-length vector", []string{"YVec"}, true, ErrUndefinedAngle}
	}
	return Y(l, m, theta, phi), nil
}

//Table holds the values of all the spherical harmonics with l<=lmax
//for one direction. A Table can be refilled for different directions,
//so the memory is reused. It is not safe for concurrent use.
type Table struct {
	lmax int
	leg  []float64
	v    []complex128
}

//NewTable returns an empty table for harmonics up to lmax. It panics if lmax<0.
func NewTable(lmax int) *Table {
	if lmax < 0 {
		panic(ErrBadIndex)
	}
	return &Table{lmax: lmax, leg: make([]float64, triLen(lmax)), v: make([]complex128, Len(lmax))}
}

//LMax returns the largest l in the table
func (T *Table) LMax() int {
	return T.lmax
}

//At returns Y_{l,m} for the last direction the table was filled with.
func (T *Table) At(l, m int) complex128 {
	if l > T.lmax {
		panic(ErrBadIndex)
	}
	checkLM(l, m)
	return T.v[Index(l, m)]
}

//Values returns the slice with all the values in the table, indexed by Index.
//The slice is owned by the table and is overwritten on the next Fill.
func (T *Table) Values() []complex128 {
	return T.v
}

//Fill computes all the harmonics for the direction given by theta and phi.
func (T *Table) Fill(theta, phi float64) {
	sint, cost := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	T.fill(cost, sint, complex(cp, sp))
}

//FillVec computes all the harmonics for the direction of the vector x,y,z, without
//calling trigonometric functions. It returns an error if the vector has zero length.
func (T *Table) FillVec(x, y, z float64) error {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return Error{"direction of a zero-length vector", []string{"FillVec"}, true, ErrUndefinedAngle}
	}
	rho := math.Hypot(x, y)
	eiphi := complex(1, 0) //phi is taken as 0 on the Z axis
	if rho > 0 {
		eiphi = complex(x/rho, y/rho)
	}
	cost := z / r
	if cost > 1 {
		cost = 1
	} else if cost < -1 {
		cost = -1
	}
	T.fill(cost, rho/r, eiphi)
	return nil
}

//fill does the actual work, given cos(theta), sin(theta) and e^{i phi}
func (T *Table) fill(cost, sint float64, eiphi complex128) {
	T.leg = normLegendreTriangle(T.lmax, cost, sint, T.leg)
	eimphi := complex(1, 0)
	for m := 0; m <= T.lmax; m++ {
		sign := 1.0
		if m%2 != 0 {
			sign = -1.0
		}
		for l := m; l <= T.lmax; l++ {
			p := T.leg[triIndex(l, m)]
			y := complex(p*real(eimphi), p*imag(eimphi))
			T.v[Index(l, m)] = y
			if m > 0 {
				T.v[Index(l, -m)] = complex(sign*real(y), -sign*imag(y))
			}
		}
		eimphi *= eiphi
	}
}
