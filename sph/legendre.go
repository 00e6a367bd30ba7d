/*
 * legendre.go, part of gomultipole.
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

import "math"

//triIndex is the position of (l,m), m>=0, in a triangular slice.
func triIndex(l, m int) int {
	return l*(l+1)/2 + m
}

//triLen is the length of a triangular slice holding all l<=lmax, 0<=m<=l
func triLen(lmax int) int {
	return (lmax + 1) * (lmax + 2) / 2
}

//normLegendreTriangle fills dst with the normalized associated Legendre values
//Pbar_l^m(x) for 0<=m<=l<=lmax, where x=cos(theta) and sint=sin(theta)>=0.
//They are normalized so that Y_{l,m}=Pbar_l^m(cos theta)e^{i m phi}, with the
//Condon-Shortley phase included. dst is allocated if it is too short.
func normLegendreTriangle(lmax int, x, sint float64, dst []float64) []float64 {
	n := triLen(lmax)
	if len(dst) < n {
		dst = make([]float64, n)
	}
	dst[0] = 1 / math.Sqrt(4*math.Pi)
	for m := 1; m <= lmax; m++ {
		fm := float64(m)
		dst[triIndex(m, m)] = -math.Sqrt((2*fm+1)/(2*fm)) * sint * dst[triIndex(m-1, m-1)]
	}
	for m := 0; m < lmax; m++ {
		dst[triIndex(m+1, m)] = math.Sqrt(2*float64(m)+3) * x * dst[triIndex(m, m)]
	}
	for m := 0; m <= lmax; m++ {
		fm2 := float64(m * m)
		for l := m + 2; l <= lmax; l++ {
			fl := float64(l)
			a := math.Sqrt((4*fl*fl - 1) / (fl*fl - fm2))
			b := math.Sqrt(((fl-1)*(fl-1) - fm2) / (4*(fl-1)*(fl-1) - 1))
			dst[triIndex(l, m)] = a * (x*dst[triIndex(l-1, m)] - b*dst[triIndex(l-2, m)])
		}
	}
	return dst[:n]
}

//NormalizedLegendre returns the associated Legendre function of degree l and
//order m at x, normalized so that Y_{l,m}(theta,phi)=NormalizedLegendre(l,m,cos theta)e^{i m phi}.
//It panics if |x|>1 or if l and m are not valid indexes.
func NormalizedLegendre(l, m int, x float64) float64 {
	checkLM(l, m)
	if x > 1 || x < -1 {
		panic(ErrDomain)
	}
	sign := 1.0
	if m < 0 {
		m = -m
		if m%2 != 0 {
			sign = -1
		}
	}
	sint := math.Sqrt((1 - x) * (1 + x))
	t := normLegendreTriangle(l, x, sint, nil)
	return sign * t[triIndex(l, m)]
}

//Legendre returns the (unnormalized) associated Legendre function P_l^m(x), with the Condon-Shortley
//phase. It is computed with the standard three-term recurrence and, for
//negative m, with the (-1)^m (l-m)!/(l+m)! relation, so it is only meant for
//moderate l (say, below 30), where the values are still representable.
func Legendre(l, m int, x float64) float64 {
	checkLM(l, m)
	if x > 1 || x < -1 {
		panic(ErrDomain)
	}
	if m < 0 {
		am := -m
		f := math.Exp(LogFactorial(l-am) - LogFactorial(l+am))
		if am%2 != 0 {
			f = -f
		}
		return f * Legendre(l, am, x)
	}
	sint := math.Sqrt((1 - x) * (1 + x))
	pmm := 1.0
	fact := 1.0
	for i := 1; i <= m; i++ {
		pmm *= -fact * sint
		fact += 2
	}
	if l == m {
		return pmm
	}
	pmm1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmm1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmm1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmm1
		pmm1 = pll
	}
	return pll
}
