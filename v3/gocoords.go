/*
 * gocoords.go, part of gomultipole.
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

package v3

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//Spherical returns the spherical coordinates of the point x,y,z: the distance to the
//origin r, the polar angle theta (from the Z axis, in [0,Pi]) and the azimuthal
//angle phi (from the X axis, in (-Pi,Pi]). For the origin itself, all three are 0.
func Spherical(x, y, z float64) (r, theta, phi float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	if r <= 0 {
		return 0, 0, 0
	}
	cos := z / r
	//Take care of floating point math errors
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	theta = math.Acos(cos)
	phi = math.Atan2(y, x)
	return r, theta, phi
}

//Cartesian is the inverse of Spherical.
func Cartesian(r, theta, phi float64) (x, y, z float64) {
	sint := math.Sin(theta)
	return r * sint * math.Cos(phi), r * sint * math.Sin(phi), r * math.Cos(theta)
}

//VecSpherical returns the spherical coordinates of the ith vector of F.
func (F *Matrix) VecSpherical(i int) (r, theta, phi float64) {
	v := F.Vec(i)
	return Spherical(v[0], v[1], v[2])
}

//Centroid returns a 1-vector matrix with the weighted average of the vectors in F.
//If weights is nil, all the vectors have the same weight. If the weights add up
//to zero (as the charges of a neutral system would) the absolute values of the weights
//are used instead. Panics if the number of weights doesn't match the number of vectors.
func (F *Matrix) Centroid(weights []float64) *Matrix {
	n := F.NVecs()
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != n {
		panic(ErrWeights)
	}
	w := weights
	total := floats.Sum(w)
	if math.Abs(total) <= appzero {
		w = make([]float64, n)
		for i, v := range weights {
			w[i] = math.Abs(v)
		}
		total = floats.Sum(w)
	}
	ret := Zeros(1)
	if total <= appzero && total >= -appzero {
		return ret
	}
	var c [3]float64
	for i := 0; i < n; i++ {
		v := F.Vec(i)
		for j := range c {
			c[j] += w[i] * v[j]
		}
	}
	floats.Scale(1/total, c[:])
	ret.SetVec(0, c)
	return ret
}
