/*
 * v3_test.go, part of gomultipole.
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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, [3]float64{4, 5, 6}, A.Vec(1))
	A.SetVec(1, [3]float64{100, 5, 6})
	assert.Equal(Te, 100.0, A.At(1, 0))
	fmt.Println("A\n", A)

	_, err = NewMatrix([]float64{1, 2})
	require.Error(Te, err)
	_, err = NewMatrix(nil)
	require.Error(Te, err)
}

func TestSpherical(Te *testing.T) {
	r, theta, phi := Spherical(0, 0, 2)
	assert.InDelta(Te, 2, r, 1e-12)
	assert.InDelta(Te, 0, theta, 1e-12)
	assert.InDelta(Te, 0, phi, 1e-12)

	r, theta, phi = Spherical(0, 0, -1)
	assert.InDelta(Te, 1, r, 1e-12)
	assert.InDelta(Te, math.Pi, theta, 1e-12)
	assert.InDelta(Te, 0, phi, 1e-12)

	r, theta, phi = Spherical(0, 1, 0)
	assert.InDelta(Te, 1, r, 1e-12)
	assert.InDelta(Te, math.Pi/2, theta, 1e-12)
	assert.InDelta(Te, math.Pi/2, phi, 1e-12)

	r, theta, phi = Spherical(0, 0, 0)
	assert.Equal(Te, [3]float64{0, 0, 0}, [3]float64{r, theta, phi})

	for _, p := range [][3]float64{{30.5, 30.6, 30.7}, {-1, 2, -3}, {0.1, -0.2, 0}} {
		r, theta, phi := Spherical(p[0], p[1], p[2])
		x, y, z := Cartesian(r, theta, phi)
		assert.InDelta(Te, p[0], x, 1e-12)
		assert.InDelta(Te, p[1], y, 1e-12)
		assert.InDelta(Te, p[2], z, 1e-12)
	}
}

func TestCentroid(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 1, 0, 0, -1, 2, 0, 0})
	require.NoError(Te, err)
	c := A.Centroid(nil)
	assert.InDeltaSlice(Te, []float64{2.0 / 3, 0, 0}, c.RawRowView(0), 1e-12)
	//neutral weights fall back to absolute values
	c = A.Centroid([]float64{1, -1, 0})
	assert.InDeltaSlice(Te, []float64{0, 0, 0}, c.RawRowView(0), 1e-12)
	c = A.Centroid([]float64{1, 0, 1})
	assert.InDeltaSlice(Te, []float64{1, 0, 0.5}, c.RawRowView(0), 1e-12)

	B := Zeros(A.NVecs())
	B.SubVec(A, c)
	assert.Equal(Te, [3]float64{-1, 0, 0.5}, B.Vec(0))
	B.AddVec(B, c)
	assert.Equal(Te, A.Vec(2), B.Vec(2))
	assert.Panics(Te, func() { A.Centroid([]float64{1}) })
}

func TestFinite(Te *testing.T) {
	A := Zeros(2)
	require.NoError(Te, A.Finite())
	A.Set(1, 2, math.NaN())
	require.Error(Te, A.Finite())
}
