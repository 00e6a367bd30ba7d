/*
 * grid.go, part of gomultipole.
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

	"gonum.org/v1/gonum/floats"
)

//Field is a scalar field sampled on a 3D grid. The values are stored in a flat,
//row-major slice, with the first index (x) varying the slowest, i.e. what you get
//from a meshgrid with "ij" indexing.
type Field struct {
	nx, ny, nz int
	data       []float64
}

//NewField returns a nx*ny*nz Field. If data is nil, the field is filled with zeros,
//otherwise data is used directly (not copied) and must have exactly nx*ny*nz elements.
func NewField(nx, ny, nz int, data []float64) (*Field, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, newError(ErrInvalidDistribution, "NewField", "invalid field dimensions %d x %d x %d", nx, ny, nz)
	}
	n := nx * ny * nz
	if data == nil {
		data = make([]float64, n)
	}
	if len(data) != n {
		return nil, newError(ErrInvalidDistribution, "NewField", "field of %d x %d x %d needs %d values, got %d", nx, ny, nz, n, len(data))
	}
	return &Field{nx: nx, ny: ny, nz: nz, data: data}, nil
}

//Dims returns the number of points along each axis.
func (F *Field) Dims() (int, int, int) {
	return F.nx, F.ny, F.nz
}

//Len returns the total number of points in the field.
func (F *Field) Len() int {
	return len(F.data)
}

func (F *Field) index(i, j, k int) int {
	if i < 0 || j < 0 || k < 0 || i >= F.nx || j >= F.ny || k >= F.nz {
		panic(ErrFieldShape)
	}
	return (i*F.ny+j)*F.nz + k
}

//At returns the value at the i,j,k point. It panics if out of range.
func (F *Field) At(i, j, k int) float64 {
	return F.data[F.index(i, j, k)]
}

//Set sets the value at the i,j,k point. It panics if out of range.
func (F *Field) Set(i, j, k int, v float64) {
	F.data[F.index(i, j, k)] = v
}

//RawData returns the underlying slice. Changes to it are reflected in the Field.
func (F *Field) RawData() []float64 {
	return F.data
}

//Copy returns a deep copy of the field.
func (F *Field) Copy() *Field {
	d := make([]float64, len(F.data))
	copy(d, F.data)
	return &Field{nx: F.nx, ny: F.ny, nz: F.nz, data: d}
}

//sameShape returns true if F and G have the same dimensions.
func (F *Field) sameShape(G *Field) bool {
	return F.nx == G.nx && F.ny == G.ny && F.nz == G.nz
}

//Linspace returns n evenly spaced values from start to end, both included.
//It panics if n<2.
func Linspace(start, end float64, n int) []float64 {
	return floats.Span(make([]float64, n), start, end)
}

//Meshgrid returns the three coordinate fields for the grid spanned by xs, ys and zs,
//with "ij" indexing: X.At(i,j,k)=xs[i], Y.At(i,j,k)=ys[j], Z.At(i,j,k)=zs[k].
func Meshgrid(xs, ys, zs []float64) (X, Y, Z *Field) {
	nx, ny, nz := len(xs), len(ys), len(zs)
	n := nx * ny * nz
	X = &Field{nx, ny, nz, make([]float64, n)}
	Y = &Field{nx, ny, nz, make([]float64, n)}
	Z = &Field{nx, ny, nz, make([]float64, n)}
	p := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				X.data[p] = x
				Y.data[p] = y
				Z.data[p] = z
				p++
			}
		}
	}
	return X, Y, Z
}

//Sample evaluates f on every point of the meshgrid spanned by xs, ys and zs.
func Sample(xs, ys, zs []float64, f func(x, y, z float64) float64) *Field {
	nx, ny, nz := len(xs), len(ys), len(zs)
	ret := &Field{nx, ny, nz, make([]float64, nx*ny*nz)}
	p := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				ret.data[p] = f(x, y, z)
				p++
			}
		}
	}
	return ret
}

//GaussianDensity returns a normalized gaussian charge density of width sigma centered at center,
//(sigma^2 Pi)^(-3/2) exp(-|r-center|^2/sigma^2), which integrates to one.
func GaussianDensity(center [3]float64, sigma float64) func(x, y, z float64) float64 {
	norm := math.Pow(sigma*sigma*math.Pi, -1.5)
	s2 := sigma * sigma
	return func(x, y, z float64) float64 {
		dx, dy, dz := x-center[0], y-center[1], z-center[2]
		return norm * math.Exp(-(dx*dx+dy*dy+dz*dz)/s2)
	}
}
