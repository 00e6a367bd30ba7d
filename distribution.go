/*
 * distribution.go, part of gomultipole.
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

//Relative tolerance for the uniformity of the grid spacing.
const spacingTol = 1e-9

//PointCharge is a charge q at the position XYZ.
type PointCharge struct {
	Q   float64    `json:"q"`
	XYZ [3]float64 `json:"xyz"`
}

/*****Discrete***/

//Discrete is a charge distribution formed by a finite set of point charges.
//It can't be modified after creation.
type Discrete struct {
	charges []float64
	coords  *v3.Matrix
	contrib []contribution
	extent  float64
	total   float64
}

//NewDiscrete returns a distribution with the charge charges[i] at the position
//given by the ith vector of coords. Both are copied. It returns an error if there
//are no charges, if the lengths don't match or if any value is not finite.
func NewDiscrete(charges []float64, coords *v3.Matrix) (*Discrete, error) {
	if len(charges) == 0 || coords == nil {
		return nil, newError(ErrInvalidDistribution, "NewDiscrete", "no point charges given")
	}
	if coords.NVecs() != len(charges) {
		return nil, newError(ErrInvalidDistribution, "NewDiscrete", "%d charges but %d positions", len(charges), coords.NVecs())
	}
	if err := coords.Finite(); err != nil {
		return nil, newError(ErrInvalidDistribution, "NewDiscrete", "positions: %s", err.Error())
	}
	for i, q := range charges {
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return nil, newError(ErrInvalidDistribution, "NewDiscrete", "charge %d is not finite", i)
		}
	}
	D := new(Discrete)
	D.charges = make([]float64, len(charges))
	copy(D.charges, charges)
	D.coords = v3.Zeros(coords.NVecs())
	D.coords.Copy(coords)
	D.contrib, D.total, D.extent = discreteContributions(D.charges, D.coords)
	return D, nil
}

//NewDiscreteFromPoints returns a distribution with the given point charges.
func NewDiscreteFromPoints(points []PointCharge) (*Discrete, error) {
	if len(points) == 0 {
		return nil, newError(ErrInvalidDistribution, "NewDiscreteFromPoints", "no point charges given")
	}
	charges := make([]float64, len(points))
	coords := v3.Zeros(len(points))
	for i, p := range points {
		charges[i] = p.Q
		coords.SetVec(i, p.XYZ)
	}
	D, err := NewDiscrete(charges, coords)
	if err != nil {
		return nil, errDecorate(err, "NewDiscreteFromPoints")
	}
	return D, nil
}

//Len returns the number of point charges.
func (D *Discrete) Len() int {
	return len(D.charges)
}

//Charge returns the charge of the ith point charge.
func (D *Discrete) Charge(i int) float64 {
	return D.charges[i]
}

//Position returns the position of the ith point charge.
func (D *Discrete) Position(i int) [3]float64 {
	return D.coords.Vec(i)
}

//Points returns a copy of the point charges.
func (D *Discrete) Points() []PointCharge {
	ret := make([]PointCharge, len(D.charges))
	for i, q := range D.charges {
		ret[i] = PointCharge{Q: q, XYZ: D.coords.Vec(i)}
	}
	return ret
}

//TotalCharge returns the sum of the charges.
func (D *Discrete) TotalCharge() float64 {
	return D.total
}

//Extent returns the distance from the origin to the farthest non-zero charge.
func (D *Discrete) Extent() float64 {
	return D.extent
}

//Centroid returns the charge-weighted centroid of the point charges. For a neutral
//distribution the absolute values of the charges are used as weights.
func (D *Discrete) Centroid() [3]float64 {
	return D.coords.Centroid(D.charges).Vec(0)
}

//Translate returns a copy of the distribution with every charge displaced by v.
func (D *Discrete) Translate(v [3]float64) (*Discrete, error) {
	vec := v3.Zeros(1)
	vec.SetVec(0, v)
	coords := v3.Zeros(D.coords.NVecs())
	coords.AddVec(D.coords, vec)
	ret, err := NewDiscrete(D.charges, coords)
	if err != nil {
		return nil, errDecorate(err, "Translate")
	}
	return ret, nil
}

//Centered returns a copy of the distribution displaced so its centroid is at the origin,
//and the centroid of the original distribution.
func (D *Discrete) Centered() (*Discrete, [3]float64, error) {
	c := D.coords.Centroid(D.charges)
	coords := v3.Zeros(D.coords.NVecs())
	coords.SubVec(D.coords, c)
	ret, err := NewDiscrete(D.charges, coords)
	if err != nil {
		return nil, c.Vec(0), errDecorate(err, "Centered")
	}
	return ret, c.Vec(0), nil
}

func (D *Discrete) adapter() ([]contribution, error) {
	if D == nil || len(D.charges) == 0 {
		return nil, newError(ErrInvalidDistribution, "adapter", "nil or uninitialized discrete distribution")
	}
	return D.contrib, nil
}

/*****Continuous***/

//Continuous is a charge density sampled on a regular, axis-aligned 3D grid.
//Each grid point is taken as the center of a cell of volume dx*dy*dz.
//It can't be modified after creation.
type Continuous struct {
	rho     *Field
	origin  [3]float64
	spacing [3]float64
	dv      float64
	contrib []contribution
	extent  float64
	total   float64
}

//NewContinuous returns a distribution with density rho, where the position of the point
//i,j,k is (x.At(i,j,k), y.At(i,j,k), z.At(i,j,k)), as produced by Meshgrid. The four
//fields must have the same shape, with at least 2 points along each axis, and describe
//a grid that is axis-aligned and uniformly spaced along each axis. The density is copied.
func NewContinuous(rho, x, y, z *Field) (*Continuous, error) {
	if rho == nil || x == nil || y == nil || z == nil {
		return nil, newError(ErrInvalidDistribution, "NewContinuous", "nil density or coordinates")
	}
	if !rho.sameShape(x) || !rho.sameShape(y) || !rho.sameShape(z) {
		return nil, newError(ErrInvalidDistribution, "NewContinuous", "density and coordinate arrays have different shapes")
	}
	if rho.nx < 2 || rho.ny < 2 || rho.nz < 2 {
		return nil, newError(ErrInvalidDistribution, "NewContinuous", "at least 2 grid points per axis are needed, got %d x %d x %d", rho.nx, rho.ny, rho.nz)
	}
	for i, v := range rho.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newError(ErrInvalidDistribution, "NewContinuous", "density value %d is not finite", i)
		}
	}
	xs, ys, zs, err := gridAxes(x, y, z)
	if err != nil {
		return nil, errDecorate(err, "NewContinuous")
	}
	C := new(Continuous)
	C.rho = rho.Copy()
	C.origin = [3]float64{xs[0], ys[0], zs[0]}
	C.spacing = [3]float64{xs[1] - xs[0], ys[1] - ys[0], zs[1] - zs[0]}
	C.dv = math.Abs(C.spacing[0] * C.spacing[1] * C.spacing[2])
	C.contrib, C.total, C.extent = continuousContributions(C.rho, xs, ys, zs, C.dv)
	return C, nil
}

//NewContinuousFunc samples the density function f on the meshgrid spanned by xs, ys and zs
//and returns the corresponding distribution.
func NewContinuousFunc(xs, ys, zs []float64, f func(x, y, z float64) float64) (*Continuous, error) {
	X, Y, Z := Meshgrid(xs, ys, zs)
	C, err := NewContinuous(Sample(xs, ys, zs, f), X, Y, Z)
	if err != nil {
		return nil, errDecorate(err, "NewContinuousFunc")
	}
	return C, nil
}

//gridAxes checks that the coordinate fields form an axis aligned grid,
//uniformly spaced along each axis, and returns the coordinates along each axis.
func gridAxes(x, y, z *Field) (xs, ys, zs []float64, err error) {
	nx, ny, nz := x.Dims()
	xs = make([]float64, nx)
	ys = make([]float64, ny)
	zs = make([]float64, nz)
	for i := range xs {
		xs[i] = x.At(i, 0, 0)
	}
	for j := range ys {
		ys[j] = y.At(0, j, 0)
	}
	for k := range zs {
		zs[k] = z.At(0, 0, k)
	}
	for _, axis := range [][]float64{xs, ys, zs} {
		if !uniform(axis) {
			return nil, nil, nil, newError(ErrInvalidDistribution, "gridAxes", "grid is not uniformly spaced")
		}
	}
	scale := math.Max(math.Max(maxAbs(xs), maxAbs(ys)), maxAbs(zs))
	tol := spacingTol * scale
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				if math.Abs(x.At(i, j, k)-xs[i]) > tol || math.Abs(y.At(i, j, k)-ys[j]) > tol || math.Abs(z.At(i, j, k)-zs[k]) > tol {
					return nil, nil, nil, newError(ErrInvalidDistribution, "gridAxes", "grid is not axis-aligned at point %d,%d,%d", i, j, k)
				}
			}
		}
	}
	return xs, ys, zs, nil
}

//uniform returns true if the values in axis are evenly spaced, with a non-zero step.
func uniform(axis []float64) bool {
	step := axis[1] - axis[0]
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return false
	}
	tol := spacingTol * math.Max(math.Abs(step), maxAbs(axis))
	for i := 2; i < len(axis); i++ {
		if math.Abs(axis[i]-axis[i-1]-step) > tol {
			return false
		}
	}
	return true
}

func maxAbs(s []float64) float64 {
	var m float64
	for _, v := range s {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

//Len returns the number of grid cells.
func (C *Continuous) Len() int {
	return C.rho.Len()
}

//Density returns a copy of the charge density.
func (C *Continuous) Density() *Field {
	return C.rho.Copy()
}

//Origin returns the position of the 0,0,0 grid point.
func (C *Continuous) Origin() [3]float64 {
	return C.origin
}

//Spacing returns the grid step along each axis.
func (C *Continuous) Spacing() [3]float64 {
	return C.spacing
}

//CellVolume returns the volume element dx*dy*dz.
func (C *Continuous) CellVolume() float64 {
	return C.dv
}

//TotalCharge returns the Riemann sum of the density over the grid.
func (C *Continuous) TotalCharge() float64 {
	return C.total
}

//Extent returns the distance from the origin to the farthest grid point with
//non-zero density.
func (C *Continuous) Extent() float64 {
	return C.extent
}

func (C *Continuous) adapter() ([]contribution, error) {
	if C == nil || C.rho == nil {
		return nil, newError(ErrInvalidDistribution, "adapter", "nil or uninitialized continuous distribution")
	}
	return C.contrib, nil
}

//axes returns the coordinates of the grid points along each axis.
func (C *Continuous) axes(shift [3]float64) (xs, ys, zs []float64) {
	n := [3]int{C.rho.nx, C.rho.ny, C.rho.nz}
	var ret [3][]float64
	for a := range ret {
		ret[a] = make([]float64, n[a])
		for i := range ret[a] {
			ret[a][i] = C.origin[a] + float64(i)*C.spacing[a] + shift[a]
		}
	}
	return ret[0], ret[1], ret[2]
}

//Centroid returns the charge-weighted centroid of the grid cells. For a neutral
//distribution the absolute values of the density are used as weights.
func (C *Continuous) Centroid() [3]float64 {
	xs, ys, zs := C.axes([3]float64{})
	points := v3.Zeros(C.rho.Len())
	p := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				points.SetVec(p, [3]float64{x, y, z})
				p++
			}
		}
	}
	return points.Centroid(C.rho.data).Vec(0)
}

//Translate returns a copy of the distribution with the grid displaced by v.
func (C *Continuous) Translate(v [3]float64) (*Continuous, error) {
	X, Y, Z := Meshgrid(C.axes(v))
	ret, err := NewContinuous(C.rho, X, Y, Z)
	if err != nil {
		return nil, errDecorate(err, "Translate")
	}
	return ret, nil
}

//Centered returns a copy of the distribution displaced so its centroid is at the origin,
//and the centroid of the original distribution.
func (C *Continuous) Centered() (*Continuous, [3]float64, error) {
	c := C.Centroid()
	ret, err := C.Translate([3]float64{-c[0], -c[1], -c[2]})
	if err != nil {
		return nil, c, errDecorate(err, "Centered")
	}
	return ret, c, nil
}
