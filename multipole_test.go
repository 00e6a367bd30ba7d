/*
 * multipole_test.go, part of gomultipole.
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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rmera/gomultipole/sph"
	v3 "github.com/rmera/gomultipole/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
)

func cmplxNear(Te *testing.T, expected, got complex128, tol float64, info ...interface{}) {
	Te.Helper()
	msg := fmt.Sprint(info...)
	assert.InDelta(Te, real(expected), real(got), tol, msg)
	assert.InDelta(Te, imag(expected), imag(got), tol, msg)
}

//dipole returns +1 at (0,0,1) and -1 at (0,0,-1)
func dipole(Te *testing.T) *Discrete {
	D, err := NewDiscreteFromPoints([]PointCharge{{Q: 1, XYZ: [3]float64{0, 0, 1}}, {Q: -1, XYZ: [3]float64{0, 0, -1}}})
	require.NoError(Te, err)
	return D
}

//scattered returns a neutral-ish set of charges with no symmetry, all within r<1.
func scattered(Te *testing.T) *Discrete {
	D, err := NewDiscreteFromPoints([]PointCharge{
		{Q: 0.7, XYZ: [3]float64{0.3, -0.2, 0.5}},
		{Q: -1.2, XYZ: [3]float64{-0.4, 0.1, 0.2}},
		{Q: 0.45, XYZ: [3]float64{0.1, 0.6, -0.3}},
		{Q: 0.3, XYZ: [3]float64{-0.2, -0.5, -0.6}},
		{Q: -0.15, XYZ: [3]float64{0.55, 0.25, 0.1}},
	})
	require.NoError(Te, err)
	return D
}

func coulomb(D *Discrete, x, y, z float64) float64 {
	var ret float64
	for _, p := range D.Points() {
		dx, dy, dz := x-p.XYZ[0], y-p.XYZ[1], z-p.XYZ[2]
		ret += p.Q / math.Sqrt(dx*dx+dy*dy+dz*dz)
	}
	return ret
}

func TestRealityCondition(Te *testing.T) {
	D := scattered(Te)
	lmax := 6
	M, err := Calculate(D, lmax)
	require.NoError(Te, err)
	assert.Equal(Te, sph.Len(lmax), M.Len())
	for l := 0; l <= lmax; l++ {
		for m := -l; m <= l; m++ {
			var direct complex128
			for _, p := range D.Points() {
				r, theta, phi := v3.Spherical(p.XYZ[0], p.XYZ[1], p.XYZ[2])
				y := sph.Y(l, m, theta, phi)
				direct += complex(p.Q*math.Pow(r, float64(l)), 0) * complex(real(y), -imag(y))
			}
			cmplxNear(Te, direct, M.At(l, m), 1e-12, "direct sum ", l, m)
			sign := 1.0
			if m%2 != 0 {
				sign = -1
			}
			neg := M.At(l, -m)
			cmplxNear(Te, complex(sign*real(neg), -sign*imag(neg)), M.At(l, m), 1e-12, "reality ", l, m)
		}
	}
}

func TestMonopole(Te *testing.T) {
	D := scattered(Te)
	M, err := Calculate(D, 2)
	require.NoError(Te, err)
	assert.InDelta(Te, D.TotalCharge()/math.Sqrt(4*math.Pi), real(M.At(0, 0)), 1e-13)
	assert.InDelta(Te, 0, imag(M.At(0, 0)), 1e-15)
	assert.InDelta(Te, D.TotalCharge(), M.Charge(), 1e-12)
}

func TestDipole(Te *testing.T) {
	D := dipole(Te)
	E, err := New(D, 4)
	require.NoError(Te, err)
	M := E.Moments()
	cmplxNear(Te, 0, M.At(0, 0), 1e-14, "q00")
	cmplxNear(Te, complex(2*math.Sqrt(3/(4*math.Pi)), 0), M.At(1, 0), 1e-12, "q10")
	cmplxNear(Te, 0, M.At(1, 1), 1e-14, "q11")
	cmplxNear(Te, 0, M.At(2, 0), 1e-14, "q20")
	p, err := M.Dipole()
	require.NoError(Te, err)
	assert.InDelta(Te, 0, p[0], 1e-12)
	assert.InDelta(Te, 0, p[1], 1e-12)
	assert.InDelta(Te, 2, p[2], 1e-12)
	assert.InDelta(Te, 1, E.Extent(), 1e-15)

	x, y, z := 30.5, 30.6, 30.7
	r := math.Sqrt(x*x + y*y + z*z)
	expected := 2 * z / (r * r * r)
	phi, err := E.Potential(x, y, z)
	require.NoError(Te, err)
	assert.InEpsilon(Te, expected, phi, 1e-3)
	assert.InEpsilon(Te, coulomb(D, x, y, z), phi, 1e-6)
	assert.True(Te, E.Valid(x, y, z))
	assert.False(Te, E.Valid(0, 0.5, 0))

	M0, err := Calculate(D, 0)
	require.NoError(Te, err)
	_, err = M0.Dipole()
	assert.True(Te, errors.Is(err, ErrInvalidOrder))
}

func TestFarField(Te *testing.T) {
	D := scattered(Te)
	E, err := New(D, 10)
	require.NoError(Te, err)
	points := [][3]float64{{10, 0, 0}, {0, -12, 3}, {-7, 7, 7}, {3, 4, -11}}
	for _, p := range points {
		phi, err := E.Potential(p[0], p[1], p[2])
		require.NoError(Te, err)
		assert.InDelta(Te, coulomb(D, p[0], p[1], p[2]), phi, 1e-10, fmt.Sprint(p))
		terms, err := E.Terms(p[0], p[1], p[2])
		require.NoError(Te, err)
		var sum float64
		for _, t := range terms {
			sum += t
		}
		assert.InDelta(Te, phi, sum, 1e-14)
	}
	diff := func(lmax int) float64 {
		E, err := New(D, lmax)
		require.NoError(Te, err)
		phi, err := E.Potential(3, 2, -2)
		require.NoError(Te, err)
		return math.Abs(phi - coulomb(D, 3, 2, -2))
	}
	assert.Less(Te, diff(6), 1e-2*diff(0))
}

func TestConvergence(Te *testing.T) {
	E, err := New(dipole(Te), 3)
	require.NoError(Te, err)
	p, err := v3.NewMatrix([]float64{20, 1, 3, -5, 15, 12, 2, -3, -25, 10, 10, 10})
	require.NoError(Te, err)
	conv, err := Convergence(E, p)
	require.NoError(Te, err)
	require.Len(Te, conv, 4)
	assert.InDelta(Te, 0, conv[0], 1e-12)
	assert.InDelta(Te, 1, conv[1], 1e-12)
	assert.InDelta(Te, 0, conv[2], 1e-10)
	assert.Less(Te, conv[3], 0.01)
	p.SetVec(2, [3]float64{0, 0, 0})
	_, err = Convergence(E, p)
	assert.True(Te, errors.Is(err, ErrSingularEvaluation))
	for _, empty := range []*v3.Matrix{nil, {}, {Dense: &mat.Dense{}}} {
		conv, err = Convergence(E, empty)
		assert.True(Te, errors.Is(err, ErrInvalidDistribution))
		assert.Nil(Te, conv)
	}
}

//A spherically symmetric blob has exactly the exterior moments of a point charge
//at its center, so finely sampled gaussians must reproduce the point dipole.
func TestGaussianBlobs(Te *testing.T) {
	lmax := 3
	Mp, err := Calculate(dipole(Te), lmax)
	require.NoError(Te, err)
	plus := GaussianDensity([3]float64{0, 0, 1}, 0.35)
	minus := GaussianDensity([3]float64{0, 0, -1}, 0.35)
	rho := func(x, y, z float64) float64 { return plus(x, y, z) - minus(x, y, z) }
	axis := Linspace(-3, 3, 41)
	C, err := NewContinuousFunc(axis, axis, axis, rho)
	require.NoError(Te, err)
	assert.Equal(Te, 41*41*41, C.Len())
	assert.InDelta(Te, 0.15, C.Spacing()[2], 1e-12)
	assert.InDelta(Te, 0.15*0.15*0.15, C.CellVolume(), 1e-14)
	assert.InDelta(Te, 0, C.TotalCharge(), 1e-10)
	Mc, err := Calculate(C, lmax)
	require.NoError(Te, err)
	for _, k := range Mp.Keys() {
		cmplxNear(Te, Mp.At(k.L, k.M), Mc.At(k.L, k.M), 1e-6, k)
	}
	p, err := Mc.Dipole()
	require.NoError(Te, err)
	assert.InDelta(Te, 2, p[2], 1e-6)

	//A coarse grid is worse than a fine one.
	coarse := Linspace(-3, 3, 13)
	Cc, err := NewContinuousFunc(coarse, coarse, coarse, rho)
	require.NoError(Te, err)
	Mcc, err := Calculate(Cc, lmax)
	require.NoError(Te, err)
	errFine := math.Abs(real(Mc.At(1, 0) - Mp.At(1, 0)))
	errCoarse := math.Abs(real(Mcc.At(1, 0) - Mp.At(1, 0)))
	assert.Less(Te, errFine, errCoarse)
}

func TestContinuousFromFields(Te *testing.T) {
	xs := Linspace(-1, 1, 3)
	ys := Linspace(-2, 2, 5)
	zs := Linspace(0, 1, 2)
	X, Y, Z := Meshgrid(xs, ys, zs)
	assert.Equal(Te, 2.0, Y.At(2, 4, 1))
	assert.Equal(Te, -1.0, X.At(0, 3, 1))
	assert.Equal(Te, 1.0, Z.At(1, 1, 1))
	rho, err := NewField(3, 5, 2, nil)
	require.NoError(Te, err)
	rho.Set(2, 2, 1, 4) //(1, 0, 1)
	C, err := NewContinuous(rho, X, Y, Z)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{-1, -2, 0}, C.Origin())
	assert.InDelta(Te, 4, C.TotalCharge(), 1e-14)
	assert.InDelta(Te, math.Sqrt2, C.Extent(), 1e-14)
	rho.Set(2, 2, 1, 100)
	assert.Equal(Te, 4.0, C.Density().At(2, 2, 1), "the density must be copied")

	D, err := NewDiscreteFromPoints([]PointCharge{{Q: 4, XYZ: [3]float64{1, 0, 1}}})
	require.NoError(Te, err)
	Mc, err := Calculate(C, 4)
	require.NoError(Te, err)
	Md, err := Calculate(D, 4)
	require.NoError(Te, err)
	for _, k := range Md.Keys() {
		cmplxNear(Te, Md.At(k.L, k.M), Mc.At(k.L, k.M), 1e-12, k)
	}
}

func TestDeterminism(Te *testing.T) {
	D := scattered(Te)
	O := DefaultOptions()
	O.Cpus(3)
	M1, err := Calculate(D, 8, O)
	require.NoError(Te, err)
	M2, err := Calculate(D, 8, O)
	require.NoError(Te, err)
	assert.Equal(Te, M1.Map(), M2.Map())
	O.Cpus(1)
	M3, err := Calculate(D, 8, O)
	require.NoError(Te, err)
	for _, k := range M1.Keys() {
		cmplxNear(Te, M1.At(k.L, k.M), M3.At(k.L, k.M), 1e-13, k)
	}
	E1, err := FromMoments(M1)
	require.NoError(Te, err)
	a, err := E1.Potential(4, -3, 2)
	require.NoError(Te, err)
	b, err := E1.Potential(4, -3, 2)
	require.NoError(Te, err)
	assert.Equal(Te, a, b)
}

func TestSingularEvaluation(Te *testing.T) {
	E, err := New(dipole(Te), 2)
	require.NoError(Te, err)
	_, err = E.Potential(0, 0, 0)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrSingularEvaluation), err.Error())
	_, err = E.Potential(math.NaN(), 1, 1)
	assert.True(Te, errors.Is(err, ErrSingularEvaluation))
	_, err = E.Terms(0, 0, 0)
	assert.True(Te, errors.Is(err, ErrSingularEvaluation))
	var me Error
	require.True(Te, errors.As(err, &me))
	assert.True(Te, me.Critical())
	assert.Contains(Te, me.Decorate(""), "Terms")
}

func TestInvalidInput(Te *testing.T) {
	D := dipole(Te)
	_, err := Calculate(D, -1)
	assert.True(Te, errors.Is(err, ErrInvalidOrder))
	_, err = New(nil, 2)
	assert.True(Te, errors.Is(err, ErrInvalidDistribution))
	_, err = NewDiscrete(nil, nil)
	assert.True(Te, errors.Is(err, ErrInvalidDistribution))
	_, err = NewDiscreteFromPoints(nil)
	assert.True(Te, errors.Is(err, ErrInvalidDistribution))
	_, err = NewDiscrete([]float64{1, 2}, v3.Zeros(3))
	assert.True(Te, errors.Is(err, ErrInvalidDistribution))
	_, err = NewDiscrete([]float64{math.Inf(1)}, v3.Zeros(1))
	assert.True(Te, errors.Is(err, ErrInvalidDistribution))
	var empty Discrete
	_, err = Calculate(&empty, 2)
	assert.True(Te, errors.Is(err, ErrInvalidDistribution))

	xs := Linspace(0, 1, 3)
	X, Y, Z := Meshgrid(xs, xs, xs)
	rho, err := NewField(3, 3, 2, nil)
	require.NoError(Te, err)
	_, err = NewContinuous(rho, X, Y, Z)
	assert.True(Te, errors.Is(err, ErrInvalidDistribution), "shape mismatch")

	_, err = NewContinuousFunc([]float64{0, 0.1, 0.3}, xs, xs, func(x, y, z float64) float64 { return 1 })
	assert.True(Te, errors.Is(err, ErrInvalidDistribution), "non-uniform grid")

	_, err = NewContinuousFunc([]float64{0}, xs, xs, func(x, y, z float64) float64 { return 1 })
	assert.True(Te, errors.Is(err, ErrInvalidDistribution), "single point axis")

	X.Set(1, 1, 1, 0.7)
	rho3, err := NewField(3, 3, 3, nil)
	require.NoError(Te, err)
	_, err = NewContinuous(rho3, X, Y, Z)
	assert.True(Te, errors.Is(err, ErrInvalidDistribution), "non axis-aligned grid")

	_, err = NewField(2, 2, 2, make([]float64, 7))
	assert.True(Te, errors.Is(err, ErrInvalidDistribution))

	_, err = FromMoments(nil)
	assert.True(Te, errors.Is(err, ErrInvalidMoments))
}

func TestChargeAtOrigin(Te *testing.T) {
	D, err := NewDiscreteFromPoints([]PointCharge{{Q: 2}, {Q: 0, XYZ: [3]float64{5, 5, 5}}})
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, D.Extent())
	E, err := New(D, 5)
	require.NoError(Te, err)
	M := E.Moments()
	cmplxNear(Te, complex(2/math.Sqrt(4*math.Pi), 0), M.At(0, 0), 1e-14, "q00")
	for _, k := range M.Keys()[1:] {
		cmplxNear(Te, 0, M.At(k.L, k.M), 1e-15, k)
	}
	phi, err := E.Potential(0, 3, 4)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.4, phi, 1e-14)
}

func TestDensityAtOrigin(Te *testing.T) {
	axis := Linspace(-1, 1, 3)
	only := func(x, y, z float64) float64 {
		if x == 0 && y == 0 && z == 0 {
			return 3
		}
		return 0
	}
	C, err := NewContinuousFunc(axis, axis, axis, only)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, C.CellVolume())
	M, err := Calculate(C, 4)
	require.NoError(Te, err)
	cmplxNear(Te, complex(3/math.Sqrt(4*math.Pi), 0), M.At(0, 0), 1e-14, "q00")
	for _, k := range M.Keys()[1:] {
		assert.Equal(Te, complex128(0), M.At(k.L, k.M), k)
	}

	//with another cell at (1,0,0), all the l>=1 moments come from that cell alone.
	both := func(x, y, z float64) float64 {
		if x == 1 && y == 0 && z == 0 {
			return 1
		}
		return only(x, y, z)
	}
	C, err = NewContinuousFunc(axis, axis, axis, both)
	require.NoError(Te, err)
	Mc, err := Calculate(C, 4)
	require.NoError(Te, err)
	D, err := NewDiscreteFromPoints([]PointCharge{{Q: 3}, {Q: 1, XYZ: [3]float64{1, 0, 0}}})
	require.NoError(Te, err)
	Md, err := Calculate(D, 4)
	require.NoError(Te, err)
	cmplxNear(Te, complex(4/math.Sqrt(4*math.Pi), 0), Mc.At(0, 0), 1e-14, "q00")
	cmplxNear(Te, complex(-math.Sqrt(3/(8*math.Pi)), 0), Mc.At(1, 1), 1e-14, "q11")
	for _, k := range Md.Keys() {
		cmplxNear(Te, Md.At(k.L, k.M), Mc.At(k.L, k.M), 1e-14, k)
	}
}

func TestImaginaryResidual(Te *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	O := DefaultOptions()
	O.Logger(zap.New(core))
	//q_{1,-1} = q_{1,1} breaks the reality condition, which needs q_{1,-1} = -conj(q_{1,1}).
	M, err := NewMoments(1, map[Key]complex128{{0, 0}: 1, {1, -1}: 1, {1, 0}: 0, {1, 1}: 1})
	require.NoError(Te, err)
	E, err := FromMoments(M, O)
	require.NoError(Te, err)
	v, err := E.Potential(1, 1, 0)
	require.NoError(Te, err)
	//the l=1 term is purely imaginary here, so only the monopole is left.
	assert.InDelta(Te, math.Sqrt(4*math.Pi)/math.Sqrt2, v, 1e-12)
	require.Equal(Te, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(Te, zapcore.WarnLevel, entry.Level)
	assert.Contains(Te, entry.ContextMap(), "imag")

	//a physical table evaluates silently.
	Ed, err := New(dipole(Te), 4, O)
	require.NoError(Te, err)
	_, err = Ed.Potential(1, 1, 0.5)
	require.NoError(Te, err)
	assert.Equal(Te, 1, logs.Len())
}

func TestCentering(Te *testing.T) {
	D, err := NewDiscreteFromPoints([]PointCharge{{Q: 2, XYZ: [3]float64{1, 1, 1}}, {Q: 1, XYZ: [3]float64{4, 1, 1}}})
	require.NoError(Te, err)
	dc := D.Centroid()
	assert.InDeltaSlice(Te, []float64{2, 1, 1}, dc[:], 1e-12)
	Dc, c, err := D.Centered()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{2, 1, 1}, c[:], 1e-12)
	dcp0 := Dc.Position(0)
	assert.InDeltaSlice(Te, []float64{-1, 0, 0}, dcp0[:], 1e-12)
	assert.Equal(Te, [3]float64{1, 1, 1}, D.Position(0), "the original must not change")
	//around the center of charge, a charged distribution has no dipole.
	M, err := Calculate(Dc, 2)
	require.NoError(Te, err)
	p, err := M.Dipole()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{0, 0, 0}, p[:], 1e-12)
	Dt, err := Dc.Translate(c)
	require.NoError(Te, err)
	dtp1 := Dt.Position(1)
	assert.InDeltaSlice(Te, []float64{4, 1, 1}, dtp1[:], 1e-12)
	_, err = D.Translate([3]float64{math.NaN(), 0, 0})
	assert.True(Te, errors.Is(err, ErrInvalidDistribution))

	center := [3]float64{0.5, -0.25, 0.3}
	axis := Linspace(-3, 3, 25)
	C, err := NewContinuousFunc(axis, axis, axis, GaussianDensity(center, 0.6))
	require.NoError(Te, err)
	cc := C.Centroid()
	assert.InDeltaSlice(Te, center[:], cc[:], 1e-6)
	Cc, c, err := C.Centered()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, center[:], c[:], 1e-6)
	cco := Cc.Origin()
	assert.InDeltaSlice(Te, []float64{-3.5, -2.75, -3.3}, cco[:], 1e-6)
	sc, scc := C.Spacing(), Cc.Spacing()
	assert.InDeltaSlice(Te, sc[:], scc[:], 1e-12)
	assert.InDelta(Te, C.TotalCharge(), Cc.TotalCharge(), 1e-12)
	M, err = Calculate(Cc, 1)
	require.NoError(Te, err)
	p, err = M.Dipole()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{0, 0, 0}, p[:], 1e-6)
}

func TestWithExtent(Te *testing.T) {
	E, err := New(dipole(Te), 2)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, E.Extent())
	F, err := FromMoments(E.Moments())
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, F.Extent())
	assert.True(Te, F.Valid(0, 0, 0.5))
	G := F.WithExtent(E.Extent())
	assert.Equal(Te, 1.0, G.Extent())
	assert.False(Te, G.Valid(0, 0, 0.5))
	assert.Equal(Te, 0.0, F.Extent(), "WithExtent must return a copy")
	assert.Equal(Te, 0.0, G.WithExtent(-3).Extent())
	v1, err := E.Potential(3, 4, 5)
	require.NoError(Te, err)
	v2, err := G.Potential(3, 4, 5)
	require.NoError(Te, err)
	assert.Equal(Te, v1, v2)
}

func TestMomentsTable(Te *testing.T) {
	M, err := Calculate(scattered(Te), 4)
	require.NoError(Te, err)
	b, err := json.Marshal(M)
	require.NoError(Te, err)
	M2 := new(Moments)
	require.NoError(Te, json.Unmarshal(b, M2))
	assert.Equal(Te, M.LMax(), M2.LMax())
	assert.Equal(Te, M.Map(), M2.Map())

	N, err := NewMoments(4, M.Map())
	require.NoError(Te, err)
	assert.Equal(Te, M.Map(), N.Map())
	_, err = NewMoments(5, M.Map())
	assert.True(Te, errors.Is(err, ErrInvalidMoments))
	err = json.Unmarshal([]byte(`{"lmax":0,"moments":[{"l":0,"m":0,"re":1,"im":0},{"l":0,"m":0,"re":1,"im":0}]}`), M2)
	assert.True(Te, errors.Is(err, ErrInvalidMoments))
	//an absurd order must be rejected without trying to allocate the table.
	_, err = NewMoments(5000000000, M.Map())
	assert.True(Te, errors.Is(err, ErrInvalidMoments))
	err = json.Unmarshal([]byte(`{"lmax":5000000000,"moments":[]}`), M2)
	assert.True(Te, errors.Is(err, ErrInvalidMoments))
	assert.Equal(Te, 4, M2.LMax())

	T, err := M.Truncate(2)
	require.NoError(Te, err)
	assert.Equal(Te, 9, T.Len())
	for _, k := range T.Keys() {
		assert.Equal(Te, M.At(k.L, k.M), T.At(k.L, k.M))
	}
	S, err := M.Add(M)
	require.NoError(Te, err)
	assert.Equal(Te, 2*M.At(3, -2), S.At(3, -2))
	_, err = M.Add(T)
	assert.True(Te, errors.Is(err, ErrInvalidMoments))
	_, err = M.Truncate(5)
	assert.True(Te, errors.Is(err, ErrInvalidOrder))
	_, ok := M.Get(5, 0)
	assert.False(Te, ok)
	assert.Panics(Te, func() { M.At(2, 3) })

	//The power spectrum doesn't change under rotations around the origin.
	pts := scattered(Te).Points()
	for i, p := range pts {
		pts[i].XYZ = [3]float64{-p.XYZ[1], -p.XYZ[2], p.XYZ[0]} //90 degrees around z, then around x
	}
	R, err := NewDiscreteFromPoints(pts)
	require.NoError(Te, err)
	MR, err := Calculate(R, 4)
	require.NoError(Te, err)
	power := func(M *Moments) []float64 {
		ret := make([]float64, M.LMax()+1)
		for l := range ret {
			ret[l] = M.Power(l)
		}
		return ret
	}
	if diff := cmp.Diff(power(M), power(MR), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		Te.Errorf("power spectrum changed under rotation (-orig +rotated):\n%s", diff)
	}
}

func TestUnits(Te *testing.T) {
	D := scattered(Te)
	Eg, err := New(D, 4)
	require.NoError(Te, err)
	O := DefaultOptions()
	O.Units(SI)
	Es, err := New(D, 4, O)
	require.NoError(Te, err)
	assert.Equal(Te, SI, Es.Units())
	assert.Equal(Te, Eg.Moments().Map(), Es.Moments().Map())
	g, err := Eg.Potential(5, 5, 5)
	require.NoError(Te, err)
	s, err := Es.Potential(5, 5, 5)
	require.NoError(Te, err)
	assert.InEpsilon(Te, g/(4*math.Pi*Epsilon0), s, 1e-12)
	for name, u := range map[string]Units{"SI": SI, "gaussian": Gaussian, "cgs": Gaussian} {
		got, err := ParseUnits(name)
		require.NoError(Te, err)
		assert.Equal(Te, u, got)
	}
	_, err = ParseUnits("furlongs")
	assert.Error(Te, err)
	assert.Equal(Te, "si", SI.String())
}

func TestOptionsAreCopied(Te *testing.T) {
	O := DefaultOptions()
	E, err := New(dipole(Te), 2, O)
	require.NoError(Te, err)
	O.Units(SI)
	O.Cpus(1)
	assert.Equal(Te, Gaussian, E.Units())
	assert.Equal(Te, SI, O.Units())
	assert.Equal(Te, 1, O.Cpus())
	O.Cpus(-3)
	assert.Equal(Te, 1, O.Cpus())
	O.ImagTolerance(0)
	assert.Equal(Te, 1e-9, O.ImagTolerance())
	assert.NotNil(Te, O.Logger(nil))
}

func TestPotentials(Te *testing.T) {
	D := scattered(Te)
	O := DefaultOptions()
	O.Cpus(4)
	E, err := New(D, 6, O)
	require.NoError(Te, err)
	data := make([]float64, 0, 3*50)
	for i := 0; i < 50; i++ {
		t := float64(i)
		data = append(data, 3+t*0.1, -2+math.Sin(t), 4*math.Cos(t))
	}
	p, err := v3.NewMatrix(data)
	require.NoError(Te, err)
	all, err := E.Potentials(p)
	require.NoError(Te, err)
	require.Len(Te, all, 50)
	for i := range all {
		single, err := E.PotentialVec(p, i)
		require.NoError(Te, err)
		assert.Equal(Te, single, all[i], i)
	}
	f := E.Func()
	v, err := f(3, -2, 4)
	require.NoError(Te, err)
	assert.Equal(Te, all[0], v)
	p.SetVec(33, [3]float64{0, 0, 0})
	_, err = E.Potentials(p)
	assert.True(Te, errors.Is(err, ErrSingularEvaluation))
}
