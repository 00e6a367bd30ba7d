/*
 * moments.go, part of gomultipole.
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
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/rmera/gomultipole/sph"
)

//Key identifies a multipole moment by its angular momentum number L and its order M, -L<=M<=L.
type Key struct {
	L int `json:"l"`
	M int `json:"m"`
}

func (k Key) String() string {
	return fmt.Sprintf("(%d, %d)", k.L, k.M)
}

//Moments is a read-only table of complex multipole moments q_{l,m}, with one entry
//for each 0<=l<=LMax, -l<=m<=l. It is safe for concurrent use.
type Moments struct {
	lmax int
	q    []complex128 //indexed by sph.Index(l,m)
}

//newMoments returns a zero-filled table. lmax must be non-negative.
func newMoments(lmax int) *Moments {
	return &Moments{lmax: lmax, q: make([]complex128, sph.Len(lmax))}
}

//NewMoments builds a table from a map, which must have exactly one entry for
//each valid (l,m) pair with l<=lmax. The map is not retained.
func NewMoments(lmax int, values map[Key]complex128) (*Moments, error) {
	if lmax < 0 {
		return nil, newError(ErrInvalidOrder, "NewMoments", "negative truncation order %d", lmax)
	}
	//(lmax+1)^2 > len(values) whenever lmax >= len(values), so a large lmax is
	//rejected before anything is allocated for it.
	if lmax >= len(values) || sph.Len(lmax) != len(values) {
		return nil, newError(ErrInvalidMoments, "NewMoments", "%d moments given, (lmax+1)^2 needed for lmax=%d", len(values), lmax)
	}
	M := newMoments(lmax)
	for k, v := range values {
		if k.L < 0 || k.L > lmax || k.M < -k.L || k.M > k.L {
			return nil, newError(ErrInvalidMoments, "NewMoments", "invalid key %s for lmax=%d", k, lmax)
		}
		M.q[sph.Index(k.L, k.M)] = v
	}
	return M, nil
}

//LMax returns the truncation order of the table.
func (M *Moments) LMax() int {
	return M.lmax
}

//Len returns the number of moments in the table, (LMax+1)^2.
func (M *Moments) Len() int {
	return len(M.q)
}

//At returns q_{l,m}. It panics if the pair is not in the table.
func (M *Moments) At(l, m int) complex128 {
	if l < 0 || l > M.lmax || m < -l || m > l {
		panic(ErrIndexOutOfRange)
	}
	return M.q[sph.Index(l, m)]
}

//Get returns q_{l,m} and true, or 0 and false if the pair is not in the table.
func (M *Moments) Get(l, m int) (complex128, bool) {
	if l < 0 || l > M.lmax || m < -l || m > l {
		return 0, false
	}
	return M.q[sph.Index(l, m)], true
}

//Keys returns all the keys in the table, sorted by l and then m.
func (M *Moments) Keys() []Key {
	ret := make([]Key, 0, len(M.q))
	for l := 0; l <= M.lmax; l++ {
		for m := -l; m <= l; m++ {
			ret = append(ret, Key{l, m})
		}
	}
	return ret
}

//Each calls f for every moment in the table, sorted by l and then m.
func (M *Moments) Each(f func(k Key, q complex128)) {
	for l := 0; l <= M.lmax; l++ {
		for m := -l; m <= l; m++ {
			f(Key{l, m}, M.q[sph.Index(l, m)])
		}
	}
}

//Map returns a copy of the table as a map.
func (M *Moments) Map() map[Key]complex128 {
	ret := make(map[Key]complex128, len(M.q))
	M.Each(func(k Key, q complex128) { ret[k] = q })
	return ret
}

//Charge returns the total charge, sqrt(4 Pi) q_{0,0}.
func (M *Moments) Charge() float64 {
	return math.Sqrt(4*math.Pi) * real(M.q[0])
}

//Dipole returns the cartesian dipole moment obtained from the l=1 moments.
//It returns an error if the table doesn't include l=1.
func (M *Moments) Dipole() ([3]float64, error) {
	if M.lmax < 1 {
		return [3]float64{}, newError(ErrInvalidOrder, "Dipole", "the dipole needs lmax>=1, the table has lmax=%d", M.lmax)
	}
	q10 := M.At(1, 0)
	q11 := M.At(1, 1)
	c1 := math.Sqrt(8 * math.Pi / 3)
	return [3]float64{-c1 * real(q11), c1 * imag(q11), math.Sqrt(4*math.Pi/3) * real(q10)}, nil
}

//Power returns sqrt(sum_m |q_{l,m}|^2), which doesn't change when the
//distribution is rotated around the origin. It panics if l is not in the table.
func (M *Moments) Power(l int) float64 {
	if l < 0 || l > M.lmax {
		panic(ErrIndexOutOfRange)
	}
	var s float64
	for m := -l; m <= l; m++ {
		a := cmplx.Abs(M.q[sph.Index(l, m)])
		s += a * a
	}
	return math.Sqrt(s)
}

//Truncate returns a new table with the moments up to lmax, which can't be larger than the current one.
func (M *Moments) Truncate(lmax int) (*Moments, error) {
	if lmax < 0 || lmax > M.lmax {
		return nil, newError(ErrInvalidOrder, "Truncate", "can't truncate a table of lmax=%d to %d", M.lmax, lmax)
	}
	ret := newMoments(lmax)
	copy(ret.q, M.q[:len(ret.q)])
	return ret, nil
}

//Add returns a new table with the sum of the moments of M and N, which are the moments
//of the superposition of both distributions. The tables must have the same LMax.
func (M *Moments) Add(N *Moments) (*Moments, error) {
	if N == nil || M.lmax != N.lmax {
		return nil, newError(ErrInvalidMoments, "Add", "can't add tables with different truncation orders")
	}
	ret := newMoments(M.lmax)
	for i := range ret.q {
		ret.q[i] = M.q[i] + N.q[i]
	}
	return ret, nil
}

//Returns a string representation of the table, one moment per line.
func (M *Moments) String() string {
	s := make([]string, 0, len(M.q))
	M.Each(func(k Key, q complex128) {
		s = append(s, fmt.Sprintf("%-8s % .8e %+.8ei", k.String(), real(q), imag(q)))
	})
	return strings.Join(s, "\n")
}

//jsonMoment is a ready-to-serialize container for one moment.
type jsonMoment struct {
	L  int     `json:"l"`
	M  int     `json:"m"`
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func (M *Moments) MarshalJSON() ([]byte, error) {
	list := make([]jsonMoment, 0, len(M.q))
	M.Each(func(k Key, q complex128) {
		list = append(list, jsonMoment{k.L, k.M, real(q), imag(q)})
	})
	j, err := json.Marshal(struct {
		LMax    int          `json:"lmax"`
		Moments []jsonMoment `json:"moments"`
	}{
		LMax:    M.lmax,
		Moments: list,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (M *Moments) UnmarshalJSON(b []byte) error {
	var a struct {
		LMax    int          `json:"lmax"`
		Moments []jsonMoment `json:"moments"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	values := make(map[Key]complex128, len(a.Moments))
	for _, v := range a.Moments {
		k := Key{v.L, v.M}
		if _, ok := values[k]; ok {
			return newError(ErrInvalidMoments, "UnmarshalJSON", "repeated moment %s", k)
		}
		values[k] = complex(v.Re, v.Im)
	}
	N, err := NewMoments(a.LMax, values)
	if err != nil {
		return errDecorate(err, "UnmarshalJSON")
	}
	*M = *N
	return nil
}
