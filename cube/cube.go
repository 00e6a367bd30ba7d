/*
 * cube.go, part of gomultipole.
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

//Package cube reads and writes volumetric data in the Gaussian cube format,
//optionally compressed, and turns it into charge distributions.
//
//Only grids with axis-aligned step vectors are supported, and only one value per grid point.
package cube

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	multipole "github.com/rmera/gomultipole"
)

//Atom is one of the atoms listed in a cube file.
type Atom struct {
	Number int     //atomic number
	Charge float64 //nuclear charge, which is often just 0 in cube files
	XYZ    [3]float64
}

//Cube contains the data in a cube file.
//Distances are in the units of the file, bohr unless Angstrom is true.
type Cube struct {
	Comments [2]string
	Origin   [3]float64
	Step     [3]float64 //the grid step along x, y and z
	Atoms    []Atom
	Angstrom bool
	Data     *multipole.Field
}

//Axes returns the coordinates of the grid points along each axis.
func (C *Cube) Axes() (xs, ys, zs []float64) {
	nx, ny, nz := C.Data.Dims()
	axis := func(n int, o, s float64) []float64 {
		ret := make([]float64, n)
		for i := range ret {
			ret[i] = o + float64(i)*s
		}
		return ret
	}
	return axis(nx, C.Origin[0], C.Step[0]), axis(ny, C.Origin[1], C.Step[1]), axis(nz, C.Origin[2], C.Step[2])
}

//Translate displaces the grid and the atoms by v.
func (C *Cube) Translate(v [3]float64) {
	for i := range C.Origin {
		C.Origin[i] += v[i]
	}
	for i := range C.Atoms {
		for j := range v {
			C.Atoms[i].XYZ[j] += v[j]
		}
	}
}

//Distribution returns a continuous distribution with the data of the cube times scale,
//as a density. Use a scale of -1 for electron densities.
func (C *Cube) Distribution(scale float64) (*multipole.Continuous, error) {
	if C.Data == nil {
		return nil, Error{message: "no volumetric data", deco: []string{"Distribution"}, critical: true, kind: multipole.ErrInvalidDistribution}
	}
	nx, ny, nz := C.Data.Dims()
	src := C.Data.RawData()
	data := make([]float64, len(src))
	for i, v := range src {
		data[i] = v * scale
	}
	rho, err := multipole.NewField(nx, ny, nz, data)
	if err != nil {
		return nil, errDecorate(err, "Distribution")
	}
	X, Y, Z := multipole.Meshgrid(C.Axes())
	d, err := multipole.NewContinuous(rho, X, Y, Z)
	if err != nil {
		return nil, errDecorate(err, "Distribution")
	}
	return d, nil
}

//Nuclei returns the atoms as point charges. The Charge field of each atom is used,
//or the atomic number if the charge is zero.
func (C *Cube) Nuclei() (*multipole.Discrete, error) {
	points := make([]multipole.PointCharge, len(C.Atoms))
	for i, a := range C.Atoms {
		q := a.Charge
		if q == 0 {
			q = float64(a.Number)
		}
		points[i] = multipole.PointCharge{Q: q, XYZ: a.XYZ}
	}
	d, err := multipole.NewDiscreteFromPoints(points)
	if err != nil {
		return nil, errDecorate(err, "Nuclei")
	}
	return d, nil
}

//Read reads the cube file fname, decompressing it according to its extension.
func Read(fname string) (*Cube, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, Error{message: err.Error(), filename: fname, deco: []string{"Read"}, critical: true}
	}
	defer f.Close()
	r, err := newReader(bufio.NewReader(f), CompressionFor(fname))
	if err != nil {
		return nil, Error{message: "can't decompress: " + err.Error(), filename: fname, deco: []string{"Read"}, critical: true}
	}
	defer r.Close()
	C, err := Decode(r)
	if e, ok := err.(Error); ok {
		e.filename = fname
		e.deco = e.Decorate("Read")
		return nil, e
	} else if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return C, nil
}

//Decode reads an uncompressed cube from r.
func Decode(r io.Reader) (*Cube, error) {
	p := &parser{s: bufio.NewScanner(r)}
	p.s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	C := new(Cube)
	C.Comments[0] = p.line()
	C.Comments[1] = p.line()
	head := p.floats(4)
	natoms := p.count(head[0])
	C.Origin = [3]float64{head[1], head[2], head[3]}
	multiset := natoms < 0
	if multiset {
		natoms = -natoms
	}
	var n [3]int
	for i := 0; i < 3; i++ {
		ax := p.floats(4)
		n[i] = p.count(ax[0])
		if n[i] < 0 {
			C.Angstrom = true
			n[i] = -n[i]
		}
		for j := 0; j < 3; j++ {
			if j == i {
				C.Step[i] = ax[j+1]
			} else if ax[j+1] != 0 && p.err == nil {
				p.err = fmt.Errorf("step vector %d is not axis-aligned: %v", i+1, ax[1:])
				p.kind = multipole.ErrInvalidDistribution
			}
		}
	}
	//the atom count is not trusted for allocation, a corrupt header just runs out of lines.
	for i := 0; i < natoms && p.err == nil; i++ {
		a := p.floats(5)
		if p.err == nil {
			C.Atoms = append(C.Atoms, Atom{Number: int(a[0]), Charge: a[1], XYZ: [3]float64{a[2], a[3], a[4]}})
		}
	}
	if multiset {
		//the line with the number of datasets and their IDs.
		fields := strings.Fields(p.line())
		if p.err == nil && (len(fields) < 1 || fields[0] != "1") {
			p.err = fmt.Errorf("only cube files with one value per grid point are supported")
		}
	}
	if p.err != nil {
		return nil, p.error("Decode")
	}
	if n[0] < 1 || n[1] < 1 || n[2] < 1 || n[0] > math.MaxInt/n[1] || n[0]*n[1] > math.MaxInt/n[2] {
		return nil, Error{message: fmt.Sprintf("invalid grid dimensions %v", n), deco: []string{"Decode"}, critical: true, kind: multipole.ErrInvalidDistribution}
	}
	data := p.values(n[0] * n[1] * n[2])
	if p.err != nil {
		return nil, p.error("Decode")
	}
	var err error
	C.Data, err = multipole.NewField(n[0], n[1], n[2], data)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return C, nil
}

//maxCount is the largest atom or grid point count accepted in a header.
const maxCount = math.MaxInt32

//parser reads a cube file line by line. After the first error, all its methods
//do nothing, so the error only needs to be checked once in a while.
type parser struct {
	s      *bufio.Scanner
	lineno int
	err    error
	kind   error
}

func (p *parser) line() string {
	if p.err != nil {
		return ""
	}
	if !p.s.Scan() {
		p.err = p.s.Err()
		if p.err == nil {
			p.err = io.ErrUnexpectedEOF
		}
		return ""
	}
	p.lineno++
	return p.s.Text()
}

//count converts a count read from the header to an int. It sets the error if v is
//not an integer or is too large.
func (p *parser) count(v float64) int {
	if p.err != nil {
		return 0
	}
	if v != math.Trunc(v) || math.Abs(v) > maxCount {
		p.err = fmt.Errorf("line %d: invalid count %g", p.lineno, v)
		p.kind = multipole.ErrInvalidDistribution
		return 0
	}
	return int(v)
}

//floats reads a line and parses its first n fields.
func (p *parser) floats(n int) []float64 {
	ret := make([]float64, n)
	fields := strings.Fields(p.line())
	if p.err != nil {
		return ret
	}
	if len(fields) < n {
		p.err = fmt.Errorf("line %d: expected %d fields, got %d", p.lineno, n, len(fields))
		return ret
	}
	for i := range ret {
		ret[i], p.err = strconv.ParseFloat(fields[i], 64)
		if p.err != nil {
			p.err = fmt.Errorf("line %d: %w", p.lineno, p.err)
			return ret
		}
	}
	return ret
}

//values reads n values, in as many lines as needed.
func (p *parser) values(n int) []float64 {
	ret := make([]float64, 0, min(n, 1<<16))
	for len(ret) < n && p.err == nil {
		for _, f := range strings.Fields(p.line()) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				p.err = fmt.Errorf("line %d: %w", p.lineno, err)
				return nil
			}
			ret = append(ret, v)
		}
	}
	if len(ret) != n && p.err == nil {
		p.err = fmt.Errorf("expected %d values, got %d", n, len(ret))
	}
	return ret
}

func (p *parser) error(caller string) Error {
	kind := p.kind
	if kind == nil {
		kind = multipole.ErrInvalidDistribution
	}
	return Error{message: p.err.Error(), deco: []string{caller}, critical: true, kind: kind}
}

//Write writes C to the file fname, compressing it according to its extension.
func Write(fname string, C *Cube) error {
	f, err := os.Create(fname)
	if err != nil {
		return Error{message: err.Error(), filename: fname, deco: []string{"Write"}, critical: true}
	}
	w, err := newWriter(f, CompressionFor(fname))
	if err != nil {
		f.Close()
		return Error{message: err.Error(), filename: fname, deco: []string{"Write"}, critical: true}
	}
	err = Encode(w, C)
	if err2 := w.Close(); err == nil && err2 != nil {
		err = Error{message: err2.Error(), filename: fname, deco: []string{"Write"}, critical: true}
	}
	if err2 := f.Close(); err == nil && err2 != nil {
		err = Error{message: err2.Error(), filename: fname, deco: []string{"Write"}, critical: true}
	}
	return err
}

//Encode writes C to w in the cube format, with 6 values per line.
func Encode(w io.Writer, C *Cube) error {
	if C.Data == nil {
		return Error{message: "no volumetric data", deco: []string{"Encode"}, critical: true, kind: multipole.ErrInvalidDistribution}
	}
	b := bufio.NewWriter(w)
	nx, ny, nz := C.Data.Dims()
	sign := 1
	if C.Angstrom {
		sign = -1
	}
	for _, c := range C.Comments {
		fmt.Fprintln(b, strings.ReplaceAll(c, "\n", " "))
	}
	fmt.Fprintf(b, "%5d %12.6f %12.6f %12.6f\n", len(C.Atoms), C.Origin[0], C.Origin[1], C.Origin[2])
	for i, n := range [3]int{nx, ny, nz} {
		var v [3]float64
		v[i] = C.Step[i]
		fmt.Fprintf(b, "%5d %12.6f %12.6f %12.6f\n", sign*n, v[0], v[1], v[2])
	}
	for _, a := range C.Atoms {
		fmt.Fprintf(b, "%5d %12.6f %12.6f %12.6f %12.6f\n", a.Number, a.Charge, a.XYZ[0], a.XYZ[1], a.XYZ[2])
	}
	for i, v := range C.Data.RawData() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Error{message: fmt.Sprintf("value %d is not finite", i), deco: []string{"Encode"}, critical: true, kind: multipole.ErrInvalidDistribution}
		}
		fmt.Fprintf(b, " %13.5E", v)
		//a new line every 6 values and at the end of each z column.
		if (i+1)%nz == 0 || (i%nz+1)%6 == 0 {
			b.WriteString("\n")
		}
	}
	if err := b.Flush(); err != nil {
		return Error{message: err.Error(), deco: []string{"Encode"}, critical: true}
	}
	return nil
}
