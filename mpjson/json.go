/*
 * json.go, part of gomultipole.
 *
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
 *
 */

package mpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	multipole "github.com/rmera/gomultipole"
)

//Descriptor is a ready-to-serialize container for a charge distribution.
type Descriptor struct {
	Kind    string                  `json:"kind"`
	Charges []multipole.PointCharge `json:"charges,omitempty"`
	Shape   []int                   `json:"shape,omitempty"`
	Rho     []float64               `json:"rho,omitempty"`
	X       []float64               `json:"x,omitempty"`
	Y       []float64               `json:"y,omitempty"`
	Z       []float64               `json:"z,omitempty"`
	Axes    *Axes                   `json:"axes,omitempty"`
}

//Axes holds the coordinates of the grid along each axis.
type Axes struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	Z []float64 `json:"z"`
}

//Error is an easily JSON-serializable error type.
//It unwraps to the Kind of the underlying multipole error, if any,
//or to multipole.ErrInvalidDistribution for malformed descriptors.
type Error struct {
	deco     []string
	kind     error
	Function string //which go function gave the error
	Message  string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return fmt.Sprintf("mpjson: %s (%s)", J.Message, strings.Join(J.deco, " < "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Critical always returns true. There are no recoverable errors when decoding.
func (J *Error) Critical() bool { return true }

func (J *Error) Unwrap() error { return J.kind }

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//newError takes an error and the name of the function where it happened and
//returns an *Error. If err is a multipole error, its Kind is kept.
func newError(function string, err error) *Error {
	jerr := &Error{deco: []string{function}, Function: function, Message: err.Error(), kind: multipole.ErrInvalidDistribution}
	for _, k := range []error{multipole.ErrInvalidDistribution, multipole.ErrInvalidOrder, multipole.ErrInvalidMoments} {
		if errors.Is(err, k) {
			jerr.kind = k
			break
		}
	}
	return jerr
}

//Distribution returns the charge distribution described by D.
func (D *Descriptor) Distribution() (multipole.Distribution, error) {
	const funcname = "Distribution"
	switch strings.ToLower(D.Kind) {
	case "discrete":
		d, err := multipole.NewDiscreteFromPoints(D.Charges)
		if err != nil {
			return nil, newError(funcname, err)
		}
		return d, nil
	case "continuous":
		C, err := D.continuous()
		if err != nil {
			err.(*Error).Decorate(funcname)
			return nil, err
		}
		return C, nil
	default:
		return nil, newError(funcname, fmt.Errorf("unknown distribution kind %q", D.Kind))
	}
}

func (D *Descriptor) continuous() (*multipole.Continuous, error) {
	const funcname = "continuous"
	if len(D.Shape) != 3 {
		return nil, newError(funcname, fmt.Errorf("the shape must have 3 elements, got %d", len(D.Shape)))
	}
	nx, ny, nz := D.Shape[0], D.Shape[1], D.Shape[2]
	rho, err := multipole.NewField(nx, ny, nz, D.Rho)
	if err != nil {
		return nil, newError(funcname, err)
	}
	var X, Y, Z *multipole.Field
	if D.Axes != nil {
		if len(D.Axes.X) != nx || len(D.Axes.Y) != ny || len(D.Axes.Z) != nz {
			return nil, newError(funcname, fmt.Errorf("axes of lengths %d, %d, %d don't match the shape %v", len(D.Axes.X), len(D.Axes.Y), len(D.Axes.Z), D.Shape))
		}
		X, Y, Z = multipole.Meshgrid(D.Axes.X, D.Axes.Y, D.Axes.Z)
	} else {
		fields := make([]*multipole.Field, 3)
		for i, v := range [][]float64{D.X, D.Y, D.Z} {
			fields[i], err = multipole.NewField(nx, ny, nz, v)
			if err != nil {
				return nil, newError(funcname, err)
			}
		}
		X, Y, Z = fields[0], fields[1], fields[2]
	}
	C, err := multipole.NewContinuous(rho, X, Y, Z)
	if err != nil {
		return nil, newError(funcname, err)
	}
	return C, nil
}

//DecodeDistribution decodes a JSON descriptor from r and returns the distribution it describes.
func DecodeDistribution(r io.Reader) (multipole.Distribution, error) {
	D := new(Descriptor)
	dec := json.NewDecoder(r)
	if err := dec.Decode(D); err != nil {
		return nil, newError("DecodeDistribution", err)
	}
	d, err := D.Distribution()
	if err != nil {
		err.(*Error).Decorate("DecodeDistribution")
		return nil, err
	}
	return d, nil
}

//ReadDistribution reads a JSON descriptor from the file fname.
func ReadDistribution(fname string) (multipole.Distribution, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, newError("ReadDistribution", err)
	}
	defer f.Close()
	d, err := DecodeDistribution(f)
	if err != nil {
		err.(*Error).Decorate("ReadDistribution")
		return nil, err
	}
	return d, nil
}

//EncodeDiscrete writes a descriptor for the distribution D to w.
func EncodeDiscrete(w io.Writer, D *multipole.Discrete) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(&Descriptor{Kind: "discrete", Charges: D.Points()}); err != nil {
		return newError("EncodeDiscrete", err)
	}
	return nil
}

//EncodeMoments writes the table of moments to w as
//{"lmax": L, "moments": [{"l": 0, "m": 0, "re": ..., "im": ...}, ...]}
func EncodeMoments(w io.Writer, M *multipole.Moments) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(M); err != nil {
		return newError("EncodeMoments", err)
	}
	return nil
}

//DecodeMoments reads a table of moments, in the format written by EncodeMoments, from r.
func DecodeMoments(r io.Reader) (*multipole.Moments, error) {
	M := new(multipole.Moments)
	dec := json.NewDecoder(r)
	if err := dec.Decode(M); err != nil {
		return nil, newError("DecodeMoments", err)
	}
	return M, nil
}
