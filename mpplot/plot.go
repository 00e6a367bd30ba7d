/*
 * plot.go, part of gomultipole.
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

//Package mpplot draws multipole expansions with gonum/plot.
//The format of the output is given by the extension of the file name (png, svg, pdf, eps...).
package mpplot

import (
	"fmt"
	"math"

	multipole "github.com/rmera/gomultipole"
	v3 "github.com/rmera/gomultipole/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//Size of the saved plots.
var (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

//ProfileData returns n distances evenly spaced between rmin and rmax along the
//direction dir, and, for each truncation order L=0..lmax, the potential of the
//expansion truncated at L at those distances, i.e. the cumulative sums of Terms.
func ProfileData(E *multipole.Expansion, dir [3]float64, rmin, rmax float64, n int) ([]float64, [][]float64, error) {
	norm := math.Sqrt(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, nil, fmt.Errorf("mpplot: invalid direction %v", dir)
	}
	if n < 2 || rmin <= 0 || rmax <= rmin {
		return nil, nil, fmt.Errorf("mpplot: invalid profile range [%g, %g] with %d points", rmin, rmax, n)
	}
	_, theta, phi := v3.Spherical(dir[0], dir[1], dir[2])
	rs := multipole.Linspace(rmin, rmax, n)
	partial := make([][]float64, E.LMax()+1)
	for l := range partial {
		partial[l] = make([]float64, n)
	}
	for i, r := range rs {
		terms, err := E.Terms(v3.Cartesian(r, theta, phi))
		if err != nil {
			return nil, nil, fmt.Errorf("mpplot: %w", err)
		}
		var sum float64
		for l, t := range terms {
			sum += t
			partial[l][i] = sum
		}
	}
	return rs, partial, nil
}

//Profile plots the potential of the expansion along the ray from the origin in the direction dir,
//between rmin and rmax, with one line for each truncation order from 0 to E.LMax(), and saves
//the plot to filename.
func Profile(E *multipole.Expansion, dir [3]float64, rmin, rmax float64, n int, filename string) error {
	rs, partial, err := ProfileData(E, dir, rmin, rmax, n)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Potential along (%.3g, %.3g, %.3g)", dir[0], dir[1], dir[2])
	p.X.Label.Text = "r"
	p.Y.Label.Text = fmt.Sprintf("Potential (%s units)", E.Units())
	p.Add(plotter.NewGrid())
	for l, vals := range partial {
		pts := make(plotter.XYs, len(rs))
		for i, r := range rs {
			pts[i] = plotter.XY{X: r, Y: vals[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("mpplot: %w", err)
		}
		line.Color = plotutil.Color(l)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("lmax=%d", l), line)
	}
	if ext := E.Extent(); ext > rmin && ext < rmax {
		//mark the radius below which the expansion doesn't converge.
		mark, err := plotter.NewLine(plotter.XYs{{X: ext, Y: p.Y.Min}, {X: ext, Y: p.Y.Max}})
		if err != nil {
			return fmt.Errorf("mpplot: %w", err)
		}
		mark.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(mark)
		p.Legend.Add("extent", mark)
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("mpplot: %w", err)
	}
	return nil
}

//Spectrum saves to filename a bar chart of the rotation-invariant power
//sqrt(sum_m |q_{l,m}|^2) of each order l of the moments.
func Spectrum(M *multipole.Moments, filename string) error {
	vals := make(plotter.Values, M.LMax()+1)
	names := make([]string, len(vals))
	for l := range vals {
		vals[l] = M.Power(l)
		names[l] = fmt.Sprint(l)
	}
	p := plot.New()
	p.Title.Text = "Multipole power spectrum"
	p.X.Label.Text = "l"
	p.Y.Label.Text = "Power"
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return fmt.Errorf("mpplot: %w", err)
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("mpplot: %w", err)
	}
	return nil
}
