/*
 * factorial.go, part of gomultipole.
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

import (
	"math"
	"sync"
)

//logFactorials are tabulated up to this value, larger arguments
//go through math.Lgamma.
const tabulatedFactorials = 256

var (
	logFacOnce  sync.Once
	logFacTable []float64
)

func buildLogFactorials() {
	t := make([]float64, tabulatedFactorials+1)
	for i := 2; i <= tabulatedFactorials; i++ {
		t[i] = t[i-1] + math.Log(float64(i))
	}
	logFacTable = t
}

//LogFactorial returns ln(n!). It panics for negative n.
//The table behind it is built once and never modified.
func LogFactorial(n int) float64 {
	if n < 0 {
		panic(ErrNegativeFactorial)
	}
	logFacOnce.Do(buildLogFactorials)
	if n <= tabulatedFactorials {
		return logFacTable[n]
	}
	lg, _ := math.Lgamma(float64(n + 1))
	return lg
}

//Norm returns the normalization constant of Y_{l,m} without the Condon-Shortley phase,
//sqrt((2l+1)/(4 Pi) (l-|m|)!/(l+|m|)!). It panics if |m|>l.
func Norm(l, m int) float64 {
	checkLM(l, m)
	if m < 0 {
		m = -m
	}
	lnratio := LogFactorial(l-m) - LogFactorial(l+m)
	return math.Sqrt(float64(2*l+1) / (4 * math.Pi) * math.Exp(lnratio))
}
