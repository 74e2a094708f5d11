// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package complexity classifies the asymptotic growth of an
// algorithm from empirical (input size, time) measurements.
//
// Each growth class in a fixed catalog transforms the input size and
// is fitted to the measured times by ordinary least squares; the
// class explaining the most variance (highest R²) wins. The catalog
// is closed: callers select classes by tag, never by name lookup.
package complexity

import (
	"math"
	"sort"
)

// A Class is one growth class from the fixed catalog. The zero value
// is Constant. Catalog order breaks ties between fits of equal R².
type Class int

const (
	Constant Class = iota
	Logarithmic
	Linear
	Linearithmic
	Quadratic
	Cubic
	Exponential

	numClasses
)

// maxExponentialN is the largest observed input size for which the
// exponential class is fitted at all; past it, 2ⁿ overflows the
// regression sums.
const maxExponentialN = 30

// Transform maps an input size through the class's growth function.
func (c Class) Transform(n float64) float64 {
	switch c {
	case Constant:
		return 1
	case Logarithmic:
		return math.Log(n)
	case Linear:
		return n
	case Linearithmic:
		return n * math.Log(n)
	case Quadratic:
		return n * n
	case Cubic:
		return n * n * n
	case Exponential:
		return math.Pow(2, n)
	}
	return math.NaN()
}

// String returns the class's display label.
func (c Class) String() string {
	switch c {
	case Constant:
		return "O(1)"
	case Logarithmic:
		return "O(log n)"
	case Linear:
		return "O(n)"
	case Linearithmic:
		return "O(n log n)"
	case Quadratic:
		return "O(n²)"
	case Cubic:
		return "O(n³)"
	case Exponential:
		return "O(2ⁿ)"
	}
	return "unknown"
}

// An Observation is one empirical measurement: an input size and the
// time the algorithm took at that size.
type Observation struct {
	N    float64
	Time float64
}

// A Regression is an ordinary least squares line fit.
type Regression struct {
	Slope, Intercept float64

	// RSquared is the coefficient of determination. A fit that
	// explains no more variance than the mean baseline reports 0,
	// never a negative value.
	RSquared float64
}

// LinearRegression fits ys against xs by ordinary least squares
// using the closed-form sums. Fewer than two points yield a zero
// fit. If the xs carry no variation (all equal), the slope is
// undefined; the fit degrades to the mean baseline with RSquared 0.
func LinearRegression(xs, ys []float64) Regression {
	if len(xs) < 2 || len(xs) != len(ys) {
		return Regression{}
	}
	n := float64(len(xs))
	var sx, sy, sxy, sxx float64
	for i, x := range xs {
		sx += x
		sy += ys[i]
		sxy += x * ys[i]
		sxx += x * x
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		return Regression{Slope: 0, Intercept: sy / n, RSquared: 0}
	}
	slope := (n*sxy - sx*sy) / denom
	intercept := (sy - slope*sx) / n

	mean := sy / n
	var ssTot, ssRes float64
	for i, x := range xs {
		d := ys[i] - mean
		ssTot += d * d
		r := ys[i] - (slope*x + intercept)
		ssRes += r * r
	}
	r2 := 0.0
	if ssTot > 0 {
		r2 = math.Max(0, 1-ssRes/ssTot)
	}
	return Regression{Slope: slope, Intercept: intercept, RSquared: r2}
}

// A Fit is the regression of measured times against one class's
// transform of the input sizes.
type Fit struct {
	Class Class

	// Coefficient and Constant are the fitted slope and
	// intercept: time ≈ Coefficient·Transform(n) + Constant.
	Coefficient float64
	Constant    float64
	RSquared    float64

	// Invalid marks fits whose transformed input sizes were not
	// finite; invalid fits are excluded from ranking.
	Invalid bool

	// Best marks the winning fit. FitAll sets it on at most one
	// fit per run.
	Best bool
}

// FitClass regresses the observed times against class's transform of
// the input sizes.
func FitClass(obs []Observation, class Class) Fit {
	f := Fit{Class: class}
	xs := make([]float64, len(obs))
	ys := make([]float64, len(obs))
	for i, o := range obs {
		x := class.Transform(o.N)
		if math.IsInf(x, 0) || math.IsNaN(x) {
			f.Invalid = true
			return f
		}
		xs[i], ys[i] = x, o.Time
	}
	r := LinearRegression(xs, ys)
	f.Coefficient, f.Constant, f.RSquared = r.Slope, r.Intercept, r.RSquared
	return f
}

// FitAll fits every eligible class and returns the fits sorted by
// descending R², with the winner marked Best. Classes of equal R²
// keep catalog order, so the first-listed class wins ties. The
// exponential class is fitted only when every observed input size is
// at most 30.
func FitAll(obs []Observation) []Fit {
	maxN := 0.0
	for _, o := range obs {
		if o.N > maxN {
			maxN = o.N
		}
	}
	fits := make([]Fit, 0, numClasses)
	for c := Constant; c < numClasses; c++ {
		if c == Exponential && maxN > maxExponentialN {
			continue
		}
		fits = append(fits, FitClass(obs, c))
	}
	sort.SliceStable(fits, func(i, j int) bool {
		return fits[i].RSquared > fits[j].RSquared
	})
	for i := range fits {
		if !fits[i].Invalid {
			fits[i].Best = true
			break
		}
	}
	return fits
}

// Predictions evaluates the fit at each input size. Predicted times
// are clamped at zero, since a time cannot be negative.
func Predictions(f Fit, ns []float64) []float64 {
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = math.Max(0, f.Coefficient*f.Class.Transform(n)+f.Constant)
	}
	return out
}

// An Analysis is the full result of classifying one set of
// observations.
type Analysis struct {
	// Observations holds the input measurements, sorted by
	// ascending input size.
	Observations []Observation

	// Fits holds one fit per eligible class, best first.
	Fits []Fit

	// Best is the winning fit.
	Best Fit

	// Predictions are the best fit's predicted times at the
	// observed input sizes.
	Predictions []float64

	// Confidence buckets the best fit's R²: below 0.7 is "Low",
	// below 0.9 "Moderate", below 0.98 "High", and "Very High"
	// otherwise.
	Confidence string
}

// Analyze fits every eligible growth class to the observations and
// selects the best one. The input slice is not modified.
func Analyze(obs []Observation) Analysis {
	s := make([]Observation, len(obs))
	copy(s, obs)
	sort.SliceStable(s, func(i, j int) bool { return s[i].N < s[j].N })

	a := Analysis{Observations: s}
	a.Fits = FitAll(s)
	for _, f := range a.Fits {
		if f.Best {
			a.Best = f
			break
		}
	}
	ns := make([]float64, len(s))
	for i, o := range s {
		ns[i] = o.N
	}
	a.Predictions = Predictions(a.Best, ns)

	switch r2 := a.Best.RSquared; {
	case r2 < 0.7:
		a.Confidence = "Low"
	case r2 < 0.9:
		a.Confidence = "Moderate"
	case r2 < 0.98:
		a.Confidence = "High"
	default:
		a.Confidence = "Very High"
	}
	return a
}
