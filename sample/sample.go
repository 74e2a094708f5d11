// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample computes descriptive statistics over samples of
// performance measurements.
//
// Samples are plain []float64 slices of finite values owned by the
// caller; no function in this package mutates its input. Statistics
// over empty or undersized samples degrade to zero rather than
// failing, so callers can render partial results without special
// cases.
package sample

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Summary holds the descriptive statistics of a single sample.
// It is recomputed from the raw values on every call to Describe and
// carries no state of its own.
type Summary struct {
	N int

	Mean     float64
	Median   float64
	StdDev   float64
	StdErr   float64
	Variance float64

	Min, Max, Range float64
	Q1, Q3, IQR     float64
}

// Describe computes the full descriptive summary of xs.
func Describe(xs []float64) Summary {
	min, max := Bounds(xs)
	q1, q2, q3 := Quartiles(xs)
	return Summary{
		N:        len(xs),
		Mean:     Mean(xs),
		Median:   q2,
		StdDev:   StdDev(xs),
		StdErr:   StdErr(xs),
		Variance: Variance(xs),
		Min:      min,
		Max:      max,
		Range:    max - min,
		Q1:       q1,
		Q3:       q3,
		IQR:      q3 - q1,
	}
}

// Mean returns the arithmetic mean of xs, or 0 if xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the sample variance of xs with Bessel's
// correction (dividing by n-1), or 0 if xs has fewer than two
// values.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// StdErr returns the standard error of the mean of xs, or 0 if xs is
// empty.
func StdErr(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return StdDev(xs) / math.Sqrt(float64(len(xs)))
}

// Median returns the median of xs, or 0 if xs is empty. For an
// even-length sample it is the mean of the two middle order
// statistics.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	s := sorted(xs)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// Percentile returns the p-th percentile of xs, with p in [0, 100],
// by linear interpolation between the order statistics at index
// (p/100)·(n-1). It returns 0 if xs is empty. Behavior for p outside
// [0, 100] is undefined.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := sorted(xs)
	idx := p / 100 * float64(len(s)-1)
	lo, hi := int(math.Floor(idx)), int(math.Ceil(idx))
	if lo == hi {
		return s[lo]
	}
	return s[lo] + (idx-float64(lo))*(s[hi]-s[lo])
}

// Quartiles returns the 25th, 50th, and 75th percentiles of xs.
func Quartiles(xs []float64) (q1, q2, q3 float64) {
	return Percentile(xs, 25), Percentile(xs, 50), Percentile(xs, 75)
}

// IQR returns the interquartile range of xs.
func IQR(xs []float64) float64 {
	q1, _, q3 := Quartiles(xs)
	return q3 - q1
}

// Bounds returns the minimum and maximum values of xs, or (0, 0) if
// xs is empty.
func Bounds(xs []float64) (min, max float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

// MeanCI returns the mean of xs and the bounds of its confidence
// interval at the given confidence level (e.g., 0.95 for 95%
// confidence). For samples with fewer than two values the interval
// collapses to the mean itself.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) < 2 {
		m := Mean(xs)
		return m, m, m
	}
	s := stats.Sample{Xs: sorted(xs), Sorted: true}
	return s.MeanCI(confidence)
}

// TrimOutliers returns a new slice containing the values of xs that
// lie within 1.5 interquartile ranges of the quartiles. The input is
// not modified.
func TrimOutliers(xs []float64) []float64 {
	q1, _, q3 := Quartiles(xs)
	lo, hi := q1-1.5*(q3-q1), q3+1.5*(q3-q1)
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if lo <= x && x <= hi {
			out = append(out, x)
		}
	}
	return out
}

// sorted returns a sorted copy of xs.
func sorted(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	return s
}
