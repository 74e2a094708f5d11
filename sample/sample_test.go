// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"math"
	"testing"
)

func aeq(t *testing.T, what string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %v, want %v", what, got, want)
	}
}

func TestMean(t *testing.T) {
	aeq(t, "mean of empty", Mean(nil), 0, 0)
	aeq(t, "mean of one", Mean([]float64{7}), 7, 0)
	aeq(t, "mean", Mean([]float64{1, 2, 3, 4}), 2.5, 0)
}

func TestVariance(t *testing.T) {
	aeq(t, "variance of empty", Variance(nil), 0, 0)
	aeq(t, "variance of one", Variance([]float64{42}), 0, 0)
	aeq(t, "variance", Variance([]float64{1, 2, 3, 4, 5}), 2.5, 1e-12)
	aeq(t, "variance of constants", Variance([]float64{3, 3, 3}), 0, 0)

	// stdDev must be exactly the square root of variance.
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got, want := StdDev(xs), math.Sqrt(Variance(xs)); got != want {
		t.Errorf("StdDev(%v) = %v, want sqrt(Variance) = %v", xs, got, want)
	}
	aeq(t, "stderr", StdErr(xs), StdDev(xs)/math.Sqrt(8), 0)
	aeq(t, "stderr of empty", StdErr(nil), 0, 0)
}

func TestMedian(t *testing.T) {
	aeq(t, "median of empty", Median(nil), 0, 0)
	aeq(t, "median odd", Median([]float64{5, 1, 3}), 3, 0)
	aeq(t, "median even", Median([]float64{4, 1, 3, 2}), 2.5, 0)

	// Median must agree with the 50th percentile for both
	// parities.
	for _, xs := range [][]float64{
		{9, 2, 7, 4, 6},
		{9, 2, 7, 4, 6, 11},
	} {
		if got, want := Median(xs), Percentile(xs, 50); got != want {
			t.Errorf("Median(%v) = %v, Percentile 50 = %v", xs, got, want)
		}
	}
}

func TestPercentile(t *testing.T) {
	aeq(t, "percentile of empty", Percentile(nil, 75), 0, 0)

	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	aeq(t, "p0", Percentile(xs, 0), 1, 0)
	aeq(t, "p100", Percentile(xs, 100), 8, 0)
	aeq(t, "p25", Percentile(xs, 25), 2.75, 1e-12)
	aeq(t, "p75", Percentile(xs, 75), 6.25, 1e-12)

	// The input must not be reordered.
	ys := []float64{3, 1, 2}
	Percentile(ys, 50)
	if ys[0] != 3 || ys[1] != 1 || ys[2] != 2 {
		t.Errorf("Percentile reordered its input: %v", ys)
	}
}

func TestQuartiles(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	q1, q2, q3 := Quartiles(xs)
	aeq(t, "q1", q1, 2.75, 1e-12)
	aeq(t, "q2", q2, 4.5, 1e-12)
	aeq(t, "q3", q3, 6.25, 1e-12)
	if got, want := IQR(xs), q3-q1; got != want {
		t.Errorf("IQR(%v) = %v, want q3-q1 = %v", xs, got, want)
	}
}

func TestBounds(t *testing.T) {
	min, max := Bounds(nil)
	if min != 0 || max != 0 {
		t.Errorf("Bounds(nil) = %v, %v, want 0, 0", min, max)
	}
	min, max = Bounds([]float64{3, -1, 7, 2})
	if min != -1 || max != 7 {
		t.Errorf("Bounds = %v, %v, want -1, 7", min, max)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{1, 2, 3, 4, 5})
	if s.N != 5 {
		t.Errorf("N = %d, want 5", s.N)
	}
	aeq(t, "mean", s.Mean, 3, 0)
	aeq(t, "median", s.Median, 3, 0)
	aeq(t, "variance", s.Variance, 2.5, 1e-12)
	aeq(t, "stddev", s.StdDev, math.Sqrt(2.5), 1e-12)
	aeq(t, "range", s.Range, 4, 0)
	aeq(t, "iqr", s.IQR, s.Q3-s.Q1, 0)

	z := Describe(nil)
	if z.N != 0 || z.Mean != 0 || z.Median != 0 || z.StdDev != 0 || z.Min != 0 || z.Max != 0 {
		t.Errorf("Describe(nil) = %+v, want all zero", z)
	}
}

func TestMeanCI(t *testing.T) {
	xs := []float64{10, 12, 9, 11, 10, 13, 8, 11, 10, 12}
	mean, lo, hi := MeanCI(xs, 0.95)
	aeq(t, "mean", mean, Mean(xs), 1e-12)
	if !(lo < mean && mean < hi) {
		t.Errorf("interval [%v, %v] does not bracket mean %v", lo, hi, mean)
	}

	mean, lo, hi = MeanCI([]float64{5}, 0.95)
	if mean != 5 || lo != 5 || hi != 5 {
		t.Errorf("MeanCI of one value = %v [%v, %v], want collapsed to 5", mean, lo, hi)
	}
}

func TestTrimOutliers(t *testing.T) {
	xs := []float64{10, 11, 9, 10, 12, 11, 10, 9, 11, 1000}
	got := TrimOutliers(xs)
	for _, x := range got {
		if x == 1000 {
			t.Errorf("TrimOutliers kept outlier 1000: %v", got)
		}
	}
	if len(got) != len(xs)-1 {
		t.Errorf("TrimOutliers dropped %d values, want 1", len(xs)-len(got))
	}
	if len(xs) != 10 || xs[9] != 1000 {
		t.Errorf("TrimOutliers modified its input: %v", xs)
	}
}
