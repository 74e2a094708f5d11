// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hyptest compares two samples of performance measurements.
//
// The workhorse is Welch's two-sample t-test, which does not assume
// the two samples share a variance. Its tail probability is derived
// from the regularized incomplete beta function (perfstat/specfunc)
// rather than a library distribution, so p-values are reproducible
// bit for bit across platforms.
//
// Degenerate inputs follow the same policy as perfstat/sample:
// conditions under which the textbook formulas would divide by zero
// yield defined sentinel results (t=0, p=1, d=0) instead of NaN or
// infinity.
package hyptest

import (
	"math"

	"perfstat/sample"
	"perfstat/specfunc"
)

// A TTestResult is the result of a Welch two-sample t-test.
type TTestResult struct {
	// T is the value of the t-statistic.
	T float64

	// DoF is the Welch–Satterthwaite effective degrees of freedom
	// for the test. It is generally not an integer.
	DoF float64

	// P is the two-tailed p-value, clamped to [0, 1].
	P float64
}

// WelchTTest performs a two-tailed Welch's t-test of the null
// hypothesis that x and y have the same population mean, without
// assuming equal variances.
//
// If the standard error of the mean difference is exactly zero (both
// samples constant and equal), the Welch–Satterthwaite formula would
// divide by zero; the test short-circuits to t=0, p=1, reporting no
// evidence of a difference.
func WelchTTest(x, y []float64) TTestResult {
	n1, n2 := float64(len(x)), float64(len(y))
	v1, v2 := sample.Variance(x), sample.Variance(y)

	se := math.Sqrt(v1/n1 + v2/n2)
	if se == 0 {
		return TTestResult{T: 0, DoF: n1 + n2 - 2, P: 1}
	}

	t := (sample.Mean(x) - sample.Mean(y)) / se
	r1, r2 := v1/n1, v2/n2
	dof := (r1 + r2) * (r1 + r2) / (r1*r1/(n1-1) + r2*r2/(n2-1))
	p := math.Min(1, 2*tTailP(math.Abs(t), dof))
	return TTestResult{T: t, DoF: dof, P: p}
}

// tTailP returns the upper tail probability P(T > t) of Student's t
// distribution with dof degrees of freedom, for t >= 0.
func tTailP(t, dof float64) float64 {
	return 0.5 * specfunc.IncompleteBeta(dof/2, 0.5, dof/(dof+t*t))
}

// CohensD returns the standardized mean difference (Cohen's d)
// between x and y, normalizing by the pooled standard deviation with
// each sample's variance weighted by n-1. It returns 0 when the
// pooled standard deviation is zero, including the degenerate case
// of fewer than three values in total.
func CohensD(x, y []float64) float64 {
	n1, n2 := float64(len(x)), float64(len(y))
	if n1+n2 < 3 {
		return 0
	}
	pooled := ((n1-1)*sample.Variance(x) + (n2-1)*sample.Variance(y)) / (n1 + n2 - 2)
	sd := math.Sqrt(pooled)
	if sd == 0 {
		return 0
	}
	return (sample.Mean(x) - sample.Mean(y)) / sd
}

// EffectSizeLabel classifies the magnitude of Cohen's d using the
// conventional thresholds: |d| < 0.2 is negligible, < 0.5 small,
// < 0.8 medium, and large otherwise.
func EffectSizeLabel(d float64) string {
	switch d = math.Abs(d); {
	case d < 0.2:
		return "negligible"
	case d < 0.5:
		return "small"
	case d < 0.8:
		return "medium"
	default:
		return "large"
	}
}

// ConfidenceLevel buckets a p-value into a qualitative label and the
// corresponding confidence percentage.
func ConfidenceLevel(p float64) (label string, pct float64) {
	switch {
	case p < 0.001:
		return "Very High", 99.9
	case p < 0.01:
		return "High", 99
	case p < 0.05:
		return "Moderate", 95
	case p < 0.1:
		return "Low", 90
	default:
		return "Insufficient", 0
	}
}

// PercentChange returns the percent change from before to after.
// It is defined as 0 when before is zero.
func PercentChange(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (after - before) / before * 100
}
