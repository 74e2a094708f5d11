// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyptest

import "github.com/aclements/go-moremath/stats"

// A DeltaTest tests whether the old and new samples come from the
// same distribution, reporting the p-value of that null hypothesis.
// It returns an error (and a p-value of -1) if the samples cannot be
// tested.
type DeltaTest func(old, new []float64) (pval float64, err error)

// TTest is a DeltaTest using Welch's two-sample t-test.
func TTest(old, new []float64) (pval float64, err error) {
	return WelchTTest(old, new).P, nil
}

// UTest is a DeltaTest using the Mann-Whitney U test. It makes no
// distributional assumption about the samples, at the cost of
// requiring more measurements to reach significance.
func UTest(old, new []float64) (pval float64, err error) {
	u, err := stats.MannWhitneyUTest(old, new, stats.LocationDiffers)
	if err != nil {
		return -1, err
	}
	return u.P, nil
}
