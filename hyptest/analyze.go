// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyptest

import (
	"fmt"

	"github.com/aclements/go-moremath/mathx"

	"perfstat/sample"
)

// A Thresholds configures the statistical thresholds used by
// comparisons.
//
// This should be initialized to DefaultThresholds because it may be
// extended with other fields in the future.
type Thresholds struct {
	// CompareAlpha is the alpha level below which Analyze rejects
	// the null hypothesis that the before and after samples come
	// from the same distribution.
	//
	// This is typically 0.05.
	CompareAlpha float64
}

// DefaultThresholds contains a reasonable set of defaults for Thresholds.
var DefaultThresholds = Thresholds{
	CompareAlpha: 0.05,
}

// Verdicts reported by Analyze.
const (
	Faster       = "faster"
	Slower       = "slower"
	Inconclusive = "inconclusive"
)

// A Comparison is the full result of comparing an after sample
// against a before sample. Lower measurements are better.
type Comparison struct {
	// Before and After summarize the two input samples.
	Before, After sample.Summary

	// TTest is the Welch t-test of the two samples.
	TTest TTestResult

	// EffectSize is Cohen's d between the two samples, and
	// EffectLabel its qualitative magnitude.
	EffectSize  float64
	EffectLabel string

	// PctChange is the percent change of the after mean relative
	// to the before mean.
	PctChange float64

	// ConfidenceLabel and ConfidencePct bucket the p-value.
	ConfidenceLabel string
	ConfidencePct   float64

	// Alpha is the significance threshold this comparison used.
	// Significant reports whether TTest.P < Alpha.
	Alpha       float64
	Significant bool

	// Verdict is Faster if the after mean improved (decreased)
	// significantly, Slower if it regressed significantly, and
	// Inconclusive otherwise.
	Verdict string

	// Warnings is a list of warnings about this comparison that
	// should be reported to the user.
	Warnings []error
}

// Analyze compares the before and after samples and composes the
// descriptive, inferential, and qualitative results into a
// Comparison. If t is nil, it uses DefaultThresholds.
func Analyze(before, after []float64, t *Thresholds) Comparison {
	if t == nil {
		t = &DefaultThresholds
	}
	c := Comparison{
		Before: sample.Describe(before),
		After:  sample.Describe(after),
		Alpha:  t.CompareAlpha,
	}
	c.TTest = WelchTTest(before, after)
	c.EffectSize = CohensD(before, after)
	c.EffectLabel = EffectSizeLabel(c.EffectSize)
	c.PctChange = PercentChange(c.Before.Mean, c.After.Mean)
	c.ConfidenceLabel, c.ConfidencePct = ConfidenceLevel(c.TTest.P)
	c.Significant = c.TTest.P < t.CompareAlpha

	switch {
	case !c.Significant:
		c.Verdict = Inconclusive
	case c.After.Mean < c.Before.Mean:
		c.Verdict = Faster
	default:
		c.Verdict = Slower
	}

	if len(before) < 2 || len(after) < 2 {
		c.Warnings = append(c.Warnings, fmt.Errorf("need >= 2 samples on each side to estimate variance; have %d and %d", len(before), len(after)))
	} else if c.Before.Variance == 0 && c.After.Variance == 0 {
		c.Warnings = append(c.Warnings, fmt.Errorf("all %d measurements are equal; no variance to test", len(before)+len(after)))
	}
	return c
}

// FormatDelta formats the relative difference between the before and
// after means. It returns "~" when the comparison accepts the null
// hypothesis that the samples come from the same distribution, and
// "?" when the means differ in sign or the before mean is zero, so a
// percentage is meaningless.
func (c Comparison) FormatDelta() string {
	if !c.Significant {
		return "~"
	}
	old, new := c.Before.Mean, c.After.Mean
	if old == new {
		return "0.00%"
	}
	if old == 0 || mathx.Sign(old) != mathx.Sign(new) {
		return "?"
	}
	return fmt.Sprintf("%+.2f%%", (new/old-1)*100)
}
