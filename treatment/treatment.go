// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treatment isolates the effect of individual on/off
// treatments in multi-factor performance experiments.
//
// Real experiments rarely vary one factor at a time. For each
// treatment, the estimator first looks for matched pairs of groups
// that differ in that treatment alone; averaging over matched pairs
// gives a controlled estimate. Only when no matched pair exists does
// it fall back to a marginal comparison of all groups with the
// treatment against all groups without it, and marks the result
// confounded so callers can present it as lower confidence.
package treatment

import (
	"errors"

	"perfstat/hyptest"
	"perfstat/sample"
)

// A Group is one experimental configuration: a named combination of
// on/off treatments and the measurements taken under it. Groups are
// read-only to the estimator.
type Group struct {
	Name       string
	Treatments map[string]bool
	Data       []float64
}

// A Method identifies how a treatment effect was estimated.
type Method string

const (
	// Pairwise estimates average over matched pairs of groups
	// that differ only in the treatment under study.
	Pairwise Method = "pairwise"

	// Marginal estimates pool all groups by the treatment's
	// presence, regardless of the other treatments.
	Marginal Method = "marginal"
)

// An Effect is the estimated effect of toggling one treatment on
// while holding the others fixed.
type Effect struct {
	// Name is the treatment's name.
	Name string

	// Effect is the mean difference (with minus without), and
	// PctEffect the corresponding percent change.
	Effect    float64
	PctEffect float64

	// WithMean and WithoutMean are the means of the pooled data
	// on each side of the comparison, of WithN and WithoutN
	// points respectively.
	WithMean, WithoutMean float64
	WithN, WithoutN       int

	// P is the Welch t-test p-value of the pooled comparison and
	// CohenD its standardized effect size. Significant reports
	// whether P is below the comparison alpha.
	P           float64
	CohenD      float64
	Significant bool

	// Method tells how the effect was estimated.
	Method Method

	// Confounded marks marginal estimates, which conflate the
	// treatment's effect with any other treatment whose presence
	// correlates with it across groups.
	Confounded bool

	// Insufficient reports that there was not enough data to
	// estimate an effect for this treatment; no other field is
	// meaningful when it is set.
	Insufficient bool

	// Warnings is a list of warnings about this estimate that
	// should be reported to the user.
	Warnings []error
}

// A Report holds the per-treatment effects of one experiment.
type Report struct {
	// Baseline names the group with the fewest active treatments,
	// ties broken by input order. It is a presentational
	// reference only and does not enter the effect estimates.
	Baseline string

	// Effects holds one entry per requested treatment, in the
	// order the treatments were given.
	Effects []Effect
}

// Estimate isolates the effect of each named treatment across the
// given groups. If t is nil, it uses hyptest.DefaultThresholds.
func Estimate(groups []Group, treatments []string, t *hyptest.Thresholds) Report {
	if t == nil {
		t = &hyptest.DefaultThresholds
	}
	r := Report{Baseline: baselineName(groups)}
	for _, name := range treatments {
		r.Effects = append(r.Effects, estimateOne(groups, treatments, name, t))
	}
	return r
}

func estimateOne(groups []Group, treatments []string, name string, t *hyptest.Thresholds) Effect {
	e := Effect{Name: name}

	// Pairwise phase: every ordered pair (without, with) whose
	// remaining treatments agree is a controlled comparison.
	var with, without []float64
	var effectSum, pctSum float64
	pairs := 0
	for _, gwo := range groups {
		if gwo.Treatments[name] {
			continue
		}
		for _, gw := range groups {
			if !gw.Treatments[name] || !othersMatch(gwo, gw, treatments, name) {
				continue
			}
			mwo, mw := sample.Mean(gwo.Data), sample.Mean(gw.Data)
			effectSum += mw - mwo
			pctSum += hyptest.PercentChange(mwo, mw)
			with = append(with, gw.Data...)
			without = append(without, gwo.Data...)
			pairs++
		}
	}
	if pairs > 0 {
		e.Method = Pairwise
		e.Effect = effectSum / float64(pairs)
		e.PctEffect = pctSum / float64(pairs)
		e.finish(with, without, t)
		return e
	}

	// Marginal fallback: no controlled comparison exists, so pool
	// all groups by the treatment's presence alone.
	for _, g := range groups {
		if g.Treatments[name] {
			with = append(with, g.Data...)
		} else {
			without = append(without, g.Data...)
		}
	}
	if len(with) < 2 || len(without) < 2 {
		e.Insufficient = true
		return e
	}
	e.Method = Marginal
	e.Confounded = true
	e.Effect = sample.Mean(with) - sample.Mean(without)
	e.PctEffect = hyptest.PercentChange(sample.Mean(without), sample.Mean(with))
	e.Warnings = append(e.Warnings, errors.New("no matched pair isolates this treatment; the marginal estimate may be confounded"))
	e.finish(with, without, t)
	return e
}

// finish fills in the pooled comparison fields shared by both
// estimation methods.
func (e *Effect) finish(with, without []float64, t *hyptest.Thresholds) {
	e.WithMean, e.WithoutMean = sample.Mean(with), sample.Mean(without)
	e.WithN, e.WithoutN = len(with), len(without)
	e.P = hyptest.WelchTTest(with, without).P
	e.CohenD = hyptest.CohensD(with, without)
	e.Significant = e.P < t.CompareAlpha
}

// othersMatch reports whether a and b agree on every treatment
// except skip.
func othersMatch(a, b Group, treatments []string, skip string) bool {
	for _, name := range treatments {
		if name != skip && a.Treatments[name] != b.Treatments[name] {
			return false
		}
	}
	return true
}

// baselineName returns the name of the group with the fewest active
// treatments, breaking ties by input order.
func baselineName(groups []Group) string {
	best, bestN := "", -1
	for _, g := range groups {
		n := 0
		for _, on := range g.Treatments {
			if on {
				n++
			}
		}
		if bestN == -1 || n < bestN {
			best, bestN = g.Name, n
		}
	}
	return best
}
