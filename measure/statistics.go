// SPDX-License-Identifier: MIT
// Package measure: repeated-measurement statistics.
// MeasureRepeated samples an ensemble of identically prepared states and
// compares the empirical distribution against the Born prediction: sample
// moments via gonum/stat and a chi-squared goodness-of-fit statistic with
// a Wilson–Hilferty p-value through the standard normal CDF.

package measure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantara/quanta/zmat"
)

// Frequency is one row of the empirical-vs-theoretical outcome table.
type Frequency struct {
	Value    float64 // eigenvalue
	Count    int     // times drawn
	Observed float64 // Count / Shots
	Expected float64 // Born probability
}

// Ensemble is the result of MeasureRepeated: the frequency table plus
// sample and theoretical moments and the goodness-of-fit check.
type Ensemble struct {
	Shots            int
	Frequencies      []Frequency
	SampleMean       float64
	SampleVariance   float64
	TheoryMean       float64
	TheoryVariance   float64
	ChiSquared       float64
	DegreesOfFreedom int
	PValue           float64 // Wilson–Hilferty approximation; 1 when dof = 0
}

// MeasureRepeated draws n independent samples of the observable on
// identically prepared copies of state (no collapse carries between
// shots). Sample mean and variance are computed with gonum/stat; the
// chi-squared statistic runs over the outcomes with nonzero Born
// probability and its p-value uses the Wilson–Hilferty cube-root normal
// approximation.
// Errors: ErrBadSampleCount (n <= 0), zmat.ErrDimensionMismatch.
// Complexity: O(n²·k + shots·k) for k outcomes.
func (p *Projective) MeasureRepeated(state zmat.Vector, n int) (Ensemble, error) {
	if n <= 0 {
		return Ensemble{}, fmt.Errorf("Projective.MeasureRepeated: %w", ErrBadSampleCount)
	}
	outs, err := p.Outcomes(state)
	if err != nil {
		return Ensemble{}, fmt.Errorf("Projective.MeasureRepeated: %w", err)
	}

	counts := make([]int, len(outs))
	samples := make([]float64, n)
	var shot int
	for shot = 0; shot < n; shot++ {
		idx := drawIndex(outs, p.cfg.rng.Float64())
		counts[idx]++
		samples[shot] = outs[idx].Value
	}

	freqs := make([]Frequency, len(outs))
	var i int
	for i = 0; i < len(outs); i++ {
		freqs[i] = Frequency{
			Value:    outs[i].Value,
			Count:    counts[i],
			Observed: float64(counts[i]) / float64(n),
			Expected: outs[i].Probability,
		}
	}

	chi2, dof := chiSquared(freqs, n)
	ens := Ensemble{
		Shots:            n,
		Frequencies:      freqs,
		SampleMean:       stat.Mean(samples, nil),
		SampleVariance:   stat.Variance(samples, nil),
		TheoryMean:       spectralMean(outs),
		TheoryVariance:   spectralVariance(outs),
		ChiSquared:       chi2,
		DegreesOfFreedom: dof,
		PValue:           wilsonHilferty(chi2, dof),
	}

	return ens, nil
}

// drawIndex selects an outcome by cumulative probability from a uniform
// variate u ∈ [0,1). Rounding residue falls to the last outcome.
func drawIndex(outs []Outcome, u float64) int {
	cum := 0.0
	var i int
	for i = 0; i < len(outs); i++ {
		cum += outs[i].Probability
		if u < cum {
			return i
		}
	}

	return len(outs) - 1
}

// chiSquared accumulates Σ (observed − expected)²/expected over the
// outcomes with nonzero Born probability; dof = (#such outcomes) − 1.
func chiSquared(freqs []Frequency, shots int) (chi2 float64, dof int) {
	support := 0
	for _, f := range freqs {
		if f.Expected <= 0 {
			continue
		}
		support++
		expected := f.Expected * float64(shots)
		diff := float64(f.Count) - expected
		chi2 += diff * diff / expected
	}
	dof = support - 1
	if dof < 0 {
		dof = 0
	}

	return chi2, dof
}

// wilsonHilferty approximates the upper-tail chi-squared p-value: the
// cube root of χ²/k is close to normal with mean 1−2/(9k) and variance
// 2/(9k). Returns 1 for dof = 0 (a deterministic outcome cannot
// disagree with itself).
func wilsonHilferty(chi2 float64, dof int) float64 {
	if dof <= 0 {
		return 1
	}
	k := float64(dof)
	mu := 1 - 2/(9*k)
	sigma := math.Sqrt(2 / (9 * k))
	z := (math.Cbrt(chi2/k) - mu) / sigma

	return distuv.UnitNormal.Survival(z)
}
