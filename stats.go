package main

import (
	"math"
	"sort"

	"github.com/hyp3rd/ewrap"
)

// Stats holds the descriptive statistics of one sample set.
type Stats struct {
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	Q1      float64
	Q3      float64
	StdDev  float64
	CoefVar float64
}

// calculateStatistics computes descriptive statistics over samples.
// Median and quartiles are positional: s[n/2], s[n/4] and s[3n/4] of the
// sorted copy, with no interpolation. Variance is the population variance.
//
// Sums run over the sorted copy rather than in input order, so any
// permutation of the same samples yields bit-identical results. For
// non-integral samples the last bits of mean and variance may therefore
// differ from an input-order summation.
func calculateStatistics(samples []float64) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, ewrap.Wrap(ErrInvalidInput, "empty sample set")
	}
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Stats{}, ewrap.Wrapf(ErrInvalidInput, "non-finite sample %v at index %d", v, i)
		}
	}

	s := append([]float64(nil), samples...)
	sort.Float64s(s)
	n := len(s)
	min := s[0]
	max := s[n-1]

	// summing the sorted copy keeps the result independent of input order
	mean := 0.0
	for _, v := range s {
		mean += v
	}
	mean /= float64(n)

	median := s[n/2]
	q1 := s[n/4]
	q3 := s[(3*n)/4]

	var sumsq float64
	for _, v := range s {
		d := v - mean
		sumsq += d * d
	}
	variance := sumsq / float64(n)
	stddev := math.Sqrt(variance)

	return Stats{
		Min:     min,
		Max:     max,
		Mean:    mean,
		Median:  median,
		Q1:      q1,
		Q3:      q3,
		StdDev:  stddev,
		CoefVar: stddev / mean,
	}, nil
}
