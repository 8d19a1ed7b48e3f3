// Package stats provides descriptive statistics over weighted outcome
// sequences. An outcome sequence is an ad hoc discrete distribution
// supplied by the caller; it has no identity beyond element order,
// and order matters for the tie-break rules of Mode and Median.
package stats

import (
	"math"
	"sort"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
)

// Outcome pairs a numeric value with the probability of observing it.
type Outcome struct {
	Value float64
	P     probkit.Probability
}

// ExpectedValue returns the probability-weighted mean of the outcome
// values. It fails on an empty sequence and when the probability mass
// does not sum to 1 within probkit.Tolerance.
func ExpectedValue(outcomes []Outcome) (float64, error) {
	if err := checkDistribution(outcomes); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, o := range outcomes {
		sum += o.Value * o.P.Value()
	}
	return sum, nil
}

// Variance returns E[X²] - E[X]² over the outcome sequence, with the
// same validation as ExpectedValue.
func Variance(outcomes []Outcome) (float64, error) {
	mean, err := ExpectedValue(outcomes)
	if err != nil {
		return 0, err
	}
	meanOfSquares := 0.0
	for _, o := range outcomes {
		meanOfSquares += o.Value * o.Value * o.P.Value()
	}
	return meanOfSquares - mean*mean, nil
}

// StdDev returns the square root of the variance.
func StdDev(outcomes []Outcome) (float64, error) {
	variance, err := Variance(outcomes)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Mode returns the value with the highest probability. Ties go to the
// first occurrence in sequence order. It fails on an empty sequence.
func Mode(outcomes []Outcome) (float64, error) {
	if len(outcomes) == 0 {
		return 0, errz.EmptyInput("outcomes")
	}
	best := outcomes[0]
	for _, o := range outcomes[1:] {
		if o.P.GreaterThan(best.P) {
			best = o
		}
	}
	return best.Value, nil
}

// Median returns the first value, in ascending value order, at which
// the cumulative probability mass reaches one half. When rounding
// keeps the mass just under one half it falls back to the last value.
// It fails on an empty sequence.
func Median(outcomes []Outcome) (float64, error) {
	if len(outcomes) == 0 {
		return 0, errz.EmptyInput("outcomes")
	}
	sorted := make([]Outcome, len(outcomes))
	copy(sorted, outcomes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})
	mass := 0.0
	for _, o := range sorted {
		mass += o.P.Value()
		if mass >= 0.5 {
			return o.Value, nil
		}
	}
	return sorted[len(sorted)-1].Value, nil
}

func checkDistribution(outcomes []Outcome) error {
	if len(outcomes) == 0 {
		return errz.EmptyInput("outcomes")
	}
	mass := 0.0
	for _, o := range outcomes {
		mass += o.P.Value()
	}
	if math.Abs(mass-1) >= probkit.Tolerance {
		return errz.InvalidParameterf("outcomes", "probabilities must sum to 1, got %v", mass)
	}
	return nil
}
