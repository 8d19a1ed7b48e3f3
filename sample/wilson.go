package sample

import (
	"math"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
)

// Interval is a confidence interval over a probability magnitude.
type Interval struct {
	Lower probkit.Probability
	Upper probkit.Probability
	Level float64
}

// WilsonInterval returns the Wilson score confidence interval for the
// success proportion observed over the given trials. It is more
// accurate than the normal approximation for small samples and for
// proportions near 0 or 1, which makes it a good companion to
// Estimate. Confidence must lie in (0, 1); successes must lie in
// [0, trials]; trials must be positive.
func WilsonInterval(successes, trials int, confidence float64) (Interval, error) {
	if trials <= 0 {
		return Interval{}, errz.InvalidParameterf("trials", "must be positive, got %d", trials)
	}
	if successes < 0 || successes > trials {
		return Interval{}, errz.InvalidParameterf("successes", "must lie in [0, trials], got %d", successes)
	}
	if confidence <= 0 || confidence >= 1 {
		return Interval{}, errz.InvalidParameterf("confidence", "must lie in (0, 1), got %v", confidence)
	}

	z := criticalZ(confidence)
	p := float64(successes) / float64(trials)
	n := float64(trials)

	denominator := 1 + z*z/n
	center := (p + z*z/(2*n)) / denominator
	spread := (z / denominator) * math.Sqrt(p*(1-p)/n+z*z/(4*n*n))

	return Interval{
		Lower: probkit.New(center - spread),
		Upper: probkit.New(center + spread),
		Level: confidence,
	}, nil
}

// criticalZ returns the two-sided standard normal critical value for
// common confidence levels, falling back to the 95% value.
func criticalZ(confidence float64) float64 {
	switch {
	case confidence >= 0.99:
		return 2.576
	case confidence >= 0.95:
		return 1.96
	case confidence >= 0.90:
		return 1.645
	case confidence >= 0.80:
		return 1.282
	default:
		return 1.96
	}
}
