// Package dist implements closed-form Binomial, Normal, and Poisson
// distributions on top of the probkit value type. Probability-valued
// results are routed through the clamping constructor, so floating
// error can never push them outside [0, 1]. Moment statistics are
// returned as raw float64 values.
package dist

import (
	"math"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/combin"
	"github.com/probkit/probkit/errz"
)

// Binomial is the distribution of successes across n independent
// trials that each succeed with probability p.
type Binomial struct {
	n int
	p probkit.Probability
}

// NewBinomial returns the binomial distribution for n trials with
// per-trial success probability p. It fails for negative n.
func NewBinomial(n int, p probkit.Probability) (Binomial, error) {
	if n < 0 {
		return Binomial{}, errz.InvalidParameterf("n", "must be non-negative, got %d", n)
	}
	return Binomial{n: n, p: p}, nil
}

// Probability returns the chance of exactly k successes,
// C(n,k)·p^k·(1-p)^(n-k). It fails for k outside [0, n].
func (b Binomial) Probability(k int) (probkit.Probability, error) {
	if err := b.checkSuccesses(k); err != nil {
		return probkit.Probability{}, err
	}
	coefficient, err := combin.BinomialCoefficient(b.n, k)
	if err != nil {
		return probkit.Probability{}, err
	}
	p := b.p.Value()
	value := float64(coefficient) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(b.n-k))
	return probkit.New(value), nil
}

// Cumulative returns the chance of k or fewer successes, the sum of
// Probability(i) for i in [0, k].
func (b Binomial) Cumulative(k int) (probkit.Probability, error) {
	if err := b.checkSuccesses(k); err != nil {
		return probkit.Probability{}, err
	}
	sum := 0.0
	for i := 0; i <= k; i++ {
		term, err := b.Probability(i)
		if err != nil {
			return probkit.Probability{}, err
		}
		sum += term.Value()
	}
	return probkit.New(sum), nil
}

// Mean returns n·p.
func (b Binomial) Mean() float64 {
	return float64(b.n) * b.p.Value()
}

// Variance returns n·p·(1-p).
func (b Binomial) Variance() float64 {
	p := b.p.Value()
	return float64(b.n) * p * (1 - p)
}

// StdDev returns the square root of the variance.
func (b Binomial) StdDev() float64 {
	return math.Sqrt(b.Variance())
}

func (b Binomial) checkSuccesses(k int) error {
	if k < 0 {
		return errz.InvalidParameterf("k", "must be non-negative, got %d", k)
	}
	if k > b.n {
		return errz.InvalidParameterf("k", "must not exceed n, got k=%d n=%d", k, b.n)
	}
	return nil
}
