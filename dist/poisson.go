package dist

import (
	"math"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/combin"
	"github.com/probkit/probkit/errz"
)

// Poisson is the distribution of event counts in a fixed interval with
// rate lambda.
type Poisson struct {
	lambda float64
}

// NewPoisson returns the Poisson distribution with the given rate.
// It fails when lambda is not positive.
func NewPoisson(lambda float64) (Poisson, error) {
	if lambda <= 0 {
		return Poisson{}, errz.InvalidParameterf("lambda", "must be positive, got %v", lambda)
	}
	return Poisson{lambda: lambda}, nil
}

// Probability returns the chance of exactly k events,
// lambda^k·e^(-lambda)/k!. It fails for negative k, and reports
// overflow for k large enough that k! leaves the int64 range.
func (p Poisson) Probability(k int) (probkit.Probability, error) {
	if k < 0 {
		return probkit.Probability{}, errz.InvalidParameterf("k", "must be non-negative, got %d", k)
	}
	factorial, err := combin.Factorial(k)
	if err != nil {
		return probkit.Probability{}, err
	}
	value := math.Pow(p.lambda, float64(k)) * math.Exp(-p.lambda) / float64(factorial)
	return probkit.New(value), nil
}

// Cumulative returns the chance of k or fewer events, the sum of
// Probability(i) for i in [0, k].
func (p Poisson) Cumulative(k int) (probkit.Probability, error) {
	if k < 0 {
		return probkit.Probability{}, errz.InvalidParameterf("k", "must be non-negative, got %d", k)
	}
	sum := 0.0
	for i := 0; i <= k; i++ {
		term, err := p.Probability(i)
		if err != nil {
			return probkit.Probability{}, err
		}
		sum += term.Value()
	}
	return probkit.New(sum), nil
}

// Mean returns lambda.
func (p Poisson) Mean() float64 {
	return p.lambda
}

// Variance returns lambda.
func (p Poisson) Variance() float64 {
	return p.lambda
}

// StdDev returns the square root of lambda.
func (p Poisson) StdDev() float64 {
	return math.Sqrt(p.lambda)
}
