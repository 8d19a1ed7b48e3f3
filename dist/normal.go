package dist

import (
	"math"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
)

// Normal is a Gaussian distribution with the given mean and standard
// deviation.
type Normal struct {
	mean   float64
	stdDev float64
}

// NewNormal returns the normal distribution with the given mean and
// standard deviation. It fails when stdDev is not positive.
func NewNormal(mean, stdDev float64) (Normal, error) {
	if stdDev <= 0 {
		return Normal{}, errz.InvalidParameterf("stdDev", "must be positive, got %v", stdDev)
	}
	return Normal{mean: mean, stdDev: stdDev}, nil
}

// PDF returns the probability density at x. Densities are not
// probabilities and may exceed 1 for small standard deviations.
func (n Normal) PDF(x float64) float64 {
	z := (x - n.mean) / n.stdDev
	return math.Exp(-z*z/2) / (n.stdDev * math.Sqrt(2*math.Pi))
}

// CDF returns the probability that a draw falls at or below x,
// computed as 0.5·(1+erf(z)) with z = (x-mean)/(stdDev·√2).
func (n Normal) CDF(x float64) probkit.Probability {
	z := (x - n.mean) / (n.stdDev * math.Sqrt2)
	return probkit.New(0.5 * (1 + erf(z)))
}

// ZScore returns how many standard deviations x lies from the mean.
func (n Normal) ZScore(x float64) float64 {
	return (x - n.mean) / n.stdDev
}

// Mean returns the distribution mean.
func (n Normal) Mean() float64 {
	return n.mean
}

// Variance returns the square of the standard deviation.
func (n Normal) Variance() float64 {
	return n.stdDev * n.stdDev
}

// StdDev returns the standard deviation.
func (n Normal) StdDev() float64 {
	return n.stdDev
}

// Abramowitz & Stegun 7.1.26 coefficients. This fixed polynomial
// approximation (max error ~1.5e-7) is used instead of math.Erf so the
// CDF reproduces the same values across reimplementations.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

// erf approximates the error function via the A&S 7.1.26 polynomial.
func erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}
	t := 1 / (1 + erfP*x)
	y := 1 - (((((erfA5*t+erfA4)*t)+erfA3)*t+erfA2)*t+erfA1)*t*math.Exp(-x*x)
	return sign * y
}
