package stats

import (
	"math"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
)

// JointOutcome pairs two numeric values with the probability of
// observing them together.
type JointOutcome struct {
	X float64
	Y float64
	P probkit.Probability
}

// Covariance returns Σ (x-meanX)·(y-meanY)·p over the joint sequence,
// with both means computed as probability-weighted sums over the same
// sequence. The probability mass is not re-validated to sum to 1.
// It fails on an empty sequence.
func Covariance(joint []JointOutcome) (float64, error) {
	if len(joint) == 0 {
		return 0, errz.EmptyInput("joint")
	}
	meanX, meanY := 0.0, 0.0
	for _, j := range joint {
		meanX += j.X * j.P.Value()
		meanY += j.Y * j.P.Value()
	}
	covariance := 0.0
	for _, j := range joint {
		covariance += (j.X - meanX) * (j.Y - meanY) * j.P.Value()
	}
	return covariance, nil
}

// Correlation returns the Pearson correlation of the joint sequence:
// the covariance divided by the product of the marginal standard
// deviations. The marginals are formed by grouping on each variable's
// value and summing probability mass. It fails on an empty sequence
// and with an illegal-state error when either marginal standard
// deviation is zero (a constant variable).
func Correlation(joint []JointOutcome) (float64, error) {
	covariance, err := Covariance(joint)
	if err != nil {
		return 0, err
	}
	stdDevX := marginalStdDev(joint, func(j JointOutcome) float64 { return j.X })
	stdDevY := marginalStdDev(joint, func(j JointOutcome) float64 { return j.Y })
	if stdDevX == 0 {
		return 0, errz.IllegalStatef("marginal standard deviation of x is zero")
	}
	if stdDevY == 0 {
		return 0, errz.IllegalStatef("marginal standard deviation of y is zero")
	}
	return covariance / (stdDevX * stdDevY), nil
}

// marginalStdDev collapses the joint sequence to a univariate weighted
// distribution over pick's value and returns its standard deviation.
// Unlike StdDev it does not validate the total mass, matching the
// covariance treatment of the same sequence.
func marginalStdDev(joint []JointOutcome, pick func(JointOutcome) float64) float64 {
	masses := make(map[float64]float64, len(joint))
	order := make([]float64, 0, len(joint))
	for _, j := range joint {
		value := pick(j)
		if _, seen := masses[value]; !seen {
			order = append(order, value)
		}
		masses[value] += j.P.Value()
	}
	mean, meanOfSquares := 0.0, 0.0
	for _, value := range order {
		mass := masses[value]
		mean += value * mass
		meanOfSquares += value * value * mass
	}
	return math.Sqrt(meanOfSquares - mean*mean)
}
