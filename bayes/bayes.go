// Package bayes composes probabilities through Bayes' theorem.
package bayes

import (
	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
)

// Posterior returns P(A|B) = P(B|A)·P(A) / P(B). It fails with a
// division-by-zero error when the evidence probability pB is exactly
// zero.
func Posterior(pA, pBGivenA, pB probkit.Probability) (probkit.Probability, error) {
	if pB.Value() == 0 {
		return probkit.Probability{}, errz.DivisionByZerof("evidence probability is zero")
	}
	return probkit.New(pBGivenA.Value() * pA.Value() / pB.Value()), nil
}
