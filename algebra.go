package probkit

import (
	"math"

	"github.com/probkit/probkit/errz"
)

// And returns the probability that both events occur, assuming the
// events are independent. Impossible absorbs; Certain is the identity.
func (p Probability) And(other Probability) Probability {
	return New(p.value * other.value)
}

// Or returns the probability that either event occurs, assuming the
// events are mutually exclusive. The sum saturates at Certain rather
// than failing, so passing non-exclusive events produces a
// plausible-looking but meaningless result. Callers are responsible
// for mutual exclusivity; use OrDependent when it cannot be guaranteed.
func (p Probability) Or(other Probability) Probability {
	return New(p.value + other.value)
}

// OrDependent returns the probability that either event occurs using
// inclusion-exclusion. It is correct regardless of exclusivity,
// assuming independence for the intersection term.
func (p Probability) OrDependent(other Probability) Probability {
	return New(p.value + other.value - p.value*other.value)
}

// Not returns the complement. Not(Not(p)) equals p within Tolerance.
func (p Probability) Not() Probability {
	return New(1 - p.value)
}

// Given returns the conditional probability of p given condition,
// computed as And(p, condition) / condition. It fails with a
// division-by-zero error when the condition is zero within Tolerance.
func (p Probability) Given(condition Probability) (Probability, error) {
	if condition.value < Tolerance {
		return Probability{}, errz.DivisionByZerof("condition has zero probability")
	}
	return New(p.And(condition).value / condition.value), nil
}

// AtLeastOne returns the probability that an event with probability p
// occurs at least once across the given number of independent trials.
// Zero trials yields Impossible; negative trials fail.
func (p Probability) AtLeastOne(trials int) (Probability, error) {
	if trials < 0 {
		return Probability{}, errz.InvalidParameterf("trials", "must be non-negative, got %d", trials)
	}
	return New(1 - math.Pow(1-p.value, float64(trials))), nil
}

// Add returns the clamped sum. Like Or, the result saturates at
// Certain instead of failing.
func (p Probability) Add(other Probability) Probability {
	return New(p.value + other.value)
}

// Sub returns the clamped difference, saturating at Impossible.
func (p Probability) Sub(other Probability) Probability {
	return New(p.value - other.value)
}

// MulScalar returns the clamped product of the magnitude and scalar.
func (p Probability) MulScalar(scalar float64) Probability {
	return New(p.value * scalar)
}

// DivScalar returns the clamped quotient of the magnitude and scalar.
// It fails with a division-by-zero error when scalar is exactly zero.
func (p Probability) DivScalar(scalar float64) (Probability, error) {
	if scalar == 0 {
		return Probability{}, errz.DivisionByZerof("scalar divisor is zero")
	}
	return New(p.value / scalar), nil
}

// Equals reports whether the magnitudes differ by less than Tolerance.
func (p Probability) Equals(other Probability) bool {
	return math.Abs(p.value-other.value) < Tolerance
}

// Compare returns -1, 0, or 1 ordering p against other by raw
// magnitude. No tolerance is applied.
func (p Probability) Compare(other Probability) int {
	if p.value == other.value {
		return 0
	}
	if p.value > other.value {
		return 1
	}
	return -1
}

// LessThan reports whether p's magnitude is strictly below other's.
func (p Probability) LessThan(other Probability) bool {
	return p.value < other.value
}

// GreaterThan reports whether p's magnitude is strictly above other's.
func (p Probability) GreaterThan(other Probability) bool {
	return p.value > other.value
}
