// Package probkit implements a bounded probability value type.
//
// A Probability is an immutable scalar that always lies in the closed
// interval [0, 1]. Construction clamps out-of-range input and every
// operation re-clamps its result, so no value outside the interval can
// be observed. Equality is tolerance-based; ordering is the natural
// order of the underlying magnitude.
package probkit

import (
	"math"

	"github.com/probkit/probkit/errz"
)

// Tolerance is the maximum difference in magnitude at which two
// probabilities compare as equal.
const Tolerance = 1e-4

// Probability wraps a float64 magnitude clamped to [0, 1].
type Probability struct {
	value float64
}

// Process-wide singletons. These are fixed values, never mutated.
var (
	// Impossible is the probability of an event that cannot occur.
	Impossible = Probability{value: 0}
	// Certain is the probability of an event that always occurs.
	Certain = Probability{value: 1}
	// Even is the probability of a fair coin flip.
	Even = Probability{value: 0.5}
)

// clamp forces value into [0, 1]. NaN maps to 0 so the interval
// invariant holds for every representable input.
func clamp(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// New returns the probability with the given magnitude, clamped to
// [0, 1]. It never fails: -0.5 becomes 0 and 1.5 becomes 1.
func New(value float64) Probability {
	return Probability{value: clamp(value)}
}

// FromRatio returns the probability of favorable outcomes out of total
// equally likely outcomes. It fails if total is not positive or
// favorable is negative.
func FromRatio(favorable, total int) (Probability, error) {
	if total <= 0 {
		return Probability{}, errz.InvalidParameterf("total", "must be positive, got %d", total)
	}
	if favorable < 0 {
		return Probability{}, errz.InvalidParameterf("favorable", "must be non-negative, got %d", favorable)
	}
	return New(float64(favorable) / float64(total)), nil
}

// FromShorthand returns the probability of one favorable outcome out of
// total equally likely outcomes. FromShorthand(6) is the chance of
// rolling a given face on a fair die.
func FromShorthand(total int) (Probability, error) {
	return FromRatio(1, total)
}

// Value returns the magnitude in [0, 1].
func (p Probability) Value() float64 {
	return p.value
}
