// Package sample implements Monte Carlo sampling over probkit values.
//
// Every function takes a *rand.Rand so callers control seeding and
// synchronization. Passing nil selects a shared package-level
// generator that is NOT safe for unsynchronized concurrent use;
// callers sampling from multiple goroutines must supply independent
// generators.
package sample

import (
	"iter"
	"math/rand"
	"time"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
)

// defaultRand backs the nil-generator convenience path. Unsynchronized.
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

func generator(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return defaultRand
	}
	return rng
}

// Hit performs a single draw: one uniform value in [0, 1) compared
// against p's magnitude. This is the one random primitive everything
// else in the package composes.
func Hit(p probkit.Probability, rng *rand.Rand) bool {
	return generator(rng).Float64() < p.Value()
}

// Draw returns a lazy sequence of count independent draws against p.
// Each range over the sequence performs fresh draws. It fails for
// negative count.
func Draw(p probkit.Probability, count int, rng *rand.Rand) (iter.Seq[bool], error) {
	if count < 0 {
		return nil, errz.InvalidParameterf("count", "must be non-negative, got %d", count)
	}
	return func(yield func(bool) bool) {
		r := generator(rng)
		for range count {
			if !yield(Hit(p, r)) {
				return
			}
		}
	}, nil
}

// CountSuccesses returns how many of the given independent trials
// against p succeed. Zero trials yields zero. It fails for negative
// trials.
func CountSuccesses(p probkit.Probability, trials int, rng *rand.Rand) (int, error) {
	if trials < 0 {
		return 0, errz.InvalidParameterf("trials", "must be non-negative, got %d", trials)
	}
	r := generator(rng)
	successes := 0
	for range trials {
		if Hit(p, r) {
			successes++
		}
	}
	return successes, nil
}

// Estimate recovers p itself through Monte Carlo sampling: the success
// ratio over the given number of samples. It converges toward p as the
// sample count grows, which makes it mostly useful for validating
// sampling correctness. It fails for non-positive samples.
func Estimate(p probkit.Probability, samples int, rng *rand.Rand) (probkit.Probability, error) {
	if samples <= 0 {
		return probkit.Probability{}, errz.InvalidParameterf("samples", "must be positive, got %d", samples)
	}
	successes, err := CountSuccesses(p, samples, rng)
	if err != nil {
		return probkit.Probability{}, err
	}
	return probkit.FromRatio(successes, samples)
}

// Weighted pairs an arbitrary outcome with the probability of drawing it.
type Weighted[T any] struct {
	Outcome T
	P       probkit.Probability
}

// FromOutcomes draws one outcome from the weighted sequence: a single
// uniform value walks the outcomes accumulating probability mass, and
// the first outcome whose cumulative mass reaches the draw is
// returned. When residual floating error leaves the total mass just
// under the draw, the last outcome is returned. It fails on an empty
// sequence.
func FromOutcomes[T any](outcomes []Weighted[T], rng *rand.Rand) (T, error) {
	var zero T
	if len(outcomes) == 0 {
		return zero, errz.EmptyInput("outcomes")
	}
	draw := generator(rng).Float64()
	mass := 0.0
	for _, o := range outcomes {
		mass += o.P.Value()
		if mass >= draw {
			return o.Outcome, nil
		}
	}
	return outcomes[len(outcomes)-1].Outcome, nil
}

// FromOutcomesN draws count independent outcomes from the weighted
// sequence. It fails for negative count and on an empty sequence.
func FromOutcomesN[T any](outcomes []Weighted[T], count int, rng *rand.Rand) ([]T, error) {
	if count < 0 {
		return nil, errz.InvalidParameterf("count", "must be non-negative, got %d", count)
	}
	if len(outcomes) == 0 {
		return nil, errz.EmptyInput("outcomes")
	}
	r := generator(rng)
	results := make([]T, count)
	for i := range count {
		outcome, err := FromOutcomes(outcomes, r)
		if err != nil {
			return nil, err
		}
		results[i] = outcome
	}
	return results, nil
}
