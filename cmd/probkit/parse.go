package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/probkit/probkit"
	"github.com/probkit/probkit/stats"
)

// parseProbability accepts either a bare magnitude ("0.25") or a ratio
// ("1/6") and returns the corresponding probability.
func parseProbability(input string) (probkit.Probability, error) {
	if favorable, total, ok := strings.Cut(input, "/"); ok {
		f, err := strconv.Atoi(strings.TrimSpace(favorable))
		if err != nil {
			return probkit.Probability{}, fmt.Errorf("invalid ratio numerator %q", favorable)
		}
		n, err := strconv.Atoi(strings.TrimSpace(total))
		if err != nil {
			return probkit.Probability{}, fmt.Errorf("invalid ratio denominator %q", total)
		}
		return probkit.FromRatio(f, n)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return probkit.Probability{}, fmt.Errorf("invalid probability %q", input)
	}
	return probkit.New(value), nil
}

// parseOutcomes converts "value:probability" tokens into a weighted
// outcome sequence, collecting every malformed token into one error.
func parseOutcomes(tokens []string) ([]stats.Outcome, error) {
	var errs *multierror.Error
	outcomes := make([]stats.Outcome, 0, len(tokens))
	for _, token := range tokens {
		value, prob, ok := strings.Cut(token, ":")
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("outcome %q must be value:probability", token))
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("outcome %q has invalid value", token))
			continue
		}
		p, err := parseProbability(prob)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("outcome %q: %w", token, err))
			continue
		}
		outcomes = append(outcomes, stats.Outcome{Value: v, P: p})
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
