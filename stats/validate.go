package stats

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
)

// ValidateOutcomes checks an outcome sequence and reports every defect
// at once: an empty sequence, non-finite values, and probability mass
// that does not sum to 1 within probkit.Tolerance. The single-error
// statistics functions stop at the first problem; this helper exists
// for callers that assemble distributions from external input and want
// the full picture in one pass.
func ValidateOutcomes(outcomes []Outcome) error {
	if len(outcomes) == 0 {
		return errz.EmptyInput("outcomes")
	}
	var result *multierror.Error
	mass := 0.0
	for i, o := range outcomes {
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			result = multierror.Append(result, errz.InvalidParameterf(
				"outcomes", "value at index %d is not finite", i))
		}
		mass += o.P.Value()
	}
	if math.Abs(mass-1) >= probkit.Tolerance {
		result = multierror.Append(result, errz.InvalidParameterf(
			"outcomes", "probabilities must sum to 1, got %v", mass))
	}
	return result.ErrorOrNil()
}

// ValidateJoint checks a joint outcome sequence the same way
// ValidateOutcomes checks a univariate one.
func ValidateJoint(joint []JointOutcome) error {
	if len(joint) == 0 {
		return errz.EmptyInput("joint")
	}
	var result *multierror.Error
	mass := 0.0
	for i, j := range joint {
		if math.IsNaN(j.X) || math.IsInf(j.X, 0) {
			result = multierror.Append(result, errz.InvalidParameterf(
				"joint", "x at index %d is not finite", i))
		}
		if math.IsNaN(j.Y) || math.IsInf(j.Y, 0) {
			result = multierror.Append(result, errz.InvalidParameterf(
				"joint", "y at index %d is not finite", i))
		}
		mass += j.P.Value()
	}
	if math.Abs(mass-1) >= probkit.Tolerance {
		result = multierror.Append(result, errz.InvalidParameterf(
			"joint", "probabilities must sum to 1, got %v", mass))
	}
	return result.ErrorOrNil()
}
