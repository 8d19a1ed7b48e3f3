package stats

import (
	"testing"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
	"github.com/stretchr/testify/require"
)

// fairDie returns the six outcomes of a fair die roll.
func fairDie(t *testing.T) []Outcome {
	t.Helper()
	sixth, err := probkit.FromShorthand(6)
	require.NoError(t, err)
	outcomes := make([]Outcome, 6)
	for i := range outcomes {
		outcomes[i] = Outcome{Value: float64(i + 1), P: sixth}
	}
	return outcomes
}

func TestExpectedValue(t *testing.T) {
	mean, err := ExpectedValue(fairDie(t))
	require.NoError(t, err)
	require.InDelta(t, 3.5, mean, 1e-10)

	mean, err = ExpectedValue([]Outcome{
		{Value: 10, P: probkit.New(0.2)},
		{Value: 20, P: probkit.New(0.8)},
	})
	require.NoError(t, err)
	require.InDelta(t, 18.0, mean, 1e-10)
}

func TestExpectedValueErrors(t *testing.T) {
	_, err := ExpectedValue(nil)
	require.ErrorIs(t, err, errz.ErrEmptyInput)

	// Mass well short of one.
	_, err = ExpectedValue([]Outcome{
		{Value: 1, P: probkit.New(0.3)},
		{Value: 2, P: probkit.New(0.3)},
	})
	require.ErrorIs(t, err, errz.ErrInvalidParameter)

	// Mass within tolerance of one is accepted.
	_, err = ExpectedValue([]Outcome{
		{Value: 1, P: probkit.New(0.5)},
		{Value: 2, P: probkit.New(0.5 + probkit.Tolerance/2)},
	})
	require.NoError(t, err)
}

func TestVariance(t *testing.T) {
	variance, err := Variance(fairDie(t))
	require.NoError(t, err)
	require.InDelta(t, 35.0/12.0, variance, 1e-10)

	// A constant distribution has zero variance.
	variance, err = Variance([]Outcome{{Value: 4, P: probkit.Certain}})
	require.NoError(t, err)
	require.InDelta(t, 0.0, variance, 1e-10)

	_, err = Variance(nil)
	require.ErrorIs(t, err, errz.ErrEmptyInput)
}

func TestStdDev(t *testing.T) {
	stdDev, err := StdDev(fairDie(t))
	require.NoError(t, err)
	require.InDelta(t, 1.7078251276599330, stdDev, 1e-10)
}

func TestMode(t *testing.T) {
	mode, err := Mode([]Outcome{
		{Value: 1, P: probkit.New(0.2)},
		{Value: 2, P: probkit.New(0.5)},
		{Value: 3, P: probkit.New(0.3)},
	})
	require.NoError(t, err)
	require.Equal(t, 2.0, mode)

	// Ties break to the first occurrence in sequence order.
	mode, err = Mode([]Outcome{
		{Value: 7, P: probkit.New(0.4)},
		{Value: 9, P: probkit.New(0.4)},
		{Value: 8, P: probkit.New(0.2)},
	})
	require.NoError(t, err)
	require.Equal(t, 7.0, mode)

	_, err = Mode(nil)
	require.ErrorIs(t, err, errz.ErrEmptyInput)
}

func TestMedian(t *testing.T) {
	median, err := Median(fairDie(t))
	require.NoError(t, err)
	require.Equal(t, 3.0, median)

	// Sorting is by value, independent of sequence order.
	median, err = Median([]Outcome{
		{Value: 9, P: probkit.New(0.3)},
		{Value: 1, P: probkit.New(0.3)},
		{Value: 5, P: probkit.New(0.4)},
	})
	require.NoError(t, err)
	require.Equal(t, 5.0, median)

	_, err = Median(nil)
	require.ErrorIs(t, err, errz.ErrEmptyInput)
}

func TestMedianFallsBackToLastValue(t *testing.T) {
	// Rounding keeps the cumulative mass just under one half.
	median, err := Median([]Outcome{
		{Value: 1, P: probkit.New(0.2499)},
		{Value: 2, P: probkit.New(0.2499)},
	})
	require.NoError(t, err)
	require.Equal(t, 2.0, median)
}
