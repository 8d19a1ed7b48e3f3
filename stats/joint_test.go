package stats

import (
	"testing"

	"github.com/probkit/probkit"
	"github.com/probkit/probkit/errz"
	"github.com/stretchr/testify/require"
)

func TestCovariance(t *testing.T) {
	covariance, err := Covariance([]JointOutcome{
		{X: 0, Y: 0, P: probkit.Even},
		{X: 1, Y: 1, P: probkit.Even},
	})
	require.NoError(t, err)
	require.InDelta(t, 0.25, covariance, 1e-10)

	covariance, err = Covariance([]JointOutcome{
		{X: 0, Y: 1, P: probkit.Even},
		{X: 1, Y: 0, P: probkit.Even},
	})
	require.NoError(t, err)
	require.InDelta(t, -0.25, covariance, 1e-10)

	covariance, err = Covariance([]JointOutcome{
		{X: 1, Y: 2, P: probkit.New(0.3)},
		{X: 2, Y: 4, P: probkit.New(0.7)},
	})
	require.NoError(t, err)
	require.InDelta(t, 0.42, covariance, 1e-10)

	_, err = Covariance(nil)
	require.ErrorIs(t, err, errz.ErrEmptyInput)
}

func TestCovarianceIndependent(t *testing.T) {
	quarter := probkit.New(0.25)
	covariance, err := Covariance([]JointOutcome{
		{X: 0, Y: 0, P: quarter},
		{X: 0, Y: 1, P: quarter},
		{X: 1, Y: 0, P: quarter},
		{X: 1, Y: 1, P: quarter},
	})
	require.NoError(t, err)
	require.InDelta(t, 0.0, covariance, 1e-10)
}

func TestCorrelation(t *testing.T) {
	// Y = 2X is perfectly correlated.
	correlation, err := Correlation([]JointOutcome{
		{X: 1, Y: 2, P: probkit.New(0.3)},
		{X: 2, Y: 4, P: probkit.New(0.7)},
	})
	require.NoError(t, err)
	require.InDelta(t, 1.0, correlation, 1e-10)

	correlation, err = Correlation([]JointOutcome{
		{X: 0, Y: 1, P: probkit.Even},
		{X: 1, Y: 0, P: probkit.Even},
	})
	require.NoError(t, err)
	require.InDelta(t, -1.0, correlation, 1e-10)

	quarter := probkit.New(0.25)
	correlation, err = Correlation([]JointOutcome{
		{X: 0, Y: 0, P: quarter},
		{X: 0, Y: 1, P: quarter},
		{X: 1, Y: 0, P: quarter},
		{X: 1, Y: 1, P: quarter},
	})
	require.NoError(t, err)
	require.InDelta(t, 0.0, correlation, 1e-10)
}

func TestCorrelationDegenerate(t *testing.T) {
	// Constant x has a zero-variance marginal.
	_, err := Correlation([]JointOutcome{
		{X: 3, Y: 1, P: probkit.Even},
		{X: 3, Y: 2, P: probkit.Even},
	})
	require.ErrorIs(t, err, errz.ErrIllegalState)

	_, err = Correlation([]JointOutcome{
		{X: 1, Y: 5, P: probkit.Even},
		{X: 2, Y: 5, P: probkit.Even},
	})
	require.ErrorIs(t, err, errz.ErrIllegalState)

	_, err = Correlation(nil)
	require.ErrorIs(t, err, errz.ErrEmptyInput)
}

func TestCorrelationMarginalization(t *testing.T) {
	// Repeated x values collapse into one marginal entry; the split
	// below is equivalent to {X:1,P:0.5},{X:2,P:0.5} on the x margin.
	correlation, err := Correlation([]JointOutcome{
		{X: 1, Y: 2, P: probkit.New(0.25)},
		{X: 1, Y: 2, P: probkit.New(0.25)},
		{X: 2, Y: 4, P: probkit.Even},
	})
	require.NoError(t, err)
	require.InDelta(t, 1.0, correlation, 1e-10)
}
