package probkit

import (
	"math"
	"testing"

	"github.com/probkit/probkit/errz"
	"github.com/stretchr/testify/require"
)

func TestNewClamps(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"in range", 0.25, 0.25},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"below range", -0.5, 0},
		{"above range", 1.5, 1},
		{"far below", -100, 0},
		{"far above", 42, 1},
		{"negative infinity", math.Inf(-1), 0},
		{"positive infinity", math.Inf(1), 1},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.input)
			require.Equal(t, tt.expected, p.Value())
			require.GreaterOrEqual(t, p.Value(), 0.0)
			require.LessOrEqual(t, p.Value(), 1.0)
		})
	}
}

func TestFromRatio(t *testing.T) {
	p, err := FromRatio(1, 6)
	require.NoError(t, err)
	require.InDelta(t, 1.0/6.0, p.Value(), 1e-12)

	p, err = FromRatio(3, 4)
	require.NoError(t, err)
	require.Equal(t, 0.75, p.Value())

	// Clamped when favorable exceeds total.
	p, err = FromRatio(7, 4)
	require.NoError(t, err)
	require.Equal(t, 1.0, p.Value())

	p, err = FromRatio(0, 10)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.Value())
}

func TestFromRatioErrors(t *testing.T) {
	_, err := FromRatio(1, 0)
	require.ErrorIs(t, err, errz.ErrInvalidParameter)

	_, err = FromRatio(1, -6)
	require.ErrorIs(t, err, errz.ErrInvalidParameter)

	_, err = FromRatio(-1, 6)
	require.ErrorIs(t, err, errz.ErrInvalidParameter)
}

func TestFromShorthand(t *testing.T) {
	p, err := FromShorthand(6)
	require.NoError(t, err)
	require.InDelta(t, 1.0/6.0, p.Value(), 1e-12)

	_, err = FromShorthand(0)
	require.ErrorIs(t, err, errz.ErrInvalidParameter)

	_, err = FromShorthand(-2)
	require.ErrorIs(t, err, errz.ErrInvalidParameter)
}

func TestSingletons(t *testing.T) {
	require.Equal(t, 0.0, Impossible.Value())
	require.Equal(t, 1.0, Certain.Value())
	require.Equal(t, 0.5, Even.Value())
}
