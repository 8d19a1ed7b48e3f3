package probkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require.Equal(t, "P(0.2500)", New(0.25).String())
	require.Equal(t, "P(0.0000)", Impossible.String())
	require.Equal(t, "P(1.0000)", Certain.String())
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		format   string
		expected string
	}{
		{"default", 0.255, "", "P(0.2550)"},
		{"two decimals", 0.256, "%.2f", "P(0.26)"},
		{"no decimals", 0.75, "%.0f", "P(1)"},
		{"percent", 0.255, "%.1f%%", "P(25.5%)"},
		{"percent two decimals", 0.5, "%.2f%%", "P(50.00%)"},
		{"percent of certain", 1, "%.0f%%", "P(100%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, New(tt.value).Text(tt.format))
		})
	}
}
