package probkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1.0 / 3.0, 0.5, 1} {
		p := New(v)
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var got Probability
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, p.Value(), got.Value())
	}
}

func TestUnmarshalClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"above one", "1.5", 1},
		{"below zero", "-0.5", 0},
		{"in range", "0.25", 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Probability
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			require.Equal(t, tt.expected, p.Value())
		})
	}
}

func TestUnmarshalRejectsNonNumeric(t *testing.T) {
	var p Probability
	require.Error(t, json.Unmarshal([]byte(`"half"`), &p))
}

func TestMarshalInsideStruct(t *testing.T) {
	type record struct {
		Chance Probability `json:"chance"`
	}
	data, err := json.Marshal(record{Chance: New(0.25)})
	require.NoError(t, err)
	require.JSONEq(t, `{"chance":0.25}`, string(data))

	var got record
	require.NoError(t, json.Unmarshal([]byte(`{"chance":2.5}`), &got))
	require.Equal(t, 1.0, got.Chance.Value())
}
