package probkit

import "encoding/json"

// MarshalJSON encodes the probability as its bare magnitude.
func (p Probability) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// UnmarshalJSON decodes a numeric magnitude, routing it through the
// clamping constructor. An out-of-range persisted value such as 1.5 or
// -0.5 is clamped, never rejected.
func (p *Probability) UnmarshalJSON(data []byte) error {
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*p = New(value)
	return nil
}
