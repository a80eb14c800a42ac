package model

import (
	"bytes"
	"encoding/json"
)

// UnmarshalJSON accepts measurements as JSON numbers or strings.
func (a *SofaAssessment) UnmarshalJSON(data []byte) error {
	type plain SofaAssessment
	return unmarshalMeasurements(data, (*plain)(a))
}

// UnmarshalJSON accepts measurements as JSON numbers or strings.
func (a *ApacheAssessment) UnmarshalJSON(data []byte) error {
	type plain ApacheAssessment
	return unmarshalMeasurements(data, (*plain)(a))
}

// unmarshalMeasurements decodes a JSON object into v after rewriting each
// top-level number member as a string holding the number's literal text.
// Measurement fields keep form text, so 15 and "15" decode alike.
func unmarshalMeasurements(data []byte, v any) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if members == nil {
		return nil
	}
	for k, raw := range members {
		t := bytes.TrimSpace(raw)
		if len(t) == 0 || (t[0] != '-' && (t[0] < '0' || t[0] > '9')) {
			continue
		}
		quoted, err := json.Marshal(string(t))
		if err != nil {
			return err
		}
		members[k] = quoted
	}
	fixed, err := json.Marshal(members)
	if err != nil {
		return err
	}
	return json.Unmarshal(fixed, v)
}
