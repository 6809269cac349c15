package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a string field the API may encode either as a JSON string or as a
// number (precio comes back as 120 or "120" depending on the backend).
type Text string

func (t Text) String() string { return string(t) }

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("text: expected string or number, got %s", data)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}
