package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LooseNumber is an optional numeric form field. Listing forms post blank
// inputs as "" and some clients send numbers as strings, so null, "" and any
// non-numeric string all read as "no value". Present reports whether the key
// appeared at all.
type LooseNumber struct {
	Present bool
	Valid   bool
	Value   float64
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	n.Present = true
	n.Valid = false
	n.Value = 0

	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		n.Value, n.Valid = v, true
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value, n.Valid = v, true
	return nil
}

// Float returns the value as a pointer, nil when there is none.
func (n LooseNumber) Float() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Int returns the value truncated to an int pointer, nil when there is none.
func (n LooseNumber) Int() *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Value)
	return &v
}
