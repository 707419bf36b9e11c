// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package budget

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errCountsNotObject = errors.New("facility counts must be a JSON object")

// FacilityCount is one requested facility kind. Valid is false when the
// submitted count was not an integer; such entries never contribute.
type FacilityCount struct {
	Kind  string
	Count int
	Valid bool
}

// FacilityCounts keeps the order in which kinds appeared in the request.
type FacilityCounts []FacilityCount

// UnmarshalJSON reads a JSON object in key order. A repeated key keeps its
// first position and takes the last value.
func (fc *FacilityCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errCountsNotObject
	}

	out := FacilityCounts{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		kind, ok := keyTok.(string)
		if !ok {
			return errCountsNotObject
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		entry := FacilityCount{Kind: kind}
		entry.Count, entry.Valid = toCount(value)

		if i, seen := index[kind]; seen {
			out[i] = entry
			continue
		}
		index[kind] = len(out)
		out = append(out, entry)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*fc = out
	return nil
}

// MarshalJSON writes the counts back as an object in the same order.
func (fc FacilityCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range fc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Kind)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if c.Valid {
			num, _ := json.Marshal(c.Count)
			buf.Write(num)
		} else {
			buf.WriteString("null")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map flattens the valid counts for persistence.
func (fc FacilityCounts) Map() map[string]int {
	m := make(map[string]int, len(fc))
	for _, c := range fc {
		if c.Valid {
			m[c.Kind] = c.Count
		}
	}
	return m
}

func toCount(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return int(i), true
}
