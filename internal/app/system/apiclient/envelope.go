package apiclient

import (
	"bytes"
	"encoding/json"
)

// Normalize resolves an API payload into its list of records.
//
// A JSON array is used as is. An object with a "results" array (a
// pagination envelope) yields that array. Anything else is a shape
// mismatch: the result is an empty, non-nil list and ok is false.
// Invalid JSON returns a *ParseError.
func Normalize(body []byte) (items []json.RawMessage, ok bool, err error) {
	var payload json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, &ParseError{Err: err}
	}
	payload = bytes.TrimSpace(payload)

	resolved := payload
	if payload[0] == '{' {
		var env struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(payload, &env); err != nil {
			return nil, false, &ParseError{Err: err}
		}
		if r := bytes.TrimSpace(env.Results); len(r) > 0 && r[0] == '[' {
			resolved = r
		}
	}

	if resolved[0] != '[' {
		return []json.RawMessage{}, false, nil
	}
	if err := json.Unmarshal(resolved, &items); err != nil {
		return nil, false, &ParseError{Err: err}
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, true, nil
}

// Decode converts raw records into T. Elements that are not JSON objects,
// or that fail to decode, become the zero T so positions are preserved.
func Decode[T any](items []json.RawMessage) []T {
	out := make([]T, len(items))
	for i, raw := range items {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			out[i] = v
		}
	}
	return out
}
