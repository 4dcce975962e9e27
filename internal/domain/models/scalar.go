// internal/domain/models/scalar.go
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Scalar is a JSON value the dashboard only ever displays.
//
// The upstream API is not consistent about field types (ids arrive as
// numbers from one deployment and as ObjectID strings from another, user
// references may be names or ids), so every displayed field accepts any
// JSON scalar and keeps its display form. Numbers are normalized to plain
// decimals. null and booleans decode to the empty Scalar, matching a
// browser table that renders nothing for them. Objects and arrays keep
// their raw JSON text.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	if data[0] == '-' || (data[0] >= '0' && data[0] <= '9') {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = Scalar(formatNumber(n))
		return nil
	}
	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		*s = ""
		return nil
	}
	*s = Scalar(data)
	return nil
}

// formatNumber renders a JSON number in shortest plain decimal form, so
// 30.0 and 3e1 both display as "30". Integers that fit in int64 keep every
// digit.
func formatNumber(n json.Number) string {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return n.String()
	}
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the display text.
func (s Scalar) String() string { return string(s) }

// IsZero reports whether the value was absent, null or an empty string.
func (s Scalar) IsZero() bool { return s == "" }

// Int parses the value as an integer, returning false when it is not one.
func (s Scalar) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
