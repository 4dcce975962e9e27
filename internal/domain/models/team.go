// internal/domain/models/team.go
package models

import (
	"bytes"
	"encoding/json"
)

// Team is one entry of /api/teams/. Members are opaque references; only
// their count is shown.
type Team struct {
	ID          Scalar     `json:"id"`
	Name        Scalar     `json:"name"`
	Description Scalar     `json:"description"`
	Members     References `json:"members"`
}

// MemberCount returns the number of member references (0 when absent).
func (t Team) MemberCount() int {
	return len(t.Members)
}

// References is a JSON array of opaque values. Anything other than an
// array (null, a number, an object) decodes to an empty list.
type References []json.RawMessage

// UnmarshalJSON implements json.Unmarshaler.
func (r *References) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*r = nil
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*r = items
	return nil
}
