package models_test

import (
	"encoding/json"
	"testing"

	"github.com/dalemusser/octofit/internal/domain/models"
)

func TestScalar_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  models.Scalar
	}{
		{`"5K Run"`, "5K Run"},
		{`30`, "30"},
		{`-2`, "-2"},
		{`12.5`, "12.5"},
		{`30.0`, "30"},
		{`1e3`, "1000"},
		{`2.50`, "2.5"},
		{`-0`, "0"},
		{`-0.0`, "0"},
		{`true`, ""},
		{`false`, ""},
		{`null`, ""},
		{`""`, ""},
		{`{"a":1}`, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got models.Scalar
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScalar_Int(t *testing.T) {
	if n, ok := models.Scalar("42").Int(); !ok || n != 42 {
		t.Errorf("Int() = %d, %v; want 42, true", n, ok)
	}
	if _, ok := models.Scalar("abc").Int(); ok {
		t.Error("Int() on non-number should report false")
	}
}

func TestWorkout_DecodesMixedTypes(t *testing.T) {
	var w models.Workout
	raw := `{"id":1,"name":"5K Run","difficulty":"HARD","duration":30}`
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if w.ID != "1" || w.Duration != "30" {
		t.Errorf("got id=%q duration=%q, want 1 and 30", w.ID, w.Duration)
	}
	if w.DifficultyLevel() != models.DifficultyHard {
		t.Errorf("DifficultyLevel() = %q, want %q", w.DifficultyLevel(), models.DifficultyHard)
	}
	if w.Description != "" {
		t.Errorf("missing description should be empty, got %q", w.Description)
	}
}

func TestTeam_MemberCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"array", `{"name":"Blue","members":["a","b",{"id":3}]}`, 3},
		{"empty", `{"name":"Blue","members":[]}`, 0},
		{"missing", `{"name":"Blue"}`, 0},
		{"null", `{"name":"Blue","members":null}`, 0},
		{"not an array", `{"name":"Blue","members":7}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var team models.Team
			if err := json.Unmarshal([]byte(tt.raw), &team); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if got := team.MemberCount(); got != tt.want {
				t.Errorf("MemberCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		first, last string
		want        string
	}{
		{"Tony", "Stark", "Tony Stark"},
		{"Tony", "", "Tony"},
		{"", "Stark", "Stark"},
		{"", "", ""},
	}
	for _, tt := range tests {
		u := models.User{FirstName: models.Scalar(tt.first), LastName: models.Scalar(tt.last)}
		if got := u.FullName(); got != tt.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestLookupResource(t *testing.T) {
	for _, res := range models.Resources {
		got, ok := models.LookupResource(res.Slug)
		if !ok || got.APIPath != res.APIPath {
			t.Errorf("LookupResource(%q) = %+v, %v", res.Slug, got, ok)
		}
	}
	if _, ok := models.LookupResource("badges"); ok {
		t.Error("LookupResource(badges) should not be found")
	}
	if len(models.Resources) != 5 {
		t.Errorf("expected 5 resources, got %d", len(models.Resources))
	}
}
