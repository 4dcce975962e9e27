// internal/domain/models/workout.go
package models

import "strings"

// Difficulty levels recognised by the dashboard. Any other value renders
// with a neutral badge.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Workout is one entry of /api/workouts/.
type Workout struct {
	ID          Scalar `json:"id"`
	Name        Scalar `json:"name"`
	Description Scalar `json:"description"`
	Duration    Scalar `json:"duration"` // minutes
	Difficulty  Scalar `json:"difficulty"`
}

// DifficultyLevel returns the lower-cased difficulty.
func (w Workout) DifficultyLevel() string {
	return strings.ToLower(strings.TrimSpace(w.Difficulty.String()))
}
