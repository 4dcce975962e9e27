// internal/app/features/workouts/types.go
package workouts

// Row is one rendered workout.
type Row struct {
	Key             string
	ID              string
	Name            string
	Description     string
	Duration        string
	Difficulty      string
	DifficultyClass string
}
