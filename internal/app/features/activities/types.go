// internal/app/features/activities/types.go
package activities

// Row is one rendered activity.
type Row struct {
	Key          string
	ID           string
	User         string
	ActivityType string
	Duration     string
	Calories     string
	Date         string
}
