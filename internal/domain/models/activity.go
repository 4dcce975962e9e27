// internal/domain/models/activity.go
package models

// Activity is one logged workout session as served by /api/activities/.
type Activity struct {
	ID             Scalar `json:"id"`
	User           Scalar `json:"user"`
	ActivityType   Scalar `json:"activity_type"`
	Duration       Scalar `json:"duration"` // minutes
	CaloriesBurned Scalar `json:"calories_burned"`
	Date           Scalar `json:"date"`
}
