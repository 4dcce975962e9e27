// internal/domain/models/leaderboard.go
package models

// LeaderboardEntry is one row of /api/leaderboard/.
//
// Rank is not part of the payload; it is the 1-based position of the entry
// in the array the API returns.
type LeaderboardEntry struct {
	ID              Scalar `json:"id"`
	User            Scalar `json:"user"`
	Team            Scalar `json:"team"`
	TotalPoints     Scalar `json:"total_points"`
	ActivitiesCount Scalar `json:"activities_count"`
}
