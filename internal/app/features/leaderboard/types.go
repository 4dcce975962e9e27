// internal/app/features/leaderboard/types.go
package leaderboard

// Row is one rendered leaderboard position.
type Row struct {
	Key        string
	Medal      string
	Rank       string
	RowClass   string
	User       string
	Team       string
	Points     string
	Activities string
}
