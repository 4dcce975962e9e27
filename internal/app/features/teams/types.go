// internal/app/features/teams/types.go
package teams

// Card is one rendered team.
type Card struct {
	Key         string
	Name        string
	Description string
	Members     string
}
