// internal/domain/models/resource.go
package models

// Resource describes one collection the dashboard can display.
type Resource struct {
	Slug        string // route segment, e.g. "workouts"
	APIPath     string // path segment under /api/
	Title       string // page heading
	Noun        string // lower-case plural used in loading text
	EmptyText   string // notice shown for an empty collection
	Description string // one-liner for the home page
	Icon        string // bootstrap-icons name
}

// Resource slugs.
const (
	ResourceActivities  = "activities"
	ResourceLeaderboard = "leaderboard"
	ResourceTeams       = "teams"
	ResourceUsers       = "users"
	ResourceWorkouts    = "workouts"
)

// Resources lists every resource in navigation order.
var Resources = []Resource{
	{
		Slug:        ResourceActivities,
		APIPath:     "activities",
		Title:       "Activities",
		Noun:        "activities",
		EmptyText:   "No activities found",
		Description: "Logged sessions with duration and calories burned.",
		Icon:        "activity",
	},
	{
		Slug:        ResourceLeaderboard,
		APIPath:     "leaderboard",
		Title:       "Leaderboard",
		Noun:        "leaderboard",
		EmptyText:   "No leaderboard data found",
		Description: "Points ranking across all users and teams.",
		Icon:        "trophy",
	},
	{
		Slug:        ResourceTeams,
		APIPath:     "teams",
		Title:       "Teams",
		Noun:        "teams",
		EmptyText:   "No teams found",
		Description: "Teams and their member counts.",
		Icon:        "people",
	},
	{
		Slug:        ResourceUsers,
		APIPath:     "users",
		Title:       "Users",
		Noun:        "users",
		EmptyText:   "No users found",
		Description: "Registered users and contact details.",
		Icon:        "person",
	},
	{
		Slug:        ResourceWorkouts,
		APIPath:     "workouts",
		Title:       "Workouts",
		Noun:        "workouts",
		EmptyText:   "No workouts found",
		Description: "Suggested workouts by difficulty.",
		Icon:        "lightning",
	},
}

// LookupResource returns the resource with the given slug.
func LookupResource(slug string) (Resource, bool) {
	for _, res := range Resources {
		if res.Slug == slug {
			return res, true
		}
	}
	return Resource{}, false
}

// MustResource is LookupResource for slugs known at compile time.
func MustResource(slug string) Resource {
	res, ok := LookupResource(slug)
	if !ok {
		panic("models: unknown resource " + slug)
	}
	return res
}
