// Package display holds the small formatting rules shared by the
// dashboard tables: badge colours, leaderboard decorations and dates.
package display

import (
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/octofit/internal/domain/models"
)

// Bootstrap badge classes.
const (
	BadgeSuccess   = "bg-success"
	BadgeWarning   = "bg-warning"
	BadgeDanger    = "bg-danger"
	BadgeSecondary = "bg-secondary"
	BadgeInfo      = "bg-info"
	BadgePrimary   = "bg-primary"
)

// InvalidDate is shown for a date value that cannot be parsed.
const InvalidDate = "Invalid Date"

// DifficultyBadge maps a workout difficulty to its badge class.
// Matching is case-insensitive; unknown or empty values are neutral.
func DifficultyBadge(difficulty string) string {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case models.DifficultyEasy:
		return BadgeSuccess
	case models.DifficultyMedium:
		return BadgeWarning
	case models.DifficultyHard:
		return BadgeDanger
	default:
		return BadgeSecondary
	}
}

// Medal returns the decoration for a zero-based leaderboard position:
// gold, silver and bronze for the first three, nothing after.
func Medal(index int) string {
	switch index {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return ""
	}
}

// RankLabel returns "#<n>" for a zero-based position.
func RankLabel(index int) string {
	return "#" + strconv.Itoa(index+1)
}

// RankRowClass highlights the leader's row.
func RankRowClass(index int) string {
	if index == 0 {
		return "table-warning"
	}
	return ""
}

// MemberLabel renders a team's member count, e.g. "3 Members".
func MemberLabel(n int) string {
	return strconv.Itoa(n) + " Members"
}

// RowKey returns id when present, otherwise the position.
func RowKey(id models.Scalar, index int) string {
	if !id.IsZero() {
		return id.String()
	}
	return strconv.Itoa(index)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders an API date with layout (DefaultDateLayout when
// blank). Date-only values are shown as given; timestamps are shown in
// loc (UTC when nil). Empty input renders empty, unparseable input renders
// InvalidDate.
func FormatDate(raw, layout string, loc *time.Location) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if layout == "" {
		layout = models.DefaultDateLayout
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, l := range dateLayouts {
		t, err := time.Parse(l, raw)
		if err != nil {
			continue
		}
		if l == "2006-01-02" {
			return t.Format(layout)
		}
		return t.In(loc).Format(layout)
	}
	return InvalidDate
}
