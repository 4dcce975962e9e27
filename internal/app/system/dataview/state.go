package dataview

import "time"

// State is the lifecycle position of a view's current fetch cycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends a fetch cycle.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateError
}

// Snapshot is a consistent copy of a view's state.
//
// Items is nil after an error and non-nil after a success. While loading,
// Items still holds the previous outcome's records. Callers must not
// modify Items.
type Snapshot[T any] struct {
	State      State
	Items      []T
	Err        string
	Generation uint64
	FetchedAt  time.Time
}

// Empty reports whether a successful fetch returned no records.
func (s Snapshot[T]) Empty() bool {
	return s.State == StateSuccess && len(s.Items) == 0
}
