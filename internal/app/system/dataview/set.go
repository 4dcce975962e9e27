package dataview

import "sync"

// Closer is anything with a Close method that cannot fail, such as a View.
type Closer interface {
	Close()
}

// Set tracks views and background workers so they can be closed together
// at shutdown.
type Set struct {
	mu    sync.Mutex
	items []Closer
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add registers c and returns it.
func (s *Set) Add(c Closer) Closer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, c)
	return c
}

// Len returns the number of registered closers.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// CloseAll closes every registered closer.
func (s *Set) CloseAll() {
	s.mu.Lock()
	items := s.items
	s.items = nil
	s.mu.Unlock()

	for _, c := range items {
		c.Close()
	}
}
