package handlers

import (
	"sync"

	"solar-sizing/internal/model"
)

// Session guards the shared equipment collection behind the HTTP boundary.
// The collection itself is single-caller by contract, so every handler
// touching it does so under this lock.
type Session struct {
	mu         sync.Mutex
	collection *model.Collection
}

func NewSession() *Session {
	return &Session{collection: model.NewCollection()}
}

// WithCollection runs fn with exclusive access to the collection.
func (s *Session) WithCollection(fn func(c *model.Collection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.collection)
}

// Replace swaps in a freshly loaded collection.
func (s *Session) Replace(c *model.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = c
}
