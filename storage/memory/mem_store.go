package memory

import (
	"context"
	"sync"

	"phrase-svc/app/domains"
)

// Store keeps the phrase book in process memory
type Store struct {
	mu      sync.Mutex
	book    domains.PhraseBook
	loadErr error
	saveErr error
}

// NewStore creates a memory store holding a copy of initial
func NewStore(initial domains.PhraseBook) *Store {
	if initial == nil {
		initial = domains.PhraseBook{}
	}
	return &Store{book: initial.Clone()}
}

// Load returns a copy of the stored book
func (s *Store) Load(ctx context.Context) (domains.PhraseBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.book.Clone(), nil
}

// Save replaces the stored book with a copy of book
func (s *Store) Save(ctx context.Context, book domains.PhraseBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.book = book.Clone()
	return nil
}

// FailLoad makes every Load return err until called again with nil
func (s *Store) FailLoad(err error) {
	s.mu.Lock()
	s.loadErr = err
	s.mu.Unlock()
}

// FailSave makes every Save return err until called again with nil
func (s *Store) FailSave(err error) {
	s.mu.Lock()
	s.saveErr = err
	s.mu.Unlock()
}
