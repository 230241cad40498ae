package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"phrase-svc/app/clients"
	"phrase-svc/app/domains"
	"phrase-svc/app/utils"

	"go.uber.org/zap"
)

var (
	ErrNoPhrasesToday = errors.New("no phrases for today")
	ErrTextRequired   = errors.New("text required")
	ErrPhraseExists   = errors.New("phrase already exists")
	ErrDayNotFound    = errors.New("no phrases for that day")
	ErrInvalidIndex   = errors.New("invalid index")
)

// PhraseService handles phrase operations. Every operation is one
// read-decide-write cycle over the whole book, serialized by mu.
type PhraseService struct {
	mu       sync.Mutex
	store    clients.PhraseStore
	selector utils.Selector
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// PhraseServiceOption customizes a PhraseService
type PhraseServiceOption func(*PhraseService)

// WithClock overrides the clock used to resolve today's day-key
func WithClock(now func() time.Time) PhraseServiceOption {
	return func(s *PhraseService) {
		s.now = now
	}
}

// WithSelector overrides the random selector
func WithSelector(selector utils.Selector) PhraseServiceOption {
	return func(s *PhraseService) {
		s.selector = selector
	}
}

// NewPhraseService creates a new phrase service
func NewPhraseService(store clients.PhraseStore, location *time.Location, logger *zap.Logger, opts ...PhraseServiceOption) *PhraseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	s := &PhraseService{
		store:    store,
		selector: utils.NewRandomSelector(),
		location: location,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns today's day-key
func (s *PhraseService) Today() string {
	return utils.DayKeyFromTime(s.now(), s.location)
}

// ResolveDay normalizes day, or returns today's key when day is empty
func (s *PhraseService) ResolveDay(day string) string {
	if day == "" {
		return s.Today()
	}
	return utils.NormalizeDayKey(day)
}

// load reads the book; read failures are logged and yield an empty book
func (s *PhraseService) load(ctx context.Context) domains.PhraseBook {
	book, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to read phrase store, using empty store", zap.Error(err))
		return domains.PhraseBook{}
	}
	if book == nil {
		return domains.PhraseBook{}
	}
	return book
}

// RandomForToday picks a phrase for today, falling back to the default pool
func (s *PhraseService) RandomForToday(ctx context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := s.Today()
	pool := s.load(ctx).Pool(day)
	if len(pool) == 0 {
		return day, "", ErrNoPhrasesToday
	}
	return day, s.selector.Pick(pool), nil
}

// List returns every phrase stored for day (today when empty)
func (s *PhraseService) List(ctx context.Context, day string) (string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dayKey := s.ResolveDay(day)
	phrases := s.load(ctx)[dayKey]
	if phrases == nil {
		phrases = []string{}
	}
	return dayKey, phrases
}

// Add appends text to day (today when empty) and returns the new total
func (s *PhraseService) Add(ctx context.Context, text, day string) (string, int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 0, ErrTextRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dayKey := s.ResolveDay(day)
	book := s.load(ctx)
	total, err := addToBook(book, dayKey, text)
	if err != nil {
		return dayKey, total, err
	}
	if err := s.store.Save(ctx, book); err != nil {
		return dayKey, 0, fmt.Errorf("failed to save phrases: %w", err)
	}
	return dayKey, total, nil
}

// addToBook appends text to dayKey unless an identical phrase is already there
func addToBook(book domains.PhraseBook, dayKey, text string) (int, error) {
	phrases := book[dayKey]
	if phrases == nil {
		phrases = []string{}
	}
	for _, existing := range phrases {
		if existing == text {
			return len(phrases), ErrPhraseExists
		}
	}
	book[dayKey] = append(phrases, text)
	return len(book[dayKey]), nil
}

// Delete removes the phrase at index from day and returns it with the new total
func (s *PhraseService) Delete(ctx context.Context, day string, index int) (string, string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dayKey := utils.NormalizeDayKey(day)
	book := s.load(ctx)
	phrases := book[dayKey]
	if phrases == nil {
		return dayKey, "", 0, ErrDayNotFound
	}
	if index < 0 || index >= len(phrases) {
		return dayKey, "", len(phrases), ErrInvalidIndex
	}

	removed := phrases[index]
	remaining := make([]string, 0, len(phrases)-1)
	remaining = append(remaining, phrases[:index]...)
	remaining = append(remaining, phrases[index+1:]...)
	book[dayKey] = remaining

	if err := s.store.Save(ctx, book); err != nil {
		return dayKey, "", len(phrases), fmt.Errorf("failed to save phrases: %w", err)
	}
	return dayKey, removed, len(remaining), nil
}

// Ready reports whether the store can be read
func (s *PhraseService) Ready(ctx context.Context) error {
	_, err := s.store.Load(ctx)
	return err
}
