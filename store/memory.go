package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ghiac/eventdesk/model"
)

// MemoryStore is an in-memory implementation of model.Store
type MemoryStore struct {
	mu          sync.RWMutex
	events      map[int64]*model.Event
	users       map[int64]*model.User
	nextEventID int64
	nextUserID  int64
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[int64]*model.Event),
		users:  make(map[int64]*model.User),
	}
}

// ListEvents returns copies of all events in date order
func (s *MemoryStore) ListEvents(ctx context.Context) ([]*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*model.Event, 0, len(s.events))
	for _, e := range s.events {
		cp := *e
		events = append(events, &cp)
	}
	model.SortEvents(events)
	return events, nil
}

// GetEvent retrieves an event by ID
func (s *MemoryStore) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, fmt.Errorf("event %d: %w", id, model.ErrNotFound)
	}
	cp := *e
	return &cp, nil
}

// CreateEvent stores a new event and assigns its ID
func (s *MemoryStore) CreateEvent(ctx context.Context, e *model.Event) error {
	if e == nil {
		return fmt.Errorf("event cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextEventID++
	now := time.Now()
	e.ID = s.nextEventID
	e.CreatedAt = now
	e.UpdatedAt = now

	cp := *e
	s.events[e.ID] = &cp
	return nil
}

// UpdateEvent replaces an existing event
func (s *MemoryStore) UpdateEvent(ctx context.Context, e *model.Event) error {
	if e == nil {
		return fmt.Errorf("event cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.events[e.ID]
	if !ok {
		return fmt.Errorf("event %d: %w", e.ID, model.ErrNotFound)
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now()

	cp := *e
	s.events[e.ID] = &cp
	return nil
}

// DeleteEvent removes an event
func (s *MemoryStore) DeleteEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return fmt.Errorf("event %d: %w", id, model.ErrNotFound)
	}
	delete(s.events, id)
	return nil
}

// GetUser retrieves a user by ID
func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, model.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

// GetUserByUsername retrieves a user by username
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, model.ErrNotFound)
}

// CreateUser stores a new user and assigns its ID
func (s *MemoryStore) CreateUser(ctx context.Context, u *model.User) error {
	if u == nil {
		return fmt.Errorf("user cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return fmt.Errorf("user %q: %w", u.Username, model.ErrUsernameTaken)
		}
	}

	s.nextUserID++
	u.ID = s.nextUserID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
