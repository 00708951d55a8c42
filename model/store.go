package model

import "context"

// EventStore persists events
type EventStore interface {
	// ListEvents returns all events ordered by date ascending (see SortEvents)
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	// CreateEvent assigns e.ID
	CreateEvent(ctx context.Context, e *Event) error
	UpdateEvent(ctx context.Context, e *Event) error
	DeleteEvent(ctx context.Context, id int64) error
}

// UserStore persists accounts
type UserStore interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	// CreateUser assigns u.ID; returns ErrUsernameTaken for duplicates
	CreateUser(ctx context.Context, u *User) error
}

// Store is a complete storage backend
type Store interface {
	EventStore
	UserStore
	Close() error
}
