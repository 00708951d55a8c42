package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghiac/eventdesk/model"
)

const pgUniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of model.Store
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to databaseURL and creates the schema if needed
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create DB pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_events_date_time ON events(date, time);
	`)
	return err
}

// ListEvents returns all events ordered by date and time
func (s *PostgresStore) ListEvents(ctx context.Context) ([]*model.Event, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date ASC, time ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		e, err := scanPgEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// GetEvent retrieves an event by ID
func (s *PostgresStore) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	e, err := scanPgEvent(s.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("event %d: %w", id, model.ErrNotFound)
	}
	return e, err
}

// CreateEvent inserts an event and assigns its ID
func (s *PostgresStore) CreateEvent(ctx context.Context, e *model.Event) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO events (title, description, date, time, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		e.Title, e.Description, e.Date, e.Time, e.Location,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// UpdateEvent saves all editable fields of an existing event
func (s *PostgresStore) UpdateEvent(ctx context.Context, e *model.Event) error {
	err := s.pool.QueryRow(ctx, `
		UPDATE events SET title = $1, description = $2, date = $3, time = $4, location = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at`,
		e.Title, e.Description, e.Date, e.Time, e.Location, e.ID,
	).Scan(&e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("event %d: %w", e.ID, model.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteEvent removes an event
func (s *PostgresStore) DeleteEvent(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %d: %w", id, model.ErrNotFound)
	}
	return nil
}

// GetUser retrieves a user by ID
func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := s.pool.QueryRow(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// GetUserByUsername retrieves a user by username
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.pool.QueryRow(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", username, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a user and assigns its ID
func (s *PostgresStore) CreateUser(ctx context.Context, u *model.User) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash) VALUES ($1, $2)
		RETURNING id, created_at`,
		u.Username, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("user %q: %w", u.Username, model.ErrUsernameTaken)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Close closes the pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanPgEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &e, nil
}
