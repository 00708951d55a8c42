package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ghiac/eventdesk/model"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite implementation of model.Store
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (and if needed creates) a SQLite database.
// If dbPath is empty, it uses ":memory:" for an in-memory database.
// The function automatically creates the directory if it doesn't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create directory for database: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{
		db:   db,
		path: dbPath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_date_time ON events(date, time);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database path
func (s *SQLiteStore) Path() string {
	return s.path
}

const eventColumns = `id, title, description, date, time, location, created_at, updated_at`

// ListEvents returns all events ordered by date and time
func (s *SQLiteStore) ListEvents(ctx context.Context) ([]*model.Event, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date ASC, time ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// GetEvent retrieves an event by ID
func (s *SQLiteStore) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %d: %w", id, model.ErrNotFound)
	}
	return e, err
}

// CreateEvent inserts an event and assigns its ID
func (s *SQLiteStore) CreateEvent(ctx context.Context, e *model.Event) error {
	now := time.Now()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO events (title, description, date, time, location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.Description, e.Date, e.Time, e.Location, now.Unix(), now.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read event id: %w", err)
	}
	e.ID = id
	e.CreatedAt = time.Unix(now.Unix(), 0)
	e.UpdatedAt = e.CreatedAt
	return nil
}

// UpdateEvent saves all editable fields of an existing event
func (s *SQLiteStore) UpdateEvent(ctx context.Context, e *model.Event) error {
	now := time.Now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE events SET title = ?, description = ?, date = ?, time = ?, location = ?, updated_at = ?
		WHERE id = ?`,
		e.Title, e.Description, e.Date, e.Time, e.Location, now.Unix(), e.ID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if err := expectOneRow(res, "event", e.ID); err != nil {
		return err
	}
	e.UpdatedAt = time.Unix(now.Unix(), 0)
	return nil
}

// DeleteEvent removes an event
func (s *SQLiteStore) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return expectOneRow(res, "event", id)
}

// GetUser retrieves a user by ID
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, model.ErrNotFound)
	}
	return u, err
}

// GetUserByUsername retrieves a user by username
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", username, model.ErrNotFound)
	}
	return u, err
}

// CreateUser inserts a user and assigns its ID
func (s *SQLiteStore) CreateUser(ctx context.Context, u *model.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`,
		u.Username, u.PasswordHash, u.CreatedAt.Unix())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("user %q: %w", u.Username, model.ErrUsernameTaken)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	u.ID = id
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(r rowScanner) (*model.Event, error) {
	var e model.Event
	var created, updated int64
	if err := r.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	e.CreatedAt = time.Unix(created, 0)
	e.UpdatedAt = time.Unix(updated, 0)
	return &e, nil
}

func scanUser(r rowScanner) (*model.User, error) {
	var u model.User
	var created int64
	if err := r.Scan(&u.ID, &u.Username, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	u.CreatedAt = time.Unix(created, 0)
	return &u, nil
}

func expectOneRow(res sql.Result, kind string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, model.ErrNotFound)
	}
	return nil
}
