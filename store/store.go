package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ghiac/eventdesk/model"
)

// DefaultDatabaseURL is used when DATABASE_URL is not set
const DefaultDatabaseURL = "sqlite:///events.db"

// Open selects a backend from the URL scheme:
//
//	sqlite:///events.db, sqlite:////abs/path.db, sqlite:// (in-memory)
//	postgres://... or postgresql://...
//	mongodb://host/dbname or mongodb+srv://...
//	memory://
func Open(ctx context.Context, databaseURL string) (model.Store, error) {
	if databaseURL == "" {
		databaseURL = DefaultDatabaseURL
	}

	scheme, _, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return nil, fmt.Errorf("invalid database URL %q: missing scheme", databaseURL)
	}

	switch strings.ToLower(scheme) {
	case "sqlite":
		return NewSQLiteStore(SQLitePath(databaseURL))
	case "postgres", "postgresql":
		return NewPostgresStore(ctx, databaseURL)
	case "mongodb", "mongodb+srv":
		cfg := DefaultMongoDBStoreConfig()
		cfg.URI = databaseURL
		if u, err := url.Parse(databaseURL); err == nil {
			if name := strings.Trim(u.Path, "/"); name != "" {
				cfg.Database = name
			}
		}
		return NewMongoDBStore(ctx, cfg)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

// SQLitePath extracts the file path from a sqlite:// URL. Three slashes mean a
// relative path, four an absolute one; no path means an in-memory database.
func SQLitePath(databaseURL string) string {
	rest := strings.TrimPrefix(databaseURL, "sqlite://")
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" || rest == ":memory:" {
		return ":memory:"
	}
	return rest
}

// Redact hides the password of a database URL for logging
func Redact(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil || u.User == nil {
		return databaseURL
	}
	return u.Redacted()
}
