package store

import (
	"context"
	"os"
	"testing"
)

// TestPostgresStore_Contract runs only when POSTGRES_URL points at a disposable database.
func TestPostgresStore_Contract(t *testing.T) {
	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		t.Skip("Skipping test: POSTGRES_URL not set")
	}

	ctx := context.Background()
	pgStore, err := NewPostgresStore(ctx, url)
	if err != nil {
		t.Skipf("Skipping test: PostgreSQL not available: %v", err)
	}
	defer pgStore.Close()

	if _, err := pgStore.pool.Exec(ctx, `TRUNCATE events, users RESTART IDENTITY`); err != nil {
		t.Fatalf("Failed to reset tables: %v", err)
	}

	testStoreContract(t, pgStore)
}
