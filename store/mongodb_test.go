package store

import (
	"context"
	"os"
	"testing"
)

// TestMongoDBStore_Contract requires a running MongoDB instance.
// Set MONGODB_URI to override the default connection string.
func TestMongoDBStore_Contract(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx := context.Background()
	mongoStore, err := NewMongoDBStore(ctx, MongoDBStoreConfig{URI: uri, Database: "eventdesk_test"})
	if err != nil {
		t.Skipf("Skipping test: MongoDB not available: %v", err)
	}
	defer mongoStore.Close()

	if err := mongoStore.database.Drop(ctx); err != nil {
		t.Fatalf("Failed to reset test database: %v", err)
	}
	if err := mongoStore.createIndexes(ctx); err != nil {
		t.Fatalf("Failed to recreate indexes: %v", err)
	}

	testStoreContract(t, mongoStore)
}
