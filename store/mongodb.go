package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ghiac/eventdesk/model"
)

// MongoDBStore is a MongoDB implementation of model.Store.
// Integer IDs come from a counters collection so URLs stay /edit/{n}.
type MongoDBStore struct {
	client   *mongo.Client
	database *mongo.Database
	events   *mongo.Collection
	users    *mongo.Collection
	counters *mongo.Collection
}

// MongoDBStoreConfig holds configuration for MongoDBStore
type MongoDBStoreConfig struct {
	URI      string // MongoDB connection URI (e.g., "mongodb://localhost:27017")
	Database string // Database name (default: "eventdesk")
}

// DefaultMongoDBStoreConfig returns default configuration
func DefaultMongoDBStoreConfig() MongoDBStoreConfig {
	return MongoDBStoreConfig{
		URI:      "mongodb://localhost:27017",
		Database: "eventdesk",
	}
}

// NewMongoDBStore connects to MongoDB and ensures indexes
func NewMongoDBStore(ctx context.Context, config MongoDBStoreConfig) (*MongoDBStore, error) {
	if config.URI == "" {
		config.URI = "mongodb://localhost:27017"
	}
	if config.Database == "" {
		config.Database = "eventdesk"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	database := client.Database(config.Database)
	s := &MongoDBStore{
		client:   client,
		database: database,
		events:   database.Collection("events"),
		users:    database.Collection("users"),
		counters: database.Collection("counters"),
	}

	if err := s.createIndexes(ctx); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return s, nil
}

func (s *MongoDBStore) createIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = s.events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
	})
	return err
}

func (s *MongoDBStore) nextID(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", name, err)
	}
	return counter.Seq, nil
}

// ListEvents returns all events ordered by date and time
func (s *MongoDBStore) ListEvents(ctx context.Context) ([]*model.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.events.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*model.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// GetEvent retrieves an event by ID
func (s *MongoDBStore) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	var e model.Event
	err := s.events.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("event %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return &e, nil
}

// CreateEvent inserts an event and assigns its ID
func (s *MongoDBStore) CreateEvent(ctx context.Context, e *model.Event) error {
	id, err := s.nextID(ctx, "events")
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.events.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// UpdateEvent saves all editable fields of an existing event
func (s *MongoDBStore) UpdateEvent(ctx context.Context, e *model.Event) error {
	e.UpdatedAt = time.Now().UTC()
	res, err := s.events.UpdateOne(ctx, bson.M{"_id": e.ID}, bson.M{"$set": bson.M{
		"title":       e.Title,
		"description": e.Description,
		"date":        e.Date,
		"time":        e.Time,
		"location":    e.Location,
		"updated_at":  e.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("event %d: %w", e.ID, model.ErrNotFound)
	}
	return nil
}

// DeleteEvent removes an event
func (s *MongoDBStore) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.events.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("event %d: %w", id, model.ErrNotFound)
	}
	return nil
}

// GetUser retrieves a user by ID
func (s *MongoDBStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.findUser(ctx, bson.M{"_id": id}, fmt.Sprintf("user %d", id))
}

// GetUserByUsername retrieves a user by username
func (s *MongoDBStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findUser(ctx, bson.M{"username": username}, fmt.Sprintf("user %q", username))
}

func (s *MongoDBStore) findUser(ctx context.Context, filter bson.M, label string) (*model.User, error) {
	var u model.User
	err := s.users.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", label, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a user and assigns its ID
func (s *MongoDBStore) CreateUser(ctx context.Context, u *model.User) error {
	id, err := s.nextID(ctx, "users")
	if err != nil {
		return err
	}
	u.ID = id
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user %q: %w", u.Username, model.ErrUsernameTaken)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB
func (s *MongoDBStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
