package db

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection    = "users"
	listingsCollection = "petListings"
	ordersCollection   = "orders"
)

var (
	// ErrNotReady is returned by every store operation attempted before
	// Connect has bound the collection handles. Handlers answer it with 503.
	ErrNotReady = errors.New("document store not ready")

	// ErrNoDocument is returned when a lookup matches nothing.
	ErrNoDocument = errors.New("document not found")

	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Mongo owns the MongoDB client and database handles. It is constructed
// immediately at startup and bound asynchronously by Connect, so the HTTP
// server can start accepting requests before the store is reachable;
// operations in the window before binding fail with ErrNotReady.
type Mongo struct {
	uri      string
	database string

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo creates an unconnected Mongo handle.
func NewMongo(uri, database string) *Mongo {
	return &Mongo{uri: uri, database: database}
}

// Connect establishes the client connection, verifies it with a ping,
// ensures the unique index on users.email, and publishes the handles.
func (m *Mongo) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(m.database)

	// Duplicate registrations are rejected by the store itself rather than
	// by a racy check-then-insert in the handler.
	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("ensure unique index on %s.email: %w", usersCollection, err)
	}

	m.mu.Lock()
	m.client = client
	m.db = db
	m.mu.Unlock()
	return nil
}

// Disconnect closes the client connection if one was established.
func (m *Mongo) Disconnect(ctx context.Context) error {
	m.mu.RLock()
	client := m.client
	m.mu.RUnlock()
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ready reports whether Connect has completed.
func (m *Mongo) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db != nil
}

func (m *Mongo) collection(name string) (*mongo.Collection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return nil, ErrNotReady
	}
	return m.db.Collection(name), nil
}
