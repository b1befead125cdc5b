// Package mongo provides a MongoDB-backed implementation of boxoffice.FilmService.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultServerSelectionTimeout bounds how long Open waits for a reachable server.
const DefaultServerSelectionTimeout = 10 * time.Second

// DB represents a connection to one MongoDB database.
type DB struct {
	URI      string
	Database string

	client *mongo.Client
	db     *mongo.Database
}

// NewDB creates a new DB for the given connection string and database name.
func NewDB(uri, database string) *DB {
	return &DB{URI: uri, Database: database}
}

// Open connects to the server and verifies it is reachable.
func (db *DB) Open(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(db.URI).
		SetServerSelectionTimeout(DefaultServerSelectionTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db.client = client
	db.db = client.Database(db.Database)
	return nil
}

// Close disconnects from the server.
func (db *DB) Close(ctx context.Context) error {
	if db.client == nil {
		return nil
	}
	return db.client.Disconnect(ctx)
}

// DropDatabase removes the whole database.
func (db *DB) DropDatabase(ctx context.Context) error {
	return db.db.Drop(ctx)
}

func (db *DB) collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}
