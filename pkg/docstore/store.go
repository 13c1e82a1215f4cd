/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/portls-labs/portls/pkg/config"
)

// Record is one stored entity as a field-value mapping.
type Record map[string]any

// Store is the single point of contact with the external document store.
// Operations are generic over the collection name; the shape of the
// returned records is the caller's responsibility.
// NOTE: This layer never retries and never logs - surfacing failures is
// the caller's job.
type Store interface {
	// CreateDocument inserts the record into the named collection and
	// returns the stored record including the identifier assigned by the
	// store. Fails with ErrUnavailable when no connection is configured.
	CreateDocument(ctx context.Context, collection string, record any) (Record, error)

	// GetDocuments returns every record in the named collection in
	// store-native order. The order is whatever the store returns and must
	// not be assumed stable across calls.
	GetDocuments(ctx context.Context, collection string) ([]Record, error)

	// FindDocument returns the first record matching the equality filter,
	// or ErrNotFound when nothing matches.
	FindDocument(ctx context.Context, collection string, filter Record) (Record, error)

	// Collections returns the names of the existing collections.
	Collections(ctx context.Context) ([]string, error)

	// CountDocuments returns the number of records in the named collection.
	CountDocuments(ctx context.Context, collection string) (int64, error)

	// Ping verifies connectivity to the store.
	Ping(ctx context.Context) error
}

// mongoStore implements Store on top of a MongoDB database handle. A nil
// db means the store was never configured; every operation then fails
// with ErrUnavailable without touching the network.
type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*mongoStore)(nil)

// New builds the Store from configuration. When either the connection URL
// or the database name is missing the returned store is unconfigured -
// that is a supported degraded mode, not an error. The connection is
// established once here and never reassigned.
func New(cfg *config.AppConfig) (Store, error) {
	if cfg.Database.URL == "" || cfg.Database.Name == "" {
		return &mongoStore{}, nil
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Database.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	return &mongoStore{
		client: client,
		db:     client.Database(cfg.Database.Name),
	}, nil
}

// Unconfigured returns a Store with no connection. Every operation on it
// fails with ErrUnavailable.
func Unconfigured() Store {
	return &mongoStore{}
}

func (s *mongoStore) CreateDocument(ctx context.Context, collection string, record any) (Record, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, &OpError{Op: "create", Collection: collection, Err: err}
	}
	var doc Record
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, &OpError{Op: "create", Collection: collection, Err: err}
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, &OpError{Op: "create", Collection: collection, Err: err}
	}

	doc["_id"] = res.InsertedID
	return doc, nil
}

func (s *mongoStore) GetDocuments(ctx context.Context, collection string) ([]Record, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, &OpError{Op: "list", Collection: collection, Err: err}
	}
	defer cursor.Close(ctx)

	docs := make([]Record, 0)
	for cursor.Next(ctx) {
		var doc Record
		if err := cursor.Decode(&doc); err != nil {
			return nil, &OpError{Op: "list", Collection: collection, Err: err}
		}
		docs = append(docs, doc)
	}
	// A cursor error means a partial read, never a valid empty result.
	if err := cursor.Err(); err != nil {
		return nil, &OpError{Op: "list", Collection: collection, Err: err}
	}

	return docs, nil
}

func (s *mongoStore) FindDocument(ctx context.Context, collection string, filter Record) (Record, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	f := bson.M{}
	for k, v := range filter {
		f[k] = v
	}

	var doc Record
	if err := s.db.Collection(collection).FindOne(ctx, f).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, &OpError{Op: "find", Collection: collection, Err: err}
	}
	return doc, nil
}

func (s *mongoStore) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &OpError{Op: "collections", Err: err}
	}
	return names, nil
}

func (s *mongoStore) CountDocuments(ctx context.Context, collection string) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}

	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, &OpError{Op: "count", Collection: collection, Err: err}
	}
	return n, nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrUnavailable
	}
	if err := s.client.Ping(ctx, nil); err != nil {
		return &OpError{Op: "ping", Err: err}
	}
	return nil
}
