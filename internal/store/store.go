package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds storage connection settings.
type Config struct {
	URI      string
	Database string
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	cfg := Config{
		URI:      "mongodb://localhost:27017",
		Database: "brainforge",
	}
	if uri := os.Getenv("BRAINFORGE_MONGO_URI"); uri != "" {
		cfg.URI = uri
	} else if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.URI = uri
	}
	if db := os.Getenv("BRAINFORGE_MONGO_DB"); db != "" {
		cfg.Database = db
	}
	return cfg
}

// Store wraps the Mongo client and hands out repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB, verifies the connection, and prepares the
// indexes the repositories rely on.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{client: client, db: client.Database(cfg.Database)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return s, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ContentRepo returns the extracted-content repository.
func (s *Store) ContentRepo() ContentRepo {
	return &contentRepo{collection: s.db.Collection("extracted_content")}
}

// PartialRepo returns the partial-course repository.
func (s *Store) PartialRepo() PartialRepo {
	return &partialRepo{collection: s.db.Collection("partial_courses")}
}

// CourseRepo returns the final-course repository.
func (s *Store) CourseRepo() CourseRepo {
	return &courseRepo{collection: s.db.Collection("courses")}
}

// EventRepo returns the LLM request event repository.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{collection: s.db.Collection("llm_events")}
}

// ensureIndexes creates the indexes needed for partial upserts and
// content-id lookups. Safe to run repeatedly.
func (s *Store) ensureIndexes(ctx context.Context) error {
	partials := s.db.Collection("partial_courses")
	_, err := partials.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "content_id", Value: 1}, {Key: "batch_num", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("partial_courses index: %w", err)
	}

	courses := s.db.Collection("courses")
	_, err = courses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "content_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("courses index: %w", err)
	}
	return nil
}
