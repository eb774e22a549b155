package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExtractedContent is the plain-text output of the extraction subsystem,
// saved once and read back by id when a course is generated for it.
type ExtractedContent struct {
	ID         string    `bson:"_id"`
	Filename   string    `bson:"filename"`
	SourceType string    `bson:"source_type"` // "pdf", "ppt", "image", "text"
	Text       string    `bson:"text"`
	CharCount  int       `bson:"char_count"`
	CreatedAt  time.Time `bson:"created_at"`
}

// ContentRepo stores and retrieves extracted content by opaque id.
type ContentRepo interface {
	Save(ctx context.Context, content *ExtractedContent) (string, error)
	GetByID(ctx context.Context, id string) (*ExtractedContent, error)
}

type contentRepo struct {
	collection *mongo.Collection
}

func (r *contentRepo) Save(ctx context.Context, content *ExtractedContent) (string, error) {
	if content.ID == "" {
		content.ID = uuid.NewString()
	}
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now().UTC()
	}
	content.CharCount = len(content.Text)

	if _, err := r.collection.InsertOne(ctx, content); err != nil {
		return "", fmt.Errorf("insert extracted content: %w", err)
	}
	return content.ID, nil
}

func (r *contentRepo) GetByID(ctx context.Context, id string) (*ExtractedContent, error) {
	var content ExtractedContent
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("content %s not found", id)
		}
		return nil, fmt.Errorf("find content: %w", err)
	}
	return &content, nil
}
