package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saksham-is260/BrainForge/internal/course"
)

// CourseRecord is a finished, merged course plus run metadata.
type CourseRecord struct {
	ID        string         `bson:"_id"`
	ContentID string         `bson:"content_id"`
	Course    course.Course  `bson:"course"`
	Metadata  CourseMetadata `bson:"metadata"`
	CreatedAt time.Time      `bson:"created_at"`
}

// CourseMetadata describes how the course was generated.
type CourseMetadata struct {
	Source         string        `bson:"source"` // "single" or "batched"
	GenerationTime time.Duration `bson:"generation_time"`
	Batched        bool          `bson:"batched"`
	Batches        int           `bson:"batches"`
	Model          string        `bson:"model"`
}

// CourseRepo stores final course documents.
type CourseRepo interface {
	SaveFinal(ctx context.Context, doc *course.Document, contentID string, meta CourseMetadata) (string, error)
	GetByContentID(ctx context.Context, contentID string) (*CourseRecord, error)
	GetRecent(ctx context.Context, limit int64) ([]CourseRecord, error)
}

type courseRepo struct {
	collection *mongo.Collection
}

func (r *courseRepo) SaveFinal(ctx context.Context, doc *course.Document, contentID string, meta CourseMetadata) (string, error) {
	record := CourseRecord{
		ID:        uuid.NewString(),
		ContentID: contentID,
		Course:    doc.Course,
		Metadata:  meta,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("insert course: %w", err)
	}
	return record.ID, nil
}

func (r *courseRepo) GetByContentID(ctx context.Context, contentID string) (*CourseRecord, error) {
	var record CourseRecord
	err := r.collection.FindOne(ctx,
		bson.M{"content_id": contentID},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no course for content %s", contentID)
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &record, nil
}

func (r *courseRepo) GetRecent(ctx context.Context, limit int64) ([]CourseRecord, error) {
	if limit <= 0 {
		limit = 5
	}
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("find recent courses: %w", err)
	}
	defer cursor.Close(ctx)

	var records []CourseRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return records, nil
}
