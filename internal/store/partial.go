package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saksham-is260/BrainForge/internal/course"
)

// PartialCourse is the validated output of one generation batch, persisted
// as it completes so in-progress multi-batch runs are externally visible.
type PartialCourse struct {
	ContentID    string        `bson:"content_id"`
	BatchNum     int           `bson:"batch_num"`
	TotalBatches int           `bson:"total_batches"`
	Course       course.Course `bson:"course"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

// PartialRepo stores per-batch partial courses. SavePartial is an upsert on
// (content_id, batch_num): re-running a batch overwrites its previous
// partial, so repeated identical saves are safe.
type PartialRepo interface {
	SavePartial(ctx context.Context, doc *course.Document, contentID string, batchNum, totalBatches int) (string, error)
	GetPartials(ctx context.Context, contentID string) ([]PartialCourse, error)
	DeletePartials(ctx context.Context, contentID string) error
}

type partialRepo struct {
	collection *mongo.Collection
}

func (r *partialRepo) SavePartial(ctx context.Context, doc *course.Document, contentID string, batchNum, totalBatches int) (string, error) {
	partial := PartialCourse{
		ContentID:    contentID,
		BatchNum:     batchNum,
		TotalBatches: totalBatches,
		Course:       doc.Course,
		UpdatedAt:    time.Now().UTC(),
	}

	filter := bson.M{"content_id": contentID, "batch_num": batchNum}
	res, err := r.collection.ReplaceOne(ctx, filter, partial, options.Replace().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("upsert partial %d/%d: %w", batchNum, totalBatches, err)
	}

	if res.UpsertedID != nil {
		return fmt.Sprintf("%v", res.UpsertedID), nil
	}
	return fmt.Sprintf("%s/%d", contentID, batchNum), nil
}

func (r *partialRepo) GetPartials(ctx context.Context, contentID string) ([]PartialCourse, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"content_id": contentID},
		options.Find().SetSort(bson.D{{Key: "batch_num", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find partials: %w", err)
	}
	defer cursor.Close(ctx)

	var partials []PartialCourse
	if err := cursor.All(ctx, &partials); err != nil {
		return nil, fmt.Errorf("decode partials: %w", err)
	}
	return partials, nil
}

func (r *partialRepo) DeletePartials(ctx context.Context, contentID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"content_id": contentID}); err != nil {
		return fmt.Errorf("delete partials: %w", err)
	}
	return nil
}
