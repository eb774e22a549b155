package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// LLMRequestEventData records one generation attempt, successful or not.
type LLMRequestEventData struct {
	Provider     string `bson:"provider"`
	Model        string `bson:"model"`
	Purpose      string `bson:"purpose"`
	LatencyMs    int64  `bson:"latency_ms"`
	Success      bool   `bson:"success"`
	InputTokens  int    `bson:"input_tokens"`
	OutputTokens int    `bson:"output_tokens"`
	PromptChars  int    `bson:"prompt_chars"`
	ResponseBody string `bson:"response_body,omitempty"`
	ErrorMessage string `bson:"error_message,omitempty"`
}

// EventRepo appends LLM request events for observability.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

type eventRepo struct {
	collection *mongo.Collection
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	doc := struct {
		LLMRequestEventData `bson:",inline"`
		CreatedAt           time.Time `bson:"created_at"`
	}{data, time.Now().UTC()}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}
