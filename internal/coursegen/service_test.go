package coursegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/saksham-is260/BrainForge/internal/course"
	"github.com/saksham-is260/BrainForge/internal/llm"
)

type fakePartialStore struct {
	saved []struct {
		contentID string
		batchNum  int
		total     int
		modules   int
	}
	docs     []*course.Document
	failWith error
}

func (f *fakePartialStore) SavePartial(_ context.Context, doc *course.Document, contentID string, batchNum, totalBatches int) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.saved = append(f.saved, struct {
		contentID string
		batchNum  int
		total     int
		modules   int
	}{contentID, batchNum, totalBatches, len(doc.Course.Modules)})
	f.docs = append(f.docs, doc)
	return fmt.Sprintf("partial-%d", batchNum), nil
}

func batchResponse(titles ...string) llm.MockResponse {
	doc := &course.Document{}
	for i, title := range titles {
		doc.Course.Modules = append(doc.Course.Modules, course.Module{ModuleNumber: i + 1, Title: title})
	}
	doc.Course.Title = "Mock Course"
	buf, _ := json.Marshal(doc)
	return llm.MockResponse{Content: buf}
}

func TestGenerateSingleShot(t *testing.T) {
	mock := llm.NewMockProvider(batchResponse("Only Module"))
	svc := NewService(mock, nil, DefaultConfig())

	s := course.DefaultSettings()
	s.Modules = 4 // under the single-shot threshold

	res, err := svc.Generate(context.Background(), "some source text", s, "content-1")
	if err != nil {
		t.Fatal(err)
	}

	if res.Source != "single" || res.Batched {
		t.Errorf("source = %q, batched = %v", res.Source, res.Batched)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
	if got := mock.Calls[0].MaxTokens; got != DefaultConfig().SingleShotMaxTokens {
		t.Errorf("MaxTokens = %d", got)
	}
	// Normalization pads the short mock response to the requested shape.
	if len(res.Document.Course.Modules) != 1 {
		t.Errorf("modules = %d", len(res.Document.Course.Modules))
	}
	if len(res.Document.Course.Flashcards) != s.Flashcards {
		t.Errorf("flashcards = %d, want %d", len(res.Document.Course.Flashcards), s.Flashcards)
	}
}

func TestGenerateBatched(t *testing.T) {
	mock := llm.NewMockProvider(
		batchResponse("M1", "M2", "M3", "M4"),
		batchResponse("M5", "M6", "M7"),
		batchResponse("M8", "M9", "M10"),
	)
	partials := &fakePartialStore{}
	svc := NewService(mock, partials, DefaultConfig())

	s := course.DefaultSettings()
	s.Modules = 10 // 3 batches: [4 3 3]

	res, err := svc.Generate(context.Background(), "long source text for batching", s, "content-2")
	if err != nil {
		t.Fatal(err)
	}

	if !res.Batched || res.Batches != 3 {
		t.Errorf("batched = %v, batches = %d", res.Batched, res.Batches)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("calls = %d, want 3", mock.CallCount())
	}
	if got := mock.Calls[0].MaxTokens; got != DefaultConfig().BatchMaxTokens {
		t.Errorf("batch MaxTokens = %d", got)
	}
	if len(res.Document.Course.Modules) != 10 {
		t.Errorf("merged modules = %d, want 10", len(res.Document.Course.Modules))
	}
	for i, m := range res.Document.Course.Modules {
		if m.ModuleNumber != i+1 {
			t.Errorf("module %d numbered %d", i, m.ModuleNumber)
		}
	}
	if len(partials.saved) != 3 {
		t.Errorf("partials saved = %d, want 3", len(partials.saved))
	}
	if partials.saved[1].batchNum != 2 || partials.saved[1].contentID != "content-2" {
		t.Errorf("partial checkpoint = %+v", partials.saved[1])
	}
}

func TestGenerateBatchedCheckpointsAreNormalized(t *testing.T) {
	// Raw batch output with model-reported numbering, unlabeled options,
	// and a short quiz: checkpoints must already carry the guaranteed
	// shape, not the raw repaired document.
	rough := func(titles ...string) llm.MockResponse {
		doc := &course.Document{}
		for _, title := range titles {
			doc.Course.Modules = append(doc.Course.Modules, course.Module{
				ModuleNumber: 9,
				Title:        title,
				Quiz: course.Quiz{Questions: []course.Question{{
					Question: "Q?",
					Options:  []string{"first", "second"},
				}}},
			})
		}
		buf, _ := json.Marshal(doc)
		return llm.MockResponse{Content: buf}
	}

	mock := llm.NewMockProvider(
		rough("M1", "M2", "M3"),
		rough("M4", "M5", "M6"),
	)
	partials := &fakePartialStore{}
	svc := NewService(mock, partials, DefaultConfig())

	s := course.DefaultSettings()
	s.Modules = 6 // 2 batches

	if _, err := svc.Generate(context.Background(), "source", s, "content-5"); err != nil {
		t.Fatal(err)
	}

	if len(partials.docs) != 2 {
		t.Fatalf("checkpoints = %d, want 2", len(partials.docs))
	}
	for _, doc := range partials.docs {
		for i, m := range doc.Course.Modules {
			if m.ModuleNumber != i+1 {
				t.Errorf("checkpoint module numbered %d, want %d", m.ModuleNumber, i+1)
			}
			if got := len(m.Quiz.Questions); got != s.QuestionsPerModule {
				t.Errorf("checkpoint quiz has %d questions, want %d", got, s.QuestionsPerModule)
			}
			q := m.Quiz.Questions[0]
			if len(q.Options) != 4 || q.Options[0] != "A) first" {
				t.Errorf("checkpoint options not normalized: %v", q.Options)
			}
		}
	}
}

func TestGenerateBatchedShortfall(t *testing.T) {
	// Retry middleware is absent here, so each batch consumes one canned
	// response; two of three batches fail outright.
	mock := llm.NewMockProvider(
		batchResponse("M1", "M2", "M3", "M4"),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, &fakePartialStore{}, DefaultConfig())

	s := course.DefaultSettings()
	s.Modules = 10

	_, err := svc.Generate(context.Background(), "content", s, "content-3")

	var shortfall *ErrBatchShortfall
	if !errors.As(err, &shortfall) {
		t.Fatalf("err = %v, want ErrBatchShortfall", err)
	}
	if shortfall.Completed != 1 || shortfall.Planned != 3 {
		t.Errorf("shortfall = %+v", shortfall)
	}
}

func TestGenerateUnparseableFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("total nonsense, no json here")})
	svc := NewService(mock, nil, DefaultConfig())

	s := course.DefaultSettings()
	s.Modules = 3

	res, err := svc.Generate(context.Background(), "text", s, "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Strategy != StrategyFallback {
		t.Errorf("strategy = %q, want %q", res.Strategy, StrategyFallback)
	}
	if len(res.Document.Course.Modules) != 3 {
		t.Errorf("fallback modules = %d", len(res.Document.Course.Modules))
	}
}

func TestGenerateTruncatedResponseStillRepairs(t *testing.T) {
	// Enough of the object survives truncation for the longest-brace scan.
	truncated := `{"course": {"title": "Cut Off", "modules": [{"module_number": 1, "title": "M1"}]}} and then the model kept going {`

	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrMaxTokensExceeded{Content: json.RawMessage(truncated)},
	})
	svc := NewService(mock, nil, DefaultConfig())

	s := course.DefaultSettings()
	s.Modules = 2

	res, err := svc.Generate(context.Background(), "text", s, "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Document.Course.Title != "Cut Off" {
		t.Errorf("title = %q", res.Document.Course.Title)
	}
}

func TestGenerateSavePartialFailureIsNotFatal(t *testing.T) {
	mock := llm.NewMockProvider(
		batchResponse("M1", "M2", "M3"),
		batchResponse("M4", "M5", "M6"),
	)
	partials := &fakePartialStore{failWith: errors.New("mongo down")}
	svc := NewService(mock, partials, DefaultConfig())

	s := course.DefaultSettings()
	s.Modules = 6 // 2 batches

	res, err := svc.Generate(context.Background(), "source", s, "content-4")
	if err != nil {
		t.Fatalf("checkpoint failure must not abort the run: %v", err)
	}
	if len(res.Document.Course.Modules) != 6 {
		t.Errorf("modules = %d", len(res.Document.Course.Modules))
	}
}
