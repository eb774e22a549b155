package coursegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/saksham-is260/BrainForge/internal/course"
	"github.com/saksham-is260/BrainForge/internal/llm"
)

// PartialStore persists per-batch documents so a multi-batch run survives
// individual batch failures and can be inspected mid-flight.
type PartialStore interface {
	SavePartial(ctx context.Context, doc *course.Document, contentID string, batchNum, totalBatches int) (string, error)
}

// Config tunes the generation pipeline.
type Config struct {
	// SingleShotMaxTokens is the output ceiling when the whole course fits
	// in one call.
	SingleShotMaxTokens int

	// BatchMaxTokens is the per-call output ceiling for batched runs.
	BatchMaxTokens int

	Temperature float64
	TopP        float64
	TopK        int

	// RunTimeout bounds a whole generation run. Zero means the caller's
	// context is the only deadline.
	RunTimeout time.Duration

	// Logger receives pipeline progress lines. Nil means silent.
	Logger *log.Logger
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		SingleShotMaxTokens: 32768,
		BatchMaxTokens:      16384,
		Temperature:         0.7,
		TopP:                0.95,
		TopK:                40,
	}
}

// Service runs the course generation pipeline end to end: plan, segment,
// prompt, call, repair, normalize, merge.
type Service struct {
	provider llm.Provider
	partials PartialStore
	cfg      Config
}

// NewService creates a Service. partials may be nil for single-shot-only
// callers; batched runs then skip checkpointing.
func NewService(provider llm.Provider, partials PartialStore, cfg Config) *Service {
	if cfg.SingleShotMaxTokens <= 0 {
		cfg.SingleShotMaxTokens = DefaultConfig().SingleShotMaxTokens
	}
	if cfg.BatchMaxTokens <= 0 {
		cfg.BatchMaxTokens = DefaultConfig().BatchMaxTokens
	}
	return &Service{provider: provider, partials: partials, cfg: cfg}
}

// Result is a finished generation run.
type Result struct {
	Document *course.Document

	// Source is "single" or "batched".
	Source string

	// Strategy records the repair path of the run: for batched runs, the
	// most degraded strategy any batch needed.
	Strategy string

	GenerationTime time.Duration
	Batched        bool
	Batches        int
	Model          string
}

// ErrBatchShortfall reports a batched run where too few batches produced a
// document to assemble a full course.
type ErrBatchShortfall struct {
	Completed int
	Planned   int
}

func (e *ErrBatchShortfall) Error() string {
	return fmt.Sprintf("only %d of %d batches completed", e.Completed, e.Planned)
}

// Generate turns extracted content into a validated course document.
// contentID keys the partial checkpoints for batched runs.
func (s *Service) Generate(ctx context.Context, content string, settings course.Settings, contentID string) (*Result, error) {
	settings = settings.Normalized()

	if s.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RunTimeout)
		defer cancel()
	}

	start := time.Now()
	plan := PlanBatches(settings.Modules)

	if plan.Batches == 1 {
		res, err := s.generateSingle(ctx, content, settings)
		if err != nil {
			return nil, err
		}
		res.GenerationTime = time.Since(start)
		return res, nil
	}

	res, err := s.generateBatched(ctx, content, settings, contentID, plan)
	if err != nil {
		return nil, err
	}
	res.GenerationTime = time.Since(start)
	return res, nil
}

func (s *Service) generateSingle(ctx context.Context, content string, settings course.Settings) (*Result, error) {
	s.logf("single-shot generation: %d modules, %d chars", settings.Modules, len(content))

	raw, err := s.call(llm.WithPurpose(ctx, "course-single"), buildSinglePrompt(content, settings), s.cfg.SingleShotMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("generating course: %w", err)
	}

	doc, strategy := s.finalize(raw, settings)
	return &Result{
		Document: doc,
		Source:   "single",
		Strategy: strategy,
		Batches:  1,
		Model:    s.provider.ModelID(),
	}, nil
}

func (s *Service) generateBatched(ctx context.Context, content string, settings course.Settings, contentID string, plan Plan) (*Result, error) {
	// Batches assigned zero modules are skipped without a transport call.
	// Metadata and flashcard duties follow the first and last active batch.
	firstActive, lastActive := 0, 0
	active := 0
	for i, n := range plan.Distribution {
		if n > 0 {
			if firstActive == 0 {
				firstActive = i + 1
			}
			lastActive = i + 1
			active++
		}
	}
	if active == 0 {
		return nil, fmt.Errorf("batch plan assigns no modules")
	}

	s.logf("batched generation: %d modules across %d batches %v", settings.Modules, plan.Batches, plan.Distribution)

	var completed []*course.Document
	worst := StrategyCleaned

	for batchNum := 1; batchNum <= plan.Batches; batchNum++ {
		moduleCount := plan.Distribution[batchNum-1]
		if moduleCount == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bs := settings
		bs.Modules = moduleCount
		if batchNum != lastActive {
			bs.Flashcards = 0
		}

		segment := ContentSegment(content, batchNum, plan.Batches, settings.Modules)
		prompt := buildBatchPrompt(segment, bs, batchNum, plan, completed, batchNum == firstActive, batchNum == lastActive)

		purpose := fmt.Sprintf("course-batch-%d/%d", batchNum, plan.Batches)
		raw, err := s.call(llm.WithPurpose(ctx, purpose), prompt, s.cfg.BatchMaxTokens)
		if err != nil {
			// A failed batch does not abort the run; the shortfall check
			// below decides whether enough survived.
			s.logf("batch %d/%d failed: %v", batchNum, plan.Batches, err)
			continue
		}

		// Each partial is fully normalized before it is checkpointed or
		// accumulated: external readers of in-progress runs see the same
		// guaranteed shape as the final document. The merge pass re-applies
		// normalization idempotently for global renumbering.
		doc, strategy := Repair(raw, bs)
		CleanSymbols(doc)
		Normalize(doc, bs)
		worst = worseStrategy(worst, strategy)
		s.logf("batch %d/%d repaired via %s: %d modules", batchNum, plan.Batches, strategy, len(doc.Course.Modules))

		if s.partials != nil && contentID != "" {
			if _, err := s.partials.SavePartial(ctx, doc, contentID, batchNum, plan.Batches); err != nil {
				s.logf("saving partial for batch %d: %v", batchNum, err)
			}
		}

		completed = append(completed, doc)
	}

	if len(completed) < active {
		return nil, &ErrBatchShortfall{Completed: len(completed), Planned: active}
	}

	merged := MergePartials(completed, settings)
	Normalize(merged, settings)
	s.audit(merged)

	return &Result{
		Document: merged,
		Source:   "batched",
		Strategy: worst,
		Batched:  true,
		Batches:  plan.Batches,
		Model:    s.provider.ModelID(),
	}, nil
}

// call performs one transport round trip and returns the raw text. A
// truncated response that still carries content is returned for repair
// rather than treated as a failure.
func (s *Service) call(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: s.cfg.Temperature,
		TopP:        s.cfg.TopP,
		TopK:        s.cfg.TopK,
	})
	if err != nil {
		var truncated *llm.ErrMaxTokensExceeded
		if errors.As(err, &truncated) && len(truncated.Content) > 0 {
			s.logf("response truncated at %d tokens, attempting repair", maxTokens)
			return string(truncated.Content), nil
		}
		return "", err
	}
	return string(resp.Content), nil
}

// finalize runs the post-transport stages for a single-shot response.
func (s *Service) finalize(raw string, settings course.Settings) (*course.Document, string) {
	doc, strategy := Repair(raw, settings)
	CleanSymbols(doc)
	Normalize(doc, settings)
	s.audit(doc)
	s.logf("course finalized via %s: %d modules, %d flashcards", strategy, len(doc.Course.Modules), len(doc.Course.Flashcards))
	return doc, strategy
}

// audit checks the finished document against the published shape. A
// violation is a pipeline bug, not a model failure, so it is logged rather
// than returned.
func (s *Service) audit(doc *course.Document) {
	buf, err := json.Marshal(doc)
	if err != nil {
		s.logf("audit: marshaling document: %v", err)
		return
	}
	if err := llm.Validate(DocumentSchema, buf); err != nil {
		s.logf("audit: document shape violation: %v", err)
	}
}

// worseStrategy orders repair strategies by degradation.
func worseStrategy(a, b string) string {
	rank := map[string]int{StrategyCleaned: 0, StrategyLongestBrace: 1, StrategyFallback: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

func (s *Service) logf(format string, args ...any) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Printf(format, args...)
	}
}
