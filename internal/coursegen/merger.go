package coursegen

import (
	"github.com/saksham-is260/BrainForge/internal/course"
)

// MergePartials combines per-batch documents into one course. Metadata comes
// from the first partial, flashcards and the completion bonus from the last,
// and modules are concatenated in partial order and renumbered globally. The
// result still goes through Normalize, so shortfalls here are filled later.
func MergePartials(partials []*course.Document, settings course.Settings) *course.Document {
	if len(partials) == 0 {
		return FallbackDocument(settings)
	}

	first := partials[0].Course
	last := partials[len(partials)-1].Course

	merged := course.Course{
		Title:             first.Title,
		Description:       first.Description,
		Difficulty:        first.Difficulty,
		LearningPace:      first.LearningPace,
		DepthLevel:        first.DepthLevel,
		EstimatedDuration: first.EstimatedDuration,
		LearningOutcomes:  first.LearningOutcomes,
		Prerequisites:     first.Prerequisites,
		TargetAudience:    first.TargetAudience,
		Flashcards:        last.Flashcards,
		CompletionBonus:   last.CompletionBonus,
	}

	for _, p := range partials {
		merged.Modules = append(merged.Modules, p.Course.Modules...)
	}
	for i := range merged.Modules {
		merged.Modules[i].ModuleNumber = i + 1
	}
	merged.TotalModules = len(merged.Modules)

	return &course.Document{Course: merged}
}
