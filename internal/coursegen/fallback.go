package coursegen

import (
	"fmt"

	"github.com/saksham-is260/BrainForge/internal/course"
)

// FallbackDocument builds a minimal but structurally complete course for the
// requested settings. Generation never returns nothing: when every repair
// strategy fails the caller stores this placeholder instead, so downstream
// consumers always see a well-formed document.
func FallbackDocument(settings course.Settings) *course.Document {
	s := settings.Normalized()

	modules := make([]course.Module, s.Modules)
	for i := range modules {
		n := i + 1
		modules[i] = course.Module{
			ModuleNumber:       n,
			Title:              fmt.Sprintf("Module %d: Course Content", n),
			DurationEstimate:   "45-60 minutes",
			LearningObjectives: []string{"Understand the core concepts of this module"},
			KeyConcepts:        []string{"Key concepts from the provided content"},
			Content: course.ModuleContent{
				Introduction: "This module covers important concepts from your content.",
				Sections: []course.Section{
					{
						Heading:   fmt.Sprintf("Module %d Content", n),
						Content:   "Content processing encountered an issue. Please try regenerating this course.",
						KeyPoints: []string{"Content available for review"},
					},
				},
				Summary: "Module summary unavailable.",
			},
			Quiz: course.Quiz{Questions: fallbackQuestions(s.QuestionsPerModule)},
		}
	}

	doc := &course.Document{Course: course.Course{
		Title:             "Generated Course",
		Description:       "Course generated from your content",
		TotalModules:      s.Modules,
		Difficulty:        s.Difficulty,
		LearningPace:      s.LearningPace,
		DepthLevel:        s.DepthLevel,
		EstimatedDuration: fmt.Sprintf("%d minutes", s.Modules*45),
		LearningOutcomes:  []string{"Complete understanding of the provided material"},
		Prerequisites:     []string{"None"},
		TargetAudience:    "Learners working through this material",
		Modules:           modules,
		Flashcards:        fallbackFlashcards(s.Flashcards),
		CompletionBonus: course.CompletionBonus{
			"capstone_project":    "Review all module content and create a summary",
			"next_learning_steps": []string{"Revisit the source material", "Regenerate the course"},
		},
	}}

	return doc
}

func fallbackQuestions(count int) []course.Question {
	qs := make([]course.Question, count)
	for i := range qs {
		qs[i] = course.Question{
			ID:       i + 1,
			Question: fmt.Sprintf("Review question %d about the module content?", i+1),
			Options: []string{
				"A) Review the material",
				"B) Option not available",
				"C) Option not available",
				"D) Option not available",
			},
			CorrectAnswer: "A",
			Explanation:   "Review the module content for details.",
			Difficulty:    "medium",
			KnowledgeArea: "General",
			CommonMistake: "Skipping the source material",
			Points:        5,
		}
	}
	return qs
}

func fallbackFlashcards(count int) []course.Flashcard {
	cards := make([]course.Flashcard, count)
	for i := range cards {
		cards[i] = course.Flashcard{
			ID:              i + 1,
			Front:           fmt.Sprintf("Key Term %d", i+1),
			Back:            "Review the course material for this concept",
			Mnemonic:        "Connect this term to an example from the content",
			Category:        "General",
			Importance:      "medium",
			VisualCue:       "Picture the concept in a real situation",
			RelatedConcepts: []string{"Course content"},
			Difficulty:      "medium",
		}
	}
	return cards
}
