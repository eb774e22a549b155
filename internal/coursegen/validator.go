package coursegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saksham-is260/BrainForge/internal/course"
)

var optionLabelPrefix = regexp.MustCompile(`^[A-Da-d][\)\.:]\s*`)

var optionLabels = [4]string{"A", "B", "C", "D"}

// Normalize forces a repaired document into the guaranteed shape: exact
// module numbering, four labeled options per question, the configured
// question and flashcard counts, and populated metadata. It is idempotent;
// running it twice yields the same document.
func Normalize(doc *course.Document, settings course.Settings) {
	s := settings.Normalized()
	c := &doc.Course

	for i := range c.Modules {
		m := &c.Modules[i]
		m.ModuleNumber = i + 1
		if strings.TrimSpace(m.Title) == "" {
			m.Title = fmt.Sprintf("Module %d: Key Concepts", i+1)
		}
		ensureContent(&m.Content)
		fixQuiz(&m.Quiz, s.QuestionsPerModule)
	}

	padFlashcards(c, s.Flashcards)
	fillMetadata(c, s)
}

func ensureContent(mc *course.ModuleContent) {
	if strings.TrimSpace(mc.Introduction) == "" {
		mc.Introduction = "This module covers the concepts below."
	}
	if len(mc.Sections) == 0 {
		mc.Sections = []course.Section{{
			Heading: "Overview",
			Content: "See the module introduction and quiz for this module's material.",
		}}
	}
}

// fixQuiz normalizes every question to exactly four options labeled by
// position. Existing label prefixes are stripped first so relabeling never
// stacks ("A) A) ..."). Questions are padded to the configured count but
// never truncated: extra model output is kept.
func fixQuiz(quiz *course.Quiz, questionsPerModule int) {
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		q.ID = i + 1

		if len(q.Options) > 4 {
			q.Options = q.Options[:4]
		}
		for len(q.Options) < 4 {
			q.Options = append(q.Options, "Option not available")
		}
		for j, opt := range q.Options {
			bare := optionLabelPrefix.ReplaceAllString(strings.TrimSpace(opt), "")
			if bare == "" {
				bare = "Option not available"
			}
			q.Options[j] = fmt.Sprintf("%s) %s", optionLabels[j], bare)
		}

		answer := strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
		if len(answer) > 0 {
			answer = answer[:1]
		}
		if answer < "A" || answer > "D" {
			answer = "A"
		}
		q.CorrectAnswer = answer

		if strings.TrimSpace(q.Explanation) == "" {
			q.Explanation = "See the module content for the reasoning behind this answer."
		}
		if q.Difficulty == "" {
			q.Difficulty = "medium"
		}
		if q.KnowledgeArea == "" {
			q.KnowledgeArea = "General"
		}
		if q.CommonMistake == "" {
			q.CommonMistake = "Confusing this concept with a related one"
		}
		if q.Points <= 0 {
			q.Points = 5
		}
	}

	for len(quiz.Questions) < questionsPerModule {
		n := len(quiz.Questions) + 1
		quiz.Questions = append(quiz.Questions, course.Question{
			ID:       n,
			Question: fmt.Sprintf("Which statement best summarizes concept %d of this module?", n),
			Options: []string{
				"A) The concept as described in the module content",
				"B) Option not available",
				"C) Option not available",
				"D) Option not available",
			},
			CorrectAnswer: "A",
			Explanation:   "Review the module content for this concept.",
			Difficulty:    "medium",
			KnowledgeArea: "General",
			CommonMistake: "Skipping the module material",
			Points:        5,
		})
	}
}

// padFlashcards fills the deck up to the configured size with placeholder
// cards. Overruns are kept; real model output is never discarded.
func padFlashcards(c *course.Course, target int) {
	for len(c.Flashcards) < target {
		n := len(c.Flashcards) + 1
		c.Flashcards = append(c.Flashcards, course.Flashcard{
			ID:              n,
			Front:           fmt.Sprintf("Key Term %d", n),
			Back:            "Review the course material for this concept",
			Mnemonic:        "Connect this term to an example from the content",
			Category:        "General",
			Importance:      "medium",
			VisualCue:       "Picture the concept in a real situation",
			RelatedConcepts: []string{"Course content"},
			Difficulty:      "medium",
		})
	}
	for i := range c.Flashcards {
		c.Flashcards[i].ID = i + 1
	}
}

func fillMetadata(c *course.Course, s course.Settings) {
	if strings.TrimSpace(c.Title) == "" {
		c.Title = "Comprehensive Learning Course"
	}
	if strings.TrimSpace(c.Description) == "" {
		c.Description = "A structured course generated from your content"
	}
	c.TotalModules = len(c.Modules)
	if c.Difficulty == "" {
		c.Difficulty = s.Difficulty
	}
	if c.LearningPace == "" {
		c.LearningPace = s.LearningPace
	}
	if c.DepthLevel == "" {
		c.DepthLevel = s.DepthLevel
	}
	if strings.TrimSpace(c.EstimatedDuration) == "" {
		c.EstimatedDuration = fmt.Sprintf("%d minutes", len(c.Modules)*45)
	}
	if len(c.LearningOutcomes) == 0 {
		c.LearningOutcomes = []string{"Master the key concepts covered in this course"}
	}
	if len(c.Prerequisites) == 0 {
		c.Prerequisites = []string{"None"}
	}
	if strings.TrimSpace(c.TargetAudience) == "" {
		c.TargetAudience = "Learners working through this material"
	}
	if c.CompletionBonus == nil {
		c.CompletionBonus = course.CompletionBonus{
			"capstone_project":    "Apply the course concepts in a small project",
			"next_learning_steps": []string{"Review the flashcards", "Retake the module quizzes"},
		}
	}
}
