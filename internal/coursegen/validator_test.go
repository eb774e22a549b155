package coursegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saksham-is260/BrainForge/internal/course"
)

func settingsFor(modules, questions, flashcards int) course.Settings {
	s := course.DefaultSettings()
	s.Modules = modules
	s.QuestionsPerModule = questions
	s.Flashcards = flashcards
	return s
}

func TestNormalizeRenumbersModules(t *testing.T) {
	doc := &course.Document{Course: course.Course{Modules: []course.Module{
		{ModuleNumber: 7, Title: "First"},
		{ModuleNumber: 7, Title: "Second"},
		{Title: ""},
	}}}

	Normalize(doc, settingsFor(3, 1, 0))

	require.Len(t, doc.Course.Modules, 3)
	for i, m := range doc.Course.Modules {
		assert.Equal(t, i+1, m.ModuleNumber)
	}
	assert.Equal(t, "Module 3: Key Concepts", doc.Course.Modules[2].Title)
	assert.Equal(t, 3, doc.Course.TotalModules)
}

func TestNormalizePadsOptionsToFour(t *testing.T) {
	doc := &course.Document{Course: course.Course{Modules: []course.Module{{
		Title: "M",
		Quiz: course.Quiz{Questions: []course.Question{{
			Question:      "Q?",
			Options:       []string{"first", "B) second", "c. third"},
			CorrectAnswer: "b",
		}}},
	}}}}

	Normalize(doc, settingsFor(1, 1, 0))

	q := doc.Course.Modules[0].Quiz.Questions[0]
	require.Len(t, q.Options, 4)
	assert.Equal(t, "A) first", q.Options[0])
	assert.Equal(t, "B) second", q.Options[1])
	assert.Equal(t, "C) third", q.Options[2])
	assert.Equal(t, "D) Option not available", q.Options[3])
	assert.Equal(t, "B", q.CorrectAnswer)
}

func TestNormalizeTruncatesExtraOptions(t *testing.T) {
	doc := &course.Document{Course: course.Course{Modules: []course.Module{{
		Title: "M",
		Quiz: course.Quiz{Questions: []course.Question{{
			Question:      "Q?",
			Options:       []string{"one", "two", "three", "four", "five", "six"},
			CorrectAnswer: "E",
		}}},
	}}}}

	Normalize(doc, settingsFor(1, 1, 0))

	q := doc.Course.Modules[0].Quiz.Questions[0]
	assert.Len(t, q.Options, 4)
	assert.Equal(t, "A", q.CorrectAnswer, "out-of-range answer falls back to A")
}

func TestNormalizePadsQuestionsNeverTruncates(t *testing.T) {
	short := &course.Document{Course: course.Course{Modules: []course.Module{{
		Title: "M",
		Quiz:  course.Quiz{Questions: []course.Question{{Question: "only one?"}}},
	}}}}
	Normalize(short, settingsFor(1, 3, 0))
	assert.Len(t, short.Course.Modules[0].Quiz.Questions, 3)

	long := &course.Document{Course: course.Course{Modules: []course.Module{{
		Title: "M",
		Quiz: course.Quiz{Questions: []course.Question{
			{Question: "1?"}, {Question: "2?"}, {Question: "3?"}, {Question: "4?"}, {Question: "5?"},
		}},
	}}}}
	Normalize(long, settingsFor(1, 3, 0))
	assert.Len(t, long.Course.Modules[0].Quiz.Questions, 5, "extra questions are kept")
}

func TestNormalizeQuestionDefaults(t *testing.T) {
	doc := &course.Document{Course: course.Course{Modules: []course.Module{{
		Title: "M",
		Quiz:  course.Quiz{Questions: []course.Question{{Question: "Q?"}}},
	}}}}

	Normalize(doc, settingsFor(1, 1, 0))

	q := doc.Course.Modules[0].Quiz.Questions[0]
	assert.Equal(t, "medium", q.Difficulty)
	assert.Equal(t, "General", q.KnowledgeArea)
	assert.NotEmpty(t, q.Explanation)
	assert.NotEmpty(t, q.CommonMistake)
	assert.Equal(t, 5, q.Points)
	assert.Equal(t, 1, q.ID)
}

func TestNormalizeFlashcardsExactCount(t *testing.T) {
	doc := &course.Document{Course: course.Course{
		Modules:    []course.Module{{Title: "M"}},
		Flashcards: []course.Flashcard{{Front: "real card", Back: "answer"}},
	}}

	Normalize(doc, settingsFor(1, 1, 5))

	require.Len(t, doc.Course.Flashcards, 5)
	assert.Equal(t, "real card", doc.Course.Flashcards[0].Front)
	assert.Equal(t, "Key Term 2", doc.Course.Flashcards[1].Front)
	for i, f := range doc.Course.Flashcards {
		assert.Equal(t, i+1, f.ID)
	}
}

func TestNormalizeMetadataDefaults(t *testing.T) {
	doc := &course.Document{Course: course.Course{Modules: []course.Module{{Title: "M"}, {Title: "N"}}}}

	Normalize(doc, settingsFor(2, 1, 0))

	c := doc.Course
	assert.Equal(t, "Comprehensive Learning Course", c.Title)
	assert.Equal(t, "90 minutes", c.EstimatedDuration)
	assert.NotEmpty(t, c.Description)
	assert.NotEmpty(t, c.LearningOutcomes)
	assert.NotEmpty(t, c.Prerequisites)
	assert.NotNil(t, c.CompletionBonus)
}

func TestNormalizeIdempotent(t *testing.T) {
	doc := &course.Document{Course: course.Course{Modules: []course.Module{{
		Title: "M",
		Quiz: course.Quiz{Questions: []course.Question{{
			Question:      "Q?",
			Options:       []string{"A) one", "B) two"},
			CorrectAnswer: "B",
		}}},
	}}}}

	s := settingsFor(1, 2, 3)
	Normalize(doc, s)
	firstPass := *doc

	Normalize(doc, s)
	assert.Equal(t, firstPass.Course.Modules[0].Quiz.Questions, doc.Course.Modules[0].Quiz.Questions)
	assert.Len(t, doc.Course.Flashcards, 3)
	assert.Equal(t, "A) one", doc.Course.Modules[0].Quiz.Questions[0].Options[0], "relabeling must not stack prefixes")
}
