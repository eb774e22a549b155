package coursegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saksham-is260/BrainForge/internal/course"
)

func partialDoc(titles ...string) *course.Document {
	doc := &course.Document{}
	for i, title := range titles {
		doc.Course.Modules = append(doc.Course.Modules, course.Module{
			ModuleNumber: i + 1,
			Title:        title,
		})
	}
	return doc
}

func TestMergePartialsRenumbersAcrossBatches(t *testing.T) {
	p1 := partialDoc("One", "Two", "Three", "Four")
	p1.Course.Title = "Merged Course"
	p1.Course.Description = "from the first batch"

	p2 := partialDoc("Five", "Six", "Seven")
	p2.Course.Flashcards = []course.Flashcard{{ID: 1, Front: "card", Back: "back"}}
	p2.Course.CompletionBonus = course.CompletionBonus{"capstone_project": "build something"}

	merged := MergePartials([]*course.Document{p1, p2}, course.DefaultSettings())

	require.Len(t, merged.Course.Modules, 7)
	for i, m := range merged.Course.Modules {
		assert.Equal(t, i+1, m.ModuleNumber)
	}
	assert.Equal(t, "Five", merged.Course.Modules[4].Title)
	assert.Equal(t, 7, merged.Course.TotalModules)
}

func TestMergePartialsMetadataFromFirstFlashcardsFromLast(t *testing.T) {
	p1 := partialDoc("One")
	p1.Course.Title = "Real Title"
	p1.Course.LearningOutcomes = []string{"outcome"}
	p1.Course.Flashcards = []course.Flashcard{{Front: "stray early card"}}

	p2 := partialDoc("Two")
	p2.Course.Title = "Ignored Title"
	p2.Course.Flashcards = []course.Flashcard{{Front: "final card"}}
	p2.Course.CompletionBonus = course.CompletionBonus{"next_learning_steps": []string{"more"}}

	merged := MergePartials([]*course.Document{p1, p2}, course.DefaultSettings())

	assert.Equal(t, "Real Title", merged.Course.Title)
	assert.Equal(t, []string{"outcome"}, merged.Course.LearningOutcomes)
	require.Len(t, merged.Course.Flashcards, 1)
	assert.Equal(t, "final card", merged.Course.Flashcards[0].Front)
	assert.Contains(t, merged.Course.CompletionBonus, "next_learning_steps")
}

func TestMergePartialsEmptyFallsBack(t *testing.T) {
	settings := course.DefaultSettings()
	merged := MergePartials(nil, settings)

	require.NotNil(t, merged)
	assert.Len(t, merged.Course.Modules, settings.Modules)
}
