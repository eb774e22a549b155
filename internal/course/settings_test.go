package course

import "testing"

func TestNormalizedFillsZeroValues(t *testing.T) {
	s := Settings{}.Normalized()
	def := DefaultSettings()

	if s.Modules != def.Modules {
		t.Errorf("modules = %d, want %d", s.Modules, def.Modules)
	}
	if s.QuestionsPerModule != def.QuestionsPerModule {
		t.Errorf("questions = %d, want %d", s.QuestionsPerModule, def.QuestionsPerModule)
	}
	if s.Difficulty != def.Difficulty || s.LearningPace != def.LearningPace || s.DepthLevel != def.DepthLevel {
		t.Errorf("labels not defaulted: %+v", s)
	}
}

func TestNormalizedKeepsExplicitValues(t *testing.T) {
	s := Settings{
		Modules:            10,
		Difficulty:         "advanced",
		Flashcards:         0, // zero flashcards is a valid choice
		QuestionsPerModule: 5,
	}.Normalized()

	if s.Modules != 10 || s.Difficulty != "advanced" || s.QuestionsPerModule != 5 {
		t.Errorf("explicit values overwritten: %+v", s)
	}
	if s.Flashcards != 0 {
		t.Errorf("flashcards = %d, explicit zero must survive", s.Flashcards)
	}
}

func TestNormalizedNegativeFlashcardsDefaulted(t *testing.T) {
	s := Settings{Flashcards: -1}.Normalized()
	if s.Flashcards != DefaultSettings().Flashcards {
		t.Errorf("flashcards = %d", s.Flashcards)
	}
}
