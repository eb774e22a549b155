package course

// Settings configures one generation run. It is read-only for the duration
// of the run; per-batch overrides are derived copies, never mutations.
type Settings struct {
	// Modules is the target module count for the whole course.
	Modules int

	// Difficulty is "beginner", "intermediate", or "advanced".
	Difficulty string

	// LearningPace is "slow", "medium", or "fast".
	LearningPace string

	// DepthLevel is "overview", "detailed", or "comprehensive".
	DepthLevel string

	// Flashcards is the minimum number of flashcards the final course must
	// contain. Shortfalls are padded with placeholders, never truncated.
	Flashcards int

	// QuestionsPerModule is the exact quiz length per module.
	QuestionsPerModule int

	IncludePractical   bool
	IncludeCaseStudies bool
	IncludeExamPrep    bool
}

// DefaultSettings mirrors the defaults the upload flow applies when the
// caller omits options.
func DefaultSettings() Settings {
	return Settings{
		Modules:            4,
		Difficulty:         "beginner",
		LearningPace:       "medium",
		DepthLevel:         "comprehensive",
		Flashcards:         15,
		QuestionsPerModule: 3,
		IncludePractical:   true,
	}
}

// Normalized returns a copy with zero or unrecognized values replaced by
// defaults, so the pipeline never sees a degenerate configuration.
func (s Settings) Normalized() Settings {
	def := DefaultSettings()
	if s.Modules < 1 {
		s.Modules = def.Modules
	}
	if s.QuestionsPerModule < 1 {
		s.QuestionsPerModule = def.QuestionsPerModule
	}
	if s.Flashcards < 0 {
		s.Flashcards = def.Flashcards
	}
	if s.Difficulty == "" {
		s.Difficulty = def.Difficulty
	}
	if s.LearningPace == "" {
		s.LearningPace = def.LearningPace
	}
	if s.DepthLevel == "" {
		s.DepthLevel = def.DepthLevel
	}
	return s
}
