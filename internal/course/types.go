package course

// Document is the wire shape exchanged with the LLM and stored in Mongo.
// The generation prompt asks for a single top-level "course" object.
type Document struct {
	Course Course `json:"course" bson:"course"`
}

// Course is the canonical course object produced by the pipeline.
type Course struct {
	Title             string          `json:"title" bson:"title"`
	Description       string          `json:"description" bson:"description"`
	TotalModules      int             `json:"total_modules" bson:"total_modules"`
	Difficulty        string          `json:"difficulty" bson:"difficulty"`
	LearningPace      string          `json:"learning_pace" bson:"learning_pace"`
	DepthLevel        string          `json:"depth_level" bson:"depth_level"`
	EstimatedDuration string          `json:"estimated_duration" bson:"estimated_duration"`
	LearningOutcomes  []string        `json:"learning_outcomes" bson:"learning_outcomes"`
	Prerequisites     []string        `json:"prerequisites" bson:"prerequisites"`
	TargetAudience    string          `json:"target_audience" bson:"target_audience"`
	Modules           []Module        `json:"modules" bson:"modules"`
	Flashcards        []Flashcard     `json:"flashcards" bson:"flashcards"`
	CompletionBonus   CompletionBonus `json:"course_completion_bonus" bson:"course_completion_bonus"`
}

// CompletionBonus is free-form by design: the model fills it with a capstone
// description and next learning steps, and nothing downstream depends on its
// exact keys.
type CompletionBonus map[string]any

// Module is one unit of the course. ModuleNumber is owned by the pipeline:
// whatever the model reports is overwritten during normalization and merging.
type Module struct {
	ModuleNumber       int           `json:"module_number" bson:"module_number"`
	Title              string        `json:"title" bson:"title"`
	DurationEstimate   string        `json:"duration_estimate" bson:"duration_estimate"`
	LearningObjectives []string      `json:"learning_objectives" bson:"learning_objectives"`
	KeyConcepts        []string      `json:"key_concepts,omitempty" bson:"key_concepts,omitempty"`
	Content            ModuleContent `json:"content" bson:"content"`
	PracticalExercises []Exercise    `json:"practical_exercises,omitempty" bson:"practical_exercises,omitempty"`
	Quiz               Quiz          `json:"quiz" bson:"quiz"`
}

// ModuleContent holds the narrative body of a module.
type ModuleContent struct {
	Introduction string    `json:"introduction" bson:"introduction"`
	Sections     []Section `json:"sections" bson:"sections"`
	Summary      string    `json:"summary" bson:"summary"`
}

// Section is one titled block inside a module.
type Section struct {
	Heading              string          `json:"heading" bson:"heading"`
	Content              string          `json:"content" bson:"content"`
	NotesHierarchy       *NotesHierarchy `json:"notes_hierarchy,omitempty" bson:"notes_hierarchy,omitempty"`
	KeyPoints            []string        `json:"key_points,omitempty" bson:"key_points,omitempty"`
	RealWorldApplication string          `json:"real_world_application,omitempty" bson:"real_world_application,omitempty"`
	CommonMistakes       string          `json:"common_mistakes,omitempty" bson:"common_mistakes,omitempty"`
	BestPractices        []string        `json:"best_practices,omitempty" bson:"best_practices,omitempty"`
}

// NotesHierarchy is the structured note outline attached to a section.
type NotesHierarchy struct {
	MainTopic    string     `json:"main_topic" bson:"main_topic"`
	Subtopics    []Subtopic `json:"subtopics,omitempty" bson:"subtopics,omitempty"`
	KeyTakeaways []string   `json:"key_takeaways,omitempty" bson:"key_takeaways,omitempty"`
}

// Subtopic is one node of a NotesHierarchy.
type Subtopic struct {
	Name              string   `json:"subtopic" bson:"subtopic"`
	Points            []string `json:"points,omitempty" bson:"points,omitempty"`
	SubPoints         []string `json:"sub_points,omitempty" bson:"sub_points,omitempty"`
	ImportantConcepts []string `json:"important_concepts,omitempty" bson:"important_concepts,omitempty"`
}

// Exercise is a hands-on activity attached to a module.
type Exercise struct {
	Title           string   `json:"title" bson:"title"`
	Description     string   `json:"description" bson:"description"`
	Steps           []string `json:"steps,omitempty" bson:"steps,omitempty"`
	ExpectedOutcome string   `json:"expected_outcome,omitempty" bson:"expected_outcome,omitempty"`
}

// Quiz holds the questions for one module.
type Quiz struct {
	Questions []Question `json:"questions" bson:"questions"`
}

// Question is a single multiple-choice quiz question. After normalization it
// always has exactly 4 options labeled "A) ".."D) " and a correct answer in
// {A, B, C, D}. The knowledgeArea/commonMistake keys are camelCase on the
// wire; that is the contract the model is prompted with.
type Question struct {
	ID            int      `json:"id" bson:"id"`
	Question      string   `json:"question" bson:"question"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correct_answer" bson:"correct_answer"`
	Explanation   string   `json:"explanation" bson:"explanation"`
	Difficulty    string   `json:"difficulty" bson:"difficulty"`
	KnowledgeArea string   `json:"knowledgeArea" bson:"knowledgeArea"`
	CommonMistake string   `json:"commonMistake" bson:"commonMistake"`
	Points        int      `json:"points" bson:"points"`
}

// Flashcard is a single spaced-repetition card. IDs are 1-based and
// sequential after normalization.
type Flashcard struct {
	ID              int      `json:"id" bson:"id"`
	Front           string   `json:"front" bson:"front"`
	Back            string   `json:"back" bson:"back"`
	Mnemonic        string   `json:"mnemonic" bson:"mnemonic"`
	Category        string   `json:"category" bson:"category"`
	Importance      string   `json:"importance" bson:"importance"`
	VisualCue       string   `json:"visual_cue" bson:"visual_cue"`
	RelatedConcepts []string `json:"related_concepts" bson:"related_concepts"`
	Difficulty      string   `json:"difficulty" bson:"difficulty"`
}
