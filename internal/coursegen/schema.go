package coursegen

import "github.com/saksham-is260/BrainForge/internal/llm"

// DocumentSchema describes the shape a finished course document must have
// after normalization. It is checked once per run as a structural audit
// before storage; requests themselves are sent schema-free because raw
// output goes through the repair pipeline instead.
var DocumentSchema = &llm.Schema{
	Name:        "course-document",
	Description: "A structured learning course with modules, quizzes, and flashcards",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"course"},
		"properties": map[string]any{
			"course": map[string]any{
				"type": "object",
				"required": []any{
					"title", "description", "total_modules", "difficulty",
					"modules", "flashcards",
				},
				"properties": map[string]any{
					"title":              map[string]any{"type": "string", "minLength": 1},
					"description":        map[string]any{"type": "string"},
					"total_modules":      map[string]any{"type": "integer", "minimum": 1},
					"difficulty":         map[string]any{"type": "string"},
					"learning_pace":      map[string]any{"type": "string"},
					"depth_level":        map[string]any{"type": "string"},
					"estimated_duration": map[string]any{"type": "string"},
					"learning_outcomes":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"prerequisites":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"target_audience":    map[string]any{"type": "string"},
					"modules": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    moduleSchema,
					},
					"flashcards": map[string]any{
						"type":  "array",
						"items": flashcardSchema,
					},
					"course_completion_bonus": map[string]any{"type": "object"},
				},
			},
		},
	},
}

var moduleSchema = map[string]any{
	"type":     "object",
	"required": []any{"module_number", "title", "content", "quiz"},
	"properties": map[string]any{
		"module_number":       map[string]any{"type": "integer", "minimum": 1},
		"title":               map[string]any{"type": "string", "minLength": 1},
		"duration_estimate":   map[string]any{"type": "string"},
		"learning_objectives": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"key_concepts":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"content": map[string]any{
			"type":     "object",
			"required": []any{"introduction", "sections"},
			"properties": map[string]any{
				"introduction": map[string]any{"type": "string"},
				"sections": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"heading", "content"},
					},
				},
				"summary": map[string]any{"type": "string"},
			},
		},
		"quiz": map[string]any{
			"type":     "object",
			"required": []any{"questions"},
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": questionSchema,
				},
			},
		},
	},
}

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"question", "options", "correct_answer"},
	"properties": map[string]any{
		"id":       map[string]any{"type": "integer"},
		"question": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "array",
			"minItems": 4,
			"maxItems": 4,
			"items":    map[string]any{"type": "string"},
		},
		"correct_answer": map[string]any{"enum": []any{"A", "B", "C", "D"}},
		"explanation":    map[string]any{"type": "string"},
		"difficulty":     map[string]any{"type": "string"},
		"knowledgeArea":  map[string]any{"type": "string"},
		"commonMistake":  map[string]any{"type": "string"},
		"points":         map[string]any{"type": "integer"},
	},
}

var flashcardSchema = map[string]any{
	"type":     "object",
	"required": []any{"front", "back"},
	"properties": map[string]any{
		"id":               map[string]any{"type": "integer"},
		"front":            map[string]any{"type": "string", "minLength": 1},
		"back":             map[string]any{"type": "string", "minLength": 1},
		"mnemonic":         map[string]any{"type": "string"},
		"category":         map[string]any{"type": "string"},
		"importance":       map[string]any{"type": "string"},
		"visual_cue":       map[string]any{"type": "string"},
		"related_concepts": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"difficulty":       map[string]any{"type": "string"},
	},
}
