package coursegen

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/saksham-is260/BrainForge/internal/course"
)

// Repair strategies, in the order they are attempted. The returned strategy
// string is recorded on the run so degraded outputs can be traced back to
// the parse path that produced them.
const (
	StrategyCleaned      = "cleaned"
	StrategyLongestBrace = "longest-brace"
	StrategyFallback     = "fallback"
)

// Repair turns raw model output into a parsed document. It never fails:
// when no JSON object can be recovered the placeholder document for the
// requested settings is returned with StrategyFallback.
func Repair(raw string, settings course.Settings) (*course.Document, string) {
	if doc, err := parseDocument(cleanedCandidate(raw)); err == nil {
		return doc, StrategyCleaned
	}

	if span := longestBraceSpan(raw); span != "" {
		if doc, err := parseDocument(span); err == nil {
			return doc, StrategyLongestBrace
		}
	}

	return FallbackDocument(settings), StrategyFallback
}

// cleanedCandidate strips markdown fences and any prose surrounding the
// outermost brace pair.
func cleanedCandidate(raw string) string {
	s := strings.TrimSpace(raw)

	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}

	return strings.TrimSpace(s)
}

// longestBraceSpan scans for the longest balanced-brace substring. It
// recovers a complete object embedded in output where the trailing text
// itself contains stray braces, which defeats the first/last heuristic.
func longestBraceSpan(raw string) string {
	var best string
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i, c := range raw {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && i+1-start > len(best) {
					best = raw[start : i+1]
				}
			}
		}
	}
	return best
}

// fieldAliases maps camelCase key variants the model emits to the snake_case
// keys the document types expect. knowledgeArea and commonMistake are NOT
// here: the stored format keeps them camelCase.
var fieldAliases = map[string]string{
	"moduleNumber":          "module_number",
	"Heading":               "heading",
	"correctAnswer":         "correct_answer",
	"durationEstimate":      "duration_estimate",
	"learningObjectives":    "learning_objectives",
	"learningOutcomes":      "learning_outcomes",
	"targetAudience":        "target_audience",
	"estimatedDuration":     "estimated_duration",
	"visualCue":             "visual_cue",
	"relatedConcepts":       "related_concepts",
	"practicalExercises":    "practical_exercises",
	"notesHierarchy":        "notes_hierarchy",
	"keyPoints":             "key_points",
	"keyConcepts":           "key_concepts",
	"totalModules":          "total_modules",
	"learningPace":          "learning_pace",
	"depthLevel":            "depth_level",
	"mainTopic":             "main_topic",
	"keyTakeaways":          "key_takeaways",
	"subPoints":             "sub_points",
	"importantConcepts":     "important_concepts",
	"realWorldApplication":  "real_world_application",
	"commonMistakes":        "common_mistakes",
	"bestPractices":         "best_practices",
	"expectedOutcome":       "expected_outcome",
	"courseCompletionBonus": "course_completion_bonus",
}

// parseDocument unmarshals a candidate JSON object, canonicalizes key
// spelling, and wraps a bare course object in the document envelope.
func parseDocument(candidate string) (*course.Document, error) {
	if candidate == "" {
		return nil, errors.New("empty candidate")
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(candidate), &m); err != nil {
		return nil, err
	}

	normalized := normalizeKeys(m).(map[string]any)
	if _, ok := normalized["course"]; !ok {
		normalized = map[string]any{"course": normalized}
	}

	buf, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}

	var doc course.Document
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// normalizeKeys rewrites aliased keys recursively through maps and slices.
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if canonical, ok := fieldAliases[k]; ok {
				k = canonical
			}
			out[k] = normalizeKeys(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeKeys(val)
		}
		return t
	default:
		return v
	}
}
