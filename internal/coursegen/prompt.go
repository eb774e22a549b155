package coursegen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saksham-is260/BrainForge/internal/course"
)

// formattingRules is shared between single-shot and batch prompts. The
// emoji markers are load-bearing: the cleaner strips generic bullets and
// asterisks later, so these are the only list markers that survive into
// the stored course.
const formattingRules = `FORMATTING RULES:
- Introductions and content sections MUST use emoji point-wise format only: markers like "📍 Main point", "🔹 Sub-point"
- Mark important technical terms in **bold**
- No hyphens (-) or plain bullets (•) for list points
- Clear concise explanations with real-world examples
- Proper headings and logical progression from basic to advanced`

const quizRules = `QUIZ RULES:
- Each question must have exactly 4 options labeled A), B), C), D)
- Options must be meaningful and distinct, distractors reflecting common mistakes
- correct_answer must be one of A, B, C, D
- Include an explanation, difficulty, knowledgeArea, commonMistake, and points for every question`

// buildSinglePrompt composes the instruction text for a single-shot run
// covering the full document.
func buildSinglePrompt(content string, s course.Settings) string {
	var b strings.Builder

	b.WriteString("You are an expert course designer. Create a comprehensive learning course using ALL provided content.\n\n")

	b.WriteString("COURSE SETTINGS:\n")
	fmt.Fprintf(&b, "- MODULES: %d\n", s.Modules)
	fmt.Fprintf(&b, "- DIFFICULTY: %s\n", s.Difficulty)
	fmt.Fprintf(&b, "- LEARNING PACE: %s\n", s.LearningPace)
	fmt.Fprintf(&b, "- DEPTH: %s\n", s.DepthLevel)
	fmt.Fprintf(&b, "- FLASHCARDS: EXACTLY %d - generate precisely this many, each with full details\n", s.Flashcards)
	fmt.Fprintf(&b, "- QUESTIONS PER MODULE: exactly %d\n", s.QuestionsPerModule)
	writeFeatureFlags(&b, s)

	b.WriteString("\nCONTENT DISTRIBUTION:\n")
	fmt.Fprintf(&b, "- You have %d characters of content to distribute across %d modules\n", len(content), s.Modules)
	b.WriteString("- Each module covers distinct but connected topics; use every key concept from the provided content\n\n")

	b.WriteString(formattingRules)
	b.WriteString("\n\n")
	b.WriteString(quizRules)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "FLASHCARD RULES:\n- Generate EXACTLY %d flashcards covering key concepts from the entire course\n", s.Flashcards)
	b.WriteString("- Each flashcard needs: id, front, back, mnemonic, category, importance (with reason), visual_cue, related_concepts, difficulty\n\n")

	b.WriteString("RESPONSE STRUCTURE (STRICT JSON, this exact shape):\n")
	b.WriteString(exampleJSON(s, 1, true, s.Flashcards > 0, true))
	b.WriteString("\n\nRespond with VALID JSON ONLY. No markdown fences, no commentary before or after the JSON object.\n\n")

	b.WriteString("CONTENT TO TRANSFORM (USE ALL OF IT):\n")
	b.WriteString(content)

	return b.String()
}

// buildBatchPrompt composes the instruction text for one batch of a
// multi-batch run. Global metadata is requested only from the first active
// batch; flashcards and the completion bonus only from the last. Batch
// position is passed explicitly: a zero flashcard target is a valid setting
// and must not disable the final batch's completion-bonus instructions.
func buildBatchPrompt(segment string, bs course.Settings, batchNum int, plan Plan, prior []*course.Document, includeMetadata, isLastBatch bool) string {
	first, last := plan.ModuleRange(batchNum)

	var b strings.Builder

	fmt.Fprintf(&b, "BATCH %d/%d - COURSE GENERATION\n\n", batchNum, plan.Batches)
	fmt.Fprintf(&b, "Generate %d detailed modules for this batch using ONLY the provided content segment.\n", bs.Modules)
	fmt.Fprintf(&b, "This batch covers modules %d to %d of a %d-module course.\n\n", first, last, sum(plan.Distribution))

	b.WriteString("BATCH SPECIFICS:\n")
	fmt.Fprintf(&b, "- DIFFICULTY: %s, DEPTH: %s, PACE: %s\n", bs.Difficulty, bs.DepthLevel, bs.LearningPace)
	fmt.Fprintf(&b, "- QUESTIONS PER MODULE: exactly %d\n", bs.QuestionsPerModule)
	if includeMetadata {
		b.WriteString("- Include course metadata: title, description, learning_outcomes, prerequisites, target_audience, estimated_duration\n")
	} else {
		b.WriteString("- Do NOT include course metadata (title, description, outcomes) - it comes from an earlier batch\n")
	}
	switch {
	case isLastBatch && bs.Flashcards > 0:
		fmt.Fprintf(&b, "- This is the FINAL batch: include EXACTLY %d flashcards covering the whole course, plus course_completion_bonus\n", bs.Flashcards)
	case isLastBatch:
		b.WriteString("- This is the FINAL batch: include course_completion_bonus (capstone and next learning steps); do NOT include flashcards\n")
	default:
		b.WriteString("- Do NOT include flashcards or course_completion_bonus - they come from the final batch\n")
	}
	writeFeatureFlags(&b, bs)
	b.WriteString("\n")

	if ctx := continuityContext(prior); ctx != "" {
		b.WriteString("CONTINUITY CONTEXT - BUILD ON THIS, DO NOT REPEAT IT:\n")
		b.WriteString(ctx)
		b.WriteString("\n\n")
	}

	b.WriteString(formattingRules)
	b.WriteString("\n\n")
	b.WriteString(quizRules)
	b.WriteString("\n\n")

	b.WriteString("RESPONSE STRUCTURE (STRICT JSON, this exact shape):\n")
	b.WriteString(exampleJSON(bs, first, includeMetadata, isLastBatch && bs.Flashcards > 0, isLastBatch))
	b.WriteString("\n\nRespond with VALID JSON ONLY. No markdown fences, no commentary before or after the JSON object.\n\n")

	fmt.Fprintf(&b, "CONTENT FOR THIS BATCH (use all of it for modules %d to %d):\n", first, last)
	b.WriteString(segment)

	return b.String()
}

func writeFeatureFlags(b *strings.Builder, s course.Settings) {
	if s.IncludePractical {
		b.WriteString("- Include practical_exercises with concrete steps in every module\n")
	}
	if s.IncludeCaseStudies {
		b.WriteString("- Include a real-world case study section in every module\n")
	}
	if s.IncludeExamPrep {
		b.WriteString("- Bias quiz questions toward exam-style phrasing and common traps\n")
	}
}

// continuityContextBudget bounds the prior-batch summary so later prompts
// do not grow with the course.
const continuityContextBudget = 3000

// continuityContext summarizes up to the two most recent partials: module
// titles, leading objectives, and a clipped description.
func continuityContext(prior []*course.Document) string {
	if len(prior) == 0 {
		return ""
	}

	recent := prior
	if len(recent) > 2 {
		recent = recent[len(recent)-2:]
	}

	var b strings.Builder
	for _, p := range recent {
		var titles, objectives []string
		for _, m := range p.Course.Modules {
			titles = append(titles, m.Title)
			if len(m.LearningObjectives) > 0 {
				objectives = append(objectives, m.LearningObjectives[0])
			}
		}
		desc := p.Course.Description
		if len(desc) > 500 {
			desc = desc[:500]
		}
		fmt.Fprintf(&b, "Previous batch modules: %s | Objectives: %s | Summary: %s\n",
			strings.Join(titles, "; "), strings.Join(objectives, "; "), desc)
	}

	out := b.String()
	if len(out) > continuityContextBudget {
		out = out[:continuityContextBudget]
	}
	return out
}

// exampleJSON renders a literal example of the target document shape. It
// doubles as the schema contract the model is held to: the repair and
// validation stages assume exactly these keys.
func exampleJSON(s course.Settings, firstModule int, includeMetadata, includeFlashcards, includeBonus bool) string {
	doc := course.Document{Course: course.Course{
		TotalModules: s.Modules,
		Difficulty:   s.Difficulty,
		LearningPace: s.LearningPace,
		DepthLevel:   s.DepthLevel,
		Modules: []course.Module{
			{
				ModuleNumber:       firstModule,
				Title:              fmt.Sprintf("Module %d: Detailed Title From Content", firstModule),
				DurationEstimate:   "45-60 minutes",
				LearningObjectives: []string{"Objective drawn from the content", "Another objective"},
				KeyConcepts:        []string{"Concept 1", "Concept 2"},
				Content: course.ModuleContent{
					Introduction: "📍 **Key Term 1**: Explanation with example\n🔹 **Key Term 2**: Detailed point-wise explanation",
					Sections: []course.Section{
						{
							Heading: "Section Heading From Content",
							Content: "📍 **Important Term**: Detailed explanation\n🔹 **Another Term**: Explanation with real examples",
							NotesHierarchy: &course.NotesHierarchy{
								MainTopic: "Main Topic",
								Subtopics: []course.Subtopic{
									{
										Name:              "Subtopic Name",
										Points:            []string{"📍 **Key Concept**: Point-wise explanation with a real example"},
										SubPoints:         []string{"📍 Sub-detail 1", "🔹 Sub-detail 2"},
										ImportantConcepts: []string{"📍 **Concept Name**: Explanation with applications"},
									},
								},
								KeyTakeaways: []string{"📍 **Takeaway 1**: key insight", "🔹 **Takeaway 2**: practical tip"},
							},
							KeyPoints:            []string{"📍 **Key point 1**: details", "🔹 **Key point 2**: more details"},
							RealWorldApplication: "📍 Step 1: Description\n🔹 Step 2: Implementation",
							CommonMistakes:       "📍 **Mistake 1**: explanation\n🔹 **Mistake 2**: how to avoid it",
							BestPractices:        []string{"📍 **Practice 1**: step by step", "🔹 **Practice 2**: examples"},
						},
					},
					Summary: "📍 **Main idea 1**\n🔹 **Main idea 2**",
				},
				PracticalExercises: []course.Exercise{
					{
						Title:           "Exercise Title",
						Description:     "📍 Step 1\n🔹 Step 2",
						Steps:           []string{"1. First step details", "2. Second step with example"},
						ExpectedOutcome: "Expected result",
					},
				},
				Quiz: course.Quiz{Questions: []course.Question{
					{
						ID:            1,
						Question:      "Clear question about the module content?",
						Options:       []string{"A) First plausible option", "B) Second plausible option", "C) Third plausible option", "D) Fourth plausible option"},
						CorrectAnswer: "A",
						Explanation:   "📍 Why A is correct\n🔹 Supporting reason",
						Difficulty:    "medium",
						KnowledgeArea: "Specific topic area",
						CommonMistake: "📍 Common error and how to avoid it",
						Points:        5,
					},
				}},
			},
		},
	}}

	if includeMetadata {
		doc.Course.Title = "Course Title"
		doc.Course.Description = "Course description using all key concepts"
		doc.Course.EstimatedDuration = "X-Y hours"
		doc.Course.LearningOutcomes = []string{"Outcome 1", "Outcome 2"}
		doc.Course.Prerequisites = []string{"Basic knowledge of the subject"}
		doc.Course.TargetAudience = "Target audience"
	}

	if includeFlashcards {
		doc.Course.Flashcards = []course.Flashcard{
			{
				ID:              1,
				Front:           "Question or term",
				Back:            "Clear detailed answer",
				Mnemonic:        "Memorization tip: acronym or story for easy recall",
				Category:        "Topic category",
				Importance:      "high - explain why",
				VisualCue:       "Visual memory aid: imagine this image",
				RelatedConcepts: []string{"📍 Related concept 1", "🔹 Related concept 2"},
				Difficulty:      "medium",
			},
		}
	}

	if includeBonus {
		doc.Course.CompletionBonus = course.CompletionBonus{
			"capstone_project":    "📍 Final project step 1\n🔹 Step 2",
			"next_learning_steps": []string{"📍 Next topic 1", "🔹 Resource 2"},
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		// The example is built from static values; this cannot fail.
		panic(err)
	}
	return string(out)
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
