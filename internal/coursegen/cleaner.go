package coursegen

import (
	"regexp"
	"strings"

	"github.com/saksham-is260/BrainForge/internal/course"
)

// strippedSymbols are decorative markers models sprinkle into narrative
// text. The 📍 and 🔹 bullets are deliberately absent: prompts mandate them
// as structural list markers and the frontend renders them. 📋 is likewise
// kept as a section marker.
var strippedSymbols = []string{"*", "•", "⭐", "🎯", "🚀", "📚", "🔄", "💡", "🎨"}

var horizontalSpace = regexp.MustCompile(`[ \t]+`)

// CleanSymbols strips decorative symbols and collapses runs of whitespace
// across every narrative field of the document, in place. Quiz options are
// exempt: their "A) " labels are positional and rewriting them would
// desynchronize correct_answer.
func CleanSymbols(doc *course.Document) {
	c := &doc.Course

	c.Title = cleanText(c.Title)
	c.Description = cleanText(c.Description)
	c.TargetAudience = cleanText(c.TargetAudience)
	cleanSlice(c.LearningOutcomes)
	cleanSlice(c.Prerequisites)

	for i := range c.Modules {
		cleanModule(&c.Modules[i])
	}
	for i := range c.Flashcards {
		f := &c.Flashcards[i]
		f.Front = cleanText(f.Front)
		f.Back = cleanText(f.Back)
		f.Mnemonic = cleanText(f.Mnemonic)
		f.VisualCue = cleanText(f.VisualCue)
		cleanSlice(f.RelatedConcepts)
	}
}

func cleanModule(m *course.Module) {
	m.Title = cleanText(m.Title)
	cleanSlice(m.LearningObjectives)
	cleanSlice(m.KeyConcepts)

	m.Content.Introduction = cleanText(m.Content.Introduction)
	m.Content.Summary = cleanText(m.Content.Summary)
	for i := range m.Content.Sections {
		s := &m.Content.Sections[i]
		s.Heading = cleanText(s.Heading)
		s.Content = cleanText(s.Content)
		s.RealWorldApplication = cleanText(s.RealWorldApplication)
		s.CommonMistakes = cleanText(s.CommonMistakes)
		cleanSlice(s.KeyPoints)
		cleanSlice(s.BestPractices)
		if nh := s.NotesHierarchy; nh != nil {
			nh.MainTopic = cleanText(nh.MainTopic)
			cleanSlice(nh.KeyTakeaways)
			for j := range nh.Subtopics {
				st := &nh.Subtopics[j]
				st.Name = cleanText(st.Name)
				cleanSlice(st.Points)
				cleanSlice(st.SubPoints)
				cleanSlice(st.ImportantConcepts)
			}
		}
	}

	for i := range m.PracticalExercises {
		e := &m.PracticalExercises[i]
		e.Title = cleanText(e.Title)
		e.Description = cleanText(e.Description)
		e.ExpectedOutcome = cleanText(e.ExpectedOutcome)
		cleanSlice(e.Steps)
	}

	for i := range m.Quiz.Questions {
		q := &m.Quiz.Questions[i]
		q.Question = cleanText(q.Question)
		q.Explanation = cleanText(q.Explanation)
		q.CommonMistake = cleanText(q.CommonMistake)
		// q.Options untouched.
	}
}

func cleanText(s string) string {
	if s == "" {
		return s
	}
	for _, sym := range strippedSymbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = horizontalSpace.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func cleanSlice(xs []string) {
	for i, x := range xs {
		xs[i] = cleanText(x)
	}
}
