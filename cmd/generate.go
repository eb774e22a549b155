package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/saksham-is260/BrainForge/internal/app"
	"github.com/saksham-is260/BrainForge/internal/course"
	"github.com/saksham-is260/BrainForge/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a course from stored or local content",
	Long:  "Runs the full generation pipeline over extracted content (by --content-id) or a local text file (--file) and stores the finished course.",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("content-id", "", "id of previously imported content")
	f.String("file", "", "generate directly from a local text file")
	f.Int("modules", 0, "number of modules (default 4)")
	f.String("difficulty", "", "beginner, intermediate, or advanced")
	f.String("pace", "", "learning pace: slow, medium, fast")
	f.String("depth", "", "depth level: overview, standard, comprehensive")
	f.Int("flashcards", -1, "exact flashcard count (default 15)")
	f.Int("questions", 0, "quiz questions per module (default 3)")
	f.Bool("practical", true, "include practical exercises")
	f.Bool("case-studies", false, "include case studies")
	f.Bool("exam-prep", false, "bias quizzes toward exam preparation")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	contentID, _ := cmd.Flags().GetString("content-id")
	file, _ := cmd.Flags().GetString("file")
	if (contentID == "") == (file == "") {
		return fmt.Errorf("exactly one of --content-id or --file is required")
	}

	ctx := cmd.Context()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	var text string
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		text = string(data)
		// Register the file so the run has a content id for checkpoints.
		contentID, err = a.Store.ContentRepo().Save(ctx, &store.ExtractedContent{
			Filename:   file,
			SourceType: "text",
			Text:       text,
		})
		if err != nil {
			return err
		}
	} else {
		content, err := a.Store.ContentRepo().GetByID(ctx, contentID)
		if err != nil {
			return err
		}
		text = content.Text
	}
	if text == "" {
		return fmt.Errorf("content is empty")
	}

	settings := settingsFromFlags(cmd)
	res, err := a.Courses.Generate(ctx, text, settings, contentID)
	if err != nil {
		return fmt.Errorf("generating course: %w", err)
	}

	courseID, err := a.Store.CourseRepo().SaveFinal(ctx, res.Document, contentID, store.CourseMetadata{
		Source:         res.Source,
		GenerationTime: res.GenerationTime,
		Batched:        res.Batched,
		Batches:        res.Batches,
		Model:          res.Model,
	})
	if err != nil {
		return fmt.Errorf("saving course: %w", err)
	}

	// Checkpoints have served their purpose once the final course is saved.
	if res.Batched {
		if err := a.Store.PartialRepo().DeletePartials(ctx, contentID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cleaning up partials: %v\n", err)
		}
	}

	c := res.Document.Course
	fmt.Printf("course: %s\n", c.Title)
	fmt.Printf("  id: %s\n", courseID)
	fmt.Printf("  modules: %d, flashcards: %d\n", len(c.Modules), len(c.Flashcards))
	fmt.Printf("  source: %s (%d batches), model: %s, took %s\n", res.Source, res.Batches, res.Model, res.GenerationTime.Round(100*time.Millisecond))
	if res.Strategy != "cleaned" {
		fmt.Printf("  note: output needed %s repair\n", res.Strategy)
	}
	return nil
}

func settingsFromFlags(cmd *cobra.Command) course.Settings {
	s := course.DefaultSettings()
	f := cmd.Flags()

	if v, _ := f.GetInt("modules"); v > 0 {
		s.Modules = v
	}
	if v, _ := f.GetString("difficulty"); v != "" {
		s.Difficulty = v
	}
	if v, _ := f.GetString("pace"); v != "" {
		s.LearningPace = v
	}
	if v, _ := f.GetString("depth"); v != "" {
		s.DepthLevel = v
	}
	if v, _ := f.GetInt("flashcards"); v >= 0 {
		s.Flashcards = v
	}
	if v, _ := f.GetInt("questions"); v > 0 {
		s.QuestionsPerModule = v
	}
	s.IncludePractical, _ = f.GetBool("practical")
	s.IncludeCaseStudies, _ = f.GetBool("case-studies")
	s.IncludeExamPrep, _ = f.GetBool("exam-prep")

	return s.Normalized()
}
