package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saksham-is260/BrainForge/internal/app"
	"github.com/saksham-is260/BrainForge/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Save a text file as extracted content",
	Long:  "Reads a plain-text file and stores it as extracted content. The printed content id is what `generate` consumes.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if len(data) == 0 {
			return fmt.Errorf("%s is empty", path)
		}

		ctx := cmd.Context()
		a, err := app.New(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		id, err := a.Store.ContentRepo().Save(ctx, &store.ExtractedContent{
			Filename:   filepath.Base(path),
			SourceType: "text",
			Text:       string(data),
		})
		if err != nil {
			return err
		}

		fmt.Printf("imported %s (%d chars)\ncontent id: %s\n", filepath.Base(path), len(data), id)
		return nil
	},
}
