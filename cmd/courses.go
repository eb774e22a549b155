package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saksham-is260/BrainForge/internal/app"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List recently generated courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt64("limit")

		ctx := cmd.Context()
		a, err := app.New(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		records, err := a.Store.CourseRepo().GetRecent(ctx, limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no courses yet")
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Course.Title)
			fmt.Printf("    id: %s  modules: %d  flashcards: %d  source: %s  model: %s\n",
				r.ID, len(r.Course.Modules), len(r.Course.Flashcards), r.Metadata.Source, r.Metadata.Model)
		}
		return nil
	},
}

func init() {
	coursesCmd.Flags().Int64("limit", 5, "number of courses to list")
}
