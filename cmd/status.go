package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saksham-is260/BrainForge/internal/app"
)

var statusCmd = &cobra.Command{
	Use:   "status <content-id>",
	Short: "Show batch checkpoints for an in-progress generation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contentID := args[0]

		ctx := cmd.Context()
		a, err := app.New(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		partials, err := a.Store.PartialRepo().GetPartials(ctx, contentID)
		if err != nil {
			return err
		}
		if len(partials) == 0 {
			fmt.Println("no partial batches for this content id")
			return nil
		}

		total := partials[0].TotalBatches
		fmt.Printf("%d/%d batches completed\n", len(partials), total)
		for _, p := range partials {
			fmt.Printf("  batch %d/%d: %d modules (updated %s)\n",
				p.BatchNum, p.TotalBatches, len(p.Course.Modules), p.UpdatedAt.Format("15:04:05"))
		}
		return nil
	},
}
