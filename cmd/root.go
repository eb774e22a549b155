package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brainforge",
	Short: "Turn raw study material into structured courses",
	Long:  "BrainForge — generates complete learning courses (modules, quizzes, flashcards) from extracted text using an LLM pipeline with batching and repair.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
