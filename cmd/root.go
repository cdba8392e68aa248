package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "noteval",
		Short: "Scoring tool for the clinical note generation shared task",
		Long: `Noteval scores shared task submissions of generated clinical text.

Submissions are aligned against the fixed ground-truth evaluation set by id,
then scored with corpus BLEU, ROUGE-1/2/L/Lsum and METEOR. Coverage of the
ground-truth ids is always reported so partial submissions are transparent.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newEvalCmd())

	return cmd
}
