package cmd

import (
	"github.com/clinicalnlp/noteval/internal/evalcmd"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Shared task evaluation tools",
		Long: `Evaluation tools for the clinical dialogue/note generation shared task.

Supports scoring dialogue-to-note and note-to-dialogue submissions against the
ground-truth evaluation set, and inspecting a submission file before scoring.`,
	}

	// Add eval subcommands
	cmd.AddCommand(evalcmd.NewNoteCmd())
	cmd.AddCommand(evalcmd.NewDialogueCmd())
	cmd.AddCommand(evalcmd.NewInspectCmd())

	return cmd
}
