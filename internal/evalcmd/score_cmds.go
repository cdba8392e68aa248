// Package evalcmd implements the eval subcommands of the noteval CLI.
package evalcmd

import (
	"fmt"
	"os"

	"github.com/clinicalnlp/noteval/internal/dataset"
	"github.com/spf13/cobra"
)

// defaultGroundTruth is the built-in path to the shared task evaluation set.
const defaultGroundTruth = "dataset/shared_task_eval.csv"

// groundTruthEnv overrides the built-in ground-truth path when set.
const groundTruthEnv = "NOTEVAL_GROUND_TRUTH"

type scoreFlags struct {
	submission  string
	groundTruth string
	output      string
	yamlReport  string
	noStemmer   bool
}

func (f *scoreFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.submission, "submission", "", "Path to submission file (required)")
	cmd.Flags().StringVar(&f.groundTruth, "ground-truth", "", "Path to ground truth file (default: $"+groundTruthEnv+" or "+defaultGroundTruth+")")
	cmd.Flags().StringVar(&f.output, "output", "", "Path to results CSV (default: results/<submission>_eval.csv)")
	cmd.Flags().StringVar(&f.yamlReport, "yaml-report", "", "Optional path for a detailed YAML report")
	cmd.Flags().BoolVar(&f.noStemmer, "no-stemmer", false, "Disable Porter stemming in ROUGE")

	_ = cmd.MarkFlagRequired("submission")
}

// resolveGroundTruth applies the flag > env > built-in default precedence.
func (f *scoreFlags) resolveGroundTruth() string {
	if f.groundTruth != "" {
		return f.groundTruth
	}
	if env := os.Getenv(groundTruthEnv); env != "" {
		return env
	}
	return defaultGroundTruth
}

// NewNoteCmd creates the command scoring dialogue-to-note submissions.
func NewNoteCmd() *cobra.Command {
	var flags scoreFlags

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Score a dialogue-to-note submission",
		Long: `Score a dialogue-to-note submission against the ground-truth notes.

The submission must contain columns id and generated_note. Every ground-truth
id is scored; ids missing from the submission are scored as empty strings and
reported in the coverage figure.`,
		Example: `  # Score a submission with the default ground truth
  noteval eval note --submission team_submission.csv

  # Explicit ground truth and output paths
  noteval eval note --submission team_submission.csv --ground-truth eval_set.csv --output results.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(flags.submission); os.IsNotExist(err) {
				return fmt.Errorf("submission file not found: %s", flags.submission)
			}
			return executeScore(dataset.DialogueToNote, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// NewDialogueCmd creates the command scoring note-to-dialogue submissions.
func NewDialogueCmd() *cobra.Command {
	var flags scoreFlags

	cmd := &cobra.Command{
		Use:   "dialogue",
		Short: "Score a note-to-dialogue submission",
		Long: `Score a note-to-dialogue submission against the ground-truth dialogues.

The submission must contain columns id and generated_dialogue. Every
ground-truth id is scored; ids missing from the submission are scored as
empty strings and reported in the coverage figure.`,
		Example: `  # Score a submission with the default ground truth
  noteval eval dialogue --submission team_submission.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(flags.submission); os.IsNotExist(err) {
				return fmt.Errorf("submission file not found: %s", flags.submission)
			}
			return executeScore(dataset.NoteToDialogue, flags)
		},
	}

	flags.register(cmd)
	return cmd
}
