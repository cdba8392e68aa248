package evalcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/clinicalnlp/noteval/internal/align"
	"github.com/clinicalnlp/noteval/internal/dataset"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the pre-flight submission check command.
func NewInspectCmd() *cobra.Command {
	var submission string
	var groundTruth string
	var directionName string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Validate a submission file without scoring it",
		Long: `Check a submission file before scoring: verifies the required columns are
present, reports duplicate and missing ids, and shows the coverage the
submission would achieve. No metrics are computed.`,
		Example: `  # Check a dialogue-to-note submission
  noteval eval inspect --submission team_submission.csv

  # Check a note-to-dialogue submission
  noteval eval inspect --submission team_submission.csv --direction note-to-dialogue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(submission); os.IsNotExist(err) {
				return fmt.Errorf("submission file not found: %s", submission)
			}

			direction := dataset.Direction(directionName)
			switch direction {
			case dataset.DialogueToNote, dataset.NoteToDialogue:
			default:
				return fmt.Errorf("unsupported direction: %s", directionName)
			}

			flags := scoreFlags{groundTruth: groundTruth}
			return executeInspect(direction, submission, flags.resolveGroundTruth())
		},
	}

	cmd.Flags().StringVar(&submission, "submission", "", "Path to submission file (required)")
	cmd.Flags().StringVar(&groundTruth, "ground-truth", "", "Path to ground truth file (default: $"+groundTruthEnv+" or "+defaultGroundTruth+")")
	cmd.Flags().StringVar(&directionName, "direction", string(dataset.DialogueToNote), "Task direction (dialogue-to-note or note-to-dialogue)")

	_ = cmd.MarkFlagRequired("submission")
	return cmd
}

func executeInspect(direction dataset.Direction, submissionPath, groundTruthPath string) error {
	groundTruth, err := dataset.NewLoader(groundTruthPath, direction.ReferenceColumns()...).Load()
	if err != nil {
		return fmt.Errorf("failed to load ground truth: %w", err)
	}

	submission, err := dataset.NewLoader(submissionPath, direction.SubmissionColumns()...).Load()
	if err != nil {
		return fmt.Errorf("failed to load submission: %w", err)
	}

	aligned, err := align.Align(groundTruth, submission)
	if err != nil {
		return err
	}

	emptyTexts := 0
	for _, p := range aligned.Pairs {
		if p.Candidate == "" {
			emptyTexts++
		}
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("SUBMISSION CHECK")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Submission:      %s\n", submissionPath)
	fmt.Printf("Text Column:     %s\n", submission.TextColumn)
	fmt.Printf("Submitted Rows:  %d\n", submission.Len())
	fmt.Printf("Required Ids:    %d\n", groundTruth.Len())
	fmt.Printf("Missing Ids:     %d\n", len(aligned.MissingIDs))
	fmt.Printf("Duplicate Rows:  %d\n", aligned.Duplicates)
	fmt.Printf("Empty Texts:     %d\n", emptyTexts)
	fmt.Printf("Coverage:        %.2f%%\n", aligned.Coverage*100)
	fmt.Println(strings.Repeat("=", 60))

	if len(aligned.MissingIDs) > 0 {
		fmt.Printf("\nMissing ids: %v\n", aligned.MissingIDs)
	}

	return nil
}
