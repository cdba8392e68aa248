package evalcmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/clinicalnlp/noteval/internal/align"
	"github.com/clinicalnlp/noteval/internal/dataset"
	"github.com/clinicalnlp/noteval/internal/metrics"
	"github.com/clinicalnlp/noteval/internal/results"
)

// executeScore runs the full load, align, score, report pipeline.
func executeScore(direction dataset.Direction, flags scoreFlags) error {
	groundTruthPath := flags.resolveGroundTruth()

	slog.Info("Starting evaluation", "direction", string(direction), "submission", flags.submission, "ground_truth", groundTruthPath)

	groundTruth, err := dataset.NewLoader(groundTruthPath, direction.ReferenceColumns()...).Load()
	if err != nil {
		return fmt.Errorf("failed to load ground truth: %w", err)
	}
	slog.Info("Ground truth loaded", "samples", groundTruth.Len())

	submission, err := dataset.NewLoader(flags.submission, direction.SubmissionColumns()...).Load()
	if err != nil {
		return fmt.Errorf("failed to load submission: %w", err)
	}
	slog.Info("Submission loaded", "samples", submission.Len(), "text_column", submission.TextColumn)

	aligned, err := align.Align(groundTruth, submission)
	if err != nil {
		return err
	}

	slog.Info("Scoring aligned corpus", "pairs", len(aligned.Pairs), "missing_ids", len(aligned.MissingIDs))
	references, candidates := aligned.Texts()
	report := metrics.Score(references, candidates, metrics.Options{Stemmer: !flags.noStemmer})

	summary := &results.Summary{
		Submission: submissionStem(flags.submission),
		Report:     report,
		Coverage:   aligned.Coverage,
		MissingIDs: aligned.MissingIDs,
	}

	summary.PrintConsole()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = filepath.Join("results", summary.Submission+"_eval.csv")
	}
	if err := summary.WriteCSV(outputPath); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	fmt.Printf("\nResults saved to: %s\n", outputPath)

	if flags.yamlReport != "" {
		config := results.RunConfig{
			Submission:  flags.submission,
			GroundTruth: groundTruthPath,
			Direction:   string(direction),
			Stemmer:     !flags.noStemmer,
		}
		if err := results.SaveToYAML(flags.yamlReport, config, summary); err != nil {
			return fmt.Errorf("failed to save YAML report: %w", err)
		}
		fmt.Printf("Detailed report saved to: %s\n", flags.yamlReport)
	}

	return nil
}

// submissionStem returns the submission filename without its extension.
func submissionStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
