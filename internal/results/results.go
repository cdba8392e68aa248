// Package results formats and persists evaluation results.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clinicalnlp/noteval/internal/metrics"
)

// Summary is the complete outcome of one evaluation run.
type Summary struct {
	Submission string // submission file stem
	Report     metrics.Report
	Coverage   float64 // fraction of ground-truth ids present, 0.0 to 1.0
	MissingIDs []int64
}

// CoveragePercent returns coverage on a 0-100 scale, as reported to users.
func (s *Summary) CoveragePercent() float64 {
	return s.Coverage * 100
}

// PrintConsole writes the fixed-width evaluation summary to stdout.
func (s *Summary) PrintConsole() {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("EVALUATION RESULTS")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Samples Evaluated: %d\n", s.Report.SampleCount)
	fmt.Printf("Coverage: %.2f%%\n", s.CoveragePercent())
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("BLEU:           %.4f\n", s.Report.BLEU)
	fmt.Printf("ROUGE-1:        %.4f\n", s.Report.Rouge1)
	fmt.Printf("ROUGE-2:        %.4f\n", s.Report.Rouge2)
	fmt.Printf("ROUGE-L:        %.4f\n", s.Report.RougeL)
	fmt.Printf("ROUGE-Lsum:     %.4f\n", s.Report.RougeLsum)
	fmt.Printf("METEOR:         %.4f\n", s.Report.Meteor)
	fmt.Println(strings.Repeat("=", 60))
}

// csvHeader is the fixed column order of the aggregate results CSV.
var csvHeader = []string{
	"submission", "bleu", "rouge1", "rouge2", "rougeL", "rougeLsum",
	"meteor", "num_samples", "coverage",
}

// WriteCSV writes the one-row aggregate results CSV, creating the output
// directory if needed. Coverage is written on the 0-100 scale.
func (s *Summary) WriteCSV(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	row := []string{
		s.Submission,
		fmt.Sprintf("%.6f", s.Report.BLEU),
		fmt.Sprintf("%.6f", s.Report.Rouge1),
		fmt.Sprintf("%.6f", s.Report.Rouge2),
		fmt.Sprintf("%.6f", s.Report.RougeL),
		fmt.Sprintf("%.6f", s.Report.RougeLsum),
		fmt.Sprintf("%.6f", s.Report.Meteor),
		fmt.Sprintf("%d", s.Report.SampleCount),
		fmt.Sprintf("%.6f", s.CoveragePercent()),
	}
	if err := writer.Write(row); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}
