package results

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/clinicalnlp/noteval/internal/metrics"
	"gopkg.in/yaml.v3"
)

func testSummary() *Summary {
	return &Summary{
		Submission: "team_submission",
		Report: metrics.Report{
			BLEU:        0.412345,
			Rouge1:      0.551234,
			Rouge2:      0.301234,
			RougeL:      0.481234,
			RougeLsum:   0.491234,
			Meteor:      0.441234,
			SampleCount: 1506,
		},
		Coverage:   1505.0 / 1506.0,
		MissingIDs: []int64{42},
	}
}

func TestWriteCSV(t *testing.T) {
	summary := testSummary()
	path := filepath.Join(t.TempDir(), "results", "team_submission_eval.csv")

	if err := summary.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV() returned error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written CSV: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse written CSV: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected header plus one row, got %d rows", len(rows))
	}

	wantHeader := []string{"submission", "bleu", "rouge1", "rouge2", "rougeL", "rougeLsum", "meteor", "num_samples", "coverage"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("Header column %d: expected %q, got %q", i, want, rows[0][i])
		}
	}

	row := rows[1]
	if row[0] != "team_submission" {
		t.Errorf("Expected submission name in first column, got %q", row[0])
	}
	if row[1] != "0.412345" {
		t.Errorf("Expected bleu 0.412345, got %q", row[1])
	}
	if row[7] != "1506" {
		t.Errorf("Expected num_samples 1506, got %q", row[7])
	}
	if row[8] != "99.933599" {
		t.Errorf("Expected coverage 99.933599, got %q", row[8])
	}
}

func TestWriteCSVCurrentDir(t *testing.T) {
	summary := testSummary()
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := summary.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV() returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected output file to exist: %v", err)
	}
}

func TestCoveragePercent(t *testing.T) {
	summary := &Summary{Coverage: 0.5}
	if got := summary.CoveragePercent(); got != 50.0 {
		t.Errorf("Expected 50.0, got %f", got)
	}
}

func TestSaveToYAML(t *testing.T) {
	summary := testSummary()
	path := filepath.Join(t.TempDir(), "reports", "run.yaml")

	config := RunConfig{
		Submission:  "team_submission.csv",
		GroundTruth: "dataset/shared_task_eval.csv",
		Direction:   "dialogue-to-note",
		Stemmer:     true,
	}

	if err := SaveToYAML(path, config, summary); err != nil {
		t.Fatalf("SaveToYAML() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written YAML: %v", err)
	}

	var report RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		t.Fatalf("Failed to parse written YAML: %v", err)
	}

	if report.Config.Direction != "dialogue-to-note" {
		t.Errorf("Expected direction dialogue-to-note, got %q", report.Config.Direction)
	}

	if report.Config.Timestamp == "" {
		t.Error("Expected timestamp to be filled in")
	}

	if report.Scores["bleu"] != 0.412345 {
		t.Errorf("Expected bleu score 0.412345, got %f", report.Scores["bleu"])
	}

	if report.NumSamples != 1506 {
		t.Errorf("Expected 1506 samples, got %d", report.NumSamples)
	}

	if len(report.MissingIDs) != 1 || report.MissingIDs[0] != 42 {
		t.Errorf("Expected missing ids [42], got %v", report.MissingIDs)
	}
}
