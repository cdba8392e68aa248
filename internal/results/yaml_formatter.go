package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// RunConfig records how an evaluation run was configured.
type RunConfig struct {
	Submission  string `yaml:"submission"`
	GroundTruth string `yaml:"groundtruth"`
	Direction   string `yaml:"direction"`
	Stemmer     bool   `yaml:"stemmer"`
	Timestamp   string `yaml:"timestamp"`
}

// RunReport is the detailed YAML evaluation report.
type RunReport struct {
	Config     RunConfig          `yaml:"config"`
	Scores     map[string]float64 `yaml:"scores"`
	NumSamples int                `yaml:"numsamples"`
	Coverage   float64            `yaml:"coverage"`
	MissingIDs []int64            `yaml:"missingids,omitempty"`
}

// SaveToYAML writes a detailed report for the run to the given path.
func SaveToYAML(path string, config RunConfig, summary *Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if config.Timestamp == "" {
		config.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}

	report := RunReport{
		Config: config,
		Scores: map[string]float64{
			"bleu":      summary.Report.BLEU,
			"rouge1":    summary.Report.Rouge1,
			"rouge2":    summary.Report.Rouge2,
			"rougeL":    summary.Report.RougeL,
			"rougeLsum": summary.Report.RougeLsum,
			"meteor":    summary.Report.Meteor,
		},
		NumSamples: summary.Report.SampleCount,
		Coverage:   summary.CoveragePercent(),
		MissingIDs: summary.MissingIDs,
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	return nil
}
