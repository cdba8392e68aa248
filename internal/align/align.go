// Package align joins a submission with the ground-truth set by id.
package align

import (
	"fmt"
	"log/slog"

	"github.com/clinicalnlp/noteval/internal/dataset"
)

// Pair is one aligned (reference, candidate) text pair.
type Pair struct {
	ID        int64
	Reference string
	Candidate string
}

// Result holds the aligned corpus and its coverage statistics. Pairs always
// has one entry per ground-truth record, in ground-truth order; ids absent
// from the submission get an empty candidate string.
type Result struct {
	Pairs      []Pair
	MissingIDs []int64
	Coverage   float64 // fraction of ground-truth ids present, 0.0 to 1.0
	Duplicates int     // duplicate id rows found in the submission
}

// Align looks up the submission text for every ground-truth id, in order.
// Missing ids are warned about and substituted with an empty string; they
// never fail the run. Duplicate submission ids resolve to the last occurrence
// in file order. Align fails only when no submission id matches at all.
func Align(groundTruth, submission *dataset.Table) (*Result, error) {
	if groundTruth.Len() == 0 {
		return nil, fmt.Errorf("ground truth table %s is empty", groundTruth.Path)
	}

	index, duplicates := submission.Index()
	if duplicates > 0 {
		slog.Warn("Submission contains duplicate ids, keeping the last row for each", "duplicates", duplicates)
	}

	result := &Result{
		Pairs:      make([]Pair, 0, groundTruth.Len()),
		Duplicates: duplicates,
	}

	for _, ref := range groundTruth.Records {
		candidate, ok := index[ref.ID]
		if !ok {
			slog.Warn("Submission is missing an id, scoring it as an empty string", "id", ref.ID)
			result.MissingIDs = append(result.MissingIDs, ref.ID)
		}
		result.Pairs = append(result.Pairs, Pair{ID: ref.ID, Reference: ref.Text, Candidate: candidate})
	}

	covered := groundTruth.Len() - len(result.MissingIDs)
	if covered == 0 {
		return nil, fmt.Errorf("no matching ids between submission %s and ground truth %s", submission.Path, groundTruth.Path)
	}
	result.Coverage = float64(covered) / float64(groundTruth.Len())

	return result, nil
}

// Texts splits the aligned pairs into parallel reference and candidate slices.
func (r *Result) Texts() (references, candidates []string) {
	references = make([]string, len(r.Pairs))
	candidates = make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		references[i] = p.Reference
		candidates[i] = p.Candidate
	}
	return references, candidates
}
