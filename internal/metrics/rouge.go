package metrics

import "sort"

// RougeScore holds the precision, recall and F-measure of one ROUGE variant.
type RougeScore struct {
	Precision float64
	Recall    float64
	F1        float64
}

func rougeScore(precision, recall float64) RougeScore {
	s := RougeScore{Precision: precision, Recall: recall}
	if precision+recall > 0 {
		s.F1 = 2 * precision * recall / (precision + recall)
	}
	return s
}

// RougeN computes the n-gram overlap score between a reference and a
// candidate token sequence. Overlap counts are clipped multiset counts.
func RougeN(reference, candidate []string, n int) RougeScore {
	refCounts := ngramCounts(reference, n)
	candCounts := ngramCounts(candidate, n)

	overlap := 0
	for gram, count := range candCounts {
		if refCount, ok := refCounts[gram]; ok {
			overlap += min(count, refCount)
		}
	}

	refTotal := max(len(reference)-n+1, 0)
	candTotal := max(len(candidate)-n+1, 0)

	precision, recall := 0.0, 0.0
	if candTotal > 0 {
		precision = float64(overlap) / float64(candTotal)
	}
	if refTotal > 0 {
		recall = float64(overlap) / float64(refTotal)
	}
	return rougeScore(precision, recall)
}

// RougeL computes the sentence-level longest-common-subsequence score over
// whole token sequences.
func RougeL(reference, candidate []string) RougeScore {
	if len(reference) == 0 || len(candidate) == 0 {
		return RougeScore{}
	}

	lcs := lcsTable(reference, candidate)[len(reference)][len(candidate)]
	precision := float64(lcs) / float64(len(candidate))
	recall := float64(lcs) / float64(len(reference))
	return rougeScore(precision, recall)
}

// RougeLsum computes the summary-level LCS score: for each reference
// sentence the union of its LCS matches against every candidate sentence is
// taken, and hits are clipped by token multiplicity on both sides.
func RougeLsum(referenceSentences, candidateSentences [][]string) RougeScore {
	refTotal, candTotal := 0, 0
	refCounts := make(map[string]int)
	candCounts := make(map[string]int)
	for _, sent := range referenceSentences {
		refTotal += len(sent)
		for _, tok := range sent {
			refCounts[tok]++
		}
	}
	for _, sent := range candidateSentences {
		candTotal += len(sent)
		for _, tok := range sent {
			candCounts[tok]++
		}
	}

	if refTotal == 0 || candTotal == 0 {
		return RougeScore{}
	}

	hits := 0
	for _, refSent := range referenceSentences {
		for _, tok := range unionLCS(refSent, candidateSentences) {
			if refCounts[tok] > 0 && candCounts[tok] > 0 {
				hits++
				refCounts[tok]--
				candCounts[tok]--
			}
		}
	}

	precision := float64(hits) / float64(candTotal)
	recall := float64(hits) / float64(refTotal)
	return rougeScore(precision, recall)
}

// unionLCS returns the tokens of the reference sentence that appear in the
// union of its LCS index sets against each candidate sentence.
func unionLCS(referenceSentence []string, candidateSentences [][]string) []string {
	indexSet := make(map[int]struct{})
	for _, candSent := range candidateSentences {
		for _, idx := range lcsIndices(referenceSentence, candSent) {
			indexSet[idx] = struct{}{}
		}
	}

	indices := make([]int, 0, len(indexSet))
	for idx := range indexSet {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	tokens := make([]string, len(indices))
	for i, idx := range indices {
		tokens[i] = referenceSentence[idx]
	}
	return tokens
}

// lcsTable builds the LCS dynamic programming table for two token sequences.
func lcsTable(a, b []string) [][]int {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}
	return table
}

// lcsIndices backtracks the LCS table and returns the matched indices into a.
func lcsIndices(a, b []string) []int {
	table := lcsTable(a, b)
	var indices []int
	i, j := len(a), len(b)
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			indices = append(indices, i-1)
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i--
		default:
			j--
		}
	}
	// Reverse to ascending order
	for l, r := 0, len(indices)-1; l < r; l, r = l+1, r-1 {
		indices[l], indices[r] = indices[r], indices[l]
	}
	return indices
}
