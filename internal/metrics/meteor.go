package metrics

import (
	"math"

	"github.com/kljensen/snowball/english"
)

// METEOR free parameters, standard values for English.
const (
	meteorAlpha = 0.9
	meteorBeta  = 3.0
	meteorGamma = 0.5
)

type meteorMatch struct {
	candidateIndex int
	referenceIndex int
}

// Meteor computes the METEOR score for one candidate against one reference.
// Unigrams are aligned in two stages, exact surface match then Porter stem
// match, and the harmonic mean of precision and recall is discounted by a
// fragmentation penalty over match chunks.
func Meteor(reference, candidate []string) float64 {
	if len(reference) == 0 || len(candidate) == 0 {
		return 0
	}

	candRemaining := enumerate(candidate)
	refRemaining := enumerate(reference)

	matches := matchStage(candRemaining, refRemaining, func(s string) string { return s })
	matches = append(matches, matchStage(candRemaining, refRemaining, stemWord)...)

	matchCount := len(matches)
	if matchCount == 0 {
		return 0
	}

	precision := float64(matchCount) / float64(len(candidate))
	recall := float64(matchCount) / float64(len(reference))
	fmean := precision * recall / (meteorAlpha*precision + (1-meteorAlpha)*recall)

	fragmentation := float64(countChunks(matches)) / float64(matchCount)
	penalty := meteorGamma * math.Pow(fragmentation, meteorBeta)

	return fmean * (1 - penalty)
}

func stemWord(w string) string {
	return english.Stem(w, false)
}

type indexedToken struct {
	index int
	token string
}

func enumerate(tokens []string) *[]indexedToken {
	enum := make([]indexedToken, len(tokens))
	for i, tok := range tokens {
		enum[i] = indexedToken{index: i, token: tok}
	}
	return &enum
}

// matchStage greedily pairs remaining candidate tokens with remaining
// reference tokens under the given normalization, consuming both sides.
func matchStage(candidate, reference *[]indexedToken, normalize func(string) string) []meteorMatch {
	var matches []meteorMatch
	cand := *candidate
	ref := *reference

	for i := 0; i < len(cand); i++ {
		for j := 0; j < len(ref); j++ {
			if normalize(cand[i].token) == normalize(ref[j].token) {
				matches = append(matches, meteorMatch{
					candidateIndex: cand[i].index,
					referenceIndex: ref[j].index,
				})
				cand = append(cand[:i], cand[i+1:]...)
				ref = append(ref[:j], ref[j+1:]...)
				i--
				break
			}
		}
	}

	*candidate = cand
	*reference = ref
	return matches
}

// countChunks counts maximal runs of matches that are contiguous in both the
// candidate and the reference.
func countChunks(matches []meteorMatch) int {
	sorted := make([]meteorMatch, len(matches))
	copy(sorted, matches)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].candidateIndex < sorted[j-1].candidateIndex; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	chunks := 0
	for i, m := range sorted {
		if i == 0 ||
			m.candidateIndex != sorted[i-1].candidateIndex+1 ||
			m.referenceIndex != sorted[i-1].referenceIndex+1 {
			chunks++
		}
	}
	return chunks
}
