// Package metrics implements the shared task text-similarity metrics:
// corpus BLEU, ROUGE-1/2/L/Lsum and METEOR.
package metrics

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

var (
	nonAlphanumeric  = regexp.MustCompile(`[^a-z0-9]+`)
	sentenceBoundary = regexp.MustCompile(`[.!?]+(\s+|$)`)
)

// Tokenize lowercases text, strips non-alphanumeric characters and splits on
// whitespace. With stem set, tokens longer than 3 characters are Porter-stemmed.
func Tokenize(text string, stem bool) []string {
	text = strings.ToLower(text)
	text = nonAlphanumeric.ReplaceAllString(text, " ")
	tokens := strings.Fields(text)
	if stem {
		for i, w := range tokens {
			if len(w) > 3 {
				tokens[i] = english.Stem(w, false)
			}
		}
	}
	return tokens
}

// SplitSentences splits text into sentences on newlines and terminal
// punctuation. Empty sentences are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		for _, part := range sentenceBoundary.Split(line, -1) {
			part = strings.TrimSpace(part)
			if part != "" {
				sentences = append(sentences, part)
			}
		}
	}
	return sentences
}

// ngramCounts builds a multiset of the n-grams in tokens.
func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}
