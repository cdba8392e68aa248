package metrics

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		stem     bool
		expected []string
	}{
		{
			name:     "lowercases and strips punctuation",
			text:     "Patient presents with chest-pain!",
			expected: []string{"patient", "presents", "with", "chest", "pain"},
		},
		{
			name:     "collapses whitespace",
			text:     "  chief   complaint\theadache ",
			expected: []string{"chief", "complaint", "headache"},
		},
		{
			name:     "keeps digits",
			text:     "BP 120/80 mmHg",
			expected: []string{"bp", "120", "80", "mmhg"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "stemming normalizes inflections",
			text:     "presenting complaints",
			stem:     true,
			expected: []string{"present", "complaint"},
		},
		{
			name:     "short tokens are never stemmed",
			text:     "is was run",
			stem:     true,
			expected: []string{"is", "was", "run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text, tt.stem)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "splits on terminal punctuation",
			text:     "First sentence. Second sentence! Third?",
			expected: []string{"First sentence", "Second sentence", "Third"},
		},
		{
			name:     "splits on newlines",
			text:     "HPI: chest pain\nPlan: follow up",
			expected: []string{"HPI: chest pain", "Plan: follow up"},
		},
		{
			name:     "drops empty sentences",
			text:     "One... Two.\n\n",
			expected: []string{"One", "Two"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNgramCounts(t *testing.T) {
	counts := ngramCounts([]string{"the", "cat", "sat", "the", "cat"}, 2)

	if counts["the cat"] != 2 {
		t.Errorf("Expected bigram 'the cat' count 2, got %d", counts["the cat"])
	}

	if counts["cat sat"] != 1 {
		t.Errorf("Expected bigram 'cat sat' count 1, got %d", counts["cat sat"])
	}

	if len(counts) != 3 {
		t.Errorf("Expected 3 distinct bigrams, got %d", len(counts))
	}
}
