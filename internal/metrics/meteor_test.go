package metrics

import (
	"math"
	"testing"
)

func TestMeteorIdentical(t *testing.T) {
	toks := Tokenize("the patient presents with acute chest pain radiating to the left arm", false)

	score := Meteor(toks, toks)

	// One chunk over m matches leaves a tiny fragmentation penalty
	m := float64(len(toks))
	want := 1 - meteorGamma*math.Pow(1/m, meteorBeta)
	if math.Abs(score-want) > tolerance {
		t.Errorf("Expected METEOR %f for identical tokens, got %f", want, score)
	}
	if score < 0.99 {
		t.Errorf("Expected near-maximum METEOR for identical tokens, got %f", score)
	}
}

func TestMeteorEmpty(t *testing.T) {
	ref := Tokenize("the patient presents with chest pain", false)

	if score := Meteor(ref, nil); score != 0 {
		t.Errorf("Expected 0 for empty candidate, got %f", score)
	}
	if score := Meteor(nil, ref); score != 0 {
		t.Errorf("Expected 0 for empty reference, got %f", score)
	}
}

func TestMeteorNoMatches(t *testing.T) {
	ref := Tokenize("alpha beta gamma delta", false)
	cand := Tokenize("epsilon zeta eta theta", false)

	if score := Meteor(ref, cand); score != 0 {
		t.Errorf("Expected 0 for no matches, got %f", score)
	}
}

func TestMeteorStemStage(t *testing.T) {
	ref := Tokenize("the nurses were testing medications", false)
	cand := Tokenize("the nurse was tested medication", false)

	// Stem matching should align nurses/nurse, testing/tested, medications/medication
	score := Meteor(ref, cand)
	if score <= 0.5 {
		t.Errorf("Expected stem stage to lift METEOR above 0.5, got %f", score)
	}
}

func TestMeteorFragmentationPenalty(t *testing.T) {
	ref := Tokenize("one two three four five six", false)
	contiguous := Meteor(ref, Tokenize("one two three four five six", false))
	scrambled := Meteor(ref, Tokenize("six five four three two one", false))

	// Same matches, more chunks: the scrambled candidate must score lower
	if scrambled >= contiguous {
		t.Errorf("Expected scrambled order to score lower: contiguous=%f scrambled=%f", contiguous, scrambled)
	}
}

func TestMeteorDeterministic(t *testing.T) {
	ref := Tokenize("the patient was discharged home in stable condition", false)
	cand := Tokenize("patient discharged home in good condition", false)

	first := Meteor(ref, cand)
	second := Meteor(ref, cand)
	if first != second {
		t.Errorf("Expected bit-identical METEOR across runs, got %v and %v", first, second)
	}
}

func TestCountChunks(t *testing.T) {
	tests := []struct {
		name    string
		matches []meteorMatch
		want    int
	}{
		{
			name: "single contiguous run",
			matches: []meteorMatch{
				{candidateIndex: 0, referenceIndex: 0},
				{candidateIndex: 1, referenceIndex: 1},
				{candidateIndex: 2, referenceIndex: 2},
			},
			want: 1,
		},
		{
			name: "gap in candidate splits chunks",
			matches: []meteorMatch{
				{candidateIndex: 0, referenceIndex: 0},
				{candidateIndex: 2, referenceIndex: 1},
			},
			want: 2,
		},
		{
			name: "gap in reference splits chunks",
			matches: []meteorMatch{
				{candidateIndex: 0, referenceIndex: 0},
				{candidateIndex: 1, referenceIndex: 2},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countChunks(tt.matches); got != tt.want {
				t.Errorf("Expected %d chunks, got %d", tt.want, got)
			}
		})
	}
}
