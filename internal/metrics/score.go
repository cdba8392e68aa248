package metrics

// Options controls scoring behavior.
type Options struct {
	// Stemmer enables Porter stemming in the ROUGE tokenizer. BLEU never
	// stems; METEOR stems only inside its stem matching stage.
	Stemmer bool
}

// Report holds the aggregate metric values for one evaluation run.
type Report struct {
	BLEU      float64
	Rouge1    float64
	Rouge2    float64
	RougeL    float64
	RougeLsum float64
	Meteor    float64

	SampleCount int
}

// Score computes all shared task metrics over aligned reference/candidate
// text pairs. BLEU is corpus-level; ROUGE and METEOR are computed per sample
// and averaged over all samples, so empty candidates pull the average down
// rather than being skipped.
func Score(references, candidates []string, opts Options) Report {
	report := Report{SampleCount: len(references)}
	if len(references) == 0 || len(references) != len(candidates) {
		return report
	}

	bleuRefs := make([][]string, len(references))
	bleuCands := make([][]string, len(references))

	var rouge1Sum, rouge2Sum, rougeLSum, rougeLsumSum, meteorSum float64

	for i := range references {
		plainRef := Tokenize(references[i], false)
		plainCand := Tokenize(candidates[i], false)
		bleuRefs[i] = plainRef
		bleuCands[i] = plainCand

		rougeRef := Tokenize(references[i], opts.Stemmer)
		rougeCand := Tokenize(candidates[i], opts.Stemmer)

		rouge1Sum += RougeN(rougeRef, rougeCand, 1).F1
		rouge2Sum += RougeN(rougeRef, rougeCand, 2).F1
		rougeLSum += RougeL(rougeRef, rougeCand).F1
		rougeLsumSum += RougeLsum(
			tokenizeSentences(references[i], opts.Stemmer),
			tokenizeSentences(candidates[i], opts.Stemmer),
		).F1

		meteorSum += Meteor(plainRef, plainCand)
	}

	n := float64(len(references))
	report.BLEU = CorpusBLEU(bleuRefs, bleuCands)
	report.Rouge1 = rouge1Sum / n
	report.Rouge2 = rouge2Sum / n
	report.RougeL = rougeLSum / n
	report.RougeLsum = rougeLsumSum / n
	report.Meteor = meteorSum / n

	return report
}

// tokenizeSentences splits text into sentences and tokenizes each one.
func tokenizeSentences(text string, stem bool) [][]string {
	sentences := SplitSentences(text)
	tokenized := make([][]string, 0, len(sentences))
	for _, sent := range sentences {
		tokens := Tokenize(sent, stem)
		if len(tokens) > 0 {
			tokenized = append(tokenized, tokens)
		}
	}
	return tokenized
}
