package metrics

import "math"

// bleuMaxOrder is the highest n-gram order used by corpus BLEU.
const bleuMaxOrder = 4

// CorpusBLEU computes corpus-level BLEU over aligned token sequences:
// clipped modified n-gram precision up to order 4, pooled across the whole
// corpus, combined with uniform weights and a brevity penalty. No smoothing
// is applied, so any empty precision bucket yields a score of 0.
func CorpusBLEU(references, candidates [][]string) float64 {
	if len(references) != len(candidates) {
		return 0
	}

	var matches, totals [bleuMaxOrder]int
	referenceLength := 0
	candidateLength := 0

	for i := range candidates {
		ref := references[i]
		cand := candidates[i]
		referenceLength += len(ref)
		candidateLength += len(cand)

		for n := 1; n <= bleuMaxOrder; n++ {
			if len(cand) < n {
				continue
			}
			totals[n-1] += len(cand) - n + 1

			refCounts := ngramCounts(ref, n)
			for gram, count := range ngramCounts(cand, n) {
				if refCount, ok := refCounts[gram]; ok {
					matches[n-1] += min(count, refCount)
				}
			}
		}
	}

	if candidateLength == 0 {
		return 0
	}

	logPrecisionSum := 0.0
	for n := range bleuMaxOrder {
		if matches[n] == 0 || totals[n] == 0 {
			return 0
		}
		logPrecisionSum += math.Log(float64(matches[n])/float64(totals[n])) / bleuMaxOrder
	}

	brevityPenalty := 1.0
	if candidateLength < referenceLength {
		brevityPenalty = math.Exp(1 - float64(referenceLength)/float64(candidateLength))
	}

	return brevityPenalty * math.Exp(logPrecisionSum)
}
