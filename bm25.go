package main

import "math"

// BM25 builds the BM25 weighting function with the given parameters.
// The IDF component is the Robertson / Sparck-Jones weight with 0.5
// smoothing and no relevance information (R = r = 0).
func BM25(cfg BM25Config) Model {
	k1, k2, b := cfg.K1, cfg.K2, cfg.B

	return func(idx Index, query map[string]int) map[string]float64 {
		n := idx.TotalDocs()
		if n == 0 {
			return map[string]float64{}
		}
		meanDocLen := float64(idx.TotalTerms()) / float64(n)

		scores := zeroScores(idx)

		for term, queryFreq := range query {
			postings := idx.Postings(term)
			ni := float64(len(postings)) // documents containing the term

			// Robertson/Sparck-Jones IDF; the 0.5 terms keep the ratio
			// defined for terms present in every document or none.
			idf := math.Log10((0.5 / 0.5) / ((ni + 0.5) / (float64(n) - ni + 0.5)))

			queryComponent := ((k2 + 1) * float64(queryFreq)) / (k2 + float64(queryFreq))

			for _, p := range postings {
				K := k1 * ((1 - b) + b*float64(p.DocLen)/meanDocLen)
				tf := float64(p.Count)
				saturation := ((k1 + 1) * tf) / (K + tf)
				scores[p.DocID] += idf * saturation * queryComponent
			}
		}

		return NormaliseScores(scores)
	}
}
