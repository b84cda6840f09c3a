package main

import "math"

// VSM is the vector space model: documents become tf·idf vectors over the
// collection vocabulary (idf = log10(N/df), tf = raw count), the query keeps
// its raw term frequencies, and each document is scored by cosine similarity.
// The vectors are never materialised; dot products and norms accumulate term
// by term.
func VSM(idx Index, query map[string]int) map[string]float64 {
	n := idx.TotalDocs()
	if n == 0 {
		return map[string]float64{}
	}

	dot := make(map[string]float64)
	docNorm := make(map[string]float64)
	queryNorm := 0.0

	for _, term := range idx.Terms() {
		postings := idx.Postings(term)
		if len(postings) == 0 {
			continue
		}
		idf := math.Log10(float64(n) / float64(len(postings)))

		qf := float64(query[term]) // query terms outside the vocabulary contribute nothing
		queryNorm += qf * qf

		for _, p := range postings {
			w := float64(p.Count) * idf
			docNorm[p.DocID] += w * w
			if qf > 0 {
				dot[p.DocID] += w * qf
			}
		}
	}

	scores := zeroScores(idx)
	if queryNorm == 0 {
		return scores
	}
	qn := math.Sqrt(queryNorm)
	for id, d := range dot {
		if dn := math.Sqrt(docNorm[id]); dn > 0 {
			scores[id] = d / (dn * qn)
		}
	}
	return scores
}
