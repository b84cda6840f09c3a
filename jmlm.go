package main

// JMLM builds a Jelinek-Mercer smoothed language model. The score is the
// product over query terms of (1-λ)·P(term|doc) + λ·P(term|collection);
// documents never touched by any query term score exactly 0 rather than the
// product of smoothing terms.
func JMLM(lambda float64) Model {
	return func(idx Index, query map[string]int) map[string]float64 {
		totalTerms := idx.TotalTerms()
		docIDs := idx.DocIDs()

		scores := make(map[string]float64, len(docIDs))
		touched := make(map[string]bool, len(docIDs))
		for _, id := range docIDs {
			scores[id] = 1 // multiplicative identity
		}

		for term := range query {
			postings := idx.Postings(term)

			tfByDoc := make(map[string]int, len(postings))
			for _, p := range postings {
				tfByDoc[p.DocID] = p.Count
			}

			var pColl float64
			if totalTerms > 0 {
				pColl = float64(len(postings)) / float64(totalTerms)
			}

			for _, id := range docIDs {
				var pDoc float64
				if dl := idx.DocLen(id); dl > 0 {
					pDoc = float64(tfByDoc[id]) / float64(dl)
				}

				score := (1-lambda)*pDoc + lambda*pColl
				if score > 0 {
					scores[id] *= score
					touched[id] = true
				}
			}
		}

		for _, id := range docIDs {
			if !touched[id] {
				scores[id] = 0
			}
		}
		return scores
	}
}
