package main

import "gonum.org/v1/gonum/stat"

// PRM builds a pseudo-relevance model: run a base model, threshold its
// scores into pseudo relevance labels, select features by their w5 weight,
// then rescore every document as the tf-weighted sum of its selected
// features.
func PRM(base Model, threshold, theta float64) Model {
	return func(idx Index, query map[string]int) map[string]float64 {
		baseScores := base(idx, query)

		labels := make(map[string]int, len(baseScores))
		for id, score := range baseScores {
			if score > threshold {
				labels[id] = 1
			} else {
				labels[id] = 0
			}
		}

		features := weight5(idx, labels, theta)

		scores := zeroScores(idx)
		for term, w := range features {
			for _, p := range idx.Postings(term) {
				scores[p.DocID] += float64(p.Count) * w
			}
		}

		return NormaliseScores(scores)
	}
}

// weight5 computes the w5 term weight (the 0.5-smoothed relevance odds
// ratio) for every term that occurs in at least one relevant document, and
// keeps the terms scoring above the mean plus theta.
func weight5(idx Index, labels map[string]int, theta float64) map[string]float64 {
	n := float64(idx.TotalDocs())

	relevantDocs := 0.0
	for _, rel := range labels {
		if rel == 1 {
			relevantDocs++
		}
	}

	relCount := make(map[string]float64)
	totalCount := make(map[string]float64)
	for _, term := range idx.Terms() {
		for _, p := range idx.Postings(term) {
			totalCount[term]++
			if labels[p.DocID] == 1 {
				relCount[term]++
			}
		}
	}

	weights := make(map[string]float64, len(relCount))
	for term, r := range relCount {
		ntk := totalCount[term]
		numerator := (r + 0.5) / (relevantDocs - r + 0.5)
		denominator := (ntk - r + 0.5) / (n - ntk - relevantDocs + r + 0.5)
		weights[term] = numerator / denominator
	}

	if len(weights) == 0 || relevantDocs == 0 {
		return map[string]float64{}
	}

	vals := make([]float64, 0, len(weights))
	for _, w := range weights {
		vals = append(vals, w)
	}
	mean := stat.Mean(vals, nil)

	selected := make(map[string]float64)
	for term, w := range weights {
		if w > mean+theta {
			selected[term] = w
		}
	}
	return selected
}
