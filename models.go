package main

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Model scores every document in the index against a query term-frequency
// map. Higher is better; documents matching no query term score 0.
type Model func(idx Index, query map[string]int) map[string]float64

// BuildModels resolves the enabled model names into scoring functions.
func BuildModels(cfg ModelsConfig) (map[string]Model, error) {
	available := map[string]Model{
		"BM25":  BM25(cfg.BM25),
		"JM_LM": JMLM(cfg.JMLM.Lambda),
		"VSM":   VSM,
	}
	// PRM reranks on top of a base model, so it is resolved last.
	base, ok := available[cfg.PRM.Base]
	if !ok {
		return nil, fmt.Errorf("prm base model %q is not available", cfg.PRM.Base)
	}
	available["PRM"] = PRM(base, cfg.PRM.Threshold, cfg.PRM.Theta)

	models := make(map[string]Model, len(cfg.Enabled))
	for _, name := range cfg.Enabled {
		m, ok := available[name]
		if !ok {
			return nil, fmt.Errorf("unknown model %q", name)
		}
		models[name] = m
	}
	return models, nil
}

// zeroScores initialises a 0-score entry for every indexed document, so
// documents that match nothing still appear in the output ranking.
func zeroScores(idx Index) map[string]float64 {
	scores := make(map[string]float64, idx.TotalDocs())
	for _, id := range idx.DocIDs() {
		scores[id] = 0
	}
	return scores
}

// NormaliseScores applies z-score normalisation, shifted so every score is
// non-negative. Scores that were exactly 0 stay 0 so "no match" survives
// normalisation; an all-equal score vector collapses to 0/1.
func NormaliseScores(scores map[string]float64) map[string]float64 {
	if len(scores) == 0 {
		return scores
	}

	vals := make([]float64, 0, len(scores))
	for _, s := range scores {
		vals = append(vals, s)
	}
	mean := stat.Mean(vals, nil)
	std := stat.PopStdDev(vals, nil)

	out := make(map[string]float64, len(scores))
	if std == 0 {
		for id, s := range scores {
			if s == 0 {
				out[id] = 0
			} else {
				out[id] = 1
			}
		}
		return out
	}

	minScore := 0.0
	for id, s := range scores {
		z := (s - mean) / std
		out[id] = z
		if z < minScore {
			minScore = z
		}
	}
	if minScore < 0 {
		for id := range out {
			out[id] -= minScore
		}
	}
	for id, s := range scores {
		if s == 0 {
			out[id] = 0
		}
	}
	return out
}

// RankScores turns a score map into a sorted hit list.
func RankScores(scores map[string]float64) Hits {
	hits := make(Hits, 0, len(scores))
	for id, s := range scores {
		hits = append(hits, SearchResult{DocID: id, Score: s})
	}
	hits.Sort()
	return hits
}

// TopK returns the k best hits (fewer when the collection is smaller).
func TopK(scores map[string]float64, k int) Hits {
	hits := RankScores(scores)
	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits
}
