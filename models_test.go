package main

import (
	"math"
	"testing"
)

// small hand-built collection shared by the model tests
func newModelTestIndex() Index {
	idx := NewInvertedIndex()
	idx.AddDocument("A", []string{"grain", "grain", "export"})
	idx.AddDocument("B", []string{"export", "price"})
	idx.AddDocument("C", []string{"wheat", "farm"})
	return idx
}

func TestBM25Ranking(t *testing.T) {
	idx := newModelTestIndex()
	model := BM25(BM25Config{K1: 1.2, K2: 500, B: 0.75})

	scores := model(idx, map[string]int{"grain": 1})

	if scores["A"] <= 0 {
		t.Errorf("score(A) = %v; want > 0", scores["A"])
	}
	if scores["B"] != 0 || scores["C"] != 0 {
		t.Errorf("non-matching documents should score 0, got B=%v C=%v", scores["B"], scores["C"])
	}
}

func TestBM25EmptyIndex(t *testing.T) {
	model := BM25(BM25Config{K1: 1.2, K2: 500, B: 0.75})
	scores := model(NewInvertedIndex(), map[string]int{"grain": 1})
	if len(scores) != 0 {
		t.Errorf("scores on empty index = %v; want empty", scores)
	}
}

func TestJMLMRanking(t *testing.T) {
	idx := newModelTestIndex()
	model := JMLM(0.4)

	scores := model(idx, map[string]int{"grain": 1})

	// A contains the term; B and C only get the smoothed collection
	// probability, so they tie below A.
	if !(scores["A"] > scores["B"]) {
		t.Errorf("score(A)=%v should exceed score(B)=%v", scores["A"], scores["B"])
	}
	if scores["B"] != scores["C"] {
		t.Errorf("score(B)=%v and score(C)=%v should tie", scores["B"], scores["C"])
	}
	if scores["B"] <= 0 {
		t.Errorf("smoothing should keep score(B)=%v above 0", scores["B"])
	}
}

func TestJMLMUnmatchedQuery(t *testing.T) {
	idx := newModelTestIndex()
	scores := JMLM(0.4)(idx, map[string]int{"zebra": 1})

	for id, s := range scores {
		if s != 0 {
			t.Errorf("score(%s) = %v; want 0 for a query outside the vocabulary", id, s)
		}
	}
}

func TestVSMRanking(t *testing.T) {
	idx := newModelTestIndex()

	scores := VSM(idx, map[string]int{"grain": 1})

	if scores["A"] <= 0 {
		t.Errorf("score(A) = %v; want > 0", scores["A"])
	}
	if scores["A"] > 1+1e-9 {
		t.Errorf("cosine similarity %v exceeds 1", scores["A"])
	}
	if scores["B"] != 0 || scores["C"] != 0 {
		t.Errorf("non-matching documents should score 0, got B=%v C=%v", scores["B"], scores["C"])
	}

	// query entirely outside the vocabulary scores everything 0
	scores = VSM(idx, map[string]int{"zebra": 3})
	for id, s := range scores {
		if s != 0 {
			t.Errorf("score(%s) = %v; want 0", id, s)
		}
	}
}

func TestPRMRanking(t *testing.T) {
	idx := newModelTestIndex()

	// fixed base scores: only A is pseudo-relevant at threshold 1
	base := func(Index, map[string]int) map[string]float64 {
		return map[string]float64{"A": 2, "B": 0.1, "C": 0.1}
	}

	scores := PRM(base, 1.0, 0)(idx, map[string]int{"grain": 1})

	if scores["A"] <= 0 {
		t.Errorf("score(A) = %v; want > 0", scores["A"])
	}
	if scores["B"] != 0 || scores["C"] != 0 {
		t.Errorf("documents without selected features should score 0, got B=%v C=%v", scores["B"], scores["C"])
	}
}

func TestWeight5(t *testing.T) {
	idx := newModelTestIndex()
	labels := map[string]int{"A": 1, "B": 0, "C": 0}

	weights := weight5(idx, labels, 0)

	// grain appears only in the relevant document, so it is the most
	// discriminative feature and must survive selection.
	if _, ok := weights["grain"]; !ok {
		t.Fatalf("weight5 did not select %q: %v", "grain", weights)
	}
	// export also appears in a non-relevant document; its weight must be
	// below grain's.
	if w, ok := weights["export"]; ok && w >= weights["grain"] {
		t.Errorf("weight(export)=%v should be below weight(grain)=%v", w, weights["grain"])
	}
	// terms never seen in a relevant document are not scored at all
	if _, ok := weights["price"]; ok {
		t.Errorf("weight5 scored %q, which never occurs in a relevant document", "price")
	}
}

func TestWeight5NoRelevantDocs(t *testing.T) {
	idx := newModelTestIndex()
	weights := weight5(idx, map[string]int{"A": 0, "B": 0, "C": 0}, 0)
	if len(weights) != 0 {
		t.Errorf("weight5 with no relevant documents = %v; want empty", weights)
	}
}

func TestNormaliseScores(t *testing.T) {
	t.Run("zeros survive and scores stay non-negative", func(t *testing.T) {
		out := NormaliseScores(map[string]float64{"A": 5, "B": 2, "C": 0})
		if out["C"] != 0 {
			t.Errorf("zero score became %v", out["C"])
		}
		for id, s := range out {
			if s < 0 {
				t.Errorf("score(%s) = %v; want >= 0", id, s)
			}
		}
		if !(out["A"] > out["B"]) {
			t.Errorf("ordering lost: A=%v B=%v", out["A"], out["B"])
		}
	})

	t.Run("all-equal scores collapse to 0/1", func(t *testing.T) {
		out := NormaliseScores(map[string]float64{"A": 3, "B": 3, "C": 0})
		if out["A"] != 1 || out["B"] != 1 || out["C"] != 0 {
			t.Errorf("got %v; want A=1 B=1 C=0", out)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if out := NormaliseScores(map[string]float64{}); len(out) != 0 {
			t.Errorf("got %v; want empty", out)
		}
	})
}

func TestBuildModels(t *testing.T) {
	cfg := ModelsConfig{
		Enabled: []string{"BM25", "JM_LM", "VSM", "PRM"},
		BM25:    BM25Config{K1: 1.2, K2: 500, B: 0.75},
		JMLM:    JMLMConfig{Lambda: 0.4},
		PRM:     PRMConfig{Base: "BM25", Threshold: 1, Theta: 0},
	}
	models, err := BuildModels(cfg)
	if err != nil {
		t.Fatalf("BuildModels error: %v", err)
	}
	if len(models) != 4 {
		t.Errorf("BuildModels returned %d models; want 4", len(models))
	}

	cfg.PRM.Base = "JM_LM"
	if _, err := BuildModels(cfg); err != nil {
		t.Errorf("BuildModels with JM_LM base error: %v", err)
	}

	cfg.PRM.Base = "nope"
	if _, err := BuildModels(cfg); err == nil {
		t.Error("BuildModels with unknown PRM base expected an error")
	}

	cfg.PRM.Base = "BM25"
	cfg.Enabled = []string{"bogus"}
	if _, err := BuildModels(cfg); err == nil {
		t.Error("BuildModels with unknown model expected an error")
	}
}

func TestTopK(t *testing.T) {
	scores := map[string]float64{"A": 0.2, "B": 0.9, "C": 0.5}

	hits := TopK(scores, 2)
	if len(hits) != 2 || hits[0].DocID != "B" || hits[1].DocID != "C" {
		t.Errorf("TopK(2) = %v", hits)
	}

	all := TopK(scores, 10)
	if len(all) != 3 {
		t.Errorf("TopK beyond collection size returned %d hits; want 3", len(all))
	}

	if math.IsNaN(all[0].Score) {
		t.Error("unexpected NaN score")
	}
}
