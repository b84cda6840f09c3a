// index.go defines the Index interface shared by the in-memory and sqlite
// backends, plus the ranked-hit types used across the models.

package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

// Posting is one entry in a term's postings list.
type Posting struct {
	DocID  string
	Count  int // term count in this doc
	DocLen int // total tokens in this doc
}

// SearchResult is one document with its score for a query.
type SearchResult struct {
	DocID string
	Score float64
}

// Hits is a slice of results that implements sort.Interface: descending
// score, ties broken by ascending document id so output files are stable.
type Hits []SearchResult

func (h Hits) Len() int      { return len(h) }
func (h Hits) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h Hits) Less(i, j int) bool {
	if h[i].Score == h[j].Score {
		return h[i].DocID < h[j].DocID
	}
	return h[i].Score > h[j].Score
}

func (h Hits) Sort() { sort.Sort(h) }

// Index is a per-topic term index. Terms fed to AddDocument are expected to
// be already tokenized, stopped and stemmed.
type Index interface {
	AddDocument(docID string, terms []string)

	Postings(term string) []Posting
	Terms() []string
	DocIDs() []string
	DocLen(docID string) int
	TotalDocs() int
	TotalTerms() int
}

// NewIndex builds the configured index backend.
func NewIndex(backend, path string, reset bool) (Index, error) {
	switch backend {
	case "inmem":
		return NewInvertedIndex(), nil
	case "sqlite":
		return NewSqlIndex(path, reset)
	default:
		return nil, fmt.Errorf("unknown index backend %q", backend)
	}
}

// SearchTFIDF is a single-term lookup kept as a debugging aid over either
// backend. TF = count/docLen, IDF = ln(N/(df+1)).
func SearchTFIDF(idx Index, term string) Hits {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return nil
	}

	stemmed, _ := snowball.Stem(t, "english", true)
	if stemmed == "" {
		return nil
	}

	postings := idx.Postings(stemmed)
	if len(postings) == 0 {
		return nil
	}

	n := idx.TotalDocs()
	if n == 0 {
		return nil
	}

	df := len(postings)
	idf := math.Log(float64(n) / float64(df+1))

	var hits Hits
	for _, p := range postings {
		if p.DocLen <= 0 {
			continue
		}
		tf := float64(p.Count) / float64(p.DocLen)
		hits = append(hits, SearchResult{DocID: p.DocID, Score: tf * idf})
	}
	hits.Sort()
	return hits
}
