package main

import "sort"

// InvIndex is the in-memory inverted index: term -> docID -> count, plus a
// document length table.
type InvIndex struct {
	tracked map[string]map[string]int
	docLen  map[string]int
}

// NewInvertedIndex creates an empty in-memory index.
func NewInvertedIndex() *InvIndex {
	return &InvIndex{
		tracked: make(map[string]map[string]int),
		docLen:  make(map[string]int),
	}
}

// AddDocument records all of a document's terms at once. Calling it again
// for the same docID appends to the existing postings.
func (idx *InvIndex) AddDocument(docID string, terms []string) {
	if _, seen := idx.docLen[docID]; !seen {
		idx.docLen[docID] = 0 // count the document even if it has no terms
	}
	for _, term := range terms {
		if term == "" {
			continue
		}
		m, ok := idx.tracked[term]
		if !ok {
			m = make(map[string]int)
			idx.tracked[term] = m
		}
		m[docID]++
		idx.docLen[docID]++
	}
}

// Postings returns raw counts plus doc lengths for a term.
func (idx *InvIndex) Postings(term string) []Posting {
	m := idx.tracked[term]
	if m == nil {
		return nil
	}
	out := make([]Posting, 0, len(m))
	for docID, cnt := range m {
		out = append(out, Posting{DocID: docID, Count: cnt, DocLen: idx.docLen[docID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DocID < out[j].DocID })
	return out
}

// Terms returns the sorted vocabulary.
func (idx *InvIndex) Terms() []string {
	terms := make([]string, 0, len(idx.tracked))
	for t := range idx.tracked {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// DocIDs returns the sorted ids of all indexed documents.
func (idx *InvIndex) DocIDs() []string {
	ids := make([]string, 0, len(idx.docLen))
	for id := range idx.docLen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DocLen returns the token count of one document.
func (idx *InvIndex) DocLen(docID string) int {
	return idx.docLen[docID]
}

// TotalDocs returns the number of indexed documents.
func (idx *InvIndex) TotalDocs() int {
	return len(idx.docLen)
}

// TotalTerms returns the total corpus length, the sum of all doc lengths.
func (idx *InvIndex) TotalTerms() int {
	total := 0
	for _, n := range idx.docLen {
		total += n
	}
	return total
}
