package main

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// punctuation characters replaced with a space during tokenization
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenize normalises raw text into lowercase word tokens: line breaks are
// dropped, digits removed, punctuation replaced with spaces, and tokens
// shorter than three characters discarded. Dropping newlines outright (rather
// than treating them as spaces) keeps hyphenated line wraps from splitting.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			// dropped, not turned into a space
		case unicode.IsDigit(r):
			// numbers carry no meaning for these queries
		case strings.ContainsRune(punctuation, r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	fields := strings.Fields(strings.ToLower(b.String()))
	words := fields[:0]
	for _, w := range fields {
		if len(w) >= 3 {
			words = append(words, w)
		}
	}
	return words
}

// ProcessText runs the full pipeline on a document body: tokenize, remove
// stopwords, stem with Snowball. The returned slice keeps token order so the
// index can count document length from it.
func ProcessText(text string, stop map[string]struct{}) []string {
	tokens := Tokenize(text)
	kept := make([]string, 0, len(tokens))
	for _, w := range tokens {
		if _, isStop := stop[w]; isStop {
			continue
		}
		stemmed, _ := snowball.Stem(w, "english", true)
		if stemmed == "" {
			continue
		}
		kept = append(kept, stemmed)
	}
	return kept
}

// QueryTerms runs the same pipeline on a query string and counts term
// frequencies, which is the representation the ranking models consume.
func QueryTerms(text string, stop map[string]struct{}) map[string]int {
	freq := make(map[string]int)
	for _, term := range ProcessText(text, stop) {
		freq[term]++
	}
	return freq
}
