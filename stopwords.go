package main

import (
	"fmt"
	"os"
	"strings"
)

// LoadStopwords loads a comma-delimited stopword list from a text file.
// Words are lowercased and deduplicated.
func LoadStopwords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopwords %s: %w", path, err)
	}

	items := strings.Split(strings.ToLower(string(data)), ",")

	seen := make(map[string]struct{}, len(items))
	var words []string
	for _, item := range items {
		w := strings.Trim(item, "\"' \n\r\t")
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words, nil
}

// StopwordSet builds a set for fast lookup.
func StopwordSet(stopwords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return set
}
