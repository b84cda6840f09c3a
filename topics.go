package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Topic is one query from the topics file. Title is what the models search
// with; description and narrative are kept for reference.
type Topic struct {
	Num         string
	Title       string
	Description string
	Narrative   string
}

// The topics file is TREC-style pseudo-SGML with mostly unclosed inner tags,
// so the fields are pulled out with regular expressions rather than a markup
// parser.
var (
	queryBlockRegex = regexp.MustCompile(`(?s)<Query>(.*?)</Query>`)
	numRegex        = regexp.MustCompile(`<num>\s*Number:\s*R(\w+)`)
	titleRegex      = regexp.MustCompile(`<title>([\w\s,.-]*)`)
	descRegex       = regexp.MustCompile(`(?s)<desc>\s*Description:\s*(.*?)\n\n`)
	narrRegex       = regexp.MustCompile(`(?s)<narr>\s*Narrative:\s*(.*?)\n\n`)
)

// ParseTopics splits the topics text into <Query> blocks and extracts the
// number, title, description and narrative of each. A missing field is left
// empty rather than treated as fatal.
func ParseTopics(data string) []Topic {
	var topics []Topic
	for _, block := range queryBlockRegex.FindAllStringSubmatch(data, -1) {
		q := block[1]
		var t Topic
		if m := numRegex.FindStringSubmatch(q); m != nil {
			t.Num = m[1]
		}
		if m := titleRegex.FindStringSubmatch(q); m != nil {
			t.Title = strings.TrimSpace(m[1])
		}
		if m := descRegex.FindStringSubmatch(q); m != nil {
			t.Description = strings.TrimSpace(m[1])
		}
		if m := narrRegex.FindStringSubmatch(q); m != nil {
			t.Narrative = strings.TrimSpace(m[1])
		}
		topics = append(topics, t)
	}
	return topics
}

// LoadTopics reads and parses the topics file.
func LoadTopics(path string) ([]Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics %s: %w", path, err)
	}
	topics := ParseTopics(string(data))
	if len(topics) == 0 {
		return nil, fmt.Errorf("%s contains no <Query> blocks", path)
	}
	return topics, nil
}
