package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Judgments maps topic number -> document id -> binary relevance.
type Judgments map[string]map[string]int

var nonDigitRegex = regexp.MustCompile(`\D`)

// LoadJudgments reads every Dataset<num>.txt relevance file in a directory.
// Each line has three whitespace-delimited columns: topic key, document id,
// and a 0/1 relevance label. The topic number comes from the file name.
func LoadJudgments(dir string) (Judgments, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read judgments dir: %w", err)
	}

	judgments := make(Judgments)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "Dataset") || !strings.HasSuffix(name, ".txt") {
			continue
		}
		topic := nonDigitRegex.ReplaceAllString(name, "") // 'Dataset101.txt' -> '101'
		if topic == "" {
			continue
		}

		labels, err := parseJudgmentFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		judgments[topic] = labels
	}

	if len(judgments) == 0 {
		return nil, fmt.Errorf("%s contains no Dataset<num>.txt files", dir)
	}
	return judgments, nil
}

func parseJudgmentFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open judgments %s: %w", path, err)
	}
	defer f.Close()

	labels := make(map[string]int)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if len(parts) < 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 columns, got %d", path, lineNo, len(parts))
		}
		docID := parts[1]
		rel, err := strconv.Atoi(parts[2])
		if err != nil || (rel != 0 && rel != 1) {
			return nil, fmt.Errorf("%s:%d: relevance must be 0 or 1, got %q", path, lineNo, parts[2])
		}
		labels[docID] = rel
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan judgments %s: %w", path, err)
	}
	return labels, nil
}
