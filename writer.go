package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteRanking writes one topic's scores for one model as a tab-delimited
// .dat file, best score first. It returns the path written.
func WriteRanking(dir, model, topicNum string, scores map[string]float64) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_R%sRanking.dat", model, topicNum))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create ranking file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, hit := range RankScores(scores) {
		fmt.Fprintf(w, "%s\t%s\n", hit.DocID, strconv.FormatFloat(hit.Score, 'g', -1, 64))
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("write ranking file: %w", err)
	}
	return path, nil
}
