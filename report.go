package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// WriteReport writes the evaluation summary as a tab-delimited text file:
// one section per metric with per-topic rows and the average, then one
// section per metric with the pairwise t-tests. It returns the path written.
func WriteReport(path string, models []string, metrics map[string]map[string]map[string]float64, comparisons map[string][]Comparison) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	for _, metric := range metricOrder {
		byModel, ok := metrics[metric]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "== %s ==\n", metric)
		fmt.Fprint(w, "topic")
		for _, model := range models {
			fmt.Fprintf(w, "\t%s", model)
		}
		fmt.Fprintln(w)

		for _, topic := range sortedTopics(byModel, models) {
			fmt.Fprint(w, topic)
			for _, model := range models {
				fmt.Fprintf(w, "\t%.4f", byModel[model][topic])
			}
			fmt.Fprintln(w)
		}

		fmt.Fprint(w, "Average")
		for _, model := range models {
			fmt.Fprintf(w, "\t%.4f", MeanMetric(byModel[model]))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w)
	}

	for _, metric := range metricOrder {
		pairs, ok := comparisons[metric]
		if !ok || len(pairs) == 0 {
			continue
		}
		fmt.Fprintf(w, "== t-tests: %s ==\n", metric)
		fmt.Fprintln(w, "comparison\tt-statistic\tp-value")
		for _, c := range pairs {
			fmt.Fprintf(w, "%s\t%.4f\t%.4f\n", c.Pair, c.T, c.P)
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func sortedTopics(byModel map[string]map[string]float64, models []string) []string {
	if len(models) == 0 {
		return nil
	}
	first := byModel[models[0]]
	topics := make([]string, 0, len(first))
	for topic := range first {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}
