package main

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// retrievedSet picks the documents a model "retrieved" for a topic: the
// top-k cut when topK > 0, otherwise everything scoring above the threshold.
func retrievedSet(scores map[string]float64, threshold float64, topK int) map[string]float64 {
	if topK > 0 {
		out := make(map[string]float64, topK)
		for _, hit := range TopK(scores, topK) {
			out[hit.DocID] = hit.Score
		}
		return out
	}
	out := make(map[string]float64)
	for id, s := range scores {
		if s > threshold {
			out[id] = s
		}
	}
	return out
}

// PrecisionByTopic computes per-topic precision: the fraction of retrieved
// documents that are judged relevant. Topics with an empty retrieved set
// score 0.
func PrecisionByTopic(judgments Judgments, results map[string]map[string]float64, threshold float64, topK int) map[string]float64 {
	precisions := make(map[string]float64, len(judgments))
	for topic, relevancy := range judgments {
		retrieved := retrievedSet(results[topic], threshold, topK)
		if len(retrieved) == 0 {
			precisions[topic] = 0
			continue
		}
		truePositives := 0
		for id := range retrieved {
			if relevancy[id] == 1 {
				truePositives++
			}
		}
		precisions[topic] = float64(truePositives) / float64(len(retrieved))
	}
	return precisions
}

// RecallByTopic computes per-topic recall: the fraction of judged-relevant
// documents that were retrieved. Topics with no relevant documents score 0.
func RecallByTopic(judgments Judgments, results map[string]map[string]float64, threshold float64, topK int) map[string]float64 {
	recalls := make(map[string]float64, len(judgments))
	for topic, relevancy := range judgments {
		relevant := 0
		for _, rel := range relevancy {
			if rel == 1 {
				relevant++
			}
		}
		if relevant == 0 {
			recalls[topic] = 0
			continue
		}
		retrieved := retrievedSet(results[topic], threshold, topK)
		truePositives := 0
		for id := range retrieved {
			if relevancy[id] == 1 {
				truePositives++
			}
		}
		recalls[topic] = float64(truePositives) / float64(relevant)
	}
	return recalls
}

// DCGByTopic computes the discounted cumulative gain at rank p per topic.
// A rank position gains 1 when the document scores above the threshold and
// is judged relevant; the first position is undiscounted, later positions
// are discounted by log2(rank).
func DCGByTopic(judgments Judgments, results map[string]map[string]float64, threshold float64, p int) map[string]float64 {
	dcgs := make(map[string]float64, len(judgments))
	for topic, relevancy := range judgments {
		hits := TopK(results[topic], p)
		dcg := 0.0
		for i, hit := range hits {
			rank := i + 1
			if hit.Score > threshold && relevancy[hit.DocID] == 1 {
				if rank == 1 {
					dcg += 1
				} else {
					dcg += 1 / math.Log2(float64(rank))
				}
			}
		}
		dcgs[topic] = dcg
	}
	return dcgs
}

// MeanMetric averages a per-topic metric (the MAP row when the metric is
// precision).
func MeanMetric(metric map[string]float64) float64 {
	if len(metric) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range metric {
		sum += v
	}
	return sum / float64(len(metric))
}

// PairedTTest runs a two-tailed paired t-test over two aligned samples and
// returns the t statistic and p-value. Identical samples return t=0, p=1.
func PairedTTest(a, b []float64) (float64, float64) {
	n := len(a)
	if n != len(b) || n < 2 {
		return math.NaN(), math.NaN()
	}

	diffs := make([]float64, n)
	for i := range a {
		diffs[i] = a[i] - b[i]
	}

	mean := stat.Mean(diffs, nil)
	sd := stat.StdDev(diffs, nil)
	if sd == 0 {
		if mean == 0 {
			return 0, 1
		}
		return math.Inf(int(math.Copysign(1, mean))), 0
	}

	t := mean / (sd / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	p := 2 * dist.CDF(-math.Abs(t))
	return t, p
}

// Comparison is the outcome of one pairwise model significance test.
type Comparison struct {
	Pair string
	T    float64
	P    float64
}

// CompareModels runs paired t-tests on a per-topic metric for every model
// pair. Topic vectors are aligned by sorted topic number.
func CompareModels(metric map[string]map[string]float64, models []string) []Comparison {
	if len(models) < 2 {
		return nil
	}

	// All models share the same topic set; take it from the first.
	var topics []string
	for topic := range metric[models[0]] {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	vector := func(model string) []float64 {
		v := make([]float64, len(topics))
		for i, topic := range topics {
			v[i] = metric[model][topic]
		}
		return v
	}

	var comparisons []Comparison
	for i := 0; i < len(models); i++ {
		for j := i + 1; j < len(models); j++ {
			t, p := PairedTTest(vector(models[i]), vector(models[j]))
			comparisons = append(comparisons, Comparison{
				Pair: fmt.Sprintf("%s vs %s", models[i], models[j]),
				T:    t,
				P:    p,
			})
		}
	}
	return comparisons
}
