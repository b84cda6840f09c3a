package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// experimentResults holds every model's scores: model -> topic -> doc -> score.
type experimentResults map[string]map[string]map[string]float64

// run drives the whole batch: load inputs, build a per-topic index, score
// every model against every topic, write the ranking files, then evaluate
// against the relevance judgments.
func run(cfg Config, logger *zap.Logger) error {
	stopwords, err := LoadStopwords(cfg.Data.StopwordsFile)
	if err != nil {
		return err
	}
	stop := StopwordSet(stopwords)

	topics, err := LoadTopics(cfg.Data.TopicsFile)
	if err != nil {
		return err
	}

	judgments, err := LoadJudgments(cfg.Data.JudgmentsDir)
	if err != nil {
		return err
	}

	models, err := BuildModels(cfg.Models)
	if err != nil {
		return err
	}

	logger.Info("experiment loaded",
		zap.Int("topics", len(topics)),
		zap.Int("stopwords", len(stopwords)),
		zap.Strings("models", cfg.Models.Enabled),
		zap.String("index", cfg.Index.Backend))

	results := make(experimentResults, len(models))
	for _, name := range cfg.Models.Enabled {
		results[name] = make(map[string]map[string]float64, len(topics))
	}

	for _, topic := range topics {
		if topic.Num == "" {
			return fmt.Errorf("topics file has a <Query> block without a number")
		}

		idx, err := newTopicIndex(cfg.Index, topic.Num)
		if err != nil {
			return err
		}

		dir := filepath.Join(cfg.Data.CollectionsDir, "Dataset"+topic.Num)
		docs, err := LoadCollection(dir, stop, idx)
		if err != nil {
			return err
		}

		query := QueryTerms(topic.Title, stop)
		logger.Info("indexed topic",
			zap.String("topic", topic.Num),
			zap.String("title", topic.Title),
			zap.Int("documents", docs),
			zap.Int("query_terms", len(query)))

		for _, name := range cfg.Models.Enabled {
			scores := models[name](idx, query)
			path, err := WriteRanking(cfg.Data.OutputDir, name, topic.Num, scores)
			if err != nil {
				return err
			}
			results[name][topic.Num] = scores

			logger.Debug("wrote ranking",
				zap.String("model", name),
				zap.String("file", path),
				zap.Int("documents", len(scores)))
			logTopHits(logger, name, topic.Num, scores, cfg.Eval.TopK)
		}

		if closer, ok := idx.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				return fmt.Errorf("topic %s index: %w", topic.Num, err)
			}
		}
	}

	return evaluate(cfg, logger, judgments, results)
}

// newTopicIndex builds a fresh index for one topic. The sqlite backend gets
// a per-topic database file so topics never share postings.
func newTopicIndex(cfg IndexConfig, topicNum string) (Index, error) {
	path := cfg.DBPath
	if cfg.Backend == "sqlite" {
		ext := filepath.Ext(path)
		path = strings.TrimSuffix(path, ext) + "_R" + topicNum + ext
	}
	return NewIndex(cfg.Backend, path, cfg.Reset)
}

func logTopHits(logger *zap.Logger, model, topicNum string, scores map[string]float64, k int) {
	if !logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	for i, hit := range TopK(scores, k) {
		logger.Debug("top hit",
			zap.String("model", model),
			zap.String("topic", topicNum),
			zap.Int("rank", i+1),
			zap.String("doc", hit.DocID),
			zap.Float64("score", hit.Score))
	}
}

// metric display order in the report
var metricOrder = []string{"precision", "precision@k", "recall", "dcg"}

// evaluate computes every metric per model and topic, logs the averages,
// writes the report, and runs pairwise significance tests.
func evaluate(cfg Config, logger *zap.Logger, judgments Judgments, results experimentResults) error {
	metrics := make(map[string]map[string]map[string]float64, len(metricOrder))
	for _, m := range metricOrder {
		metrics[m] = make(map[string]map[string]float64)
	}

	for _, name := range cfg.Models.Enabled {
		res := results[name]
		metrics["precision"][name] = PrecisionByTopic(judgments, res, cfg.Eval.Threshold, 0)
		metrics["precision@k"][name] = PrecisionByTopic(judgments, res, cfg.Eval.Threshold, cfg.Eval.TopK)
		metrics["recall"][name] = RecallByTopic(judgments, res, cfg.Eval.Threshold, 0)
		metrics["dcg"][name] = DCGByTopic(judgments, res, cfg.Eval.Threshold, cfg.Eval.DCGRank)

		logger.Info("model evaluated",
			zap.String("model", name),
			zap.Float64("map", MeanMetric(metrics["precision"][name])),
			zap.Float64(fmt.Sprintf("precision@%d", cfg.Eval.TopK), MeanMetric(metrics["precision@k"][name])),
			zap.Float64("recall", MeanMetric(metrics["recall"][name])),
			zap.Float64(fmt.Sprintf("dcg@%d", cfg.Eval.DCGRank), MeanMetric(metrics["dcg"][name])))
	}

	comparisons := make(map[string][]Comparison, len(metricOrder))
	for _, m := range metricOrder {
		comparisons[m] = CompareModels(metrics[m], cfg.Models.Enabled)
		for _, c := range comparisons[m] {
			logger.Info("model comparison",
				zap.String("metric", m),
				zap.String("pair", c.Pair),
				zap.Float64("t", c.T),
				zap.Float64("p", c.P))
		}
	}

	path, err := WriteReport(cfg.Eval.ReportFile, cfg.Models.Enabled, metrics, comparisons)
	if err != nil {
		return err
	}
	logger.Info("evaluation report written", zap.String("file", path))
	return nil
}
