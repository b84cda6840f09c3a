package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the experiment runner needs: where the corpus
// lives, which index backend to use, model parameters, and evaluation
// settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Index   IndexConfig   `yaml:"index"`
	Models  ModelsConfig  `yaml:"models"`
	Eval    EvalConfig    `yaml:"eval"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds input and output paths.
type DataConfig struct {
	TopicsFile     string `yaml:"topics_file"`     // the 50-query topics file
	CollectionsDir string `yaml:"collections_dir"` // holds one Dataset<num> directory per topic
	JudgmentsDir   string `yaml:"judgments_dir"`   // holds one Dataset<num>.txt relevance file per topic
	StopwordsFile  string `yaml:"stopwords_file"`  // comma-delimited stopword list
	OutputDir      string `yaml:"output_dir"`      // where ranking .dat files are written
}

// IndexConfig selects and configures the index backend.
type IndexConfig struct {
	Backend string `yaml:"backend"` // inmem | sqlite
	DBPath  string `yaml:"db_path"` // sqlite database file (per-topic suffix is appended)
	Reset   bool   `yaml:"reset"`   // drop & recreate sqlite tables on startup
}

// ModelsConfig lists the enabled ranking models and their parameters.
type ModelsConfig struct {
	Enabled []string   `yaml:"enabled"`
	BM25    BM25Config `yaml:"bm25"`
	JMLM    JMLMConfig `yaml:"jmlm"`
	PRM     PRMConfig  `yaml:"prm"`
}

// BM25Config holds the free parameters of the BM25 weighting function.
type BM25Config struct {
	K1 float64 `yaml:"k1"` // term frequency saturation
	K2 float64 `yaml:"k2"` // query term frequency saturation
	B  float64 `yaml:"b"`  // document length normalisation
}

// JMLMConfig holds the Jelinek-Mercer smoothing parameter.
type JMLMConfig struct {
	Lambda float64 `yaml:"lambda"`
}

// PRMConfig holds the pseudo-relevance model parameters.
type PRMConfig struct {
	Base      string  `yaml:"base"`      // name of the model that produces pseudo-labels
	Threshold float64 `yaml:"threshold"` // score above which a document is pseudo-relevant
	Theta     float64 `yaml:"theta"`     // margin over the mean w5 weight for feature selection
}

// EvalConfig holds evaluation settings.
type EvalConfig struct {
	Threshold  float64 `yaml:"threshold"`   // score threshold for the retrieved set
	TopK       int     `yaml:"top_k"`       // cutoff for precision@k / recall@k
	DCGRank    int     `yaml:"dcg_rank"`    // rank cutoff p for DCG@p
	ReportFile string  `yaml:"report_file"` // evaluation summary output
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig reads a YAML config file, expands ${VAR} environment
// references, applies defaults, and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Data.TopicsFile == "" {
		c.Data.TopicsFile = "the50Queries.txt"
	}
	if c.Data.CollectionsDir == "" {
		c.Data.CollectionsDir = "Data_Collection"
	}
	if c.Data.JudgmentsDir == "" {
		c.Data.JudgmentsDir = "EvaluationBenchmark"
	}
	if c.Data.StopwordsFile == "" {
		c.Data.StopwordsFile = "common-english-words.txt"
	}
	if c.Data.OutputDir == "" {
		c.Data.OutputDir = "RankingOutputs"
	}
	if c.Index.Backend == "" {
		c.Index.Backend = "inmem"
	}
	if c.Index.DBPath == "" {
		c.Index.DBPath = "newsrank.db"
	}
	if len(c.Models.Enabled) == 0 {
		c.Models.Enabled = []string{"BM25", "JM_LM", "VSM", "PRM"}
	}
	if c.Models.BM25.K1 <= 0 {
		c.Models.BM25.K1 = 1.2
	}
	if c.Models.BM25.K2 <= 0 {
		c.Models.BM25.K2 = 500
	}
	if c.Models.BM25.B <= 0 {
		c.Models.BM25.B = 0.75
	}
	if c.Models.JMLM.Lambda <= 0 {
		c.Models.JMLM.Lambda = 0.4
	}
	if c.Models.PRM.Base == "" {
		c.Models.PRM.Base = "BM25"
	}
	if c.Models.PRM.Threshold == 0 {
		c.Models.PRM.Threshold = 1.0
	}
	if c.Eval.TopK <= 0 {
		c.Eval.TopK = 10
	}
	if c.Eval.DCGRank <= 0 {
		c.Eval.DCGRank = 10
	}
	if c.Eval.ReportFile == "" {
		c.Eval.ReportFile = "evaluation_report.txt"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Index.Backend {
	case "inmem", "sqlite":
	default:
		return fmt.Errorf("index.backend must be \"inmem\" or \"sqlite\", got %q", c.Index.Backend)
	}
	for _, name := range c.Models.Enabled {
		switch name {
		case "BM25", "JM_LM", "VSM", "PRM":
		default:
			return fmt.Errorf("models.enabled: unknown model %q", name)
		}
	}
	if c.Models.BM25.B > 1 {
		return fmt.Errorf("models.bm25.b must be in (0, 1], got %v", c.Models.BM25.B)
	}
	if c.Models.JMLM.Lambda >= 1 {
		return fmt.Errorf("models.jmlm.lambda must be in (0, 1), got %v", c.Models.JMLM.Lambda)
	}
	switch c.Models.PRM.Base {
	case "", "BM25", "VSM", "JM_LM":
	default:
		return fmt.Errorf("models.prm.base must be one of BM25, VSM, JM_LM, got %q", c.Models.PRM.Base)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment
// variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
