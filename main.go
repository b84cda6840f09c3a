package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	indexOpt := flag.String("index", "", "index backend: inmem | sqlite (overrides config)")
	dbPath := flag.String("db", "", "sqlite database file (overrides config)")
	resetDB := flag.Bool("reset", false, "drop & recreate sqlite tables on startup")
	topK := flag.Int("topk", 0, "how many top documents to report per topic (overrides config)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// flag overrides
	if *indexOpt != "" {
		cfg.Index.Backend = *indexOpt
	}
	if *dbPath != "" {
		cfg.Index.DBPath = *dbPath
	}
	if *resetDB {
		cfg.Index.Reset = true
	}
	if *topK > 0 {
		cfg.Eval.TopK = *topK
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("experiment failed", zap.Error(err))
	}
}
