// Command prepare-dataset builds the hanzi meaning dataset from a
// frequency list, a Unihan kDefinition dump and a BKRS term-bank
// directory. It is a batch job: it runs to completion and exits.
//
// Flags:
//
//	--data-dir    input data directory (overrides config)
//	--output-dir  output directory (overrides config; default <data>/processed)
//	--config      path to YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/hanzifier/internal/app"
	"github.com/heartmarshall/hanzifier/internal/app/dataset"
	"github.com/heartmarshall/hanzifier/internal/config"
	"github.com/heartmarshall/hanzifier/internal/domain"
	"github.com/heartmarshall/hanzifier/internal/morph"
	"github.com/heartmarshall/hanzifier/internal/morph/english"
	"github.com/heartmarshall/hanzifier/internal/morph/russian"
)

func main() {
	dataDirFlag := flag.String("data-dir", "", "input data directory (overrides config)")
	outputDirFlag := flag.String("output-dir", "", "output directory (overrides config)")
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *dataDirFlag != "" {
		cfg.Data.Dir = *dataDirFlag
	}
	if *outputDirFlag != "" {
		cfg.Output.Dir = *outputDirFlag
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting prepare-dataset", slog.String("version", app.BuildVersion()))

	// Morphology backends must come up before any character is processed;
	// a configured resource that fails to load aborts the run here.
	englishOracle, err := english.New(cfg.Morph.WordNetDir)
	if err != nil {
		logger.Error("init english morphology", slog.String("error", err.Error()))
		os.Exit(1)
	}
	russianOracle, err := russian.New(cfg.Morph.RussianDictPath)
	if err != nil {
		logger.Error("init russian morphology", slog.String("error", err.Error()))
		os.Exit(1)
	}

	oracles := map[domain.Language]morph.Oracle{
		domain.LanguageEnglish: englishOracle,
		domain.LanguageRussian: russianOracle,
	}

	pipelineCfg := dataset.Config{
		FrequencyPath: cfg.FrequencyPath(),
		UnihanPath:    cfg.UnihanPath(),
		BKRSDir:       cfg.BKRSPath(),
		OutputDir:     cfg.OutputPath(),
		MaxRoots:      cfg.Pipeline.MaxRoots,
		ChunkSize:     cfg.Pipeline.ChunkSize,
		Workers:       cfg.Pipeline.Workers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := dataset.NewPipeline(logger, pipelineCfg, oracles, os.Stdout)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
