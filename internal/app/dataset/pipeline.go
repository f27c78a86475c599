package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hanzifier/internal/app/dataset/bkrs"
	"github.com/heartmarshall/hanzifier/internal/app/dataset/frequency"
	"github.com/heartmarshall/hanzifier/internal/app/dataset/unihan"
	"github.com/heartmarshall/hanzifier/internal/domain"
	"github.com/heartmarshall/hanzifier/internal/morph"
)

const (
	datasetFileName = "hanzi-meanings.json"
	chunkDirName    = "lists"
)

// Config holds resolved pipeline settings: input paths, output directory
// and processing knobs.
type Config struct {
	FrequencyPath string
	UnihanPath    string
	BKRSDir       string
	OutputDir     string

	MaxRoots  int
	ChunkSize int
	Workers   int
}

// Pipeline runs the batch transform: load inputs, build one entry per
// character in frequency order, write the dataset and chunk files, print
// the run summary.
type Pipeline struct {
	log     *slog.Logger
	cfg     Config
	oracles map[domain.Language]morph.Oracle
	agg     *Aggregator
	cache   *ExpansionCache
	summary io.Writer
}

// NewPipeline creates a Pipeline writing its run summary to summary.
// Every log line of the run carries a fresh run ID.
func NewPipeline(log *slog.Logger, cfg Config, oracles map[domain.Language]morph.Oracle, summary io.Writer) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	cache := NewExpansionCache(oracles)
	return &Pipeline{
		log:     log.With(slog.String("run_id", uuid.NewString())),
		cfg:     cfg,
		oracles: oracles,
		agg:     NewAggregator(cache, cfg.MaxRoots),
		cache:   cache,
		summary: summary,
	}
}

// Run executes the pipeline to completion. Missing inputs and unwritable
// outputs are fatal; individual malformed records were already skipped by
// the parsers.
func (p *Pipeline) Run(ctx context.Context) error {
	for lang, oracle := range p.oracles {
		if !oracle.ResourceAvailable() {
			p.log.Warn("morphology oracle running degraded",
				slog.String("language", lang.String()))
		}
	}

	start := time.Now()

	freq, err := frequency.Parse(p.cfg.FrequencyPath)
	if err != nil {
		return fmt.Errorf("frequency list %s: %w", p.cfg.FrequencyPath, err)
	}
	p.log.Info("frequency list loaded",
		slog.Int("hanzi", len(freq.Hanzi)),
		slog.Int("rows_skipped", freq.Stats.SkippedRows),
		slog.Int("with_definitions", freq.Stats.WithDefinitions))

	uni, err := unihan.Parse(p.cfg.UnihanPath)
	if err != nil {
		return fmt.Errorf("unihan dump %s: %w", p.cfg.UnihanPath, err)
	}
	p.log.Info("unihan parsed",
		slog.Int("definition_rows", uni.Stats.DefinitionRows),
		slog.Int("lines_skipped", uni.Stats.SkippedLines))

	// Frequency-list definitions supplement the Unihan candidates; Unihan
	// words keep positional priority.
	english := uni.Words
	for hanzi, words := range freq.EnglishWords {
		english[hanzi] = domain.DeduplicateWords(append(english[hanzi], words...))
	}

	ru, err := bkrs.Parse(p.cfg.BKRSDir)
	if err != nil {
		return fmt.Errorf("bkrs term banks %s: %w", p.cfg.BKRSDir, err)
	}
	p.log.Info("bkrs parsed",
		slog.Int("files", ru.Stats.Files),
		slog.Int("records", ru.Stats.TotalRecords),
		slog.Int("records_skipped", ru.Stats.SkippedRecords))

	entries, err := p.buildEntries(ctx, freq.Hanzi, english, ru.Words)
	if err != nil {
		return fmt.Errorf("build entries: %w", err)
	}
	p.log.Info("entries built",
		slog.Int("entries", len(entries)),
		slog.Int("expansions_cached", p.cache.Size()),
		slog.Duration("duration", time.Since(start)))

	datasetPath := filepath.Join(p.cfg.OutputDir, datasetFileName)
	if err := WriteDataset(datasetPath, entries); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := WriteChunks(filepath.Join(p.cfg.OutputDir, chunkDirName), entries, p.cfg.ChunkSize); err != nil {
		return fmt.Errorf("write chunks: %w", err)
	}
	p.log.Info("dataset written",
		slog.String("path", datasetPath),
		slog.Duration("total", time.Since(start)))

	Summarize(p.summary, entries)

	return nil
}

// buildEntries builds one entry per character in parallel while keeping
// the output slice in exact frequency-list order. An entry is either fully
// built or the run fails; there are no partial entries.
func (p *Pipeline) buildEntries(ctx context.Context, hanzi []string, english, russian map[string][]string) (domain.Dataset, error) {
	entries := make(domain.Dataset, len(hanzi))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for i, h := range hanzi {
		i, h := i, h
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := p.agg.BuildEntry(h, english[h], russian[h])
			if err != nil {
				return fmt.Errorf("hanzi %s: %w", h, err)
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
