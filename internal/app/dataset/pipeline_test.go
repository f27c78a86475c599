package dataset_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/hanzifier/internal/app/dataset"
	"github.com/heartmarshall/hanzifier/internal/domain"
	"github.com/heartmarshall/hanzifier/internal/morph"
	"github.com/heartmarshall/hanzifier/internal/morph/english"
	"github.com/heartmarshall/hanzifier/internal/morph/russian"
)

func writePipelineInputs(t *testing.T) dataset.Config {
	t.Helper()
	dir := t.TempDir()

	freq := strings.Join([]string{
		"hanzi_sc,cc_cedict_definitions",
		"学,to study; to learn",
		"好,good",
		"〇,",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hanzi-frequency.csv"), []byte(freq), 0o644))

	unihan := strings.Join([]string{
		"U+5B66\t学\tkDefinition\tto study; to learn",
		"U+597D\t好\tkDefinition\tgood; well",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unihan-kdefinition.txt"), []byte(unihan), 0o644))

	bkrsDir := filepath.Join(dir, "BKRS")
	require.NoError(t, os.MkdirAll(bkrsDir, 0o755))
	termBank := `[["学", "", "", "", 0, ["учиться"], 0, ""]]`
	require.NoError(t, os.WriteFile(filepath.Join(bkrsDir, "term_bank_1.json"), []byte(termBank), 0o644))

	return dataset.Config{
		FrequencyPath: filepath.Join(dir, "hanzi-frequency.csv"),
		UnihanPath:    filepath.Join(dir, "unihan-kdefinition.txt"),
		BKRSDir:       bkrsDir,
		OutputDir:     filepath.Join(dir, "processed"),
		MaxRoots:      3,
		ChunkSize:     2,
		Workers:       4,
	}
}

func degradedOracles(t *testing.T) map[domain.Language]morph.Oracle {
	t.Helper()
	en, err := english.New("")
	require.NoError(t, err)
	ru, err := russian.New("")
	require.NoError(t, err)
	return map[domain.Language]morph.Oracle{
		domain.LanguageEnglish: en,
		domain.LanguageRussian: ru,
	}
}

func TestPipeline_Run(t *testing.T) {
	cfg := writePipelineInputs(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var summary strings.Builder
	p := dataset.NewPipeline(log, cfg, degradedOracles(t), &summary)
	require.NoError(t, p.Run(context.Background()))

	raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "hanzi-meanings.json"))
	require.NoError(t, err)

	var ds domain.Dataset
	require.NoError(t, json.Unmarshal(raw, &ds))
	require.Len(t, ds, 3)

	// Frequency-list order is preserved.
	require.Equal(t, "学", ds[0].Hanzi)
	require.Equal(t, "好", ds[1].Hanzi)
	require.Equal(t, "〇", ds[2].Hanzi)

	// Roots expand in selection order with each root's variants sorted.
	wantEnglish := []string{"study", "study#ing", "learn", "learn#ed", "learn#ing", "learn#s"}
	require.GreaterOrEqual(t, len(ds[0].Meanings), len(wantEnglish))
	require.Equal(t, wantEnglish, ds[0].Meanings[:len(wantEnglish)])
	require.Contains(t, ds[0].Meanings, "учиться")

	// A character without candidates still gets an entry.
	require.NotNil(t, ds[2].Meanings)
	require.Empty(t, ds[2].Meanings)

	// Chunks: two full-or-partial files whose concatenation is the dataset.
	var joined domain.Dataset
	for _, name := range []string{"list_001.json", "list_002.json"} {
		raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "lists", name))
		require.NoError(t, err)
		var chunk domain.Dataset
		require.NoError(t, json.Unmarshal(raw, &chunk))
		joined = append(joined, chunk...)
	}
	require.Equal(t, ds, joined)
	require.NoFileExists(t, filepath.Join(cfg.OutputDir, "lists", "list_003.json"))

	out := summary.String()
	require.Contains(t, out, "Hanzi count: 3")
	require.Contains(t, out, "Sample entries:")
	require.Contains(t, out, "- 学: ")
}

func TestPipeline_Run_Reproducible(t *testing.T) {
	cfg := writePipelineInputs(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	read := func() []byte {
		raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "hanzi-meanings.json"))
		require.NoError(t, err)
		return raw
	}

	require.NoError(t, dataset.NewPipeline(log, cfg, degradedOracles(t), io.Discard).Run(context.Background()))
	first := read()

	require.NoError(t, dataset.NewPipeline(log, cfg, degradedOracles(t), io.Discard).Run(context.Background()))
	require.Equal(t, first, read(), "two runs over identical inputs must be byte-identical")
}

func TestPipeline_Run_MissingInput(t *testing.T) {
	cfg := writePipelineInputs(t)
	cfg.FrequencyPath = filepath.Join(t.TempDir(), "absent.csv")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := dataset.NewPipeline(log, cfg, degradedOracles(t), io.Discard).Run(context.Background())
	require.Error(t, err)
}

func TestPipeline_Run_Canceled(t *testing.T) {
	cfg := writePipelineInputs(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := dataset.NewPipeline(log, cfg, degradedOracles(t), io.Discard).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
