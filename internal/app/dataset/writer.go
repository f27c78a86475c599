package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/hanzifier/internal/domain"
)

// DefaultChunkSize is the number of entries per chunk file.
const DefaultChunkSize = 100

// WriteDataset serializes the full dataset to a single JSON file, creating
// parent directories as needed.
func WriteDataset(path string, ds domain.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return writeJSON(path, ds)
}

// WriteChunks splits the dataset into contiguous chunks of exactly
// chunkSize entries (the last chunk may be shorter) and writes each chunk
// to dir as list_NNN.json, numbered from 1. Concatenating the chunk files
// in sequence order reproduces the full dataset's record sequence.
func WriteChunks(dir string, ds domain.Dataset, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create chunk directory: %w", err)
	}

	for start := 0; start < len(ds); start += chunkSize {
		end := min(start+chunkSize, len(ds))
		number := start/chunkSize + 1
		path := filepath.Join(dir, fmt.Sprintf("list_%03d.json", number))
		if err := writeJSON(path, ds[start:end]); err != nil {
			return fmt.Errorf("chunk %d: %w", number, err)
		}
	}

	return nil
}

func writeJSON(path string, payload any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
