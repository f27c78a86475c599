package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Pipeline.MaxRoots <= 0 {
		return fmt.Errorf("pipeline.max_roots must be > 0 (got %d)", c.Pipeline.MaxRoots)
	}
	if c.Pipeline.ChunkSize <= 0 {
		return fmt.Errorf("pipeline.chunk_size must be > 0 (got %d)", c.Pipeline.ChunkSize)
	}
	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("pipeline.workers must be >= 0 (got %d)", c.Pipeline.Workers)
	}
	return nil
}
