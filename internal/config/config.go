// Package config loads and validates the pipeline configuration from a
// YAML file and environment variables.
package config

import "path/filepath"

// Config is the root application configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Output   OutputConfig   `yaml:"output"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Morph    MorphConfig    `yaml:"morph"`
	Log      LogConfig      `yaml:"log"`
}

// DataConfig locates the input files. File entries are resolved relative
// to Dir unless absolute.
type DataConfig struct {
	Dir           string `yaml:"dir"            env:"DATA_DIR"            env-default:"./data"`
	FrequencyFile string `yaml:"frequency_file" env:"DATA_FREQUENCY_FILE" env-default:"hanzi-frequency.csv"`
	UnihanFile    string `yaml:"unihan_file"    env:"DATA_UNIHAN_FILE"    env-default:"unihan-kdefinition.txt"`
	BKRSDir       string `yaml:"bkrs_dir"       env:"DATA_BKRS_DIR"       env-default:"BKRS"`
}

// OutputConfig locates the output directory. Empty means
// "<data dir>/processed".
type OutputConfig struct {
	Dir string `yaml:"dir" env:"OUTPUT_DIR"`
}

// PipelineConfig holds processing knobs.
type PipelineConfig struct {
	MaxRoots  int `yaml:"max_roots"  env:"PIPELINE_MAX_ROOTS"  env-default:"3"`
	ChunkSize int `yaml:"chunk_size" env:"PIPELINE_CHUNK_SIZE" env-default:"100"`
	Workers   int `yaml:"workers"    env:"PIPELINE_WORKERS"    env-default:"0"`
}

// MorphConfig locates optional lexical resources for the morphology
// oracles. Unset paths put the corresponding oracle into degraded mode;
// set paths that fail to load abort startup.
type MorphConfig struct {
	WordNetDir      string `yaml:"wordnet_dir"       env:"MORPH_WORDNET_DIR"`
	RussianDictPath string `yaml:"russian_dict_path" env:"MORPH_RUSSIAN_DICT"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// FrequencyPath returns the resolved frequency list path.
func (c *Config) FrequencyPath() string { return resolve(c.Data.Dir, c.Data.FrequencyFile) }

// UnihanPath returns the resolved Unihan dump path.
func (c *Config) UnihanPath() string { return resolve(c.Data.Dir, c.Data.UnihanFile) }

// BKRSPath returns the resolved BKRS term-bank directory.
func (c *Config) BKRSPath() string { return resolve(c.Data.Dir, c.Data.BKRSDir) }

// OutputPath returns the resolved output directory.
func (c *Config) OutputPath() string {
	if c.Output.Dir != "" {
		return c.Output.Dir
	}
	return filepath.Join(c.Data.Dir, "processed")
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
