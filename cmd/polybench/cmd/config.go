package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/polyring/utils"
)

// Operation names accepted in the configuration.
const (
	OpAdd             = "add"
	OpMul             = "mul"
	OpMulByX          = "mulbyx"
	OpMulByLeftVector = "mulbyleftvector"
)

var knownOps = map[string]bool{
	OpAdd:             true,
	OpMul:             true,
	OpMulByX:          true,
	OpMulByLeftVector: true,
}

// MatrixShape is the shape of the operands of the matrix benchmarks.
type MatrixShape struct {
	Degree int `yaml:"degree"`
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
}

// Config is the benchmark configuration, read from a YAML file.
type Config struct {
	Seed     string      `yaml:"seed"`
	Trials   int         `yaml:"trials"`
	Degrees  []int       `yaml:"degrees"`
	Types    []string    `yaml:"types"`
	Ops      []string    `yaml:"operations"`
	Matrix   MatrixShape `yaml:"matrix"`
	Chart    string      `yaml:"chart,omitempty"`
	LogLevel string      `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Seed:     "polyring",
		Trials:   5,
		Degrees:  []int{2048, 4096, 8192, 16384},
		Types:    utils.SortedKeys(runners),
		Ops:      []string{OpAdd, OpMul, OpMulByX, OpMulByLeftVector},
		Matrix:   MatrixShape{Degree: 100, Rows: 10, Cols: 10},
		LogLevel: "info",
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig and validates the result.
// Unknown fields are rejected. An empty path returns DefaultConfig.
func LoadConfig(path string) (cfg Config, err error) {

	cfg = DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return Config{}, fmt.Errorf("cannot LoadConfig: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("cannot LoadConfig: %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("cannot LoadConfig: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate returns an error if cfg cannot be run.
func (cfg Config) Validate() error {

	if cfg.Trials < 1 {
		return fmt.Errorf("invalid trials: %d < 1", cfg.Trials)
	}

	for _, N := range cfg.Degrees {
		if N < 1 {
			return fmt.Errorf("invalid ring degree: %d < 1", N)
		}
	}

	for _, typ := range cfg.Types {
		if _, ok := runners[typ]; !ok {
			return fmt.Errorf("invalid type: %q, must be one of %v", typ, utils.SortedKeys(runners))
		}
	}

	for _, op := range cfg.Ops {
		if !knownOps[op] {
			return fmt.Errorf("invalid operation: %q, must be one of %v", op, utils.SortedKeys(knownOps))
		}
	}

	if m := cfg.Matrix; m.Degree < 1 || m.Rows < 1 || m.Cols < 1 {
		return fmt.Errorf("invalid matrix shape: degree=%d rows=%d cols=%d", m.Degree, m.Rows, m.Cols)
	}

	if _, err := cfg.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (cfg Config) Level() (level slog.Level, err error) {
	if err = level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level: %w", err)
	}
	return
}

func (cfg Config) marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
