// Package engine provides the batch processor: it discovers input files,
// rewrites table names, transpiles every statement and writes the results
// into an output tree that mirrors the inputs.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sqlecto/internal/rewrite"
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/transpile"

	// Register every dialect
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/all"
)

// DefaultOutputDir is used when Config.OutputDir is empty.
const DefaultOutputDir = "transpiled_queries"

// ErrNoFiles is returned when discovery finds nothing to process.
var ErrNoFiles = errors.New("no files found to process")

// Engine processes batches of SQL and Python files.
type Engine struct {
	cfg      Config
	tr       *transpile.Transpiler
	rewriter *rewrite.Rewriter
	logger   *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// SourceDialect and TargetDialect name registered dialects.
	SourceDialect string
	TargetDialect string
	// SourceFiles are processed first, in order.
	SourceFiles []string
	// SourceDir is scanned recursively for .sql and .py files.
	SourceDir string
	// OutputDir receives the converted files (default transpiled_queries)
	OutputDir string
	// Mappings are applied to every statement before transpiling.
	Mappings    []rewrite.TableMapping
	MappingMode rewrite.Mode
	// KeepCreateTable disables dropping CREATE TABLE statements.
	KeepCreateTable bool
	Pretty          bool
	Unsupported     transpile.UnsupportedLevel
	// DryRun processes files without writing outputs.
	DryRun bool
	// Validate parses MySQL output with a MySQL grammar.
	Validate bool
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine, resolving both dialects.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	read, err := resolveDialect("source", cfg.SourceDialect)
	if err != nil {
		return nil, err
	}
	write, err := resolveDialect("target", cfg.TargetDialect)
	if err != nil {
		return nil, err
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if len(cfg.SourceFiles) == 0 && cfg.SourceDir == "" {
		logger.Info("no source file or directory specified, defaulting to current directory")
		cfg.SourceDir = "."
	}
	if cfg.MappingMode == "" {
		cfg.MappingMode = rewrite.ModeLiteral
	}
	if cfg.Validate && !validates(write) {
		logger.Warn("output validation is only available for the mysql target", "target", write.Name)
	}

	logger.Debug("initializing engine",
		"source_dialect", read.Name,
		"target_dialect", write.Name,
		"mappings", len(cfg.Mappings),
		"mapping_mode", cfg.MappingMode)

	return &Engine{
		cfg:      cfg,
		tr:       transpile.NewWithDialects(read, write, transpile.WithPretty(cfg.Pretty), transpile.WithUnsupported(cfg.Unsupported)),
		rewriter: rewrite.New(cfg.Mappings, cfg.MappingMode, read),
		logger:   logger,
	}, nil
}

func resolveDialect(role, name string) (*dialect.Dialect, error) {
	if name == "" {
		return nil, fmt.Errorf("%s dialect: %w", role, dialect.ErrDialectRequired)
	}
	d, ok := dialect.Get(name)
	if !ok {
		return nil, fmt.Errorf("unsupported %s dialect: %s (%w)", role, name, transpile.ErrUnknownDialect)
	}
	return d, nil
}

// Config returns the effective configuration, defaults applied.
func (e *Engine) Config() Config {
	return e.cfg
}
