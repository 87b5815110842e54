// Package config resolves sqlecto settings from defaults, a config file,
// .env values, environment variables and command-line flags.
package config

import (
	"github.com/leapstack-labs/sqlecto/internal/rewrite"
)

// TableMapping is an alias for the rewriter's mapping type.
type TableMapping = rewrite.TableMapping

// Config holds all CLI configuration options.
type Config struct {
	SourceFiles       []string       `koanf:"source_files" yaml:"source_files,omitempty" json:"source_files,omitempty"`
	SourceDir         string         `koanf:"source_dir" yaml:"source_dir,omitempty" json:"source_dir,omitempty"`
	SourceDialect     string         `koanf:"source_dialect" yaml:"source_dialect" json:"source_dialect"`
	TargetDialect     string         `koanf:"target_dialect" yaml:"target_dialect" json:"target_dialect"`
	TableMappings     []TableMapping `koanf:"table_mappings" yaml:"table_mappings,omitempty" json:"table_mappings,omitempty"`
	TableMappingsFile string         `koanf:"table_mappings_file" yaml:"table_mappings_file,omitempty" json:"table_mappings_file,omitempty"`
	OutputDir         string         `koanf:"output_dir" yaml:"output_dir" json:"output_dir"`
	MappingMode       string         `koanf:"mapping_mode" yaml:"mapping_mode" json:"mapping_mode"`
	KeepCreateTable   bool           `koanf:"keep_create_table" yaml:"keep_create_table" json:"keep_create_table"`
	Pretty            bool           `koanf:"pretty" yaml:"pretty" json:"pretty"`
	Unsupported       string         `koanf:"unsupported" yaml:"unsupported" json:"unsupported"`
	DryRun            bool           `koanf:"dry_run" yaml:"dry_run" json:"dry_run"`
	Validate          bool           `koanf:"validate" yaml:"validate" json:"validate"`
	Summary           bool           `koanf:"summary" yaml:"summary" json:"summary"`
	Verbose           bool           `koanf:"verbose" yaml:"verbose" json:"verbose"`
	OutputFormat      string         `koanf:"output" yaml:"output" json:"output"`
}

// Default configuration values
const (
	DefaultOutputDir   = "transpiled_queries"
	DefaultMappingMode = string(rewrite.ModeLiteral)
	DefaultUnsupported = "warn"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix          = "SQLECTO_"
)

// configFileNames are looked up in the working directory when no config
// file is given.
var configFileNames = []string{"sqlecto.yaml", "sqlecto.yml", "sqlecto.json"}

// DotEnvFile is read for SQLECTO_ variables when it exists.
var DotEnvFile = ".env"

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		OutputDir:    DefaultOutputDir,
		MappingMode:  DefaultMappingMode,
		Pretty:       true,
		Unsupported:  DefaultUnsupported,
		OutputFormat: DefaultOutput,
	}
}
