package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlecto/internal/rewrite"
	"github.com/leapstack-labs/sqlecto/pkg/transpile"

	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/all"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// noDotEnv points DotEnvFile at a file that does not exist.
func noDotEnv(t *testing.T) {
	t.Helper()
	old := DotEnvFile
	DotEnvFile = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() {
		DotEnvFile = old
		ResetConfig()
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	noDotEnv(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultMappingMode, cfg.MappingMode)
	assert.Equal(t, DefaultUnsupported, cfg.Unsupported)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.True(t, cfg.Pretty)
	assert.Empty(t, cfg.TableMappings)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	noDotEnv(t)
	path := writeFile(t, t.TempDir(), "sqlecto.yml", `
source_dialect: spark
target_dialect: postgres
source_dir: queries
output_dir: out
pretty: false
table_mappings:
  - src_table: db.orders
    dst_table: prod.orders
  - "db.users:prod.users"
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, "spark", cfg.SourceDialect)
	assert.Equal(t, "postgres", cfg.TargetDialect)
	assert.Equal(t, "queries", cfg.SourceDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, []TableMapping{
		{Source: "db.orders", Target: "prod.orders"},
		{Source: "db.users", Target: "prod.users"},
	}, cfg.TableMappings)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	noDotEnv(t)
	path := writeFile(t, t.TempDir(), "config.json", `{
  "source_dialect": "hive",
  "target_dialect": "trino",
  "source_files": ["a.sql", "b.py"],
  "table_mappings": [{"src_table": "a", "dst_table": "b"}]
}`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "hive", cfg.SourceDialect)
	assert.Equal(t, []string{"a.sql", "b.py"}, cfg.SourceFiles)
	assert.Equal(t, []TableMapping{{Source: "a", Target: "b"}}, cfg.TableMappings)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	noDotEnv(t)
	dir := t.TempDir()

	_, err := LoadConfig(writeFile(t, dir, "config.toml", "a = 1"), nil)
	require.ErrorIs(t, err, ErrInvalidConfigFile)

	_, err = LoadConfig(writeFile(t, dir, "broken.json", "{"), nil)
	require.ErrorIs(t, err, ErrInvalidConfigFile)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	require.ErrorIs(t, err, ErrInvalidConfigFile)
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	noDotEnv(t)
	path := writeFile(t, t.TempDir(), "sqlecto.yaml", `
source_dialect: spark
target_dialect: postgres
table_mappings: ["a:b"]
`)

	flags := parseFlags(t,
		"--config-file", path,
		"--source-dialect", "hive",
		"--table-mappings", "x:y",
		"--table-mappings", "p:q",
		"--pretty=false",
		"-o", "json",
	)

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, "hive", cfg.SourceDialect)
	assert.Equal(t, "postgres", cfg.TargetDialect)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, []TableMapping{
		{Source: "a", Target: "b"},
		{Source: "x", Target: "y"},
		{Source: "p", Target: "q"},
	}, cfg.TableMappings)
}

func TestLoadConfig_UnsetFlagsKeepFileValues(t *testing.T) {
	noDotEnv(t)
	path := writeFile(t, t.TempDir(), "sqlecto.yaml", "pretty: false\noutput_dir: converted\n")

	cfg, err := LoadConfig(path, parseFlags(t))
	require.NoError(t, err)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, "converted", cfg.OutputDir)
}

func TestLoadConfig_Env(t *testing.T) {
	noDotEnv(t)
	t.Setenv("SQLECTO_TARGET_DIALECT", "trino")
	t.Setenv("SQLECTO_TABLE_MAPPINGS", "e:f,g:h")
	t.Setenv("SQLECTO_DRY_RUN", "true")

	cfg, err := LoadConfig("", parseFlags(t, "--target-dialect", "duckdb"))
	require.NoError(t, err)

	assert.Equal(t, "duckdb", cfg.TargetDialect)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, []TableMapping{
		{Source: "e", Target: "f"},
		{Source: "g", Target: "h"},
	}, cfg.TableMappings)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	noDotEnv(t)
	DotEnvFile = writeFile(t, t.TempDir(), ".env", "SQLECTO_SOURCE_DIR=queries\nSQLECTO_SOURCE_DIALECT=spark\nOTHER=1\n")
	t.Setenv("SQLECTO_SOURCE_DIALECT", "hive")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "queries", cfg.SourceDir)
	assert.Equal(t, "hive", cfg.SourceDialect)
}

func TestLoadConfig_MappingsFile(t *testing.T) {
	noDotEnv(t)
	dir := t.TempDir()
	mappings := writeFile(t, dir, "mappings.yaml", `
table_mappings:
  - src_table: s1
    dst_table: d1
  - s2:d2
`)

	cfg, err := LoadConfig("", parseFlags(t,
		"--table-mappings", "f:g",
		"--table-mappings-file", mappings,
	))
	require.NoError(t, err)
	assert.Equal(t, []TableMapping{
		{Source: "f", Target: "g"},
		{Source: "s1", Target: "d1"},
		{Source: "s2", Target: "d2"},
	}, cfg.TableMappings)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	noDotEnv(t)

	_, err := LoadConfig("", parseFlags(t, "--table-mappings", "nocolon"))
	require.ErrorIs(t, err, rewrite.ErrInvalidMapping)

	_, err = LoadConfig("", parseFlags(t, "--unsupported", "explode"))
	require.Error(t, err)

	_, err = LoadConfig("", parseFlags(t, "--mapping-mode", "regex"))
	require.Error(t, err)

	_, err = LoadConfig("", parseFlags(t, "-o", "xml"))
	require.Error(t, err)
}

func TestLoadMappingsFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json list", func(t *testing.T) {
		path := writeFile(t, dir, "m.json", `[{"src_table": "a", "dst_table": "b"}, "c:d"]`)
		got, err := LoadMappingsFile(path)
		require.NoError(t, err)
		assert.Equal(t, []TableMapping{{Source: "a", Target: "b"}, {Source: "c", Target: "d"}}, got)
	})

	t.Run("empty object", func(t *testing.T) {
		got, err := LoadMappingsFile(writeFile(t, dir, "empty.yaml", "other: 1\n"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := LoadMappingsFile(writeFile(t, dir, "bad.yaml", "- src_table: a\n"))
		require.ErrorIs(t, err, rewrite.ErrInvalidMapping)
		assert.Contains(t, err.Error(), "entry 1")
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := LoadMappingsFile(writeFile(t, dir, "scalar.yaml", "table_mappings: 3\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMappingsFile(filepath.Join(dir, "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRequireDialects(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{SourceDialect: "spark", TargetDialect: "PostgreSQL"}},
		{name: "missing source", cfg: Config{TargetDialect: "postgres"}, wantErr: "missing required parameter: --source-dialect"},
		{name: "missing target", cfg: Config{SourceDialect: "spark"}, wantErr: "missing required parameter: --target-dialect"},
		{name: "unknown source", cfg: Config{SourceDialect: "cobol", TargetDialect: "postgres"}, wantErr: "unsupported source dialect: cobol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.RequireDialects()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	err := (&Config{SourceDialect: "x", TargetDialect: "y"}).RequireDialects()
	require.ErrorIs(t, err, transpile.ErrUnknownDialect)
	err = (&Config{}).RequireDialects()
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestCheck(t *testing.T) {
	cfg := Default()
	cfg.Validate = true
	require.NoError(t, cfg.Check())

	cfg.MappingMode = "regex"
	require.Error(t, cfg.Check())
}

func TestLoadConfig_ValidateKey(t *testing.T) {
	noDotEnv(t)
	path := writeFile(t, t.TempDir(), "sqlecto.json", `{"validate": true, "target_dialect": "mysql"}`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Validate)
	assert.Equal(t, "mysql", cfg.TargetDialect)
}
