package engine

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlecto/internal/extract"
	"github.com/leapstack-labs/sqlecto/internal/rewrite"
	"github.com/leapstack-labs/sqlecto/internal/testutil"
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/transpile"
)

// writeFile creates path under root with content, creating parents.
func writeFile(t *testing.T, root, path, content string) string {
	t.Helper()
	full := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	return full
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test file
	require.NoError(t, err)
	return string(data)
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	if cfg.SourceDialect == "" {
		cfg.SourceDialect = "spark"
	}
	if cfg.TargetDialect == "" {
		cfg.TargetDialect = "postgres"
	}
	cfg.Logger = testutil.NewTestLogger(t)
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		e, err := New(Config{SourceDialect: "spark", TargetDialect: "postgres"})
		require.NoError(t, err)

		cfg := e.Config()
		assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
		assert.Equal(t, ".", cfg.SourceDir)
		assert.Equal(t, rewrite.ModeLiteral, cfg.MappingMode)
	})

	t.Run("keeps explicit files without directory", func(t *testing.T) {
		e, err := New(Config{SourceDialect: "spark", TargetDialect: "postgres", SourceFiles: []string{"a.sql"}})
		require.NoError(t, err)
		assert.Empty(t, e.Config().SourceDir)
	})

	t.Run("dialect aliases", func(t *testing.T) {
		e, err := New(Config{SourceDialect: "SparkSQL", TargetDialect: "postgresql"})
		require.NoError(t, err)
		assert.Equal(t, "spark", e.tr.Read().Name)
		assert.Equal(t, "postgres", e.tr.Write().Name)
	})

	t.Run("missing dialect", func(t *testing.T) {
		_, err := New(Config{TargetDialect: "postgres"})
		require.ErrorIs(t, err, dialect.ErrDialectRequired)
		assert.Contains(t, err.Error(), "source dialect")
	})

	t.Run("unknown dialect", func(t *testing.T) {
		_, err := New(Config{SourceDialect: "spark", TargetDialect: "nope"})
		require.ErrorIs(t, err, transpile.ErrUnknownDialect)
		assert.Contains(t, err.Error(), "unsupported target dialect: nope")
	})
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.sql", "SELECT 1")
	writeFile(t, root, "sub/b.py", "")
	writeFile(t, root, "sub/.hidden/c.sql", "")
	writeFile(t, root, "__pycache__/d.py", "")
	writeFile(t, root, "notes.txt", "")
	writeFile(t, root, "out/e.sql", "")
	extra := writeFile(t, t.TempDir(), "extra.sql", "")

	out := filepath.Join(root, "out")
	e := newTestEngine(t, Config{
		SourceDir:   root,
		SourceFiles: []string{extra, filepath.Join(root, "a.sql")},
		OutputDir:   out,
	})

	files, err := e.Discover()
	require.NoError(t, err)

	var rels, outputs []string
	for _, f := range files {
		rels = append(rels, f.Rel)
		outputs = append(outputs, f.Output)
	}
	assert.Equal(t, []string{"extra.sql", "a.sql", filepath.Join("sub", "b.py")}, rels)
	assert.Equal(t, []string{
		filepath.Join(out, "converted_extra.sql"),
		filepath.Join(out, "converted_a.sql"),
		filepath.Join(out, "sub", "converted_b.sql"),
	}, outputs)
}

func TestDiscover_OutputCollision(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "q.py", "")
	writeFile(t, root, "q.sql", "")

	e := newTestEngine(t, Config{SourceDir: root, OutputDir: "out"})
	files, err := e.Discover()
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join("out", "converted_q.sql"), files[0].Output)
	assert.Equal(t, filepath.Join("out", "converted_q_sql.sql"), files[1].Output)
}

func TestDiscover_OutputCollision_ExplicitFiles(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a/q.sql", "SELECT 1")
	b := writeFile(t, root, "b/q.sql", "SELECT 2")
	c := writeFile(t, root, "c/q.sql", "SELECT 3")
	d := writeFile(t, root, "d/q_sql.sql", "SELECT 4")
	out := filepath.Join(root, "out")

	e := newTestEngine(t, Config{SourceFiles: []string{a, b, c, d}, OutputDir: out})
	files, err := e.Discover()
	require.NoError(t, err)
	require.Len(t, files, 4)

	outputs := make([]string, 0, len(files))
	for _, f := range files {
		outputs = append(outputs, f.Output)
	}
	assert.Equal(t, []string{
		filepath.Join(out, "converted_q.sql"),
		filepath.Join(out, "converted_q_sql.sql"),
		filepath.Join(out, "converted_q_sql_2.sql"),
		filepath.Join(out, "converted_q_sql_sql.sql"),
	}, outputs)

	result, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.FilesProcessed)
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	assert.Contains(t, readFile(t, filepath.Join(out, "converted_q_sql_2.sql")), "SELECT 3")
}

func TestDiscover_Errors(t *testing.T) {
	t.Run("no files", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "readme.md", "")
		e := newTestEngine(t, Config{SourceDir: root})
		_, err := e.Discover()
		require.ErrorIs(t, err, ErrNoFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		e := newTestEngine(t, Config{SourceDir: filepath.Join(t.TempDir(), "missing")})
		_, err := e.Discover()
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		rel     string
		keepExt bool
		want    string
	}{
		{rel: "query.sql", want: filepath.Join("out", "converted_query.sql")},
		{rel: filepath.Join("a", "b", "job.py"), want: filepath.Join("out", "a", "b", "converted_job.sql")},
		{rel: "job.py", keepExt: true, want: filepath.Join("out", "converted_job_py.sql")},
		{rel: "noext", keepExt: true, want: filepath.Join("out", "converted_noext.sql")},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath("out", tt.rel, tt.keepExt))
		})
	}
}

func TestProcessFile_SQL(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, root, "orders.sql", `CREATE TABLE x (a INT);
SELECT a FROM db.orders;
SELECT NVL(a, 0) FROM t;
INVALID SQL;
`)

	e := newTestEngine(t, Config{
		SourceFiles: []string{src},
		OutputDir:   filepath.Join(root, "out"),
		Mappings:    []rewrite.TableMapping{{Source: "db.orders", Target: "prod.orders"}},
	})
	files, err := e.Discover()
	require.NoError(t, err)
	require.Len(t, files, 1)

	res, err := e.ProcessFile(context.Background(), files[0])
	require.NoError(t, err)
	assert.Equal(t, extract.KindSQL, res.Kind)
	assert.Equal(t, 2, res.Statements)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Filtered)

	got := readFile(t, filepath.Join(root, "out", "converted_orders.sql"))
	assert.True(t, strings.HasPrefix(got,
		"SELECT a FROM prod.orders;\n\n"+separator+
			"SELECT COALESCE(a, 0) FROM t;\n\n"+separator+
			"-- Error transpiling query:\n-- parse error"), got)
	assert.True(t, strings.HasSuffix(got, "\nINVALID SQL;\n\n"+separator), got)
	assert.NotContains(t, got, "CREATE TABLE")
}

func TestProcessFile_KeepCreateTable(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, root, "ddl.sql", "CREATE TABLE x (a INT)")

	e := newTestEngine(t, Config{SourceFiles: []string{src}, OutputDir: root, KeepCreateTable: true})
	files, err := e.Discover()
	require.NoError(t, err)

	res, err := e.ProcessFile(context.Background(), files[0])
	require.NoError(t, err)
	assert.Equal(t, 0, res.Filtered)
	assert.Equal(t, 1, res.Statements)
	assert.Contains(t, readFile(t, files[0].Output), "CREATE TABLE x")
}

func TestProcessFile_Python(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, root, "jobs/daily.py", `
df = spark.sql("""
    SELECT a FROM db.orders
""")
spark.sql("SELECT NVL(b, 1) FROM t")
`)

	e := newTestEngine(t, Config{
		SourceDir: root,
		OutputDir: filepath.Join(root, "out"),
		Mappings:  []rewrite.TableMapping{{Source: "db.orders", Target: "prod.orders"}},
	})
	files, err := e.Discover()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, src, files[0].Path)

	res, err := e.ProcessFile(context.Background(), files[0])
	require.NoError(t, err)
	assert.Equal(t, extract.KindPython, res.Kind)

	got := readFile(t, filepath.Join(root, "out", "jobs", "converted_daily.sql"))
	assert.Equal(t,
		"SELECT a FROM prod.orders;\n\n"+separator+
			"SELECT COALESCE(b, 1) FROM t;\n\n"+separator, got)
}

func TestProcessFile_ByteOrderMark(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, root, "bom.sql", "\xEF\xBB\xBFSELECT 1;")

	e := newTestEngine(t, Config{SourceFiles: []string{src}, OutputDir: root})
	files, err := e.Discover()
	require.NoError(t, err)

	_, err = e.ProcessFile(context.Background(), files[0])
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n\n"+separator, readFile(t, files[0].Output))
}

func TestProcessFile_Errors(t *testing.T) {
	root := t.TempDir()
	e := newTestEngine(t, Config{OutputDir: root})

	_, err := e.ProcessFile(context.Background(), SourceFile{Path: writeFile(t, root, "notes.txt", "x")})
	require.ErrorIs(t, err, extract.ErrUnsupportedFileType)

	_, err = e.ProcessFile(context.Background(), SourceFile{Path: filepath.Join(root, "missing.sql")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestProcessFile_ErrorBlockShowsRewrittenQuery(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, root, "broken.sql", "INVALID db.orders;")

	e := newTestEngine(t, Config{
		SourceFiles: []string{src},
		OutputDir:   filepath.Join(root, "out"),
		Mappings:    []rewrite.TableMapping{{Source: "db.orders", Target: "prod.orders"}},
	})
	files, err := e.Discover()
	require.NoError(t, err)

	res, err := e.ProcessFile(context.Background(), files[0])
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)

	got := readFile(t, filepath.Join(root, "out", "converted_broken.sql"))
	assert.Contains(t, got, "\nINVALID prod.orders;\n")
	assert.NotContains(t, got, "db.orders")
}

func TestProcessFile_Validate(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, root, "q.sql", "SELECT a FROM t;\nSELECT a FROM t WHERE;")

	e := newTestEngine(t, Config{
		SourceDialect: "mysql",
		TargetDialect: "mysql",
		SourceFiles:   []string{src},
		OutputDir:     root,
		Validate:      true,
		DryRun:        true,
	})
	files, err := e.Discover()
	require.NoError(t, err)

	res, err := e.ProcessFile(context.Background(), files[0])
	require.NoError(t, err)
	assert.Equal(t, 2, res.Statements)
	require.Len(t, res.Warnings, 1)
	assert.True(t, strings.HasPrefix(res.Warnings[0], "validation:"), res.Warnings[0])
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/good.sql", "SELECT 1; SELECT 2;")
	writeFile(t, root, "src/nested/job.py", `spark.sql("SELECT 3")`)
	missing := filepath.Join(root, "missing.sql")
	out := filepath.Join(root, "out")

	logger, logs := testutil.NewCaptureLogger(t)
	e, err := New(Config{
		SourceDialect: "spark",
		TargetDialect: "postgres",
		SourceDir:     filepath.Join(root, "src"),
		SourceFiles:   []string{missing},
		OutputDir:     out,
		Logger:        logger,
	})
	require.NoError(t, err)

	result, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "error processing file")
	assert.Contains(t, logs.String(), "missing.sql")
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "spark", result.SourceDialect)
	assert.Equal(t, "postgres", result.TargetDialect)
	assert.Equal(t, 2, result.FilesProcessed)
	assert.Equal(t, 1, result.FilesFailed)
	assert.Equal(t, 3, result.Statements)
	assert.True(t, result.HasFailures())
	require.Len(t, result.Files, 3)
	assert.NotEmpty(t, result.Files[0].Error)

	assert.FileExists(t, filepath.Join(out, "converted_good.sql"))
	assert.FileExists(t, filepath.Join(out, "nested", "converted_job.sql"))
}

func TestRun_DryRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "q.sql", "SELECT 1")
	out := filepath.Join(root, "out")

	e := newTestEngine(t, Config{SourceDir: root, OutputDir: out, DryRun: true})
	result, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Statements)
	assert.NoDirExists(t, out)
}

func TestRun_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "q.sql", "SELECT 1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestEngine(t, Config{SourceDir: root, OutputDir: filepath.Join(root, "out")})
	result, err := e.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Empty(t, result.Files)
}

func TestRun_NoFiles(t *testing.T) {
	e := newTestEngine(t, Config{SourceDir: t.TempDir()})
	_, err := e.Run(context.Background())
	require.ErrorIs(t, err, ErrNoFiles)
}

func TestWriteSummary(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "q.sql", "SELECT 1")
	out := filepath.Join(root, "out")

	e := newTestEngine(t, Config{SourceDir: root, OutputDir: out})
	result, err := e.Run(context.Background())
	require.NoError(t, err)

	path, err := WriteSummary(result, out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, SummaryFile), path)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(readFile(t, path)), &decoded))
	assert.Equal(t, result.ID, decoded["id"])
	assert.EqualValues(t, 1, decoded["files_processed"])
	assert.Len(t, decoded["files"], 1)

	_, err = WriteSummary(nil, out)
	require.Error(t, err)
}
