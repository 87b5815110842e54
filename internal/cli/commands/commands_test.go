package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlecto/internal/cli/config"
	"github.com/leapstack-labs/sqlecto/internal/cli/output"
	"github.com/leapstack-labs/sqlecto/internal/cli/testutil"
	"github.com/leapstack-labs/sqlecto/internal/engine"

	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/all"
)

// loadConfig resolves configuration from flag arguments the way the root
// command does before running a subcommand.
func loadConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	old := config.DotEnvFile
	config.DotEnvFile = ""
	t.Cleanup(func() {
		config.DotEnvFile = old
		config.ResetConfig()
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	cfg, err := config.LoadConfig("", fs)
	require.NoError(t, err)
	return cfg
}

// execute runs cmd with args and returns stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		use  string
		flag string
	}{
		{cmd: NewRunCommand(), use: "run"},
		{cmd: NewTranspileCommand(), use: "transpile [sql]", flag: "python"},
		{cmd: NewDialectsCommand(), use: "dialects"},
		{cmd: NewConfigCommand(), use: "config"},
		{cmd: NewShellCommand(), use: "shell"},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Long, "Long should not be empty")
			if tt.flag != "" {
				assert.NotNil(t, tt.cmd.Flags().Lookup(tt.flag), "flag %q should exist", tt.flag)
			}
		})
	}
}

func TestTranspileCommand_Argument(t *testing.T) {
	loadConfig(t,
		"--source-dialect", "spark",
		"--target-dialect", "postgres",
		"--table-mappings", "db.t:prod.t",
		"--pretty=false",
		"-o", "json",
	)

	out, _, err := execute(t, NewTranspileCommand(), "", "SELECT NVL(a, 0) FROM db.t")
	require.NoError(t, err)

	var got struct {
		Statements []string `json:"statements"`
		Warnings   []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"SELECT COALESCE(a, 0) FROM prod.t"}, got.Statements)
	assert.Empty(t, got.Warnings)
}

func TestTranspileCommand_Stdin(t *testing.T) {
	loadConfig(t, "--source-dialect", "ansi", "--target-dialect", "ansi", "--pretty=false", "-o", "text")

	out, _, err := execute(t, NewTranspileCommand(), "select 1; select 2", "-")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n\nSELECT 2;\n", out)
}

func TestTranspileCommand_Python(t *testing.T) {
	loadConfig(t, "--source-dialect", "spark", "--target-dialect", "postgres", "--pretty=false", "-o", "markdown")

	code := `df = spark.sql("""SELECT NVL(a, 0) FROM t""")` + "\n" + `spark.sql("SELECT 1")`
	out, _, err := execute(t, NewTranspileCommand(), code, "--python")
	require.NoError(t, err)
	assert.Equal(t, "```sql\nSELECT COALESCE(a, 0) FROM t;\n\nSELECT 1;\n```\n", out)
}

func TestTranspileCommand_Errors(t *testing.T) {
	t.Run("missing dialect", func(t *testing.T) {
		loadConfig(t, "--target-dialect", "postgres")
		_, _, err := execute(t, NewTranspileCommand(), "", "SELECT 1")
		require.ErrorIs(t, err, config.ErrMissingParameter)
		assert.Contains(t, err.Error(), "--source-dialect")
	})

	t.Run("invalid statement", func(t *testing.T) {
		loadConfig(t, "--source-dialect", "spark", "--target-dialect", "postgres")
		_, _, err := execute(t, NewTranspileCommand(), "", "SELECT (1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parenthesis")
	})
}

func TestDialectsCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		loadConfig(t, "-o", "json")
		out, _, err := execute(t, NewDialectsCommand(), "")
		require.NoError(t, err)

		var infos []DialectInfo
		require.NoError(t, json.Unmarshal([]byte(out), &infos))
		byName := make(map[string]DialectInfo)
		for _, info := range infos {
			byName[info.Name] = info
		}
		require.Contains(t, byName, "spark")
		assert.Contains(t, byName["spark"].Aliases, "sparksql")
		assert.Equal(t, "``", byName["spark"].Quote)
		assert.Equal(t, "FETCH FIRST", byName["oracle"].Limit)
		assert.True(t, byName["postgres"].CastOperator)
	})

	t.Run("markdown", func(t *testing.T) {
		loadConfig(t)
		out, _, err := execute(t, NewDialectsCommand(), "")
		require.NoError(t, err)
		assert.Contains(t, out, "# Dialects")
		assert.Contains(t, out, "| postgres")
	})
}

func TestConfigCommand(t *testing.T) {
	loadConfig(t, "--source-dialect", "spark", "--table-mappings", "a:b")

	out, _, err := execute(t, NewConfigCommand(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "- **Config file:** none")
	assert.Contains(t, out, "source_dialect: spark")
	assert.Contains(t, out, "src_table: a")
	assert.Contains(t, out, "dst_table: b")
	assert.Contains(t, out, "output_dir: transpiled_queries")
}

func TestConfigCommand_JSON(t *testing.T) {
	loadConfig(t, "--source-dialect", "spark", "--table-mappings", "a:b", "-o", "json")

	out, _, err := execute(t, NewConfigCommand(), "")
	require.NoError(t, err)

	var got struct {
		ConfigFile string         `json:"config_file"`
		Config     map[string]any `json:"config"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "spark", got.Config["source_dialect"])
	assert.Equal(t, "transpiled_queries", got.Config["output_dir"])
	assert.Contains(t, got.Config, "table_mappings")
	assert.NotContains(t, got.Config, "SourceDialect")
}

func TestRunCommand(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "q.sql"), []byte("SELECT NVL(a, 0) FROM db.t;"), 0o600))
	out := filepath.Join(root, "out")

	loadConfig(t,
		"--source-dialect", "spark",
		"--target-dialect", "postgres",
		"--source-dir", root,
		"--output-dir", out,
		"--table-mappings", "db.t:prod.t",
		"--pretty=false",
		"--summary",
		"-o", "json",
	)

	stdout, _, err := execute(t, NewRunCommand(), "")
	require.NoError(t, err)

	var result engine.RunResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, 1, result.FilesProcessed)
	assert.Equal(t, 1, result.Statements)

	converted, err := os.ReadFile(filepath.Join(out, "converted_q.sql")) //nolint:gosec // test file
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(converted), "SELECT COALESCE(a, 0) FROM prod.t;\n\n"))
	assert.FileExists(t, filepath.Join(out, engine.SummaryFile))
}

func TestRunCommand_Markdown(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "q.sql"), []byte("SELECT 1; INVALID;"), 0o600))

	loadConfig(t,
		"--source-dialect", "spark",
		"--target-dialect", "postgres",
		"--source-dir", root,
		"--output-dir", filepath.Join(root, "out"),
	)

	stdout, _, err := execute(t, NewRunCommand(), "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# Transpiled spark to postgres")
	assert.Contains(t, stdout, "partial")
	assert.Contains(t, stdout, "1 statement(s) could not be transpiled")
}

func TestRunCommand_NoFiles(t *testing.T) {
	loadConfig(t, "--source-dialect", "spark", "--target-dialect", "postgres", "--source-dir", t.TempDir())

	stdout, _, err := execute(t, NewRunCommand(), "")
	require.ErrorIs(t, err, engine.ErrNoFiles)
	assert.Empty(t, stdout)
}

func TestRunCommand_MissingDialect(t *testing.T) {
	loadConfig(t, "--target-dialect", "postgres")
	_, _, err := execute(t, NewRunCommand(), "")
	require.ErrorIs(t, err, config.ErrMissingParameter)
}

// fakeReader feeds lines to the shell loop.
type fakeReader struct {
	lines   []string
	prompts []string
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeReader) SetPrompt(prompt string) {
	f.prompts = append(f.prompts, prompt)
}

func TestShellLoop(t *testing.T) {
	tr := testutil.NewTestRenderer(output.ModeMarkdown, false)
	cfg := config.Default()
	cfg.SourceDialect = "spark"
	cfg.TargetDialect = "postgres"
	cfg.Pretty = false

	rl := &fakeReader{lines: []string{
		"SELECT NVL(a, 0)",
		"FROM t;",
		".target duckdb",
		".target nope",
		".pretty maybe",
		".bogus",
		"SELECT 1;",
		".quit",
		"SELECT 2;",
	}}

	require.NoError(t, newShell(cfg, tr.Renderer).loop(rl))

	got := tr.Out.String()
	testutil.AssertNoANSI(t, got)
	assert.Contains(t, got, "sqlecto shell (spark -> postgres)")
	assert.Contains(t, got, "```sql\nSELECT COALESCE(a, 0) FROM t;\n```")
	assert.Contains(t, got, "spark -> duckdb")
	assert.Contains(t, got, "```sql\nSELECT 1;\n```")
	assert.NotContains(t, got, "SELECT 2")
	assert.Equal(t, "duckdb", cfg.TargetDialect)

	assert.Contains(t, tr.ErrOut.String(), "unknown dialect: nope")
	assert.Contains(t, tr.ErrOut.String(), "usage: .pretty on|off")
	assert.Contains(t, tr.ErrOut.String(), "unknown command: .bogus")
	assert.Contains(t, rl.prompts, shellContinuePrompt)
}

func TestShellLoop_EOF(t *testing.T) {
	out := &bytes.Buffer{}
	r := output.NewRendererWithTTY(out, out, false, output.ModeMarkdown)

	require.NoError(t, newShell(config.Default(), r).loop(&fakeReader{lines: []string{"SELECT 1;"}}))
	assert.Contains(t, out.String(), "missing required parameter: --source-dialect")
}

func TestJoinStatements(t *testing.T) {
	assert.Equal(t, "", joinStatements(nil))
	assert.Equal(t, "SELECT 1;", joinStatements([]string{"SELECT 1"}))
	assert.Equal(t, "A;\n\nB;", joinStatements([]string{"A", "B"}))
}
