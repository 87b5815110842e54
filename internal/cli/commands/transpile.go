package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlecto/internal/cli/output"
	"github.com/leapstack-labs/sqlecto/internal/extract"
	"github.com/leapstack-labs/sqlecto/pkg/transpile"
)

// NewTranspileCommand creates the transpile command.
func NewTranspileCommand() *cobra.Command {
	var fromPython bool

	cmd := &cobra.Command{
		Use:   "transpile [sql]",
		Short: "Transpile SQL given as an argument or on stdin",
		Long: `Transpile one or more statements and print the result.

The SQL is read from the argument, or from stdin when no argument or "-"
is given. Table mappings are applied before transpiling.`,
		Example: `  sqlecto transpile --source-dialect spark --target-dialect postgres "SELECT NVL(a, 0) FROM t"
  cat query.sql | sqlecto transpile --source-dialect hive --target-dialect trino
  sqlecto transpile --python --source-dialect spark --target-dialect duckdb < job.py`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runTranspile(cmd, sql, fromPython)
		},
	}

	cmd.Flags().BoolVar(&fromPython, "python", false, "Treat the input as Python source and transpile its spark.sql strings")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func runTranspile(cmd *cobra.Command, input string, fromPython bool) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	conv, err := newConverter(cc.Cfg)
	if err != nil {
		return err
	}

	sql := input
	if fromPython {
		sql = strings.Join(extract.PythonQueries(input), ";\n")
	}

	res, err := conv.convert(sql)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		cc.Logger.Warn("unsupported construct", "warning", w)
	}
	return renderStatements(r, res)
}

func renderStatements(r *output.Renderer, res *transpile.Result) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		warnings := res.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		return r.JSON(map[string]any{
			"statements": res.Statements,
			"warnings":   warnings,
		})
	case output.ModeMarkdown:
		if len(res.Statements) > 0 {
			r.Println(output.FormatCodeBlock("sql", joinStatements(res.Statements)))
		}
		for _, w := range res.Warnings {
			r.Println("> " + w)
		}
	default:
		if len(res.Statements) > 0 {
			r.Println(joinStatements(res.Statements))
		}
		for _, w := range res.Warnings {
			_, _ = fmt.Fprintln(r.ErrWriter(), r.Styles().Warning.Render("! "+w))
		}
	}
	return nil
}

// joinStatements terminates each statement and separates them with a
// blank line.
func joinStatements(stmts []string) string {
	var b strings.Builder
	for i, s := range stmts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s)
		b.WriteString(";")
	}
	return b.String()
}
