package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlecto/internal/cli/output"
	"github.com/leapstack-labs/sqlecto/internal/engine"
)

// NewRunCommand creates the run command. The root command runs the same
// batch when invoked without a subcommand.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Transpile every source file into the output directory",
		Long: `Discover .sql and .py files, rewrite table names, transpile each
statement from the source dialect to the target dialect and write
converted_<name>.sql files into the output directory.

A file that fails is reported and the remaining files are still processed.`,
		Example: `  # Convert a directory of Spark SQL to PostgreSQL
  sqlecto run --source-dialect spark --target-dialect postgres --source-dir queries

  # Rename tables while converting
  sqlecto run --source-dialect hive --target-dialect trino \
    --table-mappings raw.orders:lake.orders --source-files job.py`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunBatch(cmd)
		},
	}
}

// RunBatch processes the configured files and renders a summary.
func RunBatch(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	eng, err := newEngine(cc)
	if err != nil {
		return err
	}

	result, runErr := eng.Run(cmd.Context())
	if result == nil {
		return runErr
	}

	if cc.Cfg.Summary && !cc.Cfg.DryRun {
		path, err := engine.WriteSummary(result, eng.Config().OutputDir)
		if err != nil {
			return err
		}
		cc.Logger.Info("wrote run summary", "path", path)
	}

	if err := renderRun(r, result, eng.Config().OutputDir); err != nil {
		return err
	}
	return runErr
}

func renderRun(r *output.Renderer, result *engine.RunResult, outputDir string) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(result)
	}

	r.Header(1, fmt.Sprintf("Transpiled %s to %s", result.SourceDialect, result.TargetDialect))
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Run", result.ID))
		r.Println(output.FormatKeyValue("Output", outputDir))
		r.Println(output.FormatKeyValue("Duration", fmt.Sprintf("%dms", result.DurationMS)))
		r.Println()
	}

	rows := make([][]string, 0, len(result.Files))
	for _, f := range result.Files {
		status := "ok"
		switch {
		case f.Error != "":
			status = "failed: " + f.Error
		case f.Failed > 0:
			status = "partial"
		case len(f.Warnings) > 0:
			status = "warnings"
		}
		out := f.Output
		if result.DryRun || f.Error != "" {
			out = "-"
		}
		rows = append(rows, []string{
			f.Path,
			out,
			strconv.Itoa(f.Statements),
			strconv.Itoa(f.Failed),
			strconv.Itoa(f.Filtered),
			status,
		})
	}
	r.Table([]string{"File", "Output", "Statements", "Errors", "Filtered", "Status"}, rows)
	r.Println()

	summary := fmt.Sprintf("%d file(s), %d statement(s)", result.FilesProcessed, result.Statements)
	switch {
	case result.HasFailures():
		r.Warning(fmt.Sprintf("%s; %d file(s) failed, %d statement(s) could not be transpiled",
			summary, result.FilesFailed, result.StatementErrors))
	case result.DryRun:
		r.Success(summary + " (dry run, nothing written)")
	default:
		r.Success(summary)
	}
	return nil
}
