package engine

// run.go - batch orchestration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SummaryFile is the name WriteSummary writes.
const SummaryFile = "sqlecto_summary.json"

// RunResult describes a batch run.
type RunResult struct {
	ID            string        `json:"id"`
	SourceDialect string        `json:"source_dialect"`
	TargetDialect string        `json:"target_dialect"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"-"`
	DurationMS    int64         `json:"duration_ms"`
	DryRun        bool          `json:"dry_run"`
	Files         []FileResult  `json:"files"`

	FilesProcessed  int `json:"files_processed"`
	FilesFailed     int `json:"files_failed"`
	Statements      int `json:"statements"`
	StatementErrors int `json:"statement_errors"`
	Filtered        int `json:"filtered"`
	Warnings        int `json:"warnings"`
}

// HasFailures reports whether any file or statement failed.
func (r *RunResult) HasFailures() bool {
	return r.FilesFailed > 0 || r.StatementErrors > 0
}

// Run processes every discovered file. A failing file is logged and the
// batch continues. Cancellation is checked between files; the partial
// result is returned with the context error.
func (e *Engine) Run(ctx context.Context) (*RunResult, error) {
	files, err := e.Discover()
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		ID:            uuid.NewString(),
		SourceDialect: e.tr.Read().Name,
		TargetDialect: e.tr.Write().Name,
		StartedAt:     time.Now(),
		DryRun:        e.cfg.DryRun,
	}
	e.logger.Info("starting run", "run_id", result.ID, "files", len(files),
		"source_dialect", result.SourceDialect, "target_dialect", result.TargetDialect)

	for _, src := range files {
		if err := ctx.Err(); err != nil {
			result.finish()
			return result, err
		}

		e.logger.Info("processing file", "path", src.Path)
		fr, err := e.ProcessFile(ctx, src)
		if err != nil {
			e.logger.Error("error processing file", "path", src.Path, "error", err)
			fr.Error = err.Error()
			result.FilesFailed++
		} else {
			result.FilesProcessed++
		}
		result.Statements += fr.Statements
		result.StatementErrors += fr.Failed
		result.Filtered += fr.Filtered
		result.Warnings += len(fr.Warnings)
		result.Files = append(result.Files, *fr)
	}

	result.finish()
	e.logger.Info("run completed",
		"run_id", result.ID,
		"files_processed", result.FilesProcessed,
		"files_failed", result.FilesFailed,
		"statements", result.Statements,
		"statement_errors", result.StatementErrors,
		"duration_ms", result.DurationMS)
	return result, nil
}

func (r *RunResult) finish() {
	r.Duration = time.Since(r.StartedAt)
	r.DurationMS = r.Duration.Milliseconds()
}

// WriteSummary writes result as indented JSON to dir/SummaryFile and
// returns the path written.
func WriteSummary(result *RunResult, dir string) (string, error) {
	if result == nil {
		return "", fmt.Errorf("no run result to summarize")
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create summary directory: %w", err)
	}
	path := filepath.Join(dir, SummaryFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { //nolint:gosec // summary is meant to be shared
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	return path, nil
}
