package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/leapstack-labs/sqlecto/internal/extract"
)

// separator follows every statement in an output file.
var separator = "\n" + strings.Repeat("-", 80) + "\n\n"

// FileResult describes the processing of one input file.
type FileResult struct {
	Path       string       `json:"path"`
	Output     string       `json:"output,omitempty"`
	Kind       extract.Kind `json:"kind,omitempty"`
	Statements int          `json:"statements"`
	// Failed counts statements written as error comments.
	Failed int `json:"failed"`
	// Filtered counts CREATE TABLE statements dropped.
	Filtered int      `json:"filtered"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// ProcessFile converts a single file. A statement that cannot be
// transpiled is written as an error comment and the file carries on; the
// returned error is reserved for failures of the file itself.
func (e *Engine) ProcessFile(ctx context.Context, src SourceFile) (*FileResult, error) {
	res := &FileResult{Path: src.Path, Output: src.Output}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	kind, err := extract.KindOf(src.Path)
	if err != nil {
		return res, err
	}
	res.Kind = kind

	content, err := readSource(src.Path)
	if err != nil {
		return res, err
	}

	queries := extract.Queries(kind, content, e.tr.Read())
	if !e.cfg.KeepCreateTable {
		kept := extract.FilterCreateTable(queries)
		res.Filtered = len(queries) - len(kept)
		queries = kept
	}
	e.logger.Debug("extracted queries", "path", src.Path, "kind", kind, "count", len(queries), "filtered", res.Filtered)

	var b strings.Builder
	for _, query := range queries {
		out := e.convert(src.Path, query, res)
		if out == "" {
			continue
		}
		b.WriteString(out)
		b.WriteString(";\n\n")
		b.WriteString(separator)
	}

	if e.cfg.DryRun {
		return res, nil
	}
	if src.Output == "" {
		return res, fmt.Errorf("no output path for %s", src.Path)
	}
	if err := os.MkdirAll(filepath.Dir(src.Output), 0o750); err != nil {
		return res, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(src.Output, []byte(b.String()), 0o644); err != nil { //nolint:gosec // outputs are plain SQL for the user
		return res, fmt.Errorf("failed to write %s: %w", src.Output, err)
	}
	e.logger.Debug("wrote output", "path", src.Output, "statements", res.Statements)
	return res, nil
}

// convert rewrites and transpiles one query, recording the outcome in res.
func (e *Engine) convert(path, query string, res *FileResult) string {
	rewritten := e.rewriter.Rewrite(query)
	out, warnings, err := e.tr.Statement(rewritten)
	for _, w := range warnings {
		e.logger.Warn("unsupported construct", "path", path, "warning", w)
		res.Warnings = append(res.Warnings, w)
	}
	if err != nil {
		e.logger.Warn("failed to transpile query", "path", path, "error", err)
		res.Failed++
		return errorBlock(err, rewritten)
	}
	if out == "" {
		return ""
	}
	res.Statements++

	if e.cfg.Validate && validates(e.tr.Write()) {
		if verr := validateStatement(out); verr != nil {
			msg := fmt.Sprintf("validation: %v", verr)
			e.logger.Warn("output failed validation", "path", path, "error", verr)
			res.Warnings = append(res.Warnings, msg)
		}
	}
	return out
}

// errorBlock keeps a failed query in the output, prefixed by the error as
// SQL comments.
func errorBlock(err error, query string) string {
	var b strings.Builder
	b.WriteString("-- Error transpiling query:\n")
	for _, line := range strings.Split(err.Error(), "\n") {
		b.WriteString("-- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(query)
	return b.String()
}

// readSource reads a file as UTF-8, honouring a UTF-8 or UTF-16 byte order
// mark.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from discovery or the user
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return string(decoded), nil
}
