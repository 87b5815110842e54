package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/sqlecto/internal/extract"
)

// SourceFile is one input of a run.
type SourceFile struct {
	// Path is the file path as given or found.
	Path string `json:"path"`
	// Rel is the path relative to the source directory, or the base name
	// for explicitly listed files.
	Rel string `json:"rel"`
	// Output is where the converted statements are written.
	Output string `json:"output"`
}

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	"__pycache__":  true,
	"node_modules": true,
}

// Discover lists the files to process: explicit files first, then a
// recursive scan of the source directory. Explicit files are kept whatever
// their extension so that unsupported ones are reported per file.
func (e *Engine) Discover() ([]SourceFile, error) {
	var files []SourceFile
	seen := make(map[string]bool)
	add := func(path, rel string) {
		key := path
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, SourceFile{Path: path, Rel: rel})
	}

	for _, f := range e.cfg.SourceFiles {
		if strings.TrimSpace(f) == "" {
			continue
		}
		add(f, filepath.Base(f))
	}

	if e.cfg.SourceDir != "" {
		found, err := e.scan(e.cfg.SourceDir)
		if err != nil {
			return nil, err
		}
		for _, sf := range found {
			add(sf.Path, sf.Rel)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	e.assignOutputs(files)
	e.logger.Debug("discovered files", "count", len(files))
	return files, nil
}

func (e *Engine) scan(root string) ([]SourceFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source directory %s is not a directory", root)
	}

	outAbs, _ := filepath.Abs(e.cfg.OutputDir)

	var files []SourceFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			e.logger.Warn("skipping unreadable path", "path", path, "error", walkErr)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || skippedDirs[name] {
				return fs.SkipDir
			}
			if abs, err := filepath.Abs(path); err == nil && abs == outAbs {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !extract.Supported(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		files = append(files, SourceFile{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return files, nil
}

// assignOutputs sets each file's output path. An input that would map to a
// taken output keeps its source extension in the name, then gets a numeric
// suffix until the name is free.
func (e *Engine) assignOutputs(files []SourceFile) {
	taken := make(map[string]bool)
	for i := range files {
		out := OutputPath(e.cfg.OutputDir, files[i].Rel, false)
		if taken[out] {
			out = OutputPath(e.cfg.OutputDir, files[i].Rel, true)
		}
		if taken[out] {
			base := strings.TrimSuffix(out, ".sql")
			for n := 2; taken[out]; n++ {
				out = fmt.Sprintf("%s_%d.sql", base, n)
			}
		}
		taken[out] = true
		files[i].Output = out
	}
}

// OutputPath returns converted_<stem>.sql in the output directory, under
// the same relative directory as rel. With keepExt the source extension is
// kept in the name: converted_<stem>_<ext>.sql.
func OutputPath(outputDir, rel string, keepExt bool) string {
	base := filepath.Base(rel)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := "converted_" + stem
	if keepExt && ext != "" {
		name += "_" + strings.TrimPrefix(ext, ".")
	}
	return filepath.Join(outputDir, filepath.Dir(rel), name+".sql")
}
