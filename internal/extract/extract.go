// Package extract pulls SQL statements out of input files: plain SQL
// scripts and Python sources that call spark.sql.
package extract

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/transpile"
)

// Kind is the type of an input file.
type Kind string

// Supported input kinds.
const (
	KindSQL    Kind = "sql"
	KindPython Kind = "python"
)

// ErrUnsupportedFileType is returned for files that are neither .sql nor .py.
var ErrUnsupportedFileType = errors.New("unsupported file type, only .py and .sql files are supported")

// KindOf returns the kind of path from its extension.
func KindOf(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sql":
		return KindSQL, nil
	case ".py":
		return KindPython, nil
	}
	return "", ErrUnsupportedFileType
}

// Supported reports whether path has a supported extension.
func Supported(path string) bool {
	_, err := KindOf(path)
	return err == nil
}

// Queries returns the SQL statements held in content.
func Queries(kind Kind, content string, d *dialect.Dialect) []string {
	if kind == KindPython {
		return PythonQueries(content)
	}
	return SQLStatements(content, d)
}

// SQLStatements splits a SQL script into statements.
func SQLStatements(content string, d *dialect.Dialect) []string {
	return transpile.Split(content, d)
}

// sparkSQL matches spark.sql(...) calls whose first argument is a string
// literal. Prefixes such as f, r and rb are allowed; one group captures
// the body for each quote style.
var sparkSQL = regexp.MustCompile(`(?s)spark\.sql\(\s*[fFrRuUbB]{0,2}(?:"""(.*?)"""|'''(.*?)'''|"((?:[^"\\\n]|\\.)*)"|'((?:[^'\\\n]|\\.)*)')`)

// PythonQueries extracts the SQL passed to spark.sql in Python source,
// in source order. Bodies are trimmed; empty bodies are skipped.
func PythonQueries(code string) []string {
	var queries []string
	for _, m := range sparkSQL.FindAllStringSubmatch(code, -1) {
		for _, body := range m[1:] {
			if q := strings.TrimSpace(body); q != "" {
				queries = append(queries, q)
				break
			}
		}
	}
	return queries
}

// IsCreateTable reports whether query starts with CREATE TABLE.
func IsCreateTable(query string) bool {
	fields := strings.Fields(query)
	return len(fields) >= 2 && strings.EqualFold(fields[0], "CREATE") && strings.EqualFold(fields[1], "TABLE")
}

// FilterCreateTable drops CREATE TABLE statements.
func FilterCreateTable(queries []string) []string {
	out := queries[:0:0]
	for _, q := range queries {
		if !IsCreateTable(q) {
			out = append(out, q)
		}
	}
	return out
}
