package transpile

import (
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// Split splits a script into statements on top-level semicolons.
// Semicolons inside strings, quoted identifiers, comments and template
// placeholders do not split. Statements holding only comments are
// dropped. If the script cannot be tokenized, everything from the
// statement containing the error onwards is returned as one final
// statement so the error surfaces when that statement is transpiled.
func Split(sql string, d *dialect.Dialect) []string {
	l := NewLexer(sql, d)

	var stmts []string
	start := 0
	count := 0 // tokens in the current statement

	add := func(end int) {
		if count > 0 {
			if stmt := strings.TrimSpace(sql[start:end]); stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
	}

	for {
		tok := l.NextToken()
		if l.err != nil {
			count = 1
			add(len(sql))
			return stmts
		}
		switch tok.Type {
		case token.EOF:
			add(len(sql))
			return stmts
		case token.SEMICOLON:
			add(tok.Span.Start.Offset)
			start = tok.Span.End.Offset
			count = 0
		default:
			count++
		}
	}
}
