package transpile

import (
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// statementKeywords are the tokens a statement may begin with.
var statementKeywords = map[token.TokenType]bool{
	token.SELECT: true, token.WITH: true, token.INSERT: true, token.UPDATE: true,
	token.DELETE: true, token.MERGE: true, token.CREATE: true, token.DROP: true,
	token.ALTER: true, token.TRUNCATE: true, token.VALUES: true, token.EXPLAIN: true,
	token.DESCRIBE: true, token.DESC: true, token.SHOW: true, token.USE: true,
	token.SET: true, token.GRANT: true, token.REVOKE: true, token.CALL: true,
	token.BEGIN: true, token.COMMIT: true, token.ROLLBACK: true, token.REPLACE: true,
	token.TABLE: true, token.FROM: true, token.LPAREN: true, token.TEMPLATE: true,
}

// statementWords are bare words that begin vendor statements.
var statementWords = map[string]bool{
	"ADD": true, "ANALYZE": true, "ATTACH": true, "CACHE": true, "CHECKPOINT": true,
	"CLEAR": true, "CLUSTER": true, "COMMENT": true, "COPY": true, "DEALLOCATE": true,
	"DECLARE": true, "DETACH": true, "DISCARD": true, "EXEC": true, "EXECUTE": true,
	"EXPORT": true, "GET": true, "IMPORT": true, "INSTALL": true, "KILL": true,
	"LIST": true, "LOAD": true, "LOCK": true, "LS": true, "MSCK": true,
	"OPTIMIZE": true, "PIVOT": true, "PRAGMA": true, "PREPARE": true, "PUT": true,
	"REFRESH": true, "REINDEX": true, "REMOVE": true, "RENAME": true, "RESET": true,
	"RM": true, "START": true, "SUMMARIZE": true, "UNCACHE": true, "UNDROP": true,
	"UNLOCK": true, "UNPIVOT": true, "UNSET": true, "VACUUM": true,
}

// syntaxWords are bare words that act as SQL syntax in some statement
// (DDL options, date parts, typed literals). They are never re-quoted
// even when the target dialect reserves them.
var syntaxWords = map[string]bool{
	"ACTION": true, "ADD": true, "ARRAY": true, "CASCADE": true, "CHECK": true,
	"COLLATE": true, "COLUMN": true, "COMMENT": true, "CONSTRAINT": true,
	"CURRENT": true, "DATABASE": true, "DATE": true, "DAY": true, "DEFAULT": true,
	"ESCAPE": true, "EXCLUDE": true, "EXTERNAL": true, "FILTER": true,
	"FOLLOWING": true, "FOR": true, "FOREIGN": true, "FORMAT": true,
	"GLOBAL": true, "GROUPS": true, "HOUR": true, "IGNORE": true, "INDEX": true,
	"KEY": true, "LOCAL": true, "LOCATION": true, "MAP": true, "MATERIALIZED": true,
	"MINUTE": true, "MONTH": true, "NO": true, "OF": true, "OPTIONS": true,
	"ORDINALITY": true, "OVERWRITE": true, "PRECEDING": true, "PRIMARY": true,
	"QUARTER": true, "RANGE": true, "REFERENCES": true, "RENAME": true,
	"RESTRICT": true, "RETURNING": true, "SCHEMA": true, "SECOND": true,
	"SIMILAR": true, "SOME": true, "STORED": true, "STRUCT": true,
	"TABLESAMPLE": true, "TEMP": true, "TEMPORARY": true, "TIME": true,
	"TIMESTAMP": true, "TO": true, "UNBOUNDED": true, "UNIQUE": true,
	"UNNEST": true, "WEEK": true, "WITHIN": true, "YEAR": true, "ZONE": true,
}

// typeContinuation are words that extend a multi-word type name such as
// DOUBLE PRECISION or TIMESTAMP WITH TIME ZONE.
var typeContinuation = map[string]bool{
	"PRECISION": true, "VARYING": true, "TIME": true, "ZONE": true,
	"LOCAL": true, "INTEGER": true,
}

func upper(tok token.Token) string {
	return strings.ToUpper(tok.Literal)
}

// isCallee reports whether tok can name a function when followed by '('.
func isCallee(tok token.Token) bool {
	switch tok.Type {
	case token.IDENT, token.CAST, token.TRY_CAST, token.IF, token.LEFT,
		token.RIGHT, token.REPLACE:
		return true
	}
	return false
}

// isAtom reports whether tok is a complete operand on its own.
func isAtom(tok token.Token) bool {
	switch tok.Type {
	case token.IDENT, token.NUMBER, token.STRING, token.PARAM, token.TEMPLATE,
		token.NULL, token.TRUE, token.FALSE, token.STAR:
		return true
	}
	return false
}
