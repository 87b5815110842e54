// Package sqlite provides the SQLite dialect definition.
//
// SQLite has type affinities rather than types, so every canonical type
// maps onto one of TEXT, INTEGER, REAL, NUMERIC and BLOB.
package sqlite

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(SQLite)
}

// Config is the SQLite dialect configuration.
var Config = &dialect.Config{
	Name:    "sqlite",
	Aliases: []string{"sqlite3"},
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormCaseInsensitive,
	},
	Limit:           dialect.LimitClause,
	LimitComma:      true,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "IS",
}

// ReservedWords contains SQLite keywords that cannot be bare identifiers.
var ReservedWords = []string{
	"abort", "action", "add", "after", "all", "alter", "analyze", "and", "as",
	"asc", "attach", "autoincrement", "before", "begin", "between", "by",
	"cascade", "case", "cast", "check", "collate", "column", "commit",
	"conflict", "constraint", "create", "cross", "current_date",
	"current_time", "current_timestamp", "database", "default", "deferrable",
	"deferred", "delete", "desc", "detach", "distinct", "drop", "each", "else",
	"end", "escape", "except", "exclusive", "exists", "explain", "fail", "for",
	"foreign", "from", "full", "glob", "group", "having", "if", "ignore",
	"immediate", "in", "index", "indexed", "initially", "inner", "insert",
	"instead", "intersect", "into", "is", "isnull", "join", "key", "left",
	"like", "limit", "match", "natural", "no", "not", "notnull", "null", "of",
	"offset", "on", "or", "order", "outer", "plan", "pragma", "primary",
	"query", "raise", "recursive", "references", "regexp", "reindex",
	"release", "rename", "replace", "restrict", "right", "rollback", "row",
	"savepoint", "select", "set", "table", "temp", "temporary", "then", "to",
	"transaction", "trigger", "union", "unique", "update", "using", "vacuum",
	"values", "view", "virtual", "when", "where", "with", "without",
}

// SQLite is the SQLite dialect.
var SQLite = dialect.New(Config).
	Function(dialect.FuncSubstring, "SUBSTR").
	FunctionAlias("CEILING", dialect.FuncCeil).
	FunctionAlias("POW", dialect.FuncPower).
	Function(dialect.FuncIf, "IIF").
	Function(dialect.FuncStringAgg, "GROUP_CONCAT").
	Function(dialect.FuncArrayAgg, "JSON_GROUP_ARRAY").
	Function(dialect.FuncArraySize, "JSON_ARRAY_LENGTH").
	UnsupportedFunctions(dialect.FuncApproxCountDistinct).
	Type(dialect.TypeString, "TEXT").
	Type(dialect.TypeVarchar, "TEXT").
	Type(dialect.TypeInt, "INTEGER").
	Type(dialect.TypeBigint, "INTEGER").
	Type(dialect.TypeSmallint, "INTEGER").
	Type(dialect.TypeDouble, "REAL").
	Type(dialect.TypeFloat, "REAL").
	Type(dialect.TypeDecimal, "NUMERIC").
	Type(dialect.TypeBoolean, "INTEGER").
	Type(dialect.TypeDate, "TEXT").
	Type(dialect.TypeTimestamp, "TEXT").
	Type(dialect.TypeBinary, "BLOB").
	Operator(dialect.TokenIlike, "LIKE").
	Operator(dialect.TokenRlike, "REGEXP").
	WithReservedWords(ReservedWords...).
	Build()
