// Package duckdb provides the DuckDB dialect definition.
package duckdb

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(DuckDB)
}

// Config is the DuckDB dialect configuration.
var Config = &dialect.Config{
	Name: "duckdb",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormCaseInsensitive,
	},
	Limit:           dialect.LimitClause,
	CastOperator:    true,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "IS NOT DISTINCT FROM",
	DollarQuotes:    true,
}

// ReservedWords contains DuckDB's reserved keywords.
var ReservedWords = []string{
	"all", "analyse", "analyze", "and", "any", "array", "as", "asc",
	"asymmetric", "both", "case", "cast", "check", "collate", "column",
	"constraint", "create", "current_catalog", "current_date", "current_role",
	"current_time", "current_timestamp", "current_user", "default",
	"deferrable", "desc", "describe", "distinct", "do", "else", "end",
	"except", "false", "fetch", "for", "foreign", "from", "grant", "group",
	"having", "in", "initially", "intersect", "into", "lateral", "leading",
	"limit", "localtime", "localtimestamp", "not", "null", "offset", "on",
	"only", "or", "order", "pivot", "pivot_longer", "pivot_wider", "placing",
	"primary", "qualify", "references", "returning", "select", "show",
	"some", "summarize", "symmetric", "table", "then", "to", "trailing",
	"true", "union", "unique", "unpivot", "using", "variadic", "when",
	"where", "window", "with",
}

// DuckDB is the DuckDB dialect.
var DuckDB = dialect.New(Config).
	FunctionAlias("NOW", dialect.FuncCurrentTimestamp).
	FunctionAlias("SUBSTR", dialect.FuncSubstring).
	FunctionAlias("LEN", dialect.FuncLength).
	FunctionAlias("CHAR_LENGTH", dialect.FuncLength).
	FunctionAlias("LCASE", dialect.FuncLower).
	FunctionAlias("UCASE", dialect.FuncUpper).
	FunctionAlias("POW", dialect.FuncPower).
	FunctionAlias("CEILING", dialect.FuncCeil).
	FunctionAlias("LIST", dialect.FuncArrayAgg).
	FunctionAlias("GROUP_CONCAT", dialect.FuncStringAgg).
	FunctionAlias("LISTAGG", dialect.FuncStringAgg).
	Function(dialect.FuncArraySize, "ARRAY_LENGTH").
	Type(dialect.TypeString, "TEXT").
	BareTypeAlias("VARCHAR", dialect.TypeString).
	TypeAlias("INTEGER", dialect.TypeInt).
	TypeAlias("INT4", dialect.TypeInt).
	TypeAlias("INT8", dialect.TypeBigint).
	TypeAlias("LONG", dialect.TypeBigint).
	TypeAlias("INT2", dialect.TypeSmallint).
	TypeAlias("FLOAT8", dialect.TypeDouble).
	TypeAlias("REAL", dialect.TypeFloat).
	TypeAlias("FLOAT4", dialect.TypeFloat).
	TypeAlias("NUMERIC", dialect.TypeDecimal).
	TypeAlias("BOOL", dialect.TypeBoolean).
	Type(dialect.TypeBinary, "BLOB").
	TypeAlias("BYTEA", dialect.TypeBinary).
	TypeAlias("DATETIME", dialect.TypeTimestamp).
	Operators(dialect.TokenIlike, dialect.TokenQualify).
	WithReservedWords(ReservedWords...).
	Build()
