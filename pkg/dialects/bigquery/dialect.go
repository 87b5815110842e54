// Package bigquery provides the Google BigQuery dialect definition.
package bigquery

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(BigQuery)
}

// Config is the BigQuery dialect configuration.
var Config = &dialect.Config{
	Name: "bigquery",
	Identifiers: dialect.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "\\`",
		Normalization: dialect.NormCaseInsensitive,
	},
	Strings: dialect.StringConfig{
		Quotes:           `"`,
		BackslashEscapes: true,
	},
	Limit:           dialect.LimitClause,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "IS NOT DISTINCT FROM",
	HashComments:    true,
}

// ReservedWords contains BigQuery's reserved keywords.
var ReservedWords = []string{
	"all", "and", "any", "array", "as", "asc", "assert_rows_modified", "at",
	"between", "by", "case", "cast", "collate", "contains", "create", "cross",
	"cube", "current", "default", "define", "desc", "distinct", "else", "end",
	"enum", "escape", "except", "exclude", "exists", "extract", "false",
	"fetch", "following", "for", "from", "full", "group", "grouping", "groups",
	"hash", "having", "if", "ignore", "in", "inner", "intersect", "interval",
	"into", "is", "join", "lateral", "left", "like", "limit", "lookup",
	"merge", "natural", "new", "no", "not", "null", "nulls", "of", "on", "or",
	"order", "outer", "over", "partition", "preceding", "proto", "qualify",
	"range", "recursive", "respect", "right", "rollup", "rows", "select",
	"set", "some", "struct", "tablesample", "then", "to", "treat", "true",
	"unbounded", "union", "unnest", "using", "when", "where", "window", "with",
	"within",
}

// BigQuery is the BigQuery (GoogleSQL) dialect.
var BigQuery = dialect.New(Config).
	Function(dialect.FuncCurrentTimestamp, "CURRENT_TIMESTAMP").
	Function(dialect.FuncCurrentDate, "CURRENT_DATE").
	Function(dialect.FuncSubstring, "SUBSTR").
	FunctionAlias("CHAR_LENGTH", dialect.FuncLength).
	FunctionAlias("CHARACTER_LENGTH", dialect.FuncLength).
	FunctionAlias("POW", dialect.FuncPower).
	FunctionAlias("CEILING", dialect.FuncCeil).
	Function(dialect.FuncRandom, "RAND").
	Function(dialect.FuncArraySize, "ARRAY_LENGTH").
	Type(dialect.TypeVarchar, "STRING").
	Type(dialect.TypeBigint, "INT64").
	TypeAlias("INTEGER", dialect.TypeBigint).
	Type(dialect.TypeInt, "INT64").
	Type(dialect.TypeSmallint, "INT64").
	Type(dialect.TypeDouble, "FLOAT64").
	Type(dialect.TypeFloat, "FLOAT64").
	Type(dialect.TypeDecimal, "NUMERIC").
	TypeAlias("NUMERIC", dialect.TypeDecimal).
	TypeAlias("BIGNUMERIC", dialect.TypeDecimal).
	Type(dialect.TypeBoolean, "BOOL").
	Type(dialect.TypeBinary, "BYTES").
	TypeAlias("DATETIME", dialect.TypeTimestamp).
	Operators(dialect.TokenQualify).
	WithReservedWords(ReservedWords...).
	Build()
