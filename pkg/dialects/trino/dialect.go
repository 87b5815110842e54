// Package trino provides the Trino (formerly Presto) dialect definition.
package trino

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(Trino)
}

// Config is the Trino dialect configuration.
var Config = &dialect.Config{
	Name:    "trino",
	Aliases: []string{"presto"},
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormCaseInsensitive,
	},
	Limit:           dialect.LimitClause,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "IS NOT DISTINCT FROM",
}

// ReservedWords contains Trino's reserved keywords.
var ReservedWords = []string{
	"alter", "and", "as", "between", "by", "case", "cast", "constraint",
	"create", "cross", "cube", "current_catalog", "current_date",
	"current_path", "current_role", "current_schema", "current_time",
	"current_timestamp", "current_user", "deallocate", "delete", "describe",
	"distinct", "drop", "else", "end", "escape", "except", "execute",
	"exists", "extract", "false", "for", "from", "full", "group", "grouping",
	"having", "in", "inner", "insert", "intersect", "into", "is", "join",
	"json_array", "json_exists", "json_object", "json_query", "json_table",
	"json_value", "left", "like", "listagg", "localtime", "localtimestamp",
	"natural", "normalize", "not", "null", "on", "or", "order", "outer",
	"prepare", "recursive", "right", "rollup", "select", "skip", "table",
	"then", "trim", "true", "uescape", "union", "unnest", "using", "values",
	"when", "where", "with",
}

// Trino is the Trino dialect.
var Trino = dialect.New(Config).
	FunctionAlias("NOW", dialect.FuncCurrentTimestamp).
	FunctionAlias("SUBSTR", dialect.FuncSubstring).
	FunctionAlias("POW", dialect.FuncPower).
	FunctionAlias("CEILING", dialect.FuncCeil).
	FunctionAlias("RAND", dialect.FuncRandom).
	Function(dialect.FuncArraySize, "CARDINALITY").
	Function(dialect.FuncApproxCountDistinct, "APPROX_DISTINCT").
	UnsupportedFunctions(dialect.FuncStringAgg).
	Type(dialect.TypeString, "VARCHAR").
	BareTypeAlias("VARCHAR", dialect.TypeString).
	TypeAlias("INTEGER", dialect.TypeInt).
	Type(dialect.TypeFloat, "REAL").
	Type(dialect.TypeBinary, "VARBINARY").
	WithReservedWords(ReservedWords...).
	Build()
