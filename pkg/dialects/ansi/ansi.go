// Package ansi provides the ANSI SQL dialect definition.
//
// ANSI is the neutral baseline: standard spellings, FETCH FIRST row
// limiting and no vendor operators.
package ansi

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// Config is the ANSI dialect configuration.
var Config = &dialect.Config{
	Name: "ansi",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormUppercase,
	},
	Limit:           dialect.FetchFirst,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "IS NOT DISTINCT FROM",
}

// ReservedWords are the SQL:2016 reserved words most likely to clash
// with column names.
var ReservedWords = []string{
	"all", "allocate", "alter", "and", "any", "array", "as", "asymmetric",
	"at", "authorization", "begin", "between", "binary", "both", "by", "call",
	"case", "cast", "check", "collate", "column", "commit", "condition",
	"connect", "constraint", "create", "cross", "cube", "current",
	"current_date", "current_time", "current_timestamp", "current_user",
	"cursor", "day", "default", "delete", "describe", "distinct", "drop",
	"else", "end", "escape", "except", "exists", "external", "false", "fetch",
	"filter", "for", "foreign", "from", "full", "function", "grant", "group",
	"having", "hour", "in", "inner", "insert", "intersect", "interval",
	"into", "is", "join", "leading", "left", "like", "limit", "local",
	"match", "merge", "minute", "month", "natural", "new", "no", "none",
	"not", "null", "of", "offset", "old", "on", "only", "or", "order",
	"outer", "over", "overlaps", "partition", "primary", "range",
	"references", "right", "rollup", "row", "rows", "second", "select",
	"session_user", "set", "some", "symmetric", "system_user", "table",
	"then", "to", "trailing", "true", "union", "unique", "unknown", "update",
	"user", "using", "value", "values", "when", "where", "window", "with",
	"within", "year",
}

// ANSI is the ANSI SQL dialect.
var ANSI = dialect.New(Config).
	Function(dialect.FuncLength, "CHAR_LENGTH").
	FunctionAlias("CHARACTER_LENGTH", dialect.FuncLength).
	FunctionAlias("CEILING", dialect.FuncCeil).
	Function(dialect.FuncArraySize, "CARDINALITY").
	Function(dialect.FuncStringAgg, "LISTAGG").
	UnsupportedFunctions(dialect.FuncIf, dialect.FuncApproxCountDistinct).
	Type(dialect.TypeString, "VARCHAR").
	BareTypeAlias("VARCHAR", dialect.TypeString).
	TypeAlias("CHARACTER VARYING", dialect.TypeVarchar).
	TypeAlias("INTEGER", dialect.TypeInt).
	TypeAlias("NUMERIC", dialect.TypeDecimal).
	Type(dialect.TypeDouble, "DOUBLE PRECISION").
	Type(dialect.TypeBinary, "VARBINARY").
	WithReservedWords(ReservedWords...).
	Build()
