// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no driver dependencies.
package snowflake

import "github.com/leapstack-labs/sqlecto/pkg/dialect"

// Config is the Snowflake dialect configuration.
var Config = &dialect.Config{
	Name: "snowflake",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormUppercase, // Snowflake folds unquoted names to uppercase
	},
	Strings: dialect.StringConfig{
		BackslashEscapes: true,
	},
	Limit:           dialect.LimitClause,
	CastOperator:    true,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "IS NOT DISTINCT FROM",
	DollarQuotes:    true,
}

// ReservedWords contains Snowflake's reserved keywords.
var ReservedWords = []string{
	"account", "all", "alter", "and", "any", "as", "between", "by", "case",
	"cast", "check", "column", "connect", "connection", "constraint",
	"create", "cross", "current", "current_date", "current_time",
	"current_timestamp", "current_user", "database", "delete", "distinct",
	"drop", "else", "exists", "false", "following", "for", "from", "full",
	"grant", "group", "gscluster", "having", "ilike", "in", "increment",
	"inner", "insert", "intersect", "into", "is", "issue", "join", "lateral",
	"left", "like", "localtime", "localtimestamp", "minus", "natural", "not",
	"null", "of", "on", "or", "order", "organization", "qualify", "regexp",
	"revoke", "right", "rlike", "row", "rows", "sample", "schema", "select",
	"set", "some", "start", "table", "tablesample", "then", "to", "trigger",
	"true", "try_cast", "union", "unique", "update", "using", "values",
	"view", "when", "whenever", "where", "with",
}
