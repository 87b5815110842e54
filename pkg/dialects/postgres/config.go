// Package postgres provides the PostgreSQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/leapstack-labs/sqlecto/pkg/dialect"

// Config is the PostgreSQL dialect configuration.
var Config = &dialect.Config{
	Name:    "postgres",
	Aliases: []string{"postgresql", "pg"},
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormLowercase, // Postgres folds unquoted names to lowercase
	},
	Limit:           dialect.LimitClause,
	CastOperator:    true,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "IS NOT DISTINCT FROM",
	DollarQuotes:    true,
}

// ReservedWords contains common PostgreSQL reserved words.
// This is a manually maintained list of frequently problematic identifiers.
var ReservedWords = []string{
	"user", "order", "group", "table", "select", "from", "where",
	"all", "and", "any", "array", "as", "asc", "asymmetric", "authorization",
	"between", "binary", "both", "case", "cast", "check", "collate", "column",
	"constraint", "create", "cross", "current_catalog", "current_date",
	"current_role", "current_schema", "current_time", "current_timestamp",
	"current_user", "default", "deferrable", "desc", "distinct", "do", "else",
	"end", "except", "false", "fetch", "for", "foreign", "freeze", "full",
	"grant", "having", "ilike", "in", "initially", "inner", "intersect",
	"into", "is", "isnull", "join", "lateral", "leading", "left", "like",
	"limit", "localtime", "localtimestamp", "natural", "not", "notnull",
	"null", "offset", "on", "only", "or", "outer", "overlaps", "placing",
	"primary", "references", "returning", "right", "session_user", "similar",
	"some", "symmetric", "then", "to", "trailing", "true", "union", "unique",
	"using", "variadic", "verbose", "when", "window", "with",
}
