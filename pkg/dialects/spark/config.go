// Package spark provides the Apache Spark SQL dialect definition.
// This package is pure Go with no engine dependencies.
package spark

import "github.com/leapstack-labs/sqlecto/pkg/dialect"

// Config is the Spark SQL dialect configuration.
var Config = &dialect.Config{
	Name:    "spark",
	Aliases: []string{"sparksql", "spark_sql"},
	Identifiers: dialect.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: dialect.NormCaseInsensitive,
	},
	Strings: dialect.StringConfig{
		Quotes:           `"`,
		BackslashEscapes: true,
	},
	Limit:           dialect.LimitClause,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "<=>",
}

// ReservedWords are the words Spark rejects as bare identifiers in ANSI mode.
var ReservedWords = []string{
	"all", "and", "any", "as", "authorization", "both", "case", "cast",
	"check", "collate", "column", "constraint", "create", "cross",
	"current_date", "current_time", "current_timestamp", "current_user",
	"distinct", "else", "end", "escape", "except", "false", "fetch", "for",
	"foreign", "from", "full", "grant", "group", "having", "in", "inner",
	"intersect", "into", "is", "join", "lateral", "leading", "left", "natural",
	"not", "null", "offset", "on", "only", "or", "order", "outer", "overlaps",
	"primary", "references", "right", "select", "session_user", "some",
	"table", "then", "to", "trailing", "true", "union", "unique", "user",
	"using", "when", "where", "with",
}
