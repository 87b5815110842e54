// Package hive provides the Apache Hive dialect definition.
package hive

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/dialects/spark"
)

func init() {
	dialect.Register(Hive)
}

// Config is the Hive dialect configuration.
var Config = &dialect.Config{
	Name:            "hive",
	Identifiers:     spark.Config.Identifiers,
	Strings:         spark.Config.Strings,
	Limit:           dialect.LimitClause,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "<=>",
}

// Hive shares Spark's spellings but has no ILIKE and fewer aggregates.
var Hive = dialect.Extend(spark.Spark, Config).
	UnsupportedFunctions(dialect.FuncStringAgg, dialect.FuncApproxCountDistinct).
	WithoutOperators(dialect.TokenIlike).
	Build()
