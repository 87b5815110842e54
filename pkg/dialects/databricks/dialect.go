// Package databricks provides the Databricks SQL dialect definition.
//
// Databricks is Spark SQL plus the :: cast operator and QUALIFY.
package databricks

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/dialects/spark"
)

func init() {
	dialect.Register(Databricks)
}

// Config is the Databricks dialect configuration.
var Config = &dialect.Config{
	Name:            "databricks",
	Identifiers:     spark.Config.Identifiers,
	Strings:         spark.Config.Strings,
	Limit:           dialect.LimitClause,
	CastOperator:    true,
	BooleanLiterals: true,
	ConcatOperator:  true,
	NullSafeEqual:   "<=>",
}

// Databricks is the Databricks SQL dialect.
var Databricks = dialect.Extend(spark.Spark, Config).
	Function(dialect.FuncArrayAgg, "ARRAY_AGG").
	FunctionAlias("COLLECT_LIST", dialect.FuncArrayAgg).
	FunctionAlias("LEN", dialect.FuncLength).
	Operators(dialect.TokenQualify).
	Build()
