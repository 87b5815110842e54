package spark

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(Spark)
}

// Spark is the Spark SQL dialect.
// Databricks and Hive extend it.
var Spark = dialect.New(Config).
	// Spark prints current_timestamp() with parentheses.
	Function(dialect.FuncCurrentTimestamp, "CURRENT_TIMESTAMP").
	Function(dialect.FuncCurrentDate, "CURRENT_DATE").
	FunctionAlias("NOW", dialect.FuncCurrentTimestamp).
	FunctionAlias("NVL", dialect.FuncIfNull).
	FunctionAlias("SUBSTR", dialect.FuncSubstring).
	FunctionAlias("CHAR_LENGTH", dialect.FuncLength).
	FunctionAlias("CHARACTER_LENGTH", dialect.FuncLength).
	FunctionAlias("LCASE", dialect.FuncLower).
	FunctionAlias("UCASE", dialect.FuncUpper).
	FunctionAlias("POW", dialect.FuncPower).
	FunctionAlias("CEILING", dialect.FuncCeil).
	Function(dialect.FuncRandom, "RAND").
	Function(dialect.FuncArrayAgg, "COLLECT_LIST").
	Function(dialect.FuncArraySize, "SIZE").
	FunctionAlias("CARDINALITY", dialect.FuncArraySize).
	FunctionAlias("LISTAGG", dialect.FuncStringAgg).
	TypeAlias("INTEGER", dialect.TypeInt).
	TypeAlias("LONG", dialect.TypeBigint).
	TypeAlias("SHORT", dialect.TypeSmallint).
	TypeAlias("REAL", dialect.TypeFloat).
	TypeAlias("DEC", dialect.TypeDecimal).
	TypeAlias("NUMERIC", dialect.TypeDecimal).
	TypeAlias("TIMESTAMP_NTZ", dialect.TypeTimestamp).
	Operators(dialect.TokenIlike, dialect.TokenRlike).
	WithReservedWords(ReservedWords...).
	Build()
