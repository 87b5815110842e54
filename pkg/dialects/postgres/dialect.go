package postgres

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
// RLIKE is written as the ~ regex match operator.
var Postgres = dialect.New(Config).
	FunctionAlias("NOW", dialect.FuncCurrentTimestamp).
	FunctionAlias("SUBSTR", dialect.FuncSubstring).
	FunctionAlias("CHAR_LENGTH", dialect.FuncLength).
	FunctionAlias("CHARACTER_LENGTH", dialect.FuncLength).
	FunctionAlias("POW", dialect.FuncPower).
	FunctionAlias("CEILING", dialect.FuncCeil).
	Function(dialect.FuncArraySize, "CARDINALITY").
	UnsupportedFunctions(dialect.FuncIf, dialect.FuncApproxCountDistinct).
	Type(dialect.TypeString, "TEXT").
	BareTypeAlias("VARCHAR", dialect.TypeString).
	TypeAlias("CHARACTER VARYING", dialect.TypeVarchar).
	TypeAlias("INTEGER", dialect.TypeInt).
	TypeAlias("INT4", dialect.TypeInt).
	TypeAlias("INT8", dialect.TypeBigint).
	TypeAlias("INT2", dialect.TypeSmallint).
	Type(dialect.TypeDouble, "DOUBLE PRECISION").
	TypeAlias("FLOAT8", dialect.TypeDouble).
	Type(dialect.TypeFloat, "REAL").
	TypeAlias("FLOAT4", dialect.TypeFloat).
	TypeAlias("NUMERIC", dialect.TypeDecimal).
	TypeAlias("BOOL", dialect.TypeBoolean).
	Type(dialect.TypeBinary, "BYTEA").
	TypeAlias("TIMESTAMP WITHOUT TIME ZONE", dialect.TypeTimestamp).
	Operators(dialect.TokenIlike).
	Operator(dialect.TokenRlike, "~").
	WithReservedWords(ReservedWords...).
	Build()
