package snowflake

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake dialect.
var Snowflake = dialect.New(Config).
	Function(dialect.FuncCurrentTimestamp, "CURRENT_TIMESTAMP").
	FunctionAlias("SYSDATE", dialect.FuncCurrentTimestamp).
	FunctionAlias("GETDATE", dialect.FuncCurrentTimestamp).
	FunctionAlias("NVL", dialect.FuncIfNull).
	FunctionAlias("SUBSTR", dialect.FuncSubstring).
	FunctionAlias("LEN", dialect.FuncLength).
	FunctionAlias("POW", dialect.FuncPower).
	FunctionAlias("CEILING", dialect.FuncCeil).
	Function(dialect.FuncIf, "IFF").
	Function(dialect.FuncStringAgg, "LISTAGG").
	FunctionAlias("ARRAYAGG", dialect.FuncArrayAgg).
	Type(dialect.TypeString, "VARCHAR").
	BareTypeAlias("VARCHAR", dialect.TypeString).
	TypeAlias("TEXT", dialect.TypeString).
	TypeAlias("INTEGER", dialect.TypeInt).
	TypeAlias("NUMBER", dialect.TypeDecimal).
	TypeAlias("NUMERIC", dialect.TypeDecimal).
	TypeAlias("FLOAT", dialect.TypeDouble). // FLOAT is 64-bit in Snowflake
	TypeAlias("FLOAT8", dialect.TypeDouble).
	TypeAlias("TIMESTAMP_NTZ", dialect.TypeTimestamp).
	TypeAlias("DATETIME", dialect.TypeTimestamp).
	TypeAlias("VARBINARY", dialect.TypeBinary).
	Operators(dialect.TokenIlike, dialect.TokenRlike, dialect.TokenQualify).
	WithReservedWords(ReservedWords...).
	Build()
