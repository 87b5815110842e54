// Package oracle provides the Oracle Database dialect definition.
//
// Oracle has no boolean literals before 23ai and limits rows with
// FETCH FIRST, both of which the transpiler rewrites.
package oracle

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(Oracle)
}

// Config is the Oracle dialect configuration.
var Config = &dialect.Config{
	Name: "oracle",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormUppercase,
	},
	Limit:          dialect.FetchFirst,
	ConcatOperator: true,
}

// ReservedWords contains Oracle reserved words.
var ReservedWords = []string{
	"access", "add", "all", "alter", "and", "any", "as", "asc", "audit",
	"between", "by", "char", "check", "cluster", "column", "comment",
	"compress", "connect", "create", "current", "date", "decimal", "default",
	"delete", "desc", "distinct", "drop", "else", "exclusive", "exists",
	"file", "float", "for", "from", "grant", "group", "having", "identified",
	"immediate", "in", "increment", "index", "initial", "insert", "integer",
	"intersect", "into", "is", "level", "like", "lock", "long", "maxextents",
	"minus", "mlslabel", "mode", "modify", "noaudit", "nocompress", "not",
	"nowait", "null", "number", "of", "offline", "on", "online", "option",
	"or", "order", "pctfree", "prior", "public", "raw", "rename", "resource",
	"revoke", "row", "rowid", "rownum", "rows", "select", "session", "set",
	"share", "size", "smallint", "start", "successful", "synonym", "sysdate",
	"table", "then", "to", "trigger", "uid", "union", "unique", "update",
	"user", "validate", "values", "varchar", "varchar2", "view", "whenever",
	"where", "with",
}

// Oracle is the Oracle dialect.
var Oracle = dialect.New(Config).
	FunctionAlias("SYSTIMESTAMP", dialect.FuncCurrentTimestamp).
	FunctionAlias("SYSDATE", dialect.FuncCurrentTimestamp).
	Function(dialect.FuncIfNull, "NVL").
	Function(dialect.FuncSubstring, "SUBSTR").
	NiladicFunction(dialect.FuncRandom, "DBMS_RANDOM.VALUE").
	Function(dialect.FuncStringAgg, "LISTAGG").
	UnsupportedFunctions(dialect.FuncIf, dialect.FuncArrayAgg, dialect.FuncArraySize).
	Type(dialect.TypeString, "VARCHAR2(4000)").
	TypeAlias("VARCHAR2", dialect.TypeVarchar).
	Type(dialect.TypeVarchar, "VARCHAR2").
	Type(dialect.TypeInt, "NUMBER(10)").
	TypeAlias("INTEGER", dialect.TypeInt).
	Type(dialect.TypeBigint, "NUMBER(19)").
	Type(dialect.TypeSmallint, "NUMBER(5)").
	Type(dialect.TypeDouble, "BINARY_DOUBLE").
	Type(dialect.TypeFloat, "BINARY_FLOAT").
	Type(dialect.TypeDecimal, "NUMBER").
	TypeAlias("NUMBER", dialect.TypeDecimal).
	Type(dialect.TypeBoolean, "NUMBER(1)").
	Type(dialect.TypeBinary, "BLOB").
	WithReservedWords(ReservedWords...).
	Build()
