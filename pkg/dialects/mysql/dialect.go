// Package mysql provides the MySQL dialect definition.
package mysql

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func init() {
	dialect.Register(MySQL)
}

// Config is the MySQL dialect configuration.
// || is logical OR unless PIPES_AS_CONCAT is set, so it is not a concat operator here.
var Config = &dialect.Config{
	Name:    "mysql",
	Aliases: []string{"mariadb"},
	Identifiers: dialect.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: dialect.NormCaseSensitive,
	},
	Strings: dialect.StringConfig{
		Quotes:           `"`,
		BackslashEscapes: true,
	},
	Limit:           dialect.LimitClause,
	LimitComma:      true,
	BooleanLiterals: true,
	NullSafeEqual:   "<=>",
	HashComments:    true,
}

// ReservedWords contains MySQL 8 reserved words likely to collide with column names.
var ReservedWords = []string{
	"accessible", "add", "all", "alter", "analyze", "and", "as", "asc",
	"before", "between", "bigint", "binary", "blob", "both", "by", "call",
	"cascade", "case", "change", "char", "character", "check", "collate",
	"column", "condition", "constraint", "continue", "convert", "create",
	"cross", "cube", "current_date", "current_time", "current_timestamp",
	"current_user", "cursor", "database", "databases", "default", "delete",
	"desc", "describe", "distinct", "div", "double", "drop", "else", "elseif",
	"exists", "exit", "explain", "false", "fetch", "float", "for", "force",
	"foreign", "from", "fulltext", "function", "grant", "group", "groups",
	"having", "if", "ignore", "in", "index", "inner", "insert", "int",
	"integer", "interval", "into", "is", "join", "key", "keys", "kill",
	"lag", "lead", "leading", "leave", "left", "like", "limit", "lines",
	"load", "lock", "long", "match", "mod", "natural", "not", "null",
	"numeric", "of", "on", "option", "or", "order", "out", "outer", "over",
	"partition", "precision", "primary", "procedure", "range", "rank", "read",
	"real", "references", "regexp", "release", "rename", "repeat", "replace",
	"require", "restrict", "return", "revoke", "right", "rlike", "row",
	"rows", "schema", "select", "separator", "set", "show", "signal",
	"smallint", "spatial", "sql", "ssl", "starting", "system", "table",
	"terminated", "then", "to", "trailing", "trigger", "true", "undo",
	"union", "unique", "unlock", "unsigned", "update", "usage", "use",
	"using", "values", "varchar", "when", "where", "while", "window", "with",
	"write", "xor", "year_month", "zerofill",
}

// MySQL is the MySQL dialect. ILIKE is written as LIKE since the default
// collations compare case-insensitively.
var MySQL = dialect.New(Config).
	Function(dialect.FuncCurrentTimestamp, "CURRENT_TIMESTAMP").
	FunctionAlias("NOW", dialect.FuncCurrentTimestamp).
	Function(dialect.FuncCurrentDate, "CURRENT_DATE").
	FunctionAlias("CURDATE", dialect.FuncCurrentDate).
	FunctionAlias("SUBSTR", dialect.FuncSubstring).
	// LENGTH counts bytes in MySQL.
	FunctionAlias("LENGTH", "OCTET_LENGTH").
	Function(dialect.FuncLength, "CHAR_LENGTH").
	FunctionAlias("CHARACTER_LENGTH", dialect.FuncLength).
	FunctionAlias("LCASE", dialect.FuncLower).
	FunctionAlias("UCASE", dialect.FuncUpper).
	FunctionAlias("POW", dialect.FuncPower).
	FunctionAlias("CEILING", dialect.FuncCeil).
	Function(dialect.FuncRandom, "RAND").
	Function(dialect.FuncArrayAgg, "JSON_ARRAYAGG").
	Function(dialect.FuncArraySize, "JSON_LENGTH").
	UnsupportedFunctions(dialect.FuncStringAgg, dialect.FuncApproxCountDistinct).
	Type(dialect.TypeString, "CHAR").
	Type(dialect.TypeVarchar, "CHAR").
	TypeAlias("TEXT", dialect.TypeString).
	Type(dialect.TypeInt, "SIGNED").
	TypeAlias("SIGNED INTEGER", dialect.TypeInt).
	TypeAlias("INTEGER", dialect.TypeInt).
	Type(dialect.TypeBigint, "SIGNED").
	Type(dialect.TypeSmallint, "SIGNED").
	TypeAlias("UNSIGNED", dialect.TypeBigint).
	Type(dialect.TypeTimestamp, "DATETIME").
	UnsupportedTypes(dialect.TypeBoolean).
	Operator(dialect.TokenIlike, "LIKE").
	Operator(dialect.TokenRlike, "REGEXP").
	WithReservedWords(ReservedWords...).
	Build()
