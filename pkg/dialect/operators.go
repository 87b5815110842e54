package dialect

import "github.com/leapstack-labs/sqlecto/pkg/token"

// Operator keywords that only some dialects understand.
// They are registered once here so every dialect shares the same token type.
var (
	TokenIlike   = token.Register("ILIKE")
	TokenRlike   = token.Register("RLIKE")
	TokenQualify = token.Register("QUALIFY")
)

func init() {
	token.RegisterAlias("REGEXP", TokenRlike)
}

// OperatorKeywords returns the dialect-dependent operator keywords.
func OperatorKeywords() []token.TokenType {
	return []token.TokenType{TokenIlike, TokenRlike, TokenQualify}
}
