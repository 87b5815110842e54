package transpile

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// ErrUnknownDialect is returned when a dialect name is not registered.
var ErrUnknownDialect = errors.New("unknown dialect")

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParseError reports a statement that is not well-formed SQL.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// UnsupportedError reports a construct the target dialect cannot express.
type UnsupportedError struct {
	Pos     token.Position
	Feature string
	Dialect string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported in %s (line %d, column %d)", e.Feature, e.Dialect, e.Pos.Line, e.Pos.Column)
}

// Common error messages
const (
	errUnterminatedString     = "unterminated string literal"
	errUnterminatedIdentifier = "unterminated quoted identifier"
	errUnterminatedComment    = "unterminated block comment"
	errUnterminatedTemplate   = "unterminated template placeholder"
	errIllegalChar            = "unexpected character %q"
	errUnexpectedStart        = "unexpected %s at start of statement"
	errUnmatchedParen         = "unmatched closing parenthesis"
	errUnclosedParen          = "missing closing parenthesis"
	errUnmatchedBracket       = "unmatched closing bracket"
	errUnclosedBracket        = "missing closing bracket"
	errUnclosedCase           = "CASE without END"
)
