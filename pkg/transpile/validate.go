package transpile

import (
	"fmt"

	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// validate performs the structural checks a statement must pass before it
// is rewritten: a recognizable first token, balanced parentheses and
// brackets, and every CASE closed by an END.
func validate(toks []token.Token) error {
	first := toks[0]
	if !startsStatement(first) {
		return &ParseError{Pos: first.Pos(), Message: fmt.Sprintf(errUnexpectedStart, describe(first))}
	}

	var open []token.Token
	cases := 0
	var lastCase token.Token
	for _, tok := range toks {
		switch tok.Type {
		case token.LPAREN, token.LBRACKET:
			open = append(open, tok)
		case token.RPAREN, token.RBRACKET:
			want, msg := token.LPAREN, errUnmatchedParen
			if tok.Type == token.RBRACKET {
				want, msg = token.LBRACKET, errUnmatchedBracket
			}
			if len(open) == 0 || open[len(open)-1].Type != want {
				return &ParseError{Pos: tok.Pos(), Message: msg}
			}
			open = open[:len(open)-1]
		case token.CASE:
			cases++
			lastCase = tok
		case token.END:
			if cases > 0 {
				cases--
			}
		case token.SEMICOLON:
			return &ParseError{Pos: tok.Pos(), Message: "unexpected ; inside statement"}
		}
	}

	if len(open) > 0 {
		tok := open[len(open)-1]
		msg := errUnclosedParen
		if tok.Type == token.LBRACKET {
			msg = errUnclosedBracket
		}
		return &ParseError{Pos: tok.Pos(), Message: msg}
	}
	if cases > 0 {
		return &ParseError{Pos: lastCase.Pos(), Message: errUnclosedCase}
	}
	return nil
}

func startsStatement(tok token.Token) bool {
	if statementKeywords[tok.Type] {
		return true
	}
	return tok.Type == token.IDENT && !tok.Quoted && statementWords[upper(tok)]
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.IDENT, token.NUMBER, token.STRING:
		return fmt.Sprintf("%q", tok.Literal)
	default:
		return tok.Type.String()
	}
}
