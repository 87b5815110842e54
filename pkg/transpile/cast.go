package transpile

import (
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// typeWords reads a type name starting at toks[i]. It returns the index
// just past the name (before any parameter list) and the name in upper case
// with its words joined by single spaces.
func typeWords(toks []token.Token, i int) (int, string) {
	words := []string{upper(toks[i])}
	j := i + 1
	for j < len(toks) {
		tok := toks[j]
		if tok.Quoted || (tok.Type != token.IDENT && tok.Type != token.WITH) {
			break
		}
		w := upper(tok)
		if tok.Type == token.WITH || w == "WITHOUT" {
			// WITH TIME ZONE, WITHOUT TIME ZONE, WITH LOCAL TIME ZONE
			if j+1 >= len(toks) || !typeContinuation[upper(toks[j+1])] {
				break
			}
		} else if !typeContinuation[w] {
			break
		}
		words = append(words, w)
		j++
	}
	return j, strings.Join(words, " ")
}

// typeEnd returns the index just past a full type starting at toks[i],
// including its parameter list and array suffixes. It returns i when no
// type starts there.
func typeEnd(toks []token.Token, i int) int {
	if i >= len(toks) || toks[i].Type != token.IDENT || toks[i].Quoted {
		return i
	}
	j, _ := typeWords(toks, i)
	if j < len(toks) && toks[j].Type == token.LPAREN {
		closing := matchClose(toks, j)
		if closing < 0 {
			return i
		}
		j = closing + 1
	}
	for j+1 < len(toks) && toks[j].Type == token.LBRACKET && toks[j+1].Type == token.RBRACKET {
		j += 2
	}
	return j
}

// matchClose returns the index of the bracket closing the one at toks[i].
func matchClose(toks []token.Token, i int) int {
	depth := 0
	for j := i; j < len(toks); j++ {
		switch toks[j].Type {
		case token.LPAREN, token.LBRACKET:
			depth++
		case token.RPAREN, token.RBRACKET:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// matchOpen returns the index of the bracket opening the one at toks[i].
func matchOpen(toks []token.Token, i int) int {
	depth := 0
	for j := i; j >= 0; j-- {
		switch toks[j].Type {
		case token.RPAREN, token.RBRACKET:
			depth++
		case token.LPAREN, token.LBRACKET:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// operandStart returns the index of the first token of the operand that
// ends just before toks[i], or -1 when there is none. Operands are atoms,
// dotted names, function calls, parenthesized expressions and subscripts.
func operandStart(toks []token.Token, i int) int {
	j := i - 1
	for j >= 0 {
		switch toks[j].Type {
		case token.RPAREN, token.RBRACKET:
			open := matchOpen(toks, j)
			if open < 0 {
				return -1
			}
			if open > 0 {
				prev := toks[open-1]
				subscript := toks[j].Type == token.RBRACKET &&
					(prev.Type == token.IDENT || prev.Type == token.RPAREN || prev.Type == token.RBRACKET)
				if subscript {
					j = open - 1
					continue
				}
				if toks[j].Type == token.RPAREN && isCallee(prev) {
					open--
				}
			}
			j = open
		default:
			if !isAtom(toks[j]) || toks[j].Type == token.STAR {
				return -1
			}
		}
		if j >= 2 && toks[j-1].Type == token.DOT {
			j -= 2
			continue
		}
		return j
	}
	return -1
}

// expandCastOperators rewrites every `x::t` into `CAST(x AS t)`.
// Occurrences whose operand or type cannot be delimited are left alone.
func expandCastOperators(toks []token.Token) []token.Token {
	for from := 0; ; {
		i := -1
		for k := from; k < len(toks); k++ {
			if toks[k].Type == token.DCOLON {
				i = k
				break
			}
		}
		if i < 0 {
			return toks
		}

		start := operandStart(toks, i)
		end := typeEnd(toks, i+1)
		if start < 0 || end == i+1 {
			from = i + 1
			continue
		}

		operand := append([]token.Token(nil), toks[start:i]...)
		typ := append([]token.Token(nil), toks[i+1:end]...)

		head := operand[0]
		cast := token.Token{Type: token.CAST, Literal: "CAST", Spaced: head.Spaced, Span: head.Span, Comments: head.Comments}
		operand[0].Spaced = false
		operand[0].Comments = nil
		typ[0].Spaced = true

		out := make([]token.Token, 0, len(toks)+3)
		out = append(out, toks[:start]...)
		out = append(out, cast, synth(token.LPAREN, "(", head))
		out = append(out, operand...)
		out = append(out, synth(token.AS, "AS", toks[i]))
		out = append(out, typ...)
		out = append(out, synth(token.RPAREN, ")", toks[end-1]))
		out = append(out, toks[end:]...)
		toks = out
		from = start
	}
}

// synth creates a token that does not appear in the source, positioned at
// the token it was derived from.
func synth(t token.TokenType, literal string, at token.Token) token.Token {
	return token.Token{Type: t, Literal: literal, Spaced: true, Span: at.Span}
}
