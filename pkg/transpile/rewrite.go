package transpile

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// item is a token as it will be written in the target dialect.
type item struct {
	token.Token
	text  string
	call  bool // directly followed by an argument or parameter list
	unary bool // sign applied to the following operand
}

// rewriter converts tokens read with one dialect into items spelled for
// another, collecting what the target cannot express.
type rewriter struct {
	read     *dialect.Dialect
	write    *dialect.Dialect
	level    UnsupportedLevel
	warnings []string
	err      error
}

func (r *rewriter) unsupported(tok token.Token, feature string) {
	e := &UnsupportedError{Pos: tok.Pos(), Feature: feature, Dialect: r.write.Name}
	switch r.level {
	case UnsupportedRaise:
		if r.err == nil {
			r.err = e
		}
	case UnsupportedWarn:
		r.warnings = append(r.warnings, e.Error())
	}
}

func (r *rewriter) rewrite(toks []token.Token) []item {
	items := make([]item, 0, len(toks))
	var castFrames []bool // per open paren: whether it holds CAST arguments
	expectType := false

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		var prev, next *token.Token
		if i > 0 {
			prev = &toks[i-1]
		}
		if i+1 < len(toks) {
			next = &toks[i+1]
		}
		afterDot := prev != nil && prev.Type == token.DOT

		if expectType {
			expectType = false
			if tok.Type == token.IDENT && !tok.Quoted {
				end, name := typeWords(toks, i)
				hasParams := end < len(toks) && toks[end].Type == token.LPAREN
				items = append(items, r.typeName(tok, name, hasParams))
				i = end - 1
				continue
			}
		}

		it := item{Token: tok, text: tok.Literal}
		switch tok.Type {
		case token.LPAREN:
			castFrames = append(castFrames, prev != nil && (prev.Type == token.CAST || prev.Type == token.TRY_CAST))
		case token.RPAREN:
			if len(castFrames) > 0 {
				castFrames = castFrames[:len(castFrames)-1]
			}
		case token.DCOLON:
			expectType = true
		case token.AS:
			it.text = "AS"
			expectType = len(castFrames) > 0 && castFrames[len(castFrames)-1]
		case token.IDENT:
			switch {
			case tok.Quoted:
				it.text = r.write.QuoteIdentifier(tok.Literal)
				it.call = next != nil && next.Type == token.LPAREN
			case next != nil && next.Type == token.LPAREN && !afterDot:
				var skip int
				it, skip = r.function(toks, i)
				i += skip
			case !afterDot && (next == nil || next.Type != token.DOT):
				if text, ok := r.bareFunction(tok); ok {
					it.text = text
				} else {
					it.text = r.identifier(tok, next)
				}
			default:
				it.text = r.identifier(tok, next)
				it.call = next != nil && next.Type == token.LPAREN
			}
		case token.IF, token.LEFT, token.RIGHT, token.REPLACE:
			if next != nil && next.Type == token.LPAREN && !afterDot {
				var skip int
				it, skip = r.function(toks, i)
				i += skip
			} else {
				it.text = tok.Type.String()
			}
		case token.CAST, token.TRY_CAST:
			it.text = tok.Type.String()
			it.call = next != nil && next.Type == token.LPAREN
		case token.STRING:
			it.text = r.write.QuoteString(tok.Literal)
		case token.TRUE, token.FALSE:
			it.text = tok.Type.String()
			if !r.write.BooleanLiterals {
				it.text = map[token.TokenType]string{token.TRUE: "1", token.FALSE: "0"}[tok.Type]
			}
		case token.EQ:
			it.text = "="
		case token.NE:
			it.text = "<>"
		case token.DPIPE:
			if !r.write.ConcatOperator {
				r.unsupported(tok, "|| concatenation")
			}
		case token.NULLSAFE_EQ:
			if r.write.NullSafeEqual == "" {
				r.unsupported(tok, "null-safe equality")
			} else {
				it.text = r.write.NullSafeEqual
			}
		case token.TILDE:
			if t, ok := r.readOperator(tok.Literal); ok {
				it.Type = t
				it.text = r.operator(tok, t)
			}
		case token.MINUS, token.PLUS:
			it.unary = isUnaryPosition(prev)
		default:
			switch {
			case token.IsDynamic(tok.Type):
				it.text = r.operator(tok, tok.Type)
			case token.IsKeyword(tok.Type):
				it.text = tok.Type.String()
			}
		}
		items = append(items, it)
	}
	return items
}

// function rewrites the function name at toks[i]. It returns the item and
// the number of following tokens consumed (the "()" of a niladic call).
func (r *rewriter) function(toks []token.Token, i int) (item, int) {
	tok := toks[i]
	it := item{Token: tok, text: tok.Literal, call: true}
	if token.IsKeyword(tok.Type) {
		it.text = tok.Type.String()
	}

	canonical, ok := r.read.CanonicalFunction(tok.Literal)
	if !ok {
		return it, 0
	}
	spec := r.write.FunctionFor(canonical)
	if spec.Unsupported {
		r.unsupported(tok, fmt.Sprintf("function %s", canonical))
		it.text = strings.ToUpper(tok.Literal)
		return it, 0
	}
	it.text = spec.Name
	if spec.Niladic && i+2 < len(toks) && toks[i+2].Type == token.RPAREN {
		it.call = false
		return it, 2
	}
	return it, 0
}

// bareFunction handles niladic functions written without parentheses,
// such as CURRENT_DATE.
func (r *rewriter) bareFunction(tok token.Token) (string, bool) {
	canonical, ok := r.read.CanonicalFunction(tok.Literal)
	if !ok || !r.read.AllowsBare(canonical) {
		return "", false
	}
	spec := r.write.FunctionFor(canonical)
	if spec.Unsupported {
		r.unsupported(tok, fmt.Sprintf("function %s", canonical))
		return strings.ToUpper(tok.Literal), true
	}
	if spec.Niladic {
		return spec.Name, true
	}
	return spec.Name + "()", true
}

// identifier re-quotes a bare identifier that the target reserves.
func (r *rewriter) identifier(tok token.Token, next *token.Token) string {
	name := tok.Literal
	if !r.write.IsReservedWord(name) || r.read.IsReservedWord(name) || syntaxWords[upper(tok)] {
		return name
	}
	if next != nil && next.Type == token.STRING {
		// typed literal such as DATE '2024-01-01'
		return name
	}
	return r.write.QuoteIdentifierIfNeeded(name)
}

func (r *rewriter) typeName(tok token.Token, name string, hasParams bool) item {
	it := item{Token: tok, text: name, call: hasParams}
	canonical, ok := r.read.CanonicalType(name, hasParams)
	if !ok {
		return it
	}
	spelling, ok := r.write.TypeFor(canonical)
	if !ok {
		r.unsupported(tok, fmt.Sprintf("type %s", canonical))
		return it
	}
	if hasParams {
		if k := strings.IndexByte(spelling, '('); k >= 0 {
			spelling = spelling[:k]
		}
	}
	it.text = spelling
	return it
}

// operator spells a dialect-dependent operator keyword for the target.
func (r *rewriter) operator(tok token.Token, t token.TokenType) string {
	spelling, ok := r.write.Operator(t)
	if !ok {
		r.unsupported(tok, t.String())
		return t.String()
	}
	return spelling
}

// readOperator maps a symbol the read dialect uses to spell an operator
// keyword (postgres ~ for RLIKE) back to that keyword.
func (r *rewriter) readOperator(symbol string) (token.TokenType, bool) {
	for _, t := range dialect.OperatorKeywords() {
		if spelling, ok := r.read.Operator(t); ok && spelling == symbol {
			return t, true
		}
	}
	return 0, false
}

// isUnaryPosition reports whether a sign after prev applies to an operand
// rather than acting as a binary operator.
func isUnaryPosition(prev *token.Token) bool {
	if prev == nil {
		return true
	}
	switch prev.Type {
	case token.RPAREN, token.RBRACKET, token.NULL, token.TRUE, token.FALSE, token.END:
		return false
	case token.LPAREN, token.LBRACKET, token.COMMA:
		return true
	}
	return token.IsOperator(prev.Type) || token.IsKeyword(prev.Type)
}
