package transpile

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/token"
)

const indentSize = 2

// frame tracks one level of parenthesis nesting.
type frame struct {
	query   bool            // holds a query, so clauses break lines
	base    int             // depth of clause keywords
	restore int             // depth to return to after the closing paren
	clause  token.TokenType // clause currently being printed
	started bool            // something has been printed in this frame
	pending bool            // break before the next token of the clause body
	between bool            // inside BETWEEN, before its AND
}

// printer renders items as SQL text, either on one line or with one
// clause per line and indented lists and subqueries.
type printer struct {
	output      *bytes.Buffer
	pretty      bool
	depth       int
	atLineStart bool
	frames      []*frame
	prev        *item
}

func newPrinter(pretty bool) *printer {
	return &printer{
		output:      &bytes.Buffer{},
		pretty:      pretty,
		atLineStart: true,
		frames:      []*frame{{query: true}},
	}
}

// String returns the rendered statement.
func (p *printer) String() string {
	return strings.TrimRight(p.output.String(), " \n")
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *printer) writeln() {
	if p.atLineStart {
		return
	}
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) top() *frame {
	return p.frames[len(p.frames)-1]
}

func (p *printer) render(items []item, trailing []*token.Comment) {
	for i := range items {
		it := &items[i]
		var next *item
		if i+1 < len(items) {
			next = &items[i+1]
		}
		p.printItem(it, next)
	}
	for _, c := range trailing {
		p.output.WriteString(" /* " + c.Body() + " */")
	}
}

func (p *printer) printItem(it, next *item) {
	f := p.top()

	if it.Type == token.RPAREN {
		if len(p.frames) > 1 {
			closed := f
			p.frames = p.frames[:len(p.frames)-1]
			if closed.query && p.pretty {
				p.writeln()
				p.depth = closed.restore
			}
		}
		p.emit(it)
		return
	}

	if p.pretty && f.query {
		if p.clauseStart(it, next, f) {
			if f.started {
				p.depth = f.base
				p.writeln()
			}
			f.clause = it.Type
			f.between = false
			f.started = true
			p.emit(it)
			switch it.Type {
			case token.SELECT, token.WHERE, token.GROUP, token.HAVING, token.ORDER:
				f.pending = true
			default:
				f.pending = it.Type == dialect.TokenQualify
				p.depth = f.base
			}
			return
		}
		if f.pending && !clauseModifier(it) {
			f.pending = false
			p.depth = f.base + 1
			p.writeln()
		}
		switch {
		case it.Type == token.COMMA && listClause(f.clause):
			p.emit(it)
			p.writeln()
			return
		case it.Type == token.BETWEEN:
			f.between = true
		case (it.Type == token.AND || it.Type == token.OR) && conditionClause(f.clause):
			if it.Type == token.AND && f.between {
				f.between = false
			} else {
				p.writeln()
			}
		}
	}

	p.emit(it)
	f.started = true

	if it.Type == token.LPAREN {
		sub := next != nil && (next.Type == token.SELECT || next.Type == token.WITH)
		nf := &frame{query: sub, restore: p.depth}
		if sub && p.pretty {
			nf.base = p.depth + 1
			p.depth = nf.base
			p.writeln()
		}
		p.frames = append(p.frames, nf)
	}
}

// clauseStart reports whether it begins a new clause of the current query.
func (p *printer) clauseStart(it, next *item, f *frame) bool {
	prev := p.prev
	prevIs := func(types ...token.TokenType) bool {
		if prev == nil {
			return false
		}
		for _, t := range types {
			if prev.Type == t {
				return true
			}
		}
		return false
	}

	switch it.Type {
	case token.SELECT, token.WHERE, token.HAVING, token.WINDOW, token.LIMIT, token.FETCH:
		return true
	case token.WITH:
		return !f.started
	case token.FROM:
		return !prevIs(token.DELETE, token.DISTINCT)
	case token.OFFSET:
		return !prevIs(token.LIMIT)
	case token.GROUP, token.ORDER:
		return next != nil && next.Type == token.BY && !(prev != nil && strings.EqualFold(prev.Literal, "WITHIN"))
	case token.UNION, token.INTERSECT, token.EXCEPT:
		return !prevIs(token.STAR)
	case token.JOIN, token.INNER, token.CROSS, token.NATURAL, token.FULL, token.LEFT, token.RIGHT:
		if it.call {
			return false
		}
		return !prevIs(token.LEFT, token.RIGHT, token.FULL, token.INNER, token.CROSS, token.NATURAL, token.OUTER)
	}
	return it.Type == dialect.TokenQualify
}

// clauseModifier reports whether it stays on the clause keyword's line.
func clauseModifier(it *item) bool {
	switch it.Type {
	case token.BY, token.DISTINCT, token.ALL:
		return true
	}
	return false
}

func listClause(t token.TokenType) bool {
	switch t {
	case token.SELECT, token.GROUP, token.ORDER, token.WITH:
		return true
	}
	return false
}

func conditionClause(t token.TokenType) bool {
	switch t {
	case token.WHERE, token.HAVING:
		return true
	}
	return t == dialect.TokenQualify
}

// emit writes an item with its comments and the space before it.
func (p *printer) emit(it *item) {
	commented := false
	if len(it.Comments) > 0 {
		if p.output.Len() == 0 {
			for _, c := range it.Comments {
				p.output.WriteString(c.Text)
				p.output.WriteByte('\n')
			}
		} else {
			for _, c := range it.Comments {
				p.space(nil)
				p.output.WriteString("/* " + c.Body() + " */")
				p.atLineStart = false
			}
			commented = true
		}
	}

	switch {
	case p.atLineStart:
		p.writeIndent()
	case commented:
		p.output.WriteByte(' ')
	case p.prev != nil:
		p.space(it)
	}
	p.output.WriteString(it.text)
	p.prev = it
}

func (p *printer) space(cur *item) {
	if p.atLineStart {
		p.writeIndent()
		return
	}
	if p.output.Len() == 0 {
		return
	}
	if cur == nil || needSpace(p.prev, cur) {
		p.output.WriteByte(' ')
	}
}

// needSpace reports whether a space separates prev and cur on one line.
func needSpace(prev, cur *item) bool {
	if prev == nil {
		return false
	}
	switch cur.Type {
	case token.COMMA, token.RPAREN, token.RBRACKET, token.DOT, token.DCOLON:
		return false
	case token.COLON:
		return cur.Spaced
	}
	switch prev.Type {
	case token.LPAREN, token.LBRACKET, token.DOT, token.DCOLON, token.COLON:
		return false
	}
	if prev.unary {
		return false
	}
	if cur.Type == token.LPAREN && prev.call {
		return false
	}
	if cur.Type == token.LBRACKET && !cur.Spaced {
		switch prev.Type {
		case token.IDENT, token.RPAREN, token.RBRACKET:
			return false
		}
	}
	if (prev.Type == token.TEMPLATE || cur.Type == token.TEMPLATE) && !cur.Spaced {
		return false
	}
	return true
}
