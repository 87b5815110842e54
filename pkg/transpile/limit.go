package transpile

import (
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// rowLimit rewrites row limiting clauses into the target's style:
// LIMIT n [OFFSET m] or [OFFSET m ROWS] FETCH FIRST n ROWS ONLY.
// LIMIT m, n becomes LIMIT n OFFSET m unless comma is set.
func rowLimit(items []item, style dialect.LimitStyle, comma bool) []item {
	if style == dialect.FetchFirst {
		return limitToFetch(items)
	}
	items = fetchToLimit(items)
	if !comma {
		items = commaToOffset(items)
	}
	return items
}

func isLimitValue(it item) bool {
	switch it.Type {
	case token.NUMBER, token.PARAM, token.TEMPLATE:
		return true
	}
	return false
}

func keyword(t token.TokenType, at item) item {
	return item{Token: token.Token{Type: t, Literal: t.String(), Spaced: true, Span: at.Span}, text: t.String()}
}

func itemAt(items []item, i int) (item, bool) {
	if i < 0 || i >= len(items) {
		return item{}, false
	}
	return items[i], true
}

func is(items []item, i int, types ...token.TokenType) bool {
	it, ok := itemAt(items, i)
	if !ok {
		return false
	}
	for _, t := range types {
		if it.Type == t {
			return true
		}
	}
	return false
}

func limitToFetch(items []item) []item {
	for i := 0; i < len(items); i++ {
		if items[i].Type != token.LIMIT || !is(items, i+1, token.NUMBER, token.PARAM, token.TEMPLATE) {
			continue
		}
		limit := items[i]
		start, end := i, i+2
		count := items[i+1]
		var offset *item

		switch {
		case is(items, i+2, token.COMMA) && isValue(items, i+3):
			// LIMIT offset, count
			o := items[i+1]
			offset, count, end = &o, items[i+3], i+4
		case is(items, i+2, token.OFFSET) && isValue(items, i+3):
			o := items[i+3]
			offset, end = &o, i+4
		case is(items, i-2, token.OFFSET) && isValue(items, i-1):
			o := items[i-1]
			offset, start = &o, i-2
		}

		var out []item
		if offset != nil {
			out = append(out, keyword(token.OFFSET, limit), *offset, keyword(token.ROWS, limit))
		}
		out = append(out,
			keyword(token.FETCH, limit), keyword(token.FIRST, limit), count,
			keyword(token.ROWS, limit), keyword(token.ONLY, limit))
		out[0].Comments = items[start].Comments
		items = splice(items, start, end, out)
		i = start + len(out) - 1
	}
	return items
}

func fetchToLimit(items []item) []item {
	for i := 0; i < len(items); i++ {
		if items[i].Type != token.FETCH || !is(items, i+1, token.FIRST, token.NEXT) {
			continue
		}
		fetch := items[i]
		count := item{Token: token.Token{Type: token.NUMBER, Literal: "1", Spaced: true, Span: fetch.Span}, text: "1"}
		j := i + 2
		if isValue(items, j) {
			count = items[j]
			j++
		}
		if !is(items, j, token.ROW, token.ROWS) || !is(items, j+1, token.ONLY) {
			continue
		}
		start, end := i, j+2

		var offset *item
		if is(items, i-1, token.ROW, token.ROWS) && isValue(items, i-2) && is(items, i-3, token.OFFSET) {
			o := items[i-2]
			offset, start = &o, i-3
		}

		out := []item{keyword(token.LIMIT, fetch), count}
		if offset != nil {
			out = append(out, keyword(token.OFFSET, fetch), *offset)
		}
		out[0].Comments = items[start].Comments
		items = splice(items, start, end, out)
		i = start + len(out) - 1
	}
	return items
}

func commaToOffset(items []item) []item {
	for i := 0; i < len(items); i++ {
		if items[i].Type != token.LIMIT || !isValue(items, i+1) ||
			!is(items, i+2, token.COMMA) || !isValue(items, i+3) {
			continue
		}
		limit := items[i]
		out := []item{limit, items[i+3], keyword(token.OFFSET, limit), items[i+1]}
		out[1].Spaced = true
		out[3].Spaced = true
		items = splice(items, i, i+4, out)
		i += len(out) - 1
	}
	return items
}

func isValue(items []item, i int) bool {
	it, ok := itemAt(items, i)
	return ok && isLimitValue(it)
}

// splice replaces items[start:end] with repl.
func splice(items []item, start, end int, repl []item) []item {
	out := make([]item, 0, len(items)-(end-start)+len(repl))
	out = append(out, items[:start]...)
	out = append(out, repl...)
	return append(out, items[end:]...)
}
