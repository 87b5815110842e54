// Package rewrite replaces table names in SQL text according to a list of
// source to target mappings.
package rewrite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/token"
	"github.com/leapstack-labs/sqlecto/pkg/transpile"
)

// TableMapping maps a source table name to its replacement.
type TableMapping struct {
	Source string `koanf:"src_table" yaml:"src_table" json:"src_table"`
	Target string `koanf:"dst_table" yaml:"dst_table" json:"dst_table"`
}

func (m TableMapping) String() string {
	return m.Source + ":" + m.Target
}

// ErrInvalidMapping is returned for a mapping that is not "source:target".
var ErrInvalidMapping = errors.New("invalid table mapping")

// ParseMapping parses "source:target". Both sides are trimmed and must be
// non-empty. The target may itself contain colons.
func ParseMapping(s string) (TableMapping, error) {
	src, dst, ok := strings.Cut(s, ":")
	src, dst = strings.TrimSpace(src), strings.TrimSpace(dst)
	if !ok || src == "" || dst == "" {
		return TableMapping{}, fmt.Errorf("%w %q: expected source_table:target_table", ErrInvalidMapping, s)
	}
	return TableMapping{Source: src, Target: dst}, nil
}

// ParseMappings parses every entry with ParseMapping, keeping order.
func ParseMappings(entries []string) ([]TableMapping, error) {
	mappings := make([]TableMapping, 0, len(entries))
	for _, e := range entries {
		m, err := ParseMapping(e)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

// Mode selects how mappings are matched.
type Mode string

// Rewrite modes.
const (
	// ModeLiteral replaces every occurrence of the source text, including
	// occurrences inside longer names, strings and comments.
	ModeLiteral Mode = "literal"
	// ModeIdentifier replaces only whole table references: a bare or
	// dotted name whose parts match the source name exactly.
	ModeIdentifier Mode = "identifier"
)

// ParseMode parses a mode name. An empty name selects ModeLiteral.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLiteral:
		return ModeLiteral, nil
	case ModeIdentifier:
		return ModeIdentifier, nil
	}
	return "", fmt.Errorf("invalid mapping mode %q (want literal or identifier)", s)
}

// Rewriter applies table mappings to SQL text.
type Rewriter struct {
	mappings []TableMapping
	mode     Mode
	dialect  *dialect.Dialect
}

// New creates a Rewriter. The dialect is used to tokenize SQL in
// ModeIdentifier and may be nil for ModeLiteral.
func New(mappings []TableMapping, mode Mode, d *dialect.Dialect) *Rewriter {
	if mode == "" {
		mode = ModeLiteral
	}
	return &Rewriter{mappings: mappings, mode: mode, dialect: d}
}

// Rewrite applies every mapping to sql in list order. Each mapping sees
// the output of the previous one, so chained mappings compose.
func (r *Rewriter) Rewrite(sql string) string {
	for _, m := range r.mappings {
		if m.Source == "" {
			continue
		}
		if r.mode == ModeIdentifier && r.dialect != nil {
			sql = replaceIdentifier(sql, m, r.dialect)
		} else {
			sql = strings.ReplaceAll(sql, m.Source, m.Target)
		}
	}
	return sql
}

// RewriteAll rewrites each query.
func (r *Rewriter) RewriteAll(queries []string) []string {
	out := make([]string, len(queries))
	for i, q := range queries {
		out[i] = r.Rewrite(q)
	}
	return out
}

// replaceIdentifier replaces dotted name references equal to m.Source.
// Name parts compare case-insensitively unless quoted. SQL that does not
// tokenize is returned unchanged.
func replaceIdentifier(sql string, m TableMapping, d *dialect.Dialect) string {
	toks, err := transpile.Tokenize(sql, d)
	if err != nil {
		return sql
	}
	want := strings.Split(m.Source, ".")

	var b strings.Builder
	last := 0
	for i := 0; i < len(toks); i++ {
		if toks[i].Type != token.IDENT || (i > 0 && toks[i-1].Type == token.DOT) {
			continue
		}
		end, ok := matchName(toks, i, want)
		if !ok {
			continue
		}
		start := toks[i].Span.Start.Offset
		b.WriteString(sql[last:start])
		b.WriteString(m.Target)
		last = toks[end].Span.End.Offset
		i = end
	}
	b.WriteString(sql[last:])
	return b.String()
}

// matchName reports whether the dotted name starting at toks[i] is exactly
// want, returning the index of its last token.
func matchName(toks []token.Token, i int, want []string) (int, bool) {
	j := i
	for k, part := range want {
		if j >= len(toks) || toks[j].Type != token.IDENT {
			return 0, false
		}
		if toks[j].Quoted && toks[j].Literal != part || !toks[j].Quoted && !strings.EqualFold(toks[j].Literal, part) {
			return 0, false
		}
		if k < len(want)-1 {
			if j+1 >= len(toks) || toks[j+1].Type != token.DOT {
				return 0, false
			}
			j += 2
		}
	}
	// a longer dotted name is a different table
	if j+1 < len(toks) && toks[j+1].Type == token.DOT {
		return 0, false
	}
	return j, true
}
