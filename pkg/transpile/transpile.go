// Package transpile converts SQL text between dialects.
//
// Statements are tokenized with the read dialect, checked for structural
// soundness, rewritten token by token (identifier and string quoting,
// function and type spellings, operators, row limiting) and printed for
// the write dialect. There is no semantic analysis: anything the package
// does not recognize passes through as written.
package transpile

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/all" // register built-in dialects
	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// DefaultDialect is used when a dialect name is empty.
const DefaultDialect = "ansi"

// UnsupportedLevel controls what happens when the target dialect cannot
// express a construct.
type UnsupportedLevel int

// Unsupported levels.
const (
	UnsupportedWarn   UnsupportedLevel = iota // record a warning, keep the source spelling
	UnsupportedIgnore                         // keep the source spelling silently
	UnsupportedRaise                          // fail the statement
)

func (l UnsupportedLevel) String() string {
	switch l {
	case UnsupportedIgnore:
		return "ignore"
	case UnsupportedRaise:
		return "raise"
	default:
		return "warn"
	}
}

// ParseUnsupportedLevel parses "ignore", "warn" or "raise".
func ParseUnsupportedLevel(s string) (UnsupportedLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn":
		return UnsupportedWarn, nil
	case "ignore":
		return UnsupportedIgnore, nil
	case "raise":
		return UnsupportedRaise, nil
	}
	return UnsupportedWarn, fmt.Errorf("invalid unsupported level %q (want ignore, warn or raise)", s)
}

type options struct {
	pretty      bool
	unsupported UnsupportedLevel
}

// Option configures a transpilation.
type Option func(*options)

// WithPretty prints one clause per line with indented lists and subqueries.
func WithPretty(pretty bool) Option {
	return func(o *options) { o.pretty = pretty }
}

// WithUnsupported sets how constructs the target cannot express are handled.
func WithUnsupported(level UnsupportedLevel) Option {
	return func(o *options) { o.unsupported = level }
}

// Result holds transpiled statements and any warnings raised producing them.
type Result struct {
	Statements []string
	Warnings   []string
}

// Transpiler converts statements from one dialect to another.
type Transpiler struct {
	read  *dialect.Dialect
	write *dialect.Dialect
	opts  options
}

// New creates a Transpiler between two registered dialects.
// Empty names select DefaultDialect.
func New(read, write string, opts ...Option) (*Transpiler, error) {
	r, err := Lookup(read)
	if err != nil {
		return nil, err
	}
	w, err := Lookup(write)
	if err != nil {
		return nil, err
	}
	return NewWithDialects(r, w, opts...), nil
}

// NewWithDialects creates a Transpiler from dialect values.
func NewWithDialects(read, write *dialect.Dialect, opts ...Option) *Transpiler {
	t := &Transpiler{read: read, write: write}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// Lookup returns the registered dialect for name.
func Lookup(name string) (*dialect.Dialect, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultDialect
	}
	d, ok := dialect.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}
	return d, nil
}

// Read returns the dialect statements are read with.
func (t *Transpiler) Read() *dialect.Dialect { return t.read }

// Write returns the dialect statements are written for.
func (t *Transpiler) Write() *dialect.Dialect { return t.write }

// Script splits sql into statements and transpiles each one. It stops at
// the first statement that fails; the result holds the statements
// transpiled before it.
func (t *Transpiler) Script(sql string) (*Result, error) {
	res := &Result{}
	for _, stmt := range Split(sql, t.read) {
		out, warnings, err := t.Statement(stmt)
		res.Warnings = append(res.Warnings, warnings...)
		if err != nil {
			return res, err
		}
		res.Statements = append(res.Statements, out)
	}
	return res, nil
}

// Statement transpiles a single statement. Trailing semicolons are
// ignored. A statement holding only comments yields an empty string.
func (t *Transpiler) Statement(sql string) (string, []string, error) {
	toks, err := Tokenize(sql, t.read)
	if err != nil {
		return "", nil, err
	}

	eof := toks[len(toks)-1]
	toks = toks[:len(toks)-1]
	for len(toks) > 0 && toks[len(toks)-1].Type == token.SEMICOLON {
		toks = toks[:len(toks)-1]
	}
	if len(toks) == 0 {
		return "", nil, nil
	}
	if err := validate(toks); err != nil {
		return "", nil, err
	}

	if !t.write.CastOperator {
		toks = expandCastOperators(toks)
	}
	rw := &rewriter{read: t.read, write: t.write, level: t.opts.unsupported}
	items := rw.rewrite(toks)
	if rw.err != nil {
		return "", rw.warnings, rw.err
	}
	items = rowLimit(items, t.write.Limit, t.write.LimitComma)

	p := newPrinter(t.opts.pretty)
	p.render(items, eof.Comments)
	return p.String(), rw.warnings, nil
}

// Transpile converts every statement in sql from the read dialect to the
// write dialect, returning one string per statement.
func Transpile(sql, read, write string, opts ...Option) ([]string, error) {
	res, err := TranspileWithWarnings(sql, read, write, opts...)
	if err != nil {
		return nil, err
	}
	return res.Statements, nil
}

// TranspileWithWarnings is Transpile that also reports constructs the
// write dialect could not express.
func TranspileWithWarnings(sql, read, write string, opts ...Option) (*Result, error) {
	t, err := New(read, write, opts...)
	if err != nil {
		return nil, err
	}
	return t.Script(sql)
}
