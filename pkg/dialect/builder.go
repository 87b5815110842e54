package dialect

import (
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// New starts a dialect from its configuration.
func New(cfg *Config) *Builder {
	return &Builder{
		dialect: &Dialect{
			Config:          *cfg,
			functions:       make(map[string]FunctionSpec),
			functionAliases: make(map[string]string),
			types:           make(map[string]string),
			typeAliases:     make(map[string]typeAlias),
			unsupportedType: make(map[string]struct{}),
			operators:       make(map[token.TokenType]string),
			reservedWords:   make(map[string]struct{}),
		},
	}
}

// Extend starts a dialect that inherits every table of base.
// Settings from cfg replace the base configuration.
func Extend(base *Dialect, cfg *Config) *Builder {
	b := New(cfg)
	d := b.dialect
	for k, v := range base.functions {
		d.functions[k] = v
	}
	for k, v := range base.functionAliases {
		d.functionAliases[k] = v
	}
	for k, v := range base.types {
		d.types[k] = v
	}
	for k, v := range base.typeAliases {
		d.typeAliases[k] = v
	}
	for k := range base.unsupportedType {
		d.unsupportedType[k] = struct{}{}
	}
	for k, v := range base.operators {
		d.operators[k] = v
	}
	for k := range base.reservedWords {
		d.reservedWords[k] = struct{}{}
	}
	return b
}

// Function sets the spelling of a canonical function, called with parentheses.
// The spelling also reads back as the canonical function.
func (b *Builder) Function(canonical, spelling string) *Builder {
	b.dialect.functions[canonical] = FunctionSpec{Name: spelling}
	b.alias(spelling, canonical)
	return b
}

// NiladicFunction sets a spelling written without parentheses.
func (b *Builder) NiladicFunction(canonical, spelling string) *Builder {
	b.dialect.functions[canonical] = FunctionSpec{Name: spelling, Niladic: true}
	b.alias(spelling, canonical)
	return b
}

// FunctionAlias makes spelling read as canonical without changing how the
// canonical function is written.
func (b *Builder) FunctionAlias(spelling, canonical string) *Builder {
	b.dialect.functionAliases[strings.ToUpper(spelling)] = canonical
	return b
}

// UnsupportedFunctions marks canonical functions the dialect cannot express.
func (b *Builder) UnsupportedFunctions(canonicals ...string) *Builder {
	for _, c := range canonicals {
		b.dialect.functions[c] = FunctionSpec{Name: c, Unsupported: true}
	}
	return b
}

func (b *Builder) alias(spelling, canonical string) {
	upper := strings.ToUpper(spelling)
	if upper != canonical {
		b.dialect.functionAliases[upper] = canonical
	}
}

// Type sets the spelling of a canonical type. A spelling without
// parameters also reads back as the canonical type when written bare,
// unless an earlier declaration already claimed it.
func (b *Builder) Type(canonical, spelling string) *Builder {
	b.dialect.types[canonical] = spelling
	if !strings.Contains(spelling, "(") {
		upper := strings.ToUpper(spelling)
		if _, taken := b.dialect.typeAliases[upper]; !taken && !IsCanonicalType(upper) {
			b.dialect.typeAliases[upper] = typeAlias{canonical: canonical, bareOnly: true}
		}
	}
	return b
}

// TypeAlias makes spelling read as canonical.
func (b *Builder) TypeAlias(spelling, canonical string) *Builder {
	b.dialect.typeAliases[strings.ToUpper(spelling)] = typeAlias{canonical: canonical}
	return b
}

// BareTypeAlias makes spelling read as canonical only when written
// without parameters.
func (b *Builder) BareTypeAlias(spelling, canonical string) *Builder {
	b.dialect.typeAliases[strings.ToUpper(spelling)] = typeAlias{canonical: canonical, bareOnly: true}
	return b
}

// UnsupportedTypes marks canonical types the dialect cannot express.
func (b *Builder) UnsupportedTypes(canonicals ...string) *Builder {
	for _, c := range canonicals {
		b.dialect.unsupportedType[c] = struct{}{}
	}
	return b
}

// Operators declares operator keywords supported with their usual spelling.
func (b *Builder) Operators(ts ...token.TokenType) *Builder {
	for _, t := range ts {
		b.dialect.operators[t] = t.String()
	}
	return b
}

// Operator declares an operator keyword with a dialect spelling (RLIKE as ~).
func (b *Builder) Operator(t token.TokenType, spelling string) *Builder {
	b.dialect.operators[t] = spelling
	return b
}

// WithoutOperators removes operator keywords, typically after Extend.
func (b *Builder) WithoutOperators(ts ...token.TokenType) *Builder {
	for _, t := range ts {
		delete(b.dialect.operators, t)
	}
	return b
}

// WithReservedWords adds words that must be quoted when used as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// Build returns the finished dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
