// Package dialect describes SQL dialects for transpilation.
//
// A Dialect captures how one SQL engine spells identifiers, strings,
// functions, data types and a handful of operators. The transpiler reads
// with one dialect and writes with another, going through the canonical
// names defined in this package. Concrete dialects are registered from
// pkg/dialects/*/ packages.
package dialect

import (
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Config

	functions       map[string]FunctionSpec // canonical -> spelling
	functionAliases map[string]string       // spelling -> canonical
	types           map[string]string       // canonical -> spelling
	typeAliases     map[string]typeAlias    // spelling -> canonical
	unsupportedType map[string]struct{}
	operators       map[token.TokenType]string // supported operator keywords -> spelling
	reservedWords   map[string]struct{}        // lowercase
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case NormUppercase:
		return strings.ToUpper(name)
	case NormLowercase, NormCaseInsensitive:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// IsReservedWord returns true if the word needs quoting when used as an identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToLower(word)]
	return ok
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes an identifier only if it is reserved
// or cannot be written bare. A bare reserved name is folded the way the
// dialect folds unquoted identifiers first, so quoting keeps it pointing
// at the same object.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if !isBareIdentifier(name) {
		return d.QuoteIdentifier(name)
	}
	if !d.IsReservedWord(name) {
		return name
	}
	switch d.Identifiers.Normalization {
	case NormUppercase, NormLowercase:
		name = d.NormalizeName(name)
	}
	return d.QuoteIdentifier(name)
}

func isBareIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= 0x80:
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// QuoteString writes value as a string literal.
func (d *Dialect) QuoteString(value string) string {
	if d.Strings.BackslashEscapes {
		value = strings.ReplaceAll(value, `\`, `\\`)
		value = strings.ReplaceAll(value, "'", `\'`)
	} else {
		value = strings.ReplaceAll(value, "'", "''")
	}
	return "'" + value + "'"
}

// IsStringQuote reports whether c opens a string literal in this dialect.
func (d *Dialect) IsStringQuote(c byte) bool {
	return c == '\'' || strings.IndexByte(d.Strings.Quotes, c) >= 0
}

// CanonicalFunction maps a function name as written in this dialect to
// its canonical name. The second result is false for functions the
// package does not know; those are written through unchanged.
func (d *Dialect) CanonicalFunction(name string) (string, bool) {
	upper := strings.ToUpper(name)
	if canonical, ok := d.functionAliases[upper]; ok {
		return canonical, true
	}
	if IsCanonicalFunction(upper) {
		return upper, true
	}
	return "", false
}

// FunctionFor returns how this dialect spells a canonical function.
func (d *Dialect) FunctionFor(canonical string) FunctionSpec {
	if spec, ok := d.functions[canonical]; ok {
		return spec
	}
	if spec, ok := canonicalFunctions[canonical]; ok {
		return spec
	}
	return FunctionSpec{Name: canonical}
}

// AllowsBare reports whether the canonical function may appear without
// parentheses in SQL read with this dialect.
func (d *Dialect) AllowsBare(canonical string) bool {
	if spec, ok := d.functions[canonical]; ok && spec.Niladic {
		return true
	}
	return canBeBare(canonical)
}

// CanonicalType maps a type name written in this dialect to a canonical type.
// hasParams reports whether the type was followed by a parameter list.
func (d *Dialect) CanonicalType(name string, hasParams bool) (string, bool) {
	upper := strings.ToUpper(name)
	if alias, ok := d.typeAliases[upper]; ok && (!alias.bareOnly || !hasParams) {
		return alias.canonical, true
	}
	if IsCanonicalType(upper) {
		return upper, true
	}
	return "", false
}

// TypeFor returns how this dialect spells a canonical type.
// The second result is false when the dialect has no equivalent.
func (d *Dialect) TypeFor(canonical string) (string, bool) {
	if _, ok := d.unsupportedType[canonical]; ok {
		return "", false
	}
	if spelling, ok := d.types[canonical]; ok {
		return spelling, true
	}
	return canonical, true
}

// Operator returns the spelling of an operator keyword (ILIKE, RLIKE, QUALIFY).
// The second result is false when the dialect does not support it.
func (d *Dialect) Operator(t token.TokenType) (string, bool) {
	spelling, ok := d.operators[t]
	return spelling, ok
}

// Names returns the dialect name followed by its aliases.
func (d *Dialect) Names() []string {
	return append([]string{d.Name}, d.Aliases...)
}
