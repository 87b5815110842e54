package dialect

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (Postgres).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Snowflake, Oracle).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL on Linux).
	NormCaseSensitive
	// NormCaseInsensitive compares lowercase but keeps the written case (Spark, BigQuery, DuckDB).
	NormCaseInsensitive
)

// String returns the strategy name.
func (n NormalizationStrategy) String() string {
	switch n {
	case NormLowercase:
		return "lowercase"
	case NormUppercase:
		return "uppercase"
	case NormCaseSensitive:
		return "case-sensitive"
	case NormCaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: " or `
	QuoteEnd      string                // End quote character (usually same as Quote)
	Escape        string                // Escape sequence for QuoteEnd inside a name: "" or ``
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}

// StringConfig defines how string literals are written.
type StringConfig struct {
	// Quotes lists the characters that open a string literal.
	// Single quote is always one of them.
	Quotes string
	// BackslashEscapes is true when \' and \\ are escapes inside strings.
	BackslashEscapes bool
}

// LimitStyle is how a dialect limits the number of returned rows.
type LimitStyle int

const (
	// LimitClause is LIMIT n [OFFSET m].
	LimitClause LimitStyle = iota
	// FetchFirst is [OFFSET m ROWS] FETCH FIRST n ROWS ONLY.
	FetchFirst
)

// String returns the style as SQL text.
func (l LimitStyle) String() string {
	if l == FetchFirst {
		return "FETCH FIRST"
	}
	return "LIMIT"
}

// Config is the pure data part of a dialect definition.
// Each dialect package declares one and hands it to New.
type Config struct {
	Name        string
	Aliases     []string
	Identifiers IdentifierConfig
	Strings     StringConfig
	Limit       LimitStyle

	CastOperator    bool   // x::type casts
	BooleanLiterals bool   // TRUE and FALSE are literals; otherwise 1 and 0
	ConcatOperator  bool   // || concatenates strings
	NullSafeEqual   string // spelling of null-safe equality; empty when unsupported
	HashComments    bool   // # starts a line comment
	DollarQuotes    bool   // $$...$$ and $tag$...$tag$ strings
	LimitComma      bool   // LIMIT offset, count
}
