package transpile

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/token"
)

// Lexer tokenizes SQL input for one dialect.
type Lexer struct {
	input   string
	dialect *dialect.Dialect
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // line of ch (1-based)
	col     int  // column of ch (1-based)

	prev    token.TokenType  // type of the last emitted token
	spaced  bool             // whitespace seen since the last token
	pending []*token.Comment // comments awaiting the next token
	err     *LexError        // first error encountered
}

// NewLexer creates a Lexer for input written in dialect d.
func NewLexer(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{
		input:   input,
		dialect: d,
		line:    1,
		prev:    token.ILLEGAL,
	}
	l.readChar()
	return l
}

// Err returns the first lexical error, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// advance consumes n characters.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	return l.peekAt(0)
}

// peekAt returns the character n positions after the next one.
func (l *Lexer) peekAt(n int) byte {
	if l.readPos+n >= len(l.input) {
		return 0
	}
	return l.input[l.readPos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// currentPos returns the position of the current character.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *Lexer) fail(pos token.Position, msg string) {
	if l.err == nil {
		l.err = &LexError{Pos: pos, Message: msg}
	}
}

// NextToken returns the next token. After an error the lexer keeps
// returning tokens; callers check Err.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	start := l.currentPos()
	tok := l.scan(start)
	tok.Span = token.Span{Start: start, End: l.currentPos()}
	tok.Spaced = l.spaced
	tok.Comments = l.pending

	l.pending = nil
	l.spaced = false
	l.prev = tok.Type
	return tok
}

//nolint:gocyclo // one case per leading character
func (l *Lexer) scan(pos token.Position) token.Token {
	if l.atEOF() {
		return token.Token{Type: token.EOF}
	}

	d := l.dialect
	ch := l.ch

	switch {
	case d.Identifiers.Quote != "" && ch == d.Identifiers.Quote[0]:
		return l.readQuotedIdentifier(pos)
	case d.IsStringQuote(ch):
		value, ok := l.readString(ch, d.Strings.BackslashEscapes)
		if !ok {
			l.fail(pos, errUnterminatedString)
		}
		return token.Token{Type: token.STRING, Literal: value}
	case isIdentStart(ch):
		return l.readWord(pos)
	case isDigit(ch), ch == '.' && isDigit(l.peekChar()) && !l.afterValue():
		return token.Token{Type: token.NUMBER, Literal: l.readNumber()}
	}

	switch ch {
	case '+':
		return l.symbol(token.PLUS, 1)
	case '-':
		if l.peekChar() == '>' {
			if l.peekAt(1) == '>' {
				return l.symbol(token.DARROW, 3)
			}
			return l.symbol(token.ARROW, 2)
		}
		return l.symbol(token.MINUS, 1)
	case '*':
		return l.symbol(token.STAR, 1)
	case '/':
		return l.symbol(token.SLASH, 1)
	case '%':
		return l.symbol(token.PERCENT, 1)
	case '^':
		return l.symbol(token.CARET, 1)
	case '&':
		return l.symbol(token.AMP, 1)
	case '~':
		return l.symbol(token.TILDE, 1)
	case '=':
		switch l.peekChar() {
		case '=':
			return l.symbol(token.EQ, 2)
		case '>':
			return l.symbol(token.FATARROW, 2)
		}
		return l.symbol(token.EQ, 1)
	case '<':
		switch {
		case l.peekChar() == '=' && l.peekAt(1) == '>':
			return l.symbol(token.NULLSAFE_EQ, 3)
		case l.peekChar() == '=':
			return l.symbol(token.LE, 2)
		case l.peekChar() == '>':
			return l.symbol(token.NE, 2)
		}
		return l.symbol(token.LT, 1)
	case '>':
		if l.peekChar() == '=' {
			return l.symbol(token.GE, 2)
		}
		return l.symbol(token.GT, 1)
	case '!':
		if l.peekChar() == '=' {
			return l.symbol(token.NE, 2)
		}
	case '|':
		if l.peekChar() == '|' {
			return l.symbol(token.DPIPE, 2)
		}
		return l.symbol(token.PIPE, 1)
	case '.':
		return l.symbol(token.DOT, 1)
	case ',':
		return l.symbol(token.COMMA, 1)
	case ';':
		return l.symbol(token.SEMICOLON, 1)
	case '(':
		return l.symbol(token.LPAREN, 1)
	case ')':
		return l.symbol(token.RPAREN, 1)
	case '[':
		return l.symbol(token.LBRACKET, 1)
	case ']':
		return l.symbol(token.RBRACKET, 1)
	case ':':
		if l.peekChar() == ':' {
			return l.symbol(token.DCOLON, 2)
		}
		return l.symbol(token.COLON, 1)
	case '?':
		return l.symbol(token.PARAM, 1)
	case '@':
		if tok, ok := l.readNamedParam(); ok {
			return tok
		}
	case '$':
		if tok, ok := l.readDollar(pos); ok {
			return tok
		}
	case '{':
		return l.readTemplate(pos)
	}

	l.fail(pos, fmt.Sprintf(errIllegalChar, string(ch)))
	return l.symbol(token.ILLEGAL, 1)
}

// symbol consumes n characters and returns them as a token of type t.
func (l *Lexer) symbol(t token.TokenType, n int) token.Token {
	start := l.pos
	l.advance(n)
	return token.Token{Type: t, Literal: l.input[start:l.pos]}
}

// afterValue reports whether the previous token ends a value, so that a
// following '.' is member access rather than the start of a number.
func (l *Lexer) afterValue() bool {
	switch l.prev {
	case token.IDENT, token.RPAREN, token.RBRACKET, token.TEMPLATE:
		return !l.spaced
	}
	return false
}

// skipWhitespaceAndComments skips whitespace and collects comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEOF() {
		switch {
		case isSpace(l.ch):
			l.spaced = true
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-':
			l.collectLineComment(token.LineComment)
		case l.ch == '#' && l.dialect.HashComments:
			l.collectLineComment(token.HashComment)
		case l.ch == '/' && l.peekChar() == '*':
			l.collectBlockComment()
		default:
			return
		}
	}
}

// collectLineComment collects a comment running to the end of the line.
func (l *Lexer) collectLineComment(kind token.CommentKind) {
	startPos := l.currentPos()
	startOffset := l.pos

	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}

	l.spaced = true
	l.pending = append(l.pending, &token.Comment{
		Kind: kind,
		Text: strings.TrimRight(l.input[startOffset:l.pos], "\r"),
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// collectBlockComment collects a block comment.
func (l *Lexer) collectBlockComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	l.advance(2) // skip '/*'
	closed := false
	for !l.atEOF() {
		if l.ch == '*' && l.peekChar() == '/' {
			l.advance(2)
			closed = true
			break
		}
		l.readChar()
	}
	if !closed {
		l.fail(startPos, errUnterminatedComment)
	}

	l.spaced = true
	l.pending = append(l.pending, &token.Comment{
		Kind: token.BlockComment,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// readString reads a string literal opened by quote.
// A doubled quote is an escaped quote. With backslash escapes, \n, \t,
// \r and \0 are control characters and any other escaped character
// stands for itself, except \% and \_ which stay escaped for LIKE.
func (l *Lexer) readString(quote byte, backslash bool) (string, bool) {
	l.readChar() // skip opening quote

	var result strings.Builder
	for !l.atEOF() {
		switch {
		case l.ch == quote && l.peekChar() == quote:
			result.WriteByte(quote)
			l.advance(2)
		case l.ch == quote:
			l.readChar()
			return result.String(), true
		case backslash && l.ch == '\\' && l.readPos < len(l.input):
			l.readChar()
			result.WriteString(unescape(l.ch))
			l.readChar()
		default:
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
	return result.String(), false
}

func unescape(ch byte) string {
	switch ch {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '0':
		return "\x00"
	case '%', '_':
		return `\` + string(ch)
	default:
		return string(ch)
	}
}

// readQuotedIdentifier reads an identifier in the dialect's quote characters.
// Handles the doubled closing quote (and backslash for BigQuery) as escape.
func (l *Lexer) readQuotedIdentifier(pos token.Position) token.Token {
	quoteEnd := l.dialect.Identifiers.QuoteEnd[0]
	backslash := strings.HasPrefix(l.dialect.Identifiers.Escape, `\`)
	l.readChar() // skip opening quote

	var result strings.Builder
	for !l.atEOF() {
		switch {
		case l.ch == quoteEnd && l.peekChar() == quoteEnd:
			result.WriteByte(quoteEnd)
			l.advance(2)
		case l.ch == quoteEnd:
			l.readChar()
			return token.Token{Type: token.IDENT, Literal: result.String(), Quoted: true}
		case backslash && l.ch == '\\' && l.readPos < len(l.input):
			l.readChar()
			result.WriteByte(l.ch)
			l.readChar()
		default:
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
	l.fail(pos, errUnterminatedIdentifier)
	return token.Token{Type: token.IDENT, Literal: result.String(), Quoted: true}
}

// readWord reads a keyword or bare identifier, including prefixed
// strings such as E'...' and N'...'.
func (l *Lexer) readWord(pos token.Position) token.Token {
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.pos]

	if len(word) == 1 && l.ch == '\'' {
		switch word[0] {
		case 'E', 'e':
			value, ok := l.readString('\'', true)
			if !ok {
				l.fail(pos, errUnterminatedString)
			}
			return token.Token{Type: token.STRING, Literal: value}
		case 'N', 'n':
			value, ok := l.readString('\'', l.dialect.Strings.BackslashEscapes)
			if !ok {
				l.fail(pos, errUnterminatedString)
			}
			return token.Token{Type: token.STRING, Literal: value}
		case 'X', 'x', 'B', 'b':
			if _, ok := l.readString('\'', false); !ok {
				l.fail(pos, errUnterminatedString)
			}
			return token.Token{Type: token.NUMBER, Literal: l.input[start:l.pos]}
		}
	}

	return token.Token{Type: token.LookupIdent(strings.ToLower(word)), Literal: word}
}

// readNumber reads a numeric literal (integer, decimal, or scientific),
// keeping type suffixes such as Spark's 1L or 2.5BD.
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) || l.ch == '.' && l.pos == start {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peekChar()) ||
		(l.peekChar() == '+' || l.peekChar() == '-') && isDigit(l.peekAt(1))) {
		l.advance(2)
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	for isIdentPart(l.ch) {
		l.readChar()
	}

	return l.input[start:l.pos]
}

// readNamedParam reads @name or @@name.
func (l *Lexer) readNamedParam() (token.Token, bool) {
	n := 1
	if l.peekChar() == '@' {
		n = 2
	}
	if !isIdentStart(l.peekAt(n - 1)) {
		return token.Token{}, false
	}
	start := l.pos
	l.advance(n)
	for isIdentPart(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.PARAM, Literal: l.input[start:l.pos]}, true
}

// readDollar reads $1 parameters, ${var} placeholders and, where the
// dialect allows them, $tag$...$tag$ strings.
func (l *Lexer) readDollar(pos token.Position) (token.Token, bool) {
	start := l.pos
	next := l.peekChar()

	switch {
	case isDigit(next):
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		return token.Token{Type: token.PARAM, Literal: l.input[start:l.pos]}, true
	case next == '{':
		l.readChar()
		tok := l.readTemplate(pos)
		tok.Literal = l.input[start:l.pos]
		return tok, true
	case !l.dialect.DollarQuotes:
		return token.Token{}, false
	}

	// $tag$ opener: tag is empty or an identifier
	end := l.readPos
	for end < len(l.input) && isIdentPart(l.input[end]) && l.input[end] != '$' {
		end++
	}
	if end >= len(l.input) || l.input[end] != '$' {
		return token.Token{}, false
	}
	tag := l.input[start : end+1]
	bodyStart := end + 1
	closeAt := strings.Index(l.input[bodyStart:], tag)
	if closeAt < 0 {
		l.fail(pos, errUnterminatedString)
		l.advance(len(l.input) - l.pos)
		return token.Token{Type: token.STRING, Literal: l.input[bodyStart:]}, true
	}
	body := l.input[bodyStart : bodyStart+closeAt]
	l.advance(bodyStart + closeAt + len(tag) - l.pos)
	return token.Token{Type: token.STRING, Literal: body}, true
}

// readTemplate scans a {name}, {{ ... }}, {% ... %} or {# ... #}
// placeholder and returns it verbatim. Nested braces are balanced and
// quoted strings inside are skipped.
func (l *Lexer) readTemplate(pos token.Position) token.Token {
	start := l.pos

	closer := ""
	switch l.peekChar() {
	case '%':
		closer = "%}"
	case '#':
		closer = "#}"
	}
	if closer != "" {
		l.advance(2)
		for !l.atEOF() {
			if l.ch == closer[0] && l.peekChar() == '}' {
				l.advance(2)
				return token.Token{Type: token.TEMPLATE, Literal: l.input[start:l.pos]}
			}
			l.readChar()
		}
		l.fail(pos, errUnterminatedTemplate)
		return token.Token{Type: token.TEMPLATE, Literal: l.input[start:l.pos]}
	}

	depth := 0
	for !l.atEOF() {
		switch l.ch {
		case '\'', '"':
			l.skipQuoted(l.ch)
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				l.readChar()
				return token.Token{Type: token.TEMPLATE, Literal: l.input[start:l.pos]}
			}
		}
		l.readChar()
	}
	l.fail(pos, errUnterminatedTemplate)
	return token.Token{Type: token.TEMPLATE, Literal: l.input[start:l.pos]}
}

// skipQuoted skips a quoted string inside a template placeholder.
func (l *Lexer) skipQuoted(quote byte) {
	l.readChar() // skip opening quote
	for !l.atEOF() && l.ch != quote {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	l.readChar() // skip closing quote
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isIdentStart accepts ASCII letters, underscore and any UTF-8 lead or
// continuation byte, so non-ASCII identifiers pass through intact.
func isIdentStart(ch byte) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= 0x80
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '$'
}

// Tokenize returns all tokens of input up to and including EOF.
func Tokenize(input string, d *dialect.Dialect) ([]token.Token, error) {
	l := NewLexer(input, d)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens, l.Err()
}
