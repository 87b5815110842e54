package token

import "strings"

// CommentKind distinguishes line vs block comments.
type CommentKind int

// Comment kinds.
const (
	LineComment  CommentKind = iota // -- comment
	BlockComment                    // /* comment */
	HashComment                     // # comment (MySQL, BigQuery, Hive)
)

// Comment represents a SQL comment with position.
type Comment struct {
	Kind CommentKind
	Text string // includes delimiters (--, # or /* */)
	Span Span
}

// IsLineComment returns true if the comment runs to the end of the line.
func (c *Comment) IsLineComment() bool {
	return c.Kind == LineComment || c.Kind == HashComment
}

// IsBlockComment returns true if this is a block comment.
func (c *Comment) IsBlockComment() bool {
	return c.Kind == BlockComment
}

// Body returns the comment text without its delimiters, trimmed.
func (c *Comment) Body() string {
	switch c.Kind {
	case LineComment:
		return strings.TrimSpace(strings.TrimPrefix(c.Text, "--"))
	case HashComment:
		return strings.TrimSpace(strings.TrimPrefix(c.Text, "#"))
	default:
		body := strings.TrimPrefix(c.Text, "/*")
		body = strings.TrimSuffix(body, "*/")
		return strings.TrimSpace(body)
	}
}
