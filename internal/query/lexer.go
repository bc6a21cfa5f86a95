package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/value"
)

type syntaxError struct {
	msg    string
	offset int
}

// lexer is a byte cursor over the query source. Scanning primitives report
// failures by panicking with a syntaxError, which catchSyntaxError converts
// back into a QueryError carrying the byte offset.
type lexer struct {
	src string
	pos int
}

func newLexer(s string) *lexer {
	return &lexer{src: s}
}

func (l *lexer) catchSyntaxError(f func()) (errRes *errors.QueryError) {
	defer func() {
		if err := recover(); err != nil {
			if err, ok := err.(syntaxError); ok {
				errRes = errors.Errorf("%s", err.msg)
				errRes.Offset = err.offset
				return
			}
			panic(err)
		}
	}()

	f()
	return
}

func (l *lexer) syntaxError(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	panic(syntaxError{msg: fmt.Sprintf("%s at offset %d", msg, l.pos), offset: l.pos})
}

// peek returns the byte at the cursor, or 0 at end of input.
func (l *lexer) peek() byte {
	if l.pos < len(l.src) {
		return l.src[l.pos]
	}
	return 0
}

func (l *lexer) advance() byte {
	if l.pos < len(l.src) {
		c := l.src[l.pos]
		l.pos++
		return c
	}
	return 0
}

// skipWhitespace consumes whitespace and commas. Commas separate tokens for
// legibility but are otherwise insignificant, as in GraphQL proper.
func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r', ',':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) expect(c byte) {
	l.skipWhitespace()
	if l.peek() != c {
		l.syntaxError("expected %q", string(c))
	}
	l.pos++
}

// skipBalanced consumes a balanced group, nested groups included. The
// content is discarded; this is how variable definitions are skipped
// without being type-checked.
func (l *lexer) skipBalanced(open, close byte) {
	l.expect(open)
	depth := 1
	for depth > 0 && l.pos < len(l.src) {
		switch l.advance() {
		case open:
			depth++
		case close:
			depth--
		}
	}
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// consumeIdent scans an identifier: a letter or underscore followed by
// letters, digits and underscores.
func (l *lexer) consumeIdent() string {
	l.skipWhitespace()
	if !isIdentStart(l.peek()) {
		l.syntaxError("expected identifier")
	}
	start := l.pos
	l.pos++
	for isIdentChar(l.peek()) {
		l.pos++
	}
	return l.src[start:l.pos]
}

// scanString scans a double-quoted string. \n, \t, \" and \\ are decoded;
// any other escaped byte passes through unchanged.
func (l *lexer) scanString() string {
	l.expect('"')
	var sb strings.Builder
	for l.peek() != '"' && l.peek() != 0 {
		c := l.advance()
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		esc := l.advance()
		switch esc {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 0:
			// backslash at end of input; the unterminated string is
			// reported below
		default:
			sb.WriteByte(esc)
		}
	}
	l.expect('"')
	return sb.String()
}

// scanNumber scans an optional minus sign, digits and at most one fraction
// part. A fraction marks the value Float, otherwise it is Int. There is no
// exponent syntax.
func (l *lexer) scanNumber() value.Value {
	l.skipWhitespace()
	start := l.pos
	if l.peek() == '-' {
		l.pos++
	}
	for isDigit(l.peek()) {
		l.pos++
	}
	isFloat := false
	if l.peek() == '.' {
		isFloat = true
		l.pos++
		for isDigit(l.peek()) {
			l.pos++
		}
	}
	text := l.src[start:l.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.syntaxError("malformed number %q", text)
		}
		return value.Float(f)
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.syntaxError("malformed number %q", text)
	}
	return value.Int(i)
}
