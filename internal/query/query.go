// Package query implements the recursive-descent parser that turns query
// text into an ast.ParsedQuery.
package query

import (
	"github.com/microgql/graphql-go/ast"
	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/value"
)

// Parse parses a single query or mutation document. On failure it returns a
// QueryError whose message and Offset locate the offending byte.
func Parse(queryString string) (*ast.ParsedQuery, *errors.QueryError) {
	l := newLexer(queryString)

	var doc *ast.ParsedQuery
	err := l.catchSyntaxError(func() { doc = parseDocument(l) })
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func parseDocument(l *lexer) *ast.ParsedQuery {
	doc := &ast.ParsedQuery{}
	l.skipWhitespace()

	if l.peek() == '{' {
		// No operation keyword: an implicit query.
		doc.Op = ast.Query
	} else {
		switch keyword := l.consumeIdent(); keyword {
		case "query":
			doc.Op = ast.Query
		case "mutation":
			doc.Op = ast.Mutation
		default:
			l.syntaxError("expected 'query' or 'mutation', got %q", keyword)
		}

		l.skipWhitespace()
		if l.peek() != '{' && l.peek() != '(' {
			doc.Name = l.consumeIdent()
			l.skipWhitespace()
		}

		// Variable definitions are scanned only to find the matching
		// paren; their contents are never type-checked. Variables bind
		// by name at execution time.
		if l.peek() == '(' {
			l.skipBalanced('(', ')')
			l.skipWhitespace()
		}
	}

	doc.Selections = parseSelectionSet(l)
	return doc
}

// parseSelectionSet parses '{' Field* '}'. An explicitly empty set is
// accepted and yields a zero-length selection list.
func parseSelectionSet(l *lexer) []*ast.FieldSelection {
	l.expect('{')
	var sels []*ast.FieldSelection
	l.skipWhitespace()
	for l.peek() != '}' && l.peek() != 0 {
		sels = append(sels, parseField(l))
		l.skipWhitespace()
	}
	l.expect('}')
	return sels
}

func parseField(l *lexer) *ast.FieldSelection {
	f := &ast.FieldSelection{}

	name := l.consumeIdent()
	l.skipWhitespace()
	if l.peek() == ':' {
		l.pos++
		f.Alias = name
		f.Name = l.consumeIdent()
		l.skipWhitespace()
	} else {
		f.Name = name
	}

	if l.peek() == '(' {
		f.Arguments = parseArguments(l)
	} else {
		f.Arguments = value.Object()
	}

	l.skipWhitespace()
	if l.peek() == '{' {
		f.Selections = parseSelectionSet(l)
	}

	return f
}

func parseArguments(l *lexer) value.Value {
	l.expect('(')
	var fields []value.ObjectField
	l.skipWhitespace()
	for l.peek() != ')' && l.peek() != 0 {
		name := l.consumeIdent()
		l.expect(':')
		fields = append(fields, value.ObjectField{Name: name, Value: parseValue(l)})
		l.skipWhitespace()
	}
	l.expect(')')
	return value.Object(fields...)
}

func parseValue(l *lexer) value.Value {
	l.skipWhitespace()
	switch c := l.peek(); {
	case c == '"':
		return value.String(l.scanString())
	case c == '-' || isDigit(c):
		return l.scanNumber()
	case c == '{':
		return parseObjectValue(l)
	case c == '[':
		return parseArrayValue(l)
	default:
		switch word := l.consumeIdent(); word {
		case "true":
			return value.Bool(true)
		case "false":
			return value.Bool(false)
		case "null":
			return value.Null()
		default:
			// Bare words double as enum-style string arguments.
			return value.String(word)
		}
	}
}

func parseObjectValue(l *lexer) value.Value {
	l.expect('{')
	var fields []value.ObjectField
	l.skipWhitespace()
	for l.peek() != '}' && l.peek() != 0 {
		name := l.consumeIdent()
		l.expect(':')
		fields = append(fields, value.ObjectField{Name: name, Value: parseValue(l)})
		l.skipWhitespace()
	}
	l.expect('}')
	return value.Object(fields...)
}

func parseArrayValue(l *lexer) value.Value {
	l.expect('[')
	var elems []value.Value
	l.skipWhitespace()
	for l.peek() != ']' && l.peek() != 0 {
		elems = append(elems, parseValue(l))
		l.skipWhitespace()
	}
	l.expect(']')
	return value.Array(elems...)
}
