package graphql

import (
	"github.com/microgql/graphql-go/ast"
	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/internal/query"
)

// ParseQuery parses a query string and returns the AST root node and
// any errors. It only serves to expose the internal query.Parse function.
func ParseQuery(queryString string) (*ast.ParsedQuery, *errors.QueryError) {
	return query.Parse(queryString)
}
