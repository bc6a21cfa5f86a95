// Package ast declares the abstract syntax tree produced by the query
// parser. The tree is plain data: once built it is never modified, neither
// by the parser nor by the executor.
package ast

import (
	"github.com/microgql/graphql-go/value"
)

// OperationType distinguishes queries from mutations. The string form is
// user-visible; it appears in unknown-field error messages.
type OperationType string

const (
	Query    OperationType = "query"
	Mutation OperationType = "mutation"
)

// ParsedQuery is the root of a parsed document.
type ParsedQuery struct {
	Op         OperationType
	Name       string // operation name, optional
	Selections []*FieldSelection
}

// FieldSelection is one requested field: its resolver name, an optional
// client-chosen alias, literal arguments, and the nested selection set.
// An empty Selections slice marks a leaf field.
type FieldSelection struct {
	Name       string
	Alias      string
	Arguments  value.Value // always an Object, possibly empty
	Selections []*FieldSelection
}

// ResponseKey returns the key under which the field's result appears in the
// response data: the alias when present, the field name otherwise.
func (f *FieldSelection) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}
