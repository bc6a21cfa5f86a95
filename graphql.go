package graphql

import (
	"context"

	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/internal/exec"
	"github.com/microgql/graphql-go/internal/query"
	"github.com/microgql/graphql-go/log"
	"github.com/microgql/graphql-go/resolvers"
	"github.com/microgql/graphql-go/trace/noop"
	"github.com/microgql/graphql-go/trace/tracer"
	"github.com/microgql/graphql-go/value"
)

// Resolver resolves one top-level field. See resolvers.Func.
type Resolver = resolvers.Func

// Schema holds two independent resolver registries, one for queries and one
// for mutations. Populate it with Query and Mutation, then call Exec once
// per incoming request. Registration must finish before Exec is called from
// multiple goroutines: the registries carry no internal locking and are
// treated as read-only while serving.
type Schema struct {
	queries   map[string]resolvers.Func
	mutations map[string]resolvers.Func

	logger log.Logger
	tracer tracer.Tracer
}

// NewSchema returns an empty schema.
func NewSchema(opts ...SchemaOpt) *Schema {
	s := &Schema{
		queries:   make(map[string]resolvers.Func),
		mutations: make(map[string]resolvers.Func),
		logger:    &log.DefaultLogger{},
		tracer:    noop.Tracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SchemaOpt is an option to pass to NewSchema.
type SchemaOpt func(*Schema)

// Logger is used to log panics during query execution. It defaults to
// log.DefaultLogger.
func Logger(logger log.Logger) SchemaOpt {
	return func(s *Schema) {
		s.logger = logger
	}
}

// Tracer is used to trace queries and fields. It defaults to a no-op
// tracer.
func Tracer(t tracer.Tracer) SchemaOpt {
	return func(s *Schema) {
		s.tracer = t
	}
}

// Query registers the resolver for a top-level query field. Registering the
// same name again replaces the previous resolver.
func (s *Schema) Query(name string, fn Resolver) {
	s.queries[name] = fn
}

// Mutation registers the resolver for a top-level mutation field.
func (s *Schema) Mutation(name string, fn Resolver) {
	s.mutations[name] = fn
}

// Response is the result of executing one query. Data is always present in
// the serialized envelope and is null only when the query text failed to
// parse; Errors is omitted when empty. The envelope is transport-agnostic:
// the engine never chooses a status code, and field-level errors next to a
// normally-shaped data object are the expected partial-failure outcome.
type Response struct {
	Data   value.Value          `json:"data"`
	Errors []*errors.QueryError `json:"errors,omitempty"`
}

// Exec parses and executes the given query. variables is a flat Object
// whose entries fill argument positions left unspecified literally in the
// query; requestContext is threaded unmodified into every resolver call.
// Either may be the zero (null) Value.
//
// A malformed query aborts the whole execution before any resolver runs.
// Any failure after that is isolated to its top-level field.
func (s *Schema) Exec(ctx context.Context, queryString string, variables, requestContext value.Value) *Response {
	doc, qErr := query.Parse(queryString)
	if qErr != nil {
		return &Response{
			Data:   value.Null(),
			Errors: []*errors.QueryError{errors.Errorf("Parse error: %s", qErr.Message)},
		}
	}

	traceCtx, finish := s.tracer.TraceQuery(ctx, queryString, doc.Name, variables)

	e := exec.Execution{
		Queries:   s.queries,
		Mutations: s.mutations,
		Vars:      variables,
		Request:   requestContext,
		Logger:    s.logger,
		Tracer:    s.tracer,
	}
	data, errs := e.Execute(traceCtx, doc)
	finish(errs)

	return &Response{Data: data, Errors: errs}
}
