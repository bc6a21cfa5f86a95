// Package exec drives the execution of a parsed query against the resolver
// registries.
package exec

import (
	"context"
	"fmt"

	"github.com/microgql/graphql-go/ast"
	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/log"
	"github.com/microgql/graphql-go/resolvers"
	"github.com/microgql/graphql-go/trace/tracer"
	"github.com/microgql/graphql-go/value"
)

// Execution holds everything needed to run one parsed query: the two
// registries, the request's variables and context Value, and the ambient
// logger and tracer. It is built per call and never outlives it.
type Execution struct {
	Queries   map[string]resolvers.Func
	Mutations map[string]resolvers.Func
	Vars      value.Value
	Request   value.Value // context Value handed unmodified to every resolver
	Logger    log.Logger
	Tracer    tracer.Tracer
}

// Execute resolves every top-level selection in source order and returns the
// accumulated data object along with any field-level errors. A failing field
// never aborts its siblings.
func (e *Execution) Execute(ctx context.Context, doc *ast.ParsedQuery) (value.Value, []*errors.QueryError) {
	registry := e.Queries
	if doc.Op == ast.Mutation {
		registry = e.Mutations
	}

	var data []value.ObjectField
	var errs []*errors.QueryError

	for _, field := range doc.Selections {
		fn, ok := registry[field.Name]
		if !ok {
			// Unknown fields get an error but no data key.
			errs = append(errs, &errors.QueryError{
				Message: fmt.Sprintf("Cannot query field '%s' on type '%s'", field.Name, doc.Op),
				Path:    []string{field.Name},
			})
			continue
		}

		result, qErr := e.resolveField(ctx, doc.Op, field, fn)
		if qErr != nil {
			errs = append(errs, qErr)
			result = value.Null()
		}
		data = append(data, value.ObjectField{Name: field.ResponseKey(), Value: result})
	}

	return value.Object(data...), errs
}

func (e *Execution) resolveField(ctx context.Context, op ast.OperationType, field *ast.FieldSelection, fn resolvers.Func) (result value.Value, qErr *errors.QueryError) {
	args := e.mergeArguments(field.Arguments)

	label := fmt.Sprintf("%s.%s", op, field.Name)
	traceCtx, finish := e.Tracer.TraceField(ctx, label, string(op), field.Name, args)
	defer func() { finish(qErr) }()

	defer func() {
		if err := recover(); err != nil {
			e.Logger.LogPanic(ctx, err)
			qErr = makePanicError(err)
			qErr.Path = []string{field.Name}
		}
	}()

	res, err := fn(traceCtx, args, e.Request)
	if err != nil {
		return value.Null(), &errors.QueryError{
			Message:       err.Error(),
			Path:          []string{field.Name},
			ResolverError: err,
		}
	}

	// A nested selection set only filters Object results. Anything else is
	// passed through unchanged.
	if len(field.Selections) > 0 && res.Kind() == value.KindObject {
		res = Project(res, field.Selections)
	}
	return res, nil
}

// mergeArguments combines the field's literal arguments with the request
// variables. Literal arguments always win over same-named variables.
func (e *Execution) mergeArguments(literal value.Value) value.Value {
	if e.Vars.Len() == 0 {
		return literal
	}
	fields := append([]value.ObjectField(nil), literal.Fields()...)
	for _, v := range e.Vars.Fields() {
		if !literal.Has(v.Name) {
			fields = append(fields, v)
		}
	}
	return value.Object(fields...)
}

func makePanicError(v interface{}) *errors.QueryError {
	return errors.Errorf("graphql: panic occurred: %v", v)
}
