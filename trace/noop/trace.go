// The noop package provides a tracer that does nothing.
package noop

import (
	"context"

	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/trace/tracer"
	"github.com/microgql/graphql-go/value"
)

var _ tracer.Tracer = Tracer{}

// Tracer is a no-op tracer. It is the default when none is configured.
type Tracer struct{}

func (Tracer) TraceQuery(ctx context.Context, queryString, operationName string, variables value.Value) (context.Context, tracer.QueryFinishFunc) {
	return ctx, func([]*errors.QueryError) {}
}

func (Tracer) TraceField(ctx context.Context, label, typeName, fieldName string, args value.Value) (context.Context, tracer.FieldFinishFunc) {
	return ctx, func(*errors.QueryError) {}
}
