package opentracing

import (
	"context"
	"fmt"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/opentracing/opentracing-go/log"

	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/trace/tracer"
	"github.com/microgql/graphql-go/value"
)

var _ tracer.Tracer = Tracer{}

// Tracer implements the tracer.Tracer interface and creates OpenTracing
// spans for each execution and each top-level field.
type Tracer struct{}

func (Tracer) TraceQuery(ctx context.Context, queryString, operationName string, variables value.Value) (context.Context, tracer.QueryFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "GraphQL request")
	span.SetTag("graphql.query", queryString)

	if operationName != "" {
		span.SetTag("graphql.operationName", operationName)
	}

	if variables.Len() != 0 {
		span.LogFields(log.String("graphql.variables", variables.String()))
	}

	return spanCtx, func(errs []*errors.QueryError) {
		if len(errs) > 0 {
			msg := errs[0].Error()
			if len(errs) > 1 {
				msg += fmt.Sprintf(" (and %d more errors)", len(errs)-1)
			}
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", msg)
		}
		span.Finish()
	}
}

func (Tracer) TraceField(ctx context.Context, label, typeName, fieldName string, args value.Value) (context.Context, tracer.FieldFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, label)
	span.SetTag("graphql.type", typeName)
	span.SetTag("graphql.field", fieldName)
	for _, arg := range args.Fields() {
		span.SetTag("graphql.args."+arg.Name, arg.Value.String())
	}

	return spanCtx, func(err *errors.QueryError) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
		}
		span.Finish()
	}
}
