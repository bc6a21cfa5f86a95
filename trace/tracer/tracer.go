// The tracer package provides tracing functionality.
package tracer

import (
	"context"

	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/value"
)

type QueryFinishFunc = func([]*errors.QueryError)
type FieldFinishFunc = func(*errors.QueryError)

// Tracer receives one TraceQuery call per execution and one TraceField call
// per top-level field. The returned finish functions are called when the
// corresponding unit of work completes, with the errors it produced.
type Tracer interface {
	TraceQuery(ctx context.Context, queryString string, operationName string, variables value.Value) (context.Context, QueryFinishFunc)
	TraceField(ctx context.Context, label, typeName, fieldName string, args value.Value) (context.Context, FieldFinishFunc)
}
