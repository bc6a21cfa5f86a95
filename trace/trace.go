// The trace package re-exports the tracer implementations for convenience.
package trace

import (
	"github.com/microgql/graphql-go/trace/noop"
	"github.com/microgql/graphql-go/trace/opentracing"
	"github.com/microgql/graphql-go/trace/tracer"
)

type Tracer = tracer.Tracer

type OpenTracingTracer = opentracing.Tracer

type NoopTracer = noop.Tracer
