package graphql

import (
	"context"

	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/value"
)

// Exec executes the given query. (*Schema).Exec has this shape.
type Exec func(ctx context.Context, queryString string, variables, requestContext value.Value) *Response

// Middleware can wrap Exec to add additional behaviour.
type Middleware func(next Exec) Exec

// ParseErrorsMiddleware rewrites the errors of a response before it is
// returned to the transport.
func ParseErrorsMiddleware(parseErrors func([]*errors.QueryError) []*errors.QueryError) Middleware {
	return func(next Exec) Exec {
		return func(ctx context.Context, queryString string, variables, requestContext value.Value) *Response {
			// perform the original query
			response := next(ctx, queryString, variables, requestContext)
			// mutate the errors
			response.Errors = parseErrors(response.Errors)
			// return the response
			return response
		}
	}
}

// InspectInputMiddleware can be used to inspect the provided input and return
// a custom response. If no response is returned, we simply continue by
// calling next().
func InspectInputMiddleware(inspectInput func(queryString string, variables value.Value) *Response) Middleware {
	return func(next Exec) Exec {
		return func(ctx context.Context, queryString string, variables, requestContext value.Value) *Response {
			if response := inspectInput(queryString, variables); response != nil {
				return response
			}

			return next(ctx, queryString, variables, requestContext)
		}
	}
}
