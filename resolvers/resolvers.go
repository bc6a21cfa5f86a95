// Package resolvers defines the resolver function type shared by the public
// schema API and the internal executor.
package resolvers

import (
	"context"

	"github.com/microgql/graphql-go/value"
)

// Func resolves one top-level field. It receives the merged arguments
// (literal arguments from the query, filled in with same-named variables)
// and the per-request context Value passed to Exec, and returns the field's
// result. A returned error is reported as a field-level error in the
// response; it does not abort sibling fields.
//
// The engine imposes no serialization: a Func must be safe to call
// concurrently with itself and with other resolvers when the caller runs
// executions in parallel.
type Func func(ctx context.Context, args, rctx value.Value) (value.Value, error)
