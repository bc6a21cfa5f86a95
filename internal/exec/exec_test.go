package exec

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microgql/graphql-go/internal/query"
	"github.com/microgql/graphql-go/log"
	"github.com/microgql/graphql-go/resolvers"
	"github.com/microgql/graphql-go/trace/noop"
	"github.com/microgql/graphql-go/value"
)

func newExecution(queries, mutations map[string]resolvers.Func) *Execution {
	return &Execution{
		Queries:   queries,
		Mutations: mutations,
		Logger:    &log.DefaultLogger{},
		Tracer:    noop.Tracer{},
	}
}

func TestFieldsResolveInSourceOrder(t *testing.T) {
	var calls []string
	e := newExecution(map[string]resolvers.Func{
		"a": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			calls = append(calls, "a")
			return value.Int(1), nil
		},
		"b": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			calls = append(calls, "b")
			return value.Int(2), nil
		},
	}, nil)

	doc, qErr := query.Parse(`{ b a }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"b", "a"}, calls)
	assert.Equal(t, `{"b":2,"a":1}`, data.String())
}

func TestMutationRegistryIsIndependent(t *testing.T) {
	e := newExecution(
		map[string]resolvers.Func{
			"thing": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
				return value.String("from query"), nil
			},
		},
		map[string]resolvers.Func{
			"thing": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
				return value.String("from mutation"), nil
			},
		},
	)

	doc, qErr := query.Parse(`mutation { thing }`)
	require.Nil(t, qErr)
	data, errs := e.Execute(context.Background(), doc)
	assert.Empty(t, errs)
	assert.Equal(t, `{"thing":"from mutation"}`, data.String())
}

func TestUnknownFieldOmitsDataKey(t *testing.T) {
	e := newExecution(map[string]resolvers.Func{
		"known": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			return value.Bool(true), nil
		},
	}, nil)

	doc, qErr := query.Parse(`{ nope known }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "Cannot query field 'nope' on type 'query'", errs[0].Message)
	assert.Equal(t, []string{"nope"}, errs[0].Path)
	// The unknown field has no data key at all, not a null one.
	assert.False(t, data.Has("nope"))
	assert.Equal(t, `{"known":true}`, data.String())
}

func TestResolverErrorSetsNullAndKeepsSiblings(t *testing.T) {
	boom := fmt.Errorf("boom")
	e := newExecution(map[string]resolvers.Func{
		"failing": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			return value.Value{}, boom
		},
		"ok": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			return value.String("fine"), nil
		},
	}, nil)

	doc, qErr := query.Parse(`{ failing ok }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "boom", errs[0].Message)
	assert.Equal(t, []string{"failing"}, errs[0].Path)
	assert.Same(t, boom, errs[0].ResolverError)
	assert.Equal(t, `{"failing":null,"ok":"fine"}`, data.String())
}

func TestResolverErrorUsesAliasForDataKey(t *testing.T) {
	e := newExecution(map[string]resolvers.Func{
		"failing": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			return value.Value{}, fmt.Errorf("boom")
		},
	}, nil)

	doc, qErr := query.Parse(`{ renamed: failing }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	require.Len(t, errs, 1)
	// The error path uses the field name, the data key its alias.
	assert.Equal(t, []string{"failing"}, errs[0].Path)
	assert.Equal(t, `{"renamed":null}`, data.String())
}

func TestPanickingResolverIsIsolated(t *testing.T) {
	var logged []interface{}
	logger := log.LoggerFunc(func(ctx context.Context, v interface{}) {
		logged = append(logged, v)
	})

	e := newExecution(map[string]resolvers.Func{
		"panicky": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			panic("kaboom")
		},
		"ok": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			return value.Int(7), nil
		},
	}, nil)
	e.Logger = logger

	doc, qErr := query.Parse(`{ panicky ok }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "graphql: panic occurred: kaboom", errs[0].Message)
	assert.Equal(t, []string{"panicky"}, errs[0].Path)
	assert.Equal(t, []interface{}{"kaboom"}, logged)
	assert.Equal(t, `{"panicky":null,"ok":7}`, data.String())
}

func TestArgumentMerging(t *testing.T) {
	var seen value.Value
	e := newExecution(map[string]resolvers.Func{
		"user": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			seen = args
			return value.Null(), nil
		},
	}, nil)
	e.Vars = value.Object(
		value.ObjectField{Name: "id", Value: value.Int(99)},
		value.ObjectField{Name: "limit", Value: value.Int(10)},
		value.ObjectField{Name: "unused", Value: value.String("ignored")},
	)

	doc, qErr := query.Parse(`{ user(id: 42) }`)
	require.Nil(t, qErr)
	_, errs := e.Execute(context.Background(), doc)
	require.Empty(t, errs)

	// The literal id wins; limit and unused are merged in; unused is simply
	// passed along, there is no undeclared-variable detection.
	id, _ := seen.Get("id")
	assert.Equal(t, int64(42), id.Int())
	limit, _ := seen.Get("limit")
	assert.Equal(t, int64(10), limit.Int())
	assert.True(t, seen.Has("unused"))
}

func TestRequestContextIsThreaded(t *testing.T) {
	rctx := value.Object(value.ObjectField{Name: "userID", Value: value.Int(7)})

	var got []value.Value
	e := newExecution(map[string]resolvers.Func{
		"a": func(ctx context.Context, args, rc value.Value) (value.Value, error) {
			got = append(got, rc)
			return value.Null(), nil
		},
		"b": func(ctx context.Context, args, rc value.Value) (value.Value, error) {
			got = append(got, rc)
			return value.Null(), nil
		},
	}, nil)
	e.Request = rctx

	doc, qErr := query.Parse(`{ a b }`)
	require.Nil(t, qErr)
	_, errs := e.Execute(context.Background(), doc)
	require.Empty(t, errs)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(rctx))
	assert.True(t, got[1].Equal(rctx))
}

func TestDuplicateAliasLastWriteWins(t *testing.T) {
	calls := 0
	e := newExecution(map[string]resolvers.Func{
		"user": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			calls++
			id, _ := args.Get("id")
			return value.Int(id.Int()), nil
		},
	}, nil)

	doc, qErr := query.Parse(`{ u: user(id: 1) u: user(id: 2) }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	assert.Empty(t, errs)
	// Both resolvers ran; the later result replaced the earlier one.
	assert.Equal(t, 2, calls)
	assert.Equal(t, `{"u":2}`, data.String())
}

func TestSelectionOnNonObjectPassesThrough(t *testing.T) {
	e := newExecution(map[string]resolvers.Func{
		"version": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			return value.String("1.0"), nil
		},
	}, nil)

	doc, qErr := query.Parse(`{ version { major } }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	assert.Empty(t, errs)
	assert.Equal(t, `{"version":"1.0"}`, data.String())
}

func TestNestedSelectionIsProjected(t *testing.T) {
	e := newExecution(map[string]resolvers.Func{
		"user": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			return value.Object(
				value.ObjectField{Name: "name", Value: value.String("Ann")},
				value.ObjectField{Name: "id", Value: value.Int(1)},
				value.ObjectField{Name: "secret", Value: value.String("x")},
			), nil
		},
	}, nil)

	doc, qErr := query.Parse(`{ user { name id } }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	assert.Empty(t, errs)
	assert.Equal(t, `{"user":{"name":"Ann","id":1}}`, data.String())
}

func TestErrorsDoNotShortCircuitLaterDuplicates(t *testing.T) {
	// Both aliases of the same failing field execute and both report.
	calls := 0
	e := newExecution(map[string]resolvers.Func{
		"failing": func(ctx context.Context, args, rctx value.Value) (value.Value, error) {
			calls++
			return value.Value{}, fmt.Errorf("boom %d", calls)
		},
	}, nil)

	doc, qErr := query.Parse(`{ x: failing x: failing }`)
	require.Nil(t, qErr)

	data, errs := e.Execute(context.Background(), doc)
	assert.Equal(t, 2, calls)
	require.Len(t, errs, 2)
	assert.Equal(t, `{"x":null}`, data.String())
}
