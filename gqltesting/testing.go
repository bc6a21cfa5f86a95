// Package gqltesting runs table-driven tests against a schema, comparing
// the serialized data against an expected JSON document and the errors
// structurally.
package gqltesting

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/nsf/jsondiff"

	graphql "github.com/microgql/graphql-go"
	"github.com/microgql/graphql-go/errors"
	"github.com/microgql/graphql-go/value"
)

// Test is a GraphQL test case to be used with RunTest(s).
type Test struct {
	Context        context.Context
	Schema         *graphql.Schema
	Query          string
	Variables      value.Value
	RequestContext value.Value
	ExpectedResult string
	ExpectedErrors []*errors.QueryError
}

// RunTests runs the given GraphQL test cases as subtests.
func RunTests(t *testing.T, tests []*Test) {
	t.Helper()
	if len(tests) == 1 {
		RunTest(t, tests[0])
		return
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i+1), func(t *testing.T) {
			t.Helper()
			RunTest(t, test)
		})
	}
}

// RunTest runs a single GraphQL test case.
func RunTest(t *testing.T, test *Test) {
	t.Helper()
	if test.Context == nil {
		test.Context = context.Background()
	}
	result := test.Schema.Exec(test.Context, test.Query, test.Variables, test.RequestContext)

	checkErrors(t, test.ExpectedErrors, result.Errors)

	data, err := result.Data.MarshalJSON()
	if err != nil {
		t.Fatalf("could not serialize data: %s", err)
	}

	if test.ExpectedResult == "" {
		if !result.Data.IsNull() {
			t.Fatalf("got: %s, want: null", data)
		}
		return
	}

	opts := jsondiff.Options{
		Added:   jsondiff.Tag{Begin: "+++", End: "+++"},
		Removed: jsondiff.Tag{Begin: "---", End: "---"},
		Changed: jsondiff.Tag{Begin: "|||", End: "|||"},
		Indent:  "    ",
	}
	diff, output := jsondiff.Compare([]byte(test.ExpectedResult), data, &opts)
	if diff != jsondiff.FullMatch {
		t.Log("Did not get expected result:\n", output)
		t.Log("Got:", string(data))
		t.Fail()
	}
}

func checkErrors(t *testing.T, want, got []*errors.QueryError) {
	t.Helper()
	sortErrors(want)
	sortErrors(got)

	// Resolver errors are not serialized and are not part of the
	// comparison.
	got = stripResolverErrors(got)

	if !reflect.DeepEqual(got, want) {
		t.Log("unexpected errors:")
		t.Log("  Got: \n", formatErrors(got))
		t.Log("  Want: \n", formatErrors(want))
		t.Fatal()
	}
}

func stripResolverErrors(errs []*errors.QueryError) []*errors.QueryError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*errors.QueryError, len(errs))
	for i, err := range errs {
		if err == nil {
			continue
		}
		stripped := *err
		stripped.ResolverError = nil
		stripped.Offset = 0
		out[i] = &stripped
	}
	return out
}

func sortErrors(errs []*errors.QueryError) {
	if len(errs) <= 1 {
		return
	}
	sort.Slice(errs, func(i, j int) bool {
		return strings.Join(errs[i].Path, "/") < strings.Join(errs[j].Path, "/")
	})
}

func formatErrors(errs []*errors.QueryError) string {
	var errorStr string
	for _, err := range errs {
		if err == nil {
			errorStr += "(nil)\n"
		} else {
			errorStr += fmt.Sprintf("%s\nPath: %v\n", err.Message, err.Path)
		}
	}
	return errorStr
}
