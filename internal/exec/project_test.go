package exec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/microgql/graphql-go/ast"
	"github.com/microgql/graphql-go/internal/query"
	"github.com/microgql/graphql-go/value"
)

// selectionsFor parses a query of the shape `{ f { ... } }` and returns the
// nested selections of its single top-level field.
func selectionsFor(t *testing.T, queryStr string) []*ast.FieldSelection {
	t.Helper()
	doc, err := query.Parse(queryStr)
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if len(doc.Selections) != 1 {
		t.Fatalf("want a single top-level field, got %d", len(doc.Selections))
	}
	return doc.Selections[0].Selections
}

func obj(fields ...value.ObjectField) value.Value { return value.Object(fields...) }

func f(name string, v value.Value) value.ObjectField {
	return value.ObjectField{Name: name, Value: v}
}

func TestProjectFiltersAndRenames(t *testing.T) {
	src := obj(
		f("name", value.String("Ann")),
		f("id", value.Int(1)),
		f("secret", value.String("x")),
	)

	got := Project(src, selectionsFor(t, `{ u { nick: name id } }`))
	want := obj(
		f("nick", value.String("Ann")),
		f("id", value.Int(1)),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected projection (-want +got):\n%s", diff)
	}
}

func TestProjectMissingKeysAreSilentlyOmitted(t *testing.T) {
	src := obj(f("present", value.Int(1)))

	got := Project(src, selectionsFor(t, `{ u { present absent } }`))
	want := obj(f("present", value.Int(1)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected projection (-want +got):\n%s", diff)
	}
}

func TestProjectRecursesIntoObjects(t *testing.T) {
	src := obj(
		f("profile", obj(
			f("bio", value.String("hi")),
			f("email", value.String("a@b")),
		)),
		f("id", value.Int(1)),
	)

	got := Project(src, selectionsFor(t, `{ u { profile { bio } } }`))
	want := obj(f("profile", obj(f("bio", value.String("hi")))))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected projection (-want +got):\n%s", diff)
	}
}

func TestProjectMapsOverArrays(t *testing.T) {
	src := obj(
		f("pets", value.Array(
			obj(f("name", value.String("Rex")), f("age", value.Int(3))),
			value.String("not an object"),
			obj(f("name", value.String("Mia")), f("age", value.Int(5))),
		)),
	)

	got := Project(src, selectionsFor(t, `{ u { pets { name } } }`))
	want := obj(
		f("pets", value.Array(
			obj(f("name", value.String("Rex"))),
			// non-Object elements pass through unchanged
			value.String("not an object"),
			obj(f("name", value.String("Mia"))),
		)),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected projection (-want +got):\n%s", diff)
	}
}

func TestProjectLeafSelectionCopiesVerbatim(t *testing.T) {
	inner := obj(f("deep", value.Int(1)))
	src := obj(f("config", inner))

	// config is requested as a leaf, so its whole value is copied.
	got := Project(src, selectionsFor(t, `{ u { config } }`))
	want := obj(f("config", inner))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected projection (-want +got):\n%s", diff)
	}
}

func TestProjectNeverMutatesItsInput(t *testing.T) {
	src := obj(
		f("a", obj(f("x", value.Int(1)), f("y", value.Int(2)))),
		f("b", value.Array(obj(f("x", value.Int(3))))),
	)
	snapshot := src.String()

	Project(src, selectionsFor(t, `{ u { a { x } b { x } } }`))

	if src.String() != snapshot {
		t.Errorf("projection mutated its input: %s != %s", src.String(), snapshot)
	}
}

func TestProjectAddsNoUnrequestedKeys(t *testing.T) {
	src := obj(f("a", value.Int(1)), f("b", value.Int(2)))

	got := Project(src, selectionsFor(t, `{ u { a } }`))
	if got.Len() != 1 || !got.Has("a") {
		t.Errorf("projection added keys beyond the requested ones: %s", got)
	}
}
