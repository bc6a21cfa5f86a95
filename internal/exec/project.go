package exec

import (
	"github.com/microgql/graphql-go/ast"
	"github.com/microgql/graphql-go/value"
)

// Project filters a resolver's raw Object output down to the requested
// selections, renaming by alias and recursing through nested Objects and
// Arrays. Source keys that are not requested are dropped; requested keys
// missing from the source are silently omitted — unlike unknown top-level
// fields, which produce an error. The input is never modified.
func Project(src value.Value, sels []*ast.FieldSelection) value.Value {
	var fields []value.ObjectField
	for _, sel := range sels {
		sub, ok := src.Get(sel.Name)
		if !ok {
			continue
		}
		key := sel.ResponseKey()

		switch {
		case len(sel.Selections) > 0 && sub.Kind() == value.KindObject:
			fields = append(fields, value.ObjectField{Name: key, Value: Project(sub, sel.Selections)})

		case len(sel.Selections) > 0 && sub.Kind() == value.KindArray:
			// Element-wise: Object elements are filtered, everything else
			// passes through unchanged.
			elems := make([]value.Value, sub.Len())
			for i, e := range sub.Elems() {
				if e.Kind() == value.KindObject {
					elems[i] = Project(e, sel.Selections)
				} else {
					elems[i] = e
				}
			}
			fields = append(fields, value.ObjectField{Name: key, Value: value.Array(elems...)})

		default:
			fields = append(fields, value.ObjectField{Name: key, Value: sub})
		}
	}
	return value.Object(fields...)
}
