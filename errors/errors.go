package errors

import (
	"fmt"
)

// QueryError is the engine's error type. A parse failure produces a single
// QueryError with no Path; a field-level failure carries the path of the
// offending top-level field. Only Message and Path are serialized into the
// response envelope.
type QueryError struct {
	Message       string   `json:"message"`
	Path          []string `json:"path,omitempty"`
	Offset        int      `json:"-"`
	ResolverError error    `json:"-"`
}

func Errorf(format string, a ...interface{}) *QueryError {
	return &QueryError{
		Message: fmt.Sprintf(format, a...),
	}
}

func (err *QueryError) Error() string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("graphql: %s", err.Message)
}

// Unwrap exposes the resolver error behind a field-level failure, if any.
func (err *QueryError) Unwrap() error {
	return err.ResolverError
}

var _ error = &QueryError{}
