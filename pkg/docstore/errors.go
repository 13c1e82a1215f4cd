package docstore

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned by every operation when no document store
// connection is configured. It is expected and non-fatal: callers fall back
// to default data instead of failing the request.
var ErrUnavailable = errors.New("document store is not configured")

// ErrNotFound is returned by FindDocument when no record matches the filter.
var ErrNotFound = errors.New("document not found")

// OpError reports a failure of a store operation against a configured
// connection (network failure, malformed query). It wraps the driver error.
type OpError struct {
	Op         string
	Collection string
	Err        error
}

func (e *OpError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("docstore: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("docstore: %s %q: %v", e.Op, e.Collection, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
