package pagination

import (
	"context"
	"errors"
)

var (
	// ErrQueryFailed means the backing collection could not answer.
	ErrQueryFailed = errors.New("query failed")
	// ErrCancelled means the caller's context was cancelled mid-query.
	ErrCancelled = errors.New("query cancelled")
)

// QueryError carries the failed operation and its cause.
// errors.Is matches both the kind (ErrQueryFailed/ErrCancelled) and the cause.
type QueryError struct {
	Op   string
	Kind error
	Err  error
}

func (e *QueryError) Error() string {
	return "pagination " + e.Op + ": " + e.Kind.Error() + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// classify maps a backend error onto an engine error kind. A deadline belongs
// to the collaborator's timeout and counts as a failed query.
func classify(ctx context.Context, op string, err error) error {
	kind := ErrQueryFailed
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		kind = ErrCancelled
	}
	return &QueryError{Op: op, Kind: kind, Err: err}
}
