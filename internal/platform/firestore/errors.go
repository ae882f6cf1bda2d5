package firestore

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RepositoryError classifies persistence failures without leaking store internals.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// Error wraps a Firestore failure with classification flags used by the service layer.
type Error struct {
	op          string
	err         error
	notFound    bool
	conflict    bool
	unavailable bool
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.op == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// IsNotFound reports whether the document did not exist.
func (e *Error) IsNotFound() bool { return e != nil && e.notFound }

// IsConflict reports whether the mutation collided with existing state.
func (e *Error) IsConflict() bool { return e != nil && e.conflict }

// IsUnavailable reports whether the store was temporarily unreachable.
func (e *Error) IsUnavailable() bool { return e != nil && e.unavailable }

// WrapError classifies a raw Firestore error. Context cancellations pass through untouched.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	wrapped := &Error{op: op, err: err}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.NotFound:
			wrapped.notFound = true
		case codes.AlreadyExists, codes.Aborted, codes.FailedPrecondition:
			wrapped.conflict = true
		case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
			wrapped.unavailable = true
		}
	}
	return wrapped
}

// IsNotFound reports whether err carries a not-found classification.
func IsNotFound(err error) bool {
	var re RepositoryError
	return errors.As(err, &re) && re.IsNotFound()
}

// IsConflict reports whether err carries a conflict classification.
func IsConflict(err error) bool {
	var re RepositoryError
	return errors.As(err, &re) && re.IsConflict()
}

// IsUnavailable reports whether err carries an unavailable classification.
func IsUnavailable(err error) bool {
	var re RepositoryError
	return errors.As(err, &re) && re.IsUnavailable()
}
