package etrace

import (
	stderr "errors"
	"fmt"
	"io"
)

var Is = stderr.Is
var As = stderr.As
var Join = stderr.Join

// Error is a typed error value. K is the caller-defined kind tag that
// classifies the failure; the description is free text for humans; the
// location records where the value was created or rethrown. An Error
// optionally wraps an erased cause.
//
// Error values are immutable once constructed. Deriving a new error from an
// existing one shares the cause chain by pointer instead of copying it.
type Error[K any] struct {
	kind        K
	description string
	loc         Location
	cause       *WrappedError
}

// New returns an error of the given kind with no cause. The description is
// derived from the printed form of kind, verbatim.
func New[K any](kind K, loc Location) *Error[K] {
	return &Error[K]{kind: kind, description: kindText(kind), loc: loc}
}

// Newf returns an error of the given kind with no cause and a description
// built from format and args.
func Newf[K any](kind K, loc Location, format string, args ...any) *Error[K] {
	return &Error[K]{kind: kind, description: fmt.Sprintf(format, args...), loc: loc}
}

// Kind returns the kind tag the error was created with.
func (e *Error[K]) Kind() K {
	return e.kind
}

// Description returns the human-readable description.
func (e *Error[K]) Description() string {
	return e.description
}

// Location returns where the error was created or rethrown.
func (e *Error[K]) Location() Location {
	return e.loc
}

// Cause returns the erased error this error wraps, or nil.
func (e *Error[K]) Cause() *WrappedError {
	return e.cause
}

// Wrapped converts the error to its erased form. The kind is flattened to
// its printed text; description, location and cause carry over unchanged,
// with the cause shared rather than copied. Erasure is one-way: the typed
// kind cannot be recovered from the result.
func (e *Error[K]) Wrapped() *WrappedError {
	return &WrappedError{
		kind:        kindText(e.kind),
		description: e.description,
		loc:         e.loc,
		cause:       e.cause,
	}
}

// Error implements the error interface.
// It renders the error and its full cause chain, one line per level.
func (e *Error[K]) Error() string {
	return renderChain(kindText(e.kind), e.description, e.loc, e.cause)
}

// Unwrap returns the erased cause so that errors.Is and errors.As can
// traverse the chain. It returns nil when the error wraps nothing.
func (e *Error[K]) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

// Format implements the fmt.Formatter interface.
func (e *Error[K]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	default:
		_, _ = io.WriteString(f, e.Error())
	}
}

var _ error = (*Error[int])(nil)
var _ fmt.Formatter = (*Error[int])(nil)
var _ Wrapper = (*Error[int])(nil)
