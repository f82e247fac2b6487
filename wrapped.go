package etrace

import (
	"fmt"
	"io"
)

// WrappedError is the erased form of an Error. The kind tag has been
// flattened to its printed text, which is what lets values wrapping
// different kind types form a single cause chain.
//
// Chains are built strictly bottom-up from completed values and never
// modified afterwards, so they are finite and cannot contain cycles.
// Sharing a chain between several errors is a pointer copy; the shared tail
// is safe to read from any goroutine.
type WrappedError struct {
	kind        string
	description string
	loc         Location
	cause       *WrappedError
}

// NewWrapped returns an erased error assembled from its parts. Conversion
// hooks and custom Wrapper implementations use it to translate foreign
// errors, including multi-level ones, into a chain.
func NewWrapped(kind, description string, loc Location, cause *WrappedError) *WrappedError {
	return &WrappedError{kind: kind, description: description, loc: loc, cause: cause}
}

// Kind returns the printed form of the original kind tag.
func (w *WrappedError) Kind() string {
	return w.kind
}

// Description returns the human-readable description.
func (w *WrappedError) Description() string {
	return w.description
}

// Location returns where the error was created or rethrown.
func (w *WrappedError) Location() Location {
	return w.loc
}

// Cause returns the next erased error in the chain, or nil.
func (w *WrappedError) Cause() *WrappedError {
	return w.cause
}

// Wrapped returns the receiver; an erased error is its own erased form.
func (w *WrappedError) Wrapped() *WrappedError {
	return w
}

// Error implements the error interface.
// It renders the error and its full cause chain, one line per level.
func (w *WrappedError) Error() string {
	return renderChain(w.kind, w.description, w.loc, w.cause)
}

// Unwrap returns the next erased error in the chain, or nil at the end.
func (w *WrappedError) Unwrap() error {
	if w.cause == nil {
		return nil
	}
	return w.cause
}

// Format implements the fmt.Formatter interface.
func (w *WrappedError) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", w.Error())
	default:
		_, _ = io.WriteString(f, w.Error())
	}
}

var _ error = (*WrappedError)(nil)
var _ fmt.Formatter = (*WrappedError)(nil)
var _ Wrapper = (*WrappedError)(nil)
