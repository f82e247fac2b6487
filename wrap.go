package etrace

import "fmt"

// Wrap returns a new error of the given kind whose cause is err, converted
// with AsWrapped. The description is derived from the printed form of kind.
// Wrapping a nil err yields an error with no cause.
//
// Use Wrap when a failure crosses an abstraction boundary and should be
// reclassified; use Rethrow to annotate the path of a failure without
// changing what it is.
func Wrap[K any](kind K, loc Location, err error) *Error[K] {
	return &Error[K]{
		kind:        kind,
		description: kindText(kind),
		loc:         loc,
		cause:       AsWrapped(err),
	}
}

// Wrapf is Wrap with a description built from format and args.
func Wrapf[K any](kind K, loc Location, err error, format string, args ...any) *Error[K] {
	return &Error[K]{
		kind:        kind,
		description: fmt.Sprintf(format, args...),
		loc:         loc,
		cause:       AsWrapped(err),
	}
}

// Rethrow returns a new error that keeps prev's kind and description and
// wraps prev, erased, as its cause. Only the location is new, so a failure
// can be traced through the call stack without reclassifying it at every
// hop. The erased prev shares its cause chain with the original.
func Rethrow[K any](prev *Error[K], loc Location) *Error[K] {
	return &Error[K]{
		kind:        prev.kind,
		description: prev.description,
		loc:         loc,
		cause:       prev.Wrapped(),
	}
}
