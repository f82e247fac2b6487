package etrace

// IsKind reports whether a typed error carrying the given kind is found in
// err's chain. Matching traverses Unwrap chains, so typed errors wrapped by
// fmt.Errorf with %w or combined with errors.Join are still found. What a
// kind means stays entirely the caller's business; this only compares
// values.
//
// Erasure is lossy: once an error has been flattened to a WrappedError its
// typed form is gone, and IsKind no longer matches it. Match before
// erasing, or compare WrappedError.Kind text instead.
func IsKind[K comparable](err error, kind K) bool {
	var typed *Error[K]
	return As(err, &typed) && typed.kind == kind
}

// KindOf returns the kind of the first typed error with kind type K in
// err's chain. The second return reports whether one was found.
func KindOf[K any](err error) (K, bool) {
	var typed *Error[K]
	if As(err, &typed) {
		return typed.kind, true
	}
	var zero K
	return zero, false
}
