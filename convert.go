package etrace

import "fmt"

// Wrapper is the interface of error types that know how to convert
// themselves to an erased error. Error and WrappedError both implement it;
// foreign error types may implement it to control how they appear in a
// chain.
type Wrapper interface {
	Wrapped() *WrappedError
}

// ConvertHook translates a foreign error into its erased form. A hook that
// returns nil declines the error and the default conversion applies.
type ConvertHook func(err error) *WrappedError

// convertHook is consulted by AsWrapped for errors that do not implement
// Wrapper. Settable so an application can adapt its own error taxonomy
// without touching every wrap site.
var convertHook ConvertHook

// SetConvertHook registers hook as the conversion for foreign errors.
// Passing nil restores the default conversion. Hooks are meant to be
// installed once during program initialization.
func SetConvertHook(hook ConvertHook) {
	convertHook = hook
}

// AsWrapped converts an arbitrary error to an erased error so it can serve
// as a cause. nil converts to nil. Values that implement Wrapper convert
// through it, which reuses erased errors as they are and flattens typed
// ones. Every other error goes through the registered ConvertHook when one
// is set; if no hook is set or the hook declines, the default conversion
// applies: the kind text is the dynamic type of err, the description is
// err.Error(), the location is unknown and no cause is attached. The
// default deliberately does not walk err's own Unwrap chain; install a hook
// to translate multi-level foreign errors level by level.
func AsWrapped(err error) *WrappedError {
	if err == nil {
		return nil
	}
	if w, ok := err.(Wrapper); ok {
		return w.Wrapped()
	}
	if convertHook != nil {
		if w := convertHook(err); w != nil {
			return w
		}
	}
	return &WrappedError{kind: fmt.Sprintf("%T", err), description: err.Error()}
}
