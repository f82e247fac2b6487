package etrace

import (
	"fmt"
	"io"
	"os"
)

var (
	// errPrefix is a prefix string prepended to messages written by CheckErr
	// and Exitf.
	errPrefix = "error"

	// errOutput is the writer used for error output, defaulting to os.Stderr.
	// SetErrOutput, CheckErr and Exitf use it.
	errOutput io.Writer = os.Stderr

	// exitHook is a function hook that gets called before the program exits
	// through Exit, Exitf or CheckErr.
	exitHook ExitHook = nil

	// osExit is the function used to terminate the process. Replaceable so
	// tests can observe exits without dying.
	osExit = os.Exit
)

// ExitHook defines the signature of a function that can be set as a hook to
// execute before program exit. msg is the rendered message and err the error
// that triggered the exit; both are zero for plain Exit calls.
type ExitHook func(code int, msg string, err error)

// SetErrPrefix allows changing the prefix string used in error messages.
// An empty prefix suppresses the prefix entirely.
func SetErrPrefix(prefix string) {
	errPrefix = prefix
}

// SetErrPrefixf allows setting the prefix string of CheckErr output with
// formatted arguments.
func SetErrPrefixf(s string, args ...any) {
	errPrefix = fmt.Sprintf(s, args...)
}

// SetErrOutput set error output writable.
func SetErrOutput(writer io.Writer) {
	errOutput = writer
}

// SetExitHook sets a custom hook function to be called before the program
// exits due to an error.
func SetExitHook(hook ExitHook) {
	exitHook = hook
}

// SetExit replaces the function used to terminate the process, which is
// useful in tests containing exit paths. Passing nil restores os.Exit.
func SetExit(exit func(code int)) {
	if exit == nil {
		exit = os.Exit
	}
	osExit = exit
}

// Exit calls the exit hook (if set) and terminates the program with the
// given code.
func Exit(code int) {
	if exitHook != nil {
		exitHook(code, "", nil)
	}
	osExit(code)
}

// Exitf prints a formatted error message to the error output, calls the exit
// hook (if set), and then exits the program with the given code.
func Exitf(code int, format string, args ...any) {
	if errPrefix != "" {
		format = errPrefix + ": " + format
	}
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprint(errOutput, msg)
	if exitHook != nil {
		exitHook(code, msg, nil)
	}
	osExit(code)
}

// CheckErr prints an error message with the set prefix to the error output
// and exits the program with code 1 if the provided error is not nil.
// Errors from this package render their full cause chain, one line per
// level. The exit policy itself stays with the calling application through
// the prefix, output, hook and exit knobs.
func CheckErr(err error) {
	if err == nil {
		return
	}
	var msg string
	if errPrefix == "" {
		msg = err.Error()
	} else {
		msg = errPrefix + ": " + err.Error()
	}
	_, _ = fmt.Fprintln(errOutput, msg)
	if exitHook != nil {
		exitHook(1, msg, err)
	}
	osExit(1)
}
