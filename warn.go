package etrace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// disableWarning is a global flag that controls whether warnings are disabled.
	disableWarning bool

	// warningPrefix is the prefix used for warning messages.
	warningPrefix = "warning"

	// warningOutput is the io.Writer where warning messages are sent by default.
	// It is set to os.Stderr initially.
	warningOutput io.Writer = os.Stderr
)

// DisableWarning disables the global warning mechanism.
// After calling this function, no warnings will be output.
func DisableWarning() {
	disableWarning = true
}

// EnableWarning re-enables the global warning mechanism.
func EnableWarning() {
	disableWarning = false
}

// SetWarningOutput sets the output destination for warning messages.
// The provided io.Writer will be used to write warning messages.
func SetWarningOutput(output io.Writer) {
	warningOutput = output
}

// SetWarningPrefix sets the prefix used for warning messages.
// This prefix will be prepended to all warning messages.
func SetWarningPrefix(prefix string) {
	warningPrefix = prefix
}

// SetWarningPrefixf is a formatted version of SetWarningPrefix.
// It allows setting the prefix using a format string and arguments.
func SetWarningPrefixf(s string, args ...any) {
	warningPrefix = fmt.Sprintf(s, args...)
}

// warn writes a single prefixed warning line to the warning output.
func warn(msg string) {
	if warningPrefix != "" {
		_, _ = io.WriteString(warningOutput, warningPrefix)
		_, _ = io.WriteString(warningOutput, ": ")
	}
	_, _ = io.WriteString(warningOutput, msg)
	_, _ = warningOutput.Write([]byte{'\n'})
}

// Warning writes a warning message to the warning output. Multiple arguments
// are printed comma separated; error arguments render their full cause
// chain. It ignores warnings if the warning mechanism is disabled, or if no
// parameters are provided.
func Warning(a ...any) {
	if disableWarning || len(a) == 0 || (len(a) == 1 && a[0] == nil) {
		return
	}
	parts := make([]string, len(a))
	for i := range a {
		parts[i] = fmt.Sprint(a[i])
	}
	warn(strings.Join(parts, ", "))
}

// Warningf writes a formatted warning message to the warning output.
// It does not output the warning if the warning mechanism is disabled.
func Warningf(format string, a ...any) {
	if disableWarning {
		return
	}
	warn(fmt.Sprintf(format, a...))
}
