package etrace

import (
	"fmt"
	"runtime"
)

// Location identifies the source file and line an error was created or
// rethrown at. The zero value means the location is unknown and is omitted
// from rendered output.
type Location struct {
	File string
	Line int
}

// At returns the Location for an explicit file and line. Threading call
// sites through the constructors by hand keeps rendered output fully
// deterministic, which golden fixtures depend on.
func At(file string, line int) Location {
	return Location{File: file, Line: line}
}

// Here returns the Location of the line it is written on. It inspects
// exactly one stack frame, so it must appear at the spot whose position
// should be recorded, never inside a shared helper.
func Here() Location {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// Caller returns the Location skip frames above the caller. Caller(0) is
// equivalent to Here; helpers that construct errors on behalf of their own
// caller pass 1.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// IsZero reports whether the location is unknown.
func (l Location) IsZero() bool {
	return l == Location{}
}

// String implements the fmt.Stringer interface.
// It returns "file:line", or "?" for an unknown location.
func (l Location) String() string {
	if l.IsZero() {
		return "?"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}
