package etrace_test

import (
	"errors"
	"fmt"

	"github.com/stkali/etrace"
)

// appKind enumerates the failure classes of the example application.
type appKind int

const (
	Io appKind = iota
	Parse
)

func (k appKind) String() string {
	switch k {
	case Io:
		return "Io"
	case Parse:
		return "Parse"
	default:
		return "Unknown"
	}
}

func ExampleNewf() {
	err := etrace.Newf(Io, etrace.At("x.go", 10), "file missing")
	fmt.Println(err)
	// Output: Io: file missing (at x.go:10)
}

func ExampleWrapf() {
	base := etrace.Newf(Io, etrace.At("x.go", 10), "file missing")
	err := etrace.Wrapf(Parse, etrace.At("y.go", 20), base, "config invalid")
	fmt.Println(err)
	// Output:
	// Parse: config invalid (at y.go:20)
	//   - Io: file missing (at x.go:10)
}

func ExampleRethrow() {
	base := etrace.Newf(Io, etrace.At("x.go", 10), "file missing")
	err := etrace.Rethrow(base, etrace.At("z.go", 30))
	fmt.Println(err)
	// Output:
	// Io: file missing (at z.go:30)
	//   - Io: file missing (at x.go:10)
}

func ExampleAsWrapped() {
	w := etrace.AsWrapped(errors.New("connection reset"))
	fmt.Println(w.Kind())
	fmt.Println(w.Description())
	// Output:
	// *errors.errorString
	// connection reset
}

func ExampleIsKind() {
	base := etrace.Newf(Io, etrace.At("x.go", 10), "file missing")
	err := etrace.Wrapf(Parse, etrace.At("y.go", 20), base, "config invalid")
	fmt.Println(etrace.IsKind(err, Parse))
	fmt.Println(etrace.IsKind(err, Io))
	// Output:
	// true
	// false
}

func ExampleError_Wrapped() {
	typed := etrace.Newf(Io, etrace.At("x.go", 10), "file missing")
	erased := typed.Wrapped()
	fmt.Println(erased.Kind())
	fmt.Println(erased)
	// Output:
	// Io
	// Io: file missing (at x.go:10)
}
