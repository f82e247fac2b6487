package etrace

import (
	"fmt"
	"strings"
)

// maxRenderDepth caps the number of cause levels a single render walks.
// Chains built through this package cannot form cycles, so the cap only
// guards against pathological hand-assembled chains; levels beyond it are
// replaced by an ellipsis line.
const maxRenderDepth = 10000

// kindText returns the canonical printed form of a kind tag. The same text
// serves as the derived description and as the erased kind.
func kindText(kind any) string {
	return fmt.Sprint(kind)
}

// writeLine writes the single-level form "kind: description (at file:line)".
// The location suffix is omitted when the location is unknown.
func writeLine(b *strings.Builder, kind, description string, loc Location) {
	b.WriteString(kind)
	b.WriteString(": ")
	b.WriteString(description)
	if !loc.IsZero() {
		_, _ = fmt.Fprintf(b, " (at %s:%d)", loc.File, loc.Line)
	}
}

// renderChain renders an error line followed by each cause on its own line
// introduced by "  - ". The walk is iterative, never recursive. The output
// is part of the package's compatibility contract and must not change
// between releases.
func renderChain(kind, description string, loc Location, cause *WrappedError) string {
	var b strings.Builder
	writeLine(&b, kind, description, loc)
	depth := 0
	for c := cause; c != nil; c = c.cause {
		if depth >= maxRenderDepth {
			b.WriteString("\n  - ...")
			break
		}
		b.WriteString("\n  - ")
		writeLine(&b, c.kind, c.description, c.loc)
		depth++
	}
	return b.String()
}
