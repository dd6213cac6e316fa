package internal

import (
	"fmt"
	"os"
	"testing"
)

// DevMode gates the engine's development-only warnings (spec §7:
// read-only writes, inactive-scope runs, scope-dispose-without-scope,
// ProjectAll on a non-reactive value all warn in dev and are silent/
// no-op in production). It defaults to on under `go test` and off
// otherwise, so library consumers don't need to opt out explicitly in
// production builds.
var DevMode = testing.Testing()

// Warnf writes a development-mode diagnostic to stderr. It never
// panics and is not retried; callers treat the underlying operation
// as a no-op regardless of whether the warning fired.
func Warnf(format string, args ...any) {
	if !DevMode {
		return
	}
	fmt.Fprintf(os.Stderr, "[reactor] "+format+"\n", args...)
}
