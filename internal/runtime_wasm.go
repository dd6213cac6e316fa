//go:build wasm

package internal

// Under wasm there is a single OS thread and goid's fast-path isn't
// available, so every goroutine shares one Context — matching the
// teacher's wasm build, which falls back to one global runtime.
func getGID() int64 {
	return 0
}
