package alloc

import (
	"fmt"
	"os"
)

// Compile-time flag for verbose hot-path diagnostics.
const debugAlloc = false

// Runtime trace flag for allocation logging - controlled by HEAP_LOG_ALLOC env var.
var logAlloc = os.Getenv("HEAP_LOG_ALLOC") != ""

// tracef prints diagnostic messages to stderr when HEAP_LOG_ALLOC is set.
// The error value returned to the caller is the reporting channel; this is
// the human-readable diagnostic stream next to it.
func tracef(format string, args ...any) {
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] "+format+"\n", args...)
	}
}

// debugLogf prints hot-path diagnostics when debugAlloc is enabled at build
// time. Call sites are guarded by the const so they compile away.
func debugLogf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[ALLOC DEBUG] "+format+"\n", args...)
}
