package starbutton

import (
	"fmt"
	"os"
)

// globalDebug enables layer misuse checks and diagnostic logging on stderr.
var globalDebug bool

// SetDebugMode enables or disables debug checks and logging for every button.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugLogf prints a diagnostic line to stderr in debug mode.
func debugLogf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[starbutton] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed layer
// is used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(l *Layer, op string) {
	if l.disposed {
		panic(fmt.Sprintf("starbutton debug: %s on disposed layer %q", op, l.Name))
	}
}

// debugLogTransition reports a state change and the size of the batch it submitted.
func debugLogTransition(from, to State, batch *AnimationBatch) {
	if !globalDebug {
		return
	}
	n := 0
	if batch != nil {
		n = batch.Len()
	}
	_, _ = fmt.Fprintf(os.Stderr, "[starbutton] %s -> %s | animations: %d\n", from, to, n)
}
