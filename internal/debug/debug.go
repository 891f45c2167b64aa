// Package debug is the process-wide verbose switch enabled by --debug.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	enabled atomic.Bool
	out     atomic.Pointer[io.Writer]
)

func init() { SetOutput(os.Stderr) }

// SetEnabled turns debug output on or off.
func SetEnabled(on bool) { enabled.Store(on) }

// Enabled reports whether debug output is on.
func Enabled() bool { return enabled.Load() }

// SetOutput redirects debug lines, mainly for tests. It may be called while
// other goroutines print; w itself must then be safe for concurrent writes.
func SetOutput(w io.Writer) { out.Store(&w) }

// Printf prints a [DEBUG] line when debug mode is enabled.
func Printf(format string, args ...any) {
	if enabled.Load() {
		fmt.Fprintf(*out.Load(), "[DEBUG] "+format+"\n", args...)
	}
}
