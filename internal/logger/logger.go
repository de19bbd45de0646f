// Package logger prints leveled progress messages to stderr when the
// --verbose flag is set. It is intentionally minimal: the CLI's normal
// output goes through cobra, and this channel only narrates extraction,
// rendering and delivery steps for users who ask to see them.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose turns verbose logging on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose logging is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output, primarily for tests.
// The default is os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// emit prints a tagged line when verbose is on. Callers pass the
// level tag so the lock is taken once per message.
func emit(tag, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, tag+" "+format+"\n", args...)
	}
}

// Debug logs fine-grained progress detail.
func Debug(format string, args ...any) {
	emit("[DEBUG]", format, args...)
}

// Info logs a notable step.
func Info(format string, args ...any) {
	emit("[INFO]", format, args...)
}

// Warn logs a recoverable problem.
func Warn(format string, args ...any) {
	emit("[WARN]", format, args...)
}

// Section prints a banner separating phases of a long operation.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
