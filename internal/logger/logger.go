// Package logger provides verbose logging for the propunit CLI.
// When verbose mode is enabled via the --verbose flag, messages describing
// unit resolution and conversion steps are printed to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level prefixes.
const (
	levelDebug = "DEBUG"
	levelInfo  = "INFO"
	levelWarn  = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a step of the conversion pipeline.
func Debug(format string, args ...any) {
	logf(levelDebug, format, args...)
}

// Info prints a result summary.
func Info(format string, args ...any) {
	logf(levelInfo, format, args...)
}

// Warn prints a recoverable problem, e.g. a store that could not be opened.
func Warn(format string, args ...any) {
	logf(levelWarn, format, args...)
}

// Section prints a header that groups the messages that follow.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// logf holds the write lock so concurrent lines never interleave.
func logf(level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
