// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable.
//
//	DEBUG=*                      enable everything
//	DEBUG=scaffold:*,setup:*     enable two namespaces
//	DEBUG=*,-runner:exec         everything except one logger
//
// Loggers are created once per file with a "package:file" namespace and are
// silent unless enabled, so calls can stay in hot paths.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

// SetOutput redirects every logger. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

// Logger writes debug lines for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	last      time.Time
	mu        sync.Mutex
}

// New creates a logger for namespace. Whether it is enabled is decided once
// from the DEBUG value at creation time.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   matches(os.Getenv("DEBUG"), namespace),
	}
}

// Enabled reports whether output is produced.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf formats like fmt.Printf.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print concatenates like fmt.Sprint.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(msg string) {
	l.mu.Lock()
	now := time.Now()
	var delta time.Duration
	if !l.last.IsZero() {
		delta = now.Sub(l.last)
	}
	l.last = now
	l.mu.Unlock()

	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, "%s %s +%s\n", l.namespace, msg, delta)
}

// matches evaluates a comma-separated DEBUG spec against namespace. Later
// patterns win, and a leading "-" excludes.
func matches(spec, namespace string) bool {
	enabled := false
	for _, raw := range strings.Split(spec, ",") {
		pattern := strings.TrimSpace(raw)
		if pattern == "" {
			continue
		}
		exclude := strings.HasPrefix(pattern, "-")
		pattern = strings.TrimPrefix(pattern, "-")
		if !patternMatch(pattern, namespace) {
			continue
		}
		enabled = !exclude
	}
	return enabled
}

func patternMatch(pattern, namespace string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	return pattern == namespace
}
