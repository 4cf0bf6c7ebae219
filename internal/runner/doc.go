// Package runner executes external processes and returns a typed Result for
// every invocation. Callers decide whether a non-zero exit is fatal; the
// runner itself never turns an exit code into an error.
package runner
