package runner

import (
	"context"
	"fmt"
	"strings"
)

// Runner executes a command and reports what happened.
type Runner interface {
	Run(ctx context.Context, cmd Command) *Result
}

// Command describes a single process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the child. Empty means the caller's.
	Dir string
	// Env entries are added to (or replace) the inherited environment.
	Env map[string]string
	// Quiet captures output without streaming it to the terminal.
	Quiet bool
}

// String renders the command line for display.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result captures the outcome of a command.
type Result struct {
	Command  Command
	ExitCode int
	Stdout   string
	Stderr   string
	// Err is set when the process could not be started or waited on. It is
	// nil for a process that ran and exited non-zero.
	Err error
}

// OK reports whether the process started and exited with status 0.
func (r *Result) OK() bool {
	return r != nil && r.Err == nil && r.ExitCode == 0
}

// AsError converts an unsuccessful result to an error. It returns nil for OK results.
func (r *Result) AsError() error {
	switch {
	case r == nil:
		return fmt.Errorf("command did not run")
	case r.Err != nil:
		return fmt.Errorf("running %s: %w", r.Command, r.Err)
	case r.ExitCode != 0:
		return fmt.Errorf("%s exited with status %d", r.Command, r.ExitCode)
	}
	return nil
}
