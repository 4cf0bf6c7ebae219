package runner

import (
	"context"
	"sync"
)

// Fake is a Runner that records commands instead of executing them. Respond
// decides the result for each command; a nil Respond succeeds with no output.
type Fake struct {
	Respond func(cmd Command) *Result

	mu       sync.Mutex
	commands []Command
}

// Run records cmd and returns the scripted result.
func (f *Fake) Run(_ context.Context, cmd Command) *Result {
	f.mu.Lock()
	f.commands = append(f.commands, cmd)
	f.mu.Unlock()

	if f.Respond == nil {
		return &Result{Command: cmd}
	}
	r := f.Respond(cmd)
	if r == nil {
		r = &Result{}
	}
	r.Command = cmd
	return r
}

// Commands returns every command seen so far.
func (f *Fake) Commands() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Command(nil), f.commands...)
}

// Ran reports whether any recorded command line equals line.
func (f *Fake) Ran(line string) bool {
	for _, c := range f.Commands() {
		if c.String() == line {
			return true
		}
	}
	return false
}
