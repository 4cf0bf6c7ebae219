package setup

import (
	"io"

	"github.com/zeoengine/zeo/internal/console"
	"github.com/zeoengine/zeo/internal/runner"
)

// Status is the outcome of a single step.
type Status string

// Step outcomes.
const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// StepResult records what one step did.
type StepResult struct {
	Name    string
	Status  Status
	Message string
	// Result is set for steps that ran an external command.
	Result *runner.Result
}

// Report collects the steps of one Run in order.
type Report struct {
	// Root is the resolved repository root, empty if resolution failed.
	Root  string
	Steps []StepResult
}

// Failed returns the steps whose status is StatusFail.
func (r *Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Status == StatusFail {
			failed = append(failed, s)
		}
	}
	return failed
}

// Step returns the first step with the given name.
func (r *Report) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// OK reports whether no step failed. Warnings and skips do not count.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

func (r *Report) add(w io.Writer, step StepResult) {
	r.Steps = append(r.Steps, step)
	PrintStep(w, step)
}

// PrintStep writes step as a console status line.
func PrintStep(w io.Writer, step StepResult) {
	if w == nil {
		return
	}
	tag := console.TagInfo
	switch step.Status {
	case StatusOK:
		tag = console.TagOK
	case StatusWarn:
		tag = console.TagWarn
	case StatusFail:
		tag = console.TagFail
	case StatusSkip:
		tag = console.TagSkip
	}
	if step.Message == "" {
		console.Status(w, tag, "%s", step.Name)
		return
	}
	console.Status(w, tag, "%s: %s", step.Name, step.Message)
}
