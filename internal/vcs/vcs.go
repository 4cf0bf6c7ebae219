// Package vcs wraps the git submodule commands the engine repository needs.
// Every call goes through a runner.Runner with an explicit working
// directory.
package vcs

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/zeoengine/zeo/internal/logger"
	"github.com/zeoengine/zeo/internal/runner"
)

var log = logger.New("vcs:vcs")

// Submodule states reported by SubmoduleStatus.
const (
	StateOK            = "ok"
	StateUninitialized = "uninitialized"
	StateModified      = "modified"
	StateConflict      = "conflict"
)

// Submodule is one line of `git submodule status`.
type Submodule struct {
	Path   string
	Commit string
	State  string
}

// UpdateSubmodules runs git submodule update --init --recursive in root.
// Output streams to the terminal.
func UpdateSubmodules(ctx context.Context, r runner.Runner, root string) *runner.Result {
	cmd := runner.Command{
		Name: "git",
		Args: []string{"submodule", "update", "--init", "--recursive"},
		Dir:  root,
	}
	log.Printf("updating submodules in %s", root)
	return r.Run(ctx, cmd)
}

// SubmoduleStatus lists the submodules of root sorted by path.
func SubmoduleStatus(ctx context.Context, r runner.Runner, root string) ([]Submodule, error) {
	res := r.Run(ctx, runner.Command{
		Name:  "git",
		Args:  []string{"submodule", "status"},
		Dir:   root,
		Quiet: true,
	})
	if err := res.AsError(); err != nil {
		return nil, fmt.Errorf("git submodule status failed: %w\n%s", err, res.Stderr)
	}
	return ParseSubmoduleStatus(res.Stdout), nil
}

// ParseSubmoduleStatus parses `git submodule status` output. Lines look like
// " <sha> <path> (<desc>)", with a leading "-" for uninitialized, "+" for a
// checkout that differs from the recorded commit and "U" for conflicts.
func ParseSubmoduleStatus(output string) []Submodule {
	var subs []Submodule
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		state := StateOK
		switch line[0] {
		case '-':
			state = StateUninitialized
			line = line[1:]
		case '+':
			state = StateModified
			line = line[1:]
		case 'U':
			state = StateConflict
			line = line[1:]
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		subs = append(subs, Submodule{Path: parts[1], Commit: parts[0], State: state})
	}

	sort.Slice(subs, func(i, j int) bool { return subs[i].Path < subs[j].Path })
	return subs
}

// Summary counts submodules per state.
func Summary(subs []Submodule) map[string]int {
	counts := make(map[string]int)
	for _, s := range subs {
		counts[s.State]++
	}
	return counts
}
