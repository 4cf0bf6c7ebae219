package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/zeoengine/zeo/internal/logger"
)

var log = logger.New("runner:exec")

// ExecRunner runs commands with os/exec, streaming output to the configured
// writers while also capturing it.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Stdin is passed to the child when set. Scripts such as the premake
	// wrappers may pause for a key press.
	Stdin io.Reader
}

// Run executes cmd and blocks until it exits.
func (e *ExecRunner) Run(ctx context.Context, cmd Command) *Result {
	log.Printf("running %s (dir=%q)", cmd, cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) // #nosec G204
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = mergeEnv(os.Environ(), cmd.Env)
	}
	c.Stdin = e.Stdin

	var stdoutBuf, stderrBuf bytes.Buffer
	if cmd.Quiet {
		c.Stdout = &stdoutBuf
		c.Stderr = &stderrBuf
	} else {
		stdout := e.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		stderr := e.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		c.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		c.Stderr = io.MultiWriter(stderr, &stderrBuf)
	}

	err := c.Run()

	result := &Result{
		Command: cmd,
		Stdout:  stdoutBuf.String(),
		Stderr:  stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Err = err
		}
	}

	log.Printf("%s finished: exit=%d err=%v", cmd.Name, result.ExitCode, result.Err)
	return result
}

// mergeEnv applies overrides on top of base in a stable order.
func mergeEnv(base []string, overrides map[string]string) []string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := append([]string(nil), base...)
	for _, k := range keys {
		env = setEnv(env, k, overrides[k])
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
