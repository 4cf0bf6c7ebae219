package setup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeoengine/zeo/internal/config"
	"github.com/zeoengine/zeo/internal/runner"
)

// withPath makes lookPath find exactly the named executables.
func withPath(t *testing.T, names ...string) {
	t.Helper()
	prev := lookPath
	lookPath = func(file string) (string, error) {
		for _, n := range names {
			if n == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
	t.Cleanup(func() { lookPath = prev })
}

// withEnv replaces getenv with a fixed map.
func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	prev := getenv
	getenv = func(key string) string { return env[key] }
	t.Cleanup(func() { getenv = prev })
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("ZEO_CONFIG_DIR", t.TempDir())
	config.Reset()
	config.Load()
	t.Cleanup(config.Reset)
}

// pythonResponder answers interpreter and pip commands. missing lists the
// packages pip show reports as absent; installFails makes pip install fail.
func pythonResponder(version string, missing []string, installFails bool) func(runner.Command) *runner.Result {
	return func(cmd runner.Command) *runner.Result {
		args := strings.Join(cmd.Args, " ")
		switch {
		case args == "--version":
			return &runner.Result{Stdout: version + "\n"}
		case strings.HasPrefix(args, "-m pip show "):
			pkg := strings.TrimPrefix(args, "-m pip show ")
			for _, m := range missing {
				if m == pkg {
					return &runner.Result{ExitCode: 1, Stderr: "WARNING: Package(s) not found: " + pkg}
				}
			}
			return &runner.Result{Stdout: "Name: " + pkg}
		case strings.HasPrefix(args, "-m pip install "):
			if installFails {
				return &runner.Result{ExitCode: 1, Stderr: "ERROR: network unreachable"}
			}
			return &runner.Result{}
		}
		return &runner.Result{}
	}
}

func ranPrefix(fake *runner.Fake, prefix string) bool {
	for _, c := range fake.Commands() {
		if strings.HasPrefix(c.String(), prefix) {
			return true
		}
	}
	return false
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
}
