package setup

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/zeoengine/zeo/internal/logger"
	"github.com/zeoengine/zeo/internal/runner"
)

var pythonLog = logger.New("setup:python")

// lookPath is replaced in tests.
var lookPath = exec.LookPath

var pythonVersionRe = regexp.MustCompile(`Python\s+(\d+(?:\.\d+){0,2})`)

// Step names used by the Python check.
const (
	StepPython        = "python"
	stepPackagePrefix = "package "
)

// PackageStepName returns the step name recorded for a pip package.
func PackageStepName(pkg string) string {
	return stepPackagePrefix + pkg
}

// FindPython returns the path of the configured interpreter, or of the first
// PythonCandidates entry found on PATH.
func FindPython(name string) (string, error) {
	candidates := PythonCandidates
	if name != "" {
		candidates = []string{name}
	}
	for _, c := range candidates {
		if path, err := lookPath(c); err == nil {
			pythonLog.Printf("found %s at %s", c, path)
			return path, nil
		}
	}
	return "", fmt.Errorf("no Python interpreter found on PATH (tried %s)", strings.Join(candidates, ", "))
}

// ParsePythonVersion extracts the version from `python --version` output.
// Older interpreters print it to stderr, so callers pass both streams.
func ParsePythonVersion(output string) (*semver.Version, error) {
	m := pythonVersionRe.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("unrecognized version output %q", strings.TrimSpace(output))
	}
	return semver.NewVersion(m[1])
}

// CheckPython validates the interpreter and every required package. It
// returns the interpreter step followed by one step per package.
func CheckPython(ctx context.Context, r runner.Runner, opts Options) []StepResult {
	python, err := FindPython(opts.Python)
	if err != nil {
		steps := []StepResult{{Name: StepPython, Status: StatusFail, Message: err.Error()}}
		for _, pkg := range opts.Packages {
			steps = append(steps, StepResult{Name: PackageStepName(pkg), Status: StatusSkip, Message: "no interpreter"})
		}
		return steps
	}

	steps := []StepResult{checkPythonVersion(ctx, r, python, opts.MinPython)}
	if steps[0].Status == StatusFail {
		for _, pkg := range opts.Packages {
			steps = append(steps, StepResult{Name: PackageStepName(pkg), Status: StatusSkip, Message: "unsupported interpreter"})
		}
		return steps
	}

	for _, pkg := range opts.Packages {
		steps = append(steps, checkPackage(ctx, r, python, pkg, opts.AutoInstallPackages))
	}
	return steps
}

func checkPythonVersion(ctx context.Context, r runner.Runner, python, minVersion string) StepResult {
	step := StepResult{Name: StepPython}

	res := r.Run(ctx, runner.Command{Name: python, Args: []string{"--version"}, Quiet: true})
	step.Result = res
	if err := res.AsError(); err != nil {
		step.Status = StatusFail
		step.Message = err.Error()
		return step
	}

	version, err := ParsePythonVersion(res.Stdout + res.Stderr)
	if err != nil {
		step.Status = StatusFail
		step.Message = err.Error()
		return step
	}

	constraint, err := semver.NewConstraint(minVersion)
	if err != nil {
		step.Status = StatusFail
		step.Message = fmt.Sprintf("invalid constraint %q: %v", minVersion, err)
		return step
	}
	if !constraint.Check(version) {
		step.Status = StatusFail
		step.Message = fmt.Sprintf("Python %s does not satisfy %s", version, minVersion)
		return step
	}

	step.Status = StatusOK
	step.Message = fmt.Sprintf("Python %s (%s)", version, python)
	return step
}

func checkPackage(ctx context.Context, r runner.Runner, python, pkg string, autoInstall bool) StepResult {
	step := StepResult{Name: PackageStepName(pkg)}

	show := r.Run(ctx, runner.Command{Name: python, Args: []string{"-m", "pip", "show", pkg}, Quiet: true})
	step.Result = show
	if show.OK() {
		step.Status = StatusOK
		step.Message = "installed"
		return step
	}
	pythonLog.Printf("pip show %s: exit=%d", pkg, show.ExitCode)

	if !autoInstall {
		step.Status = StatusFail
		step.Message = fmt.Sprintf("not installed (run %s -m pip install %s)", python, pkg)
		return step
	}

	install := r.Run(ctx, runner.Command{Name: python, Args: []string{"-m", "pip", "install", pkg}})
	step.Result = install
	if err := install.AsError(); err != nil {
		step.Status = StatusFail
		step.Message = fmt.Sprintf("install failed: %v", err)
		return step
	}
	step.Status = StatusOK
	step.Message = "installed with pip"
	return step
}
