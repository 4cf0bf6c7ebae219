package setup

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/zeoengine/zeo/internal/runner"
)

var (
	// ErrUnknownToolchain is returned before any step runs when the requested
	// premake action is not supported.
	ErrUnknownToolchain = errors.New("unknown toolchain")
	// ErrStepFailed is returned in fail-fast mode when a step fails.
	ErrStepFailed = errors.New("setup step failed")
)

// Toolchains lists the premake actions accepted by Options.Toolchain.
var Toolchains = []string{"vs2019", "vs2022", "gmake2", "xcode4", "codelite"}

// PythonCandidates are tried in order when Options.Python is empty.
var PythonCandidates = []string{"python3", "python", "py"}

// Options configures Run.
type Options struct {
	Runner runner.Runner
	// Out receives one status line per step. Nil discards them.
	Out io.Writer

	// AutoInstallPackages installs missing Python packages with pip instead
	// of only reporting them.
	AutoInstallPackages bool
	// Python names the interpreter. Empty tries PythonCandidates.
	Python    string
	Packages  []string
	MinPython string

	VulkanConstraint string
	CheckDebugLibs   bool

	// ScriptsDir and Levels locate the repository root: it is ScriptsDir
	// with Levels trailing elements removed. RepoRoot overrides both.
	ScriptsDir string
	Levels     int
	RepoRoot   string

	UpdateSubmodules     bool
	RegisterInstallation bool
	// Toolchain is a premake action. Empty runs the repository's own
	// generator script.
	Toolchain string

	FailFast bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		AutoInstallPackages: true,
		Packages:            []string{"requests", "fake-useragent"},
		MinPython:           ">= 3.3",
		VulkanConstraint:    ">= 1.3.0",
		ScriptsDir:          ".",
		Levels:              1,
		UpdateSubmodules:    true,
	}
}

// ValidateToolchain accepts "" and the entries of Toolchains.
func ValidateToolchain(toolchain string) error {
	if toolchain == "" || slices.Contains(Toolchains, toolchain) {
		return nil
	}
	return fmt.Errorf("%w %q (expected one of %s)", ErrUnknownToolchain, toolchain, strings.Join(Toolchains, ", "))
}

// validate checks everything that can be checked without running a step.
func (o Options) validate() error {
	if o.Runner == nil {
		return errors.New("setup: no runner configured")
	}
	if err := ValidateToolchain(o.Toolchain); err != nil {
		return err
	}
	if _, err := semver.NewConstraint(o.MinPython); err != nil {
		return fmt.Errorf("invalid Python version constraint %q: %w", o.MinPython, err)
	}
	if _, err := semver.NewConstraint(o.VulkanConstraint); err != nil {
		return fmt.Errorf("invalid Vulkan version constraint %q: %w", o.VulkanConstraint, err)
	}
	if o.RepoRoot == "" && o.Levels < 0 {
		return fmt.Errorf("levels must not be negative, got %d", o.Levels)
	}
	return nil
}
