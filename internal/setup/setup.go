package setup

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/zeoengine/zeo/internal/branding"
	"github.com/zeoengine/zeo/internal/console"
	"github.com/zeoengine/zeo/internal/engine"
	"github.com/zeoengine/zeo/internal/logger"
	"github.com/zeoengine/zeo/internal/vcs"
)

var log = logger.New("setup:setup")

// Remaining step names.
const (
	StepRepoRoot   = "repository root"
	StepSubmodules = "submodules"
	StepRegister   = "register installation"
)

// Run executes the setup flow. The returned error is non-nil for invalid
// options, an unresolvable repository root, or a failed step in fail-fast
// mode. Otherwise failures are only recorded in the Report.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	report := &Report{}
	// record adds steps and reports the first failure when failing fast.
	record := func(steps ...StepResult) error {
		for _, s := range steps {
			report.add(out, s)
		}
		if !opts.FailFast {
			return nil
		}
		for _, s := range steps {
			if s.Status == StatusFail {
				return fmt.Errorf("%w: %s: %s", ErrStepFailed, s.Name, s.Message)
			}
		}
		return nil
	}

	console.Section(out, "Python")
	if err := record(CheckPython(ctx, opts.Runner, opts)...); err != nil {
		return report, err
	}

	console.Section(out, "Vulkan SDK")
	if err := record(CheckVulkan(opts)...); err != nil {
		return report, err
	}

	console.Section(out, "Repository")
	root := opts.RepoRoot
	if root == "" {
		var err error
		if root, err = ResolveRepoRoot(opts.ScriptsDir, opts.Levels); err != nil {
			return report, err
		}
	} else if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	report.Root = root
	log.Printf("repository root: %s", root)
	if err := record(StepResult{Name: StepRepoRoot, Status: StatusOK, Message: root}); err != nil {
		return report, err
	}

	if err := record(submoduleStep(ctx, opts, root)); err != nil {
		return report, err
	}
	if err := record(registerStep(ctx, opts, root)); err != nil {
		return report, err
	}

	console.Section(out, "Build files")
	if err := record(RunGenerator(ctx, opts.Runner, root, opts.Toolchain)); err != nil {
		return report, err
	}

	return report, nil
}

func submoduleStep(ctx context.Context, opts Options, root string) StepResult {
	step := StepResult{Name: StepSubmodules}
	if !opts.UpdateSubmodules {
		step.Status = StatusSkip
		step.Message = "disabled"
		return step
	}

	step.Result = vcs.UpdateSubmodules(ctx, opts.Runner, root)
	if err := step.Result.AsError(); err != nil {
		step.Status = StatusFail
		step.Message = err.Error()
		return step
	}
	step.Status = StatusOK
	step.Message = "updated"
	return step
}

func registerStep(ctx context.Context, opts Options, root string) StepResult {
	step := StepResult{Name: StepRegister}
	if !opts.RegisterInstallation {
		step.Status = StatusSkip
		step.Message = "not requested"
		return step
	}

	res, err := engine.Register(ctx, opts.Runner, root)
	step.Result = res
	switch {
	case err != nil:
		step.Status = StatusFail
		step.Message = err.Error()
	case res != nil && !res.OK():
		// The config file still holds the root, so new projects resolve it.
		step.Status = StatusWarn
		step.Message = fmt.Sprintf("could not persist %s: %v", branding.EngineEnvVar(), res.AsError())
	default:
		step.Status = StatusOK
		step.Message = fmt.Sprintf("%s=%s", branding.EngineEnvVar(), root)
	}
	return step
}
