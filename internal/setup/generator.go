package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeoengine/zeo/internal/logger"
	"github.com/zeoengine/zeo/internal/platform"
	"github.com/zeoengine/zeo/internal/runner"
)

var generatorLog = logger.New("setup:generator")

// Repository layout used by the generator step.
const (
	ScriptsDirName = "scripts"
	StepGenerator  = "generate projects"
)

// PremakePath returns the bundled premake binary under root.
func PremakePath(root string) string {
	return filepath.Join(root, "vendor", "premake", "bin", platform.PremakeBinary())
}

// GeneratorScriptPath returns the host generator script under root.
func GeneratorScriptPath(root string) string {
	return filepath.Join(root, ScriptsDirName, platform.ProjectsGeneratorName())
}

// RunGenerator produces the native build files. With an empty toolchain it
// runs the repository script for the host, and a missing script is a skip.
// Otherwise it runs the bundled premake with toolchain as the action.
func RunGenerator(ctx context.Context, r runner.Runner, root, toolchain string) StepResult {
	step := StepResult{Name: StepGenerator}

	if err := ValidateToolchain(toolchain); err != nil {
		step.Status = StatusFail
		step.Message = err.Error()
		return step
	}

	var cmd runner.Command
	if toolchain == "" {
		script := GeneratorScriptPath(root)
		if _, err := os.Stat(script); err != nil {
			step.Status = StatusSkip
			step.Message = fmt.Sprintf("%s not found", filepath.Join(ScriptsDirName, platform.ProjectsGeneratorName()))
			return step
		}
		if filepath.Ext(script) == ".sh" {
			if err := platform.MakeExecutable(script); err != nil {
				generatorLog.Printf("chmod %s: %v", script, err)
			}
		}
		cmd = platform.ScriptCommand(script, platform.ProjectsGeneratorArgs()...)
	} else {
		premake := PremakePath(root)
		if _, err := os.Stat(premake); err != nil {
			step.Status = StatusFail
			step.Message = fmt.Sprintf("premake not found at %s (update submodules first)", premake)
			return step
		}
		cmd = runner.Command{Name: premake, Args: []string{toolchain}}
	}
	cmd.Dir = root

	generatorLog.Printf("running %s", cmd)
	step.Result = r.Run(ctx, cmd)
	if err := step.Result.AsError(); err != nil {
		step.Status = StatusFail
		step.Message = err.Error()
		return step
	}
	step.Status = StatusOK
	step.Message = cmd.String()
	return step
}
