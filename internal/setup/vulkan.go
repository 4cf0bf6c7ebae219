package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/zeoengine/zeo/internal/logger"
	"github.com/zeoengine/zeo/internal/platform"
)

var vulkanLog = logger.New("setup:vulkan")

// VulkanEnvVar names the variable set by the Vulkan SDK installer.
const VulkanEnvVar = "VULKAN_SDK"

// Step names used by the Vulkan check.
const (
	StepVulkan          = "vulkan sdk"
	StepVulkanDebugLibs = "vulkan debug libraries"
)

// getenv is replaced in tests.
var getenv = os.Getenv

var sdkVersionRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// SDKVersion returns the version encoded in an SDK path. Installers use the
// version as a directory name (C:\VulkanSDK\1.3.216.0, ~/vulkan/1.3.216.0/x86_64),
// so path elements are searched from the end. Both separators are accepted.
func SDKVersion(sdkPath string) (*semver.Version, error) {
	parts := strings.FieldsFunc(sdkPath, func(r rune) bool { return r == '/' || r == '\\' })
	for i := len(parts) - 1; i >= 0; i-- {
		if m := sdkVersionRe.FindStringSubmatch(parts[i]); m != nil {
			return semver.NewVersion(m[0])
		}
	}
	return nil, fmt.Errorf("no version in SDK path %q", sdkPath)
}

// CheckVulkan validates the SDK named by VULKAN_SDK. Problems are warnings
// only: the engine can still be generated without the SDK.
func CheckVulkan(opts Options) []StepResult {
	step := StepResult{Name: StepVulkan}

	sdk := strings.TrimSpace(getenv(VulkanEnvVar))
	if sdk == "" {
		step.Status = StatusWarn
		step.Message = fmt.Sprintf("%s is not set; install the Vulkan SDK (%s)", VulkanEnvVar, opts.VulkanConstraint)
		return withDebugSkip([]StepResult{step}, opts)
	}
	vulkanLog.Printf("%s=%s", VulkanEnvVar, sdk)

	if info, err := os.Stat(sdk); err != nil || !info.IsDir() {
		step.Status = StatusWarn
		step.Message = fmt.Sprintf("%s=%s does not exist", VulkanEnvVar, sdk)
		return withDebugSkip([]StepResult{step}, opts)
	}

	version, err := SDKVersion(sdk)
	switch {
	case err != nil:
		step.Status = StatusWarn
		step.Message = fmt.Sprintf("could not determine SDK version from %s", sdk)
	default:
		constraint, cerr := semver.NewConstraint(opts.VulkanConstraint)
		switch {
		case cerr != nil:
			step.Status = StatusWarn
			step.Message = fmt.Sprintf("invalid constraint %q: %v", opts.VulkanConstraint, cerr)
		case !constraint.Check(version):
			step.Status = StatusWarn
			step.Message = fmt.Sprintf("SDK %s does not satisfy %s", version, opts.VulkanConstraint)
		default:
			step.Status = StatusOK
			step.Message = fmt.Sprintf("SDK %s at %s", version, sdk)
		}
	}

	steps := []StepResult{step}
	if opts.CheckDebugLibs {
		steps = append(steps, checkDebugLibs(sdk))
	}
	return steps
}

func checkDebugLibs(sdk string) StepResult {
	lib := filepath.Join(sdk, filepath.FromSlash(platform.ShadercDebugLib()))
	if _, err := os.Stat(lib); err != nil {
		return StepResult{
			Name:    StepVulkanDebugLibs,
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s not found; reinstall the SDK with the debug shader libraries", platform.ShadercDebugLib()),
		}
	}
	return StepResult{Name: StepVulkanDebugLibs, Status: StatusOK, Message: lib}
}

func withDebugSkip(steps []StepResult, opts Options) []StepResult {
	if opts.CheckDebugLibs {
		steps = append(steps, StepResult{Name: StepVulkanDebugLibs, Status: StatusSkip, Message: "no SDK"})
	}
	return steps
}
