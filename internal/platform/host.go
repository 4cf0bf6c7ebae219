package platform

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/zeoengine/zeo/internal/runner"
)

// hostOS is a variable so tests can exercise the Windows branches.
var hostOS = runtime.GOOS

// IsWindows reports whether the host is Windows.
func IsWindows() bool {
	return hostOS == "windows"
}

// ScriptGeneratorName returns the project-local script that generates the
// C# scripting solution for a new project.
func ScriptGeneratorName() string {
	if IsWindows() {
		return "Win-GenScriptProjects.bat"
	}
	return "Linux-GenScriptProjects.sh"
}

// ProjectsGeneratorName returns the repository script that runs premake for
// the engine itself. It lives in the scripts/ directory.
func ProjectsGeneratorName() string {
	if IsWindows() {
		return "Win-GenProjects.bat"
	}
	return "Linux-GenProjects.sh"
}

// PremakeBinary returns the premake executable name for the host.
func PremakeBinary() string {
	if IsWindows() {
		return "premake5.exe"
	}
	return "premake5"
}

// ScriptCommand builds the command that launches a script by absolute path.
// Batch files go through cmd /c, shell scripts through sh; anything else is
// executed directly.
func ScriptCommand(path string, args ...string) runner.Command {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bat", ".cmd":
		return runner.Command{Name: "cmd", Args: append([]string{"/c", path}, args...)}
	case ".sh":
		return runner.Command{Name: "sh", Args: append([]string{path}, args...)}
	default:
		return runner.Command{Name: path, Args: args}
	}
}

// PersistUserEnvCommand returns the command that stores key=value in the
// user's persistent environment. ok is false on hosts without such a store;
// callers fall back to the config file there.
func PersistUserEnvCommand(key, value string) (cmd runner.Command, ok bool) {
	if !IsWindows() {
		return runner.Command{}, false
	}
	return runner.Command{Name: "setx", Args: []string{key, value}, Quiet: true}, true
}

// ProjectsGeneratorArgs returns the arguments passed to the repository
// generator script. The Windows batch file waits for a key press unless it
// is told not to.
func ProjectsGeneratorArgs() []string {
	if IsWindows() {
		return []string{"nopause"}
	}
	return nil
}

// ShadercDebugLib returns the debug shaderc library, relative to the Vulkan
// SDK root, that only the full SDK install ships.
func ShadercDebugLib() string {
	if IsWindows() {
		return "Lib/shaderc_sharedd.lib"
	}
	return "lib/libshaderc_shared.so"
}
