package platform

import (
	"testing"
)

func withHost(t *testing.T, goos string) {
	t.Helper()
	prev := hostOS
	hostOS = goos
	t.Cleanup(func() { hostOS = prev })
}

func TestScriptNamesPerHost(t *testing.T) {
	tests := []struct {
		goos      string
		scriptGen string
		projGen   string
		premake   string
	}{
		{"windows", "Win-GenScriptProjects.bat", "Win-GenProjects.bat", "premake5.exe"},
		{"linux", "Linux-GenScriptProjects.sh", "Linux-GenProjects.sh", "premake5"},
		{"darwin", "Linux-GenScriptProjects.sh", "Linux-GenProjects.sh", "premake5"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			withHost(t, tt.goos)
			if got := ScriptGeneratorName(); got != tt.scriptGen {
				t.Errorf("ScriptGeneratorName() = %q, want %q", got, tt.scriptGen)
			}
			if got := ProjectsGeneratorName(); got != tt.projGen {
				t.Errorf("ProjectsGeneratorName() = %q, want %q", got, tt.projGen)
			}
			if got := PremakeBinary(); got != tt.premake {
				t.Errorf("PremakeBinary() = %q, want %q", got, tt.premake)
			}
		})
	}
}

func TestScriptCommand(t *testing.T) {
	tests := []struct {
		path     string
		args     []string
		expected string
	}{
		{`C:\Proj\Win-GenScriptProjects.bat`, nil, `cmd /c C:\Proj\Win-GenScriptProjects.bat`},
		{"/repo/scripts/Win-GenProjects.BAT", []string{"nopause"}, "cmd /c /repo/scripts/Win-GenProjects.BAT nopause"},
		{"/proj/Linux-GenScriptProjects.sh", nil, "sh /proj/Linux-GenScriptProjects.sh"},
		{"/repo/vendor/premake/bin/premake5", []string{"gmake2"}, "/repo/vendor/premake/bin/premake5 gmake2"},
	}

	for _, tt := range tests {
		if got := ScriptCommand(tt.path, tt.args...).String(); got != tt.expected {
			t.Errorf("ScriptCommand(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestPersistUserEnvCommand(t *testing.T) {
	withHost(t, "windows")
	cmd, ok := PersistUserEnvCommand("ZEOENGINE_DIR", `C:\ZeoEngine`)
	if !ok {
		t.Fatal("expected setx command on windows")
	}
	if got := cmd.String(); got != `setx ZEOENGINE_DIR C:\ZeoEngine` {
		t.Errorf("command = %q", got)
	}

	withHost(t, "linux")
	if _, ok := PersistUserEnvCommand("ZEOENGINE_DIR", "/opt/zeo"); ok {
		t.Error("expected no persistent env command on linux")
	}
}

func TestSetupHelpersPerHost(t *testing.T) {
	withHost(t, "windows")
	if args := ProjectsGeneratorArgs(); len(args) != 1 || args[0] != "nopause" {
		t.Errorf("windows ProjectsGeneratorArgs() = %v, want [nopause]", args)
	}
	if got := ShadercDebugLib(); got != "Lib/shaderc_sharedd.lib" {
		t.Errorf("windows ShadercDebugLib() = %q", got)
	}

	withHost(t, "linux")
	if args := ProjectsGeneratorArgs(); len(args) != 0 {
		t.Errorf("linux ProjectsGeneratorArgs() = %v, want none", args)
	}
	if got := ShadercDebugLib(); got != "lib/libshaderc_shared.so" {
		t.Errorf("linux ShadercDebugLib() = %q", got)
	}
}
