//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeoengine/zeo/internal/config"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir   string // ZEO_CONFIG_DIR
	EngineRoot  string // a synthetic engine checkout
	ProjectsDir string // parent directory for new projects
	BinDir      string // stand-in executables
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so nothing touches the real config or engine registration.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigDir:   t.TempDir(),
		EngineRoot:  filepath.Join(t.TempDir(), "ZeoEngine"),
		ProjectsDir: t.TempDir(),
		BinDir:      t.TempDir(),
	}

	t.Setenv("ZEO_CONFIG_DIR", env.ConfigDir)
	t.Setenv("ZEOENGINE_DIR", "")
	t.Setenv("VULKAN_SDK", "")
	config.Reset()
	config.Load()
	t.Cleanup(config.Reset)

	return env
}

// setupEngine lays out the parts of an engine checkout that the CLI
// touches: the generator scripts and the new-project template.
func setupEngine(t *testing.T, root string) {
	t.Helper()

	writeFile(t, filepath.Join(root, "scripts", "Linux-GenProjects.sh"), "#!/bin/sh\necho generated > \"$(dirname \"$0\")/../generated.txt\"\n")
	writeFile(t, filepath.Join(root, "scripts", "Win-GenProjects.bat"), "@echo off\r\necho generated > %~dp0..\\generated.txt\r\n")

	tmpl := filepath.Join(root, "ZeoEditor", "NewProjectTemplate")
	writeFile(t, filepath.Join(tmpl, "premake5.lua"), `local ZeoRootDir = "$ENGINE_ROOT$"

workspace "$PROJECT_NAME$"
	architecture "x86_64"

project "$PROJECT_NAME$"
	kind "SharedLib"
	language "C#"
`)
	writeFile(t, filepath.Join(tmpl, "NewProject.zproject"), `Project:
  Name: $PROJECT_NAME$
  AssetDirectory: Assets
  ScriptAssemblyDirectory: Scripts/Binaries
`)
	writeFile(t, filepath.Join(tmpl, "Linux-GenScriptProjects.sh"), "#!/bin/sh\ncd \"$(dirname \"$0\")\" && echo ok > scripts-generated.txt\n")
	writeFile(t, filepath.Join(tmpl, "Win-GenScriptProjects.bat"), "@echo off\r\necho ok > %~dp0scripts-generated.txt\r\n")
	writeFile(t, filepath.Join(tmpl, "Scripts", "Source", "Game.cs"), "namespace Game {}\n")
}

// stubExecutable writes an executable file that does nothing and returns
// its path.
func stubExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	writeFile(t, path, "#!/bin/sh\nexit 0\n")
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	return path
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the path does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}

// assertDirExists fails the test if the path is not a directory.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

// assertFileNotContains fails the test if the file contains substr.
func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s should not contain %q", path, substr)
	}
}
