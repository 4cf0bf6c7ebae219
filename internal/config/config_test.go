package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ZEO_CONFIG_DIR", dir)
	Reset()
	t.Cleanup(Reset)
	return dir
}

func TestDirOverride(t *testing.T) {
	dir := useTempConfig(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q, want config.yaml under %q", got, dir)
	}
}

func TestSetPersistsAndReloads(t *testing.T) {
	dir := useTempConfig(t)
	Load()

	if err := Set(KeyEngineDir, "/opt/zeo"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "/opt/zeo") {
		t.Errorf("config file missing value:\n%s", data)
	}

	Reset()
	Load()
	if got := Get(KeyEngineDir); got != "/opt/zeo" {
		t.Errorf("Get(%q) after reload = %q, want %q", KeyEngineDir, got, "/opt/zeo")
	}
}

func TestEnvOverridesNestedKey(t *testing.T) {
	useTempConfig(t)
	t.Setenv("ZEO_SETUP_TOOLCHAIN", "gmake2")
	Load()

	if got := Get(KeySetupToolchain); got != "gmake2" {
		t.Errorf("Get(%q) = %q, want %q", KeySetupToolchain, got, "gmake2")
	}
}

func TestGetStringSliceSplitsCommas(t *testing.T) {
	useTempConfig(t)
	t.Setenv("ZEO_SETUP_PACKAGES", "requests, fake-useragent,,")
	Load()

	got := GetStringSlice(KeySetupPackages)
	if len(got) != 2 || got[0] != "requests" || got[1] != "fake-useragent" {
		t.Errorf("GetStringSlice = %v, want [requests fake-useragent]", got)
	}
}

func TestGetFileIgnoresEnvironment(t *testing.T) {
	dir := useTempConfig(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("engine_dir: /from/file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ZEO_ENGINE_DIR", "/from/env")
	Load()

	if got := Get(KeyEngineDir); got != "/from/env" {
		t.Errorf("Get(%q) = %q, want the environment value", KeyEngineDir, got)
	}
	if got := GetFile(KeyEngineDir); got != "/from/file" {
		t.Errorf("GetFile(%q) = %q, want %q", KeyEngineDir, got, "/from/file")
	}

	if err := Set(KeyEngineDir, "/from/set"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := GetFile(KeyEngineDir); got != "/from/set" {
		t.Errorf("GetFile(%q) after Set = %q, want %q", KeyEngineDir, got, "/from/set")
	}
}
