package scaffold

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, string(data), want)
	}
}

func TestCopyTreeIntoEmptyDestination(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	writeTree(t, src, map[string]string{
		"a/x.txt":   "x",
		"a/b/y.txt": "y",
	})

	files, err := CopyTree(src, dst, CopyOptions{})
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	assertFileContent(t, filepath.Join(dst, "a", "x.txt"), "x")
	assertFileContent(t, filepath.Join(dst, "a", "b", "y.txt"), "y")

	sort.Strings(files)
	if len(files) != 2 || files[0] != "a/b/y.txt" || files[1] != "a/x.txt" {
		t.Errorf("files = %v, want [a/b/y.txt a/x.txt]", files)
	}
}

func TestCopyTreeMergesAndOverwrites(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeTree(t, src, map[string]string{"a/x.txt": "from template"})
	writeTree(t, dst, map[string]string{
		"a/x.txt":    "stale",
		"keep/z.txt": "untouched",
	})

	if _, err := CopyTree(src, dst, CopyOptions{}); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	assertFileContent(t, filepath.Join(dst, "a", "x.txt"), "from template")
	assertFileContent(t, filepath.Join(dst, "keep", "z.txt"), "untouched")

	entries, err := os.ReadDir(filepath.Join(dst, "a"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one entry in a/, got %d", len(entries))
	}
}

func TestCopyTreeFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on windows")
	}
	src := t.TempDir()
	outside := t.TempDir()
	writeTree(t, outside, map[string]string{"shared.txt": "shared"})
	if err := os.Symlink(filepath.Join(outside, "shared.txt"), filepath.Join(src, "link.txt")); err != nil {
		t.Fatal(err)
	}

	dst := t.TempDir()
	if _, err := CopyTree(src, dst, CopyOptions{}); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	info, err := os.Lstat(filepath.Join(dst, "link.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		t.Error("expected a regular file, got a symlink")
	}
	assertFileContent(t, filepath.Join(dst, "link.txt"), "shared")
}

func TestCopyTreePreservesPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no unix permission bits on windows")
	}
	src := t.TempDir()
	script := filepath.Join(src, "gen.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	dst := t.TempDir()
	if _, err := CopyTree(src, dst, CopyOptions{}); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	info, err := os.Stat(filepath.Join(dst, "gen.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("permissions = %o, want %o", perm, 0755)
	}
}

func TestCopyTreeExclude(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"premake5.lua":         "lua",
		".DS_Store":            "",
		"Scripts/.DS_Store":    "",
		"Scripts/Source/A.cs":  "cs",
		".git/objects/aa/bbcc": "obj",
	})

	dst := t.TempDir()
	files, err := CopyTree(src, dst, CopyOptions{Exclude: []string{"**/.DS_Store", ".git"}})
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	for _, gone := range []string{".DS_Store", "Scripts/.DS_Store", ".git"} {
		if _, err := os.Stat(filepath.Join(dst, filepath.FromSlash(gone))); err == nil {
			t.Errorf("%s should be excluded", gone)
		}
	}
	if len(files) != 2 {
		t.Errorf("files = %v, want premake5.lua and Scripts/Source/A.cs", files)
	}
}

func TestCopyTreeInvalidPattern(t *testing.T) {
	if _, err := CopyTree(t.TempDir(), t.TempDir(), CopyOptions{Exclude: []string{"[unclosed"}}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestCopyTreeMissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out")
	if _, err := CopyTree(filepath.Join(t.TempDir(), "missing"), dst, CopyOptions{}); err == nil {
		t.Fatal("expected error for missing source")
	}
	if _, err := os.Stat(dst); err == nil {
		t.Error("destination should not be created when the source is missing")
	}
}
