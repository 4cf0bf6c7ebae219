package setup

import (
	"fmt"
	"path/filepath"
)

// ResolveRepoRoot returns the absolute directory levels above scriptsDir.
// The setup scripts live one level below the repository root, so the
// default is 1.
func ResolveRepoRoot(scriptsDir string, levels int) (string, error) {
	if levels < 0 {
		return "", fmt.Errorf("levels must not be negative, got %d", levels)
	}
	if scriptsDir == "" {
		scriptsDir = "."
	}
	root, err := filepath.Abs(scriptsDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", scriptsDir, err)
	}
	for i := 0; i < levels; i++ {
		parent := filepath.Dir(root)
		if parent == root {
			return "", fmt.Errorf("%s has fewer than %d parent directories", scriptsDir, levels)
		}
		root = parent
	}
	return root, nil
}
