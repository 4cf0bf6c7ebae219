package platform

import (
	"os"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if IsWindows() {
		return nil
	}
	return os.Chmod(path, mode)
}

// MakeExecutable adds the execute bits to a copied script so it can be
// launched directly.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return Chmod(path, info.Mode().Perm()|0111)
}
