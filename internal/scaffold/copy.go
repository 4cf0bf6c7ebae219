package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// CopyOptions tunes CopyTree.
type CopyOptions struct {
	// Exclude holds doublestar patterns matched against slash-separated
	// paths relative to the source root (e.g. "**/.DS_Store").
	Exclude []string
}

// CopyTree recursively copies src into dst and returns the relative paths of
// the files written. dst may already exist: directories are merged and files
// with the same relative path are overwritten. Symlinks are followed and
// copied as regular content. The first error aborts the copy; nothing
// already written is removed.
func CopyTree(src, dst string, opts CopyOptions) ([]string, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", src, err)
	}
	if !srcInfo.IsDir() {
		return nil, fmt.Errorf("template %s is not a directory", src)
	}

	c := &copier{root: src, opts: opts}
	if err := c.copyDir(src, dst, srcInfo.Mode()); err != nil {
		return c.files, err
	}
	log.Printf("copied %d files from %s to %s", len(c.files), src, dst)
	return c.files, nil
}

type copier struct {
	root  string
	opts  CopyOptions
	files []string
}

func (c *copier) excluded(path string) bool {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.opts.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (c *copier) copyDir(src, dst string, mode fs.FileMode) error {
	if err := os.MkdirAll(dst, mode.Perm()|0700); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if c.excluded(srcPath) {
			log.Printf("excluded %s", srcPath)
			continue
		}

		// Stat follows symlinks, so linked files and directories are copied
		// as what they point at.
		info, err := os.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", srcPath, err)
		}

		if info.IsDir() {
			if err := c.copyDir(srcPath, dstPath, info.Mode()); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(srcPath, dstPath, info.Mode()); err != nil {
			return err
		}
		rel, _ := filepath.Rel(c.root, srcPath)
		c.files = append(c.files, filepath.ToSlash(rel))
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
// An existing dst is truncated and overwritten.
func copyFile(src, dst string, mode fs.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, mode.Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
