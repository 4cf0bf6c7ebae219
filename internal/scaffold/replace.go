package scaffold

import (
	"fmt"
	"os"
	"strings"
)

// Placeholder tokens understood by the engine templates.
const (
	TokenProjectName = "$PROJECT_NAME$"
	TokenEngineRoot  = "$ENGINE_ROOT$"
)

// ReplaceInContent replaces every literal occurrence of token in content.
func ReplaceInContent(content, token, value string) string {
	if token == "" {
		return content
	}
	return strings.ReplaceAll(content, token, value)
}

// ReplaceToken rewrites the file at path with every occurrence of token
// replaced by value. The file is overwritten in place with its original
// permissions; there is no backup.
func ReplaceToken(path, token, value string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("replacing %s in %s: %w", token, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated := ReplaceInContent(string(data), token, value)
	if updated == string(data) {
		log.Printf("%s: no %s tokens", path, token)
		return nil
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Printf("%s: replaced %s", path, token)
	return nil
}

// NormalizeEngineRoot converts every backslash to a forward slash so the
// root can be embedded in premake scripts on any host.
func NormalizeEngineRoot(root string) string {
	return strings.ReplaceAll(root, `\`, "/")
}
