// Package engine resolves the engine installation root that the project
// creator copies templates from, and records it after setup.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeoengine/zeo/internal/branding"
	"github.com/zeoengine/zeo/internal/config"
	"github.com/zeoengine/zeo/internal/logger"
	"github.com/zeoengine/zeo/internal/platform"
	"github.com/zeoengine/zeo/internal/runner"
)

var log = logger.New("engine:engine")

// ErrNotInstalled is returned when no installation root is registered.
var ErrNotInstalled = errors.New("engine installation not found")

// Installation sources.
const (
	SourceEnv    = "env"
	SourceConfig = "config"
)

// Installation is the resolved engine root.
type Installation struct {
	Root   string
	Source string
}

// TemplateDir returns the new-project template tree inside the installation.
func (i Installation) TemplateDir() string {
	return filepath.Join(i.Root, filepath.FromSlash(branding.TemplateRelPath()))
}

// Resolve reads the installation root from the engine environment variable,
// falling back to the engine_dir key of the config file. ZEO_ENGINE_DIR is
// not consulted. The config must already be loaded. Resolve never touches the filesystem beyond reading the variables.
func Resolve() (Installation, error) {
	if root := strings.TrimSpace(os.Getenv(branding.EngineEnvVar())); root != "" {
		log.Printf("resolved from %s: %s", branding.EngineEnvVar(), root)
		return Installation{Root: root, Source: SourceEnv}, nil
	}
	if root := strings.TrimSpace(config.GetFile(config.KeyEngineDir)); root != "" {
		log.Printf("resolved from config: %s", root)
		return Installation{Root: root, Source: SourceConfig}, nil
	}
	return Installation{}, fmt.Errorf("%w: %s is not set", ErrNotInstalled, branding.EngineEnvVar())
}

// Advisory is the message shown when Resolve fails.
func Advisory() string {
	return fmt.Sprintf("%s is not properly installed! Try rerunning '%s setup --register'.",
		branding.DisplayName(), branding.CLIName())
}

// Register persists root so later processes can resolve it. On Windows the
// user environment is updated with setx; on every host the root is also
// written to the config file. The setx result is returned so the caller can
// report it; a nil result means no persistent environment store exists.
func Register(ctx context.Context, r runner.Runner, root string) (*runner.Result, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	var result *runner.Result
	if cmd, ok := platform.PersistUserEnvCommand(branding.EngineEnvVar(), abs); ok {
		result = r.Run(ctx, cmd)
		log.Printf("setx exit=%d", result.ExitCode)
	}

	if err := config.Set(config.KeyEngineDir, abs); err != nil {
		return result, fmt.Errorf("recording engine root: %w", err)
	}
	return result, nil
}
