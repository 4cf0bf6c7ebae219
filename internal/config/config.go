package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/zeoengine/zeo/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known configuration keys.
const (
	KeyEngineDir        = "engine_dir"
	KeyTemplateDir      = "template.dir"
	KeyTemplateExclude  = "template.exclude"
	KeySetupPython      = "setup.python"
	KeySetupPackages    = "setup.packages"
	KeySetupMinPython   = "setup.min_python"
	KeySetupVulkan      = "setup.vulkan_version"
	KeySetupAutoInstall = "setup.auto_install"
	KeySetupToolchain   = "setup.toolchain"
)

// Dir returns the config directory. ZEO_CONFIG_DIR overrides the default
// of ~/.zeo/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("config_dir")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.zeo/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// fileOnly mirrors the config file without environment lookups.
var fileOnly = viper.New()

// Load initializes Viper to read from the config file and environment.
// Nested keys map to underscores, so setup.toolchain reads ZEO_SETUP_TOOLCHAIN.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()

	fileOnly = viper.New()
	fileOnly.SetConfigFile(FilePath())
	fileOnly.SetConfigType(fileType)
	_ = fileOnly.ReadInConfig()
}

// Reset discards all loaded state. Tests use it between cases.
func Reset() {
	viper.Reset()
	fileOnly = viper.New()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetFile returns a value from the config file or from Set, ignoring the
// environment.
func GetFile(key string) string {
	return fileOnly.GetString(key)
}

// GetBool returns a boolean config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetStringSlice returns a list value. A comma-separated string is split.
func GetStringSlice(key string) []string {
	if s, ok := viper.Get(key).(string); ok {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return viper.GetStringSlice(key)
}

// IsSet reports whether the key has a value from any source.
func IsSet(key string) bool {
	return viper.IsSet(key)
}

// Keys returns every key known to the config, sorted.
func Keys() []string {
	keys := viper.AllKeys()
	sort.Strings(keys)
	return keys
}

// Set writes a config key-value pair and saves the config file.
func Set(key string, value any) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)
	fileOnly.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
