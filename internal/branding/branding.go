// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary with //go:embed. Forks that ship
// the engine under another name only need to edit that file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	EngineEnvVar    string `yaml:"engine_env_var"`
	DescriptorExt   string `yaml:"descriptor_ext"`
	TemplateRelPath string `yaml:"template_rel_path"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "zeo",
			DisplayName:     "ZeoEngine",
			Description:     "Developer bootstrap for ZeoEngine projects",
			HomeDir:         ".zeo",
			EnvPrefix:       "ZEO",
			EngineEnvVar:    "ZEOENGINE_DIR",
			DescriptorExt:   ".zproject",
			TemplateRelPath: "ZeoEditor/NewProjectTemplate",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "zeo").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable engine name (e.g., "ZeoEngine").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".zeo").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the config environment variable prefix (e.g., "ZEO").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EngineEnvVar returns the name of the variable holding the installation
// root (e.g., "ZEOENGINE_DIR"). It deliberately does not use EnvPrefix.
func EngineEnvVar() string { load(); return defaults.EngineEnvVar }

// DescriptorExt returns the project descriptor extension, dot included.
func DescriptorExt() string { load(); return defaults.DescriptorExt }

// TemplateRelPath returns the slash-separated template location relative to
// the installation root.
func TemplateRelPath() string { load(); return defaults.TemplateRelPath }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("config_dir") → "ZEO_CONFIG_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
