package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeoengine/zeo/internal/branding"
	"github.com/zeoengine/zeo/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write ` + branding.DisplayName() + ` settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys:
  ` + config.KeyEngineDir + `            engine installation root (after ` + branding.EngineEnvVar() + `)
  ` + config.KeyTemplateDir + `          template directory used by 'new'
  ` + config.KeyTemplateExclude + `      comma-separated glob patterns skipped when copying the template
  ` + config.KeySetupPython + `          Python interpreter used by 'setup'
  ` + config.KeySetupPackages + `        comma-separated pip packages required by 'setup'
  ` + config.KeySetupMinPython + `        minimum Python version constraint
  ` + config.KeySetupVulkan + `    Vulkan SDK version constraint
  ` + config.KeySetupAutoInstall + `      install missing pip packages (true/false)
  ` + config.KeySetupToolchain + `       premake action used by 'setup'`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every configured value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}
