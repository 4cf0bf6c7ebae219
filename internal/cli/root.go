package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zeoengine/zeo/internal/branding"
	"github.com/zeoengine/zeo/internal/config"
	"github.com/zeoengine/zeo/internal/console"
	"github.com/zeoengine/zeo/internal/prompt"
	"github.com/zeoengine/zeo/internal/runner"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` developer bootstrap.

Create new game projects from the engine's project template and prepare a
fresh engine checkout for building (Python packages, Vulkan SDK, submodules,
project generation).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if noColor || os.Getenv("NO_COLOR") != "" {
			console.SetColor(false)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// newRunner builds the runner used by every command. Tests replace it.
var newRunner = func(cmd *cobra.Command) runner.Runner {
	return &runner.ExecRunner{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Stdin:  cmd.InOrStdin(),
	}
}

// newPrompter builds the interactive prompter. Tests replace it.
var newPrompter = func(cmd *cobra.Command) prompt.Prompter {
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
