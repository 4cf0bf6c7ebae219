package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeoengine/zeo/internal/branding"
	"github.com/zeoengine/zeo/internal/config"
	"github.com/zeoengine/zeo/internal/console"
	"github.com/zeoengine/zeo/internal/setup"
)

var (
	setupAutoInstall    bool
	setupPython         string
	setupCheckDebugLibs bool
	setupFrom           string
	setupLevels         int
	setupRoot           string
	setupNoSubmodules   bool
	setupRegister       bool
	setupToolchain      string
	setupStrict         bool
)

func init() {
	defaults := setup.DefaultOptions()
	f := setupCmd.Flags()
	f.BoolVar(&setupAutoInstall, "auto-install", defaults.AutoInstallPackages, "Install missing Python packages with pip")
	f.StringVar(&setupPython, "python", "", "Python interpreter (default: first of "+strings.Join(setup.PythonCandidates, ", ")+" on PATH)")
	f.BoolVar(&setupCheckDebugLibs, "check-debug-libs", false, "Also require the Vulkan SDK debug shader libraries")
	f.StringVar(&setupFrom, "from", defaults.ScriptsDir, "Directory the repository root is resolved from")
	f.IntVar(&setupLevels, "levels", defaults.Levels, "Number of parent directories between --from and the repository root")
	f.StringVar(&setupRoot, "root", "", "Repository root (overrides --from and --levels)")
	f.BoolVar(&setupNoSubmodules, "no-submodules", false, "Skip git submodule update")
	f.BoolVar(&setupRegister, "register", false, "Record the repository root as the engine installation ("+branding.EngineEnvVar()+")")
	f.StringVar(&setupToolchain, "toolchain", "", "Run premake with this action ("+strings.Join(setup.Toolchains, ", ")+") instead of the generator script")
	f.BoolVar(&setupStrict, "strict", false, "Stop at the first failed step")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare an engine checkout for building",
	Long: `Validate and prepare the developer environment for an engine checkout.

Steps:
  1. Python interpreter and required pip packages
  2. Vulkan SDK (` + setup.VulkanEnvVar + `) presence and version
  3. git submodule update --init --recursive
  4. optional registration of the checkout as the engine installation
  5. project file generation

Run it from the scripts directory of the checkout, or pass --root.

Examples:
  ` + branding.CLIName() + ` setup --register
  ` + branding.CLIName() + ` setup --root ~/src/ZeoEngine --toolchain gmake2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := setupOptions(cmd)
		opts.Runner = newRunner(cmd)
		opts.Out = cmd.OutOrStdout()

		report, err := setup.Run(cmd.Context(), opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		if failed := report.Failed(); len(failed) > 0 {
			return fmt.Errorf("%d setup step(s) failed", len(failed))
		}
		fmt.Fprintf(out, "Setup complete for %s\n", report.Root)
		if !setupRegister {
			fmt.Fprintf(out, "Run %s to make this checkout the default engine.\n",
				console.Command(branding.CLIName()+" setup --register"))
		}
		return nil
	},
}

// setupOptions layers config values over the defaults and explicitly set
// flags over both.
func setupOptions(cmd *cobra.Command) setup.Options {
	opts := setup.DefaultOptions()

	if config.IsSet(config.KeySetupAutoInstall) {
		opts.AutoInstallPackages = config.GetBool(config.KeySetupAutoInstall)
	}
	if v := config.Get(config.KeySetupPython); v != "" {
		opts.Python = v
	}
	if pkgs := config.GetStringSlice(config.KeySetupPackages); len(pkgs) > 0 {
		opts.Packages = pkgs
	}
	if v := config.Get(config.KeySetupMinPython); v != "" {
		opts.MinPython = v
	}
	if v := config.Get(config.KeySetupVulkan); v != "" {
		opts.VulkanConstraint = v
	}
	if v := config.Get(config.KeySetupToolchain); v != "" {
		opts.Toolchain = v
	}

	flags := cmd.Flags()
	if flags.Changed("auto-install") {
		opts.AutoInstallPackages = setupAutoInstall
	}
	if flags.Changed("python") {
		opts.Python = setupPython
	}
	if flags.Changed("toolchain") {
		opts.Toolchain = setupToolchain
	}
	opts.CheckDebugLibs = setupCheckDebugLibs
	opts.ScriptsDir = setupFrom
	opts.Levels = setupLevels
	opts.RepoRoot = setupRoot
	opts.UpdateSubmodules = !setupNoSubmodules
	opts.RegisterInstallation = setupRegister
	opts.FailFast = setupStrict
	return opts
}
