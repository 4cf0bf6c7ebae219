package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeoengine/zeo/internal/branding"
	"github.com/zeoengine/zeo/internal/config"
	"github.com/zeoengine/zeo/internal/console"
	"github.com/zeoengine/zeo/internal/engine"
	"github.com/zeoengine/zeo/internal/prompt"
	"github.com/zeoengine/zeo/internal/scaffold"
)

var (
	newName          string
	newDir           string
	newTemplate      string
	newSkipGenerator bool
)

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "Project name (prompted when empty)")
	newCmd.Flags().StringVar(&newDir, "dir", "", "Parent directory of the project (prompted when empty)")
	newCmd.Flags().StringVar(&newTemplate, "template", "", "Template directory (default: <engine>/"+branding.TemplateRelPath()+")")
	newCmd.Flags().BoolVar(&newSkipGenerator, "skip-generator", false, "Do not run the scripting solution generator")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new game project from the engine template",
	Long: `Create a new game project.

The project is created at <dir>/<name> from the engine's project template.
The build script and project descriptor get the project name and engine
root filled in, an empty Assets folder is added, and the scripting solution
generator is run inside the new project.

Examples:
  ` + branding.CLIName() + ` new
  ` + branding.CLIName() + ` new --name Sandbox --dir ~/games`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := engine.Resolve()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), engine.Advisory())
			return err
		}

		req, err := collectRequest(newPrompter(cmd), newName, newDir)
		if err != nil {
			return err
		}

		templateDir := newTemplate
		if templateDir == "" {
			templateDir = config.Get(config.KeyTemplateDir)
		}

		creator := &scaffold.Creator{
			Installation:  inst,
			TemplateDir:   templateDir,
			Exclude:       config.GetStringSlice(config.KeyTemplateExclude),
			Runner:        newRunner(cmd),
			Stdout:        cmd.OutOrStdout(),
			SkipGenerator: newSkipGenerator,
		}

		result, err := creator.Create(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("creating project %s: %w", req.Name, err)
		}

		out := cmd.OutOrStdout()
		for _, w := range result.Warnings {
			console.Warn(out, "%s", w)
		}
		console.OK(out, "Created %s (%d files)", result.ProjectRoot, len(result.Files))
		return nil
	},
}

// collectRequest asks for whatever the flags left empty.
func collectRequest(p prompt.Prompter, name, dir string) (scaffold.Request, error) {
	var err error
	if name == "" {
		name, err = p.Ask(prompt.ProjectNameQuestion, scaffold.ValidateName)
		if err != nil {
			return scaffold.Request{}, err
		}
	}
	if dir == "" {
		dir, err = p.Ask(prompt.ProjectDirectoryQuestion, scaffold.ValidateDirectory)
		if err != nil {
			return scaffold.Request{}, err
		}
	}
	return scaffold.NewRequest(name, dir)
}
