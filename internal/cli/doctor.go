package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/zeoengine/zeo/internal/branding"
	"github.com/zeoengine/zeo/internal/config"
	"github.com/zeoengine/zeo/internal/console"
	"github.com/zeoengine/zeo/internal/descriptor"
	"github.com/zeoengine/zeo/internal/engine"
	"github.com/zeoengine/zeo/internal/setup"
	"github.com/zeoengine/zeo/internal/vcs"
)

var checkDescriptor string

// lookPath is replaced in tests.
var lookPath = exec.LookPath

func init() {
	doctorCmd.Flags().StringVar(&checkDescriptor, "check-descriptor", "", "Validate a project descriptor at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the engine installation and developer tools",
	Long: `Run read-only diagnostic checks: the registered engine installation,
required tools on PATH, the Vulkan SDK, and the engine's git submodules.
Nothing is installed or modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if checkDescriptor != "" {
			return runDescriptorCheck(out, checkDescriptor)
		}

		inst, resolved := runEngineCheck(out)
		runToolsCheck(out, inst, resolved)

		console.Section(out, "Vulkan SDK")
		opts := setup.DefaultOptions()
		if v := config.Get(config.KeySetupVulkan); v != "" {
			opts.VulkanConstraint = v
		}
		for _, step := range setup.CheckVulkan(opts) {
			setup.PrintStep(out, step)
		}

		if resolved {
			runSubmoduleCheck(cmd, out, inst.Root)
		}
		return nil
	},
}

func runEngineCheck(w io.Writer) (engine.Installation, bool) {
	console.Section(w, "Engine")
	inst, err := engine.Resolve()
	if err != nil {
		console.Miss(w, "%s", engine.Advisory())
		return inst, false
	}
	console.OK(w, "%s (from %s)", inst.Root, inst.Source)

	if info, err := os.Stat(inst.TemplateDir()); err != nil || !info.IsDir() {
		console.Fail(w, "project template missing at %s", inst.TemplateDir())
	} else {
		console.OK(w, "project template at %s", inst.TemplateDir())
	}
	return inst, true
}

func runToolsCheck(w io.Writer, inst engine.Installation, resolved bool) {
	console.Section(w, "Tools")
	checkBinary(w, "git")

	if path, err := setup.FindPython(config.Get(config.KeySetupPython)); err != nil {
		console.Miss(w, "%v", err)
	} else {
		console.OK(w, "python found at %s", path)
	}

	if path, err := lookPath("premake5"); err == nil {
		console.OK(w, "premake5 found at %s", path)
		return
	}
	if resolved {
		if _, err := os.Stat(setup.PremakePath(inst.Root)); err == nil {
			console.OK(w, "premake5 bundled at %s", setup.PremakePath(inst.Root))
			return
		}
	}
	console.Miss(w, "premake5 not found (run '%s setup' to fetch vendored tools)", branding.CLIName())
}

func checkBinary(w io.Writer, name string) {
	path, err := lookPath(name)
	if err != nil {
		console.Miss(w, "%s not found", name)
		return
	}
	console.OK(w, "%s found at %s", name, path)
}

func runSubmoduleCheck(cmd *cobra.Command, w io.Writer, root string) {
	console.Section(w, "Submodules")

	subs, err := vcs.SubmoduleStatus(cmd.Context(), newRunner(cmd), root)
	if err != nil {
		console.Warn(w, "cannot read submodule status: %v", err)
		return
	}
	if len(subs) == 0 {
		console.Info(w, "no submodules")
		return
	}

	for _, s := range subs {
		switch s.State {
		case vcs.StateOK:
			continue
		case vcs.StateUninitialized:
			console.Warn(w, "%s: not initialized (run '%s setup')", s.Path, branding.CLIName())
		case vcs.StateModified:
			console.Warn(w, "%s: checked out commit differs from the recorded one", s.Path)
		case vcs.StateConflict:
			console.Fail(w, "%s: merge conflict", s.Path)
		}
	}
	counts := vcs.Summary(subs)
	console.Info(w, "%d of %d submodules clean", counts[vcs.StateOK], len(subs))
}

func runDescriptorCheck(w io.Writer, path string) error {
	console.Section(w, "Descriptor "+path)

	result, err := descriptor.ValidateFile(path)
	if err != nil {
		console.Fail(w, "%v", err)
		return fmt.Errorf("descriptor validation failed: %w", err)
	}

	if result.Valid {
		d, err := descriptor.Parse(path)
		if err != nil {
			console.OK(w, "Valid descriptor")
			return nil
		}
		console.OK(w, "Valid descriptor for project %s", d.Project.Name)
		return nil
	}

	console.Fail(w, "%d validation issue(s):", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("descriptor %s has %d validation issue(s)", path, len(result.Issues))
}
