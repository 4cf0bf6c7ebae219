package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeoengine/zeo/internal/branding"
	"github.com/zeoengine/zeo/internal/descriptor"
	"github.com/zeoengine/zeo/internal/engine"
	"github.com/zeoengine/zeo/internal/logger"
	"github.com/zeoengine/zeo/internal/platform"
	"github.com/zeoengine/zeo/internal/runner"
)

var log = logger.New("scaffold:scaffold")

// Fixed names inside the template tree.
const (
	BuildScriptFile        = "premake5.lua"
	DescriptorTemplateFile = "NewProject.zproject"
	AssetsDir              = "Assets"
)

// Result holds the outcome of a project creation.
type Result struct {
	ProjectRoot    string
	DescriptorPath string
	Files          []string
	Warnings       []string
	// Generator is nil when the script generator was skipped or missing.
	Generator *runner.Result
}

// Creator turns a Request into a project on disk.
type Creator struct {
	Installation engine.Installation
	// TemplateDir overrides Installation.TemplateDir() when set.
	TemplateDir string
	Exclude     []string
	Runner      runner.Runner
	// Stdout receives progress lines. Defaults to io.Discard.
	Stdout io.Writer
	// SkipGenerator leaves the script generator step out.
	SkipGenerator bool
}

// Create builds the project described by req. Every path is derived from
// the project root; the process working directory is never changed. A
// failure before the generator step returns an error and leaves whatever
// was already written in place. The generator's outcome is reported in
// Result and never fails the call.
func (c *Creator) Create(ctx context.Context, req Request) (*Result, error) {
	out := c.Stdout
	if out == nil {
		out = io.Discard
	}

	templateDir := c.TemplateDir
	if templateDir == "" {
		templateDir = c.Installation.TemplateDir()
	}

	projectRoot := filepath.Join(req.Directory, req.Name)
	result := &Result{ProjectRoot: projectRoot}

	fmt.Fprintf(out, "Creating project: %s\n", req.Name)

	if err := os.MkdirAll(projectRoot, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	files, err := CopyTree(templateDir, projectRoot, CopyOptions{Exclude: c.Exclude})
	result.Files = files
	if err != nil {
		return result, fmt.Errorf("copying template: %w", err)
	}

	buildScript := filepath.Join(projectRoot, BuildScriptFile)
	if err := ReplaceToken(buildScript, TokenProjectName, req.Name); err != nil {
		return result, err
	}
	if err := ReplaceToken(buildScript, TokenEngineRoot, NormalizeEngineRoot(c.Installation.Root)); err != nil {
		return result, err
	}

	descriptorPath := filepath.Join(projectRoot, req.Name+branding.DescriptorExt())
	if err := os.Rename(filepath.Join(projectRoot, DescriptorTemplateFile), descriptorPath); err != nil {
		return result, fmt.Errorf("renaming project descriptor: %w", err)
	}
	result.DescriptorPath = descriptorPath
	result.Files = renameListed(result.Files, DescriptorTemplateFile, filepath.Base(descriptorPath))

	if err := ReplaceToken(descriptorPath, TokenProjectName, req.Name); err != nil {
		return result, err
	}
	result.Warnings = append(result.Warnings, validateDescriptor(descriptorPath, req.Name)...)

	if err := os.MkdirAll(filepath.Join(projectRoot, AssetsDir), 0755); err != nil {
		return result, fmt.Errorf("creating %s folder: %w", AssetsDir, err)
	}

	if c.SkipGenerator {
		return result, nil
	}
	c.runGenerator(ctx, result)
	return result, nil
}

// runGenerator launches the project-local script generator. Its exit status
// only ever becomes a warning.
func (c *Creator) runGenerator(ctx context.Context, result *Result) {
	script := filepath.Join(result.ProjectRoot, platform.ScriptGeneratorName())
	abs, err := filepath.Abs(script)
	if err != nil {
		abs = script
	}

	if _, err := os.Stat(abs); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("script generator %s not found; scripting solution was not generated", platform.ScriptGeneratorName()))
		return
	}
	if filepath.Ext(abs) == ".sh" {
		if err := platform.MakeExecutable(abs); err != nil {
			log.Printf("chmod %s: %v", abs, err)
		}
	}
	if c.Runner == nil {
		result.Warnings = append(result.Warnings, "no runner configured; script generator skipped")
		return
	}

	cmd := platform.ScriptCommand(abs)
	cmd.Dir = result.ProjectRoot
	result.Generator = c.Runner.Run(ctx, cmd)
	if err := result.Generator.AsError(); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("script generator: %v", err))
	}
}

// validateDescriptor checks the generated descriptor against the schema.
// A type error on Project.Name is dropped when the literal text is the
// requested name, since names such as 2048 or true only resolve to
// non-strings in YAML. A name that YAML reads differently, such as one
// cut short by a '#' comment, is reported instead.
func validateDescriptor(path, name string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate descriptor: %v", err)}
	}
	res, err := descriptor.Validate(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate descriptor: %v", err)}
	}

	base := filepath.Base(path)
	raw, found := descriptor.RawName(data)
	var warnings []string
	if found && raw != name {
		warnings = append(warnings, fmt.Sprintf("%s: /Project/Name: reads as %q instead of %q", base, raw, name))
	}
	for _, issue := range res.Issues {
		if issue.Path == "/Project/Name" && issue.Keyword == "type" && found && raw == name {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%s: %s", base, issue))
	}
	return warnings
}

func renameListed(files []string, from, to string) []string {
	for i, f := range files {
		if f == from {
			files[i] = to
		}
	}
	return files
}
