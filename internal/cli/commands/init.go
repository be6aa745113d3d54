package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/codetidy/codetidy/internal/cli/config"
	"github.com/codetidy/codetidy/internal/cli/output"
)

// starterConfig is the document written by codetidy init. Keys mirror
// the config schema; the zero-value lint section is spelled out so users
// see where overrides go.
type starterConfig struct {
	SourceExts []string           `yaml:"source_exts"`
	FailOn     string             `yaml:"fail_on"`
	Output     string             `yaml:"output"`
	Jobs       int                `yaml:"jobs"`
	Lint       starterLintSection `yaml:"lint"`
}

type starterLintSection struct {
	Disabled []string                  `yaml:"disabled"`
	Severity map[string]string         `yaml:"severity"`
	Rules    map[string]map[string]any `yaml:"rules"`
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter codetidy.yaml",
		Long: `Create a codetidy.yaml configuration file with defaults spelled out.

The generated file documents the available sections: analyzed
extensions, the failure threshold, output format, parallelism, and the
per-rule configuration block.`,
		Example: `  # Initialize in the current directory
  codetidy init

  # Initialize in a new directory
  codetidy init my-project

  # Overwrite an existing config
  codetidy init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "codetidy.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("codetidy.yaml already exists. Use --force to overwrite")
	}

	doc := starterConfig{
		SourceExts: config.DefaultSourceExts,
		FailOn:     config.DefaultFailOn,
		Output:     config.DefaultOutput,
		Jobs:       0,
		Lint: starterLintSection{
			Disabled: []string{},
			Severity: map[string]string{},
			Rules: map[string]map[string]any{
				"NM01": {"min_length": 2, "max_scope_lines": 10},
			},
		},
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	header := []byte("# codetidy configuration.\n# Run 'codetidy rules' to see the configurable rules.\n")
	if err := os.WriteFile(configPath, append(header, data...), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.StatusLine(configPath, "success", "")
	r.Println("")
	r.Success("codetidy project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust source_exts for your tree")
	r.Println("  2. Run 'codetidy analyze' to check your sources")
	r.Println("  3. Run 'codetidy rules' to browse the rule set")

	return nil
}
