// Package commands implements the codetidy subcommands.
package commands

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codetidy/codetidy/internal/cli/config"
	"github.com/codetidy/codetidy/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's
// environment.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration. It uses the loaded config
// when available and falls back to environment variables, so commands
// invoked outside the root command (tests, mostly) still behave.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	jobs := 0
	if v := os.Getenv("CODETIDY_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			jobs = n
		}
	}

	return &config.Config{
		SourceExts:   config.DefaultSourceExts,
		Jobs:         jobs,
		FailOn:       getEnvOrDefault("CODETIDY_FAIL_ON", config.DefaultFailOn),
		Verbose:      os.Getenv("CODETIDY_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("CODETIDY_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// effectiveJobs resolves the configured parallelism: zero means one
// worker per CPU.
func effectiveJobs(cfg *config.Config) int {
	if cfg.Jobs > 0 {
		return cfg.Jobs
	}
	return runtime.NumCPU()
}
