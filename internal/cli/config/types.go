// Package config provides configuration management for the codetidy CLI.
// Configuration merges, in rising precedence: built-in defaults, the
// codetidy.yaml project file, CODETIDY_* environment variables, and
// command-line flags.
package config

// RuleOptions holds the option map for one rule.
type RuleOptions map[string]any

// LintConfig holds the rule configuration section of codetidy.yaml.
type LintConfig struct {
	// Disabled lists rule IDs to skip entirely.
	Disabled []string `koanf:"disabled"`

	// Severity overrides the default severity per rule ID.
	Severity map[string]string `koanf:"severity"`

	// Rules holds per-rule options keyed by rule ID.
	Rules map[string]RuleOptions `koanf:"rules"`
}

// Config holds all CLI configuration options.
type Config struct {
	// SourceExts are the file extensions collected when a directory is
	// analyzed.
	SourceExts []string `koanf:"source_exts"`

	// Jobs bounds batch parallelism. Zero means one worker per CPU.
	Jobs int `koanf:"jobs"`

	// FailOn is the severity at or above which findings fail the run.
	FailOn string `koanf:"fail_on"`

	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Lint         *LintConfig `koanf:"lint"`

	// ProjectRoot is the directory the config file was found in, or the
	// working directory when no config file exists.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultFailOn = "error"
	DefaultOutput = "auto" // TTY gets styled text, pipes get markdown
)

// DefaultSourceExts are the extensions analyzed when none are configured.
var DefaultSourceExts = []string{".src"}
