package config

import (
	"fmt"
	"sort"

	"github.com/codetidy/codetidy/pkg/lint"
)

// ConfigurationError reports an invalid configuration value. These are
// fatal: a run with a misread configuration would silently check the
// wrong things.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%q: %s", e.Field, e.Value, e.Reason)
}

// validModes are the accepted output formats.
var validModes = map[string]bool{
	"": true, "auto": true, "text": true, "markdown": true, "json": true,
}

// Validate checks structural validity of the configuration. Unknown
// rule IDs are deliberately not checked here; they produce warnings at
// run time via UnknownRuleIDs so that a shared config file can carry
// rules a given build does not have.
func (c *Config) Validate() error {
	if !validModes[c.OutputFormat] {
		return &ConfigurationError{
			Field:  "output",
			Value:  c.OutputFormat,
			Reason: "must be one of auto, text, markdown, json",
		}
	}
	if c.Jobs < 0 {
		return &ConfigurationError{
			Field:  "jobs",
			Value:  fmt.Sprintf("%d", c.Jobs),
			Reason: "must be zero or positive",
		}
	}
	if c.FailOn != "" {
		if _, ok := lint.ParseSeverity(c.FailOn); !ok {
			return &ConfigurationError{
				Field:  "fail_on",
				Value:  c.FailOn,
				Reason: "must be one of error, warning, info, hint",
			}
		}
	}
	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := lint.ParseSeverity(sev); !ok {
				return &ConfigurationError{
					Field:  "lint.severity." + id,
					Value:  sev,
					Reason: "must be one of error, warning, info, hint",
				}
			}
		}
	}
	return nil
}

// UnknownRuleIDs returns the rule IDs referenced by the configuration
// that the given registry does not know, sorted. Callers surface these
// as warnings rather than failing the run.
func (c *Config) UnknownRuleIDs(known func(string) bool) []string {
	if c.Lint == nil {
		return nil
	}
	seen := make(map[string]bool)
	for _, id := range c.Lint.Disabled {
		if !known(id) {
			seen[id] = true
		}
	}
	for id := range c.Lint.Severity {
		if !known(id) {
			seen[id] = true
		}
	}
	for id := range c.Lint.Rules {
		if !known(id) {
			seen[id] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
