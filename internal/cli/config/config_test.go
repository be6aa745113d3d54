package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the test and returns the working directory
// as the OS reports it, which may differ from dir through symlinks.
func chdir(t *testing.T, dir string) string {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultSourceExts, cfg.SourceExts)
	assert.Equal(t, DefaultFailOn, cfg.FailOn)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, 0, cfg.Jobs)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	content := `
fail_on: warning
jobs: 4
output: json
lint:
  disabled:
    - NM02
  severity:
    FN01: error
  rules:
    NM01:
      min_length: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codetidy.yaml"), []byte(content), 0o600))
	wd := chdir(t, dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "warning", cfg.FailOn)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "json", cfg.OutputFormat)
	require.NotNil(t, cfg.Lint)
	assert.Equal(t, []string{"NM02"}, cfg.Lint.Disabled)
	assert.Equal(t, "error", cfg.Lint.Severity["FN01"])
	assert.Contains(t, GetConfigFileUsed(), "codetidy.yaml")
	assert.Equal(t, wd, cfg.ProjectRoot)
}

func TestLoadConfigUpwardSearch(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "codetidy.yml"), []byte("jobs: 2\n"), 0o600))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	wd := chdir(t, nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, filepath.Dir(filepath.Dir(wd)), cfg.ProjectRoot)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codetidy.yaml"), []byte("fail_on: error\n"), 0o600))
	chdir(t, dir)
	t.Setenv("CODETIDY_FAIL_ON", "hint")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "hint", cfg.FailOn)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())
	t.Setenv("CODETIDY_JOBS", "2")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("jobs", 0, "")
	flags.String("fail-on", "", "")
	require.NoError(t, flags.Parse([]string{"--jobs", "8", "--fail-on", "info"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, "info", cfg.FailOn)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: markdown\n"), 0o600))
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	_, err := LoadConfig("nope.yaml", nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero value", cfg: Config{}},
		{name: "valid", cfg: Config{OutputFormat: "json", FailOn: "warning"}},
		{
			name:    "bad output",
			cfg:     Config{OutputFormat: "xml"},
			wantErr: "output",
		},
		{
			name:    "bad fail_on",
			cfg:     Config{FailOn: "fatal"},
			wantErr: "fail_on",
		},
		{
			name:    "negative jobs",
			cfg:     Config{Jobs: -1},
			wantErr: "jobs",
		},
		{
			name: "bad severity override",
			cfg: Config{
				Lint: &LintConfig{Severity: map[string]string{"NM01": "loud"}},
			},
			wantErr: "lint.severity.NM01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUnknownRuleIDs(t *testing.T) {
	known := func(id string) bool { return id == "NM01" || id == "FN01" }

	cfg := Config{Lint: &LintConfig{
		Disabled: []string{"NM01", "ZZ99"},
		Severity: map[string]string{"FN01": "error", "XX01": "hint"},
		Rules:    map[string]RuleOptions{"YY01": {"n": 1}},
	}}
	assert.Equal(t, []string{"XX01", "YY01", "ZZ99"}, cfg.UnknownRuleIDs(known))

	empty := Config{}
	assert.Nil(t, empty.UnknownRuleIDs(known))
}
