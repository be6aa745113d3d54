package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/lint/rules/function"
	"github.com/codetidy/codetidy/pkg/parser"
)

func runRule(t *testing.T, src, ruleID string, cfg *lint.Config) []lint.Finding {
	t.Helper()
	file, err := parser.Parse("test.src", src)
	require.NoError(t, err)
	if cfg == nil {
		cfg = lint.NewConfig()
	}
	report := lint.NewAnalyzer(cfg).AnalyzeFile(file)
	var out []lint.Finding
	for _, f := range report.Findings {
		if f.RuleID == ruleID {
			out = append(out, f)
		}
	}
	return out
}

func TestParameterCount(t *testing.T) {
	diags := runRule(t, "void f(a, b, c, d) {}", function.ParameterCount.ID, nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"f" takes 4 parameters`)
	assert.Contains(t, diags[0].Message, "allowed 3")

	assert.Empty(t, runRule(t, "void f(a, b, c) {}", function.ParameterCount.ID, nil))
	assert.Empty(t, runRule(t, "void f() {}", function.ParameterCount.ID, nil))
}

func TestParameterCountConfigured(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("FN01", map[string]any{"max_parameters": 1})
	diags := runRule(t, "void f(int a, int b) {}", function.ParameterCount.ID, cfg)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "2 parameters")
}

func TestFlagArgument(t *testing.T) {
	// One finding per boolean parameter, anchored on that parameter.
	src := "void save(Order order, bool validate, bool notify) {}"
	diags := runRule(t, src, function.FlagArgument.ID, nil)
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, `"validate"`)
	assert.Contains(t, diags[1].Message, `"notify"`)
	assert.True(t, diags[0].Span.Start.Before(diags[1].Span.Start))

	assert.Empty(t, runRule(t, "void save(Order order) {}", function.FlagArgument.ID, nil))
}

func TestOutputArgument(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "assignment to parameter",
			src:  "void normalize(int value) {\n\tvalue = value * 2;\n}",
			want: 1,
		},
		{
			name: "reported once per parameter",
			src:  "void normalize(int value) {\n\tvalue = 1;\n\tvalue = 2;\n}",
			want: 1,
		},
		{
			name: "member assignment allowed",
			src:  "void fill(Order order) {\n\torder.total = 10;\n}",
			want: 0,
		},
		{
			name: "local assignment allowed",
			src:  "void compute(int seed) {\n\tint out;\n\tout = seed * 2;\n}",
			want: 0,
		},
		{
			name: "nested assignment found",
			src: `void clamp(int value) {
	if (value > 10) {
		value = 10;
	}
}`,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, runRule(t, tt.src, function.OutputArgument.ID, nil), tt.want)
		})
	}
}
