package class_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/lint/rules/class"
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

// classWith builds a class body with the given member counts.
func classWith(methods, fields int) string {
	var b strings.Builder
	b.WriteString("class Subject {\n")
	for i := 0; i < fields; i++ {
		fmt.Fprintf(&b, "\tprivate int field%d;\n", i)
	}
	for i := 0; i < methods; i++ {
		fmt.Fprintf(&b, "\tvoid method%d() {}\n", i)
	}
	b.WriteString("}\n")
	return b.String()
}

func TestClassSize(t *testing.T) {
	assert.Empty(t, runRule(t, classWith(10, 7), class.ClassSize.ID, nil))

	diags := runRule(t, classWith(11, 7), class.ClassSize.ID, nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "11 methods")

	diags = runRule(t, classWith(10, 8), class.ClassSize.ID, nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "8 fields")

	// Both thresholds exceeded reports both, methods first.
	diags = runRule(t, classWith(11, 8), class.ClassSize.ID, nil)
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "methods")
	assert.Contains(t, diags[1].Message, "fields")
}

func TestClassSizeConfigured(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("CS01", map[string]any{
		"max_methods": 2,
		"max_fields":  1,
	})
	diags := runRule(t, classWith(3, 2), class.ClassSize.ID, cfg)
	assert.Len(t, diags, 2)
}

func TestPublicField(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    int
		message string
	}{
		{
			name:    "public field",
			src:     "class Point {\n\tpublic int x;\n}",
			want:    1,
			message: "is public",
		},
		{
			name:    "unqualified field",
			src:     "class Point {\n\tint x;\n}",
			want:    1,
			message: "no access qualifier",
		},
		{name: "private field", src: "class Point {\n\tprivate int x;\n}", want: 0},
		{name: "protected field", src: "class Point {\n\tprotected int x;\n}", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, class.PublicField.ID, nil)
			require.Len(t, diags, tt.want)
			if tt.want > 0 {
				assert.Contains(t, diags[0].Message, tt.message)
			}
		})
	}
}

func TestPublicFieldSkipsLocals(t *testing.T) {
	// A local variable has no access qualifier either; only fields are
	// in scope for this rule.
	src := "class Point {\n\tvoid move() {\n\t\tint dx;\n\t}\n}"
	assert.Empty(t, runRule(t, src, class.PublicField.ID, nil))
}
