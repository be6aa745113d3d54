package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/lint/rules/naming"
	"github.com/codetidy/codetidy/pkg/parser"
)

func runRule(t *testing.T, src, ruleID string) []lint.Finding {
	t.Helper()
	file, err := parser.Parse("test.src", src)
	require.NoError(t, err)
	report := lint.NewAnalyzer(lint.NewConfig()).AnalyzeFile(file)
	var out []lint.Finding
	for _, f := range report.Findings {
		if f.RuleID == ruleID {
			out = append(out, f)
		}
	}
	return out
}

func TestShortName(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "short name in long function",
			src: `void compute() {
	int s;
	s = s + 1;
	s = s + 2;
	s = s + 3;
	s = s + 4;
	s = s + 5;
	s = s + 6;
	s = s + 7;
	s = s + 8;
	s = s + 9;
	s = s + 10;
}`,
			want: 1,
		},
		{
			name: "short name in short function",
			src:  "void f() {\n\tint s;\n}",
			want: 0,
		},
		{
			name: "loop counter exempt",
			src: `void compute() {
	int total;
	for (int i = 0; i < 10; i = i + 1) {
		total = total + i;
	}
	total = total + 1;
	total = total + 2;
	total = total + 3;
	total = total + 4;
	total = total + 5;
	total = total + 6;
	total = total + 7;
}`,
			want: 0,
		},
		{
			name: "descriptive name fine anywhere",
			src:  "int elapsedSeconds;",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, runRule(t, tt.src, naming.ShortName.ID), tt.want)
		})
	}
}

func TestShortNameTopLevel(t *testing.T) {
	// A one-letter name at file scope has no enclosing function to
	// excuse it.
	diags := runRule(t, "int s;", naming.ShortName.ID)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"s"`)
	assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
}

func TestBoolPrefix(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		want       int
		suggestion string
	}{
		{name: "bare noun", src: "bool ready;", want: 1, suggestion: "isReady"},
		{name: "is prefix", src: "bool isReady;", want: 0},
		{name: "has prefix", src: "bool hasItems;", want: 0},
		{name: "prefix needs a boundary", src: "bool island;", want: 1, suggestion: "isIsland"},
		{name: "snake case boundary", src: "bool is_ready;", want: 0},
		{name: "non boolean ignored", src: "int ready;", want: 0},
		{name: "boolean literal initializer", src: "var done = true;", want: 1, suggestion: "isDone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, naming.BoolPrefix.ID)
			require.Len(t, diags, tt.want)
			if tt.want > 0 {
				assert.Equal(t, tt.suggestion, diags[0].Suggestion)
			}
		})
	}
}

func TestInterfacePrefix(t *testing.T) {
	diags := runRule(t, "interface IShape {}", naming.InterfacePrefix.ID)
	require.Len(t, diags, 1)
	assert.Equal(t, "Shape", diags[0].Suggestion)

	assert.Empty(t, runRule(t, "interface Shape {}", naming.InterfacePrefix.ID))
	// Names that merely start with I are not prefixed.
	assert.Empty(t, runRule(t, "interface Inventory {}", naming.InterfacePrefix.ID))
}

func TestNegatedName(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		want       int
		suggestion string
	}{
		{name: "isNot", src: "bool isNotReady;", want: 1, suggestion: "isReady"},
		{name: "bare not", src: "bool notReady;", want: 1, suggestion: "ready"},
		{name: "hasNo", src: "bool hasNoItems;", want: 1, suggestion: "hasItems"},
		{name: "snake case", src: "bool is_not_ready;", want: 1},
		{name: "positive", src: "bool isReady;", want: 0},
		{name: "notable is not negated", src: "bool notable;", want: 0},
		{name: "non boolean ignored", src: "int notes;", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, naming.NegatedName.ID)
			require.Len(t, diags, tt.want)
			if tt.suggestion != "" {
				assert.Equal(t, tt.suggestion, diags[0].Suggestion)
			}
		})
	}
}
