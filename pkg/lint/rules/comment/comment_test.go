package comment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/pkg/lint"
	"github.com/codetidy/codetidy/pkg/lint/rules/comment"
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

func TestCommentedOutCode(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "disabled statement",
			src:  "// total = total + tax;\nint total;",
			want: 1,
		},
		{
			name: "disabled block",
			src:  "/* if (ready) { start(); } */\nbool isReady;",
			want: 1,
		},
		{
			name: "prose",
			src:  "// Tax is added by the invoicing step, not here.\nint total;",
			want: 0,
		},
		{
			name: "short fragment",
			src:  "// x;\nint total;",
			want: 0,
		},
		{
			name: "prose with punctuation is not code",
			src:  "// remember: totals exclude tax\nint total;",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, runRule(t, tt.src, comment.CommentedOutCode.ID), tt.want)
		})
	}
}

func TestStaleReference(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "reference to surviving function",
			src:  "// recount() runs nightly\nvoid recount() {}",
			want: 0,
		},
		{
			name: "reference to vanished function",
			src:  "// updateTotals() runs nightly\nvoid recount() {}",
			want: 1,
		},
		{
			name: "camel case reference to vanished symbol",
			src:  "// see orderCache for details\nvoid recount() {}",
			want: 1,
		},
		{
			name: "dotted path resolved by root",
			src:  "// inventory.recount happens on close\nint inventory;",
			want: 0,
		},
		{
			name: "plain prose words ignored",
			src:  "// runs nightly after close of business\nvoid recount() {}",
			want: 0,
		},
		{
			name: "all caps markers ignored",
			src:  "// TODO tighten the schedule\nvoid recount() {}",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, comment.StaleReference.ID)
			assert.Len(t, diags, tt.want)
			if tt.want > 0 {
				assert.Equal(t, lint.SeverityHint, diags[0].Severity)
			}
		})
	}
}

func TestStaleReferenceNamesTheSymbol(t *testing.T) {
	diags := runRule(t, "// updateTotals() must run first\nint total;", comment.StaleReference.ID)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "updateTotals()")
}
