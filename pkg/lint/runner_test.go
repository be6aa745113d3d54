package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/pkg/lint"
)

func newRunner(jobs int) *lint.Runner {
	return lint.NewRunner(lint.NewAnalyzer(lint.NewConfig()), jobs)
}

func TestRunBatchInputOrder(t *testing.T) {
	sources := []lint.Source{
		{Path: "c.src", Text: "void f(a, b, c, d) {}"},
		{Path: "a.src", Text: "int count;"},
		{Path: "b.src", Text: "public class IShape {}"},
	}

	report := newRunner(4).Run(context.Background(), sources)

	require.Len(t, report.Files, 3)
	assert.Equal(t, "c.src", report.Files[0].Path)
	assert.Equal(t, "a.src", report.Files[1].Path)
	assert.Equal(t, "b.src", report.Files[2].Path)
	assert.NotEmpty(t, report.RunID)
	assert.Empty(t, report.Skipped)
}

func TestRunBatchDeterministicAcrossParallelism(t *testing.T) {
	sources := []lint.Source{
		{Path: "one.src", Text: "void f(a, b, c, d) {}"},
		{Path: "two.src", Text: "public class Cart {\n\tpublic int total;\n}"},
		{Path: "three.src", Text: "bool ready;"},
		{Path: "four.src", Text: "void g(bool force) {}"},
	}

	sequential := newRunner(1).Run(context.Background(), sources)
	for _, jobs := range []int{2, 8} {
		parallel := newRunner(jobs).Run(context.Background(), sources)
		require.Len(t, parallel.Files, len(sequential.Files))
		for i := range sequential.Files {
			assert.Equal(t, sequential.Files[i].Path, parallel.Files[i].Path)
			assert.Equal(t, sequential.Files[i].Findings, parallel.Files[i].Findings, "jobs=%d file=%s", jobs, sequential.Files[i].Path)
		}
	}
}

func TestRunBatchParseFailureIsolated(t *testing.T) {
	sources := []lint.Source{
		{Path: "good.src", Text: "void f(a, b, c, d) {}"},
		{Path: "broken.src", Text: "void f( {"},
		{Path: "also_good.src", Text: "int total;"},
	}

	report := newRunner(2).Run(context.Background(), sources)
	require.Len(t, report.Files, 3)

	broken := report.Files[1]
	assert.True(t, broken.ParseFailed)
	require.Len(t, broken.Findings, 1)
	assert.Equal(t, lint.ParseRuleID, broken.Findings[0].RuleID)
	assert.Equal(t, lint.SeverityError, broken.Findings[0].Severity)
	assert.Contains(t, broken.Findings[0].Message, "parse error")

	// Neighbouring files are analyzed normally.
	assert.False(t, report.Files[0].ParseFailed)
	assert.NotEmpty(t, findingsFor(report.Files[0], "FN01"))
	assert.False(t, report.Files[2].ParseFailed)
}

func TestRunBatchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []lint.Source{
		{Path: "a.src", Text: "int x;"},
		{Path: "b.src", Text: "int y;"},
	}

	report := newRunner(1).Run(ctx, sources)
	assert.Empty(t, report.Files)
	assert.Len(t, report.Skipped, 2)
}

func TestRunBatchSkippedInInputOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []lint.Source{
		{Path: "d.src", Text: "int w;"},
		{Path: "b.src", Text: "int x;"},
		{Path: "a.src", Text: "int y;"},
		{Path: "c.src", Text: "int z;"},
	}

	// Skip order must follow input order, not worker completion order.
	for _, jobs := range []int{1, 4} {
		report := newRunner(jobs).Run(ctx, sources)
		assert.Empty(t, report.Files)
		assert.Equal(t, []string{"d.src", "b.src", "a.src", "c.src"}, report.Skipped, "jobs=%d", jobs)
	}
}

func TestCountBySeverityAndMax(t *testing.T) {
	sources := []lint.Source{
		{Path: "bad.src", Text: "void f("},
		{Path: "flags.src", Text: "void g(bool force) {}"},
	}

	report := newRunner(1).Run(context.Background(), sources)
	counts := report.CountBySeverity()
	assert.Equal(t, 1, counts[lint.SeverityError])
	assert.GreaterOrEqual(t, report.TotalFindings(), 2)

	max, ok := report.MaxSeverity()
	require.True(t, ok)
	assert.Equal(t, lint.SeverityError, max)
}

func TestReadSourcesMissingFile(t *testing.T) {
	_, err := lint.ReadSources([]string{"does/not/exist.src"})
	assert.Error(t, err)
}
