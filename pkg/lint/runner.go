package lint

import (
	"context"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/codetidy/codetidy/pkg/parser"
	"github.com/codetidy/codetidy/pkg/token"
)

// ParseRuleID is the pseudo rule ID attached to parse-failure findings.
const ParseRuleID = "parse"

// Source is one analysis input: a path and its text. Text may be
// provided directly (raw buffer inputs) or loaded from disk with
// ReadSources.
type Source struct {
	Path string
	Text string
}

// ReadSources loads the given paths from disk.
func ReadSources(paths []string) ([]Source, error) {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, Source{Path: path, Text: string(data)})
	}
	return sources, nil
}

// FileReport holds the findings for one analyzed file, in visitation
// order.
type FileReport struct {
	Path        string    `json:"path"`
	Findings    []Finding `json:"findings"`
	ParseFailed bool      `json:"parse_failed,omitempty"`
}

// HasFindings returns true if the report contains any findings.
func (r *FileReport) HasFindings() bool {
	return len(r.Findings) > 0
}

// BatchReport aggregates per-file reports for one run. Files appear in
// input order regardless of completion order, so batch output is
// deterministic under concurrency.
type BatchReport struct {
	RunID   string        `json:"run_id"`
	Files   []*FileReport `json:"files"`
	Skipped []string      `json:"skipped,omitempty"` // not analyzed due to cancellation
}

// CountBySeverity tallies findings across all files.
func (b *BatchReport) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, f := range b.Files {
		for _, finding := range f.Findings {
			counts[finding.Severity]++
		}
	}
	return counts
}

// TotalFindings returns the number of findings across all files.
func (b *BatchReport) TotalFindings() int {
	total := 0
	for _, f := range b.Files {
		total += len(f.Findings)
	}
	return total
}

// MaxSeverity returns the most severe finding level present, and false
// when the batch has no findings.
func (b *BatchReport) MaxSeverity() (Severity, bool) {
	max, found := SeverityHint, false
	for _, f := range b.Files {
		for _, finding := range f.Findings {
			if !found || finding.Severity < max {
				max = finding.Severity
				found = true
			}
		}
	}
	return max, found
}

// Runner analyzes batches of files. Files are independent, so the batch
// fans out across a bounded worker pool; rule instances are stateless
// and shared read-only across workers.
type Runner struct {
	analyzer *Analyzer
	jobs     int
}

// NewRunner creates a runner with the given parallelism. jobs < 1 means
// sequential.
func NewRunner(analyzer *Analyzer, jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{analyzer: analyzer, jobs: jobs}
}

// Run analyzes all sources and merges per-file reports in input order.
// Cancellation is cooperative and checked between files: in-flight
// analyses complete, pending ones are skipped and listed in the report.
func (r *Runner) Run(ctx context.Context, sources []Source) *BatchReport {
	report := &BatchReport{RunID: uuid.NewString()}
	results := make([]*FileReport, len(sources))
	skipped := make([]bool, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, src := range sources {
		g.Go(func() error {
			// A single-file walk is fast and uninterruptible once
			// started; the cancellation check happens here, between
			// files.
			if gctx.Err() != nil {
				skipped[i] = true
				return nil
			}
			results[i] = r.analyzeSource(src)
			return nil
		})
	}
	_ = g.Wait()

	// Both slices are indexed by input position, so the report order is
	// the input order no matter how the workers interleaved.
	for _, fr := range results {
		if fr != nil {
			report.Files = append(report.Files, fr)
		}
	}
	for i, skip := range skipped {
		if skip {
			report.Skipped = append(report.Skipped, sources[i].Path)
		}
	}
	return report
}

// analyzeSource parses and analyzes one source. A parse failure yields a
// single error-severity finding and suppresses rule evaluation for that
// file without affecting the rest of the batch.
func (r *Runner) analyzeSource(src Source) *FileReport {
	file, err := parser.Parse(src.Path, src.Text)
	if err != nil {
		span := token.Span{}
		if parseErr, ok := err.(*parser.ParseError); ok {
			span = token.Span{Start: parseErr.Pos, End: parseErr.Pos}
		}
		return &FileReport{
			Path:        src.Path,
			ParseFailed: true,
			Findings: []Finding{{
				RuleID:   ParseRuleID,
				Severity: SeverityError,
				Message:  err.Error(),
				Span:     span,
			}},
		}
	}
	return r.analyzer.AnalyzeFile(file)
}
