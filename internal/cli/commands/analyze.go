package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codetidy/codetidy/internal/cli/config"
	"github.com/codetidy/codetidy/internal/cli/output"
	"github.com/codetidy/codetidy/pkg/lint"
	_ "github.com/codetidy/codetidy/pkg/lint/rules" // register rules
)

// AnalyzeOptions holds options for the analyze command.
type AnalyzeOptions struct {
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only specific rules
	Severity string   // Minimum severity to report
	FailOn   string   // Severity at or above which the run fails
	Jobs     int      // Worker count, 0 means per-CPU
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Check source files against the convention rules",
		Long: `Analyze source files and report convention violations.

Each file is parsed and checked against the registered rules. Findings
are reported per file in source order. Rules can be configured in
codetidy.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Analyze the current directory
  codetidy analyze

  # Analyze specific files or directories
  codetidy analyze src/ lib/inventory.src

  # Output as JSON
  codetidy analyze --format json

  # Disable specific rules
  codetidy analyze --disable NM02,CP01

  # Only report errors and warnings
  codetidy analyze --severity warning

  # Fail the run on any warning
  codetidy analyze --fail-on warning`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity to report: error, warning, info, hint")
	cmd.Flags().StringVar(&opts.FailOn, "fail-on", "", "Fail the run when findings reach this severity")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of files analyzed in parallel (0 = number of CPUs)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *AnalyzeOptions, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	// A config file may name rules this build does not carry. Warn, don't fail.
	for _, id := range cfg.UnknownRuleIDs(ruleExists) {
		r.Warning(fmt.Sprintf("configuration references unknown rule %q", id))
	}

	if len(args) == 0 {
		args = []string{"."}
	}
	paths, err := collectSourcePaths(args, cfg.SourceExts)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		r.Success("No source files to analyze")
		return nil
	}

	sources, err := lint.ReadSources(paths)
	if err != nil {
		return err
	}

	lintCfg := buildLintConfig(cfg, opts)

	jobs := effectiveJobs(cfg)
	if opts.Jobs > 0 {
		jobs = opts.Jobs
	}
	runner := lint.NewRunner(lint.NewAnalyzer(lintCfg), jobs)
	report := runner.Run(cmd.Context(), sources)

	filterReportBySeverity(report, opts.Severity)
	renderAnalysisReport(r, report)

	if len(report.Skipped) > 0 && cmd.Context().Err() != nil {
		return cmd.Context().Err()
	}

	failOn := opts.FailOn
	if failOn == "" {
		failOn = cfg.FailOn
	}
	threshold, ok := lint.ParseSeverity(failOn)
	if !ok {
		threshold = lint.SeverityError
	}
	if max, found := report.MaxSeverity(); found && max <= threshold {
		return fmt.Errorf("found issues at %s severity or above", threshold)
	}
	return nil
}

// ruleExists reports whether a rule ID is registered.
func ruleExists(id string) bool {
	_, ok := lint.GetByID(id)
	return ok
}

// collectSourcePaths expands files and directories into the list of
// files to analyze, in argument order. Directories are walked lexically,
// keeping only the configured extensions and skipping hidden entries.
func collectSourcePaths(args []string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = config.DefaultSourceExts
	}
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot analyze %s: %w", arg, err)
		}
		if !info.IsDir() {
			// Explicit files are analyzed regardless of extension.
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if path != arg && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return nil
			}
			if extSet[filepath.Ext(name)] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// buildLintConfig merges the project configuration and CLI flags into a
// lint.Config. CLI flags take precedence.
func buildLintConfig(cfg *config.Config, opts *AnalyzeOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule is given, disable everything else.
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			enabled[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.AllRules() {
			if !enabled[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg
}

// filterReportBySeverity drops findings below the reporting threshold.
// Parse failures always survive the filter.
func filterReportBySeverity(report *lint.BatchReport, severity string) {
	threshold, ok := lint.ParseSeverity(severity)
	if !ok {
		threshold = lint.SeverityHint
	}
	for _, fr := range report.Files {
		var kept []lint.Finding
		for _, f := range fr.Findings {
			if f.Severity <= threshold || f.RuleID == lint.ParseRuleID {
				kept = append(kept, f)
			}
		}
		fr.Findings = kept
	}
}

func renderAnalysisReport(r *output.Renderer, report *lint.BatchReport) {
	if r.EffectiveMode() == output.ModeJSON {
		renderAnalysisJSON(r, report)
		return
	}

	summary := summarize(report)

	anyFindings := false
	for _, fr := range report.Files {
		if !fr.HasFindings() {
			continue
		}
		anyFindings = true
		r.Println(r.Styles().FilePath.Render(fr.Path))
		for _, f := range fr.Findings {
			loc := fmt.Sprintf("%d:%d", f.Span.Start.Line, f.Span.Start.Column)
			if f.Span.Start.Line == 0 {
				loc = "-"
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityLabel(r, f.Severity),
				r.Styles().Bold.Render(f.RuleID),
				f.Message,
			)
			if f.Suggestion != "" {
				r.Printf("  %s\n", r.Styles().Muted.Render("         suggestion: "+f.Suggestion))
			}
		}
		r.Println("")
	}

	for _, path := range report.Skipped {
		r.StatusLine(path, "warning", "skipped (cancelled)")
	}

	if !anyFindings {
		r.Success(fmt.Sprintf("No issues found in %d files", summary.FilesAnalyzed))
		return
	}

	parts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(parts, ", "), summary.FilesAnalyzed)
}

func renderAnalysisJSON(r *output.Renderer, report *lint.BatchReport) {
	doc := output.AnalysisOutput{
		RunID:   report.RunID,
		Summary: summarize(report),
		Skipped: report.Skipped,
	}
	for _, fr := range report.Files {
		fileResult := output.AnalysisFileResult{
			Path:        fr.Path,
			ParseFailed: fr.ParseFailed,
		}
		for _, f := range fr.Findings {
			fileResult.Findings = append(fileResult.Findings, output.AnalysisFinding{
				RuleID:     f.RuleID,
				Severity:   f.Severity.String(),
				Message:    f.Message,
				Line:       f.Span.Start.Line,
				Column:     f.Span.Start.Column,
				Suggestion: f.Suggestion,
				DocsURL:    f.DocumentationURL,
			})
		}
		doc.Files = append(doc.Files, fileResult)
	}
	_ = r.JSON(doc)
}

func summarize(report *lint.BatchReport) output.AnalysisSummary {
	summary := output.AnalysisSummary{
		FilesAnalyzed: len(report.Files),
		FilesSkipped:  len(report.Skipped),
		TotalIssues:   report.TotalFindings(),
	}
	counts := report.CountBySeverity()
	summary.Errors = counts[lint.SeverityError]
	summary.Warnings = counts[lint.SeverityWarning]
	summary.Info = counts[lint.SeverityInfo]
	summary.Hints = counts[lint.SeverityHint]
	return summary
}

func severityLabel(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
