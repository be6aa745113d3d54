package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/codetidy/codetidy/pkg/lint"
)

// debounceInterval coalesces bursts of filesystem events (editors often
// write a file several times per save).
const debounceInterval = 300 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &AnalyzeOptions{}
	cmd := &cobra.Command{
		Use:   "watch [path...]",
		Short: "Re-run analysis when source files change",
		Long: `Watch source directories and re-run analysis on every change.

Runs one full analysis up front, then watches the given paths (default:
the current directory) and re-analyzes whenever a source file is
written, created, or removed.`,
		Example: `  # Watch the current directory
  codetidy watch

  # Watch a specific tree with stricter reporting
  codetidy watch src/ --severity warning`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity to report: error, warning, info, hint")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of files analyzed in parallel (0 = number of CPUs)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *AnalyzeOptions, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	if len(args) == 0 {
		args = []string{"."}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, arg := range args {
		if err := watchTree(watcher, arg); err != nil {
			return fmt.Errorf("failed to watch %s: %w", arg, err)
		}
	}

	extSet := make(map[string]bool)
	for _, e := range cfg.SourceExts {
		extSet[e] = true
	}
	if len(extSet) == 0 {
		extSet[".src"] = true
	}

	analyze := func(ctx context.Context) {
		paths, err := collectSourcePaths(args, cfg.SourceExts)
		if err != nil {
			r.Error(err.Error())
			return
		}
		sources, err := lint.ReadSources(paths)
		if err != nil {
			r.Error(err.Error())
			return
		}
		lintCfg := buildLintConfig(cfg, opts)
		jobs := effectiveJobs(cfg)
		if opts.Jobs > 0 {
			jobs = opts.Jobs
		}
		report := lint.NewRunner(lint.NewAnalyzer(lintCfg), jobs).Run(ctx, sources)
		filterReportBySeverity(report, opts.Severity)
		renderAnalysisReport(r, report)
		logger.Debug("analysis pass complete",
			"files", len(report.Files), "findings", report.TotalFindings())
	}

	ctx := cmd.Context()
	analyze(ctx)
	r.Println(r.Styles().Muted.Render(
		fmt.Sprintf("Watching %s for changes. Press Ctrl+C to stop.", strings.Join(args, ", "))))

	var debounce *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-rerun:
			analyze(ctx)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories must be added to the watch set.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchTree(watcher, event.Name)
					continue
				}
			}
			if !extSet[filepath.Ext(event.Name)] {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceInterval, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// watchTree recursively adds a path and its subdirectories to the
// watcher, skipping hidden directories.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
