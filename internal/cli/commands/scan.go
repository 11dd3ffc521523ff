package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/locklint/internal/cli/config"
	"github.com/leapstack-labs/locklint/internal/cli/output"
	"github.com/leapstack-labs/locklint/internal/walker"
	"github.com/leapstack-labs/locklint/pkg/lint"
	_ "github.com/leapstack-labs/locklint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/locklint/pkg/scan"
)

// ErrViolationsFound is returned by the scan command when the report is not
// clean; main maps it to exit code 1.
var ErrViolationsFound = errors.New("violations found")

// ScanOptions holds options for the scan command.
type ScanOptions struct {
	Path        string   // Directory to scan
	Format      string   // Output format: text, markdown, json
	Disable     []string // Rule IDs to disable
	Strict      bool     // Require semver-parseable version specifiers
	NoGitignore bool     // Do not honor .gitignore patterns
	Jobs        int      // Number of files scanned concurrently
	Watch       bool     // Rescan on file changes
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a directory for unpinned package-manager invocations",
		Long: `Scan Dockerfiles, Markdown files, shell scripts and CI workflow files
for npm, pnpm, yarn and bun invocations that ignore the lockfile or
install packages without a pinned version.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Scan the current directory
  locklint scan

  # Scan a specific path
  locklint scan ./services/web

  # Output as JSON
  locklint scan --format json

  # Disable specific rules
  locklint scan --disable NPM001,YARN002

  # Require pins to be valid semver
  locklint scan --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runScan(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Require version specifiers to parse as semver")
	cmd.Flags().BoolVar(&opts.NoGitignore, "no-gitignore", false, "Do not honor .gitignore patterns")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of files scanned concurrently")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Rescan whenever a file under the path changes")

	return cmd
}

func runScan(cmd *cobra.Command, opts *ScanOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	root := cfg.Root
	if opts.Path != "" {
		root = opts.Path
	}

	jobs := cfg.Jobs
	if opts.Jobs > 0 {
		jobs = opts.Jobs
	}

	lintCfg := buildLintConfig(cfg, opts)
	scanner := scan.NewScanner(lintCfg)

	walkOpts := walker.Options{
		Root:             root,
		RespectGitignore: cfg.RespectGitignore && !opts.NoGitignore,
		Logger:           logger,
	}

	if opts.Watch {
		return watchScan(cmd.Context(), scanner, walkOpts, jobs, r, logger)
	}

	report, err := executeScan(cmd.Context(), scanner, walkOpts, jobs)
	if err != nil {
		return err
	}
	if err := renderReport(r, report); err != nil {
		return err
	}
	if !report.Success() {
		return ErrViolationsFound
	}
	return nil
}

// buildLintConfig merges rule settings from the config file with the
// command's flags. Flags add to the file's disabled list rather than
// replacing it.
func buildLintConfig(cfg *config.Config, opts *ScanOptions) *lint.Config {
	lintCfg := lint.NewConfig()
	lintCfg.Strict = cfg.Strict || opts.Strict
	for _, id := range cfg.Lint.Disabled {
		lintCfg.Disable(id)
	}
	for _, id := range opts.Disable {
		lintCfg.Disable(id)
	}
	return lintCfg
}

func executeScan(ctx context.Context, scanner *scan.Scanner, walkOpts walker.Options, jobs int) (*scan.Report, error) {
	files, err := walker.Discover(walkOpts)
	if err != nil {
		return nil, err
	}
	return scanner.Scan(ctx, files, jobs)
}

// renderReport writes the report in the renderer's effective mode.
func renderReport(r *output.Renderer, report *scan.Report) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeMarkdown:
		renderMarkdown(r, report)
	default:
		renderText(r, report)
	}
	return nil
}

func renderText(r *output.Renderer, report *scan.Report) {
	styles := r.Styles()

	for _, f := range report.Files {
		r.Println(styles.Error.Render("✗ ") + styles.FilePath.Render(f.Path))
		for _, v := range f.Violations {
			r.Printf("  Line %d: %s\n", v.Line, v.Message)
			r.Println(styles.Muted.Render("  > " + v.Raw))
		}
		r.Println("")
	}

	if report.Success() {
		r.Success(fmt.Sprintf("No violations found (%d file(s) scanned)", report.FilesScanned))
		return
	}

	if len(report.Files) > 1 {
		renderSummaryTable(r, report)
		r.Println("")
	}
	r.Failure(fmt.Sprintf("Found %d violation(s) in %d file(s)",
		report.TotalViolations(), report.FilesWithViolations()))
}

// renderSummaryTable prints a per-file violation count table.
func renderSummaryTable(r *output.Renderer, report *scan.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Violations"})
	for _, f := range report.Files {
		t.AppendRow(table.Row{f.Path, len(f.Violations)})
	}
	t.AppendFooter(table.Row{"Total", report.TotalViolations()})
	t.Render()
}

func renderMarkdown(r *output.Renderer, report *scan.Report) {
	r.Println(output.FormatHeader(1, "Scan Report"))
	r.Println("")

	for _, f := range report.Files {
		r.Println(output.FormatHeader(2, f.Path))
		r.Println("")
		for _, v := range f.Violations {
			r.Printf("- Line %d: %s (`%s`)\n", v.Line, v.Message, v.RuleID)
			r.Println("  > `" + v.Raw + "`")
		}
		r.Println("")
	}

	r.Println(output.FormatKeyValue("Files scanned", fmt.Sprintf("%d", report.FilesScanned)))
	r.Println(output.FormatKeyValue("Files with violations", fmt.Sprintf("%d", report.FilesWithViolations())))
	r.Println(output.FormatKeyValue("Total violations", fmt.Sprintf("%d", report.TotalViolations())))
}

// debounceWindow coalesces bursts of filesystem events into one rescan.
const debounceWindow = 250 * time.Millisecond

// watchScan rescans on every filesystem change under the root until the
// context is cancelled. Watch mode always exits cleanly; the exit signal is
// only meaningful for one-shot scans.
func watchScan(ctx context.Context, scanner *scan.Scanner, walkOpts walker.Options, jobs int, r *output.Renderer, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, walkOpts.Root); err != nil {
		return err
	}

	rescan := func() {
		report, err := executeScan(ctx, scanner, walkOpts, jobs)
		if err != nil {
			logger.Warn("scan failed", "error", err)
			return
		}
		_ = renderReport(r, report)
	}

	rescan()
	r.Println("Watching for changes... (Ctrl+C to stop)")

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need watching too.
			if ev.Op&fsnotify.Create != 0 {
				_ = addWatchDirs(watcher, ev.Name)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-pending:
			rescan()
		}
	}
}

// addWatchDirs registers path and every directory below it, skipping the
// directories discovery never descends into.
func addWatchDirs(watcher *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		switch d.Name() {
		case ".git", "node_modules":
			return filepath.SkipDir
		}
		_ = watcher.Add(p)
		return nil
	})
}
