package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simplicity/check"
)

// errNonSimple is returned under --strict when any verdict is non-simple.
var errNonSimple = errors.New("non-simple rules or nets found")

type checkFlags struct {
	json    bool
	dotDir  string
	workers int
	strict  bool
	watch   bool
	noColor bool
	metrics bool
	include []string
	exclude []string
}

func newCheckCmd(a *app) *cobra.Command {
	f := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check FILE|DIR...",
		Short: "Check every rule and net in the given files",
		Long: `Check builds a constraint network for every rule and net, saturates it and
prints one verdict per rule ("rule A B: simple") and per net.

Directories are walked for files matching --include (default **.inet).

Examples:
  simplicity check rules.inet
  simplicity check --workers 8 --dot out/ examples/
  simplicity check --strict --json rules.inet
  simplicity check --watch rules.inet`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.json, "json", false, "print reports as JSON")
	fl.StringVar(&f.dotDir, "dot", "", "write one Graphviz file per verdict into `DIR`")
	fl.IntVar(&f.workers, "workers", 0, "rules and nets checked in parallel")
	fl.BoolVar(&f.strict, "strict", false, "exit with status 2 if any verdict is non-simple")
	fl.BoolVar(&f.watch, "watch", false, "re-check files when they change")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fl.BoolVar(&f.metrics, "metrics", false, "print collected metrics after the run")
	fl.StringSliceVar(&f.include, "include", nil, "glob for files to check inside directories")
	fl.StringSliceVar(&f.exclude, "exclude", nil, "glob for paths to skip inside directories")
	return cmd
}

// merge applies the flags the user set on top of the configuration.
func (f *checkFlags) merge(cmd *cobra.Command, cfg Config) Config {
	changed := cmd.Flags().Changed
	if changed("dot") {
		cfg.DOTDir = f.dotDir
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("no-color") {
		cfg.NoColor = f.noColor
	}
	if changed("include") {
		cfg.Include = f.include
	}
	if changed("exclude") {
		cfg.Exclude = f.exclude
	}
	return cfg
}

func (a *app) runCheck(cmd *cobra.Command, f *checkFlags, args []string) error {
	cfg := f.merge(cmd, a.cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	sel, err := newSelector(cfg.Include, cfg.Exclude)
	if err != nil {
		return err
	}
	files, err := sel.expand(args)
	if err != nil {
		return err
	}

	opts := []check.Option{
		check.WithLogger(a.log),
		check.WithWorkers(cfg.Workers),
		check.WithDOT(cfg.DOTDir != ""),
	}
	var reg *prometheus.Registry
	if f.metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, check.WithRegistry(reg))
	}
	if f.watch {
		opts = append(opts, check.WithCache(cfg.CacheSize))
	}
	c, err := check.New(opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	p := newPrinter(a.stdout, cfg.NoColor, f.json)
	session := &session{app: a, cfg: cfg, checker: c, printer: p}

	if f.watch {
		for _, path := range files {
			session.checkOne(ctx, path)
		}
		return a.watch(ctx, files, cfg.Debounce, func(path string) { session.checkOne(ctx, path) })
	}

	reps := make([]*check.Report, 0, len(files))
	for _, path := range files {
		rep, err := c.CheckFile(ctx, path)
		if err != nil {
			return err
		}
		reps = append(reps, rep)
	}
	if err = session.emit(reps); err != nil {
		return err
	}
	if reg != nil {
		if err = printMetrics(a.stdout, reg); err != nil {
			return err
		}
	}

	if cfg.Strict {
		for _, rep := range reps {
			if !rep.Simple() {
				return fmt.Errorf("%w: %d in %s", errNonSimple, rep.NonSimple(), rep.Source)
			}
		}
	}
	return nil
}

// session is one invocation of the check command.
type session struct {
	app     *app
	cfg     Config
	checker *check.Checker
	printer *printer
}

// emit prints reports and writes their DOT files.
func (s *session) emit(reps []*check.Report) error {
	if err := s.printer.reports(reps); err != nil {
		return err
	}
	if s.cfg.DOTDir == "" {
		return nil
	}
	for _, rep := range reps {
		written, err := writeDOT(s.cfg.DOTDir, rep)
		if err != nil {
			return fmt.Errorf("dot: %w", err)
		}
		s.app.log.Debug("dot written", "source", rep.Source, "files", len(written))
	}
	return nil
}

// checkOne is the watch-mode step: failures are printed, not returned.
func (s *session) checkOne(ctx context.Context, path string) {
	rep, err := s.checker.CheckFile(ctx, path)
	if err == nil {
		err = s.emit([]*check.Report{rep})
	}
	if err != nil {
		s.printer.problem(err)
	}
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}
	return nil
}
