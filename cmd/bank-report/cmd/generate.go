package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pigeonworks-llc/bank-report/pkg/config"
	"github.com/pigeonworks-llc/bank-report/pkg/ledger"
	"github.com/pigeonworks-llc/bank-report/pkg/logging"
	"github.com/pigeonworks-llc/bank-report/pkg/ofx"
	"github.com/pigeonworks-llc/bank-report/pkg/pathutil"
	"github.com/pigeonworks-llc/bank-report/pkg/report"
	"github.com/pigeonworks-llc/bank-report/pkg/summary"
)

const programName = "bank-report"

// options collects everything a single report run depends on.
type options struct {
	InputFile  string
	ConfigFile string
	Verbosity  int
	// Output and TopN override the configuration when set.
	Output string
	TopN   *int
	DryRun bool
	// WorkDir is where relative report and log paths are placed. Empty means the current directory.
	WorkDir string
	Stdout  io.Writer
}

type sourceFactory func(logger *slog.Logger) ledger.Source

func newOFXSource(logger *slog.Logger) ledger.Source {
	return ofx.NewSource(logger)
}

// generate checks the input, reads the statement, and writes the report.
func generate(opts options, newSource sourceFactory) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	if err := pathutil.New(pathutil.Config{WorkDir: opts.WorkDir}).CheckInput(opts.InputFile, ofx.Extension); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.Output != "" {
		cfg.Report.Output = opts.Output
	}
	if opts.TopN != nil {
		cfg.Report.TopN = *opts.TopN
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	pathResolver := pathutil.New(pathutil.Config{
		WorkDir:    opts.WorkDir,
		ReportPath: cfg.Report.Output,
		LogPath:    cfg.Log.File,
	})

	logger, err := logging.New(logging.Config{
		Verbosity: opts.Verbosity,
		Output:    stdout,
		FilePath:  pathResolver.GetLogPath(),
		Program:   programName,
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	if opts.Verbosity > 1 {
		printArguments(stdout, opts)
	}

	logger.Info("Reading statement", "path", opts.InputFile)
	txns, err := newSource(logger.Logger).Parse(opts.InputFile)
	if err != nil {
		logger.Error("Failed to read statement", "path", opts.InputFile, "error", err)
		return err
	}

	s := summary.Aggregate(txns)
	logger.Info("Aggregated transactions",
		"transactions", s.Count(),
		"months", s.Len(),
		"total", s.Total.String(),
	)
	for _, g := range s.Groups {
		logger.Debug("Month",
			"month", g.Key.String(),
			"transactions", len(g.Transactions),
			"sum", g.Sum.String(),
		)
	}

	reportOpts := report.Options{
		Title:  cfg.Report.Title,
		TopN:   cfg.Report.TopN,
		Policy: cfg.SelectionPolicy(),
	}

	if opts.DryRun {
		fmt.Fprintf(stdout, "[DRY RUN] Would write %s\n", pathResolver.GetReportPath())
		if err := report.Render(stdout, s, reportOpts); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	} else {
		repo := report.NewFileRepository(pathResolver.GetReportPath())
		if err := report.Save(repo, s, reportOpts); err != nil {
			logger.Error("Failed to write report", "path", repo.Path(), "error", err)
			return err
		}
		logger.Info("Report written", "path", repo.Path())
	}

	fmt.Fprintln(stdout, "Generate report: Done")
	return nil
}

func printArguments(w io.Writer, opts options) {
	fmt.Fprintln(w, "arguments:")
	fmt.Fprintf(w, "  * input_file: %s\n", opts.InputFile)
	fmt.Fprintf(w, "  * verbose   : %d\n", opts.Verbosity)
}
