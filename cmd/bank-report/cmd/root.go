// Package cmd provides CLI commands for bank-report.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/bank-report/pkg/pathutil"
)

var (
	cfgFile    string
	verbose    int
	outputPath string
	topN       int
	dryRun     bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "bank-report [flags] <ofx input file>",
	Short: "Summarize an OFX bank statement by month",
	Long: `bank-report reads an OFX statement export and writes a markdown report
with the total of each month and its largest credits and debits.

The report is written to report.md in the current directory and is
overwritten on every run.

Example:
  bank-report statement.ofx
  bank-report -vv --top 5 statement.ofx
  bank-report --config bank-report.yaml --dry-run statement.ofx`,
	Args: cobra.ExactArgs(1),
	Run:  runRoot,
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().CountVarP(&verbose, "verbose", "v", "increase output verbosity (1: warning / 2: info / 3: debug)")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file, .env or .yaml (default is .env)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "report file (default is report.md)")
	rootCmd.Flags().IntVar(&topN, "top", 0, "transactions listed in each top/bottom table (default 3)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the report instead of writing it")
}

func runRoot(cmd *cobra.Command, args []string) {
	opts := options{
		InputFile:  args[0],
		ConfigFile: cfgFile,
		Verbosity:  verbose,
		Output:     outputPath,
		DryRun:     dryRun,
		Stdout:     cmd.OutOrStdout(),
	}
	if cmd.Flags().Changed("top") {
		opts.TopN = &topN
	}

	err := generate(opts, newOFXSource)

	var inputErr *pathutil.InputError
	if errors.As(err, &inputErr) {
		fmt.Fprintln(cmd.OutOrStdout(), inputErr)
		os.Exit(1)
	}

	exitOnError(err, "failed to generate report")
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if reportError(slog.Default(), os.Stderr, err, msg) {
		os.Exit(1)
	}
}

// reportError logs err at error level and echoes it to w. It reports whether err was set.
func reportError(logger *slog.Logger, w io.Writer, err error, msg string) bool {
	if err == nil {
		return false
	}
	logger.Error(msg, "error", err)
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
	return true
}
