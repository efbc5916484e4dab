package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/rfcgen/table"
)

var (
	tableFile string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "rfcgen",
	Short: "Generate protocol registry code from RFC assignment tables",
	Long: `rfcgen turns RFC-style registry tables into source artifacts.

The assignment table is read from stdin (or --file) and parsed into
(code, symbol, description) records; subcommands render those records
into an enumerated type, dump them as data, or scaffold the boilerplate
around a new record type.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rfcgen: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tableFile, "file", "f", "", "read the assignment table from a file instead of stdin")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report skipped table rows on stderr")
}

// readTable reads the assignment table from --file or stdin.
func readTable() (string, error) {
	if tableFile != "" {
		data, err := os.ReadFile(tableFile)
		if err != nil {
			return "", fmt.Errorf("read table: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read table from stdin: %w", err)
	}
	return string(data), nil
}

// extractTable parses the input table and, under --verbose, reports its
// diagnostics on stderr.
func extractTable() (*table.Table, error) {
	text, err := readTable()
	if err != nil {
		return nil, err
	}

	tbl, err := table.Extract(text)
	if err != nil {
		return nil, err
	}
	if verbose {
		reportDiagnostics(tbl)
	}
	return tbl, nil
}

func reportDiagnostics(tbl *table.Table) {
	for _, s := range tbl.Skipped {
		fmt.Fprintf(os.Stderr, "rfcgen: skipped line %d (%s): %s\n", s.Line, s.Reason, s.Text)
	}
	for _, line := range tbl.Unordered {
		fmt.Fprintf(os.Stderr, "rfcgen: line %d is out of order; source table may be unsorted\n", line)
	}
}
