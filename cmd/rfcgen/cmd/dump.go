package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/rfcgen/table"
)

var (
	dumpFormat string
	dumpSchema bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the parsed assignment records as data",
	Long: `Reads an assignment table and prints the parsed records, placeholder
rows included, as YAML (default) or JSON. With --schema, prints the JSON
Schema of the record format instead of reading any input.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "yaml", "output format: yaml or json")
	dumpCmd.Flags().BoolVar(&dumpSchema, "schema", false, "print the record JSON Schema and exit")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if dumpSchema {
		data, err := json.MarshalIndent(table.Schema(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	tbl, err := extractTable()
	if err != nil {
		return err
	}

	switch dumpFormat {
	case "yaml":
		data, err := yaml.Marshal(tbl.Records)
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "json":
		data, err := json.MarshalIndent(tbl.Records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", dumpFormat)
	}
	return nil
}
