package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/rfcgen/genconfig"
	"github.com/randalmurphal/rfcgen/render"
	"github.com/randalmurphal/rfcgen/table"
)

var generateConfig string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run every generation declared in a config file",
	Long: `Loads a TOML or YAML config describing table-to-type generations and
renders each one, writing to the configured output path (or stdout when
none is set).`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "rfcgen.toml", "generation config file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := genconfig.Load(generateConfig)
	if err != nil {
		return err
	}

	for _, gen := range cfg.Generations {
		if err := runOneGeneration(cmd, gen); err != nil {
			return fmt.Errorf("generate %s: %w", gen.Type, err)
		}
		if gen.Out != "" {
			fmt.Fprintf(os.Stderr, "rfcgen: %s -> %s\n", gen.Table, gen.Out)
		}
	}
	return nil
}

func runOneGeneration(cmd *cobra.Command, gen genconfig.Generation) error {
	text, err := os.ReadFile(gen.Table)
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}

	tbl, err := table.Extract(string(text))
	if err != nil {
		return err
	}
	if verbose {
		reportDiagnostics(tbl)
	}

	src, err := render.Enum(render.EnumSpec{
		Name:    gen.Type,
		Repr:    gen.Repr,
		Doc:     gen.Doc,
		Records: tbl.Records,
	})
	if err != nil {
		return err
	}

	if gen.Out == "" {
		fmt.Fprint(cmd.OutOrStdout(), src)
		return nil
	}
	if err := os.WriteFile(gen.Out, []byte(src), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
