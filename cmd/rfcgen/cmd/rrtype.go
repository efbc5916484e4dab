package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/rfcgen/registry"
)

var rrtypeAll bool

var rrtypeCmd = &cobra.Command{
	Use:   "rrtype",
	Short: "Print the answer record type of a piped JSON response",
	Long: `Reads a JSON-encoded query response from stdin and prints the type of
the first answer record, e.g.:

  dqy CSYNC example.com --json | rfcgen rrtype`,
	Args: cobra.NoArgs,
	RunE: runRRType,
}

func init() {
	rrtypeCmd.Flags().BoolVar(&rrtypeAll, "all", false, "print every answer record type")
	rootCmd.AddCommand(rrtypeCmd)
}

func runRRType(cmd *cobra.Command, _ []string) error {
	if rrtypeAll {
		types, err := registry.AnswerTypes(os.Stdin)
		if err != nil {
			return err
		}
		for _, typ := range types {
			fmt.Fprintln(cmd.OutOrStdout(), typ)
		}
		return nil
	}

	typ, err := registry.AnswerType(os.Stdin)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), typ)
	return nil
}
