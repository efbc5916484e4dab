package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/rfcgen/scaffold"
)

var (
	recordPackage string
	recordRFC     string
)

var recordCmd = &cobra.Command{
	Use:   "record NAME",
	Short: "Scaffold the record-data struct for a new record type",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&recordPackage, "package", "rfc", "package clause of the generated file")
	recordCmd.Flags().StringVar(&recordRFC, "rfc", "", "defining document named in the header comment")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	spec := scaffold.NewRecordSpec(args[0])
	spec.Package = recordPackage
	spec.RFC = recordRFC

	src, err := scaffold.Record(spec)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), src)
	return nil
}
