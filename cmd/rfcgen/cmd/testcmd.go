package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/rfcgen/scaffold"
)

var (
	testPackage string
	testSample  string
)

var testCmd = &cobra.Command{
	Use:   "test NAME",
	Short: "Scaffold the sample-driven test stub for a record type",
	Args:  cobra.ExactArgs(1),
	RunE:  runTest,
}

func init() {
	testCmd.Flags().StringVar(&testPackage, "package", "rfc", "package clause of the generated file")
	testCmd.Flags().StringVar(&testSample, "sample", "", "captured sample file the test decodes")
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	spec := scaffold.NewTestSpec(args[0])
	spec.Package = testPackage
	if testSample != "" {
		spec.SampleFile = testSample
	}

	stub, err := scaffold.Test(spec)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), stub)
	return nil
}
