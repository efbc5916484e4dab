package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/rfcgen/render"
)

var enumRepr string

var enumCmd = &cobra.Command{
	Use:   "enum NAME",
	Short: "Render an enumerated type from an assignment table",
	Long: `Reads an assignment table and renders an enumerated type named NAME,
one constant per assigned code, with the table description preserved as
a trailing comment. Reserved, unassigned, and range rows are listed in
the type's doc comment instead of becoming constants.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnum,
}

func init() {
	enumCmd.Flags().StringVar(&enumRepr, "repr", "uint16", "underlying integer type of the enum")
	rootCmd.AddCommand(enumCmd)
}

func runEnum(cmd *cobra.Command, args []string) error {
	tbl, err := extractTable()
	if err != nil {
		return err
	}

	src, err := render.Enum(render.EnumSpec{
		Name:    args[0],
		Repr:    enumRepr,
		Records: tbl.Records,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), src)
	return nil
}
