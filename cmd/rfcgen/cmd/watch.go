package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/rfcgen/render"
	"github.com/randalmurphal/rfcgen/table"
	"github.com/randalmurphal/rfcgen/watch"
)

var (
	watchOut  string
	watchRepr string
)

var watchCmd = &cobra.Command{
	Use:   "watch NAME",
	Short: "Regenerate an enumerated type whenever its table changes",
	Long: `Watches the table file given with --file and regenerates the enumerated
type NAME into --out after every save, until interrupted. A table that is
momentarily malformed mid-edit is reported and skipped, not fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output file (required)")
	watchCmd.Flags().StringVar(&watchRepr, "repr", "uint16", "underlying integer type of the enum")
	watchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if tableFile == "" {
		return errors.New("watch requires --file; stdin cannot be watched")
	}
	name := args[0]

	w, err := watch.New(tableFile)
	if err != nil {
		return err
	}
	defer w.Close()
	w.OnError = func(err error) {
		fmt.Fprintf(os.Stderr, "rfcgen: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = w.Run(ctx, func() error {
		return regenerate(name, tableFile, watchOut)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func regenerate(name, in, out string) error {
	text, err := os.ReadFile(in)
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
		Name:    name,
		Repr:    watchRepr,
		Records: tbl.Records,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, []byte(src), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "rfcgen: regenerated %s from %s\n", out, in)
	return nil
}
