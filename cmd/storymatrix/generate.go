package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/matrix"
)

func (a *app) generateCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a fresh story matrix workbook from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			f, err := matrix.Generate(cat, a.log)
			if err != nil {
				return err
			}
			defer f.Close()

			path := outputOr(output, a.cfg.OutputPath())
			if err := a.save(f, path); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved to: %s\n", path)
			fmt.Fprintf(out, "Total sheets: %d\n", len(f.GetSheetList()))
			fmt.Fprintf(out, "Total UI pages: %d\n", len(cat.Pages))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output workbook (default: the configured workbook)")
	return cmd
}
