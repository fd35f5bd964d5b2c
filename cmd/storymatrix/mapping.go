package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) mapCmd() *cobra.Command {
	var (
		output string
		only   []string
	)
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Mark catalog story mappings on the role sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.openMatrix()
			if err != nil {
				return err
			}
			defer m.File().Close()

			marks, err := m.ApplyStories(only...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, mk := range marks {
				fmt.Fprintf(out, "Mapped %s to %s in %s\n", mk.Route, mk.Target, mk.Sheet)
			}
			return a.save(m.File(), outputOr(output, a.cfg.OutputPath()))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output workbook (default: overwrite the input)")
	cmd.Flags().StringSliceVar(&only, "route", nil, "Only map these routes")
	return cmd
}
