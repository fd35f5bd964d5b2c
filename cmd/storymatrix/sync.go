package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) syncCmd() *cobra.Command {
	var (
		output string
		sheets []string
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Delete stale route rows and append new ones on the role sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.sourceRoutes()
			if err != nil {
				return err
			}
			m, err := a.openMatrix()
			if err != nil {
				return err
			}
			defer m.File().Close()

			results, err := m.SyncRoutes(source, sheets...)
			if err != nil {
				return err
			}
			if _, err := m.UpdateSummary(len(source)); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				if res.Skipped {
					fmt.Fprintf(out, "%s: skipped\n", res.Sheet)
					continue
				}
				fmt.Fprintf(out, "%s: deleted %d, added %d, kept %d\n",
					res.Sheet, len(res.Deleted), len(res.Added), res.Kept)
			}
			return a.save(m.File(), outputOr(output, a.cfg.OutputPath()))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output workbook (default: overwrite the input)")
	cmd.Flags().StringSliceVar(&sheets, "sheet", nil, "Sheets to sync (default: every role sheet)")
	return cmd
}
