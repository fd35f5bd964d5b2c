package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/reconcile"
)

func (a *app) routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the routes found in the route tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := a.sourceRoutes()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range rs {
				fmt.Fprintln(out, r)
			}
			fmt.Fprintf(out, "Total: %d routes\n", len(rs))
			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	var sheets []string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare source routes with the routes recorded in the workbook",
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

			recorded, err := m.RecordedRoutes(sheets...)
			if err != nil {
				return err
			}
			diff := reconcile.Compare(source, recorded)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source routes: %d, recorded routes: %d\n\n", len(source), len(recorded))
			fmt.Fprintln(out, "Missing in code (should delete):")
			for _, r := range diff.MissingInCode {
				fmt.Fprintf(out, "  - %s\n", r)
			}
			fmt.Fprintln(out, "\nNew in code (should add):")
			for _, r := range diff.NewInCode {
				fmt.Fprintf(out, "  + %s\n", r)
			}
			fmt.Fprintf(out, "\nMissing: %d, new: %d\n", len(diff.MissingInCode), len(diff.NewInCode))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&sheets, "sheet", nil, "Sheets to read (default: every role sheet)")
	return cmd
}
