package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// maxMismatches caps the mismatches printed by roles verify.
const maxMismatches = 10

func (a *app) rolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Maintain the role matrix sheet",
	}
	cmd.AddCommand(a.rolesSyncCmd(), a.rolesVerifyCmd())
	return cmd
}

func (a *app) rolesSyncCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync role matrix rows with the route tree",
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

			res, err := m.SyncRoleMatrix(source)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Skipped {
				fmt.Fprintf(out, "%s: skipped\n", res.Sheet)
				return nil
			}
			fmt.Fprintf(out, "%s: deleted %d, added %d, kept %d\n",
				res.Sheet, len(res.Deleted), len(res.Added), res.Kept)
			return a.save(m.File(), outputOr(output, a.cfg.OutputPath()))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output workbook (default: overwrite the input)")
	return cmd
}

func (a *app) rolesVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the role matrix against the role sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.openMatrix()
			if err != nil {
				return err
			}
			defer m.File().Close()

			report, err := m.VerifyRoleMatrix()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Correct routes: %d/%d\n", report.Correct, report.Total)
			fmt.Fprintf(out, "Wrong routes: %d/%d\n", len(report.Mismatches), report.Total)
			if len(report.Mismatches) == 0 {
				fmt.Fprintln(out, "Role matrix matches the role sheets.")
				return nil
			}
			fmt.Fprintln(out)
			for i, mm := range report.Mismatches {
				if i == maxMismatches {
					fmt.Fprintf(out, "... and %d more\n", len(report.Mismatches)-maxMismatches)
					break
				}
				fmt.Fprintf(out, "Route: %s\n", mm.Route)
				fmt.Fprintf(out, "  Expected: %v\n", mm.Expected)
				fmt.Fprintf(out, "  Actual:   %v\n", mm.Actual)
				if len(mm.Missing) > 0 {
					fmt.Fprintf(out, "  Missing:  %v\n", mm.Missing)
				}
				if len(mm.Extra) > 0 {
					fmt.Fprintf(out, "  Extra:    %v\n", mm.Extra)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
