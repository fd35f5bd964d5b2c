package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/checklist"
)

func (a *app) checklistCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Build the tester checklist from page data-testid hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			files, err := a.pageFiles()
			if err != nil {
				return err
			}
			pages, err := checklist.Collect(files, cat)
			if err != nil {
				return err
			}
			f, err := checklist.Build(pages, cat, a.log)
			if err != nil {
				return err
			}
			defer f.Close()

			path := outputOr(output, a.cfg.Workbook.Checklist)
			if err := a.save(f, path); err != nil {
				return err
			}
			st := checklist.Summarize(pages, cat.Modules)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved to: %s\n", path)
			fmt.Fprintf(out, "Total pages: %d\n", st.Pages)
			fmt.Fprintf(out, "Total data-testid: %d\n", st.TestIDs)
			fmt.Fprintf(out, "Total sheets: %d\n", len(f.GetSheetList()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output workbook (default: the configured checklist path)")
	return cmd
}
