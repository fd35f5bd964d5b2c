package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
)

func (a *app) verifyStoriesCmd() *cobra.Command {
	var doc string
	cmd := &cobra.Command{
		Use:   "verify-stories",
		Short: "Compare story counts between the BA document and the role sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := outputOr(doc, a.cfg.Stories)
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("%w: %s", storymatrix.ErrFileNotFound, path)
				}
				return err
			}
			m, err := a.openMatrix()
			if err != nil {
				return err
			}
			defer m.File().Close()

			counts, err := m.VerifyStories(data)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			allMatch := true
			var docTotal, sheetTotal int
			for _, c := range counts {
				status := "OK"
				if !c.Match() {
					status = "MISMATCH"
					allMatch = false
				}
				docTotal += c.Document
				sheetTotal += c.Sheet
				fmt.Fprintf(out, "%-8s %s: document=%d, workbook=%d\n", status, c.Role, c.Document, c.Sheet)
			}
			fmt.Fprintf(out, "Total: document=%d, workbook=%d\n", docTotal, sheetTotal)
			if allMatch {
				fmt.Fprintln(out, "All story counts match.")
			} else {
				fmt.Fprintln(out, "Story counts differ.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&doc, "doc", "", "BA user story document (default: the configured stories path)")
	return cmd
}
