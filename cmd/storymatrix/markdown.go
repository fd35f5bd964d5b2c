package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/markdown"
	"go.uber.org/zap"
)

func (a *app) markdownCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "markdown",
		Short: "Export every workbook sheet as a markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Workbook.Path
			wb, err := storymatrix.Load(path)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				defer file.Close()
				w = file
			}
			if err := markdown.Write(w, wb, path); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if output != "" {
				a.log.Info("wrote markdown", zap.String("path", output), zap.Int("sheets", len(wb.Sheets)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}
