package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"roimark/internal/report"
)

func newROIsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rois",
		Short: "Show the configured region definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(cfg.ROIs))
			for _, entry := range cfg.ROIs {
				width := entry.Copy
				if entry.Count > 0 {
					width = entry.Count
				}
				rows = append(rows, []string{
					entry.Name,
					report.AnchorCaption(entry.Anchor),
					strconv.Itoa(entry.Skip),
					strconv.Itoa(width),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Anchor", "Skip", "Slices"}, rows, 3, 4))
			return nil
		},
	}
}
