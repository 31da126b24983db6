package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"roimark/internal/history"
	"roimark/internal/report"
	"roimark/internal/roi"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded engine runs",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryPruneCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnabledStore(ctx, func(store *history.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
					return nil
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						shortRunID(run.ID),
						run.CreatedAt.Local().Format(time.DateTime),
						run.Sample,
						strconv.Itoa(run.Distal + 1),
						strconv.Itoa(run.Proximal + 1),
						string(run.Status),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Run", "When", "Sample", "Distal", "Proximal", "Status"}, rows, 4, 5))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run with its per-region results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnabledStore(ctx, func(store *history.Store) error {
				run, err := store.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run %s (%s)\n", run.ID, run.CreatedAt.Local().Format(time.DateTime))
				fmt.Fprintf(out, "  Sample:   %s\n", run.Sample)
				fmt.Fprintf(out, "  Input:    %s\n", run.InputDir)
				fmt.Fprintf(out, "  Output:   %s\n", run.OutputDir)
				fmt.Fprintf(out, "  Junction: distal slice %d, proximal slice %d of %d\n",
					run.Distal+1, run.Proximal+1, run.SliceCount)
				fmt.Fprintf(out, "  Status:   %s\n", run.Status)
				if run.ErrorText != "" {
					printError(out, "  Error:    %s", run.ErrorText)
				}

				rows := make([][]string, 0, len(run.Results))
				for _, result := range run.Results {
					detail := result.Dest
					if result.Reason != "" {
						detail = result.Reason
					}
					rows = append(rows, []string{
						result.ROIName,
						report.StatusCaption(roi.Status(result.Status)),
						strconv.Itoa(result.Copied),
						detail,
					})
				}
				fmt.Fprintln(out, renderTable([]string{"ROI", "Status", "Files", "Detail"}, rows, 3))
				return nil
			})
		},
	}
}

func newHistoryPruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete runs beyond the configured keep_runs limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return withEnabledStore(ctx, func(store *history.Store) error {
				deleted, err := store.Prune(cmd.Context(), cfg.History.KeepRuns)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d run(s); keeping the most recent %d.\n",
					deleted, cfg.History.KeepRuns)
				return nil
			})
		},
	}
}

func withEnabledStore(ctx *commandContext, fn func(store *history.Store) error) error {
	return ctx.withStore(func(store *history.Store) error {
		if store == nil {
			return errors.New("run history is disabled; set history.enabled = true in the configuration")
		}
		return fn(store)
	})
}

// shortRunID trims UUIDs to their first group for table display.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
