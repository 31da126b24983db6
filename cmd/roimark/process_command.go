package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"roimark/internal/history"
	"roimark/internal/report"
	"roimark/internal/roi"
	"roimark/internal/runner"
	"roimark/internal/selection"
	"roimark/internal/stack"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var distalSlice int
	var proximalSlice int

	cmd := &cobra.Command{
		Use:   "process <input-dir>",
		Short: "Copy all configured regions for known junction slices",
		Long: "Process computes every configured region of interest from the given distal and\n" +
			"proximal junction slices (1-based, as shown by `roimark scan`) and copies the\n" +
			"matching files into the output directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := stack.Scan(args[0])
			if err != nil {
				return err
			}
			warnUnkeyed(cmd.OutOrStdout(), st)

			sel, err := selectionFromSlices(st, distalSlice, proximalSlice)
			if err != nil {
				return err
			}
			return runBatch(cmd, ctx, args[0], st, sel)
		},
	}

	cmd.Flags().IntVar(&distalSlice, "distal", 0, "Distal junction slice number (1-based)")
	cmd.Flags().IntVar(&proximalSlice, "proximal", 0, "Proximal junction slice number (1-based)")
	_ = cmd.MarkFlagRequired("distal")
	_ = cmd.MarkFlagRequired("proximal")
	return cmd
}

// selectionFromSlices converts 1-based slice numbers into a completed
// selection, enforcing the same ordering rules as interactive marking.
func selectionFromSlices(st stack.Stack, distalSlice, proximalSlice int) (selection.Selection, error) {
	for _, slice := range []int{distalSlice, proximalSlice} {
		if slice < 1 || slice > st.Len() {
			return selection.Selection{}, fmt.Errorf("slice %d is outside the stack (1-%d)", slice, st.Len())
		}
	}

	selector := selection.NewSelector()
	if event := selector.Mark(distalSlice - 1); !event.Accepted {
		return selection.Selection{}, errors.New(event.Reason)
	}
	if event := selector.Mark(proximalSlice - 1); !event.Accepted {
		return selection.Selection{}, errors.New(event.Reason)
	}

	sel, ok := selector.Selection()
	if !ok {
		return selection.Selection{}, errors.New("junction selection incomplete")
	}
	return sel, nil
}

// runBatch wires the shared engine flow for the process and mark commands.
func runBatch(cmd *cobra.Command, ctx *commandContext, inputDir string, st stack.Stack, sel selection.Selection) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	return ctx.withStore(func(store *history.Store) error {
		opts := runner.Options{Config: cfg, Logger: logger, Store: store}
		outcome, err := runner.Run(cmd.Context(), opts, inputDir, st, sel)
		if err != nil {
			// Per-region skips are part of the report; reaching here means
			// the batch itself failed. Files already copied stay in place.
			printError(cmd.ErrOrStderr(), "Processing aborted: %v", err)
			return err
		}
		renderReport(cmd, outcome.Report, outcome.RunID)
		return nil
	})
}

func warnUnkeyed(w io.Writer, st stack.Stack) {
	if st.Unkeyed() > 0 {
		printWarn(w, "%d filename(s) have no slice number and sort first under key 0", st.Unkeyed())
	}
}

func renderReport(cmd *cobra.Command, rep roi.Report, runID string) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, report.Render(rep))

	rows := make([][]string, 0, len(rep.Results))
	for _, result := range rep.Results {
		detail := result.Dest
		if result.Status == roi.StatusSkipped {
			detail = result.Reason
		}
		rows = append(rows, []string{
			result.Name,
			report.StatusCaption(result.Status),
			result.Range.String(),
			strconv.Itoa(result.Copied),
			detail,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"ROI", "Status", "Range", "Files", "Detail"}, rows, 4))
	if runID != "" {
		fmt.Fprintf(out, "Run recorded as %s\n", runID)
	}
}
