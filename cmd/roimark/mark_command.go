package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"roimark/internal/selection"
	"roimark/internal/stack"
)

func newMarkCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <input-dir>",
		Short: "Interactively mark the junction slices, then copy all regions",
		Long: "Mark walks the two-step junction selection on the terminal: first the distal\n" +
			"TF junction, then the proximal one (which must lie after the distal). Once both\n" +
			"are marked the configured regions are copied immediately.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := stack.Scan(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sample %q: %d slices\n", stack.SampleName(args[0]), st.Len())
			warnUnkeyed(out, st)

			sel, err := promptSelection(cmd, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Distal TF junction: slice %d, proximal TF junction: slice %d\n",
				sel.Distal+1, sel.Proximal+1)

			return runBatch(cmd, ctx, args[0], st, sel)
		},
	}
}

// promptSelection drives the marking state machine from terminal input.
// Positions are entered 1-based; "q" aborts.
func promptSelection(cmd *cobra.Command, st stack.Stack) (selection.Selection, error) {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	selector := selection.NewSelector()

	for {
		if sel, ok := selector.Selection(); ok {
			return sel, nil
		}

		fmt.Fprintf(out, "%s (1-%d, q to quit): ", phasePrompt(selector.Phase()), st.Len())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return selection.Selection{}, fmt.Errorf("read selection: %w", err)
			}
			return selection.Selection{}, errors.New("selection aborted: input closed")
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "q") {
			return selection.Selection{}, errors.New("selection aborted by operator")
		}

		slice, err := strconv.Atoi(input)
		if err != nil || slice < 1 || slice > st.Len() {
			printWarn(out, "Enter a slice number between 1 and %d", st.Len())
			continue
		}

		event := selector.Mark(slice - 1)
		if !event.Accepted {
			printWarn(out, "%s. Please select again.", capitalize(event.Reason))
			continue
		}
		printOK(out, "Marked slice %d (%s)", slice, st.File(slice-1))
	}
}

func phasePrompt(phase selection.Phase) string {
	if phase == selection.PhaseAwaitingProximal {
		return "Mark the proximal TF junction"
	}
	return "Mark the distal TF junction"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
