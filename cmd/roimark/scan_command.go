package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"roimark/internal/stack"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "scan <input-dir>",
		Short: "List the slice stack in a sample directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := stack.Scan(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sample %q: %d slices\n", stack.SampleName(args[0]), st.Len())
			if st.Unkeyed() > 0 {
				printWarn(out, "%d filename(s) have no slice number and sort first under key 0", st.Unkeyed())
			}

			files := st.Files()
			if !showAll && len(files) > 10 {
				rows := make([][]string, 0, 11)
				for i := 0; i < 5; i++ {
					rows = append(rows, []string{strconv.Itoa(i + 1), files[i]})
				}
				rows = append(rows, []string{"...", "..."})
				for i := len(files) - 5; i < len(files); i++ {
					rows = append(rows, []string{strconv.Itoa(i + 1), files[i]})
				}
				fmt.Fprintln(out, renderTable([]string{"Slice", "Filename"}, rows, 1))
				return nil
			}

			rows := make([][]string, 0, len(files))
			for i, name := range files {
				rows = append(rows, []string{strconv.Itoa(i + 1), name})
			}
			fmt.Fprintln(out, renderTable([]string{"Slice", "Filename"}, rows, 1))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "List every slice instead of a head/tail summary")
	return cmd
}
