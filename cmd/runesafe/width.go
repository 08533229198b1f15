package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runesafe/vec"
)

func newWidthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width [strings...]",
		Short: "Measure display width in terminal columns",
		Long: `Measure the number of monospace columns each input occupies on a terminal.
Malformed bytes count as zero columns.`,
		RunE: runWidthCommand,
	}
}

func runWidthCommand(cmd *cobra.Command, args []string) error {
	ins, err := inputs(cmd, args)
	if err != nil {
		return err
	}
	ws, err := vec.Width(vec.New(ins...))
	if err != nil {
		return err
	}
	for i, w := range ws.Values {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", w, ins[i])
	}
	return nil
}
