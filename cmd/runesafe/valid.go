package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runesafe"
)

func newValidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valid [strings...]",
		Short: "Check that inputs are well-formed UTF-8",
		Long: `Check each input for UTF-8 well-formedness. Valid inputs print "valid";
invalid inputs print the offset and value of the first offending byte.
The exit status is 1 when any input is invalid.`,
		RunE: runValidCommand,
	}
}

func runValidCommand(cmd *cobra.Command, args []string) error {
	ins, err := inputs(cmd, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, in := range ins {
		if verr := runesafe.ValidateString(in); verr != nil {
			fmt.Fprintln(cmd.OutOrStdout(), verr)
			bad++
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d inputs invalid", bad, len(ins))
	}
	return nil
}
