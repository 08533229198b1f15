package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scalecode-solutions/runesafe/vec"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "runesafe",
		Short: "Validate, measure, and escape UTF-8 text",
		Long: `runesafe validates byte strings as UTF-8, measures their display width in
terminal columns, and rewrites them into display-safe escaped forms.

Inputs are the command line arguments; with no arguments, lines are read
from standard input.`,
		Example: `  runesafe valid 'caf\xc3\xa9'
  runesafe width 'Hello, 世界'
  printf 'caf\xe9' | runesafe escape --latin1
  runesafe inspect '😸!'`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
				vec.SetLogger(logger)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newValidCmd())
	cmd.AddCommand(newWidthCmd())
	cmd.AddCommand(newEscapeCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

// inputs returns the strings to operate on: the command line arguments, or
// lines read from standard input when no arguments are given.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
