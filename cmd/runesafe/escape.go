package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runesafe/vec"
)

type escapeFlags struct {
	display bool
	ascii   bool
	bytes   bool
	latin1  bool
}

func newEscapeCmd() *cobra.Command {
	var flags escapeFlags

	cmd := &cobra.Command{
		Use:   "escape [strings...]",
		Short: "Rewrite inputs into display-safe escaped form",
		Long: `Rewrite each input so it prints safely on a terminal: control characters
become backslash escapes, malformed bytes become \xHH, and unprintable code
points become \uXXXX or \UXXXXXXXX.`,
		RunE: flags.runEscapeCommand,
	}

	cmd.Flags().BoolVar(&flags.display, "display", false, "Optimize for display: drop ignorables, pad emoji")
	cmd.Flags().BoolVar(&flags.ascii, "ascii", false, "Force ASCII output, escaping every multi-byte character")
	cmd.Flags().BoolVar(&flags.bytes, "bytes", false, "Treat inputs as raw bytes instead of UTF-8")
	cmd.Flags().BoolVar(&flags.latin1, "latin1", false, "Treat inputs as Latin-1 and convert before escaping")
	cmd.MarkFlagsMutuallyExclusive("bytes", "latin1")

	return cmd
}

func (f *escapeFlags) runEscapeCommand(cmd *cobra.Command, args []string) error {
	ins, err := inputs(cmd, args)
	if err != nil {
		return err
	}
	enc := vec.UTF8
	switch {
	case f.bytes:
		enc = vec.Bytes
	case f.latin1:
		enc = vec.Latin1
	}
	elems := make([]vec.String, len(ins))
	for i, in := range ins {
		elems[i] = vec.String{Data: []byte(in), Encoding: enc}
	}
	out, err := vec.Encode(&vec.Strings{Elems: elems}, vec.EncodeOptions{
		Display: f.display,
		UTF8:    !f.ascii,
	})
	if err != nil {
		return err
	}
	for _, el := range out.Elems {
		fmt.Fprintln(cmd.OutOrStdout(), string(el.Data))
	}
	return nil
}
