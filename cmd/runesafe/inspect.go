package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/runesafe"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#666666")).
			Padding(0, 1)
)

const rowFormat = "%-8s %-12s %-10s %-10s %4s  %s"

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [strings...]",
		Short: "Show a per-character breakdown of each input",
		Long: `Show one row per character of each input: byte offset, raw bytes, code
point, display category, column count, and escaped form. Malformed bytes
get their own rows.`,
		RunE: runInspectCommand,
	}
}

func runInspectCommand(cmd *cobra.Command, args []string) error {
	ins, err := inputs(cmd, args)
	if err != nil {
		return err
	}
	for i, in := range ins {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintln(cmd.OutOrStdout(), inspectTable(in))
	}
	return nil
}

func inspectTable(in string) string {
	rows := []string{
		headerStyle.Render(fmt.Sprintf(rowFormat,
			"OFFSET", "BYTES", "CODE", "CATEGORY", "COLS", "ESCAPED")),
	}
	b := []byte(in)
	for i := 0; i < len(b); {
		r, n, ok := runesafe.Decode(b[i:])
		if !ok {
			rows = append(rows, invalidStyle.Render(fmt.Sprintf(rowFormat,
				strconv.Itoa(i), hexBytes(b[i:i+1]), "-", "invalid", "0",
				fmt.Sprintf(`\x%02x`, b[i]))))
			i++
			continue
		}
		cat := runesafe.Classify(r)
		esc, _ := runesafe.Escape(b[i:i+n], runesafe.EscapeFlags{})
		rows = append(rows, fmt.Sprintf(rowFormat,
			strconv.Itoa(i), hexBytes(b[i:i+n]), fmt.Sprintf("U+%04X", r),
			cat.String(), strconv.Itoa(cat.Columns()), string(esc)))
		i += n
	}
	rows = append(rows, dimStyle.Render(fmt.Sprintf("%d bytes, width %d",
		len(b), runesafe.WidthString(in))))
	return tableStyle.Render(strings.Join(rows, "\n"))
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}
