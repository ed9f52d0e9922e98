package listing

import (
	"fmt"
	"io"
	"strings"
)

const emptyMessage = "\n   Nothing to show here\n"

func (c *Core) writeReport(w io.Writer, counts Counts) error {
	var b strings.Builder
	switch c.opts.Report {
	case ReportOff:
		return nil
	case ReportShort:
		fmt.Fprintf(&b, "\n    Found %d items in total. Folders: %d, Files: %d.\n",
			counts.Total(), counts.Folders, counts.Files())
	default:
		fmt.Fprintf(&b, "\n    Found %d items in total.\n\n", counts.Total())
		fmt.Fprintf(&b, "    %-20s: %d\n", "Folders", counts.Folders)
		fmt.Fprintf(&b, "    %-20s: %d\n", "Recognized files", counts.RecognizedFiles)
		fmt.Fprintf(&b, "    %-20s: %d\n", "Unrecognized files", counts.UnrecognizedFiles)
	}
	return c.writePainted(w, "report", b.String())
}

// writePainted colors each line of text separately so escape sequences
// never span a newline.
func (c *Core) writePainted(w io.Writer, category, text string) error {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = c.theme.Paint(category, line)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
