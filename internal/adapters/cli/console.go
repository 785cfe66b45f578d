package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	sectionStyle = color.New(color.BgBlue, color.FgWhite, color.Bold)
	infoStyle    = color.New(color.FgGreen)
)

// writeSection prints a highlighted title block.
func writeSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	sectionStyle.Fprintf(w, "  %s  ", title)
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}

// writeInfo prints a green label followed by a plain value.
func writeInfo(w io.Writer, label, value string) {
	infoStyle.Fprint(w, label)
	if value != "" {
		fmt.Fprint(w, " ", value)
	}
	fmt.Fprintln(w)
}

func writeList(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
}
