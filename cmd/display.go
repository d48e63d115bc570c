package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/balancesheet"
	"github.com/etnz/balancesheet/renderer"
)

// display prints a balance sheet, as a plain text table or as markdown.
func display(w io.Writer, title string, r *balancesheet.Report, markdown bool) error {
	fmt.Fprintln(w)
	if markdown {
		printMarkdown(w, renderer.Markdown(title, r))
		return nil
	}
	return renderer.Text(w, r)
}

// printMarkdown renders md for the terminal. Raw markdown is printed if it
// cannot be rendered.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
