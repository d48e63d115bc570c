// Package renderer formats balance sheet reports for display.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/balancesheet"
)

//go:embed *.md
var templates embed.FS

// Table is the display form of a report: labels and formatted cells.
type Table struct {
	Title   string
	Header  []string
	Align   []string // markdown alignment marker of each column
	Records [][]string
}

// NewTable prepares a report for display.
func NewTable(title string, r *balancesheet.Report) *Table {
	t := &Table{Title: title, Header: r.Header(), Records: r.Records()}
	for i := range t.Header {
		if i == 0 {
			t.Align = append(t.Align, ":---")
		} else {
			t.Align = append(t.Align, "---:")
		}
	}
	return t
}

// Markdown renders the report as a markdown document with a single table.
func Markdown(title string, r *balancesheet.Report) string {
	return NewTable(title, r).Markdown()
}

// Markdown renders the table as a markdown document.
func (t *Table) Markdown() string {
	partials := map[string]string{
		"balancesheet_table": "balancesheet_table.md",
	}
	return renderTemplate("balancesheet", "balancesheet.md", partials, t)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
