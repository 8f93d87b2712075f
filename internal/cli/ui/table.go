// Package ui provides terminal output helpers for the typograph CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Table renders tabular data with aligned columns and a colored header.
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given headers.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{writer: w, headers: headers}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table.
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = len(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	header := color.New(color.Bold)
	for i, h := range t.headers {
		if i > 0 {
			fmt.Fprint(t.writer, "  ")
		}
		header.Fprint(t.writer, pad(h, widths[i]))
	}
	fmt.Fprintln(t.writer)

	for i, w := range widths {
		if i > 0 {
			fmt.Fprint(t.writer, "  ")
		}
		fmt.Fprint(t.writer, strings.Repeat("-", w))
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(t.writer, "  ")
			}
			if i < len(widths) {
				cell = pad(cell, widths[i])
			}
			fmt.Fprint(t.writer, cell)
		}
		fmt.Fprintln(t.writer)
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
