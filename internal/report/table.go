// Package report renders run summaries as aligned text tables.
package report

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a header row plus data rows rendered as a markdown-style table.
type Table struct {
	Header []string
	Rows   [][]string
}

// Lines renders the table with every column padded to its widest cell,
// measured in terminal display width.
func (t *Table) Lines() []string {
	colCount := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return nil
	}

	colWidths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	measure(t.Header)

	for _, row := range t.Rows {
		measure(row)
	}

	// Separator needs at least "---".
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, renderRow(t.Header, colWidths, false))
	lines = append(lines, renderRow(nil, colWidths, true))

	for _, row := range t.Rows {
		lines = append(lines, renderRow(row, colWidths, false))
	}

	return lines
}

// Render writes the table to w, one line per row.
func (t *Table) Render(w io.Writer) error {
	for _, line := range t.Lines() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}

	return nil
}

func renderRow(row []string, colWidths []int, separator bool) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		if separator {
			sb.WriteString(strings.Repeat("-", width))
		} else {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			if padding := width - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
