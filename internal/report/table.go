// Package report renders solver results and solve history.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one history-table column. Numeric columns are
// right-aligned so scores and counts line up.
type column struct {
	title      string
	rightAlign bool
}

// formatTable lays out rows under the column titles, padding every cell
// to its column's widest value. Trailing padding is trimmed so the last
// column never drags blanks to the line end.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i := range cols {
			if i >= len(row) {
				break
			}
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(cols, widths, titles))
	for _, row := range rows {
		lines = append(lines, renderRow(cols, widths, row))
	}
	return lines
}

func renderRow(cols []column, widths []int, row []string) string {
	var b strings.Builder
	for i := range cols {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		pad := widths[i] - runewidth.StringWidth(cell)
		if pad < 0 {
			pad = 0
		}
		if cols[i].rightAlign {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRight(b.String(), " ")
}
