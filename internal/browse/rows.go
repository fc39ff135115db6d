package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/beesolve/beesolve/internal/solver"
)

const minWordColumnWidth = 8

// answerRows converts answers into table rows, applying the substring
// filter and the pangram toggle. Input order is preserved.
func answerRows(answers []solver.Answer, filter string, pangramOnly bool) []table.Row {
	rows := make([]table.Row, 0, len(answers))
	for _, ans := range answers {
		if pangramOnly && !ans.Pangram {
			continue
		}
		if filter != "" && !strings.Contains(ans.Word, filter) {
			continue
		}
		marker := ""
		if ans.Pangram {
			marker = "*"
		}
		rows = append(rows, table.Row{
			ans.Word,
			fmt.Sprintf("%d", ans.Score),
			marker,
		})
	}
	return rows
}

// wordColumnWidth sizes the word column to the widest answer, measured
// in display cells so wide runes do not break alignment.
func wordColumnWidth(answers []solver.Answer) int {
	width := minWordColumnWidth
	for _, ans := range answers {
		if w := runewidth.StringWidth(ans.Word); w > width {
			width = w
		}
	}
	return width
}

func buildAnswerTable(rows []table.Row, wordWidth, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Word", Width: wordWidth},
		{Title: "Score", Width: 5},
		{Title: "Pangram", Width: 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
	)
	t.SetWidth(width)
	t.SetStyles(answerTableStyles())
	return t
}

func answerTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
