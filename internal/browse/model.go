// Package browse provides the Bubble Tea answer browser.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/beesolve/beesolve/internal/report"
	"github.com/beesolve/beesolve/internal/solver"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea answer browser.
type Model struct {
	required rune
	extra    string
	answers  []solver.Answer

	answerTable table.Model
	filterInput textinput.Model

	filterMode  bool
	filter      string
	pangramOnly bool

	width  int
	height int
}

// NewModel constructs a browser over the given answers.
func NewModel(required rune, extra string, answers []solver.Answer) *Model {
	m := &Model{
		required: required,
		extra:    extra,
		answers:  report.SortAnswers(answers),
	}
	m.filterInput = textinput.New()
	m.filterInput.Prompt = "Filter: "
	m.filterInput.CharLimit = 0
	m.filterInput.Cursor.SetMode(cursor.CursorBlink)
	m.answerTable = buildAnswerTable(m.visibleRows(), wordColumnWidth(m.answers), 0, 1)
	m.answerTable.Focus()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "esc":
			if m.filter != "" || m.pangramOnly {
				m.filter = ""
				m.pangramOnly = false
				m.refreshRows()
				return m, nil
			}
			return m, tea.Quit
		case "/":
			return m.startFilter()
		case "p":
			m.pangramOnly = !m.pangramOnly
			m.refreshRows()
			return m, nil
		case "g", "home":
			m.answerTable.GotoTop()
			return m, nil
		case "G", "end":
			m.answerTable.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.answerTable, cmd = m.answerTable.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = 2
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.answerTable.SetWidth(m.width)
	m.answerTable.SetHeight(maxInt(1, bodyHeight-1))
	promptWidth := lipgloss.Width(m.filterInput.Prompt)
	m.filterInput.Width = maxInt(10, m.width-promptWidth-2)
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("Puzzle [%c] %s", m.required, m.extra))
	shown := len(m.answerTable.Rows())
	status := fmt.Sprintf("%d/%d answers", shown, len(m.answers))
	if m.pangramOnly {
		status += "  pangrams only"
	}
	if m.filter != "" {
		status += fmt.Sprintf("  filter=%q", m.filter)
	}
	status = truncateLine(status, m.width)
	return title + "\n" + headerStyle.Render(status)
}

func (m *Model) renderBody() string {
	if m.filterMode {
		lines := []string{"Filter answers (enter to apply, esc to cancel)", m.filterInput.View()}
		return strings.Join(lines, "\n")
	}
	if len(m.answerTable.Rows()) == 0 {
		if len(m.answers) == 0 {
			return errorStyle.Render("No answers for this puzzle.")
		}
		return mutedStyle.Render("No answers match the current filter.")
	}
	return mutedStyle.Render(m.answerTable.View())
}

func (m *Model) renderFooter() string {
	help := "Scroll: up/down/pgup/pgdn  Filter: /  Pangrams: p  Top/Bottom: g/G  Quit: q"
	if m.filterMode {
		help = "enter: apply  esc: cancel"
	}
	return headerStyle.Render(help)
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterInput.SetValue(m.filter)
	return m, m.filterInput.Focus()
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.filter = strings.TrimSpace(m.filterInput.Value())
		m.filterMode = false
		m.filterInput.Blur()
		m.refreshRows()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) refreshRows() {
	m.answerTable.SetRows(m.visibleRows())
	m.answerTable.GotoTop()
}

func (m *Model) visibleRows() []table.Row {
	return answerRows(m.answers, m.filter, m.pangramOnly)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
