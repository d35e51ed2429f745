package prompt

import (
	"os"
	"strings"

	tbl "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type table struct {
	table     tbl.Model
	quitting  bool
	choice    string
	searchBuf string
}

func (m *table) Init() tea.Cmd {
	return nil
}

func (m *table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.quitting = true
			if row := m.table.SelectedRow(); row != nil {
				m.choice = row[0]
			}
			return m, tea.Quit
		default:
			if len(msg.String()) == 1 {
				m.search(msg.String())
				return m, nil
			}
			m.searchBuf = ""
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// search moves the cursor to the first row whose second column starts with
// the typed prefix. Rows are scores, the second column is the player.
func (m *table) search(key string) {
	m.searchBuf += key
	candidate := -1
	for id, row := range m.table.Rows() {
		if len(row) < 2 {
			continue
		}
		if strings.HasPrefix(row[1], m.searchBuf) {
			m.table.SetCursor(id)
			return
		}
		if candidate == -1 && strings.HasPrefix(row[1], key) {
			candidate = id
		}
	}
	if candidate != -1 {
		m.searchBuf = key
		m.table.SetCursor(candidate)
	}
}

func (m *table) View() string {
	if m.quitting {
		return ""
	}
	return baseStyle.Render(m.table.View()) + "\n"
}

func terminalHeight() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 24
	}
	return height
}

func newTable(columns []tbl.Column, rows []tbl.Row) *table {
	// 3 lines for the table header and 7 for earlier output
	height := min(len(rows), terminalHeight()-10)
	t := tbl.New(
		tbl.WithColumns(columns),
		tbl.WithRows(rows),
		tbl.WithFocused(true),
		tbl.WithHeight(max(height, 1)),
	)

	s := tbl.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &table{table: t}
}

// Table lets the user pick a row and returns its first column, or "" when
// the user leaves without picking
func Table(columns []tbl.Column, rows []tbl.Row) (string, error) {
	table := newTable(columns, rows)
	if _, err := tea.NewProgram(table).Run(); err != nil {
		return "", err
	}
	return table.choice, nil
}
