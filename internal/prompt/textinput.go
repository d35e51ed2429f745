package prompt

import (
	"errors"
	"fmt"
	"strings"

	ti "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves a prompt with ctrl+c
var ErrCancelled = errors.New("cancelled by user")

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type textinput struct {
	textInput ti.Model
	validate  func(string) error
	err       error
	invalid   error
	done      bool
	prompt    string
}

func newTextinput(prompt, placeholder, value string, limit int, validate func(string) error) textinput {
	ti := ti.New()
	ti.SetValue(value)
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = limit
	ti.Width = limit + 2

	return textinput{
		textInput: ti,
		validate:  validate,
		prompt:    prompt,
	}
}

func (m textinput) Init() tea.Cmd {
	return ti.Blink
}

func (m textinput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCancelled
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.validate != nil {
				if err := m.validate(m.value()); err != nil {
					m.invalid = err
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}

	case error:
		m.err = msg
		return m, nil
	}

	m.invalid = nil
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// value is the typed text, or the placeholder when nothing was typed
func (m textinput) value() string {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return m.textInput.Placeholder
	}
	return value
}

func (m textinput) View() string {
	if m.done {
		return ""
	}

	hint := hintStyle.Render("(press <enter> to submit)")
	if m.invalid != nil {
		hint = errorStyle.Render(m.invalid.Error())
	}
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n",
		titleStyle.Render(m.prompt),
		m.textInput.View(),
		hint,
	)
}

// TextInput asks for a line of text. An empty answer selects the placeholder.
func TextInput(prompt, placeholder, value string, limit int, validate func(string) error) (string, error) {
	p := tea.NewProgram(newTextinput(prompt, placeholder, value, limit, validate))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	model, ok := m.(textinput)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", m)
	}
	if model.err != nil {
		return "", model.err
	}
	return model.value(), nil
}
