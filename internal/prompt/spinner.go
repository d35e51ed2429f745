package prompt

import (
	"fmt"

	spn "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerT shows a spinner next to a status text until stopped
type SpinnerT struct {
	spinner  spn.Model
	text     string
	quitting bool
	onCancel func()
	program  *tea.Program
	done     chan struct{}
}

func newSpinner(text string, onCancel func()) *SpinnerT {
	s := spn.New()
	s.Spinner = spn.Dot
	s.Style = hintStyle
	return &SpinnerT{spinner: s, text: text, onCancel: onCancel}
}

func (m *SpinnerT) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *SpinnerT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			if m.onCancel != nil {
				m.onCancel()
			}
			return m, tea.Quit
		}
		return m, nil
	case stopMsg:
		m.quitting = true
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m *SpinnerT) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.text)
}

type stopMsg struct{}

// Stop removes the spinner and waits for the terminal to be released
func (m *SpinnerT) Stop() {
	if m.program == nil {
		return
	}
	select {
	case <-m.done:
	default:
		m.program.Send(stopMsg{})
		<-m.done
	}
	m.program = nil
}

// Start shows the spinner. Without a terminal it prints the text once.
func (m *SpinnerT) Start() {
	if !isInteractive {
		fmt.Println(m.text)
		return
	}

	m.done = make(chan struct{})
	m.quitting = false
	m.program = tea.NewProgram(m)
	go func() {
		defer close(m.done)
		m.program.Run()
	}()
}

// Spinner starts a spinner. onCancel runs when the user presses ctrl+c.
func Spinner(text string, onCancel func()) *SpinnerT {
	spinner := newSpinner(text, onCancel)
	spinner.Start()
	return spinner
}
