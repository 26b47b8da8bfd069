package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zgsxwsdxg/simpletx/tfile"
	"github.com/zgsxwsdxg/simpletx/transform"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	tx       *transform.Transform
	filename string
	warnings []string
	input    textinput.Model
	result   string
	state    modelState
}

type modelState int

const (
	stateInputPoint modelState = iota
	stateShowResult
)

func newInteractiveModel(filename string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "x, y, z"
	ti.Prompt = "point: "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		filename: filename,
		input:    ti,
		state:    stateInputPoint,
	}
}

type loadedMsg struct {
	err      error
	tx       *transform.Transform
	warnings []string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadTransform
}

func (m *interactiveModel) loadTransform() tea.Msg {
	var warnings []string
	tx, err := tfile.Read(m.filename, tfile.WithObserver(tfile.ObserverFunc(func(d tfile.Diagnostic) {
		warnings = append(warnings, d.Message)
	})))
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{tx: tx, warnings: warnings}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateShowResult {
				return m, tea.Quit
			}

		case "enter":
			switch m.state {
			case stateInputPoint:
				m.mapPoint()
				m.state = stateShowResult
			case stateShowResult:
				m.state = stateInputPoint
				m.result = ""
				m.err = nil
				m.input.SetValue("")
				m.input.Focus()
			}
			return m, nil

		case "esc":
			if m.state == stateShowResult {
				m.state = stateInputPoint
				m.result = ""
				m.err = nil
				m.input.Focus()
				return m, nil
			}
			return m, tea.Quit
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tx = msg.tx
		m.warnings = msg.warnings
	}

	if m.state == stateInputPoint {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) mapPoint() {
	if m.tx == nil {
		m.err = fmt.Errorf("transform not loaded")
		return
	}
	pt, err := parsePoint(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	mapped, err := m.tx.TransformPoint(pt)
	if err != nil {
		m.err = err
		return
	}
	m.result = fmt.Sprintf("%v -> %v", pt, mapped)
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.tx == nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err))
	}

	if m.tx == nil {
		return "Loading transform..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Transform Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("kind"))
	b.WriteString(fmt.Sprintf(": %s  ", m.tx.Kind()))
	b.WriteString(labelStyle.Render("dimension"))
	b.WriteString(fmt.Sprintf(": %d\n", m.tx.Dimension()))

	for _, w := range m.warnings {
		b.WriteString(warnStyle.Render("warning: " + w))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.state {
	case stateInputPoint:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter map point • esc quit"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter another point • q quit"))
	}

	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
