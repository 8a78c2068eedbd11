package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ConfigLoadedMsg:
		return m.applyConfig(msg.Config, msg.Comparison), nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.config == nil {
		// still loading, or the plan failed to load
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextScene):
		m.scene = (m.scene + 1) % sceneCount

	case key.Matches(msg, m.keys.PrevScene):
		m.scene = (m.scene + sceneCount - 1) % sceneCount

	case key.Matches(msg, m.keys.Next):
		return m.selectScenario(m.scenarioIndex + 1), nil

	case key.Matches(msg, m.keys.Prev):
		return m.selectScenario(m.scenarioIndex - 1), nil

	case key.Matches(msg, m.keys.Reset):
		return m.selectScenario(m.scenarioIndex), nil

	case key.Matches(msg, m.keys.Up):
		m.focus(m.focused - 1)

	case key.Matches(msg, m.keys.Down):
		m.focus(m.focused + 1)

	case key.Matches(msg, m.keys.Increase):
		m.sliders[m.focused].Increment()
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.Decrease):
		m.sliders[m.focused].Decrement()
		return m.recalculate(), nil
	}

	return m, nil
}

// focus moves the slider cursor, wrapping at both ends
func (m *Model) focus(i int) {
	n := len(m.sliders)
	m.sliders[m.focused].IsFocused = false
	m.focused = ((i % n) + n) % n
	m.sliders[m.focused].IsFocused = true
}
