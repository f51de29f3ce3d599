package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the top-level bubbletea model. It only delegates to the card
// detail page; the panel owns no other state.
type AppModel struct {
	page CardPageModel
}

// NewAppModel wraps a card page for use as a program root model.
func NewAppModel(page CardPageModel) AppModel {
	return AppModel{page: page}
}

// Init initializes the model.
func (m AppModel) Init() tea.Cmd {
	return m.page.Init()
}

// Update delegates messages to the page.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

// View renders the page.
func (m AppModel) View() string {
	return m.page.View()
}
