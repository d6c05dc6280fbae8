package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habito/internal/constants"
	"github.com/julianstephens/habito/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		// Title and help bar
		m.HabitsModel.SetSize(msg.Width-h, msg.Height-v-2)
	case tea.KeyMsg:
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			return m, cmd
		}
	}

	if handled, cmd := handlers.HandleHabitMessages(&m.Model, msg); handled {
		return m, cmd
	}

	switch m.State {
	case constants.StateCreate:
		cmd = handlers.HandleCreateState(&m.Model, msg)
	case constants.StateEdit:
		cmd = handlers.HandleEditState(&m.Model, msg)
	case constants.StateConfirmDiscard:
		cmd = handlers.HandleConfirmDiscardState(&m.Model, msg)
	case constants.StateDetail:
		m.DetailModel, cmd = m.DetailModel.Update(msg)
	default:
		m.HabitsModel, cmd = m.HabitsModel.Update(msg)
	}
	return m, cmd
}
