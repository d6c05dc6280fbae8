package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/julianstephens/habito/internal/constants"
)

func (m Model) ShortHelp() []key.Binding {
	switch m.State {
	case constants.StateList:
		hk := m.HabitsModel.Keys()
		return []key.Binding{hk.Add, hk.Show, hk.Toggle, m.Keys.Quit, m.Keys.Help}
	case constants.StateDetail:
		dk := m.DetailModel.Keys()
		return []key.Binding{dk.Toggle, dk.Edit, dk.Remove, dk.Back, m.Keys.Quit}
	case constants.StateCreate, constants.StateEdit:
		return []key.Binding{m.Keys.Back}
	}
	return nil
}

func (m Model) FullHelp() [][]key.Binding {
	switch m.State {
	case constants.StateList:
		hk := m.HabitsModel.Keys()
		return [][]key.Binding{
			{hk.Add, hk.Show, hk.Toggle},
			{m.Keys.Quit, m.Keys.Help},
		}
	case constants.StateDetail:
		dk := m.DetailModel.Keys()
		return [][]key.Binding{
			{dk.Toggle, dk.Edit, dk.Remove},
			{dk.Back, m.Keys.Quit, m.Keys.Help},
		}
	}
	return [][]key.Binding{m.ShortHelp()}
}
