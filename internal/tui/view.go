package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habito/internal/constants"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var title, content string

	switch m.State {
	case constants.StateList:
		title = "Meus Hábitos"
		content = m.HabitsModel.View()
	case constants.StateDetail:
		title = "Detalhes do Hábito"
		content = m.DetailModel.View()
	case constants.StateCreate:
		title = "Novo Hábito"
		content = m.viewForm()
	case constants.StateEdit:
		title = "Editar Hábito"
		content = m.viewForm()
	case constants.StateConfirmDiscard:
		title = "Editar Hábito"
		content = m.viewConfirmDiscard()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		docStyle.Render(content),
		m.Help.View(m),
	)
}

func (m Model) viewForm() string {
	if m.Form == nil {
		return ""
	}
	if m.FormError == "" {
		return m.Form.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.Form.View(),
		errorStyle.Render(m.FormError),
	)
}

func (m Model) viewConfirmDiscard() string {
	return lipgloss.Place(m.Width, m.Height-6,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			warningStyle.Render("Descartar alterações?"),
			"",
			"[y] Descartar",
			"[n] Continuar editando",
		),
	)
}
