package detail

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habito/internal/models"
	"github.com/julianstephens/habito/internal/utils"
)

type ToggleHabitMsg struct {
	ID string
}

type EditHabitMsg struct {
	ID string
}

type RemoveHabitMsg struct {
	ID string
}

type BackMsg struct{}

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginRight(2)

	activeBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("22")).
			Background(lipgloss.Color("150")).
			Padding(0, 1)

	inactiveBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("52")).
			Background(lipgloss.Color("217")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	notFoundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

type KeyMap struct {
	Toggle key.Binding
	Edit   key.Binding
	Remove key.Binding
	Back   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "ativar/desativar"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "editar"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remover"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "voltar"),
		),
	}
}

type Model struct {
	habit models.Habit
	found bool
	keys  KeyMap
}

func New() Model {
	return Model{keys: DefaultKeyMap()}
}

func (m *Model) SetHabit(h models.Habit) {
	m.habit = h
	m.found = true
}

// Clear puts the screen in its not-found state
func (m *Model) Clear() {
	m.habit = models.Habit{}
	m.found = false
}

func (m Model) Habit() (models.Habit, bool) {
	return m.habit, m.found
}

func (m Model) Keys() KeyMap {
	return m.keys
}

// ToggleLabel names the toggle action for the current status
func (m Model) ToggleLabel() string {
	if m.habit.Active {
		return "Desativar Hábito"
	}
	return "Ativar Hábito"
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Back) {
		return m, func() tea.Msg { return BackMsg{} }
	}
	if !m.found {
		return m, nil
	}

	id := m.habit.ID
	switch {
	case key.Matches(keyMsg, m.keys.Toggle):
		return m, func() tea.Msg { return ToggleHabitMsg{ID: id} }
	case key.Matches(keyMsg, m.keys.Edit):
		return m, func() tea.Msg { return EditHabitMsg{ID: id} }
	case key.Matches(keyMsg, m.keys.Remove):
		return m, func() tea.Msg { return RemoveHabitMsg{ID: id} }
	}
	return m, nil
}

func (m Model) View() string {
	if !m.found {
		return lipgloss.JoinVertical(lipgloss.Left,
			notFoundStyle.Render("Hábito não encontrado"),
			actionStyle.Render("[esc] Voltar"),
		)
	}

	h := m.habit
	badge := inactiveBadge.Render(utils.FormatStatus(false))
	if h.Active {
		badge = activeBadge.Render(utils.FormatStatus(true))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center, nameStyle.Render(h.Name), badge)
	rows := lipgloss.JoinVertical(lipgloss.Left,
		row("Frequência Semanal", fmt.Sprintf("%d dias/semana", h.WeeklyFrequency)),
		row("Meta Diária", fmt.Sprintf("%d minutos", h.DailyGoalMinutes)),
		row("Data de Início", utils.FormatDisplayDate(h.StartDate)),
		row("ID", h.ID),
	)
	actions := actionStyle.Render(fmt.Sprintf("[t] %s  [e] Editar  [d] Remover  [esc] Voltar", m.ToggleLabel()))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", rows, actions)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}
