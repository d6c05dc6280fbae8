package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habito/internal/constants"
	"github.com/julianstephens/habito/internal/storage"
	"github.com/julianstephens/habito/internal/tui/components/detail"
	"github.com/julianstephens/habito/internal/tui/components/habits"
	"github.com/julianstephens/habito/internal/validation"
)

// HabitFormModel holds the raw values bound to the create and edit forms.
// Numbers stay strings until submission so bad input reaches the validator.
type HabitFormModel struct {
	Name             string
	WeeklyFrequency  string
	DailyGoalMinutes string
	StartDate        string
	Active           bool
}

// Model represents the shared state for the TUI
type Model struct {
	Store         storage.Provider
	Validator     *validation.Validator
	Now           func() time.Time
	State         constants.SessionState
	PreviousState constants.SessionState
	Keys          KeyMap
	Help          help.Model
	HabitsModel   habits.Model
	DetailModel   detail.Model
	Form          *huh.Form
	HabitForm     *HabitFormModel
	OriginalForm  HabitFormModel // values the edit form was opened with
	SelectedID    string
	Quitting      bool
	Width         int
	Height        int
	FormError     string // Error message to display for form operations
}

// New creates a new state Model showing the habit list
func New(store storage.Provider, v *validation.Validator) Model {
	return Model{
		Store:       store,
		Validator:   v,
		Now:         time.Now,
		State:       constants.StateList,
		Keys:        DefaultKeyMap(),
		Help:        help.New(),
		HabitsModel: habits.New(store.GetAllHabits(), 0, 0),
		DetailModel: detail.New(),
	}
}

// RefreshHabits reloads the list and, when a habit is selected, the detail screen
func (m *Model) RefreshHabits() {
	m.HabitsModel.SetHabits(m.Store.GetAllHabits())
	if m.SelectedID != "" {
		m.ShowHabit(m.SelectedID)
	}
}

// ShowHabit loads the habit with the given id into the detail screen.
// A missing habit leaves the screen in its not-found state.
func (m *Model) ShowHabit(id string) {
	m.SelectedID = id
	habit, err := m.Store.GetHabit(id)
	if err != nil {
		m.DetailModel.Clear()
		return
	}
	m.DetailModel.SetHabit(habit)
}

// FormModified reports whether the open form differs from its starting values
func (m *Model) FormModified() bool {
	return m.HabitForm != nil && *m.HabitForm != m.OriginalForm
}
