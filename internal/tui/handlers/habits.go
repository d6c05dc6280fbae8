package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habito/internal/constants"
	"github.com/julianstephens/habito/internal/logger"
	"github.com/julianstephens/habito/internal/tui/components/detail"
	"github.com/julianstephens/habito/internal/tui/components/habits"
	"github.com/julianstephens/habito/internal/tui/state"
	"github.com/julianstephens/habito/internal/utils"
	"github.com/julianstephens/habito/internal/validation"
)

// HandleCreateState handles the create habit state
func HandleCreateState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.FormError = ""
		m.State = constants.StateList
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if err := SubmitCreate(m); err != nil {
			// Stay in form state on error to allow retry
			m.FormError = validation.FormatReport(err)
			m.Form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.FormError = ""
		m.State = constants.StateList
	}
	return tea.Batch(cmds...)
}

// SubmitCreate validates the create form and adds the habit. On success the
// list is refreshed and shown.
func SubmitCreate(m *state.Model) error {
	draft, err := m.Validator.ValidateCreate(createInput(m.HabitForm))
	if err != nil {
		return err
	}
	habit, err := m.Store.AddHabit(draft)
	if err != nil {
		logger.Error("Failed to add habit", "error", err)
		return err
	}

	logger.Info("Habit created", "id", habit.ID, "name", habit.Name)
	m.FormError = ""
	m.HabitForm = nil
	m.RefreshHabits()
	m.State = constants.StateList
	return nil
}

// HandleEditState handles the edit habit state
func HandleEditState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		cancelEdit(m)
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if err := SubmitEdit(m); err != nil {
			m.FormError = validation.FormatReport(err)
			m.Form.State = huh.StateNormal
		}
	case huh.StateAborted:
		cancelEdit(m)
	}
	return tea.Batch(cmds...)
}

// SubmitEdit validates the changed fields of the edit form and applies them.
// On success the detail screen is refreshed and shown.
func SubmitEdit(m *state.Model) error {
	if m.FormModified() {
		patch, err := m.Validator.ValidateUpdate(updateInput(m.SelectedID, m.OriginalForm, *m.HabitForm))
		if err != nil {
			return err
		}
		if err := m.Store.UpdateHabit(patch); err != nil {
			logger.Error("Failed to update habit", "id", patch.ID, "error", err)
			return err
		}
		logger.Info("Habit updated", "id", patch.ID)
	}

	m.FormError = ""
	m.HabitForm = nil
	m.RefreshHabits()
	m.State = constants.StateDetail
	return nil
}

// cancelEdit leaves the edit form, asking first when values were changed
func cancelEdit(m *state.Model) {
	if m.FormModified() {
		m.State = constants.StateConfirmDiscard
		return
	}
	m.FormError = ""
	m.HabitForm = nil
	m.State = constants.StateDetail
}

// HandleConfirmDiscardState handles the discard changes confirmation
func HandleConfirmDiscardState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.FormError = ""
			m.HabitForm = nil
			m.State = constants.StateDetail
		case "n", "N", "esc":
			m.State = constants.StateEdit
			if m.Form != nil {
				// Reopen the form where it was left
				m.Form.State = huh.StateNormal
			}
		}
	}
	return nil
}

// HandleHabitMessages handles messages from the list and detail components
func HandleHabitMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		m.HabitForm = NewCreateFormModel(utils.Today(m.Now()))
		m.OriginalForm = *m.HabitForm
		m.FormError = ""
		m.Form = NewCreateForm(m.HabitForm, m.Validator)
		m.State = constants.StateCreate
		return true, m.Form.Init()

	case habits.ShowHabitMsg:
		m.ShowHabit(msg.ID)
		m.State = constants.StateDetail
		return true, nil

	case habits.ToggleHabitMsg:
		toggle(m, msg.ID)
		return true, nil

	case detail.ToggleHabitMsg:
		toggle(m, msg.ID)
		return true, nil

	case detail.EditHabitMsg:
		habit, err := m.Store.GetHabit(msg.ID)
		if err != nil {
			m.ShowHabit(msg.ID)
			return true, nil
		}
		m.SelectedID = habit.ID
		m.HabitForm = NewEditFormModel(habit)
		m.OriginalForm = *m.HabitForm
		m.FormError = ""
		m.Form = NewEditForm(m.HabitForm, m.Validator)
		m.State = constants.StateEdit
		return true, m.Form.Init()

	case detail.RemoveHabitMsg:
		if err := m.Store.RemoveHabit(msg.ID); err == nil {
			logger.Info("Habit removed", "id", msg.ID)
		}
		m.SelectedID = ""
		m.RefreshHabits()
		m.State = constants.StateList
		return true, nil

	case detail.BackMsg:
		m.SelectedID = ""
		m.State = constants.StateList
		return true, nil
	}
	return false, nil
}

func toggle(m *state.Model, id string) {
	if err := m.Store.ToggleHabitActive(id); err != nil {
		return
	}
	m.RefreshHabits()
}
