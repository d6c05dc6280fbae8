package handlers

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habito/internal/constants"
	"github.com/julianstephens/habito/internal/models"
	"github.com/julianstephens/habito/internal/storage"
	"github.com/julianstephens/habito/internal/tui/components/detail"
	"github.com/julianstephens/habito/internal/tui/components/habits"
	"github.com/julianstephens/habito/internal/tui/state"
	"github.com/julianstephens/habito/internal/validation"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

func setupModel(t *testing.T) *state.Model {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	v := validation.New(validation.WithClock(clock))
	m := state.New(storage.NewMemoryStore(v), v)
	m.Now = clock
	return &m
}

func seedHabit(t *testing.T, m *state.Model) models.Habit {
	t.Helper()
	d, err := m.Validator.ValidateCreate(models.CreateInput{
		Name: "Exercício", WeeklyFrequency: 5, DailyGoalMinutes: 30, StartDate: "2024-01-01",
	})
	require.NoError(t, err)
	h, err := m.Store.AddHabit(d)
	require.NoError(t, err)
	m.RefreshHabits()
	return h
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAddHabitMsg_OpensCreateFormWithDefaults(t *testing.T) {
	m := setupModel(t)

	handled, _ := HandleHabitMessages(m, habits.AddHabitMsg{})
	require.True(t, handled)

	assert.Equal(t, constants.StateCreate, m.State)
	require.NotNil(t, m.Form)
	assert.Equal(t, state.HabitFormModel{
		Name:             "",
		WeeklyFrequency:  "1",
		DailyGoalMinutes: "30",
		StartDate:        "2024-06-15",
		Active:           true,
	}, *m.HabitForm)
}

func TestSubmitCreate(t *testing.T) {
	m := setupModel(t)
	HandleHabitMessages(m, habits.AddHabitMsg{})
	m.HabitForm.Name = "Leitura"
	m.HabitForm.WeeklyFrequency = "7"
	m.HabitForm.DailyGoalMinutes = "20"

	require.NoError(t, SubmitCreate(m))

	assert.Equal(t, constants.StateList, m.State)
	assert.Equal(t, 1, m.HabitsModel.Len())
	all := m.Store.GetAllHabits()
	require.Len(t, all, 1)
	assert.Equal(t, "Leitura", all[0].Name)
	assert.Equal(t, "2024-06-15", all[0].StartDate)
	assert.True(t, all[0].Active)
}

func TestSubmitCreate_InvalidKeepsForm(t *testing.T) {
	m := setupModel(t)
	HandleHabitMessages(m, habits.AddHabitMsg{})
	m.HabitForm.Name = "AB"
	m.HabitForm.WeeklyFrequency = "abc"
	m.HabitForm.StartDate = "2024-06-16"

	err := SubmitCreate(m)
	require.Error(t, err)

	var fe models.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"nome", "frequenciaSemanal", "dataInicio"}, fe.Fields())
	assert.Equal(t, constants.StateCreate, m.State)
	assert.Equal(t, 0, m.Store.Count())
}

func TestHandleCreateState_EscReturnsToList(t *testing.T) {
	m := setupModel(t)
	HandleHabitMessages(m, habits.AddHabitMsg{})

	HandleCreateState(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, constants.StateList, m.State)
	assert.Equal(t, 0, m.Store.Count())
}

func TestShowHabitMsg(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)

	HandleHabitMessages(m, habits.ShowHabitMsg{ID: h.ID})

	assert.Equal(t, constants.StateDetail, m.State)
	got, found := m.DetailModel.Habit()
	assert.True(t, found)
	assert.Equal(t, h, got)
}

func TestShowHabitMsg_UnknownID(t *testing.T) {
	m := setupModel(t)

	HandleHabitMessages(m, habits.ShowHabitMsg{ID: uuid.NewString()})

	assert.Equal(t, constants.StateDetail, m.State)
	_, found := m.DetailModel.Habit()
	assert.False(t, found)
	assert.Contains(t, m.DetailModel.View(), "Hábito não encontrado")
}

func TestToggleMessages(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)

	HandleHabitMessages(m, habits.ToggleHabitMsg{ID: h.ID})
	got, _ := m.Store.GetHabit(h.ID)
	assert.False(t, got.Active)

	HandleHabitMessages(m, habits.ShowHabitMsg{ID: h.ID})
	assert.Equal(t, "Ativar Hábito", m.DetailModel.ToggleLabel())

	HandleHabitMessages(m, detail.ToggleHabitMsg{ID: h.ID})
	got, _ = m.Store.GetHabit(h.ID)
	assert.True(t, got.Active)
	assert.Equal(t, "Desativar Hábito", m.DetailModel.ToggleLabel())
}

func TestRemoveHabitMsg(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)
	HandleHabitMessages(m, habits.ShowHabitMsg{ID: h.ID})

	HandleHabitMessages(m, detail.RemoveHabitMsg{ID: h.ID})

	assert.Equal(t, constants.StateList, m.State)
	assert.Equal(t, 0, m.Store.Count())
	assert.Equal(t, 0, m.HabitsModel.Len())
	assert.Empty(t, m.SelectedID)
}

func TestEditHabitMsg_PrefillsForm(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)

	HandleHabitMessages(m, detail.EditHabitMsg{ID: h.ID})

	assert.Equal(t, constants.StateEdit, m.State)
	assert.Equal(t, h.ID, m.SelectedID)
	assert.Equal(t, state.HabitFormModel{
		Name:             "Exercício",
		WeeklyFrequency:  "5",
		DailyGoalMinutes: "30",
		StartDate:        "2024-01-01",
		Active:           true,
	}, *m.HabitForm)
	assert.False(t, m.FormModified())
}

func TestSubmitEdit_AppliesChangedFields(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)
	HandleHabitMessages(m, detail.EditHabitMsg{ID: h.ID})
	m.HabitForm.Name = "Corrida"
	m.HabitForm.Active = false

	require.NoError(t, SubmitEdit(m))

	assert.Equal(t, constants.StateDetail, m.State)
	got, err := m.Store.GetHabit(h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corrida", got.Name)
	assert.False(t, got.Active)
	assert.Equal(t, h.WeeklyFrequency, got.WeeklyFrequency)

	shown, _ := m.DetailModel.Habit()
	assert.Equal(t, got, shown)
}

func TestSubmitEdit_InvalidLeavesRecord(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)
	HandleHabitMessages(m, detail.EditHabitMsg{ID: h.ID})
	m.HabitForm.WeeklyFrequency = "8"

	err := SubmitEdit(m)
	require.Error(t, err)
	assert.Equal(t, constants.StateEdit, m.State)

	got, _ := m.Store.GetHabit(h.ID)
	assert.Equal(t, h, got)
}

func TestSubmitEdit_HabitRemovedMeanwhile(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)
	HandleHabitMessages(m, detail.EditHabitMsg{ID: h.ID})
	m.HabitForm.Name = "Corrida"
	require.NoError(t, m.Store.RemoveHabit(h.ID))

	err := SubmitEdit(m)
	assert.ErrorIs(t, err, storage.ErrHabitNotFound)
	assert.Equal(t, 0, m.Store.Count())
}

func TestHandleEditState_EscWithoutChanges(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)
	HandleHabitMessages(m, detail.EditHabitMsg{ID: h.ID})

	HandleEditState(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, constants.StateDetail, m.State)
}

func TestDiscardConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyMsg
		wantState constants.SessionState
	}{
		{"discard", keyMsg("y"), constants.StateDetail},
		{"keep editing", keyMsg("n"), constants.StateEdit},
		{"esc keeps editing", tea.KeyMsg{Type: tea.KeyEsc}, constants.StateEdit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupModel(t)
			h := seedHabit(t, m)
			HandleHabitMessages(m, detail.EditHabitMsg{ID: h.ID})
			m.HabitForm.Name = "Corrida"

			HandleEditState(m, tea.KeyMsg{Type: tea.KeyEsc})
			require.Equal(t, constants.StateConfirmDiscard, m.State)

			HandleConfirmDiscardState(m, tt.key)
			assert.Equal(t, tt.wantState, m.State)

			got, _ := m.Store.GetHabit(h.ID)
			assert.Equal(t, h, got, "nothing is saved on cancel")
		})
	}
}

func TestBackMsg(t *testing.T) {
	m := setupModel(t)
	h := seedHabit(t, m)
	HandleHabitMessages(m, habits.ShowHabitMsg{ID: h.ID})

	HandleHabitMessages(m, detail.BackMsg{})

	assert.Equal(t, constants.StateList, m.State)
	assert.Empty(t, m.SelectedID)
}

func TestHandleGlobalKeys(t *testing.T) {
	m := setupModel(t)

	handled, cmd := HandleGlobalKeys(m, keyMsg("q"))
	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.True(t, m.Quitting)

	m = setupModel(t)
	HandleHabitMessages(m, habits.AddHabitMsg{})
	handled, _ = HandleGlobalKeys(m, keyMsg("q"))
	assert.False(t, handled, "q is text input inside a form")
	assert.False(t, m.Quitting)

	handled, _ = HandleGlobalKeys(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, handled)
	assert.True(t, m.Quitting)
}
