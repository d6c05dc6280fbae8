package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/habito/internal/constants"
	"github.com/julianstephens/habito/internal/models"
	"github.com/julianstephens/habito/internal/tui/state"
	"github.com/julianstephens/habito/internal/validation"
)

func TestFieldValidator(t *testing.T) {
	v := setupModel(t).Validator

	tests := []struct {
		name    string
		field   string
		conv    func(string) any
		input   string
		wantErr string
	}{
		{"name ok", constants.FieldName, asString, "Leitura", ""},
		{"name short", constants.FieldName, asString, "AB", validation.MsgNameTooShort},
		{"frequency ok", constants.FieldWeeklyFrequency, asCount, "7", ""},
		{"frequency high", constants.FieldWeeklyFrequency, asCount, "8", validation.MsgFrequencyTooHigh},
		{"frequency not a number", constants.FieldWeeklyFrequency, asCount, "x", validation.MsgFrequencyTooLow},
		{"goal zero", constants.FieldDailyGoalMinutes, asCount, "0", validation.MsgGoalNotPositive},
		{"date today", constants.FieldStartDate, asString, "2024-06-15", ""},
		{"date future", constants.FieldStartDate, asString, "2024-06-16", validation.MsgStartDateInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fieldValidator(v, tt.field, tt.conv)(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUpdateInput_OnlyChangedFields(t *testing.T) {
	orig := state.HabitFormModel{Name: "Exercício", WeeklyFrequency: "5", DailyGoalMinutes: "30", StartDate: "2024-01-01", Active: true}
	changed := orig
	changed.DailyGoalMinutes = "45"

	in := updateInput("id-1", orig, changed)

	assert.Equal(t, models.UpdateInput{ID: "id-1", DailyGoalMinutes: models.Ptr(45)}, in)
}

func TestCreateInput_TrimsAndParses(t *testing.T) {
	in := createInput(&state.HabitFormModel{Name: "  Yoga ", WeeklyFrequency: " 3", DailyGoalMinutes: "15", StartDate: "2024-01-01", Active: false})

	assert.Equal(t, "Yoga", in.Name)
	assert.Equal(t, 3, in.WeeklyFrequency)
	assert.Equal(t, 15, in.DailyGoalMinutes)
	assert.Equal(t, models.Ptr(false), in.Active)
}
