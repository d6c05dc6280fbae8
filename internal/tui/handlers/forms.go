package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habito/internal/constants"
	"github.com/julianstephens/habito/internal/models"
	"github.com/julianstephens/habito/internal/tui/state"
	"github.com/julianstephens/habito/internal/utils"
	"github.com/julianstephens/habito/internal/validation"
)

// NewCreateFormModel returns the values a fresh create form starts with
func NewCreateFormModel(today string) *state.HabitFormModel {
	return &state.HabitFormModel{
		Name:             "",
		WeeklyFrequency:  strconv.Itoa(constants.DefaultWeeklyFrequency),
		DailyGoalMinutes: strconv.Itoa(constants.DefaultDailyGoalMinutes),
		StartDate:        today,
		Active:           constants.DefaultActive,
	}
}

// NewEditFormModel prefills the edit form from a stored habit
func NewEditFormModel(h models.Habit) *state.HabitFormModel {
	return &state.HabitFormModel{
		Name:             h.Name,
		WeeklyFrequency:  strconv.Itoa(h.WeeklyFrequency),
		DailyGoalMinutes: strconv.Itoa(h.DailyGoalMinutes),
		StartDate:        h.StartDate,
		Active:           h.Active,
	}
}

// NewCreateForm creates a new form for adding habits
func NewCreateForm(fm *state.HabitFormModel, v *validation.Validator) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(habitFields(fm, v)...),
	).WithTheme(huh.ThemeDracula())
}

// NewEditForm creates a new form for editing habits
func NewEditForm(fm *state.HabitFormModel, v *validation.Validator) *huh.Form {
	fields := append(habitFields(fm, v),
		huh.NewConfirm().
			Title("Ativo").
			Affirmative("Sim").
			Negative("Não").
			Value(&fm.Active),
	)
	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(huh.ThemeDracula())
}

func habitFields(fm *state.HabitFormModel, v *validation.Validator) []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title("Nome").
			Placeholder("Ex: Exercício").
			Value(&fm.Name).
			Validate(fieldValidator(v, constants.FieldName, asString)),
		huh.NewInput().
			Title("Frequência semanal (1-7)").
			Value(&fm.WeeklyFrequency).
			Validate(fieldValidator(v, constants.FieldWeeklyFrequency, asCount)),
		huh.NewInput().
			Title("Meta diária (minutos)").
			Value(&fm.DailyGoalMinutes).
			Validate(fieldValidator(v, constants.FieldDailyGoalMinutes, asCount)),
		huh.NewInput().
			Title("Data de início (AAAA-MM-DD)").
			Value(&fm.StartDate).
			Validate(fieldValidator(v, constants.FieldStartDate, asString)),
	}
}

// fieldValidator adapts a single field rule to huh's Validate hook
func fieldValidator(v *validation.Validator, field string, conv func(string) any) func(string) error {
	return func(s string) error {
		if msgs := v.ValidateField(field, conv(s)); len(msgs) > 0 {
			return errors.New(strings.Join(msgs, "; "))
		}
		return nil
	}
}

func asString(s string) any { return strings.TrimSpace(s) }

func asCount(s string) any { return utils.ParseCount(s) }

// createInput converts the form values into a create payload
func createInput(fm *state.HabitFormModel) models.CreateInput {
	return models.CreateInput{
		Name:             strings.TrimSpace(fm.Name),
		WeeklyFrequency:  utils.ParseCount(fm.WeeklyFrequency),
		DailyGoalMinutes: utils.ParseCount(fm.DailyGoalMinutes),
		StartDate:        strings.TrimSpace(fm.StartDate),
		Active:           models.Ptr(fm.Active),
	}
}

// updateInput carries only the fields changed since the form was opened
func updateInput(id string, orig, fm state.HabitFormModel) models.UpdateInput {
	in := models.UpdateInput{ID: id}
	if fm.Name != orig.Name {
		in.Name = models.Ptr(strings.TrimSpace(fm.Name))
	}
	if fm.WeeklyFrequency != orig.WeeklyFrequency {
		in.WeeklyFrequency = models.Ptr(utils.ParseCount(fm.WeeklyFrequency))
	}
	if fm.DailyGoalMinutes != orig.DailyGoalMinutes {
		in.DailyGoalMinutes = models.Ptr(utils.ParseCount(fm.DailyGoalMinutes))
	}
	if fm.StartDate != orig.StartDate {
		in.StartDate = models.Ptr(strings.TrimSpace(fm.StartDate))
	}
	if fm.Active != orig.Active {
		in.Active = models.Ptr(fm.Active)
	}
	return in
}
