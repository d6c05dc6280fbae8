package storage

import (
	"errors"

	"github.com/julianstephens/habito/internal/models"
)

// ErrHabitNotFound is returned when no habit has the requested ID.
// The operation that returned it made no change.
var ErrHabitNotFound = errors.New("habit not found")

type Provider interface {
	// Habits
	AddHabit(models.Draft) (models.Habit, error)
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() []models.Habit
	UpdateHabit(models.Patch) error
	ToggleHabitActive(id string) error
	RemoveHabit(id string) error
	Count() int
}
