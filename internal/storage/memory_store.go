package storage

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/julianstephens/habito/internal/logger"
	"github.com/julianstephens/habito/internal/models"
	"github.com/julianstephens/habito/internal/validation"
)

var _ Provider = (*MemoryStore)(nil)

// MemoryStore keeps habits in insertion order for the life of the process.
// Every record is re-validated before it is stored.
type MemoryStore struct {
	mu        sync.RWMutex
	habits    []models.Habit
	validator *validation.Validator
	newID     func() string
}

// NewMemoryStore creates an empty store. A nil validator gets the default one.
func NewMemoryStore(v *validation.Validator) *MemoryStore {
	if v == nil {
		v = validation.New()
	}
	return &MemoryStore{
		validator: v,
		newID:     uuid.NewString,
	}
}

func (s *MemoryStore) AddHabit(d models.Draft) (models.Habit, error) {
	habit := d.Habit(s.newID())
	if err := s.validator.ValidateHabit(habit); err != nil {
		return models.Habit{}, fmt.Errorf("invalid habit: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(habit.ID) >= 0 {
		return models.Habit{}, fmt.Errorf("duplicate habit id: %s", habit.ID)
	}
	s.habits = append(s.habits, habit)

	logger.Debug("Habit added", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

func (s *MemoryStore) GetHabit(id string) (models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	return s.habits[i], nil
}

func (s *MemoryStore) GetAllHabits() []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.habits)
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.habits)
}

func (s *MemoryStore) UpdateHabit(p models.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(p.ID)
	if i < 0 {
		logger.Warn("Update skipped, habit not found", "id", p.ID)
		return fmt.Errorf("%w: %s", ErrHabitNotFound, p.ID)
	}

	updated := p.Apply(s.habits[i])
	if err := s.validator.ValidateHabit(updated); err != nil {
		return fmt.Errorf("invalid habit: %w", err)
	}
	s.habits[i] = updated

	logger.Debug("Habit updated", "id", p.ID)
	return nil
}

func (s *MemoryStore) ToggleHabitActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		logger.Warn("Toggle skipped, habit not found", "id", id)
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	s.habits[i].Active = !s.habits[i].Active

	logger.Debug("Habit toggled", "id", id, "active", s.habits[i].Active)
	return nil
}

func (s *MemoryStore) RemoveHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		logger.Warn("Remove skipped, habit not found", "id", id)
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	s.habits = slices.Delete(s.habits, i, i+1)

	logger.Debug("Habit removed", "id", id)
	return nil
}

// indexOf must be called with the lock held
func (s *MemoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.habits, func(h models.Habit) bool {
		return h.ID == id
	})
}
