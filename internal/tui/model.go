package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habito/internal/storage"
	"github.com/julianstephens/habito/internal/tui/state"
	"github.com/julianstephens/habito/internal/validation"
)

type Model struct {
	state.Model
}

func NewModel(store storage.Provider, v *validation.Validator) Model {
	return Model{Model: state.New(store, v)}
}

func (m Model) Init() tea.Cmd {
	return nil
}
