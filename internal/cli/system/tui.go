package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habito/internal/cli"
	"github.com/julianstephens/habito/internal/logger"
	"github.com/julianstephens/habito/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	logger.Debug("Starting TUI", "habits", ctx.Store.Count())

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Validator), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
