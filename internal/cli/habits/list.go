package habits

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/habito/internal/cli"
	"github.com/julianstephens/habito/internal/models"
	"github.com/julianstephens/habito/internal/utils"
)

type ListCmd struct {
	ActiveOnly bool `help:"Only show active habits." short:"a"`
	ShowIDs    bool `help:"Include habit IDs in the output." name:"ids"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	habits := ctx.Store.GetAllHabits()
	if c.ActiveOnly {
		habits = filterActive(habits)
	}

	if len(habits) == 0 {
		fmt.Fprintln(ctx.Out, "Nenhum hábito cadastrado")
		return nil
	}

	headers := []string{"Nome", "Status", "Frequência", "Meta", "Início"}
	if c.ShowIDs {
		headers = append([]string{"ID"}, headers...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for _, h := range habits {
		row := []string{
			h.Name,
			utils.FormatStatus(h.Active),
			utils.FormatFrequency(h.WeeklyFrequency),
			utils.FormatGoal(h.DailyGoalMinutes),
			utils.FormatDisplayDate(h.StartDate),
		}
		if c.ShowIDs {
			row = append([]string{h.ID}, row...)
		}
		t.Row(row...)
	}

	fmt.Fprintln(ctx.Out, "Meus Hábitos:")
	fmt.Fprintln(ctx.Out, t.String())
	return nil
}

func filterActive(habits []models.Habit) []models.Habit {
	var active []models.Habit
	for _, h := range habits {
		if h.Active {
			active = append(active, h)
		}
	}
	return active
}
