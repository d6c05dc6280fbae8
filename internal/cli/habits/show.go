package habits

import (
	"fmt"

	"github.com/julianstephens/habito/internal/cli"
	"github.com/julianstephens/habito/internal/utils"
)

type ShowCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabit(c.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "%s\n", habit.Name)
	fmt.Fprintf(ctx.Out, "  Status:     %s\n", utils.FormatStatus(habit.Active))
	fmt.Fprintf(ctx.Out, "  Frequência: %d dias/semana\n", habit.WeeklyFrequency)
	fmt.Fprintf(ctx.Out, "  Meta:       %d minutos\n", habit.DailyGoalMinutes)
	fmt.Fprintf(ctx.Out, "  Início:     %s\n", utils.FormatDisplayDate(habit.StartDate))
	fmt.Fprintf(ctx.Out, "  ID:         %s\n", habit.ID)
	return nil
}
