package habits

import (
	"fmt"

	"github.com/julianstephens/habito/internal/cli"
	"github.com/julianstephens/habito/internal/models"
	"github.com/julianstephens/habito/internal/utils"
	"github.com/julianstephens/habito/internal/validation"
)

// CheckCmd runs a create payload through the validator without storing it
type CheckCmd struct {
	Name      string `help:"Habit name." default:""`
	Frequency int    `help:"Times per week (1-7)." default:"1"`
	Goal      int    `help:"Daily goal in minutes." default:"30"`
	Start     string `help:"Start date in YYYY-MM-DD format (default: today)." default:""`
	Inactive  bool   `help:"Create the habit inactive."`
}

func (c *CheckCmd) Run(ctx *cli.Context) error {
	start := c.Start
	if start == "" {
		start = utils.Today(ctx.Now())
	}

	in := models.CreateInput{
		Name:             c.Name,
		WeeklyFrequency:  c.Frequency,
		DailyGoalMinutes: c.Goal,
		StartDate:        start,
	}
	if c.Inactive {
		in.Active = models.Ptr(false)
	}

	if _, err := ctx.Validator.ValidateCreate(in); err != nil {
		return err
	}

	fmt.Fprintln(ctx.Out, validation.FormatReport(nil))
	return nil
}
