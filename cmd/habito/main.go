package main

import (
	"errors"
	"io/fs"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habito/internal/cli"
	"github.com/julianstephens/habito/internal/cli/habits"
	"github.com/julianstephens/habito/internal/cli/system"
	"github.com/julianstephens/habito/internal/constants"
	apperrors "github.com/julianstephens/habito/internal/errors"
	"github.com/julianstephens/habito/internal/logger"
	"github.com/julianstephens/habito/internal/storage"
	"github.com/julianstephens/habito/internal/validation"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Directory for logs and local configuration." type:"path" default:"${config_dir}"`
	Debug     bool   `help:"Enable debug logging to stderr."`
	Seed      string `help:"YAML file of habits to preload into memory." type:"existingfile"`

	Tui   system.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	List  habits.ListCmd  `cmd:"" help:"List habits."`
	Show  habits.ShowCmd  `cmd:"" help:"Show a habit."`
	Check habits.CheckCmd `cmd:"" help:"Validate a habit without saving it."`
}

func main() {
	// A missing .env file is fine; flags and the environment still apply
	envErr := godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker for the terminal"),
		kong.UsageOnError(),
		kong.DefaultEnvars(constants.EnvPrefix),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"config_dir": constants.DefaultConfigDir,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: CLI.ConfigDir}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("Failed to load .env file", "error", envErr)
	}

	v := validation.New()
	store := storage.NewMemoryStore(v)

	if CLI.Seed != "" {
		if _, err := storage.SeedFromFile(CLI.Seed, v, store); err != nil {
			apperrors.Fatal(err)
		}
	}

	appCtx := cli.NewContext(store, v)
	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
