package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Level      *slog.LevelVar
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the CLI with the fx lifecycle. The command line in p.Args is
// executed when the application starts, after which the application shuts down
// with exit code 1 on failure and 0 otherwise.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := NewApp(p.Version, p.Level, p.Commands...)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// NewApp creates the root flakefmt command.
//
// The global --verbose flag lowers level to debug before any subcommand runs,
// so loggers built around level pick the change up.
//
// Example:
//
//	level := new(slog.LevelVar)
//	app := cmd.NewApp(&cmd.Version{Version: "v1.0.0"}, level, commands...)
//	err := app.Run(ctx, []string{"flakefmt", "fmt", "-w", "models/"})
func NewApp(v *Version, level *slog.LevelVar, commands ...*cli.Command) *cli.Command {
	if v == nil {
		v = &Version{}
	}

	return &cli.Command{
		Name:  "flakefmt",
		Usage: "An opinionated formatter for Snowflake SQL",
		Description: `flakefmt rewrites Snowflake SQL files into a single canonical layout:
upper-cased keywords, leading-comma column lists and one clause per line.`,
		Version: v.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") && level != nil {
				level.Set(slog.LevelDebug)
			}
			return ctx, nil
		},
		Commands: commands,
	}
}
