package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pseudomuto/flakefmt/pkg/cmd"
	"go.uber.org/fx"
)

// NB: These are set with -ldflags during a release build.
var (
	version string
	commit  string
	date    string
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	fx.New(
		fx.NopLogger,
		fx.Supply(
			level,
			logger,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		fx.Provide(
			func() []string { return os.Args },
			func() context.Context { return context.Background() },
		),
		cmd.Module,
	).Run()
}
