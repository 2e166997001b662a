package cmd

import (
	"log/slog"

	"github.com/pseudomuto/flakefmt/pkg/grammar"
	"github.com/pseudomuto/flakefmt/pkg/parser"
	"go.uber.org/fx"
)

var Module = fx.Module("cli",
	fx.Provide(
		grammar.New,
		func(g *grammar.Grammar, logger *slog.Logger) *parser.Parser {
			return parser.New(g, parser.WithLogger(logger))
		},
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
