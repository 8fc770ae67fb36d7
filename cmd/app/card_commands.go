package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/binbot/cmd/app/commands"
	"github.com/allisson/binbot/internal/app"
	cardDomain "github.com/allisson/binbot/internal/card/domain"
	"github.com/allisson/binbot/internal/config"
)

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate test cards from a pattern without touching the network or the database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "pattern",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Card pattern, e.g. 424242xxxxxx|rnd|rnd|rnd",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   cardDomain.DefaultBatchSize,
					Usage:   "Number of entries to generate",
				},
				&cli.StringFlag{
					Name:    "mode",
					Aliases: []string{"m"},
					Value:   string(cardDomain.ModeFull),
					Usage:   "Output mode: 'full' or 'date_only'",
				},
				&cli.IntFlag{
					Name:    "seed",
					Aliases: []string{"s"},
					Usage:   "Random seed for reproducible output (defaults to CARD_RANDOM_SEED)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if seed := cmd.Int("seed"); seed > 0 {
					cfg.CardRandomSeed = uint64(seed)
				}
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunGenerate(
					ctx,
					container.OfflineCardUseCase(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("pattern"),
					int(cmd.Int("count")),
					cmd.String("mode"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "lookup-bin",
			Usage: "Resolve issuer metadata for a BIN",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "bin",
					Aliases:  []string{"b"},
					Required: true,
					Usage:    "Six to eight leading card digits",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunLookupBin(
					ctx,
					cardUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("bin"),
					cmd.String("format"),
				)
			},
		},
	}
}
