package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bzimmer/workout"
)

func config(c *cli.Context) (*workout.Config, error) {
	if !c.IsSet("config") {
		log.Info().Str("file", "etc/packages.yaml").Msg("config")
		return workout.DefaultConfig()
	}
	log.Info().Str("file", c.String("config")).Msg("config")
	fp, err := os.Open(c.String("config"))
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	val, err := io.ReadAll(fp)
	if err != nil {
		return nil, err
	}
	return workout.LoadConfig(val)
}

func reporter(c *cli.Context) *workout.Reporter {
	return workout.NewReporter(c.App.Writer, c.Bool("json"))
}

func run(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	return workout.Run(cfg.Packages, reporter(c))
}

func summary(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("missing type code")
	}
	args := c.Args().Slice()
	params := make([]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parse param %q: %w", arg, err)
		}
		params = append(params, val)
	}
	rec, err := workout.Process(workout.Package{Code: args[0], Params: params})
	if err != nil {
		return err
	}
	return reporter(c).Report(rec)
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "workout",
		HelpName: "workout",
		Usage:    "Summarize workout sensor readings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "file with workout packages",
			},
			&cli.BoolFlag{
				Name:  "json",
				Value: false,
				Usage: "emit one json record per line",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   false,
				Usage:   "enable debug logging",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "summary",
				Usage:     "Summarize a single package",
				ArgsUsage: "CODE PARAM...",
				Action:    summary,
			},
		},
		Action: run,
	}
}

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
