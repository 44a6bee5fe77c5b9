package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nlopes/slack"
	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v2"

	"nstravel/internal/config"
	"nstravel/internal/display"
	"nstravel/internal/poller"
	"nstravel/pkg/legacy"
	"nstravel/pkg/nsapi"
)

// sources hands out the poller source a display asks for.
type sources struct {
	api    *nsapi.Client
	legacy *legacy.Client
	lang   string
}

func (s sources) forDisplay(d config.Display) (poller.Source, error) {
	switch d.Source {
	case "legacy":
		if s.legacy == nil {
			return nil, fmt.Errorf("display %s: no webservice credentials configured", d.Station)
		}
		return poller.LegacySource{Client: s.legacy}, nil
	default:
		if s.api == nil {
			return nil, fmt.Errorf("display %s: no API key configured", d.Station)
		}
		return poller.APISource{Client: s.api, Lang: s.lang}, nil
	}
}

// runner is a display that renders on its own goroutine.
type runner interface {
	poller.Sink
	Run(ctx context.Context)
}

func boardCommand() *cli.Command {
	return &cli.Command{
		Name:      "board",
		Usage:     "keep departure boards up to date",
		ArgsUsage: "[station...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "fullscreen", Aliases: []string{"f"}, Usage: "clear the terminal before every update"},
			&cli.IntFlag{Name: "rows", Aliases: []string{"n"}, Value: config.DefaultRows},
			&cli.DurationFlag{Name: "interval", Value: config.DefaultPollInterval},
			&cli.IntFlag{Name: "threshold", Usage: "highlight delays of at least this many minutes"},
			&cli.StringFlag{Name: "filter", Usage: "expression a row must satisfy, e.g. 'Category == \"IC\"'"},
			&cli.BoolFlag{Name: "legacy", Usage: "poll the XML webservices instead of the API"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "display file (yaml or toml)", EnvVars: []string{"DISPLAY_FILE"}},
			&cli.StringFlag{Name: "slack-token", EnvVars: []string{"SLACK_TOKEN"}},
			&cli.StringFlag{Name: "slack-channel", EnvVars: []string{"SLACK_CHANNEL"}},
			langFlag(),
		},
		Action: func(c *cli.Context) error {
			displays, err := boardDisplays(c)
			if err != nil {
				return err
			}

			var src sources
			src.lang = c.String("lang")
			if c.String("api-key") != "" {
				if src.api, err = apiClient(c); err != nil {
					return err
				}
			}
			if c.String("legacy-user") != "" {
				if src.legacy, err = legacyClient(c); err != nil {
					return err
				}
			}

			logger := slog.Default()
			group := poller.NewGroup(logger)
			var runners []runner
			for _, d := range displays {
				source, err := src.forDisplay(d)
				if err != nil {
					return err
				}
				r, err := boardSink(c, d, logger)
				if err != nil {
					return err
				}
				p, err := poller.New(source, r, d, logger)
				if err != nil {
					return err
				}
				group.Add(p)
				runners = append(runners, r)
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var wg conc.WaitGroup
			for _, r := range runners {
				wg.Go(func() { r.Run(ctx) })
			}
			wg.Go(func() { group.Run(ctx) })
			wg.Wait()
			return nil
		},
	}
}

// boardDisplays builds the displays from the display file, or from the
// arguments and flags when no file is given.
func boardDisplays(c *cli.Context) ([]config.Display, error) {
	if path := c.String("config"); path != "" {
		return config.LoadDisplays(path)
	}
	if c.NArg() == 0 {
		return nil, cli.Exit("expected at least one station, or --config", 2)
	}

	source := "api"
	if c.Bool("legacy") {
		source = "legacy"
	}
	sink := "terminal"
	if c.String("slack-channel") != "" {
		sink = "slack"
	}

	displays := make([]config.Display, 0, c.NArg())
	for _, station := range c.Args().Slice() {
		d := config.Display{
			Station:        station,
			Rows:           c.Int("rows"),
			Interval:       c.Duration("interval"),
			Fullscreen:     c.Bool("fullscreen"),
			DelayThreshold: c.Int("threshold"),
			Filter:         c.String("filter"),
			Source:         source,
			Sink:           sink,
		}.WithDefaults()
		if err := d.Validate(); err != nil {
			return nil, err
		}
		displays = append(displays, d)
	}
	return displays, nil
}

func boardSink(c *cli.Context, d config.Display, logger *slog.Logger) (runner, error) {
	switch d.Sink {
	case "terminal":
		return display.NewTerminal(os.Stdout, d, logger), nil
	case "slack":
		token, channel := c.String("slack-token"), c.String("slack-channel")
		if token == "" || channel == "" {
			return nil, fmt.Errorf("display %s: slack needs --slack-token and --slack-channel", d.Station)
		}
		return display.NewSlack(slack.New(token), channel, d, logger), nil
	default:
		return nil, fmt.Errorf("display %s: sink %q is only available to serve", d.Station, d.Sink)
	}
}
