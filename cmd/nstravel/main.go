package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"nstravel/internal/config"
	"nstravel/pkg/legacy"
	"nstravel/pkg/nsapi"

	_ "time/tzdata"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nstravel:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "nstravel",
		Usage:   "Dutch railway travel information from the NS APIs",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-key", Usage: "subscription key of the travel information API", EnvVars: []string{"NS_API_KEY"}},
			&cli.StringFlag{Name: "api-url", Value: nsapi.DefaultBaseURL, EnvVars: []string{"NS_API_URL"}},
			&cli.StringFlag{Name: "legacy-user", Usage: "user of the XML webservices", EnvVars: []string{"NS_LEGACY_USER"}},
			&cli.StringFlag{Name: "legacy-password", EnvVars: []string{"NS_LEGACY_PASSWORD"}},
			&cli.StringFlag{Name: "legacy-url", Value: legacy.DefaultBaseURL, EnvVars: []string{"NS_LEGACY_URL"}},
			&cli.StringFlag{Name: "log-level", Value: "warn", EnvVars: []string{"LOG_LEVEL"}},
			&cli.BoolFlag{Name: "strict", Usage: "fail on missing required fields", EnvVars: []string{"STRICT_DECODING"}},
			&cli.BoolFlag{Name: "json", Usage: "print decoded records as JSON"},
		},
		Before: func(c *cli.Context) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: config.ParseLevel(c.String("log-level"), slog.LevelWarn),
			}))
			slog.SetDefault(logger)
			return nil
		},
		Commands: []*cli.Command{
			stationsCommand(),
			departuresCommand(),
			arrivalsCommand(),
			tripsCommand(),
			tripCommand(),
			journeyCommand(),
			calamitiesCommand(),
			priceCommand(),
			boardCommand(),
			legacyCommand(),
			inspectCommand(),
			rawCommand(),
			serveCommand(),
		},
	}
}

func apiClient(c *cli.Context) (*nsapi.Client, error) {
	key := c.String("api-key")
	if key == "" {
		return nil, cli.Exit("an API key is required (--api-key or NS_API_KEY)", 2)
	}
	opts := []nsapi.Option{nsapi.WithLogger(slog.Default())}
	if c.Bool("strict") {
		opts = append(opts, nsapi.WithStrictDecoding())
	}
	return nsapi.New(c.String("api-url"), key, opts...), nil
}

func legacyClient(c *cli.Context) (*legacy.Client, error) {
	user := c.String("legacy-user")
	if user == "" {
		return nil, cli.Exit("webservice credentials are required (--legacy-user or NS_LEGACY_USER)", 2)
	}
	return legacy.New(c.String("legacy-url"), user, c.String("legacy-password"), slog.Default()), nil
}
