package main

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"nstravel/internal/cache"
	"nstravel/internal/config"
	"nstravel/internal/domain"
	"nstravel/internal/poller"
	"nstravel/pkg/legacy"
)

func stationCacheFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "station-cache",
		Usage:   "file the station list is cached in (empty disables caching)",
		Value:   config.DefaultStationCacheFile(),
		EnvVars: []string{"STATION_CACHE_FILE"},
	}
}

// stationIndex loads the station list from the cache file, downloading it
// when the file is missing or unreadable.
func stationIndex(c *cli.Context, client *legacy.Client) (*legacy.StationIndex, error) {
	var store legacy.StationStore
	if path := c.String("station-cache"); path != "" {
		store = cache.NewFileCache(path)
	}
	return legacy.LoadOrFetch(c.Context, client, store)
}

// stationResolver maps names and synonyms onto station codes. Unknown input
// is passed on unchanged so the webservice can report on it.
func stationResolver(c *cli.Context, client *legacy.Client) func(string) string {
	idx, err := stationIndex(c, client)
	if err != nil {
		slog.Warn("station list unavailable", "error", err)
	}
	return func(query string) string {
		if idx == nil {
			return query
		}
		if s, ok := idx.Find(query); ok {
			return s.Code
		}
		return query
	}
}

func legacyCommand() *cli.Command {
	return &cli.Command{
		Name:  "legacy",
		Usage: "query the XML webservices",
		Subcommands: []*cli.Command{
			{
				Name:      "departures",
				Usage:     "show the live departure board of a station",
				ArgsUsage: "<station>",
				Flags:     []cli.Flag{stationCacheFlag()},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("expected exactly one station", 2)
					}
					client, err := legacyClient(c)
					if err != nil {
						return err
					}
					code := stationResolver(c, client)(c.Args().First())
					deps, err := client.Departures(c.Context, code)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return writeJSON(c.App.Writer, deps)
					}
					rows := make([]*domain.Row, 0, len(deps))
					for _, d := range deps {
						rows = append(rows, poller.RowFromLegacy(d))
					}
					return writeBoard(c.App.Writer, code, rows, domain.SourceLegacy, time.Now())
				},
			},
			{
				Name:      "plan",
				Usage:     "plan a journey",
				ArgsUsage: "<from> <to>",
				Flags: []cli.Flag{
					stationCacheFlag(),
					whenFlag("departure time"),
					&cli.StringFlag{Name: "via"},
					&cli.BoolFlag{Name: "arrive", Usage: "treat --at as the arrival time"},
					&cli.IntFlag{Name: "previous", Usage: "number of earlier options"},
					&cli.IntFlag{Name: "next", Usage: "number of later options"},
					&cli.BoolFlag{Name: "no-hsl", Usage: "exclude high speed trains"},
					&cli.BoolFlag{Name: "year-card"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("expected a from and a to station", 2)
					}
					client, err := legacyClient(c)
					if err != nil {
						return err
					}
					when, err := parseWhen(c.String("at"), time.Now())
					if err != nil {
						return err
					}
					resolve := stationResolver(c, client)
					q := legacy.PlanQuery{
						From:            resolve(c.Args().Get(0)),
						To:              resolve(c.Args().Get(1)),
						PreviousAdvices: c.Int("previous"),
						NextAdvices:     c.Int("next"),
						DateTime:        when,
						ArriveBy:        c.Bool("arrive"),
						NoHSL:           c.Bool("no-hsl"),
						YearCard:        c.Bool("year-card"),
					}
					if via := c.String("via"); via != "" {
						q.Via = resolve(via)
					}
					options, err := client.Plan(c.Context, q)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return writeJSON(c.App.Writer, options)
					}
					return writePlan(c.App.Writer, options)
				},
			},
			{
				Name:      "stations",
				Usage:     "list stations, or look one up",
				ArgsUsage: "[name]",
				Flags: []cli.Flag{
					stationCacheFlag(),
					&cli.BoolFlag{Name: "refresh", Usage: "download the list even when cached"},
				},
				Action: func(c *cli.Context) error {
					client, err := legacyClient(c)
					if err != nil {
						return err
					}

					var idx *legacy.StationIndex
					if c.Bool("refresh") {
						var stores []legacy.StationStore
						if path := c.String("station-cache"); path != "" {
							stores = append(stores, cache.NewFileCache(path))
						}
						idx = legacy.NewStationIndex(nil)
						w := cache.NewStationWarmer(client, idx, 0, slog.Default(), stores...)
						if err := w.Refresh(c.Context); err != nil {
							return err
						}
					} else if idx, err = stationIndex(c, client); err != nil {
						return err
					}

					stations := idx.Stations()
					if q := c.Args().First(); q != "" {
						s, ok := idx.Find(q)
						if !ok {
							return cli.Exit("no station matches "+q, 1)
						}
						stations = []legacy.Station{s}
					}
					if c.Bool("json") {
						return writeJSON(c.App.Writer, stations)
					}
					return writeLegacyStations(c.App.Writer, stations)
				},
			},
		},
	}
}
