package main

import (
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"nstravel/internal/domain"
	"nstravel/internal/poller"
	"nstravel/pkg/nsapi"
)

func langFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "lang", Usage: "language of texts (nl or en)", Value: "nl"}
}

func whenFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{Name: "at", Usage: usage + " (RFC 3339, \"2006-01-02 15:04\" or \"15:04\")"}
}

func stationsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stations",
		Usage:     "search stations by name",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "country", Usage: "country codes to include"},
			&cli.IntFlag{Name: "limit", Value: 10},
			&cli.BoolFlag{Name: "all", Usage: "include stations that cannot be planned"},
		},
		Action: func(c *cli.Context) error {
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			resp, err := client.Stations(c.Context, nsapi.StationsQuery{
				Q:                           c.Args().First(),
				CountryCodes:                c.StringSlice("country"),
				Limit:                       c.Int("limit"),
				IncludeNonPlannableStations: c.Bool("all"),
			})
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp.Payload)
			}
			return writeStations(c.App.Writer, resp.Payload)
		},
	}
}

func boardQuery(c *cli.Context) (nsapi.BoardQuery, error) {
	if c.NArg() != 1 {
		return nsapi.BoardQuery{}, cli.Exit("expected exactly one station code", 2)
	}
	when, err := parseWhen(c.String("at"), time.Now())
	if err != nil {
		return nsapi.BoardQuery{}, err
	}
	return nsapi.BoardQuery{
		Station:     c.Args().First(),
		DateTime:    when,
		MaxJourneys: c.Int("max"),
		Lang:        c.String("lang"),
	}, nil
}

func departuresCommand() *cli.Command {
	return &cli.Command{
		Name:      "departures",
		Usage:     "show the departures of a station",
		ArgsUsage: "<station>",
		Flags:     []cli.Flag{langFlag(), whenFlag("departure time"), &cli.IntFlag{Name: "max", Value: 10}},
		Action: func(c *cli.Context) error {
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			q, err := boardQuery(c)
			if err != nil {
				return err
			}
			resp, err := client.Departures(c.Context, q)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp.Payload)
			}
			rows := make([]*domain.Row, 0, len(resp.Payload.Departures))
			for _, d := range resp.Payload.Departures {
				rows = append(rows, poller.RowFromDeparture(d))
			}
			return writeBoard(c.App.Writer, q.Station, rows, domain.SourceAPI, time.Now())
		},
	}
}

func arrivalsCommand() *cli.Command {
	return &cli.Command{
		Name:      "arrivals",
		Usage:     "show the arrivals of a station",
		ArgsUsage: "<station>",
		Flags:     []cli.Flag{langFlag(), whenFlag("arrival time"), &cli.IntFlag{Name: "max", Value: 10}},
		Action: func(c *cli.Context) error {
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			q, err := boardQuery(c)
			if err != nil {
				return err
			}
			resp, err := client.Arrivals(c.Context, q)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp.Payload)
			}
			return writeArrivals(c.App.Writer, resp.Payload.Arrivals)
		},
	}
}

func tripsCommand() *cli.Command {
	return &cli.Command{
		Name:      "trips",
		Usage:     "plan trips between two stations",
		ArgsUsage: "<from> <to>",
		Flags: []cli.Flag{
			langFlag(),
			whenFlag("departure time"),
			&cli.StringFlag{Name: "via"},
			&cli.BoolFlag{Name: "arrive", Usage: "treat --at as the arrival time"},
			&cli.IntFlag{Name: "class", Usage: "travel class (1 or 2)"},
			&cli.BoolFlag{Name: "no-hsl", Usage: "exclude high speed trains"},
			&cli.StringFlag{Name: "context", Usage: "scroll context of an earlier result"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("expected a from and a to station", 2)
			}
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			when, err := parseWhen(c.String("at"), time.Now())
			if err != nil {
				return err
			}
			advice, err := client.Trips(c.Context, nsapi.TripsQuery{
				FromStation:      c.Args().Get(0),
				ToStation:        c.Args().Get(1),
				ViaStation:       c.String("via"),
				DateTime:         when,
				SearchForArrival: c.Bool("arrive"),
				Context:          c.String("context"),
				Lang:             c.String("lang"),
				TravelClass:      c.Int("class"),
				ExcludeHSL:       c.Bool("no-hsl"),
			})
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, advice)
			}
			return writeTrips(c.App.Writer, advice)
		},
	}
}

func tripCommand() *cli.Command {
	return &cli.Command{
		Name:      "trip",
		Usage:     "reload a single trip from its ctxRecon",
		ArgsUsage: "<ctxRecon>",
		Flags:     []cli.Flag{langFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected a ctxRecon", 2)
			}
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			trip, err := client.Trip(c.Context, nsapi.TripQuery{CtxRecon: c.Args().First(), Lang: c.String("lang")})
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, trip)
			}
			return writeTrip(c.App.Writer, trip)
		},
	}
}

func journeyCommand() *cli.Command {
	return &cli.Command{
		Name:      "journey",
		Usage:     "show the stops of a train",
		ArgsUsage: "<train number>",
		Flags: []cli.Flag{
			whenFlag("date of the journey"),
			&cli.StringFlag{Name: "id", Usage: "journey id instead of a train number"},
		},
		Action: func(c *cli.Context) error {
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			when, err := parseWhen(c.String("at"), time.Now())
			if err != nil {
				return err
			}
			q := nsapi.JourneyQuery{ID: c.String("id"), DateTime: when}
			if q.ID == "" {
				if c.NArg() != 1 {
					return cli.Exit("expected a train number or --id", 2)
				}
				train, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return cli.Exit("train number must be numeric", 2)
				}
				q.Train = train
			}
			resp, err := client.Journey(c.Context, q)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp.Payload)
			}
			return writeJourney(c.App.Writer, resp.Payload)
		},
	}
}

func calamitiesCommand() *cli.Command {
	return &cli.Command{
		Name:  "calamities",
		Usage: "list current disruptions of the whole network",
		Flags: []cli.Flag{langFlag()},
		Action: func(c *cli.Context) error {
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			resp, err := client.Calamities(c.Context, c.String("lang"))
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp)
			}
			return writeCalamities(c.App.Writer, resp)
		},
	}
}

func priceCommand() *cli.Command {
	return &cli.Command{
		Name:      "price",
		Usage:     "look up the price of an international trip",
		ArgsUsage: "<from> <to>",
		Flags: []cli.Flag{
			whenFlag("travel date"),
			&cli.IntFlag{Name: "class", Value: 2},
			&cli.IntFlag{Name: "adults", Value: 1},
			&cli.StringFlag{Name: "type", Usage: "single or return", Value: "single"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("expected a from and a to station", 2)
			}
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			when, err := parseWhen(c.String("at"), time.Now())
			if err != nil {
				return err
			}
			resp, err := client.Price(c.Context, nsapi.PriceQuery{
				FromStation: c.Args().Get(0),
				ToStation:   c.Args().Get(1),
				TravelClass: c.Int("class"),
				TravelType:  c.String("type"),
				Adults:      c.Int("adults"),
				Date:        when,
			})
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp.Payload)
			}
			return writePrice(c.App.Writer, resp.Payload)
		},
	}
}
