package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nlopes/slack"
	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v2"

	"nstravel/internal/cache"
	"nstravel/internal/config"
	"nstravel/internal/display"
	"nstravel/internal/handler"
	"nstravel/internal/hub"
	"nstravel/internal/middleware"
	"nstravel/internal/poller"
	"nstravel/internal/store"
	"nstravel/pkg/legacy"
	"nstravel/pkg/nsapi"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "poll boards and serve them over HTTP and websocket (configured from the environment)",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(c.Context, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	displays, err := cfg.Displays()
	if err != nil {
		return err
	}

	logger.Info("starting nstravel server",
		"version", version,
		"log_level", cfg.LogLevel.String(),
		"http_addr", cfg.HTTPAddr,
		"boards", len(displays),
		"redis_enabled", cfg.RedisEnabled,
	)

	var src sources
	if cfg.APIKey != "" {
		opts := []nsapi.Option{nsapi.WithLogger(logger)}
		if cfg.StrictDecoding {
			opts = append(opts, nsapi.WithStrictDecoding())
		}
		src.api = nsapi.New(cfg.APIBaseURL, cfg.APIKey, opts...)
	}
	if cfg.LegacyUser != "" {
		src.legacy = legacy.New(cfg.LegacyBaseURL, cfg.LegacyUser, cfg.LegacyPassword, logger)
	}

	var redisCache *cache.RedisCache
	if cfg.RedisEnabled {
		redisCache, err = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL, logger)
		if err != nil {
			logger.Warn("redis unavailable, continuing without", "error", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	boardStore := store.New(cfg.BoardStaleAfter)
	wsHub := hub.NewHub(logger)
	storeSink := poller.StoreSink{Store: boardStore, Broadcaster: wsHub}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if redisCache != nil {
		seedBoards(ctx, redisCache, boardStore, displays, logger)
	}

	var slackClient *slack.Client
	if cfg.SlackToken != "" {
		slackClient = slack.New(cfg.SlackToken)
	}

	group := poller.NewGroup(logger)
	var runners []runner
	for _, d := range displays {
		source, err := src.forDisplay(d)
		if err != nil {
			return err
		}
		sinks := poller.Sinks{storeSink}
		if redisCache != nil {
			sinks = append(sinks, poller.SinkFunc(redisCache.Publish))
		}
		if d.Sink == "slack" {
			if slackClient == nil || cfg.SlackChannel == "" {
				return fmt.Errorf("display %s: SLACK_TOKEN and SLACK_CHANNEL are required", d.Station)
			}
			s := display.NewSlack(slackClient, cfg.SlackChannel, d, logger)
			sinks = append(sinks, s)
			runners = append(runners, s)
		}
		p, err := poller.New(source, sinks, d, logger)
		if err != nil {
			return err
		}
		group.Add(p)
	}

	var index *legacy.StationIndex
	var warmer *cache.StationWarmer
	if src.legacy != nil {
		index = legacy.NewStationIndex(nil)
		stores := []legacy.StationStore{cache.NewFileCache(cfg.StationCacheFile)}
		if redisCache != nil {
			stores = append(stores, redisCache)
		}
		warmer = cache.NewStationWarmer(src.legacy, index, cfg.StationRefresh, logger, stores...)
	}

	var searcher handler.StationSearcher
	if src.api != nil {
		searcher = src.api
	}

	hs := handler.Handlers{
		Boards: handler.NewHTTPHandler(boardStore),
		WS:     handler.NewWSHandler(wsHub, boardStore, logger),
		Health: handler.NewHealthHandler(group, boardStore),
		Stats:  handler.NewStatsHandler(boardStore, group, version),
	}
	if index != nil || searcher != nil {
		hs.Stations = handler.NewStationHandler(index, searcher, redisCache, logger)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerWindow, cfg.RateLimitWindow, cfg.RateLimitWhitelist, logger)
	limiter.OnBlocked = handler.ServerStats.IncRateLimitBlocked
	defer limiter.Close()
	hs.Stats.RateLimit = limiter.Stats

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.CORSMiddleware(handler.CountRequests(limiter.Middleware(hs.Mux()))),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	var wg conc.WaitGroup
	wg.Go(func() { wsHub.Run(ctx) })
	wg.Go(func() { group.Run(ctx) })
	wg.Go(func() { poller.PruneLoop(ctx, boardStore, wsHub, time.Minute, logger) })
	for _, r := range runners {
		wg.Go(func() { r.Run(ctx) })
	}
	if warmer != nil {
		wg.Go(func() {
			if err := warmer.Warm(ctx); err != nil {
				logger.Error("failed to load stations", "error", err)
			}
			warmer.ScheduleRefresh(ctx)
		})
	}

	go func() {
		logger.Info("starting HTTP server", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Stop accepting requests before the hub closes its clients. Websocket
	// sessions are hijacked and outlive Shutdown; the hub ends them.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	cancel()
	wg.Wait()

	logger.Info("shutdown complete")
	return nil
}

// seedBoards fills the store with the boards another instance mirrored to
// Redis, so clients get data before the first poll completes.
func seedBoards(ctx context.Context, c *cache.RedisCache, s *store.Store, displays []config.Display, logger *slog.Logger) {
	for _, d := range displays {
		b, found, err := c.LoadBoard(ctx, d.Station)
		if err != nil {
			logger.Warn("failed to load mirrored board", "station", d.Station, "error", err)
			continue
		}
		if found {
			s.Update(b)
		}
	}
}
