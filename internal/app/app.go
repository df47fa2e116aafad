package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	botpkg "github.com/mstampfer/coin-crab/internal/bot"
	"github.com/mstampfer/coin-crab/internal/bot/adapter"
	"github.com/mstampfer/coin-crab/internal/cache"
	"github.com/mstampfer/coin-crab/internal/config"
	"github.com/mstampfer/coin-crab/internal/infra/coinmarketcap"
	"github.com/mstampfer/coin-crab/internal/mqtt"
	repopg "github.com/mstampfer/coin-crab/internal/repository/postgres"
	"github.com/mstampfer/coin-crab/internal/scheduler"
	fetchsvc "github.com/mstampfer/coin-crab/internal/service/fetch"
	pricessvc "github.com/mstampfer/coin-crab/internal/service/prices"
	"github.com/mstampfer/coin-crab/internal/transport/httptransport"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	store     *cache.Store
	cmc       *coinmarketcap.Client
	broker    *mqtt.Broker
	publisher *mqtt.Publisher

	prices pricessvc.Service
	fetch  fetchsvc.Service

	updater *scheduler.Scheduler

	bot *botpkg.Bot
}

// NewApp wires the server. db may be nil when the postgres archive is
// disabled, MQTT and Telegram are optional per config.
func NewApp(cfg config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	app.store = cache.NewStore()
	provider := coinmarketcap.NewClient(cfg.CMC)
	app.cmc = provider

	if cfg.MQTT.Enabled {
		if cfg.MQTT.EmbedBroker {
			broker, err := mqtt.StartBroker(cfg.MQTT, log)
			if err != nil {
				return nil, err
			}
			app.broker = broker
		}
		publisher, err := mqtt.NewPublisher(cfg.MQTT, log)
		if err != nil {
			return nil, err
		}
		app.publisher = publisher
	}

	var (
		archiveWriter fetchsvc.PriceArchiver
		archiveReader pricessvc.ArchiveReader
	)
	if db != nil {
		priceRepo := repopg.NewPriceRepository(db)
		archiveWriter = priceRepo
		archiveReader = priceRepo
	}

	var (
		latestPub fetchsvc.LatestPublisher
		histPub   pricessvc.HistoricalPublisher
	)
	if app.publisher != nil {
		latestPub = app.publisher
		histPub = app.publisher
	}

	app.fetch = fetchsvc.NewService(provider, app.store, archiveWriter, latestPub, log)
	app.prices = pricessvc.NewService(app.store, app.store, provider, archiveReader, histPub, log)

	if app.publisher != nil {
		if err := app.publisher.ListenRequests(app.prices); err != nil {
			return nil, err
		}
	}

	e := echo.New()
	e.HideBanner = true
	app.e = e

	ph := httptransport.NewPricesHandler(log, app.prices, app.store, cfg.Server.ReadTimeout)
	ph.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Scheduler.Enabled {
		var (
			warmer  scheduler.HistoricalWarmer
			clearer scheduler.RetainedClearer
		)
		if app.publisher != nil {
			warmer = app.prices
			if cfg.Scheduler.ClearRetained {
				clearer = app.publisher
			}
		}
		app.updater = scheduler.NewScheduler(app.fetch, warmer, clearer, cfg.Scheduler, log)
	}

	if cfg.Telegram.Enabled {
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}
		if db == nil {
			log.Error("telegram enabled but postgres is disabled, subscriptions need it")
			return nil, errors.New("telegram requires postgres")
		}

		botApp, err := botpkg.New(
			botpkg.Config{Token: token, LongPollTimeout: 10 * time.Second},
			adapter.NewPricesReader(app.prices),
			repopg.NewSubscriptionRepository(db),
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp
	}

	log.Info("app initialized",
		slog.Bool("mqtt_enabled", cfg.MQTT.Enabled),
		slog.Bool("archive_enabled", db != nil),
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

// loadMapping fills the symbol-to-id mapping the /api/cmc-mapping
// endpoint serves. A failed load is not fatal, the endpoint reports
// not loaded until the next restart.
func (a *App) loadMapping(ctx context.Context) {
	m, err := a.cmc.Map(ctx)
	if err != nil {
		a.log.Error("cmc mapping load failed", slog.String("error", err.Error()))
		return
	}
	a.store.SetMapping(m)
	a.log.Info("cmc mapping loaded", slog.Int("symbols", len(m)))
}

func (a *App) Run(ctx context.Context) error {
	go a.loadMapping(ctx)

	if a.updater != nil {
		a.log.Info("starting updater")
		go a.updater.Start(ctx)
		go a.updater.StartWarmup(ctx)
		go a.updater.StartRetainedClearing(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		a.bot.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	if a.publisher != nil {
		a.publisher.Close()
	}

	if a.broker != nil {
		if err := a.broker.Close(); err != nil {
			a.log.Error("broker shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info("application stopped")
	return nil
}
