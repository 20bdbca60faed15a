package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	botpkg "github.com/avoronova/crypto-price-tracker/internal/bot"
	"github.com/avoronova/crypto-price-tracker/internal/bot/adapter"
	"github.com/avoronova/crypto-price-tracker/internal/config"
	"github.com/avoronova/crypto-price-tracker/internal/domain"
	"github.com/avoronova/crypto-price-tracker/internal/infra/deribit"
	repopg "github.com/avoronova/crypto-price-tracker/internal/repository/postgres"
	"github.com/avoronova/crypto-price-tracker/internal/scheduler"
	ingestsvc "github.com/avoronova/crypto-price-tracker/internal/service/ingest"
	pricesvc "github.com/avoronova/crypto-price-tracker/internal/service/prices"
	"github.com/avoronova/crypto-price-tracker/internal/transport/httptransport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	priceRepo *repopg.PriceRepo
	source    *deribit.Client

	prices pricesvc.Service
	ingest ingestsvc.Service

	updater *scheduler.Scheduler

	bot *botpkg.Bot
}

func NewApp(cfg config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	tickers := domain.NewTickerSet(cfg.Tickers)
	if tickers.Len() == 0 {
		return nil, errors.New("ticker set is empty")
	}

	app.priceRepo = repopg.NewPriceRepository(db)

	app.source = deribit.NewClient(deribit.Config{
		BaseURL:   cfg.Deribit.BaseURL,
		Tickers:   tickers.Tickers(),
		Timeout:   cfg.Deribit.Timeout,
		UserAgent: cfg.Deribit.UserAgent,
	}, log)

	app.prices = pricesvc.NewService(app.priceRepo, tickers, log)
	app.ingest = ingestsvc.NewService(app.source, app.priceRepo, log)

	e := echo.New()
	e.HideBanner = true
	app.e = e

	ph := httptransport.NewPricesHandler(log, app.prices, cfg.Server.ReadTimeout)
	ph.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(
			app.ingest,
			cfg.Scheduler.Interval,
			cfg.Scheduler.RetryAttempts,
			cfg.Scheduler.RetryBackoff,
			log,
		)
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{Token: token, LongPollTimeout: 10 * time.Second},
			adapter.NewPricesReader(app.prices, tickers),
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp
	}

	log.Info("app initialized",
		slog.Any("tickers", tickers.Tickers()),
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.Bool("bot_attached", app.bot != nil),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.updater != nil {
		a.log.Info("starting updater")
		go a.updater.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		a.bot.Start()
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

	if a.source != nil {
		a.source.Close()
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info("application stopped")
	return nil
}
