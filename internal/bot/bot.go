package bot

import (
	"context"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"
)

// Config — конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
}

// PriceDTO — данные о последней цене для вывода в чат
type PriceDTO struct {
	Ticker    string
	Price     string
	Timestamp int64
	FetchedAt time.Time
}

// PricesReader — интерфейс для чтения цен
type PricesReader interface {
	LatestPrice(ctx context.Context, ticker string) (PriceDTO, error)
	Tickers() []string
}

// Bot — Telegram-интерфейс только для чтения: последняя цена по запросу
type Bot struct {
	bot    *telebot.Bot
	prices PricesReader
	logger *slog.Logger
}

// New создаёт новый экземпляр бота
func New(cfg Config, prices PricesReader, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:    b,
		prices: prices,
		logger: logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/latest", bot.handleLatest)
	b.Handle("/tickers", bot.handleTickers)

	return bot, nil
}

// Start запускает long-polling бота
func (b *Bot) Start() {
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
