package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/telebot.v4"
)

// handleStart — отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Привет! Доступные команды:\n" +
		"/latest {ticker} - последняя цена по тикеру (например /latest btc_usd)\n" +
		"/tickers - список отслеживаемых тикеров")
}

// handleLatest — выводит последнюю сохранённую цену по тикеру
func (b *Bot) handleLatest(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Укажи тикер: /latest btc_usd")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item, err := b.prices.LatestPrice(ctx, args[0])
	if err != nil {
		b.logger.Debug("bot: /latest failed",
			slog.String("ticker", args[0]),
			slog.String("error", err.Error()),
		)
		return c.Send(replyForError(err))
	}
	return c.Send(formatLatest(item))
}

// handleTickers — выводит набор отслеживаемых тикеров
func (b *Bot) handleTickers(c telebot.Context) error {
	return c.Send("Отслеживаемые тикеры: " + strings.Join(b.prices.Tickers(), ", "))
}
