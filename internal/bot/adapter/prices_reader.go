package adapter

import (
	"context"

	"github.com/avoronova/crypto-price-tracker/internal/bot"
	"github.com/avoronova/crypto-price-tracker/internal/domain"
	"github.com/avoronova/crypto-price-tracker/internal/service/prices"
)

// servicePricesReader — адаптер, который превращает сервис цен в интерфейс бота PricesReader.
type servicePricesReader struct {
	svc     prices.Service
	tickers domain.TickerSet
}

// NewPricesReader — конструктор адаптера над сервисом цен.
func NewPricesReader(svc prices.Service, tickers domain.TickerSet) bot.PricesReader {
	return servicePricesReader{svc: svc, tickers: tickers}
}

// LatestPrice — последняя сохранённая цена по тикеру в формате DTO бота.
func (a servicePricesReader) LatestPrice(ctx context.Context, ticker string) (bot.PriceDTO, error) {
	rec, err := a.svc.GetLatestPrice(ctx, ticker)
	if err != nil {
		return bot.PriceDTO{}, err
	}
	return bot.PriceDTO{
		Ticker:    rec.Ticker,
		Price:     rec.Price.String(),
		Timestamp: rec.Timestamp,
		FetchedAt: rec.CreatedAt,
	}, nil
}

// Tickers — канонический список отслеживаемых тикеров.
func (a servicePricesReader) Tickers() []string {
	return a.tickers.Tickers()
}
