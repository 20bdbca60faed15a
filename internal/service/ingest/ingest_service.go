package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/avoronova/crypto-price-tracker/internal/domain"
)

//go:generate mockgen -source=ingest_service.go -destination=mocks/mock_ingest.go -package=mocks

type Service interface {
	// IngestAll — один цикл: получить все цены и сохранить их одной транзакцией.
	// Возвращает список фактически сохранённых тикеров (возможно пустой).
	IngestAll(ctx context.Context) ([]string, error)
}

// PriceSource — источник цен. Частичные сбои обрабатывает сам:
// в map попадают только успешные тикеры.
type PriceSource interface {
	FetchAllPrices(ctx context.Context) map[string]domain.Observation
}

// PriceStore — транзакционное сохранение наблюдений: либо все, либо ни одного.
type PriceStore interface {
	SaveObservations(ctx context.Context, items []domain.Observation) error
}

type service struct {
	source PriceSource
	store  PriceStore
	logger *slog.Logger
}

// NewService — конструктор сервиса ингеста цен.
func NewService(source PriceSource, store PriceStore, logger *slog.Logger) Service {
	return &service{
		source: source,
		store:  store,
		logger: logger,
	}
}

func (s *service) IngestAll(ctx context.Context) ([]string, error) {
	prices := s.source.FetchAllPrices(ctx)
	if len(prices) == 0 {
		// Пустой цикл — не ошибка: источник мог быть целиком недоступен
		s.logger.Warn("ingest cycle fetched nothing")
		return []string{}, nil
	}

	tickers := make([]string, 0, len(prices))
	for t := range prices {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	items := make([]domain.Observation, 0, len(tickers))
	for _, t := range tickers {
		items = append(items, prices[t])
	}

	if err := s.store.SaveObservations(ctx, items); err != nil {
		s.logger.Error("save observations failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("save observations: %w", err)
	}

	for _, it := range items {
		s.logger.Info("price saved",
			slog.String("ticker", it.Ticker),
			slog.String("price", it.Price.String()),
			slog.Int64("timestamp", it.Timestamp),
		)
	}
	s.logger.Info("ingest cycle completed", slog.Any("tickers", tickers))

	return tickers, nil
}
