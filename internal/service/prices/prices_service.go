package prices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avoronova/crypto-price-tracker/internal/domain"
	"github.com/avoronova/crypto-price-tracker/internal/repository"
)

//go:generate mockgen -source=prices_service.go -destination=mocks/mock_prices.go -package=mocks

// Бизнес-логика чтения истории цен: три формы запросов.
// Вся валидация входа выполняется до обращения к хранилищу.

const (
	DefaultLimit = 1000
	MaxLimit     = 10000
)

type Service interface {
	// GetPricesByTicker — все записи по тикеру с пагинацией, свежие сначала.
	GetPricesByTicker(ctx context.Context, ticker string, limit, offset int) ([]domain.PriceRecord, error)
	// GetLatestPrice — последняя запись по тикеру.
	GetLatestPrice(ctx context.Context, ticker string) (*domain.PriceRecord, error)
	// GetPricesByDateRange — записи в диапазоне дат (границы включительно).
	GetPricesByDateRange(ctx context.Context, ticker string, startDate, endDate int64, limit int) ([]domain.PriceRecord, error)
}

type PriceReader interface {
	GetPricesByTicker(ctx context.Context, ticker string, limit, offset int) ([]domain.PriceRecord, error)
	GetLatestPrice(ctx context.Context, ticker string) (*domain.PriceRecord, error)
	GetPricesByDateRange(ctx context.Context, ticker string, startDate, endDate int64, limit int) ([]domain.PriceRecord, error)
}

type service struct {
	repo    PriceReader
	tickers domain.TickerSet
	logger  *slog.Logger
}

// NewService — конструктор сервиса чтения цен.
func NewService(repo PriceReader, tickers domain.TickerSet, logger *slog.Logger) Service {
	return &service{
		repo:    repo,
		tickers: tickers,
		logger:  logger,
	}
}

// canonicalTicker — нормализует тикер и проверяет членство в допустимом наборе.
func (s *service) canonicalTicker(ticker string) (string, error) {
	c := domain.NormalizeTicker(ticker)
	if !s.tickers.Contains(c) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTicker, ticker)
	}
	return c, nil
}

// normalizeLimit — 0 означает «использовать значение по умолчанию».
func normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultLimit, nil
	}
	if limit < 1 || limit > MaxLimit {
		return 0, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidLimit, limit, MaxLimit)
	}
	return limit, nil
}

func (s *service) GetPricesByTicker(ctx context.Context, ticker string, limit, offset int) ([]domain.PriceRecord, error) {
	t, err := s.canonicalTicker(ticker)
	if err != nil {
		return nil, err
	}
	lim, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}

	records, err := s.repo.GetPricesByTicker(ctx, t, lim, offset)
	if err != nil {
		s.logger.Error("get prices by ticker failed", slog.String("ticker", t), slog.String("error", err.Error()))
		return nil, err
	}
	if records == nil {
		records = []domain.PriceRecord{}
	}
	return records, nil
}

func (s *service) GetLatestPrice(ctx context.Context, ticker string) (*domain.PriceRecord, error) {
	t, err := s.canonicalTicker(ticker)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.GetLatestPrice(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPriceNotFound, t)
		}
		s.logger.Error("get latest price failed", slog.String("ticker", t), slog.String("error", err.Error()))
		return nil, err
	}
	return rec, nil
}

func (s *service) GetPricesByDateRange(ctx context.Context, ticker string, startDate, endDate int64, limit int) ([]domain.PriceRecord, error) {
	t, err := s.canonicalTicker(ticker)
	if err != nil {
		return nil, err
	}
	// Диапазон проверяется до похода в БД, независимо от наличия данных
	if startDate < 0 || endDate < 0 {
		return nil, fmt.Errorf("%w: dates must be non-negative", ErrInvalidDateRange)
	}
	if endDate < startDate {
		return nil, fmt.Errorf("%w: end_date %d is before start_date %d", ErrInvalidDateRange, endDate, startDate)
	}
	lim, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.GetPricesByDateRange(ctx, t, startDate, endDate, lim)
	if err != nil {
		s.logger.Error("get prices by date range failed", slog.String("ticker", t), slog.String("error", err.Error()))
		return nil, err
	}
	if records == nil {
		records = []domain.PriceRecord{}
	}
	return records, nil
}
