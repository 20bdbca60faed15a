package httptransport

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/avoronova/crypto-price-tracker/internal/domain"
	"github.com/avoronova/crypto-price-tracker/internal/ports/errcode"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PricesService — абстракция для чтения истории цен.
type PricesService interface {
	GetPricesByTicker(ctx context.Context, ticker string, limit, offset int) ([]domain.PriceRecord, error)
	GetLatestPrice(ctx context.Context, ticker string) (*domain.PriceRecord, error)
	GetPricesByDateRange(ctx context.Context, ticker string, startDate, endDate int64, limit int) ([]domain.PriceRecord, error)
}

// PriceRecord — DTO записи о цене. Цена сериализуется десятичной строкой.
type PriceRecord struct {
	Ticker    string          `json:"ticker"`
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"`
	CreatedAt time.Time       `json:"created_at"`
}

// LatestPrice — DTO последней цены.
type LatestPrice struct {
	Ticker    string          `json:"ticker"`
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// DateRangeResponse — ответ на запрос по диапазону дат.
type DateRangeResponse struct {
	Ticker    string        `json:"ticker"`
	StartDate int64         `json:"start_date"`
	EndDate   int64         `json:"end_date"`
	Count     int           `json:"count"`
	Prices    []PriceRecord `json:"prices"`
}

func makeRecord(rec domain.PriceRecord) PriceRecord {
	return PriceRecord{
		Ticker:    rec.Ticker,
		Price:     rec.Price,
		Timestamp: rec.Timestamp,
		CreatedAt: rec.CreatedAt.UTC(),
	}
}

// PricesHandler — HTTP-handler истории цен.
type PricesHandler struct {
	logger  *slog.Logger
	svc     PricesService
	timeout time.Duration
}

func NewPricesHandler(logger *slog.Logger, svc PricesService, timeout time.Duration) *PricesHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &PricesHandler{
		logger:  logger,
		svc:     svc,
		timeout: timeout,
	}
}

func (h *PricesHandler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")
	v1.GET("/prices", h.GetPrices)
	v1.GET("/prices/latest", h.GetLatestPrice)
	v1.GET("/prices/date-range", h.GetPricesByDateRange)

	e.GET("/health", h.Health)
}

// Все ошибки отдаются в едином виде {"detail": "..."}.
func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"detail": msg})
}

func (h *PricesHandler) writeServiceError(c echo.Context, op string, err error) error {
	switch FromServiceError(err) {
	case errcode.InvalidTicker, errcode.InvalidDateRange, errcode.InvalidPagination:
		return detail(c, http.StatusBadRequest, err.Error())
	case errcode.NotFoundPrice:
		return detail(c, http.StatusNotFound, err.Error())
	default:
		// Диагностика — в лог; наружу только общий текст
		h.logger.Error(op+" failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return detail(c, http.StatusInternalServerError, "internal server error")
	}
}

// intParam — парсит целочисленный query-параметр; пустое значение отдаёт def.
func intParam(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func int64Param(c echo.Context, name string) (int64, bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (h *PricesHandler) GetPrices(c echo.Context) error {
	ticker := strings.TrimSpace(c.QueryParam("ticker"))
	if ticker == "" {
		return detail(c, http.StatusBadRequest, "ticker is required")
	}
	limit, err := intParam(c, "limit", 0)
	if err != nil {
		return detail(c, http.StatusBadRequest, "limit must be an integer")
	}
	offset, err := intParam(c, "offset", 0)
	if err != nil {
		return detail(c, http.StatusBadRequest, "offset must be an integer")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	records, err := h.svc.GetPricesByTicker(ctx, ticker, limit, offset)
	if err != nil {
		return h.writeServiceError(c, "GetPrices", err)
	}

	out := make([]PriceRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, makeRecord(rec))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PricesHandler) GetLatestPrice(c echo.Context) error {
	ticker := strings.TrimSpace(c.QueryParam("ticker"))
	if ticker == "" {
		return detail(c, http.StatusBadRequest, "ticker is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, err := h.svc.GetLatestPrice(ctx, ticker)
	if err != nil {
		return h.writeServiceError(c, "GetLatestPrice", err)
	}

	return c.JSON(http.StatusOK, LatestPrice{
		Ticker:    rec.Ticker,
		Price:     rec.Price,
		Timestamp: rec.Timestamp,
		FetchedAt: rec.CreatedAt.UTC(),
	})
}

func (h *PricesHandler) GetPricesByDateRange(c echo.Context) error {
	ticker := strings.TrimSpace(c.QueryParam("ticker"))
	if ticker == "" {
		return detail(c, http.StatusBadRequest, "ticker is required")
	}
	startDate, ok, err := int64Param(c, "start_date")
	if err != nil || !ok {
		return detail(c, http.StatusBadRequest, "start_date is required and must be an integer")
	}
	endDate, ok, err := int64Param(c, "end_date")
	if err != nil || !ok {
		return detail(c, http.StatusBadRequest, "end_date is required and must be an integer")
	}
	limit, err := intParam(c, "limit", 0)
	if err != nil {
		return detail(c, http.StatusBadRequest, "limit must be an integer")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	records, err := h.svc.GetPricesByDateRange(ctx, ticker, startDate, endDate, limit)
	if err != nil {
		return h.writeServiceError(c, "GetPricesByDateRange", err)
	}

	out := make([]PriceRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, makeRecord(rec))
	}
	return c.JSON(http.StatusOK, DateRangeResponse{
		Ticker:    domain.NormalizeTicker(ticker),
		StartDate: startDate,
		EndDate:   endDate,
		Count:     len(out),
		Prices:    out,
	})
}

// Health — liveness без проверки зависимостей.
func (h *PricesHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Unix(),
	})
}
