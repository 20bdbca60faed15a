package httptransport_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avoronova/crypto-price-tracker/internal/domain"
	"github.com/avoronova/crypto-price-tracker/internal/service/prices"
	pricemocks "github.com/avoronova/crypto-price-tracker/internal/service/prices/mocks"
	"github.com/avoronova/crypto-price-tracker/internal/transport/httptransport"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func setupHandler(t *testing.T) (*gomock.Controller, *pricemocks.MockService, *echo.Echo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := pricemocks.NewMockService(ctrl)

	e := echo.New()
	h := httptransport.NewPricesHandler(slog.Default(), svc, 3*time.Second)
	h.RegisterRoutes(e)
	return ctrl, svc, e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func record(id int64, ticker, price string, ts int64) domain.PriceRecord {
	return domain.PriceRecord{
		ID:        id,
		Ticker:    ticker,
		Price:     decimal.RequireFromString(price),
		Timestamp: ts,
		CreatedAt: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetPrices_OK(t *testing.T) {
	ctrl, svc, e := setupHandler(t)
	defer ctrl.Finish()

	svc.EXPECT().
		GetPricesByTicker(gomock.Any(), "btc_usd", 2, 0).
		Return([]domain.PriceRecord{
			record(2, "btc_usd", "50000.12345678", 1640995260),
			record(1, "btc_usd", "49999.5", 1640995200),
		}, nil)

	rec := doGet(e, "/v1/prices?ticker=btc_usd&limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body=%s", rec.Code, rec.Body)
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	// Цена — десятичная строка, не бинарный float
	if !strings.Contains(rec.Body.String(), `"price":"50000.12345678"`) {
		t.Fatalf("price not serialized as decimal string: %s", rec.Body)
	}
	if out[0]["created_at"] != "2025-09-01T12:00:00Z" {
		t.Fatalf("created_at not ISO-8601: %v", out[0]["created_at"])
	}
}

func TestGetPrices_InvalidTicker(t *testing.T) {
	ctrl, svc, e := setupHandler(t)
	defer ctrl.Finish()

	svc.EXPECT().
		GetPricesByTicker(gomock.Any(), "doge_usd", 0, 0).
		Return(nil, fmt.Errorf("%w: doge_usd", prices.ErrInvalidTicker))

	rec := doGet(e, "/v1/prices?ticker=doge_usd")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	assertDetail(t, rec)
}

func TestGetPrices_MissingTicker(t *testing.T) {
	ctrl, _, e := setupHandler(t)
	defer ctrl.Finish()

	rec := doGet(e, "/v1/prices")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	assertDetail(t, rec)
}

func TestGetPrices_BadLimit(t *testing.T) {
	ctrl, _, e := setupHandler(t)
	defer ctrl.Finish()

	rec := doGet(e, "/v1/prices?ticker=btc_usd&limit=abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	assertDetail(t, rec)
}

func TestGetLatestPrice_OK(t *testing.T) {
	ctrl, svc, e := setupHandler(t)
	defer ctrl.Finish()

	r := record(7, "eth_usd", "3500.25", 1640995200)
	svc.EXPECT().GetLatestPrice(gomock.Any(), "eth_usd").Return(&r, nil)

	rec := doGet(e, "/v1/prices/latest?ticker=eth_usd")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body=%s", rec.Code, rec.Body)
	}

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out["ticker"] != "eth_usd" || out["price"] != "3500.25" {
		t.Fatalf("unexpected body: %s", rec.Body)
	}
	if _, ok := out["fetched_at"]; !ok {
		t.Fatalf("fetched_at missing: %s", rec.Body)
	}
}

// Валидный тикер без данных — 404, а не 500
func TestGetLatestPrice_NotFound(t *testing.T) {
	ctrl, svc, e := setupHandler(t)
	defer ctrl.Finish()

	svc.EXPECT().
		GetLatestPrice(gomock.Any(), "btc_usd").
		Return(nil, fmt.Errorf("%w: btc_usd", prices.ErrPriceNotFound))

	rec := doGet(e, "/v1/prices/latest?ticker=btc_usd")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	assertDetail(t, rec)
}

func TestGetPricesByDateRange_OK(t *testing.T) {
	ctrl, svc, e := setupHandler(t)
	defer ctrl.Finish()

	svc.EXPECT().
		GetPricesByDateRange(gomock.Any(), "btc_usd", int64(1704067200), int64(1704153600), 0).
		Return([]domain.PriceRecord{record(1, "btc_usd", "42000", 1704100000)}, nil)

	rec := doGet(e, "/v1/prices/date-range?ticker=btc_usd&start_date=1704067200&end_date=1704153600")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body=%s", rec.Code, rec.Body)
	}

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out["count"].(float64) != 1 {
		t.Fatalf("unexpected count: %v", out["count"])
	}
	if out["start_date"].(float64) != 1704067200 || out["end_date"].(float64) != 1704153600 {
		t.Fatalf("range not echoed: %s", rec.Body)
	}
}

// Инвертированный диапазон — 400 независимо от наличия данных
func TestGetPricesByDateRange_Inverted(t *testing.T) {
	ctrl, svc, e := setupHandler(t)
	defer ctrl.Finish()

	svc.EXPECT().
		GetPricesByDateRange(gomock.Any(), "btc_usd", int64(1704153600), int64(1704067200), 0).
		Return(nil, fmt.Errorf("%w: end before start", prices.ErrInvalidDateRange))

	rec := doGet(e, "/v1/prices/date-range?ticker=btc_usd&start_date=1704153600&end_date=1704067200")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	assertDetail(t, rec)
}

func TestGetPricesByDateRange_MissingBounds(t *testing.T) {
	ctrl, _, e := setupHandler(t)
	defer ctrl.Finish()

	rec := doGet(e, "/v1/prices/date-range?ticker=btc_usd")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	assertDetail(t, rec)
}

// Неклассифицированная ошибка — 500 с общим текстом, без утечки диагностики
func TestGetPrices_InternalError(t *testing.T) {
	ctrl, svc, e := setupHandler(t)
	defer ctrl.Finish()

	svc.EXPECT().
		GetPricesByTicker(gomock.Any(), "btc_usd", 0, 0).
		Return(nil, fmt.Errorf("pq: connection refused at 10.0.0.5"))

	rec := doGet(e, "/v1/prices?ticker=btc_usd")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatalf("diagnostic leaked to response: %s", rec.Body)
	}
	assertDetail(t, rec)
}

func TestHealth(t *testing.T) {
	ctrl, _, e := setupHandler(t)
	defer ctrl.Finish()

	rec := doGet(e, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out["status"] != "healthy" {
		t.Fatalf("unexpected body: %s", rec.Body)
	}
}

func assertDetail(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	d, ok := out["detail"].(string)
	if !ok || d == "" {
		t.Fatalf("error body must be {detail: string}, got %s", rec.Body)
	}
}
