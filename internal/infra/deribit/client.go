package deribit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avoronova/crypto-price-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// Config — настройки клиента Deribit.
type Config struct {
	BaseURL   string
	Tickers   []string // канонические тикеры (btc_usd, eth_usd)
	Timeout   time.Duration
	UserAgent string
}

// SourceError — источник цен недоступен или вернул непригодный ответ для тикера.
type SourceError struct {
	Ticker string
	Msg    string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deribit: %s: %s: %v", e.Ticker, e.Msg, e.Err)
	}
	return fmt.Sprintf("deribit: %s: %s", e.Ticker, e.Msg)
}

func (e *SourceError) Unwrap() error { return e.Err }

func sourceErr(ticker, msg string, err error) *SourceError {
	return &SourceError{Ticker: ticker, Msg: msg, Err: err}
}

// Client — клиент публичного API Deribit (public/get_index_price).
type Client struct {
	cfg    Config
	logger *slog.Logger

	mu         sync.Mutex
	httpClient *http.Client
}

// NewClient - Создаёт нового клиента для работы с API Deribit.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{cfg: cfg, logger: logger}
}

// session — лениво создаёт http.Client; один клиент переиспользуется всеми запросами.
func (c *Client) session() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.cfg.Timeout}
	}
	return c.httpClient
}

// Close — освобождает соединения клиента. Вызывается при остановке приложения.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
	}
}

// Цена парсится через json.Number, чтобы не проходить через float64.
type indexPriceResponse struct {
	Result *indexPriceResult `json:"result"`
	Error  *apiError         `json:"error"`
}

type indexPriceResult struct {
	IndexPrice json.Number `json:"index_price"`
	Timestamp  int64       `json:"timestamp"` // миллисекунды
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FetchPrice — получает индексную цену одного тикера. Ровно один сетевой запрос, без ретраев.
func (c *Client) FetchPrice(ctx context.Context, ticker string) (domain.Observation, error) {
	ticker = domain.NormalizeTicker(ticker)

	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return domain.Observation{}, sourceErr(ticker, "invalid base URL", err)
	}
	u.Path, _ = url.JoinPath(u.Path, "public", "get_index_price")

	q := u.Query()
	// Deribit ожидает index_name вида btc-usd
	q.Set("index_name", strings.ReplaceAll(ticker, "_", "-"))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Observation{}, sourceErr(ticker, "creating request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.session().Do(req)
	if err != nil {
		return domain.Observation{}, sourceErr(ticker, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Observation{}, sourceErr(ticker, "unexpected status "+resp.Status, nil)
	}

	var data indexPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return domain.Observation{}, sourceErr(ticker, "decoding response", err)
	}
	if data.Error != nil {
		return domain.Observation{}, sourceErr(ticker,
			fmt.Sprintf("api error %d: %s", data.Error.Code, data.Error.Message), nil)
	}
	if data.Result == nil || data.Result.IndexPrice == "" {
		// Нулевые цены не подставляем: нет поля — нет наблюдения
		return domain.Observation{}, sourceErr(ticker, "empty result", nil)
	}

	price, err := decimal.NewFromString(data.Result.IndexPrice.String())
	if err != nil {
		return domain.Observation{}, sourceErr(ticker, "parsing index_price", err)
	}

	// Миллисекунды в секунды целочисленным делением
	ts := data.Result.Timestamp / 1000
	if ts == 0 {
		ts = time.Now().UTC().Unix()
	}

	return domain.Observation{
		Ticker:    ticker,
		Price:     price,
		Timestamp: ts,
	}, nil
}

// FetchAllPrices — получает цены всех настроенных тикеров параллельно.
// Ошибка по одному тикеру не прерывает остальные: неудачные тикеры
// логируются и исключаются из результата. Если не удалось ничего —
// возвращается пустая map, это валидный исход цикла.
func (c *Client) FetchAllPrices(ctx context.Context) map[string]domain.Observation {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[string]domain.Observation, len(c.cfg.Tickers))
	)

	for _, ticker := range c.cfg.Tickers {
		ticker := ticker
		wg.Add(1)
		go func() {
			defer wg.Done()
			obs, err := c.FetchPrice(ctx, ticker)
			if err != nil {
				c.logger.Error("fetch price failed",
					slog.String("ticker", ticker),
					slog.String("error", err.Error()),
				)
				return
			}
			c.logger.Debug("fetched price",
				slog.String("ticker", obs.Ticker),
				slog.String("price", obs.Price.String()),
				slog.Int64("timestamp", obs.Timestamp),
			)
			mu.Lock()
			out[obs.Ticker] = obs
			mu.Unlock()
		}()
	}

	// Барьер: дожидаемся всех запросов, успешных и неуспешных
	wg.Wait()
	return out
}
