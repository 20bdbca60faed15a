package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observation — цена, полученная от источника, ещё не сохранённая в БД.
type Observation struct {
	Ticker    string          `json:"ticker"`
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"` // UNIX-секунды, время актуальности цены на бирже
}

// PriceRecord — сохранённая запись о цене. После вставки не изменяется.
type PriceRecord struct {
	ID        int64           `json:"id"`
	Ticker    string          `json:"ticker"`
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"`
	CreatedAt time.Time       `json:"created_at"` // время вставки, выставляет БД
}
