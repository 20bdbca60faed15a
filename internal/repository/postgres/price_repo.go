package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronova/crypto-price-tracker/internal/domain"
	"github.com/avoronova/crypto-price-tracker/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PriceRepo — репозиторий для работы с таблицей цен (prices).
// Таблица append-only: записи не обновляются и не удаляются.
type PriceRepo struct {
	db *pgxpool.Pool
}

// NewPriceRepository - Создаёт новый репозиторий цен на основе пула соединений.
func NewPriceRepository(db *pgxpool.Pool) *PriceRepo {
	return &PriceRepo{db: db}
}

// NUMERIC читаем как text, чтобы не терять точность при сканировании.
const recordColumns = `id, ticker, price::text, timestamp, created_at`

func scanRecord(row pgx.Row) (domain.PriceRecord, error) {
	var (
		rec       domain.PriceRecord
		priceText string
	)
	if err := row.Scan(&rec.ID, &rec.Ticker, &priceText, &rec.Timestamp, &rec.CreatedAt); err != nil {
		return domain.PriceRecord{}, err
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return domain.PriceRecord{}, fmt.Errorf("parse price %q: %w", priceText, err)
	}
	rec.Price = price
	return rec, nil
}

// SaveObservations - Сохраняет все наблюдения одной транзакцией: либо все, либо ни одного.
func (r *PriceRepo) SaveObservations(ctx context.Context, items []domain.Observation) error {
	if len(items) == 0 {
		return nil
	}

	const query = `
        INSERT INTO prices (ticker, price, timestamp)
        VALUES ($1, $2, $3)
    `

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(query, it.Ticker, it.Price.String(), it.Timestamp)
	}

	br := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert price: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetPricesByTicker - Получить записи по тикеру с пагинацией, свежие сначала.
func (r *PriceRepo) GetPricesByTicker(ctx context.Context, ticker string, limit, offset int) ([]domain.PriceRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM prices
        WHERE ticker = $1
        ORDER BY timestamp DESC, id DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.db.Query(ctx, query, ticker, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// GetLatestPrice - Получить последнюю цену по тикеру (максимальный timestamp, при равенстве — максимальный id).
func (r *PriceRepo) GetLatestPrice(ctx context.Context, ticker string) (*domain.PriceRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM prices
        WHERE ticker = $1
        ORDER BY timestamp DESC, id DESC
        LIMIT 1
    `

	rec, err := scanRecord(r.db.QueryRow(ctx, query, ticker))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetPricesByDateRange - Получить записи в диапазоне дат, границы включительно.
func (r *PriceRepo) GetPricesByDateRange(ctx context.Context, ticker string, startDate, endDate int64, limit int) ([]domain.PriceRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM prices
        WHERE ticker = $1
          AND timestamp >= $2
          AND timestamp <= $3
        ORDER BY timestamp DESC, id DESC
        LIMIT $4
    `

	rows, err := r.db.Query(ctx, query, ticker, startDate, endDate, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]domain.PriceRecord, error) {
	var out []domain.PriceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
