package bot

import (
	"errors"
	"fmt"
	"time"

	"github.com/avoronova/crypto-price-tracker/internal/service/prices"
)

// formatLatest — одна строка с последней ценой
func formatLatest(item PriceDTO) string {
	ts := time.Unix(item.Timestamp, 0).UTC().Format("2006-01-02 15:04:05")
	return fmt.Sprintf("%s: %s USD (на %s UTC)", item.Ticker, item.Price, ts)
}

// replyForError — текст ответа пользователю по ошибке сервиса
func replyForError(err error) string {
	switch {
	case errors.Is(err, prices.ErrInvalidTicker):
		return "Неизвестный тикер. Список: /tickers"
	case errors.Is(err, prices.ErrPriceNotFound):
		return "Данных по этому тикеру пока нет, попробуй позже"
	default:
		return "Внутренняя ошибка, попробуй позже"
	}
}
