package httptransport

import (
	"errors"

	"github.com/avoronova/crypto-price-tracker/internal/ports/errcode"
	"github.com/avoronova/crypto-price-tracker/internal/service/prices"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, prices.ErrInvalidTicker):
		return errcode.InvalidTicker
	case errors.Is(err, prices.ErrInvalidDateRange):
		return errcode.InvalidDateRange
	case errors.Is(err, prices.ErrInvalidLimit),
		errors.Is(err, prices.ErrInvalidOffset):
		return errcode.InvalidPagination
	case errors.Is(err, prices.ErrPriceNotFound):
		return errcode.NotFoundPrice
	default:
		return errcode.Internal
	}
}
