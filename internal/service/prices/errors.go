package prices

import "errors"

var (
	ErrInvalidTicker    = errors.New("invalid ticker")
	ErrInvalidLimit     = errors.New("limit out of range")
	ErrInvalidOffset    = errors.New("offset must be non-negative")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrPriceNotFound    = errors.New("price not found")
)
