package errcode

type Code string

const (
	InvalidTicker     Code = "INVALID_TICKER"
	InvalidDateRange  Code = "INVALID_DATE_RANGE"
	InvalidPagination Code = "INVALID_PAGINATION"

	NotFoundPrice Code = "NOT_FOUND_PRICE"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
