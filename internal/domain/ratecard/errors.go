package ratecard

import "errors"

var (
	ErrRateCardNotFound = errors.New("rate card not found")
	ErrNoRateForDate    = errors.New("no rate card covers the requested date")
	ErrInvalidWindow    = errors.New("valid_to must not precede valid_from")
)
