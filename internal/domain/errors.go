package domain

import "errors"

var (
	// ErrInvalidCurrency: an input could not be normalized into a currency code.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrUnknownRate: the source explicitly reported the pair as unconvertible.
	ErrUnknownRate = errors.New("unknown exchange rate")
	// ErrFetchFailed: transport failure or unrecognized response shape.
	ErrFetchFailed = errors.New("rate fetch failed")
)
