// Package domain defines domain-level errors for the stocks feature.
package domain

import "errors"

// Domain errors for stock inventory operations.
// These errors represent business rule failures and are mapped to HTTP status
// codes by the transport layer.
var (
	// ErrMalformedData indicates that a required field is missing from the payload.
	ErrMalformedData = errors.New("malformed data")

	// ErrInvalidSymbol indicates that the symbol field is not a string.
	ErrInvalidSymbol = errors.New("invalid stock symbol")

	// ErrInvalidShares indicates that shares is not a positive integer.
	ErrInvalidShares = errors.New("shares must be a positive integer")

	// ErrInvalidPrice indicates that purchase price is not a positive number.
	ErrInvalidPrice = errors.New("purchase price must be a positive number")

	// ErrInvalidName indicates that the name field is not a string.
	ErrInvalidName = errors.New("name must be a string")

	// ErrInvalidDate indicates a purchase date that is not a real calendar
	// date in DD-MM-YYYY form.
	ErrInvalidDate = errors.New("invalid date format. Use DD-MM-YYYY")

	// ErrSymbolExists indicates that a stock with the same symbol already exists.
	// Symbols are unique service-wide, compared case-insensitively.
	ErrSymbolExists = errors.New("stock symbol already exists")

	// ErrStockNotFound indicates that no stock has the given ID.
	ErrStockNotFound = errors.New("no such ID")

	// ErrIDImmutable is returned when an update payload carries a different ID.
	ErrIDImmutable = errors.New("stock ID can not be changed")

	// ErrSymbolImmutable is returned when an update payload carries a different symbol.
	ErrSymbolImmutable = errors.New("stock symbol can not be changed")

	// ErrInvalidQueryField indicates an unrecognized field in a list filter.
	ErrInvalidQueryField = errors.New("invalid query field")

	// ErrNoMatch indicates that a list filter matched no stocks.
	ErrNoMatch = errors.New("no stocks match the given filters")
)
