// Package domain defines domain-level errors for the valuation feature.
package domain

import "errors"

// ErrQuoteUnavailable indicates that the external quote source did not return
// a usable price for a symbol. Valuation is all-or-nothing: a single missing
// quote fails the whole request, with no retry and no partial aggregate.
var ErrQuoteUnavailable = errors.New("failed to retrieve ticker price")
