// Package dto defines response payloads for the API Ninjas stock price API.
package dto

// StockPriceResponse represents the body returned by /v1/stockprice.
// An unknown ticker yields an empty object, leaving Price at zero.
type StockPriceResponse struct {
	Ticker   string  `json:"ticker"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Exchange string  `json:"exchange"`
	Updated  int64   `json:"updated"`
	Currency string  `json:"currency"`
}
