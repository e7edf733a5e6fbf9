// Package api defines the JSON request and response types shared by the HTTP
// handlers. Field names follow the original wire contract, including the
// space-separated keys "purchase price", "purchase date" and "stock value".
package api

// ErrorResponse is the body returned for client errors and quote failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServerErrorResponse is the body returned for unexpected internal failures.
type ServerErrorResponse struct {
	Message string `json:"server error"`
}

// IDResponse carries the identifier of a created or updated stock.
type IDResponse struct {
	ID string `json:"id"`
}

// StockResponse is the JSON representation of one stock holding.
type StockResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	PurchasePrice float64 `json:"purchase price"`
	PurchaseDate  string  `json:"purchase date"`
	Shares        int     `json:"shares"`
}

// StockValueResponse is the valuation of a single holding.
type StockValueResponse struct {
	Symbol     string  `json:"symbol"`
	Ticker     float64 `json:"ticker"`
	StockValue float64 `json:"stock value"`
}

// PortfolioValueResponse is the valuation of the whole collection.
type PortfolioValueResponse struct {
	Date           string  `json:"date"`
	PortfolioValue float64 `json:"portfolio value"`
}
