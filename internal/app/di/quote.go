// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"stocks_backend/internal/feature/valuation/adapters/apininjas"
	infrahttp "stocks_backend/internal/platform/http"
	"stocks_backend/internal/shared/ratelimiter"
)

// quoteCallsPerMinute はクォートAPIへの1分あたりの呼び出し上限です。
// API Ninjasの無料プランの制限に合わせています。
const quoteCallsPerMinute = 50

// NewQuoteClient creates a fully configured API Ninjas quote client with a
// tuned HTTP client and a shared rate limiter.
func NewQuoteClient() *apininjas.StockPriceClient {
	cfg := apininjas.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(quoteCallsPerMinute, time.Minute)
	return apininjas.NewStockPriceClient(cfg, httpClient, limiter)
}
