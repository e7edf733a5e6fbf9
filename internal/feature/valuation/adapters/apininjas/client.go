package apininjas

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stocks_backend/internal/feature/valuation/adapters/apininjas/dto"
	"stocks_backend/internal/feature/valuation/usecase"
	"stocks_backend/internal/shared/ratelimiter"
)

// StockPriceClient はAPI Ninjasから現在株価を取得するQuoteRepository実装です。
// 無料プランのリクエスト上限を超えないよう、呼び出し前にレートリミッターで待機します。
type StockPriceClient struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// StockPriceClientがQuoteRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.QuoteRepository = (*StockPriceClient)(nil)

// NewStockPriceClient は指定された設定・HTTPクライアント・レートリミッターで
// StockPriceClientの新しいインスタンスを生成します。
func NewStockPriceClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *StockPriceClient {
	return &StockPriceClient{cfg: cfg, client: client, limiter: limiter}
}

// GetPrice は指定されたシンボルの現在の1株あたり価格を取得します。
// HTTPエラー・デコード失敗・価格が返らない場合はエラーを返します。
func (s *StockPriceClient) GetPrice(ctx context.Context, symbol string) (float64, error) {
	s.limiter.WaitIfNeeded()

	q := url.Values{}
	q.Set("ticker", symbol)
	u := fmt.Sprintf("%s/v1/stockprice?%s", s.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	// 認証はヘッダーのAPIキーのみ
	req.Header.Set("X-Api-Key", s.cfg.APIKey)

	res, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("apininjas http %d", res.StatusCode)
	}

	var body dto.StockPriceResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, err
	}

	// 未知のシンボルは空のオブジェクトが返り、priceが0になる
	if body.Price <= 0 {
		return 0, fmt.Errorf("apininjas: no price for %q", symbol)
	}
	return body.Price, nil
}
