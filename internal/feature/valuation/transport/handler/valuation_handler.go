// Package handler はvaluationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocks_backend/internal/api"
	stocksdomain "stocks_backend/internal/feature/stocks/domain"
	"stocks_backend/internal/feature/valuation/domain"
	"stocks_backend/internal/feature/valuation/usecase"
)

// ValuationUsecase は時価評価操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）側で定義します。
type ValuationUsecase interface {
	// StockValue は指定されたIDの銘柄の現在価格と評価額を返します。
	StockValue(ctx context.Context, id string) (*usecase.StockValue, error)
	// PortfolioValue は全銘柄の評価額の合計を返します。
	PortfolioValue(ctx context.Context) (*usecase.PortfolioValue, error)
}

// ValuationHandler は時価評価のHTTPリクエストを処理します。
type ValuationHandler struct {
	uc ValuationUsecase
}

// NewValuationHandler は指定されたusecaseでValuationHandlerの新しいインスタンスを生成します。
func NewValuationHandler(uc ValuationUsecase) *ValuationHandler {
	return &ValuationHandler{uc: uc}
}

// GetStockValueHandler は GET /stock-value/:id を処理します。
// - IDが存在しない場合は404を返却
// - クォートが取得できない場合は500を返却（リトライはしない）
func (h *ValuationHandler) GetStockValueHandler(c *gin.Context) {
	sv, err := h.uc.StockValue(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.StockValueResponse{
		Symbol:     sv.Symbol,
		Ticker:     sv.TickerPrice,
		StockValue: sv.Value,
	})
}

// GetPortfolioValueHandler は GET /portfolio-value を処理します。
// 1銘柄でもクォートが取得できない場合は部分集計を返さず500を返却します。
func (h *ValuationHandler) GetPortfolioValueHandler(c *gin.Context) {
	pv, err := h.uc.PortfolioValue(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.PortfolioValueResponse{
		Date:           pv.Date,
		PortfolioValue: pv.Total,
	})
}

// respondError はエラー種別に応じたエラーレスポンスを書き込みます。
// クォート取得失敗は上流依存の障害として500で通知します。
func (h *ValuationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stocksdomain.ErrStockNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrQuoteUnavailable):
		slog.Warn("quote source unavailable", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: domain.ErrQuoteUnavailable.Error()})
	default:
		slog.Error("valuation request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, api.ServerErrorResponse{Message: err.Error()})
	}
}
