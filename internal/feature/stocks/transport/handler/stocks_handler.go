// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocks_backend/internal/api"
	"stocks_backend/internal/feature/stocks/domain"
	"stocks_backend/internal/feature/stocks/domain/entity"
)

// jsonMediaType は書き込み系エンドポイントが要求するContent-Typeです。
const jsonMediaType = "application/json"

// StocksUsecase は株式インベントリ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）側で定義します。
type StocksUsecase interface {
	// Create はペイロードを検証して新しい株式レコードを作成し、IDを返します。
	Create(ctx context.Context, payload map[string]any) (string, error)
	// GetByID は指定されたIDの株式レコードを返します。
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	// List はフィルタ条件に一致する株式レコードを返します。
	List(ctx context.Context, filter map[string]string) ([]entity.Stock, error)
	// Update は指定されたIDの株式レコードを全フィールド指定のペイロードで更新します。
	Update(ctx context.Context, id string, payload map[string]any) error
	// Delete は指定されたIDの株式レコードを削除します。
	Delete(ctx context.Context, id string) error
	// DeleteAll はすべての株式レコードを削除します。
	DeleteAll(ctx context.Context) error
}

// StocksHandler は株式インベントリのHTTPリクエストを処理します。
type StocksHandler struct {
	uc StocksUsecase
}

// NewStocksHandler は指定されたusecaseでStocksHandlerの新しいインスタンスを生成します。
func NewStocksHandler(uc StocksUsecase) *StocksHandler {
	return &StocksHandler{uc: uc}
}

// clientErrorStatus はドメインエラーをHTTPステータスコードに対応付けます。
// 対応が無い場合はfalseを返し、呼び出し側で500として処理します。
func clientErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrStockNotFound),
		errors.Is(err, domain.ErrNoMatch):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrInvalidQueryField):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, domain.ErrMalformedData),
		errors.Is(err, domain.ErrInvalidSymbol),
		errors.Is(err, domain.ErrInvalidShares),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrSymbolExists),
		errors.Is(err, domain.ErrIDImmutable),
		errors.Is(err, domain.ErrSymbolImmutable):
		return http.StatusBadRequest, true
	}
	return 0, false
}

// respondError はエラー種別に応じたエラーレスポンスを書き込みます。
func respondError(c *gin.Context, err error) {
	if status, ok := clientErrorStatus(err); ok {
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Error("stocks request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, api.ServerErrorResponse{Message: err.Error()})
}

// toStockResponse はドメインエンティティをAPIレスポンス形式に変換します。
func toStockResponse(s entity.Stock) api.StockResponse {
	return api.StockResponse{
		ID:            s.ID,
		Name:          s.Name,
		Symbol:        s.Symbol,
		PurchasePrice: s.PurchasePrice,
		PurchaseDate:  s.PurchaseDate,
		Shares:        s.Shares,
	}
}

// CreateStockHandler は POST /stocks を処理します。
// - Content-Typeがapplication/jsonでない場合は415を返却
// - 検証エラー・シンボル重複時は400を返却
// - 成功時は201で新しいIDを返却
func (h *StocksHandler) CreateStockHandler(c *gin.Context) {
	if c.ContentType() != jsonMediaType {
		c.JSON(http.StatusUnsupportedMediaType, api.ErrorResponse{Error: "Expected application/json media type"})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: domain.ErrMalformedData.Error()})
		return
	}

	id, err := h.uc.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.IDResponse{ID: id})
}

// GetStocksHandler は GET /stocks を処理します。
// クエリパラメータはフィールドの完全一致フィルタとして解釈されます。
// - 未知のフィルタフィールドは422を返却
// - フィルタ指定時に一致が無い場合は404を返却
// - フィルタ無しで空のコレクションは200で空配列を返却
func (h *StocksHandler) GetStocksHandler(c *gin.Context) {
	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}

	stocks, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]api.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toStockResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

// GetStockHandler は GET /stocks/:id を処理します。
func (h *StocksHandler) GetStockHandler(c *gin.Context) {
	stock, err := h.uc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStockResponse(*stock))
}

// UpdateStockHandler は PUT /stocks/:id を処理します。
// 全フィールド必須の置換型更新で、idとsymbolは変更できません。
func (h *StocksHandler) UpdateStockHandler(c *gin.Context) {
	if c.ContentType() != jsonMediaType {
		c.JSON(http.StatusUnsupportedMediaType, api.ErrorResponse{Error: "expected application/json media type"})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: domain.ErrMalformedData.Error()})
		return
	}

	id := c.Param("id")
	if err := h.uc.Update(c.Request.Context(), id, payload); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.IDResponse{ID: id})
}

// DeleteStockHandler は DELETE /stocks/:id を処理します。
func (h *StocksHandler) DeleteStockHandler(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteStocksHandler は DELETE /stocks を処理します。
// コレクション全体を無条件に空にします。既に空でも成功します。
func (h *StocksHandler) DeleteStocksHandler(c *gin.Context) {
	if err := h.uc.DeleteAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
