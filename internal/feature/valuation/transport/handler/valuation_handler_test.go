package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	stocksdomain "stocks_backend/internal/feature/stocks/domain"
	"stocks_backend/internal/feature/valuation/domain"
	"stocks_backend/internal/feature/valuation/transport/handler"
	"stocks_backend/internal/feature/valuation/usecase"
)

// mockValuationUsecase はValuationUsecaseインターフェースのモック実装です。
type mockValuationUsecase struct {
	StockValueFunc     func(ctx context.Context, id string) (*usecase.StockValue, error)
	PortfolioValueFunc func(ctx context.Context) (*usecase.PortfolioValue, error)
}

func (m *mockValuationUsecase) StockValue(ctx context.Context, id string) (*usecase.StockValue, error) {
	return m.StockValueFunc(ctx, id)
}

func (m *mockValuationUsecase) PortfolioValue(ctx context.Context) (*usecase.PortfolioValue, error) {
	return m.PortfolioValueFunc(ctx)
}

// setupRouter はモックusecaseを注入したテスト用ルータを生成します。
func setupRouter(mockUC *mockValuationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewValuationHandler(mockUC)

	r := gin.New()
	r.GET("/stock-value/:id", h.GetStockValueHandler)
	r.GET("/portfolio-value", h.GetPortfolioValueHandler)
	return r
}

// TestValuationHandler_GetStockValueHandler はGET /stock-value/:idをテストします。
func TestValuationHandler_GetStockValueHandler(t *testing.T) {
	tests := []struct {
		name           string
		mockStockValue func(ctx context.Context, id string) (*usecase.StockValue, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns symbol, ticker price and value",
			mockStockValue: func(ctx context.Context, id string) (*usecase.StockValue, error) {
				assert.Equal(t, "id-1", id)
				return &usecase.StockValue{Symbol: "NVDA", TickerPrice: 150.0, Value: 1050.0}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"NVDA","ticker":150.0,"stock value":1050.0}`,
		},
		{
			name: "error: unknown id maps to 404",
			mockStockValue: func(ctx context.Context, id string) (*usecase.StockValue, error) {
				return nil, stocksdomain.ErrStockNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no such ID"}`,
		},
		{
			name: "error: unavailable quote maps to 500 with error body",
			mockStockValue: func(ctx context.Context, id string) (*usecase.StockValue, error) {
				return nil, fmt.Errorf("%w: %s", domain.ErrQuoteUnavailable, "NVDA")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to retrieve ticker price"}`,
		},
		{
			name: "error: unexpected failure maps to 500 with server error body",
			mockStockValue: func(ctx context.Context, id string) (*usecase.StockValue, error) {
				return nil, errors.New("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"server error":"connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockValuationUsecase{StockValueFunc: tt.mockStockValue})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/stock-value/id-1", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestValuationHandler_GetPortfolioValueHandler はGET /portfolio-valueをテストします。
func TestValuationHandler_GetPortfolioValueHandler(t *testing.T) {
	tests := []struct {
		name               string
		mockPortfolioValue func(ctx context.Context) (*usecase.PortfolioValue, error)
		expectedStatus     int
		expectedBody       string
	}{
		{
			name: "success: returns date and total",
			mockPortfolioValue: func(ctx context.Context) (*usecase.PortfolioValue, error) {
				return &usecase.PortfolioValue{Date: "2024-06-18", Total: 4850.0}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"date":"2024-06-18","portfolio value":4850.0}`,
		},
		{
			name: "error: unavailable quote maps to 500 with error body",
			mockPortfolioValue: func(ctx context.Context) (*usecase.PortfolioValue, error) {
				return nil, fmt.Errorf("%w: %s", domain.ErrQuoteUnavailable, "AAPL")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to retrieve ticker price"}`,
		},
		{
			name: "error: unexpected failure maps to 500 with server error body",
			mockPortfolioValue: func(ctx context.Context) (*usecase.PortfolioValue, error) {
				return nil, errors.New("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"server error":"connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockValuationUsecase{PortfolioValueFunc: tt.mockPortfolioValue})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/portfolio-value", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
