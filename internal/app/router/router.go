// Package router はアプリケーションのルート定義を提供します。
package router

import (
	stockshandler "stocks_backend/internal/feature/stocks/transport/handler"
	valuationhandler "stocks_backend/internal/feature/valuation/transport/handler"
	platformhandler "stocks_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter はすべてのエンドポイントを登録したginエンジンを生成します。
func NewRouter(stocks *stockshandler.StocksHandler, valuation *valuationhandler.ValuationHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// テストハーネス用のプロセス終了フック
	r.GET("/kill", platformhandler.NewKill(nil))

	// 株式インベントリのCRUD
	r.POST("/stocks", stocks.CreateStockHandler)
	r.GET("/stocks", stocks.GetStocksHandler)
	r.DELETE("/stocks", stocks.DeleteStocksHandler)
	r.GET("/stocks/:id", stocks.GetStockHandler)
	r.PUT("/stocks/:id", stocks.UpdateStockHandler)
	r.DELETE("/stocks/:id", stocks.DeleteStockHandler)

	// 時価評価
	r.GET("/stock-value/:id", valuation.GetStockValueHandler)
	r.GET("/portfolio-value", valuation.GetPortfolioValueHandler)

	return r
}
