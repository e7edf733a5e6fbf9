package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"stocks_backend/internal/app/di"
	"stocks_backend/internal/app/router"
	stocksadapters "stocks_backend/internal/feature/stocks/adapters"
	stockshandler "stocks_backend/internal/feature/stocks/transport/handler"
	stocksusecase "stocks_backend/internal/feature/stocks/usecase"
	valuationhandler "stocks_backend/internal/feature/valuation/transport/handler"
	valuationusecase "stocks_backend/internal/feature/valuation/usecase"
	infradb "stocks_backend/internal/platform/db"
)

func main() {
	// .envがあれば読み込む（コンテナでは環境変数が直接渡される）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	// db
	db := infradb.OpenDB()

	// Repository
	stockRepo := stocksadapters.NewStockRepository(db)
	quoteRepo := di.NewQuoteClient()

	// Usecase
	stocksUC := stocksusecase.NewStocksUsecase(stockRepo)
	valuationUC := valuationusecase.NewValuationUsecase(stockRepo, quoteRepo)

	// Handler
	stocksH := stockshandler.NewStocksHandler(stocksUC)
	valuationH := valuationhandler.NewValuationHandler(valuationUC)

	// ルータ生成
	router := router.NewRouter(stocksH, valuationH)

	// クォートAPIキー未設定の注意喚起（評価系エンドポイントのみ影響する）
	if os.Getenv("STOCK_API_KEY") == "" {
		log.Println("[WARN] STOCK_API_KEY is not set. Valuation endpoints will fail.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
