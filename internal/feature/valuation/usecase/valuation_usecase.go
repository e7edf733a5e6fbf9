// Package usecase は保有株式の時価評価のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"time"

	"stocks_backend/internal/feature/stocks/domain/entity"
	"stocks_backend/internal/feature/valuation/domain"
)

// StockReader は評価対象の株式レコードの読み取り層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）側で定義します。
type StockReader interface {
	// FindByID は指定されたIDの株式レコードを取得します。
	FindByID(ctx context.Context, id string) (*entity.Stock, error)

	// FindAll はすべての株式レコードを返します。
	FindAll(ctx context.Context) ([]entity.Stock, error)
}

// QuoteRepository は外部クォートソースを抽象化します。
// シンボルごとに1回の呼び出しで現在価格を取得します。キャッシュは行いません。
type QuoteRepository interface {
	// GetPrice は指定されたシンボルの現在の1株あたり価格を返します。
	GetPrice(ctx context.Context, symbol string) (float64, error)
}

// StockValue は1銘柄の評価結果です。
type StockValue struct {
	Symbol      string  // 銘柄シンボル
	TickerPrice float64 // クォートソースから取得した現在価格
	Value       float64 // TickerPrice × 保有株数
}

// PortfolioValue はポートフォリオ全体の評価結果です。
type PortfolioValue struct {
	Date  string  // 評価時点の日付（YYYY-MM-DD）
	Total float64 // 全銘柄の評価額の合計
}

// valuationUsecase は時価評価のユースケースを実装します。
type valuationUsecase struct {
	stocks StockReader
	quotes QuoteRepository
}

// NewValuationUsecase はvaluationUsecaseの新しいインスタンスを生成します。
func NewValuationUsecase(stocks StockReader, quotes QuoteRepository) *valuationUsecase {
	return &valuationUsecase{stocks: stocks, quotes: quotes}
}

// StockValue は指定されたIDの銘柄の現在価格と評価額を返します。
// クォートが取得できない場合は domain.ErrQuoteUnavailable を返します。
func (u *valuationUsecase) StockValue(ctx context.Context, id string) (*StockValue, error) {
	stock, err := u.stocks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := u.quotes.GetPrice(ctx, stock.Symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuoteUnavailable, stock.Symbol)
	}

	return &StockValue{
		Symbol:      stock.Symbol,
		TickerPrice: price,
		Value:       price * float64(stock.Shares),
	}, nil
}

// PortfolioValue は全銘柄の評価額の合計を返します。
// 1銘柄でもクォートが取得できない場合、部分集計は返さず全体が失敗します。
// 保有ゼロの場合は合計0で成功します。
func (u *valuationUsecase) PortfolioValue(ctx context.Context) (*PortfolioValue, error) {
	stocks, err := u.stocks.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, stock := range stocks {
		price, err := u.quotes.GetPrice(ctx, stock.Symbol)
		if err != nil {
			// フェイルファスト: ここまでの合計は破棄する
			return nil, fmt.Errorf("%w: %s", domain.ErrQuoteUnavailable, stock.Symbol)
		}
		total += price * float64(stock.Shares)
	}

	return &PortfolioValue{
		Date:  time.Now().Format("2006-01-02"),
		Total: total,
	}, nil
}
