// Package usecase は株式インベントリ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"stocks_backend/internal/feature/stocks/domain"
	"stocks_backend/internal/feature/stocks/domain/entity"
)

// ペイロードおよびクエリフィルタで使用されるワイヤーレベルのフィールド名です。
// 元のAPI契約に合わせてスペースを含むキーをそのまま使用します。
const (
	FieldID            = "id"
	FieldName          = "name"
	FieldSymbol        = "symbol"
	FieldShares        = "shares"
	FieldPurchasePrice = "purchase price"
	FieldPurchaseDate  = "purchase date"
)

// filterColumns はクエリフィルタのフィールド名をデータベースのカラム名に対応付けます。
// ここに無いフィールドでのフィルタは domain.ErrInvalidQueryField になります。
var filterColumns = map[string]string{
	FieldID:            "id",
	FieldName:          "name",
	FieldSymbol:        "symbol",
	FieldShares:        "shares",
	FieldPurchasePrice: "purchase_price",
	FieldPurchaseDate:  "purchase_date",
}

// datePattern は購入日の構造チェック用パターンです（2桁-2桁-4桁）。
var datePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// StockRepository は株式レコードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StockRepository interface {
	// Insert は新しい株式レコードを永続化します。
	// 同じシンボルのレコードが既に存在する場合、domain.ErrSymbolExists を返します。
	Insert(ctx context.Context, stock *entity.Stock) error

	// FindByID は指定されたIDの株式レコードを取得します。
	// 存在しない場合、domain.ErrStockNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Stock, error)

	// FindBySymbol は指定されたシンボル（大文字）の株式レコードを取得します。
	// 存在しない場合、domain.ErrStockNotFound を返します。
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)

	// FindAll はすべての株式レコードを返します。
	FindAll(ctx context.Context) ([]entity.Stock, error)

	// FindByFields はカラム名→値の完全一致条件（AND結合）でレコードを検索します。
	FindByFields(ctx context.Context, fields map[string]any) ([]entity.Stock, error)

	// UpdateFields は指定されたIDのレコードの可変フィールドのみを更新します。
	UpdateFields(ctx context.Context, id string, fields map[string]any) error

	// Delete は指定されたIDのレコードを削除します。
	// 存在しない場合、domain.ErrStockNotFound を返します。
	Delete(ctx context.Context, id string) error

	// DeleteAll はすべての株式レコードを削除します。空のコレクションでも成功します。
	DeleteAll(ctx context.Context) error
}

// stocksUsecase は株式インベントリのユースケースを実装します。
type stocksUsecase struct {
	stocks StockRepository
}

// NewStocksUsecase はstocksUsecaseの新しいインスタンスを生成します。
func NewStocksUsecase(stocks StockRepository) *stocksUsecase {
	return &stocksUsecase{stocks: stocks}
}

// Create はペイロードを検証し、新しい株式レコードを作成してIDを返します。
// symbol・purchase price・sharesは必須で、symbolは大文字化され一意でなければなりません。
// nameとpurchase dateは省略時にセンチネル "NA" が入ります。
func (u *stocksUsecase) Create(ctx context.Context, payload map[string]any) (string, error) {
	// 必須フィールドの存在チェック
	for _, f := range []string{FieldSymbol, FieldPurchasePrice, FieldShares} {
		if _, ok := payload[f]; !ok {
			return "", domain.ErrMalformedData
		}
	}

	symbol, ok := payload[FieldSymbol].(string)
	if !ok {
		return "", domain.ErrInvalidSymbol
	}
	shares, ok := asPositiveInt(payload[FieldShares])
	if !ok {
		return "", domain.ErrInvalidShares
	}
	price, ok := asPositiveNumber(payload[FieldPurchasePrice])
	if !ok {
		return "", domain.ErrInvalidPrice
	}

	// nameは任意。指定された場合は文字列でなければならない
	name := entity.Unset
	if v, ok := payload[FieldName]; ok {
		s, ok := v.(string)
		if !ok {
			return "", domain.ErrInvalidName
		}
		name = s
	}

	// シンボルの一意性チェック（競合時の取りこぼしはInsert側のユニーク制約が拾う）
	upper := strings.ToUpper(symbol)
	if _, err := u.stocks.FindBySymbol(ctx, upper); err == nil {
		return "", domain.ErrSymbolExists
	} else if !errors.Is(err, domain.ErrStockNotFound) {
		return "", err
	}

	// purchase dateは任意。指定された場合はDD-MM-YYYY形式の実在する日付でなければならない
	date := entity.Unset
	if v, ok := payload[FieldPurchaseDate]; ok {
		s, ok := v.(string)
		if !ok {
			return "", domain.ErrInvalidDate
		}
		if s != entity.Unset && !validDate(s) {
			return "", domain.ErrInvalidDate
		}
		date = s
	}

	stock := &entity.Stock{
		ID:            uuid.NewString(),
		Name:          name,
		Symbol:        upper,
		PurchasePrice: round2(price),
		PurchaseDate:  date,
		Shares:        shares,
	}
	if err := u.stocks.Insert(ctx, stock); err != nil {
		return "", err
	}
	return stock.ID, nil
}

// GetByID は指定されたIDの株式レコードを返します。
func (u *stocksUsecase) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	return u.stocks.FindByID(ctx, id)
}

// List はフィルタ条件に一致する株式レコードを返します。
// フィルタが空の場合はすべてのレコードを返します（空コレクションなら空スライス）。
// フィルタ指定時に一致が無い場合は domain.ErrNoMatch を返します。
func (u *stocksUsecase) List(ctx context.Context, filter map[string]string) ([]entity.Stock, error) {
	if len(filter) == 0 {
		return u.stocks.FindAll(ctx)
	}

	fields := make(map[string]any, len(filter))
	for key, value := range filter {
		column, ok := filterColumns[key]
		if !ok {
			return nil, domain.ErrInvalidQueryField
		}
		// sharesは整数、purchase priceは数値に型変換する
		switch key {
		case FieldShares:
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: shares=%q", domain.ErrMalformedData, value)
			}
			fields[column] = n
		case FieldPurchasePrice:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: purchase price=%q", domain.ErrMalformedData, value)
			}
			fields[column] = f
		default:
			fields[column] = value
		}
	}

	stocks, err := u.stocks.FindByFields(ctx, fields)
	if err != nil {
		return nil, err
	}
	if len(stocks) == 0 {
		return nil, domain.ErrNoMatch
	}
	return stocks, nil
}

// Update は指定されたIDの株式レコードを全フィールド指定のペイロードで更新します。
// IDとシンボルは変更不可で、比較のみ行われます。
// nameとpurchase dateは "NA" で実値を消せないマージルールに従います。
func (u *stocksUsecase) Update(ctx context.Context, id string, payload map[string]any) error {
	// 全フィールドが必須（スパースなパッチではなく全レコード置換の意図）
	for _, f := range []string{FieldID, FieldName, FieldSymbol, FieldPurchasePrice, FieldPurchaseDate, FieldShares} {
		if _, ok := payload[f]; !ok {
			return domain.ErrMalformedData
		}
	}

	stored, err := u.stocks.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// IDの変更は許可しない
	if pid, ok := payload[FieldID].(string); !ok || pid != stored.ID {
		return domain.ErrIDImmutable
	}

	// シンボルの変更は許可しない（大文字化して比較のみ）
	symbol, ok := payload[FieldSymbol].(string)
	if !ok {
		return domain.ErrInvalidSymbol
	}
	if strings.ToUpper(symbol) != stored.Symbol {
		return domain.ErrSymbolImmutable
	}

	shares, ok := asPositiveInt(payload[FieldShares])
	if !ok {
		return domain.ErrInvalidShares
	}
	price, ok := asPositiveNumber(payload[FieldPurchasePrice])
	if !ok {
		return domain.ErrInvalidPrice
	}

	// nameのマージ: ペイロードが "NA" で保存値が実値なら保存値を維持する。
	// それ以外はペイロードの値（文字列必須）が新しい値になる。
	var name string
	if payload[FieldName] == entity.Unset && stored.Name != entity.Unset {
		name = stored.Name
	} else {
		s, ok := payload[FieldName].(string)
		if !ok {
			return domain.ErrInvalidName
		}
		name = s
	}

	// purchase dateのマージ: ペイロードが "NA" なら保存値を維持する
	// （保存値も "NA" ならそのまま "NA"）。実値は日付検証を通らなければならない。
	var date string
	if payload[FieldPurchaseDate] == entity.Unset {
		date = stored.PurchaseDate
	} else {
		s, ok := payload[FieldPurchaseDate].(string)
		if !ok || !validDate(s) {
			return domain.ErrInvalidDate
		}
		date = s
	}

	fields := map[string]any{
		"name":           name,
		"purchase_price": round2(price),
		"purchase_date":  date,
		"shares":         shares,
	}
	return u.stocks.UpdateFields(ctx, stored.ID, fields)
}

// Delete は指定されたIDの株式レコードを完全に削除します。
func (u *stocksUsecase) Delete(ctx context.Context, id string) error {
	return u.stocks.Delete(ctx, id)
}

// DeleteAll はコレクション内のすべての株式レコードを削除します。
func (u *stocksUsecase) DeleteAll(ctx context.Context) error {
	return u.stocks.DeleteAll(ctx)
}

// asPositiveInt はJSON数値が正の整数であるかを検証します。
// encoding/jsonは数値をfloat64にデコードするため、小数部が無いことを確認します。
func asPositiveInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n <= 0 || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		if n <= 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// asPositiveNumber はJSON数値が正の数であるかを検証します。
func asPositiveNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if n <= 0 {
			return 0, false
		}
		return n, true
	case int:
		if n <= 0 {
			return 0, false
		}
		return float64(n), true
	}
	return 0, false
}

// validDate は文字列がDD-MM-YYYY形式の実在するカレンダー日付かを検証します。
// 構造チェック（パターン）と実在チェック（time.Parse）の両方を行います。
func validDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("02-01-2006", s)
	return err == nil
}

// round2 は小数第2位に丸めます。purchase priceの保存前に適用されます。
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
