// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"stocks_backend/internal/feature/stocks/domain"
	"stocks_backend/internal/feature/stocks/domain/entity"
	"stocks_backend/internal/feature/stocks/usecase"
)

// stockGorm はStockRepositoryインターフェースのGORM実装です。
// symbolカラムのユニークインデックスにより、並行する作成リクエスト間でも
// 一意性がストアレベルで保証されます。
type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository は指定されたDB接続でstockGormリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// Insert は新しい株式レコードを永続化します。
// ユニーク制約違反は domain.ErrSymbolExists に変換されます。
func (r *stockGorm) Insert(ctx context.Context, stock *entity.Stock) error {
	if err := r.db.WithContext(ctx).Create(stock).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSymbolExists
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// FindByID は指定されたIDの株式レコードを取得します。
func (r *stockGorm) FindByID(ctx context.Context, id string) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStockNotFound
		}
		return nil, fmt.Errorf("find stock by id: %w", err)
	}
	return &stock, nil
}

// FindBySymbol は指定されたシンボルの株式レコードを取得します。
// シンボルは保存時に大文字化されているため、呼び出し側で大文字化して渡します。
func (r *stockGorm) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStockNotFound
		}
		return nil, fmt.Errorf("find stock by symbol: %w", err)
	}
	return &stock, nil
}

// FindAll はすべての株式レコードをID順で返します。
// 変更が無い限り2回の読み取りで同じ順序になるよう、明示的にソートします。
func (r *stockGorm) FindAll(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("find all stocks: %w", err)
	}
	return stocks, nil
}

// FindByFields はカラム名→値の完全一致条件（AND結合）でレコードを検索します。
func (r *stockGorm) FindByFields(ctx context.Context, fields map[string]any) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).Where(fields).Order("id ASC").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("find stocks by fields: %w", err)
	}
	return stocks, nil
}

// UpdateFields は指定されたIDのレコードの可変フィールドのみを更新します。
// idとsymbolはここには渡されないため、単一のUPDATE文で不変性が保たれます。
func (r *stockGorm) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&entity.Stock{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStockNotFound
	}
	return nil
}

// Delete は指定されたIDのレコードを削除します。
func (r *stockGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Stock{})
	if res.Error != nil {
		return fmt.Errorf("delete stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStockNotFound
	}
	return nil
}

// DeleteAll はすべての株式レコードを削除します。空のコレクションでも成功します。
func (r *stockGorm) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.Stock{}).Error; err != nil {
		return fmt.Errorf("delete all stocks: %w", err)
	}
	return nil
}
