package repository

import (
	"context"

	"inventory/internal/domain/model"
)

// 在庫履歴の追記と取得。更新・削除は存在しない。
type StockEntryRepository interface {
	Create(ctx context.Context, e model.StockEntry) error

	// entry_date降順、同日のものは後に入った方が先（entry_id降順）
	ListByProductID(ctx context.Context, productID int64) ([]model.StockEntry, error)
}
