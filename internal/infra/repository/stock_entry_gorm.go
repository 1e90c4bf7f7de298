package repository

import (
	"context"

	"inventory/internal/domain/model"

	"gorm.io/gorm"
)

type StockEntryGormRepository struct {
	db *gorm.DB
}

// DI
func NewStockEntryGormRepository(db *gorm.DB) *StockEntryGormRepository {
	return &StockEntryGormRepository{db: db}
}

// 履歴の追記
func (r *StockEntryGormRepository) Create(ctx context.Context, e model.StockEntry) error {
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return err
	}
	return nil
}

// entry_date降順、同日はentry_id降順（新しい順）
func (r *StockEntryGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.StockEntry, error) {
	var entries []model.StockEntry
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("entry_date desc").
		Order("entry_id desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
