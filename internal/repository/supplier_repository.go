package repository

import (
	"context"

	"inventory/internal/domain/model"
)

// フォーム用の最小形（supplier_id + supplier_name）
type SupplierRef struct {
	ID   int64  `gorm:"column:supplier_id" json:"supplier_id"`
	Name string `gorm:"column:supplier_name" json:"supplier_name"`
}

// 仕入先はこのコアから読み取り専用。
type SupplierRepository interface {
	FindByID(ctx context.Context, id int64) (model.Supplier, error)
	ListRefs(ctx context.Context) ([]SupplierRef, error)
}
