package repository

import (
	"context"
	"time"

	"inventory/internal/domain/model"
)

// 未受領の発注（商品名join済み、表示用）
type PendingReorder struct {
	ID              int64     `gorm:"column:reorder_id" json:"reorder_id"`
	ProductID       int64     `gorm:"column:product_id" json:"product_id"`
	ProductName     string    `gorm:"column:product_name" json:"product_name"`
	ReorderQuantity int64     `gorm:"column:reorder_quantity" json:"reorder_quantity"`
	ReorderDate     time.Time `gorm:"column:reorder_date" json:"reorder_date"`
}

type ReorderRepository interface {
	FindByID(ctx context.Context, id int64) (model.Reorder, error)

	// 対象商品のOrderedな発注を返す。無ければErrNotFound。
	FindActiveByProductID(ctx context.Context, productID int64) (model.Reorder, error)

	// reorder_idはDB採番。Ordered重複はErrDuplicate。
	Create(ctx context.Context, r model.Reorder) (model.Reorder, error)

	// Ordered → Received の条件付き遷移。
	// すでにReceivedなら何もせずfalseを返す。
	MarkReceived(ctx context.Context, id int64) (bool, error)

	// status=Orderedのみ、reorder_id昇順
	ListPending(ctx context.Context) ([]PendingReorder, error)
}
