package model

import "time"

type ReorderStatus string

const (
	ReorderStatusOrdered  ReorderStatus = "Ordered"
	ReorderStatusReceived ReorderStatus = "Received"
)

// 発注。Ordered → Received の一方向にだけ遷移する。
// 同一商品のOrderedは部分ユニークインデックスで同時に1件まで。

type Reorder struct {
	ID              int64         `gorm:"column:reorder_id;primaryKey;autoIncrement" json:"reorder_id"`
	ProductID       int64         `gorm:"column:product_id;not null;index:idx_reorders_active_product,unique,where:status = 'Ordered'" json:"product_id"`
	ReorderQuantity int64         `gorm:"column:reorder_quantity;not null" json:"reorder_quantity"`
	ReorderDate     time.Time     `gorm:"column:reorder_date;type:date;not null" json:"reorder_date"`
	Status          ReorderStatus `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
}

func (Reorder) TableName() string {
	return "reorders"
}
