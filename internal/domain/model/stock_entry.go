package model

import "time"

type ChangeType string

const (
	ChangeTypeInitial          ChangeType = "Initial"
	ChangeTypeSale             ChangeType = "Sale"
	ChangeTypeRestock          ChangeType = "Restock"
	ChangeTypeManualAdjustment ChangeType = "ManualAdjustment"
)

// 在庫変動の履歴（追記のみ）。
// change_quantityは符号付き：出庫（Sale）は負、入庫（Restock/Initial）は正。
// products.stock_quantityは常にこの履歴の合計と一致する。

type StockEntry struct {
	ID             int64      `gorm:"column:entry_id;primaryKey;autoIncrement" json:"entry_id"`
	ProductID      int64      `gorm:"column:product_id;not null;index" json:"product_id"`
	ChangeType     ChangeType `gorm:"column:change_type;type:varchar(20);not null" json:"change_type"`
	ChangeQuantity int64      `gorm:"column:change_quantity;not null" json:"change_quantity"`
	EntryDate      time.Time  `gorm:"column:entry_date;type:date;not null;index" json:"entry_date"`
}

func (StockEntry) TableName() string {
	return "stock_entries"
}
