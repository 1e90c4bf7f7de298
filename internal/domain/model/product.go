package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int64           `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name          string          `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	Category      string          `gorm:"column:category;type:varchar(100);not null;index" json:"category"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	StockQuantity int64           `gorm:"column:stock_quantity;not null" json:"stock_quantity"`
	ReorderLevel  int64           `gorm:"column:reorder_level;not null" json:"reorder_level"`
	SupplierID    int64           `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
