package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// 仕入先の連絡先一覧
type SupplierContact struct {
	SupplierName string `gorm:"column:supplier_name" json:"supplier_name"`
	ContactName  string `gorm:"column:contact_name" json:"contact_name"`
	Email        string `gorm:"column:email" json:"email"`
	Phone        string `gorm:"column:phone" json:"phone"`
}

// 商品×仕入先×在庫の一覧
type ProductSupplierRow struct {
	ProductName   string `gorm:"column:product_name" json:"product_name"`
	SupplierName  string `gorm:"column:supplier_name" json:"supplier_name"`
	StockQuantity int64  `gorm:"column:stock_quantity" json:"stock_quantity"`
	ReorderLevel  int64  `gorm:"column:reorder_level" json:"reorder_level"`
}

// 発注水準を割っている商品
type ReorderAdviceRow struct {
	ProductName   string `gorm:"column:product_name" json:"product_name"`
	StockQuantity int64  `gorm:"column:stock_quantity" json:"stock_quantity"`
	ReorderLevel  int64  `gorm:"column:reorder_level" json:"reorder_level"`
}

// 集計は読み取りのみ。維持すべき不変条件はない。
type ReportRepository interface {
	CountSuppliers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)

	// since以降のSaleエントリの金額合計（Σ|change_quantity|×price）
	SaleValueSince(ctx context.Context, since time.Time) (decimal.Decimal, error)

	// since以降のRestockエントリの金額合計
	RestockValueSince(ctx context.Context, since time.Time) (decimal.Decimal, error)

	// 在庫が発注水準未満、かつOrderedな発注が無い商品の件数。
	// 「活きている発注」の定義はstatus=Ordered（I1と同じ）。
	CountBelowReorderWithoutActive(ctx context.Context) (int64, error)

	ListSupplierContacts(ctx context.Context) ([]SupplierContact, error)
	ListProductsWithSuppliers(ctx context.Context) ([]ProductSupplierRow, error)
	ListProductsNeedingReorder(ctx context.Context) ([]ReorderAdviceRow, error)
}
