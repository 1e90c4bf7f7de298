package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ユニーク制約違反（同一商品のOrdered重複など）
var ErrDuplicate = errors.New("duplicate")

// フォーム用の最小形（product_id + product_name）
type ProductRef struct {
	ID   int64  `gorm:"column:product_id" json:"product_id"`
	Name string `gorm:"column:product_name" json:"product_name"`
}

// 商品の永続化だけを約束。
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)

	// フォーム用の一覧（名前昇順）
	ListRefs(ctx context.Context) ([]ProductRef, error)

	// 登録済みカテゴリの一覧（昇順）
	ListCategories(ctx context.Context) ([]string, error)

	// 在庫を符号付きdeltaで調整する（条件付き更新）。
	// 結果が負になる場合は何もせずfalseを返す。
	AdjustStock(ctx context.Context, productID int64, delta int64) (bool, error)
}
