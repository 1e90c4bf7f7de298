package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成（product_idはDB採番）
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// フォーム用の一覧（名前昇順）
func (r *ProductGormRepository) ListRefs(ctx context.Context) ([]repo.ProductRef, error) {
	var refs []repo.ProductRef
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("product_id, product_name").
		Order("product_name asc").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// 登録済みカテゴリの一覧（昇順）
func (r *ProductGormRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// 在庫を符号付きdeltaで調整する。
// 結果が負になる行は条件に引っかからず、RowsAffected=0になる。
func (r *ProductGormRepository) AdjustStock(ctx context.Context, productID int64, delta int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_id = ? AND stock_quantity + ? >= 0", productID, delta).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}
