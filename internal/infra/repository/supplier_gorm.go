package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

// DI
func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

func (r *SupplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, "supplier_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

// フォーム用の一覧（名前昇順）
func (r *SupplierGormRepository) ListRefs(ctx context.Context) ([]repo.SupplierRef, error) {
	var refs []repo.SupplierRef
	err := r.db.WithContext(ctx).
		Model(&model.Supplier{}).
		Select("supplier_id, supplier_name").
		Order("supplier_name asc").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
