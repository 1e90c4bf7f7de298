package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgresのunique_violation
const pgUniqueViolation = "23505"

type ReorderGormRepository struct {
	db *gorm.DB
}

// DI
func NewReorderGormRepository(db *gorm.DB) *ReorderGormRepository {
	return &ReorderGormRepository{db: db}
}

func (r *ReorderGormRepository) FindByID(ctx context.Context, id int64) (model.Reorder, error) {
	var ro model.Reorder
	err := r.db.WithContext(ctx).First(&ro, "reorder_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Reorder{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Reorder{}, err
	}
	return ro, nil
}

// 対象商品のOrderedな発注を取得
func (r *ReorderGormRepository) FindActiveByProductID(ctx context.Context, productID int64) (model.Reorder, error) {
	var ro model.Reorder
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, model.ReorderStatusOrdered).
		First(&ro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Reorder{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Reorder{}, err
	}
	return ro, nil
}

// 発注の作成。reorder_idはDBの採番（max+1を自前で計算しない）。
// 同一商品のOrdered重複は部分ユニークインデックスが弾く。
func (r *ReorderGormRepository) Create(ctx context.Context, ro model.Reorder) (model.Reorder, error) {
	if err := r.db.WithContext(ctx).Create(&ro).Error; err != nil {
		if isUniqueViolation(err) {
			return model.Reorder{}, repo.ErrDuplicate
		}
		return model.Reorder{}, err
	}
	return ro, nil
}

// Ordered → Received の条件付き遷移。
// すでにReceivedの行は条件に合わずRowsAffected=0になる。
func (r *ReorderGormRepository) MarkReceived(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Reorder{}).
		Where("reorder_id = ? AND status = ?", id, model.ReorderStatusOrdered).
		Update("status", model.ReorderStatusReceived)

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 未受領の発注を商品名付きで、reorder_id昇順で返す
func (r *ReorderGormRepository) ListPending(ctx context.Context) ([]repo.PendingReorder, error) {
	var rows []repo.PendingReorder
	err := r.db.WithContext(ctx).
		Table("reorders").
		Select("reorders.reorder_id, reorders.product_id, products.product_name, reorders.reorder_quantity, reorders.reorder_date").
		Joins("JOIN products ON products.product_id = reorders.product_id").
		Where("reorders.status = ?", model.ReorderStatusOrdered).
		Order("reorders.reorder_id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
