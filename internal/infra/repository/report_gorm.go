package repository

import (
	"context"
	"time"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportGormRepository struct {
	db *gorm.DB
}

// DI
func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) CountSuppliers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Supplier{}).Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Distinct("category").Count(&n).Error
	return n, err
}

// Saleは負で記録されるのでABSで金額に直す
func (r *ReportGormRepository) SaleValueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	return r.valueSince(ctx, model.ChangeTypeSale, "ABS(se.change_quantity)", since)
}

func (r *ReportGormRepository) RestockValueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	return r.valueSince(ctx, model.ChangeTypeRestock, "se.change_quantity", since)
}

func (r *ReportGormRepository) valueSince(ctx context.Context, ct model.ChangeType, qtyExpr string, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(ROUND(SUM(`+qtyExpr+` * p.price), 2), 0)
		 FROM stock_entries se
		 JOIN products p ON se.product_id = p.product_id
		 WHERE se.change_type = ? AND se.entry_date >= ?`,
		ct, since,
	).Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// 在庫が発注水準未満、かつOrderedな発注が無い商品の件数
func (r *ReportGormRepository) CountBelowReorderWithoutActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*)
		 FROM products p
		 WHERE p.stock_quantity < p.reorder_level
		 AND NOT EXISTS (
		   SELECT 1 FROM reorders r
		   WHERE r.product_id = p.product_id AND r.status = ?
		 )`,
		model.ReorderStatusOrdered,
	).Row().Scan(&n)
	return n, err
}

func (r *ReportGormRepository) ListSupplierContacts(ctx context.Context) ([]repo.SupplierContact, error) {
	var rows []repo.SupplierContact
	err := r.db.WithContext(ctx).
		Model(&model.Supplier{}).
		Select("supplier_name, contact_name, email, phone").
		Order("supplier_name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportGormRepository) ListProductsWithSuppliers(ctx context.Context) ([]repo.ProductSupplierRow, error) {
	var rows []repo.ProductSupplierRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.product_name, suppliers.supplier_name, products.stock_quantity, products.reorder_level").
		Joins("JOIN suppliers ON products.supplier_id = suppliers.supplier_id").
		Order("products.product_name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportGormRepository) ListProductsNeedingReorder(ctx context.Context) ([]repo.ReorderAdviceRow, error) {
	var rows []repo.ReorderAdviceRow
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("product_name, stock_quantity, reorder_level").
		Where("stock_quantity <= reorder_level").
		Order("product_name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

var _ repo.ReportRepository = (*ReportGormRepository)(nil)
