package repository

import (
	"context"

	repo "inventory/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products     repo.ProductRepository
	suppliers    repo.SupplierRepository
	stockEntries repo.StockEntryRepository
	reorders     repo.ReorderRepository
}

func (r *txReposGorm) Products() repo.ProductRepository        { return r.products }
func (r *txReposGorm) Suppliers() repo.SupplierRepository      { return r.suppliers }
func (r *txReposGorm) StockEntries() repo.StockEntryRepository { return r.stockEntries }
func (r *txReposGorm) Reorders() repo.ReorderRepository        { return r.reorders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnが失敗（またはctxが中断）したら全部ロールバックする。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:     NewProductGormRepository(tx),
			suppliers:    NewSupplierGormRepository(tx),
			stockEntries: NewStockEntryGormRepository(tx),
			reorders:     NewReorderGormRepository(tx),
		}
		return fn(r)
	})
}
