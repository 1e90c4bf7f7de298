package usecase_test

import (
	"context"
	"time"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository モック
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) ListRefs(ctx context.Context) ([]repo.ProductRef, error) {
	args := m.Called(ctx)
	refs, _ := args.Get(0).([]repo.ProductRef)
	return refs, args.Error(1)
}

func (m *ProductRepoMock) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

func (m *ProductRepoMock) AdjustStock(ctx context.Context, productID int64, delta int64) (bool, error) {
	args := m.Called(ctx, productID, delta)
	return args.Bool(0), args.Error(1)
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

type SupplierRepoMock struct{ mock.Mock }

func (m *SupplierRepoMock) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *SupplierRepoMock) ListRefs(ctx context.Context) ([]repo.SupplierRef, error) {
	args := m.Called(ctx)
	refs, _ := args.Get(0).([]repo.SupplierRef)
	return refs, args.Error(1)
}

var _ repo.SupplierRepository = (*SupplierRepoMock)(nil)

type StockEntryRepoMock struct{ mock.Mock }

func (m *StockEntryRepoMock) Create(ctx context.Context, e model.StockEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *StockEntryRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.StockEntry, error) {
	args := m.Called(ctx, productID)
	entries, _ := args.Get(0).([]model.StockEntry)
	return entries, args.Error(1)
}

var _ repo.StockEntryRepository = (*StockEntryRepoMock)(nil)

type ReorderRepoMock struct{ mock.Mock }

func (m *ReorderRepoMock) FindByID(ctx context.Context, id int64) (model.Reorder, error) {
	args := m.Called(ctx, id)
	ro, _ := args.Get(0).(model.Reorder)
	return ro, args.Error(1)
}

func (m *ReorderRepoMock) FindActiveByProductID(ctx context.Context, productID int64) (model.Reorder, error) {
	args := m.Called(ctx, productID)
	ro, _ := args.Get(0).(model.Reorder)
	return ro, args.Error(1)
}

func (m *ReorderRepoMock) Create(ctx context.Context, ro model.Reorder) (model.Reorder, error) {
	args := m.Called(ctx, ro)
	created, _ := args.Get(0).(model.Reorder)
	return created, args.Error(1)
}

func (m *ReorderRepoMock) MarkReceived(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ReorderRepoMock) ListPending(ctx context.Context) ([]repo.PendingReorder, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.PendingReorder)
	return rows, args.Error(1)
}

var _ repo.ReorderRepository = (*ReorderRepoMock)(nil)

type ReportRepoMock struct{ mock.Mock }

func (m *ReportRepoMock) CountSuppliers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepoMock) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepoMock) CountCategories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepoMock) SaleValueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, since)
	v, _ := args.Get(0).(decimal.Decimal)
	return v, args.Error(1)
}

func (m *ReportRepoMock) RestockValueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, since)
	v, _ := args.Get(0).(decimal.Decimal)
	return v, args.Error(1)
}

func (m *ReportRepoMock) CountBelowReorderWithoutActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepoMock) ListSupplierContacts(ctx context.Context) ([]repo.SupplierContact, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.SupplierContact)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) ListProductsWithSuppliers(ctx context.Context) ([]repo.ProductSupplierRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.ProductSupplierRow)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) ListProductsNeedingReorder(ctx context.Context) ([]repo.ReorderAdviceRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.ReorderAdviceRow)
	return rows, args.Error(1)
}

var _ repo.ReportRepository = (*ReportRepoMock)(nil)

// =====================
// TransactionManager スタブ（モックをそのままtx内repoとして返す）
// =====================

type txReposStub struct {
	products     repo.ProductRepository
	suppliers    repo.SupplierRepository
	stockEntries repo.StockEntryRepository
	reorders     repo.ReorderRepository
}

func (s *txReposStub) Products() repo.ProductRepository        { return s.products }
func (s *txReposStub) Suppliers() repo.SupplierRepository      { return s.suppliers }
func (s *txReposStub) StockEntries() repo.StockEntryRepository { return s.stockEntries }
func (s *txReposStub) Reorders() repo.ReorderRepository        { return s.reorders }

type txManagerStub struct {
	repos *txReposStub
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

var _ repo.TransactionManager = (*txManagerStub)(nil)
