package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repo "inventory/internal/repository"
	"inventory/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportUsecase_BasicMetrics_Success(t *testing.T) {
	ctx := context.Background()

	reports := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(reports, 6)

	reports.On("CountSuppliers", mock.Anything).Return(int64(4), nil)
	reports.On("CountProducts", mock.Anything).Return(int64(12), nil)
	reports.On("CountCategories", mock.Anything).Return(int64(3), nil)
	reports.On("SaleValueSince", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("1234.50"), nil)
	reports.On("RestockValueSince", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("800.00"), nil)
	reports.On("CountBelowReorderWithoutActive", mock.Anything).Return(int64(2), nil)

	out, err := uc.BasicMetrics(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.TotalSuppliers)
	assert.Equal(t, int64(12), out.TotalProducts)
	assert.Equal(t, int64(3), out.TotalCategories)
	assert.True(t, out.TotalSaleValue.Equal(decimal.RequireFromString("1234.50")))
	assert.True(t, out.TotalRestockValue.Equal(decimal.RequireFromString("800.00")))
	assert.Equal(t, int64(2), out.BelowReorderNoPending)
	assert.Equal(t, 6, out.WindowMonths)

	reports.AssertExpectations(t)
}

// 集計ウィンドウは設定された月数で遡る
func TestReportUsecase_BasicMetrics_WindowMonths(t *testing.T) {
	reports := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(reports, 3)

	reports.On("CountSuppliers", mock.Anything).Return(int64(0), nil)
	reports.On("CountProducts", mock.Anything).Return(int64(0), nil)
	reports.On("CountCategories", mock.Anything).Return(int64(0), nil)

	//だいたい3ヶ月前であること（実行時刻のずれは1時間まで許容）
	withinWindow := mock.MatchedBy(func(since time.Time) bool {
		want := time.Now().AddDate(0, -3, 0)
		diff := since.Sub(want)
		if diff < 0 {
			diff = -diff
		}
		return diff < time.Hour
	})
	reports.On("SaleValueSince", mock.Anything, withinWindow).Return(decimal.Zero, nil)
	reports.On("RestockValueSince", mock.Anything, withinWindow).Return(decimal.Zero, nil)
	reports.On("CountBelowReorderWithoutActive", mock.Anything).Return(int64(0), nil)

	out, err := uc.BasicMetrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, out.WindowMonths)

	reports.AssertExpectations(t)
}

// 読み取りは何度呼んでも同じ結果
func TestReportUsecase_BasicMetrics_Repeatable(t *testing.T) {
	reports := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(reports, 6)

	reports.On("CountSuppliers", mock.Anything).Return(int64(4), nil).Twice()
	reports.On("CountProducts", mock.Anything).Return(int64(12), nil).Twice()
	reports.On("CountCategories", mock.Anything).Return(int64(3), nil).Twice()
	reports.On("SaleValueSince", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("10.00"), nil).Twice()
	reports.On("RestockValueSince", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("20.00"), nil).Twice()
	reports.On("CountBelowReorderWithoutActive", mock.Anything).Return(int64(1), nil).Twice()

	first, err := uc.BasicMetrics(context.Background())
	assert.NoError(t, err)
	second, err := uc.BasicMetrics(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReportUsecase_BasicMetrics_RepoError(t *testing.T) {
	reports := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(reports, 6)

	reports.On("CountSuppliers", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := uc.BasicMetrics(context.Background())
	assert.Error(t, err)
}

func TestReportUsecase_SupplierContacts_Success(t *testing.T) {
	reports := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(reports, 6)

	rows := []repo.SupplierContact{
		{SupplierName: "Acme", ContactName: "Ann", Email: "ann@acme.test", Phone: "000"},
	}
	reports.On("ListSupplierContacts", mock.Anything).Return(rows, nil)

	got, err := uc.SupplierContacts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReportUsecase_ProductsNeedingReorder_Success(t *testing.T) {
	reports := new(ReportRepoMock)
	uc := usecase.NewReportUsecase(reports, 6)

	rows := []repo.ReorderAdviceRow{
		{ProductName: "Widget", StockQuantity: 2, ReorderLevel: 5},
	}
	reports.On("ListProductsNeedingReorder", mock.Anything).Return(rows, nil)

	got, err := uc.ProductsNeedingReorder(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}
