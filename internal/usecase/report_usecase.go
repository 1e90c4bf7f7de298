package usecase

import (
	"context"
	"time"

	repo "inventory/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportUsecase struct {
	reports      repo.ReportRepository
	windowMonths int
}

// DI。windowMonthsは金額集計のウィンドウ（月数）。
func NewReportUsecase(reports repo.ReportRepository, windowMonths int) *ReportUsecase {
	return &ReportUsecase{reports: reports, windowMonths: windowMonths}
}

type MetricsOutput struct {
	TotalSuppliers        int64           `json:"total_suppliers"`
	TotalProducts         int64           `json:"total_products"`
	TotalCategories       int64           `json:"total_categories"`
	TotalSaleValue        decimal.Decimal `json:"total_sale_value"`
	TotalRestockValue     decimal.Decimal `json:"total_restock_value"`
	BelowReorderNoPending int64           `json:"below_reorder_no_pending"`
	WindowMonths          int             `json:"window_months"`
}

// BasicMetricsはダッシュボード先頭の集計をまとめて返す。
func (u *ReportUsecase) BasicMetrics(ctx context.Context) (MetricsOutput, error) {
	suppliers, err := u.reports.CountSuppliers(ctx)
	if err != nil {
		return MetricsOutput{}, err
	}
	products, err := u.reports.CountProducts(ctx)
	if err != nil {
		return MetricsOutput{}, err
	}
	categories, err := u.reports.CountCategories(ctx)
	if err != nil {
		return MetricsOutput{}, err
	}

	since := time.Now().AddDate(0, -u.windowMonths, 0)

	saleValue, err := u.reports.SaleValueSince(ctx, since)
	if err != nil {
		return MetricsOutput{}, err
	}
	restockValue, err := u.reports.RestockValueSince(ctx, since)
	if err != nil {
		return MetricsOutput{}, err
	}

	belowReorder, err := u.reports.CountBelowReorderWithoutActive(ctx)
	if err != nil {
		return MetricsOutput{}, err
	}

	return MetricsOutput{
		TotalSuppliers:        suppliers,
		TotalProducts:         products,
		TotalCategories:       categories,
		TotalSaleValue:        saleValue,
		TotalRestockValue:     restockValue,
		BelowReorderNoPending: belowReorder,
		WindowMonths:          u.windowMonths,
	}, nil
}

// 仕入先の連絡先一覧
func (u *ReportUsecase) SupplierContacts(ctx context.Context) ([]repo.SupplierContact, error) {
	return u.reports.ListSupplierContacts(ctx)
}

// 商品×仕入先×在庫の一覧
func (u *ReportUsecase) ProductsWithSuppliers(ctx context.Context) ([]repo.ProductSupplierRow, error) {
	return u.reports.ListProductsWithSuppliers(ctx)
}

// 発注水準を割っている商品の一覧
func (u *ReportUsecase) ProductsNeedingReorder(ctx context.Context) ([]repo.ReorderAdviceRow, error) {
	return u.reports.ListProductsNeedingReorder(ctx)
}
