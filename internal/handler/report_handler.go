package handler

import (
	"net/http"

	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ダッシュボードの読み取り専用API
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

// DI
func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reports/metrics", h.metrics)
	e.GET("/reports/suppliers", h.supplierContacts)
	e.GET("/reports/products", h.productsWithSuppliers)
	e.GET("/reports/reorder-advice", h.reorderAdvice)
}

func (h *ReportHandler) metrics(c echo.Context) error {
	out, err := h.uc.BasicMetrics(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) supplierContacts(c echo.Context) error {
	rows, err := h.uc.SupplierContacts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) productsWithSuppliers(c echo.Context) error {
	rows, err := h.uc.ProductsWithSuppliers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) reorderAdvice(c echo.Context) error {
	rows, err := h.uc.ProductsNeedingReorder(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
