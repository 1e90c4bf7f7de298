package handler

import (
	"net/http"
	"strconv"
	"time"

	"inventory/internal/config"
	"inventory/internal/domain/model"
	"inventory/internal/middleware"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// 業務エラーの型ごとにHTTPステータスへ変換する。
// メッセージはusecaseが付けた具体的な理由をそのまま返す。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message})
	}
	if nf, ok := usecase.AsNotFoundError(err); ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: nf.Message})
	}
	if cf, ok := usecase.AsConflictError(err); ok {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: cf.Message})
	}
	if is, ok := usecase.AsInvalidStateError(err); ok {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: is.Message})
	}
	if ns, ok := usecase.AsInsufficientStockError(err); ok {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: ns.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// ProductCreateRequest は商品登録の入力です。
type ProductCreateRequest struct {
	Name         string          `json:"product_name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	InitialStock int64           `json:"initial_stock"`
	ReorderLevel int64           `json:"reorder_level"`
	SupplierID   int64           `json:"supplier_id"`
}

// StockChangeRequest は在庫変動の入力です。
type StockChangeRequest struct {
	ProductID  int64  `json:"product_id"`
	ChangeType string `json:"change_type"`
	Quantity   int64  `json:"quantity"`
	Date       string `json:"date"` // YYYY-MM-DD、省略可
}

type ProductCreatedResponse struct {
	ProductID int64 `json:"product_id"`
}

// 商品まわりのAPI（公開の読み取り＋操作系）
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 読み取り系のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/categories", h.categories)
	e.GET("/products/suppliers", h.suppliers)
	e.GET("/products/:id/history", h.history)
}

// 操作系のルートを登録（操作者トークン必須）
func (h *ProductHandler) RegisterOpsRoutes(g *echo.Group) {
	g.POST("/products", h.create)
	g.POST("/stock-changes", h.recordStockChange)
}

func (h *ProductHandler) list(c echo.Context) error {
	refs, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, refs)
}

func (h *ProductHandler) categories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *ProductHandler) suppliers(c echo.Context) error {
	refs, err := h.uc.ListSuppliers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, refs)
}

func (h *ProductHandler) history(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	entries, err := h.uc.GetHistory(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.AddProduct(c.Request().Context(), usecase.AddProductInput{
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		InitialStock: req.InitialStock,
		ReorderLevel: req.ReorderLevel,
		SupplierID:   req.SupplierID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, ProductCreatedResponse{ProductID: id})
}

func (h *ProductHandler) recordStockChange(c echo.Context) error {
	var req StockChangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
		}
		date = parsed
	}

	err := h.uc.RecordStockChange(c.Request().Context(), usecase.RecordStockChangeInput{
		ProductID:  req.ProductID,
		ChangeType: model.ChangeType(req.ChangeType),
		Quantity:   req.Quantity,
		Date:       date,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "stock change recorded"})
}

// SuccessResponse は { message: string } の形に寄せます。
type SuccessResponse struct {
	Message string `json:"message"`
}

// 操作系グループを作る（各ハンドラのRegisterOpsRoutesに渡す）
func NewOpsGroup(e *echo.Echo, cfg config.Config) *echo.Group {
	ops := e.Group("/ops")
	ops.Use(middleware.OperatorAuth(cfg))
	return ops
}
