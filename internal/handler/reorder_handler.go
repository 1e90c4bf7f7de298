package handler

import (
	"net/http"
	"strconv"

	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReorderCreateRequest は発注の入力です。
type ReorderCreateRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type ReorderCreatedResponse struct {
	ReorderID int64 `json:"reorder_id"`
}

// 発注まわりのAPI
type ReorderHandler struct {
	uc *usecase.ReorderUsecase
}

// DI
func NewReorderHandler(uc *usecase.ReorderUsecase) *ReorderHandler {
	return &ReorderHandler{uc: uc}
}

// 読み取り系のルートを登録
func (h *ReorderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reorders/pending", h.listPending)
}

// 操作系のルートを登録（操作者トークン必須）
func (h *ReorderHandler) RegisterOpsRoutes(g *echo.Group) {
	g.POST("/reorders", h.place)
	g.POST("/reorders/:id/receive", h.receive)
}

func (h *ReorderHandler) listPending(c echo.Context) error {
	rows, err := h.uc.ListPendingReorders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReorderHandler) place(c echo.Context) error {
	var req ReorderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.PlaceReorder(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, ReorderCreatedResponse{ReorderID: id})
}

func (h *ReorderHandler) receive(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.ReceiveReorder(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "reorder received"})
}
