package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/mock-oms/internal/service"
	"github.com/d60-Lab/mock-oms/pkg/response"
)

// ListStocks
// @Summary 查询全部库存
// @Tags 库存
// @Produce json
// @Security BasicAuth
// @Success 200 {array} service.StockResponse
// @Router /api/v1/stocks [get]
func (h *Handler) ListStocks(c *gin.Context) {
	resp, err := h.stockService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// GetStock
// @Summary 查询单个 SKU 库存
// @Tags 库存
// @Produce json
// @Security BasicAuth
// @Param productId path string true "商品ID"
// @Param optionId path string true "选项ID"
// @Success 200 {object} service.StockResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/stocks/{productId}/{optionId} [get]
func (h *Handler) GetStock(c *gin.Context) {
	resp, err := h.stockService.Get(c.Request.Context(), c.Param("productId"), c.Param("optionId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// SetStock 覆盖库存数量
// @Summary 设置库存（绝对值）
// @Tags 库存
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param productId path string true "商品ID"
// @Param optionId path string true "选项ID"
// @Param request body service.SetStockRequest true "库存数量"
// @Success 200 {object} service.StockResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/stocks/{productId}/{optionId} [put]
func (h *Handler) SetStock(c *gin.Context) {
	var req service.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.stockService.Set(c.Request.Context(), c.Param("productId"), c.Param("optionId"), *req.AvailableQuantity)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// AdjustStock 增减库存，结果不低于 0
// @Summary 调整库存（相对值）
// @Tags 库存
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param productId path string true "商品ID"
// @Param optionId path string true "选项ID"
// @Param request body service.AdjustStockRequest true "增减量"
// @Success 200 {object} service.StockResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/stocks/{productId}/{optionId}/adjust [post]
func (h *Handler) AdjustStock(c *gin.Context) {
	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.stockService.Adjust(c.Request.Context(), c.Param("productId"), c.Param("optionId"), *req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// SyncStocksToMall 全量推送库存
// @Summary 全量同步库存到商城
// @Tags 库存
// @Security BasicAuth
// @Success 200
// @Router /api/v1/stocks/sync-to-mall [post]
func (h *Handler) SyncStocksToMall(c *gin.Context) {
	if err := h.stockService.SyncAll(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
