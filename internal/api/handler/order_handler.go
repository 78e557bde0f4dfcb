package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/mock-oms/internal/service"
	"github.com/d60-Lab/mock-oms/pkg/response"
)

// CreateOrder 接收订单
// @Summary 创建订单（校验并扣减库存）
// @Tags 订单
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body service.CreateOrderRequest true "订单信息"
// @Success 201 {object} service.CreateOrderResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "DUPLICATE_ORDER / INSUFFICIENT_STOCK"
// @Router /api/v1/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetOrder 查询订单
// @Summary 查询订单详情
// @Tags 订单
// @Produce json
// @Security BasicAuth
// @Param orderId path string true "订单ID"
// @Success 200 {object} service.OrderResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/orders/{orderId} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	resp, err := h.orderService.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// UpdateOrderStatus 修改订单状态
// @Summary 修改订单状态（不校验流转顺序）
// @Tags 订单
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param orderId path string true "订单ID"
// @Param request body service.UpdateOrderStatusRequest true "目标状态"
// @Success 200 {object} service.OrderResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/orders/{orderId}/status [patch]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req service.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}
