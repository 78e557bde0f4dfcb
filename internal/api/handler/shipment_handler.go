package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/mock-oms/internal/service"
	"github.com/d60-Lab/mock-oms/pkg/response"
)

// CreateShipment 登记发货单
// @Summary 创建发货单（备货/打包中的订单推进为已出库）
// @Tags 发货
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body service.CreateShipmentRequest true "发货信息"
// @Success 201 {object} service.ShipmentResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/shipments [post]
func (h *Handler) CreateShipment(c *gin.Context) {
	var req service.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.shipmentService.CreateShipment(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetShipment
// @Summary 查询发货单
// @Tags 发货
// @Produce json
// @Security BasicAuth
// @Param shipmentId path string true "发货单ID"
// @Success 200 {object} service.ShipmentResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/shipments/{shipmentId} [get]
func (h *Handler) GetShipment(c *gin.Context) {
	resp, err := h.shipmentService.GetShipment(c.Request.Context(), c.Param("shipmentId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// ListShipments
// @Summary 按订单查询发货单
// @Tags 发货
// @Produce json
// @Security BasicAuth
// @Param orderId query string true "订单ID"
// @Success 200 {array} service.ShipmentResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/shipments [get]
func (h *Handler) ListShipments(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		response.BadRequest(c, "orderId is required")
		return
	}
	resp, err := h.shipmentService.GetShipmentsByOrderID(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// UpdateShipmentStatus 更新配送状态
// @Summary 更新发货单状态（派送中/送达会联动订单状态）
// @Tags 发货
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param shipmentId path string true "发货单ID"
// @Param request body service.UpdateShipmentStatusRequest true "目标状态"
// @Success 200 {object} service.ShipmentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/shipments/{shipmentId}/status [patch]
func (h *Handler) UpdateShipmentStatus(c *gin.Context) {
	var req service.UpdateShipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.shipmentService.UpdateShipmentStatus(c.Request.Context(), c.Param("shipmentId"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}
