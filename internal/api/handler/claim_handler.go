package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/mock-oms/internal/service"
	"github.com/d60-Lab/mock-oms/pkg/response"
)

// CreateClaim 提交退换货申请
// @Summary 创建售后申请（小额订单自动审批）
// @Tags 售后
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body service.CreateClaimRequest true "售后信息"
// @Success 201 {object} service.CreateClaimResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/claims [post]
func (h *Handler) CreateClaim(c *gin.Context) {
	var req service.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.claimService.CreateClaim(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetClaim
// @Summary 查询售后申请
// @Tags 售后
// @Produce json
// @Security BasicAuth
// @Param claimId path string true "售后ID"
// @Success 200 {object} service.ClaimResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/claims/{claimId} [get]
func (h *Handler) GetClaim(c *gin.Context) {
	resp, err := h.claimService.GetClaim(c.Request.Context(), c.Param("claimId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// ListClaims 按订单查询售后申请
// @Summary 按订单查询售后申请
// @Tags 售后
// @Produce json
// @Security BasicAuth
// @Param orderId query string true "订单ID"
// @Success 200 {array} service.ClaimResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/claims [get]
func (h *Handler) ListClaims(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		response.BadRequest(c, "orderId is required")
		return
	}
	resp, err := h.claimService.GetClaimsByOrderID(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// ApproveClaim
// @Summary 审批通过
// @Tags 售后
// @Produce json
// @Security BasicAuth
// @Param claimId path string true "售后ID"
// @Success 200 {object} service.ClaimResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/claims/{claimId}/approve [post]
func (h *Handler) ApproveClaim(c *gin.Context) {
	resp, err := h.claimService.ApproveClaim(c.Request.Context(), c.Param("claimId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}

// RejectClaim
// @Summary 驳回
// @Tags 售后
// @Produce json
// @Security BasicAuth
// @Param claimId path string true "售后ID"
// @Success 200 {object} service.ClaimResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/claims/{claimId}/reject [post]
func (h *Handler) RejectClaim(c *gin.Context) {
	resp, err := h.claimService.RejectClaim(c.Request.Context(), c.Param("claimId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, resp)
}
