package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应体
type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// 错误码
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeDuplicateOrder    = "DUPLICATE_ORDER"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeOrderNotFound     = "ORDER_NOT_FOUND"
	CodeClaimNotFound     = "CLAIM_NOT_FOUND"
	CodeShipmentNotFound  = "SHIPMENT_NOT_FOUND"
	CodeStockNotFound     = "STOCK_NOT_FOUND"
)

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error 写出错误响应并中止后续 handler
func Error(c *gin.Context, status int, code, message string, details map[string]any) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: code, Message: message, Details: details})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message, nil)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func NotFound(c *gin.Context, code, message string) {
	Error(c, http.StatusNotFound, code, message, nil)
}

func Conflict(c *gin.Context, code, message string, details map[string]any) {
	Error(c, http.StatusConflict, code, message, details)
}

// InternalError 不向调用方暴露内部错误细节
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, CodeInternalError, "Internal server error", nil)
}
