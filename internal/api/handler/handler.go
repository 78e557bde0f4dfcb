package handler

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/mock-oms/internal/service"
	"github.com/d60-Lab/mock-oms/pkg/logger"
	"github.com/d60-Lab/mock-oms/pkg/response"
)

// Handler 聚合各业务服务
type Handler struct {
	orderService    service.OrderService
	claimService    service.ClaimService
	shipmentService service.ShipmentService
	stockService    service.StockService
}

func NewHandler(orders service.OrderService, claims service.ClaimService, shipments service.ShipmentService, stocks service.StockService) *Handler {
	return &Handler{
		orderService:    orders,
		claimService:    claims,
		shipmentService: shipments,
		stockService:    stocks,
	}
}

// writeError 把业务错误映射为 HTTP 状态码与错误码；未识别的错误按 500 处理并上报
func writeError(c *gin.Context, err error) {
	var insufficient *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrDuplicateOrder):
		response.Conflict(c, response.CodeDuplicateOrder, err.Error(), nil)
	case errors.As(err, &insufficient):
		response.Conflict(c, response.CodeInsufficientStock, err.Error(), map[string]any{
			"productId": insufficient.ProductID,
			"optionId":  insufficient.OptionID,
			"requested": insufficient.Requested,
			"available": insufficient.Available,
		})
	case errors.Is(err, service.ErrDuplicateLineID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, response.CodeOrderNotFound, err.Error())
	case errors.Is(err, service.ErrClaimNotFound):
		response.NotFound(c, response.CodeClaimNotFound, err.Error())
	case errors.Is(err, service.ErrShipmentNotFound):
		response.NotFound(c, response.CodeShipmentNotFound, err.Error())
	case errors.Is(err, service.ErrStockNotFound):
		response.NotFound(c, response.CodeStockNotFound, err.Error())
	default:
		logger.Error("unhandled error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		if hub := sentry.GetHubFromContext(c.Request.Context()); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		response.InternalError(c, err)
	}
}

// Health 健康检查（数据库连通性）
func Health(ping func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": "database connection failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "mock-oms"})
	}
}
