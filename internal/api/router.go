package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/mock-oms/config"
	_ "github.com/d60-Lab/mock-oms/docs"
	"github.com/d60-Lab/mock-oms/internal/api/handler"
	"github.com/d60-Lab/mock-oms/internal/api/middleware"
	"github.com/d60-Lab/mock-oms/internal/metrics"
)

// NewRouter 组装中间件与路由；/api 下的接口需要 Basic Auth
func NewRouter(cfg *config.Config, h *handler.Handler, ping func() error) (*gin.Engine, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(metrics.PrometheusMiddleware())
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.GET("/health", handler.Health(ping))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")
	if cfg.RateLimit.Enabled {
		apiGroup.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	apiGroup.Use(middleware.BasicAuth(cfg.Auth))

	v1 := apiGroup.Group("/v1")
	{
		orders := v1.Group("/orders")
		orders.POST("", h.CreateOrder)
		orders.GET("/:orderId", h.GetOrder)
		orders.PATCH("/:orderId/status", h.UpdateOrderStatus)

		claims := v1.Group("/claims")
		claims.POST("", h.CreateClaim)
		claims.GET("", h.ListClaims)
		claims.GET("/:claimId", h.GetClaim)
		claims.POST("/:claimId/approve", h.ApproveClaim)
		claims.POST("/:claimId/reject", h.RejectClaim)

		shipments := v1.Group("/shipments")
		shipments.POST("", h.CreateShipment)
		shipments.GET("", h.ListShipments)
		shipments.GET("/:shipmentId", h.GetShipment)
		shipments.PATCH("/:shipmentId/status", h.UpdateShipmentStatus)

		stocks := v1.Group("/stocks")
		stocks.GET("", h.ListStocks)
		stocks.POST("/sync-to-mall", h.SyncStocksToMall)
		stocks.GET("/:productId/:optionId", h.GetStock)
		stocks.PUT("/:productId/:optionId", h.SetStock)
		stocks.POST("/:productId/:optionId/adjust", h.AdjustStock)
	}

	return r, nil
}
