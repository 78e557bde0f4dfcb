package app

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/mock-oms/config"
	"github.com/d60-Lab/mock-oms/internal/api"
	"github.com/d60-Lab/mock-oms/internal/api/handler"
	"github.com/d60-Lab/mock-oms/internal/cache"
	"github.com/d60-Lab/mock-oms/internal/client/mall"
	"github.com/d60-Lab/mock-oms/internal/repository"
	"github.com/d60-Lab/mock-oms/internal/service"
	"github.com/d60-Lab/mock-oms/pkg/database"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

// Services 业务服务集合，供 HTTP 与命令行共用
type Services struct {
	Orders    service.OrderService
	Claims    service.ClaimService
	Shipments service.ShipmentService
	Stocks    service.StockService
}

// App 持有进程级资源
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Services *Services
}

// New 打开数据库（及可选的 Redis），按配置迁移表结构并组装服务
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}

	a := &App{Config: cfg, DB: db}
	var orderCache *cache.OrderCache
	if cfg.Redis.Enabled {
		a.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			// 缓存不可用时降级为直连数据库
			logger.Warn("redis unavailable, order cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			_ = a.Redis.Close()
			a.Redis = nil
		} else {
			orderCache = cache.NewOrderCache(a.Redis, cfg.Redis.TTL)
		}
	}

	a.Services = NewServices(cfg, db, orderCache, mall.NewClient(cfg.Mall))
	return a, nil
}

// MallNotifier 同时满足库存与发货两类推送
type MallNotifier interface {
	service.StockNotifier
	service.ShipmentNotifier
}

// NewServices 组装仓储与服务；orderCache 为 nil 时不启用订单缓存
func NewServices(cfg *config.Config, db *gorm.DB, orderCache *cache.OrderCache, notifier MallNotifier) *Services {
	tx := repository.NewTransactor(db)
	orderRepo := repository.NewOrderRepository(db)
	if orderCache != nil {
		orderRepo = repository.NewCachedOrderRepository(orderRepo, orderCache)
	}
	stockRepo := repository.NewStockRepository(db)

	threshold := cfg.Claim.AutoApproveThreshold
	if threshold == 0 {
		threshold = config.DefaultAutoApproveThreshold
	}

	return &Services{
		Orders:    service.NewOrderService(tx, orderRepo, stockRepo, notifier),
		Claims:    service.NewClaimService(tx, repository.NewClaimRepository(db), orderRepo, threshold),
		Shipments: service.NewShipmentService(tx, repository.NewShipmentRepository(db), orderRepo, notifier),
		Stocks:    service.NewStockService(tx, stockRepo, notifier),
	}
}

// Router 构建 HTTP 路由
func (a *App) Router() (*gin.Engine, error) {
	s := a.Services
	h := handler.NewHandler(s.Orders, s.Claims, s.Shipments, s.Stocks)
	return api.NewRouter(a.Config, h, func() error { return database.Ping(a.DB) })
}

// InitSentry DSN 为空时不启用
func InitSentry(cfg config.SentryConfig) error {
	if cfg.DSN == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{Dsn: cfg.DSN, Environment: cfg.Environment})
}

// Close 释放数据库与 Redis 连接
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}
	if err := database.Close(a.DB); err != nil {
		logger.Warn("close database", zap.Error(err))
	}
}
