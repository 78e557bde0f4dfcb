package mall

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/d60-Lab/mock-oms/config"
	"github.com/d60-Lab/mock-oms/internal/metrics"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

const (
	stockSyncPath      = "/api/v1/stocks/sync"
	shipmentStatusPath = "/api/v1/shipments/status"

	breakerName = "mall"
)

// StockItem 单条库存快照
type StockItem struct {
	ProductID         string `json:"productId"`
	OptionID          string `json:"optionId"`
	AvailableQuantity int    `json:"availableQuantity"`
}

// StockSyncRequest 推送给商城的库存同步请求
type StockSyncRequest struct {
	Stocks   []StockItem `json:"stocks"`
	SyncedAt time.Time   `json:"syncedAt"`
}

// ShipmentItem 单个发货单状态
type ShipmentItem struct {
	ShipmentID      string    `json:"shipmentId"`
	CarrierCode     string    `json:"carrierCode"`
	TrackingNumber  string    `json:"trackingNumber"`
	Status          string    `json:"status"`
	StatusUpdatedAt time.Time `json:"statusUpdatedAt"`
	OrderLines      []string  `json:"orderLines"`
}

// ShipmentStatusRequest 推送给商城的发货状态
type ShipmentStatusRequest struct {
	OrderID   string         `json:"orderId"`
	Shipments []ShipmentItem `json:"shipments"`
}

// Client 商城 API 客户端：Basic Auth、固定超时、不重试
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	tracer  trace.Tracer
}

func NewClient(cfg config.MallConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetHeader("Content-Type", "application/json")

	c := &Client{http: rc, tracer: otel.Tracer("mock-oms/mall")}
	if cfg.Breaker.Enabled {
		c.breaker = newBreaker(cfg.Breaker)
	}
	return c
}

func newBreaker(cfg config.BreakerConfig) *gobreaker.CircuitBreaker {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			state := float64(0)
			switch to {
			case gobreaker.StateOpen:
				state = 1
			case gobreaker.StateHalfOpen:
				state = 2
			}
			metrics.CircuitBreakerState.WithLabelValues(name).Set(state)
			logger.Info("mall circuit breaker state changed",
				zap.String("circuit", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// SyncStocks POST /api/v1/stocks/sync
func (c *Client) SyncStocks(ctx context.Context, req StockSyncRequest) error {
	return c.post(ctx, "stock", stockSyncPath, req)
}

// SendShipmentStatus POST /api/v1/shipments/status
func (c *Client) SendShipmentStatus(ctx context.Context, req ShipmentStatusRequest) error {
	return c.post(ctx, "shipment", shipmentStatusPath, req)
}

func (c *Client) post(ctx context.Context, kind, path string, body any) error {
	err := c.execute(func() error { return c.do(ctx, path, body) })
	result := "ok"
	if err != nil {
		result = "failed"
	}
	metrics.MallPushTotal.WithLabelValues(kind, result).Inc()
	return err
}

func (c *Client) execute(fn func() error) error {
	if c.breaker == nil {
		return fn()
	}
	_, err := c.breaker.Execute(func() (interface{}, error) { return nil, fn() })
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return fmt.Errorf("mall circuit breaker: %w", err)
	}
	return err
}

func (c *Client) do(ctx context.Context, path string, body any) error {
	ctx, span := c.tracer.Start(ctx, "mall "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", http.MethodPost),
		attribute.String("http.route", path),
	)

	req := c.http.R().SetContext(ctx).SetBody(body)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := req.Post(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("mall %s: %w", path, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if resp.IsError() {
		err := fmt.Errorf("mall %s returned status %d: %s", path, resp.StatusCode(), resp.String())
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
