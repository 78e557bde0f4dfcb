package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oms_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oms_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// OrdersTotal counts order creation attempts by result (created, duplicate, insufficient_stock, error)
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oms_orders_total",
			Help: "Order creation attempts by result",
		},
		[]string{"result"},
	)

	// ClaimsTotal counts created claims by initial status
	ClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oms_claims_total",
			Help: "Created claims by initial status",
		},
		[]string{"status"},
	)

	// OrderStatusTransitions counts order status writes by cause (api, shipment)
	OrderStatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oms_order_status_transitions_total",
			Help: "Order status changes by cause and target status",
		},
		[]string{"cause", "status"},
	)

	// MallPushTotal counts outbound mall pushes by kind (stock, shipment) and result (ok, failed)
	MallPushTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oms_mall_push_total",
			Help: "Outbound mall notifications by kind and result",
		},
		[]string{"kind", "result"},
	)

	// CircuitBreakerState tracks mall circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "oms_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit_name"},
	)
)

// PrometheusMiddleware creates a Gin middleware for automatic metrics collection
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
