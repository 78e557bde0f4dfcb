package mall

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/mock-oms/config"
)

func testConfig(baseURL string) config.MallConfig {
	return config.MallConfig{
		BaseURL:  baseURL,
		Username: "mall-user",
		Password: "mall-pass",
		Timeout:  2 * time.Second,
	}
}

func TestClient_SyncStocks(t *testing.T) {
	var got StockSyncRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/stocks/sync", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "mall-user", user)
		assert.Equal(t, "mall-pass", pass)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	syncedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	err := c.SyncStocks(context.Background(), StockSyncRequest{
		Stocks:   []StockItem{{ProductID: "P1", OptionID: "O1", AvailableQuantity: 98}},
		SyncedAt: syncedAt,
	})
	require.NoError(t, err)
	require.Len(t, got.Stocks, 1)
	assert.Equal(t, 98, got.Stocks[0].AvailableQuantity)
	assert.True(t, syncedAt.Equal(got.SyncedAt))
}

func TestClient_SendShipmentStatus(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/shipments/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	err := c.SendShipmentStatus(context.Background(), ShipmentStatusRequest{
		OrderID: "ORD-1",
		Shipments: []ShipmentItem{{
			ShipmentID:      "SHP-1",
			CarrierCode:     "CJ",
			TrackingNumber:  "T1",
			Status:          "DELIVERED",
			StatusUpdatedAt: time.Now().UTC(),
			OrderLines:      []string{"L1"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", raw["orderId"])
	shipments := raw["shipments"].([]any)
	require.Len(t, shipments, 1)
	item := shipments[0].(map[string]any)
	assert.Equal(t, "SHP-1", item["shipmentId"])
	assert.Equal(t, []any{"L1"}, item["orderLines"])
}

func TestClient_ErrorStatusIsReturnedWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	err := c.SyncStocks(context.Background(), StockSyncRequest{SyncedAt: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	err := NewClient(cfg).SyncStocks(context.Background(), StockSyncRequest{SyncedAt: time.Now()})
	assert.Error(t, err)
}

func TestClient_BreakerOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Breaker = config.BreakerConfig{Enabled: true, MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute}
	c := NewClient(cfg)

	for i := 0; i < 5; i++ {
		assert.Error(t, c.SyncStocks(context.Background(), StockSyncRequest{SyncedAt: time.Now()}))
	}
	// 连续 3 次失败后熔断，后续请求不再到达服务端
	assert.Equal(t, int32(3), calls.Load())
}
