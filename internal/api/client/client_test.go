package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListStores(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListStores(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
	assert.False(t, IsNotFound(err))
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found","status":404,"detail":"product not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetInventoryStatus(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_CheckProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/inventory/check", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			ProductUUIDs []string `json:"product_uuids"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a", "b"}, req.ProductUUIDs)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"product_uuid":"a","product_name":"Linen Shirt","is_available":true,"stock_status":"in_stock","success":true},
				{"product_uuid":"b","is_available":false,"stock_status":"out_of_stock","success":true}
			],
			"summary": {"total_checked":2,"available_count":1,"unavailable_count":1,"availability_rate":50}
		}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).CheckProducts(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "Linen Shirt", res.Results[0].ProductName)
	assert.Equal(t, domain.StockOutOfStock, res.Results[1].StockStatus)
	assert.InDelta(t, 50.0, res.Summary.AvailabilityRate, 0.001)
}

func TestClient_GetAlternatives(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/p-1/alternatives", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"original_product":{"uuid":"p-1","name":"Linen Shirt","brand_name":"Atelier","current_price":120},
			"alternatives":[{"uuid":"alt-1","purchaseability_score":91}],
			"total_found":1
		}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).GetAlternatives(context.Background(), "p-1", 3)
	require.NoError(t, err)
	assert.Equal(t, "p-1", res.OriginalProduct.UUID)
	require.Len(t, res.Alternatives, 1)
	assert.Equal(t, 91, res.Alternatives[0].PurchaseabilityScore)
}

func TestClient_ListCheckLogs_Query(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/p-1/inventory/logs", r.URL.Path)
		assert.Equal(t, "failed", r.URL.Query().Get("status"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`{"logs":[{"id":1,"status":"failed"}],"total":1,"limit":10,"offset":0}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).ListCheckLogs(context.Background(), "p-1", &CheckLogsParams{Status: "failed", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, domain.CheckStatusFailed, res.Logs[0].Status)
}

func TestClient_ReactivateStore(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/stores/7/reactivate", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.StoreAPIConfig{StoreID: 7, IsActive: true})
	}))
	defer srv.Close()

	cfg, err := New(srv.URL).ReactivateStore(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, cfg.IsActive)
}

func TestClient_RunInventoryCheck(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/inventory/run", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"inventory check completed","summary":{"priority_checked":3,"routine_checked":7,"available":8,"failed":1}}`))
	}))
	defer srv.Close()

	sum, err := New(srv.URL).RunInventoryCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Priority)
	assert.Equal(t, 7, sum.Routine)
	assert.Equal(t, 1, sum.Failed)
}

func TestClient_GetJobHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/inventory_check", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"id":"r1","job_name":"inventory_check","status":"succeeded"}]`))
	}))
	defer srv.Close()

	runs, err := New(srv.URL).GetJobHistory(context.Background(), "inventory_check", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)
}
