package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/donaldgifford/inventory-tracker/internal/api/client"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

func TestPrintChecksTable(t *testing.T) {
	t.Parallel()

	price := 89.5
	var buf bytes.Buffer
	err := printChecksTable(&buf, []apiclient.ProductCheck{
		{
			CheckResult: domain.CheckResult{
				ProductUUID:    "p-1",
				IsAvailable:    true,
				StockStatus:    domain.StockInStock,
				CurrentPrice:   &price,
				ResponseTimeMs: 120,
			},
			ProductName: "Linen Shirt",
			StoreName:   "Atelier",
		},
		{
			CheckResult: domain.CheckResult{
				ProductUUID:  "p-2",
				StockStatus:  domain.StockUnknown,
				ErrorMessage: "connection refused",
			},
			ProductName: "Wool Coat",
			StoreName:   "Northwind",
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "UUID")
	assert.Contains(t, out, "Linen Shirt")
	assert.Contains(t, out, "$89.50")
	assert.Contains(t, out, "connection refused")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestPrintStatusDetail_NextCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status apiclient.InventoryStatus
		want   string
	}{
		{"urgent", apiclient.InventoryStatus{NeedsUrgentCheck: true, NeedsCheck: true}, "urgent"},
		{"due", apiclient.InventoryStatus{NeedsCheck: true}, "due"},
		{"fresh", apiclient.InventoryStatus{IsRecentlyChecked: true}, "not due"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, printStatusDetail(&buf, &tt.status))
			assert.Regexp(t, `Next Check:\s+`+tt.want+`\n`, buf.String())
			assert.Contains(t, buf.String(), "Last Checked:")
		})
	}
}

func TestPrintStats_SkipsEmptyStoreTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printStats(&buf, &domain.InventoryStats{
		Overview: domain.StatsOverview{TotalProducts: 4, InStock: 3},
	}))
	assert.Contains(t, buf.String(), "Products:")
	assert.NotContains(t, buf.String(), "STORE")
}

func TestPrintJobRunsTable(t *testing.T) {
	t.Parallel()

	rows := 12
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	completed := started.Add(time.Minute)

	var buf bytes.Buffer
	require.NoError(t, printJobRunsTable(&buf, []domain.JobRun{
		{JobName: "inventory_check", Status: "succeeded", StartedAt: started, CompletedAt: &completed, RowsAffected: &rows},
		{JobName: "inventory_check", Status: "running", StartedAt: started},
	}))

	out := buf.String()
	assert.Contains(t, out, "2026-03-01 10:01:00")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "running")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
