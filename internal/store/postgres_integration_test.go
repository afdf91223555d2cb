//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/inventory-tracker/internal/store"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

type fixture struct {
	store *store.PostgresStore
	pool  *pgxpool.Pool
}

func setupPostgres(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("invt_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, store.WithPoolSize(4))
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.Migrate(ctx))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return &fixture{store: s, pool: pool}
}

// seedProduct inserts a store (if needed) and a product, returning the product ID.
func (f *fixture) seedProduct(t *testing.T, storeID int64, name string, categoryID *int64, price float64) int64 {
	t.Helper()
	ctx := context.Background()

	_, err := f.pool.Exec(ctx,
		`INSERT INTO stores (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		storeID, "store-"+name,
	)
	require.NoError(t, err)

	var id int64
	err = f.pool.QueryRow(ctx, `
		INSERT INTO products (name, external_id, category_id, store_id, original_price, product_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		name, "ext-"+name, categoryID, storeID, price, "https://shop.example.com/p/"+name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func (f *fixture) seedCategory(t *testing.T, name string) int64 {
	t.Helper()
	var id int64
	require.NoError(t, f.pool.QueryRow(context.Background(),
		`INSERT INTO product_categories (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id))
	return id
}

func TestPostgresStore_Ping(t *testing.T) {
	f := setupPostgres(t)
	require.NoError(t, f.store.Ping(context.Background()))
}

func TestPostgresStore_Migrate_Idempotent(t *testing.T) {
	f := setupPostgres(t)
	require.NoError(t, f.store.Migrate(context.Background()))
}

func TestPostgresStore_Products(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()

	id := f.seedProduct(t, 1, "linen-shirt", nil, 59000)

	got, err := f.store.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "linen-shirt", got.Name)
	assert.Equal(t, int64(1), got.StoreID)
	assert.InDelta(t, 59000, got.OriginalPrice, 0.01)
	assert.NotEmpty(t, got.UUID)

	byUUID, err := f.store.GetProductByUUID(ctx, got.UUID)
	require.NoError(t, err)
	assert.Equal(t, id, byUUID.ID)

	list, err := f.store.ListProductsByUUIDs(ctx, []string{got.UUID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.store.GetProduct(ctx, 999_999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_StoreConfigHealth(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()
	f.seedProduct(t, 5, "coat", nil, 120000)

	cfg := &domain.StoreAPIConfig{
		StoreID:             5,
		APIType:             domain.APITypeScraping,
		InventoryCheckURL:   "https://shop.example.com/p/{product_id}",
		RequestHeaders:      map[string]string{"Accept-Language": "ko-KR"},
		RequestDelaySeconds: 1,
		MaxRetries:          3,
		TimeoutSeconds:      30,
		UnavailableKeywords: []string{"sold out"},
		IsActive:            true,
	}
	require.NoError(t, f.store.UpsertStoreConfig(ctx, cfg))
	assert.NotZero(t, cfg.ID)

	for range domain.MaxConsecutiveFailures {
		_, err := f.store.UpdateStoreHealth(ctx, 5, func(c *domain.StoreAPIConfig) error {
			c.MarkFailure()
			return nil
		})
		require.NoError(t, err)
	}

	got, err := f.store.GetStoreConfig(ctx, 5)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, domain.MaxConsecutiveFailures, got.ConsecutiveFailures)
	assert.Equal(t, "ko-KR", got.RequestHeaders["Accept-Language"])
	assert.Equal(t, []string{"sold out"}, got.UnavailableKeywords)
	assert.Equal(t, "generic", got.ParserKey)

	_, err = f.store.GetStoreConfig(ctx, 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_UpdateInventoryStatus(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()
	id := f.seedProduct(t, 1, "sneaker", nil, 89000)
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := f.store.GetInventoryStatus(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	qty := 4
	prev, next, err := f.store.UpdateInventoryStatus(ctx, id, func(s *domain.InventoryStatus) error {
		s.MarkAvailable(now, &qty, map[string]int{"260": 2, "270": 2})
		s.ApplyPrice(89000, domain.DefaultPriceChangeThreshold)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StockUnknown, prev.StockStatus)
	assert.Equal(t, domain.StockLowStock, next.StockStatus)

	got, err := f.store.GetInventoryStatus(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.IsPurchasable)
	require.NotNil(t, got.StockQuantity)
	assert.Equal(t, 4, *got.StockQuantity)
	assert.Equal(t, 2, got.SizeStock["270"])
	require.NotNil(t, got.CurrentPrice)
	assert.InDelta(t, 89000, *got.CurrentPrice, 0.01)
}

func TestPostgresStore_CheckLogsAndHistory(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()
	id := f.seedProduct(t, 1, "bag", nil, 250000)
	now := time.Now().UTC()

	logs := []domain.InventoryCheckLog{
		{Status: domain.CheckStatusSuccess, APIResponseData: []byte(`{"is_available":true}`)},
		{Status: domain.CheckStatusSuccess, APIResponseData: []byte(`{"is_available":true,"price_changed":true}`)},
		{
			Status:              domain.CheckStatusSuccess,
			APIResponseData:     []byte(`{"is_available":false}`),
			AvailabilityChanged: true,
		},
		{Status: domain.CheckStatusFailed, ErrorMessage: "HTTP 503", ErrorKind: domain.ErrorKindTransport},
	}
	for i := range logs {
		l := logs[i]
		l.ProductID = id
		l.StoreID = 1
		l.CheckType = domain.CheckScheduled
		l.PreviousStockStatus = domain.StockUnknown
		l.NewStockStatus = domain.StockInStock
		l.CheckedAt = now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, f.store.InsertCheckLog(ctx, &l))
		assert.NotZero(t, l.ID)
	}

	h, err := f.store.GetCheckHistory(ctx, id, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 4, h.TotalChecks)
	assert.Equal(t, 3, h.SuccessfulChecks)
	assert.Equal(t, 2, h.AvailableChecks)
	assert.Equal(t, 1, h.PriceChanges)
	assert.Equal(t, 1, h.StockOuts)

	failed := string(domain.CheckStatusFailed)
	page, total, err := f.store.ListCheckLogs(ctx, &store.CheckLogQuery{ProductID: &id, Status: &failed})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)
	assert.Equal(t, domain.ErrorKindTransport, page[0].ErrorKind)
}

func TestPostgresStore_InventoryStatsActivity(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()
	id := f.seedProduct(t, 1, "scarf", nil, 4000)
	now := time.Now().UTC()

	statuses := []domain.CheckStatus{
		domain.CheckStatusSuccess,
		domain.CheckStatusPartial,
		domain.CheckStatusTimeout,
		domain.CheckStatusFailed,
	}
	for i, st := range statuses {
		l := domain.InventoryCheckLog{
			ProductID:           id,
			StoreID:             1,
			CheckType:           domain.CheckScheduled,
			Status:              st,
			PreviousStockStatus: domain.StockUnknown,
			NewStockStatus:      domain.StockInStock,
			APIResponseData:     []byte(`{}`),
			CheckedAt:           now.Add(-time.Duration(i) * time.Minute),
		}
		require.NoError(t, f.store.InsertCheckLog(ctx, &l))
	}

	st, err := f.store.GetInventoryStats(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)

	a := st.RecentActivity
	assert.Equal(t, 4, a.TotalChecks)
	assert.Equal(t, 2, a.SuccessfulChecks)
	assert.Equal(t, 2, a.FailedChecks)
	assert.Equal(t, a.TotalChecks, a.SuccessfulChecks+a.FailedChecks)
	assert.InDelta(t, 50.0, a.SuccessRate, 1e-9)
}

func TestPostgresStore_FindAlternatives(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()
	cat := f.seedCategory(t, "knitwear")

	target := f.seedProduct(t, 1, "target", &cat, 100000)
	cheap := f.seedProduct(t, 1, "in-band-low", &cat, 75000)
	high := f.seedProduct(t, 1, "in-band-high", &cat, 125000)
	f.seedProduct(t, 1, "out-of-band", &cat, 200000)

	require.NoError(t, f.store.UpsertScore(ctx, &domain.PurchaseabilityScore{
		ProductID: high, OverallScore: 90, LastCalculatedAt: time.Now(),
	}))
	require.NoError(t, f.store.UpsertScore(ctx, &domain.PurchaseabilityScore{
		ProductID: cheap, OverallScore: 70, LastCalculatedAt: time.Now(),
	}))

	alts, err := f.store.FindAlternatives(ctx, &store.AlternativeQuery{
		ProductID:  target,
		CategoryID: &cat,
		MinPrice:   70000,
		MaxPrice:   130000,
		Limit:      5,
	})
	require.NoError(t, err)
	require.Len(t, alts, 2)
	assert.Equal(t, "in-band-high", alts[0].Name)
	assert.Equal(t, 90, alts[0].PurchaseabilityScore)
	assert.Equal(t, "in-band-low", alts[1].Name)
}

func TestPostgresStore_SchedulerLock(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()

	ok, err := f.store.AcquireSchedulerLock(ctx, "inventory_check", "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.store.AcquireSchedulerLock(ctx, "inventory_check", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.store.ReleaseSchedulerLock(ctx, "inventory_check", "a"))

	ok, err = f.store.AcquireSchedulerLock(ctx, "inventory_check", "b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPostgresStore_JobRuns(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()

	id, err := f.store.InsertJobRun(ctx, "inventory_check")
	require.NoError(t, err)
	require.NoError(t, f.store.CompleteJobRun(ctx, id, "succeeded", "", 12))

	runs, err := f.store.ListJobRuns(ctx, "inventory_check", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)

	latest, err := f.store.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}
