package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	engineMocks "github.com/donaldgifford/inventory-tracker/internal/engine/mocks"
	"github.com/donaldgifford/inventory-tracker/internal/lock"
	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	"github.com/donaldgifford/inventory-tracker/internal/notify"
	notifyMocks "github.com/donaldgifford/inventory-tracker/internal/notify/mocks"
	"github.com/donaldgifford/inventory-tracker/internal/store"
	storeMocks "github.com/donaldgifford/inventory-tracker/internal/store/mocks"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type harness struct {
	eng      *Engine
	store    *storeMocks.MockStore
	checker  *engineMocks.MockChecker
	notifier *notifyMocks.MockNotifier
}

func newHarness(t *testing.T, opts ...EngineOption) *harness {
	t.Helper()
	h := &harness{
		store:    storeMocks.NewMockStore(t),
		checker:  engineMocks.NewMockChecker(t),
		notifier: notifyMocks.NewMockNotifier(t),
	}
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithNowFunc(func() time.Time { return testNow }),
		WithBatchDelay(0),
	}
	h.eng = NewEngine(h.store, h.checker, h.notifier, append(base, opts...)...)
	return h
}

func testProduct(id, storeID int64) *domain.Product {
	cat := int64(7)
	return &domain.Product{
		ID:            id,
		UUID:          fmt.Sprintf("prod-%d", id),
		Name:          fmt.Sprintf("Wool Coat %d", id),
		BrandName:     "Nordwand",
		CategoryID:    &cat,
		StoreID:       storeID,
		StoreName:     "Atelier",
		OriginalPrice: 100,
		Currency:      "USD",
		ProductURL:    fmt.Sprintf("https://shop.example/p/%d", id),
		IsAvailable:   true,
	}
}

func activeConfig(storeID int64) *domain.StoreAPIConfig {
	return &domain.StoreAPIConfig{
		StoreID:   storeID,
		StoreName: "Atelier",
		APIType:   domain.APITypeREST,
		IsActive:  true,
	}
}

// checkedStatus returns a status last checked a day ago.
func checkedStatus(productID int64, stock domain.StockStatus, purchasable bool, price float64) *domain.InventoryStatus {
	s := domain.NewInventoryStatus(productID)
	at := testNow.Add(-26 * time.Hour)
	s.StockStatus = stock
	s.IsPurchasable = purchasable
	s.LastCheckedAt = &at
	s.CurrentPrice = &price
	s.AvailabilityStatus = domain.AvailabilityUnavailable
	if purchasable {
		s.AvailabilityStatus = domain.AvailabilityAvailable
	}
	return s
}

func availableResult(p *domain.Product, qty int, price float64) domain.CheckResult {
	return domain.CheckResult{
		ProductID:      p.ID,
		ProductUUID:    p.UUID,
		Success:        true,
		IsAvailable:    true,
		StockStatus:    domain.StockStatusForQuantity(qty),
		StockQuantity:  &qty,
		CurrentPrice:   &price,
		ResponseTimeMs: 42,
		LastChecked:    testNow,
	}
}

func unavailableResult(p *domain.Product) domain.CheckResult {
	return domain.CheckResult{
		ProductID:    p.ID,
		ProductUUID:  p.UUID,
		Success:      true,
		StockStatus:  domain.StockOutOfStock,
		ErrorMessage: "sold out",
		LastChecked:  testNow,
	}
}

func failedCheck(p *domain.Product, kind domain.ErrorKind, msg string) domain.CheckResult {
	res := domain.CheckResult{
		ProductID:   p.ID,
		ProductUUID: p.UUID,
		StockStatus: domain.StockUnknown,
		LastChecked: testNow,
	}
	res.Fail(kind, msg)
	return res
}

// expectStatusUpdate applies the mutator to a copy of cur the way the
// postgres store does inside its row lock.
func expectStatusUpdate(ms *storeMocks.MockStore, cur *domain.InventoryStatus) {
	ms.EXPECT().
		UpdateInventoryStatus(mock.Anything, cur.ProductID, mock.Anything).
		RunAndReturn(func(
			_ context.Context,
			_ int64,
			fn store.StatusMutator,
		) (*domain.InventoryStatus, *domain.InventoryStatus, error) {
			next := cur.Clone()
			if err := fn(next); err != nil {
				return nil, nil, err
			}
			return cur.Clone(), next, nil
		}).Once()
}

// expectHealthUpdate applies the mutator to a copy of cfg and returns the
// updated config once the check ran.
func expectHealthUpdate(ms *storeMocks.MockStore, cfg *domain.StoreAPIConfig) func() *domain.StoreAPIConfig {
	var updated *domain.StoreAPIConfig
	ms.EXPECT().
		UpdateStoreHealth(mock.Anything, cfg.StoreID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ int64, fn store.HealthMutator) (*domain.StoreAPIConfig, error) {
			c := *cfg
			if err := fn(&c); err != nil {
				return nil, err
			}
			updated = &c
			return &c, nil
		}).Once()
	return func() *domain.StoreAPIConfig { return updated }
}

// expectScoring stubs a score recompute with no history and returns the
// saved score once the check ran.
func expectScoring(ms *storeMocks.MockStore, productID int64) func() *domain.PurchaseabilityScore {
	var saved *domain.PurchaseabilityScore
	ms.EXPECT().
		GetCheckHistory(mock.Anything, productID, testNow.AddDate(0, 0, -defaultHistoryWindowDays)).
		Return(&domain.CheckHistory{}, nil).Once()
	ms.EXPECT().GetScore(mock.Anything, productID).Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().
		UpsertScore(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s *domain.PurchaseabilityScore) { saved = s }).
		Return(nil).Once()
	return func() *domain.PurchaseabilityScore { return saved }
}

func expectCheckLog(ms *storeMocks.MockStore) func() *domain.InventoryCheckLog {
	var logged *domain.InventoryCheckLog
	ms.EXPECT().
		InsertCheckLog(mock.Anything, mock.Anything).
		Run(func(_ context.Context, l *domain.InventoryCheckLog) { logged = l }).
		Return(nil).Once()
	return func() *domain.InventoryCheckLog { return logged }
}

func mustField(t *testing.T, raw json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	return m[key]
}

func eventKind(kind notify.EventKind) any {
	return mock.MatchedBy(func(ev *notify.StockEvent) bool { return ev.Kind == kind })
}

func TestCheckProduct_BackInStock(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(1, 3)
	cfg := activeConfig(3)
	cur := checkedStatus(1, domain.StockOutOfStock, false, 100)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(availableResult(p, 5, 100)).Once()
	expectStatusUpdate(h.store, cur)
	health := expectHealthUpdate(h.store, cfg)
	saved := expectScoring(h.store, 1)
	logged := expectCheckLog(h.store)

	var sent *notify.StockEvent
	h.notifier.EXPECT().
		SendEvent(mock.Anything, eventKind(notify.EventBackInStock)).
		Run(func(_ context.Context, ev *notify.StockEvent) { sent = ev }).
		Return(nil).Once()

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckManual)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, res.IsAvailable)
	assert.Equal(t, domain.StockLowStock, res.StockStatus)
	assert.False(t, res.PriceChanged)

	l := logged()
	require.NotNil(t, l)
	assert.Equal(t, domain.CheckStatusSuccess, l.Status)
	assert.Equal(t, domain.CheckManual, l.CheckType)
	assert.Equal(t, domain.StockOutOfStock, l.PreviousStockStatus)
	assert.Equal(t, domain.StockLowStock, l.NewStockStatus)
	assert.True(t, l.AvailabilityChanged)
	require.NotNil(t, l.ResponseTimeMs)
	assert.Equal(t, int64(42), *l.ResponseTimeMs)
	assert.JSONEq(t, `true`, string(mustField(t, l.APIResponseData, "success")))

	s := saved()
	require.NotNil(t, s)
	assert.Equal(t, 60, s.AvailabilityScore)
	assert.Equal(t, 100, s.ReliabilityScore)

	require.NotNil(t, sent)
	assert.Equal(t, "prod-1", sent.ProductUUID)
	assert.Equal(t, domain.StockOutOfStock, sent.PreviousStatus)
	assert.Equal(t, domain.StockLowStock, sent.NewStatus)

	assert.Equal(t, 0, health().ConsecutiveFailures)
	require.NotNil(t, health().LastSuccessfulCheck)
	assert.Equal(t, testNow, *health().LastSuccessfulCheck)
}

func TestCheckProduct_FirstCheckIsBaseline(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(2, 3)
	cfg := activeConfig(3)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(availableResult(p, 30, 100)).Once()
	expectStatusUpdate(h.store, domain.NewInventoryStatus(2))
	expectHealthUpdate(h.store, cfg)
	saved := expectScoring(h.store, 2)
	logged := expectCheckLog(h.store)

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckScheduled)
	require.NoError(t, err)

	assert.Equal(t, domain.StockInStock, res.StockStatus)
	assert.Equal(t, domain.StockUnknown, logged().PreviousStockStatus)
	assert.Equal(t, domain.StockInStock, logged().NewStockStatus)
	assert.False(t, logged().AvailabilityChanged)
	assert.Nil(t, logged().PriceBefore)
	assert.Equal(t, 81, saved().OverallScore)
}

func TestCheckProduct_SoldOut(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(3, 3)
	cfg := activeConfig(3)
	cur := checkedStatus(3, domain.StockInStock, true, 100)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(unavailableResult(p)).Once()
	expectStatusUpdate(h.store, cur)
	expectHealthUpdate(h.store, cfg)
	saved := expectScoring(h.store, 3)
	logged := expectCheckLog(h.store)

	var sent *notify.StockEvent
	h.notifier.EXPECT().
		SendEvent(mock.Anything, eventKind(notify.EventOutOfStock)).
		Run(func(_ context.Context, ev *notify.StockEvent) { sent = ev }).
		Return(nil).Once()

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckScheduled)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.IsAvailable)
	assert.Equal(t, domain.StockOutOfStock, res.StockStatus)
	assert.True(t, logged().AvailabilityChanged)
	assert.Equal(t, 10, saved().AvailabilityScore)
	assert.Equal(t, "sold out", sent.Reason)
}

func TestCheckProduct_PriceChange(t *testing.T) {
	t.Parallel()

	h := newHarness(t, WithPriceChangeNotifications(true))
	p := testProduct(4, 3)
	cfg := activeConfig(3)
	cur := checkedStatus(4, domain.StockInStock, true, 100)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(availableResult(p, 20, 80)).Once()
	expectStatusUpdate(h.store, cur)
	expectHealthUpdate(h.store, cfg)
	expectScoring(h.store, 4)
	logged := expectCheckLog(h.store)

	var sent *notify.StockEvent
	h.notifier.EXPECT().
		SendEvent(mock.Anything, eventKind(notify.EventPriceChanged)).
		Run(func(_ context.Context, ev *notify.StockEvent) { sent = ev }).
		Return(nil).Once()

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckUserRequest)
	require.NoError(t, err)

	assert.True(t, res.PriceChanged)

	l := logged()
	require.NotNil(t, l.PriceBefore)
	require.NotNil(t, l.PriceAfter)
	assert.InDelta(t, 100.0, *l.PriceBefore, 0.001)
	assert.InDelta(t, 80.0, *l.PriceAfter, 0.001)
	assert.False(t, l.AvailabilityChanged)

	require.NotNil(t, sent.ChangePct)
	assert.InDelta(t, -20.0, *sent.ChangePct, 0.001)
}

func TestCheckProduct_PriceChangeWithoutNotifications(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(5, 3)
	cfg := activeConfig(3)
	cur := checkedStatus(5, domain.StockInStock, true, 100)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(availableResult(p, 20, 150)).Once()
	expectStatusUpdate(h.store, cur)
	expectHealthUpdate(h.store, cfg)
	expectScoring(h.store, 5)
	expectCheckLog(h.store)

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckUserRequest)
	require.NoError(t, err)
	assert.True(t, res.PriceChanged)
}

func TestCheckProduct_FailureCountsAgainstStore(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(6, 4)
	cfg := activeConfig(4)
	cfg.ConsecutiveFailures = 3
	cur := checkedStatus(6, domain.StockInStock, true, 100)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(4)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).
		Return(failedCheck(p, domain.ErrorKindTransport, "connection refused")).Once()
	expectStatusUpdate(h.store, cur)
	health := expectHealthUpdate(h.store, cfg)
	saved := expectScoring(h.store, 6)
	logged := expectCheckLog(h.store)

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckScheduled)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrorKindTransport, res.ErrorKind)
	assert.Equal(t, 4, health().ConsecutiveFailures)
	assert.True(t, health().IsActive)

	l := logged()
	assert.Equal(t, domain.CheckStatusFailed, l.Status)
	assert.Equal(t, domain.ErrorKindTransport, l.ErrorKind)
	assert.Equal(t, domain.StockInStock, l.NewStockStatus)
	assert.False(t, l.AvailabilityChanged)

	// one failed check lowers reliability to 80
	assert.Equal(t, 80, saved().ReliabilityScore)
}

func TestCheckProduct_TenthFailureDeactivatesStore(t *testing.T) {
	h := newHarness(t)
	p := testProduct(7, 5)
	cfg := activeConfig(5)
	cfg.ConsecutiveFailures = domain.MaxConsecutiveFailures - 1
	cur := checkedStatus(7, domain.StockInStock, true, 100)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(5)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).
		Return(failedCheck(p, domain.ErrorKindTransport, "503 Service Unavailable")).Once()
	expectStatusUpdate(h.store, cur)
	health := expectHealthUpdate(h.store, cfg)
	expectScoring(h.store, 7)
	expectCheckLog(h.store)

	var sent *notify.StockEvent
	h.notifier.EXPECT().
		SendEvent(mock.Anything, eventKind(notify.EventStoreDeactivated)).
		Run(func(_ context.Context, ev *notify.StockEvent) { sent = ev }).
		Return(nil).Once()

	before := ptestutil.ToFloat64(metrics.StoreDeactivationsTotal)

	_, err := h.eng.CheckProduct(context.Background(), p, domain.CheckScheduled)
	require.NoError(t, err)

	assert.False(t, health().IsActive)
	assert.Equal(t, domain.MaxConsecutiveFailures, health().ConsecutiveFailures)
	assert.InDelta(t, before+1, ptestutil.ToFloat64(metrics.StoreDeactivationsTotal), 0.001)
	assert.Equal(t, "Atelier", sent.StoreName)
	assert.Contains(t, sent.Reason, "503 Service Unavailable")
}

func TestCheckProduct_NoActivePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    *domain.StoreAPIConfig
		cfgErr error
	}{
		{name: "no config", cfgErr: store.ErrNotFound},
		{name: "inactive store", cfg: &domain.StoreAPIConfig{StoreID: 9, APIType: domain.APITypeREST}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			p := testProduct(8, 9)
			cur := checkedStatus(8, domain.StockInStock, true, 100)

			h.store.EXPECT().GetStoreConfig(mock.Anything, int64(9)).Return(tt.cfg, tt.cfgErr).Once()
			expectStatusUpdate(h.store, cur)
			expectScoring(h.store, 8)
			logged := expectCheckLog(h.store)

			res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckManual)
			require.NoError(t, err)

			assert.False(t, res.Success)
			assert.Equal(t, domain.ErrorKindConfig, res.ErrorKind)
			assert.Contains(t, res.ErrorMessage, "no active check policy")
			assert.Equal(t, domain.ErrorKindConfig, logged().ErrorKind)
		})
	}
}

func TestCheckProduct_StoreConfigError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(10, 3)
	dbErr := errors.New("connection reset")

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(nil, dbErr).Once()

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckManual)
	require.ErrorIs(t, err, dbErr)
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrorKindConfig, res.ErrorKind)
}

func TestCheckProduct_ThrottledLeavesStateAlone(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(11, 3)
	cfg := activeConfig(3)
	cur := checkedStatus(11, domain.StockInStock, true, 100)

	throttled := failedCheck(p, domain.ErrorKindTransport, "daily request limit reached")
	throttled.Throttled = true

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(throttled).Once()
	h.store.EXPECT().GetInventoryStatus(mock.Anything, int64(11)).Return(cur, nil).Once()
	expectScoring(h.store, 11)
	logged := expectCheckLog(h.store)

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckScheduled)
	require.NoError(t, err)

	assert.True(t, res.Throttled)
	assert.Equal(t, domain.CheckStatusFailed, logged().Status)
	assert.Equal(t, domain.StockInStock, logged().NewStockStatus)
	assert.Equal(t, 0, cfg.ConsecutiveFailures)
}

func TestCheckProduct_TimeoutIsAudited(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(12, 3)
	cfg := activeConfig(3)

	timedOut := failedCheck(p, domain.ErrorKindTransport, "context deadline exceeded")
	timedOut.TimedOut = true

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(timedOut).Once()
	expectStatusUpdate(h.store, domain.NewInventoryStatus(12))
	expectHealthUpdate(h.store, cfg)
	expectScoring(h.store, 12)
	logged := expectCheckLog(h.store)

	_, err := h.eng.CheckProduct(context.Background(), p, domain.CheckScheduled)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckStatusTimeout, logged().Status)
}

func TestCheckProduct_PersistenceErrorsAreJoined(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(13, 3)
	cfg := activeConfig(3)
	logErr := errors.New("disk full")

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(availableResult(p, 3, 100)).Once()
	expectStatusUpdate(h.store, domain.NewInventoryStatus(13))
	expectHealthUpdate(h.store, cfg)
	expectScoring(h.store, 13)
	h.store.EXPECT().InsertCheckLog(mock.Anything, mock.Anything).Return(logErr).Once()

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckScheduled)
	require.ErrorIs(t, err, logErr)
	assert.True(t, res.Success)
}

func TestCheckProduct_StatusUpdateError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	p := testProduct(14, 3)
	cfg := activeConfig(3)
	dbErr := errors.New("serialization failure")

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(availableResult(p, 3, 100)).Once()
	h.store.EXPECT().UpdateInventoryStatus(mock.Anything, int64(14), mock.Anything).
		Return(nil, nil, dbErr).Once()

	_, err := h.eng.CheckProduct(context.Background(), p, domain.CheckScheduled)
	require.ErrorIs(t, err, dbErr)
}

type refusingLocker struct{}

func (refusingLocker) Acquire(_ context.Context, key string, _ time.Duration) (func(), error) {
	return nil, fmt.Errorf("%w: %s", lock.ErrNotAcquired, key)
}

func TestCheckProduct_LockNotAcquired(t *testing.T) {
	t.Parallel()

	h := newHarness(t, WithLocker(refusingLocker{}))
	p := testProduct(15, 3)

	res, err := h.eng.CheckProduct(context.Background(), p, domain.CheckManual)
	require.ErrorIs(t, err, lock.ErrNotAcquired)
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrorKindTransport, res.ErrorKind)
}

func TestTransition(t *testing.T) {
	t.Parallel()

	qty := func(n int) *int { return &n }

	tests := []struct {
		name      string
		cur       *domain.InventoryStatus
		res       domain.CheckResult
		wantStock domain.StockStatus
		wantAvail domain.AvailabilityStatus
		wantBuy   bool
		wantFail  int
	}{
		{
			name:      "available with quantity",
			cur:       domain.NewInventoryStatus(1),
			res:       domain.CheckResult{Success: true, IsAvailable: true, StockQuantity: qty(10)},
			wantStock: domain.StockLowStock,
			wantAvail: domain.AvailabilityAvailable,
			wantBuy:   true,
		},
		{
			name:      "available zero quantity is not purchasable",
			cur:       domain.NewInventoryStatus(1),
			res:       domain.CheckResult{Success: true, IsAvailable: true, StockQuantity: qty(0)},
			wantStock: domain.StockOutOfStock,
			wantAvail: domain.AvailabilityAvailable,
		},
		{
			name:      "unavailable defaults to out of stock",
			cur:       checkedStatus(1, domain.StockInStock, true, 100),
			res:       domain.CheckResult{Success: true},
			wantStock: domain.StockOutOfStock,
			wantAvail: domain.AvailabilityUnavailable,
		},
		{
			name:      "unavailable keeps reported status",
			cur:       checkedStatus(1, domain.StockInStock, true, 100),
			res:       domain.CheckResult{Success: true, StockStatus: domain.StockDiscontinued},
			wantStock: domain.StockDiscontinued,
			wantAvail: domain.AvailabilityUnavailable,
		},
		{
			name:      "failure keeps stock state",
			cur:       checkedStatus(1, domain.StockInStock, true, 100),
			res:       domain.CheckResult{ErrorMessage: "timeout"},
			wantStock: domain.StockInStock,
			wantAvail: domain.AvailabilityAvailable,
			wantBuy:   true,
			wantFail:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := tt.res
			transition(tt.cur, &res, testNow, domain.DefaultPriceChangeThreshold)

			assert.Equal(t, tt.wantStock, tt.cur.StockStatus)
			assert.Equal(t, tt.wantAvail, tt.cur.AvailabilityStatus)
			assert.Equal(t, tt.wantBuy, tt.cur.IsPurchasable)
			assert.Equal(t, tt.wantFail, tt.cur.CheckFailedCount)
			require.NotNil(t, tt.cur.LastCheckedAt)
			assert.Equal(t, testNow, *tt.cur.LastCheckedAt)
			if res.Success {
				assert.Equal(t, tt.cur.StockStatus, res.StockStatus)
				assert.Equal(t, tt.cur.IsPurchasable, res.IsAvailable)
			}
		})
	}
}

func TestTransition_ThirdFailurePinsChecking(t *testing.T) {
	t.Parallel()

	s := checkedStatus(1, domain.StockInStock, true, 100)
	for range domain.FailedCheckThreshold {
		res := domain.CheckResult{ErrorMessage: "bad gateway"}
		transition(s, &res, testNow, domain.DefaultPriceChangeThreshold)
	}

	assert.Equal(t, domain.AvailabilityChecking, s.AvailabilityStatus)
	assert.False(t, s.IsPurchasable)
	assert.Equal(t, "bad gateway", s.LastErrorMessage)
}

func TestAuditStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  domain.CheckResult
		want domain.CheckStatus
	}{
		{name: "success", res: domain.CheckResult{Success: true}, want: domain.CheckStatusSuccess},
		{name: "partial", res: domain.CheckResult{Success: true, Partial: true}, want: domain.CheckStatusPartial},
		{name: "timeout", res: domain.CheckResult{TimedOut: true}, want: domain.CheckStatusTimeout},
		{name: "failed", res: domain.CheckResult{}, want: domain.CheckStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, auditStatus(&tt.res))
		})
	}
}

func TestSyncStoreMetrics(t *testing.T) {
	h := newHarness(t)

	h.store.EXPECT().ListStoreConfigs(mock.Anything).Return([]domain.StoreAPIConfig{
		{StoreID: 1, IsActive: true},
		{StoreID: 2, IsActive: false, ConsecutiveFailures: 10},
		{StoreID: 3, IsActive: true, ConsecutiveFailures: 2},
	}, nil).Once()

	require.NoError(t, h.eng.SyncStoreMetrics(context.Background()))

	assert.InDelta(t, 2.0, ptestutil.ToFloat64(metrics.ActiveStores), 0.001)
	assert.InDelta(t, 10.0, ptestutil.ToFloat64(metrics.StoreConsecutiveFailures.WithLabelValues("2")), 0.001)
}
