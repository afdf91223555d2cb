package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/inventory-tracker/internal/notify"
	"github.com/donaldgifford/inventory-tracker/internal/store"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// expectCheck stubs one complete product check against an active store.
func expectCheck(
	h *harness,
	p *domain.Product,
	cfg *domain.StoreAPIConfig,
	cur *domain.InventoryStatus,
	res domain.CheckResult,
) {
	h.store.EXPECT().GetStoreConfig(mock.Anything, p.StoreID).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(res).Once()
	expectStatusUpdate(h.store, cur)
	expectHealthUpdate(h.store, cfg)
	expectScoring(h.store, p.ID)
	expectCheckLog(h.store)
}

func products(ps ...*domain.Product) []domain.Product {
	out := make([]domain.Product, len(ps))
	for i, p := range ps {
		out[i] = *p
	}
	return out
}

func TestRunBatch_PreservesOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	cfg := activeConfig(3)
	p1, p2, p3 := testProduct(1, 3), testProduct(2, 3), testProduct(3, 3)

	expectCheck(h, p1, cfg, domain.NewInventoryStatus(1), availableResult(p1, 20, 100))
	expectCheck(h, p2, cfg, domain.NewInventoryStatus(2), unavailableResult(p2))
	expectCheck(h, p3, cfg, domain.NewInventoryStatus(3), availableResult(p3, 2, 100))

	results, err := h.eng.RunBatch(context.Background(), products(p1, p2, p3), domain.CheckScheduled)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, int64(1), results[0].ProductID)
	assert.Equal(t, domain.StockInStock, results[0].StockStatus)
	assert.Equal(t, int64(2), results[1].ProductID)
	assert.False(t, results[1].IsAvailable)
	assert.Equal(t, int64(3), results[2].ProductID)
	assert.Equal(t, domain.StockLowStock, results[2].StockStatus)
}

func TestRunBatch_ConcurrentStoresKeepInputOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t, WithConcurrency(2))
	cfgA, cfgB := activeConfig(3), activeConfig(4)
	a1, b1, a2, b2 := testProduct(1, 3), testProduct(2, 4), testProduct(3, 3), testProduct(4, 4)

	expectCheck(h, a1, cfgA, domain.NewInventoryStatus(1), availableResult(a1, 20, 100))
	expectCheck(h, b1, cfgB, domain.NewInventoryStatus(2), availableResult(b1, 20, 100))
	expectCheck(h, a2, cfgA, domain.NewInventoryStatus(3), unavailableResult(a2))
	expectCheck(h, b2, cfgB, domain.NewInventoryStatus(4), unavailableResult(b2))

	results, err := h.eng.RunBatch(context.Background(), products(a1, b1, a2, b2), domain.CheckScheduled)
	require.NoError(t, err)

	got := make([]int64, len(results))
	for i := range results {
		got[i] = results[i].ProductID
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, got)
	assert.True(t, results[1].IsAvailable)
	assert.False(t, results[3].IsAvailable)
}

func TestRunBatch_PanicBecomesFailedResult(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	cfg := activeConfig(3)
	p1, p2 := testProduct(1, 3), testProduct(2, 3)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p1, cfg).
		RunAndReturn(func(context.Context, *domain.Product, *domain.StoreAPIConfig) domain.CheckResult {
			panic("nil map write")
		}).Once()
	expectCheck(h, p2, cfg, domain.NewInventoryStatus(2), availableResult(p2, 20, 100))

	results, err := h.eng.RunBatch(context.Background(), products(p1, p2), domain.CheckManual)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 1: check panicked")

	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].ErrorMessage, "nil map write")
	assert.True(t, results[1].Success)
}

func TestRunBatch_BudgetStopsRemainingProducts(t *testing.T) {
	t.Parallel()

	h := newHarness(t, WithBatchDelay(time.Second), WithBatchBudget(100*time.Millisecond))
	cfg := activeConfig(3)
	p1, p2, p3 := testProduct(1, 3), testProduct(2, 3), testProduct(3, 3)

	expectCheck(h, p1, cfg, domain.NewInventoryStatus(1), availableResult(p1, 20, 100))

	start := time.Now()
	results, err := h.eng.RunBatch(context.Background(), products(p1, p2, p3), domain.CheckScheduled)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	for _, r := range results[1:] {
		assert.False(t, r.Success)
		assert.Equal(t, domain.ErrorKindTransport, r.ErrorKind)
		assert.Contains(t, r.ErrorMessage, "batch stopped before check")
	}
}

func TestRunBatch_BudgetMidCheckStillRecordsOutcome(t *testing.T) {
	t.Parallel()

	h := newHarness(t, WithBatchBudget(50*time.Millisecond))
	cfg := activeConfig(3)
	p := testProduct(1, 3)
	cur := domain.NewInventoryStatus(1)

	h.store.EXPECT().GetStoreConfig(mock.Anything, int64(3)).Return(cfg, nil).Once()
	h.checker.EXPECT().Check(mock.Anything, p, cfg).
		RunAndReturn(func(ctx context.Context, p *domain.Product, _ *domain.StoreAPIConfig) domain.CheckResult {
			<-ctx.Done()
			res := failedCheck(p, domain.ErrorKindTransport, ctx.Err().Error())
			res.TimedOut = true
			return res
		}).Once()

	// Each write fails the way pgx does when handed a finished context.
	h.store.EXPECT().UpdateInventoryStatus(mock.Anything, int64(1), mock.Anything).
		RunAndReturn(func(
			ctx context.Context,
			_ int64,
			fn store.StatusMutator,
		) (*domain.InventoryStatus, *domain.InventoryStatus, error) {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			next := cur.Clone()
			if err := fn(next); err != nil {
				return nil, nil, err
			}
			return cur.Clone(), next, nil
		}).Once()

	var updated *domain.StoreAPIConfig
	h.store.EXPECT().UpdateStoreHealth(mock.Anything, int64(3), mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int64, fn store.HealthMutator) (*domain.StoreAPIConfig, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			c := *cfg
			if err := fn(&c); err != nil {
				return nil, err
			}
			updated = &c
			return &c, nil
		}).Once()

	expectScoring(h.store, 1)

	var logged []*domain.InventoryCheckLog
	h.store.EXPECT().InsertCheckLog(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, l *domain.InventoryCheckLog) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logged = append(logged, l)
			return nil
		}).Once()

	results, err := h.eng.RunBatch(context.Background(), products(p), domain.CheckScheduled)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.True(t, results[0].TimedOut)

	require.Len(t, logged, 1)
	assert.Equal(t, domain.CheckStatusTimeout, logged[0].Status)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.ConsecutiveFailures)
}

func TestRunBatch_DelaysBetweenProductsOfAStore(t *testing.T) {
	t.Parallel()

	h := newHarness(t, WithBatchDelay(60*time.Millisecond))
	cfg := activeConfig(3)
	p1, p2, p3 := testProduct(1, 3), testProduct(2, 3), testProduct(3, 3)

	expectCheck(h, p1, cfg, domain.NewInventoryStatus(1), availableResult(p1, 20, 100))
	expectCheck(h, p2, cfg, domain.NewInventoryStatus(2), availableResult(p2, 20, 100))
	expectCheck(h, p3, cfg, domain.NewInventoryStatus(3), availableResult(p3, 20, 100))

	start := time.Now()
	_, err := h.eng.RunBatch(context.Background(), products(p1, p2, p3), domain.CheckScheduled)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 120*time.Millisecond)
}

func TestRunBatch_ManyEventsSentAsOneBatch(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	cfg := activeConfig(3)

	var ps []*domain.Product
	for id := int64(1); id <= batchThreshold; id++ {
		p := testProduct(id, 3)
		ps = append(ps, p)
		expectCheck(h, p, cfg, checkedStatus(id, domain.StockOutOfStock, false, 100), availableResult(p, 20, 100))
	}

	h.notifier.EXPECT().
		SendBatch(mock.Anything, mock.MatchedBy(func(evs []notify.StockEvent) bool {
			if len(evs) != batchThreshold {
				return false
			}
			for i := range evs {
				if evs[i].Kind != notify.EventBackInStock {
					return false
				}
			}
			return true
		}), mock.Anything).
		Return(nil).Once()

	_, err := h.eng.RunBatch(context.Background(), products(ps...), domain.CheckScheduled)
	require.NoError(t, err)
}

func TestRunBatch_NotificationFailureDoesNotFailBatch(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	cfg := activeConfig(3)
	p := testProduct(1, 3)

	expectCheck(h, p, cfg, checkedStatus(1, domain.StockInStock, true, 100), unavailableResult(p))
	h.notifier.EXPECT().SendEvent(mock.Anything, mock.Anything).Return(errors.New("webhook 500")).Once()

	results, err := h.eng.RunBatch(context.Background(), products(p), domain.CheckScheduled)
	require.NoError(t, err)
	assert.True(t, results[0].Success)
}

func TestGroupByStore(t *testing.T) {
	t.Parallel()

	ps := products(testProduct(1, 5), testProduct(2, 3), testProduct(3, 5), testProduct(4, 9), testProduct(5, 3))
	assert.Equal(t, [][]int{{0, 2}, {1, 4}, {3}}, groupByStore(ps))
}

func TestSelectHighPriority(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	cand := func(id int64, wish, recs int) domain.PriorityCandidate {
		return domain.PriorityCandidate{Product: *testProduct(id, 3), WishlistCount: wish, RecentRecommendations: recs}
	}

	h.store.EXPECT().
		ListPriorityCandidates(mock.Anything, testNow.Add(-7*24*time.Hour)).
		Return([]domain.PriorityCandidate{
			cand(9, 2, 1),
			cand(4, 0, 0),
			cand(7, 5, 0),
			cand(3, 2, 1),
			cand(5, 2, 4),
			cand(8, 0, 3),
		}, nil).Once()

	got, err := h.eng.SelectHighPriority(context.Background(), 4)
	require.NoError(t, err)

	ids := make([]int64, len(got))
	for i := range got {
		ids[i] = got[i].ID
	}
	// wishlist desc, then recommendations desc, then id asc
	assert.Equal(t, []int64{7, 5, 3, 9}, ids)
}

func TestSelectHighPriority_StoreError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.store.EXPECT().ListPriorityCandidates(mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	_, err := h.eng.SelectHighPriority(context.Background(), 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing priority candidates")
}

func TestSelectForRoutineCheck(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.store.EXPECT().
		ListProductsNeedingCheck(mock.Anything, testNow.Add(-24*time.Hour), 30).
		Return(products(testProduct(1, 3)), nil).Once()

	got, err := h.eng.SelectForRoutineCheck(context.Background(), 30)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	none, err := h.eng.SelectForRoutineCheck(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRunScheduledCheck_PriorityFirstThenRoutine(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	cfg := activeConfig(3)
	p1, p2, p3 := testProduct(1, 3), testProduct(2, 3), testProduct(3, 3)

	h.store.EXPECT().ListPriorityCandidates(mock.Anything, mock.Anything).
		Return([]domain.PriorityCandidate{
			{Product: *p2, WishlistCount: 1},
			{Product: *p1, WishlistCount: 3},
		}, nil).Once()
	h.store.EXPECT().ListProductsNeedingCheck(mock.Anything, mock.Anything, defaultRoutineLimit).
		Return(products(p2, p3), nil).Once()

	var order []int64
	record := func(p *domain.Product, res domain.CheckResult) {
		h.store.EXPECT().GetStoreConfig(mock.Anything, p.StoreID).Return(cfg, nil).Once()
		h.checker.EXPECT().Check(mock.Anything, p, cfg).
			Run(func(_ context.Context, p *domain.Product, _ *domain.StoreAPIConfig) {
				order = append(order, p.ID)
			}).
			Return(res).Once()
		expectStatusUpdate(h.store, domain.NewInventoryStatus(p.ID))
		expectHealthUpdate(h.store, cfg)
		expectScoring(h.store, p.ID)
		expectCheckLog(h.store)
	}
	record(p1, availableResult(p1, 20, 100))
	record(p2, unavailableResult(p2))
	record(p3, failedCheck(p3, domain.ErrorKindParse, "bad json"))

	sum, err := h.eng.RunScheduledCheck(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, order)
	assert.Equal(t, 2, sum.Priority)
	assert.Equal(t, 1, sum.Routine)
	assert.Equal(t, 1, sum.Available)
	assert.Equal(t, 1, sum.Failed)
}

func TestRunScheduledCheck_PrioritySelectionError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.store.EXPECT().ListPriorityCandidates(mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	_, err := h.eng.RunScheduledCheck(context.Background())
	require.Error(t, err)
}

func TestCheckStylingProducts_TwoOfFiveUnavailable(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	cfg := activeConfig(3)

	var ps []*domain.Product
	for id := int64(1); id <= 5; id++ {
		ps = append(ps, testProduct(id, 3))
	}
	ids := []int64{1, 2, 3, 4, 5}

	// the store returns rows in its own order
	h.store.EXPECT().ListProductsByIDs(mock.Anything, ids).
		Return(products(ps[4], ps[3], ps[2], ps[1], ps[0]), nil).Once()

	for _, p := range ps {
		res := availableResult(p, 20, 100)
		if p.ID == 2 || p.ID == 4 {
			res = unavailableResult(p)
		}
		h.store.EXPECT().GetStoreConfig(mock.Anything, p.StoreID).Return(cfg, nil).Once()
		h.checker.EXPECT().Check(mock.Anything, p, cfg).Return(res).Once()
		expectStatusUpdate(h.store, domain.NewInventoryStatus(p.ID))
		expectHealthUpdate(h.store, cfg)
		expectScoring(h.store, p.ID)
		h.store.EXPECT().InsertCheckLog(mock.Anything, mock.MatchedBy(func(l *domain.InventoryCheckLog) bool {
			return l.ProductID == p.ID && l.CheckType == domain.CheckStyleRecommendation
		})).Return(nil).Once()
	}

	alts := func(n int) []domain.AlternativeProduct {
		out := make([]domain.AlternativeProduct, n)
		for i := range out {
			out[i] = domain.AlternativeProduct{UUID: "alt", PurchaseabilityScore: 80 - i}
		}
		return out
	}
	h.store.EXPECT().FindAlternatives(mock.Anything, mock.MatchedBy(func(q *store.AlternativeQuery) bool {
		return q.ProductID == 2
	})).Return(alts(7), nil).Once()
	h.store.EXPECT().FindAlternatives(mock.Anything, mock.MatchedBy(func(q *store.AlternativeQuery) bool {
		return q.ProductID == 4
	})).Return(alts(2), nil).Once()

	report, err := h.eng.CheckStylingProducts(context.Background(), ids)
	require.NoError(t, err)

	assert.Equal(t, 5, report.TotalChecked)
	assert.Equal(t, 3, report.AvailableCount)
	assert.Equal(t, 2, report.UnavailableCount)
	require.Len(t, report.Alternatives, 2)
	assert.Len(t, report.Alternatives[2], 5)
	assert.Len(t, report.Alternatives[4], 2)

	for i, r := range report.Results {
		assert.Equal(t, ids[i], r.ProductID)
	}
}

func TestCheckStylingProducts_LoadError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.store.EXPECT().ListProductsByIDs(mock.Anything, []int64{1}).
		Return(nil, errors.New("db down")).Once()

	_, err := h.eng.CheckStylingProducts(context.Background(), []int64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading styling products")
}

func TestOrderByIDs(t *testing.T) {
	t.Parallel()

	got := orderByIDs(products(testProduct(3, 1), testProduct(1, 1)), []int64{1, 99, 3, 1})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}
