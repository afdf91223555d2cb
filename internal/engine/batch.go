package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	"github.com/donaldgifford/inventory-tracker/internal/notify"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// RunSummary reports what a scheduled check did.
type RunSummary struct {
	Priority  int `json:"priority_checked"`
	Routine   int `json:"routine_checked"`
	Available int `json:"available"`
	Failed    int `json:"failed"`
}

// RunBatch checks products and returns one result per product in input
// order. Products of the same store are checked one after another with the
// batch delay between them; with concurrency above one, different stores are
// checked in parallel. A product whose check fails or panics is reported as a
// failed result and the batch carries on; the returned error joins every
// per-product persistence failure.
func (eng *Engine) RunBatch(
	ctx context.Context,
	products []domain.Product,
	checkType domain.CheckType,
) ([]domain.CheckResult, error) {
	start := time.Now()
	defer func() {
		metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, span := eng.tracer.Start(ctx, "engine.run_batch", trace.WithAttributes(
		attribute.Int("batch.size", len(products)),
		attribute.String("check.type", string(checkType)),
		attribute.Int("batch.concurrency", eng.concurrency),
	))
	defer span.End()

	if eng.batchBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, eng.batchBudget)
		defer cancel()
	}

	b := &batch{
		eng:       eng,
		products:  products,
		checkType: checkType,
		results:   make([]domain.CheckResult, len(products)),
		errs:      make([]error, len(products)),
		events:    make([][]notify.StockEvent, len(products)),
	}

	if eng.concurrency <= 1 {
		all := make([]int, len(products))
		for i := range all {
			all[i] = i
		}
		b.run(ctx, all)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(eng.concurrency)
		for _, idx := range groupByStore(products) {
			g.Go(func() error {
				b.run(gctx, idx)
				return nil
			})
		}
		_ = g.Wait()
	}

	var events []notify.StockEvent
	for _, ev := range b.events {
		events = append(events, ev...)
	}
	eng.dispatch(context.WithoutCancel(ctx), events, fmt.Sprintf("%s check: %d products", checkType, len(products)))

	err := errors.Join(b.errs...)
	if err != nil {
		eng.log.Warn("batch finished with errors", "type", checkType, "products", len(products), "error", err)
	}
	return b.results, err
}

type batch struct {
	eng       *Engine
	products  []domain.Product
	checkType domain.CheckType

	// each index is written by exactly one goroutine
	results []domain.CheckResult
	errs    []error
	events  [][]notify.StockEvent
}

// run checks the products at idx in order, pausing between them.
func (b *batch) run(ctx context.Context, idx []int) {
	for n, i := range idx {
		p := &b.products[i]
		if n > 0 && !sleepCtx(ctx, b.eng.batchDelay) || ctx.Err() != nil {
			b.results[i] = failedResult(p, b.eng.nowFunc(), domain.ErrorKindTransport,
				fmt.Sprintf("batch stopped before check: %v", ctx.Err()))
			b.errs[i] = fmt.Errorf("product %d not checked: %w", p.ID, ctx.Err())
			continue
		}
		b.results[i], b.events[i], b.errs[i] = b.eng.safeCheck(ctx, p, b.checkType)
	}
}

// safeCheck runs checkProduct and turns a panic into a failed result.
func (eng *Engine) safeCheck(
	ctx context.Context,
	p *domain.Product,
	checkType domain.CheckType,
) (res domain.CheckResult, events []notify.StockEvent, err error) {
	defer func() {
		if r := recover(); r != nil {
			eng.log.Error("product check panicked", "product_id", p.ID, "panic", r)
			res = failedResult(p, eng.nowFunc(), domain.ErrorKindParse, fmt.Sprintf("check panicked: %v", r))
			events = nil
			err = fmt.Errorf("product %d: check panicked: %v", p.ID, r)
		}
	}()
	return eng.checkProduct(ctx, p, checkType)
}

// groupByStore returns product indexes grouped by store, stores in order of
// first appearance and products in input order within each store.
func groupByStore(products []domain.Product) [][]int {
	pos := make(map[int64]int)
	var groups [][]int
	for i := range products {
		sid := products[i].StoreID
		g, ok := pos[sid]
		if !ok {
			g = len(groups)
			pos[sid] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// SelectForRoutineCheck returns available products at active stores that
// have never been checked or were last checked before the stale cutoff.
func (eng *Engine) SelectForRoutineCheck(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		return nil, nil
	}
	products, err := eng.store.ListProductsNeedingCheck(ctx, eng.nowFunc().Add(-eng.staleAfter), limit)
	if err != nil {
		return nil, fmt.Errorf("listing products needing check: %w", err)
	}
	return products, nil
}

// SelectHighPriority returns available products at active stores with at
// least one wishlist entry or recent recommendation, most wished-for first,
// then most recommended, then lowest product id.
func (eng *Engine) SelectHighPriority(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		return nil, nil
	}
	cands, err := eng.store.ListPriorityCandidates(ctx, eng.nowFunc().Add(-eng.priorityWindow))
	if err != nil {
		return nil, fmt.Errorf("listing priority candidates: %w", err)
	}

	cands = slices.DeleteFunc(cands, func(c domain.PriorityCandidate) bool {
		return c.WishlistCount <= 0 && c.RecentRecommendations <= 0
	})
	slices.SortStableFunc(cands, func(a, b domain.PriorityCandidate) int {
		return cmp.Or(
			cmp.Compare(b.WishlistCount, a.WishlistCount),
			cmp.Compare(b.RecentRecommendations, a.RecentRecommendations),
			cmp.Compare(a.Product.ID, b.Product.ID),
		)
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	products := make([]domain.Product, len(cands))
	for i := range cands {
		products[i] = cands[i].Product
	}
	return products, nil
}

// RunScheduledCheck checks the high-priority tier and then the routine tier.
// The priority tier always runs to completion first so a time-boxed run
// covers wishlisted and recommended products before anything else.
func (eng *Engine) RunScheduledCheck(ctx context.Context) (*RunSummary, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.run_scheduled_check")
	defer span.End()

	sum := &RunSummary{}
	var errs []error

	priority, err := eng.SelectHighPriority(ctx, eng.priorityLimit)
	if err != nil {
		return sum, err
	}
	metrics.BatchProductsTotal.WithLabelValues("priority").Add(float64(len(priority)))

	seen := make(map[int64]struct{}, len(priority))
	if len(priority) > 0 {
		eng.log.Info("checking priority products", "count", len(priority))
		results, err := eng.RunBatch(ctx, priority, domain.CheckScheduled)
		if err != nil {
			errs = append(errs, fmt.Errorf("priority batch: %w", err))
		}
		sum.Priority = len(results)
		sum.tally(results)
		for i := range priority {
			seen[priority[i].ID] = struct{}{}
		}
	}

	if ctx.Err() != nil {
		return sum, errors.Join(append(errs, ctx.Err())...)
	}

	routine, err := eng.SelectForRoutineCheck(ctx, eng.routineLimit)
	if err != nil {
		return sum, errors.Join(append(errs, err)...)
	}
	routine = slices.DeleteFunc(routine, func(p domain.Product) bool {
		_, dup := seen[p.ID]
		return dup
	})
	metrics.BatchProductsTotal.WithLabelValues("routine").Add(float64(len(routine)))

	if len(routine) > 0 {
		eng.log.Info("checking routine products", "count", len(routine))
		results, err := eng.RunBatch(ctx, routine, domain.CheckScheduled)
		if err != nil {
			errs = append(errs, fmt.Errorf("routine batch: %w", err))
		}
		sum.Routine = len(results)
		sum.tally(results)
	}

	eng.log.Info("scheduled check complete",
		"priority", sum.Priority,
		"routine", sum.Routine,
		"available", sum.Available,
		"failed", sum.Failed,
	)
	return sum, errors.Join(errs...)
}

func (s *RunSummary) tally(results []domain.CheckResult) {
	for i := range results {
		switch {
		case !results[i].Success:
			s.Failed++
		case results[i].IsAvailable:
			s.Available++
		}
	}
}

// CheckStylingProducts checks a set of products about to be recommended and
// suggests alternatives for every one that cannot be bought. Unknown ids are
// ignored; results follow the order of ids.
func (eng *Engine) CheckStylingProducts(ctx context.Context, ids []int64) (*domain.StylingReport, error) {
	found, err := eng.store.ListProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading styling products: %w", err)
	}
	products := orderByIDs(found, ids)

	results, batchErr := eng.RunBatch(ctx, products, domain.CheckStyleRecommendation)

	report := &domain.StylingReport{
		Results:      results,
		Alternatives: make(map[int64][]domain.AlternativeProduct),
		TotalChecked: len(results),
	}

	var errs []error
	if batchErr != nil {
		errs = append(errs, batchErr)
	}

	for i := range results {
		if results[i].IsAvailable {
			report.AvailableCount++
			continue
		}
		report.UnavailableCount++

		alts, err := eng.FindAlternatives(ctx, &products[i], defaultAlternativesLimit)
		if err != nil {
			errs = append(errs, err)
			alts = []domain.AlternativeProduct{}
		}
		report.Alternatives[products[i].ID] = alts
	}

	return report, errors.Join(errs...)
}

// orderByIDs returns products in the order of ids, dropping unknown ids and
// repeated ones.
func orderByIDs(products []domain.Product, ids []int64) []domain.Product {
	byID := make(map[int64]domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = products[i]
	}
	out := make([]domain.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
			delete(byID, id)
		}
	}
	return out
}
